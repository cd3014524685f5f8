package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/swiper/internal/platform"
	"github.com/ytget/swiper/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.swiper"
	AppName = "Swiper"

	WindowWidth  = 420
	WindowHeight = 720
)

func main() {
	fmt.Printf("Swiper v%s starting...\n", version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewSwiperTheme())

	if icon, err := ui.LoadLogoResource(); err == nil {
		myApp.SetIcon(icon)
	}

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Content and tilt collaborators, rebuilt when the rotation seed changes
	ui.NewRootUI(myWindow, myApp, func(seed int64) (ui.ContentSource, platform.RotationSource) {
		return platform.NewSources(seed)
	})

	myWindow.ShowAndRun()
}
