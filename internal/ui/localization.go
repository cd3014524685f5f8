package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyLike              = "like"
	KeyDeny              = "deny"
	KeyLiked             = "liked"
	KeyDenied            = "denied"
	KeyLoading           = "loading"
	KeyImageFailed       = "image_failed"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeySwipeSettings     = "swipe_settings"
	KeyInterfaceSettings = "interface_settings"
	KeyDeadZone          = "dead_zone"
	KeyDecisionThreshold = "decision_threshold"
	KeyRotationDivisor   = "rotation_divisor"
	KeyRotationSeed      = "rotation_seed"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Swiper",
		KeyLike:              "LIKE",
		KeyDeny:              "DENY",
		KeyLiked:             "Liked",
		KeyDenied:            "Denied",
		KeyLoading:           "Loading...",
		KeyImageFailed:       "Picture unavailable",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeySwipeSettings:     "Swipe Settings",
		KeyInterfaceSettings: "Interface Settings",
		KeyDeadZone:          "Dead Zone (fraction of half width)",
		KeyDecisionThreshold: "Decision Threshold (fraction of half width)",
		KeyRotationDivisor:   "Rotation Divisor (px per degree)",
		KeyRotationSeed:      "Rotation Seed (0 = random)",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved. They apply to the next card.",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Swiper",
		KeyLike:              "ДА",
		KeyDeny:              "НЕТ",
		KeyLiked:             "Нравится",
		KeyDenied:            "Отклонено",
		KeyLoading:           "Загрузка...",
		KeyImageFailed:       "Изображение недоступно",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeySwipeSettings:     "Настройки свайпа",
		KeyInterfaceSettings: "Настройки интерфейса",
		KeyDeadZone:          "Мёртвая зона (доля половины ширины)",
		KeyDecisionThreshold: "Порог решения (доля половины ширины)",
		KeyRotationDivisor:   "Делитель поворота (пикс. на градус)",
		KeyRotationSeed:      "Зерно поворота (0 = случайно)",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeySettingsSaved:     "Настройки сохранены. Они применятся к следующей карточке.",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Swiper",
		KeyLike:              "GOSTEI",
		KeyDeny:              "NÃO",
		KeyLiked:             "Gostei",
		KeyDenied:            "Recusado",
		KeyLoading:           "Carregando...",
		KeyImageFailed:       "Imagem indisponível",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeySwipeSettings:     "Configurações de Deslize",
		KeyInterfaceSettings: "Configurações de Interface",
		KeyDeadZone:          "Zona Morta (fração da meia largura)",
		KeyDecisionThreshold: "Limite de Decisão (fração da meia largura)",
		KeyRotationDivisor:   "Divisor de Rotação (px por grau)",
		KeyRotationSeed:      "Semente de Rotação (0 = aleatória)",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeySettingsSaved:     "Configurações salvas. Valem para o próximo cartão.",
	}
}
