package ui

import "testing"

func TestLocalization_GetText(t *testing.T) {
	l := NewLocalization()

	if got := l.GetText(KeyLike); got != "LIKE" {
		t.Errorf("Expected LIKE, got %s", got)
	}

	l.SetLanguage("ru")
	if got := l.GetText(KeyDeny); got != "НЕТ" {
		t.Errorf("Expected НЕТ, got %s", got)
	}

	if got := l.GetText("missing_key"); got != "missing_key" {
		t.Errorf("Expected key fallback, got %s", got)
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("System language should map to en, got %s", l.GetCurrentLanguage())
	}

	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Unknown language should be ignored, got %s", l.GetCurrentLanguage())
	}
}

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()
	english := l.texts["en"]

	for lang := range l.GetAvailableLanguages() {
		texts, ok := l.texts[lang]
		if !ok {
			t.Fatalf("No texts for language %s", lang)
		}
		for key := range english {
			if _, found := texts[key]; !found {
				t.Errorf("Language %s is missing key %s", lang, key)
			}
		}
	}
}
