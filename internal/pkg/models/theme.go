package models

// Theme is the widget colour scheme
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether t is a known theme
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Toggled returns the opposite theme
func (t Theme) Toggled() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ThemePreference is a client's stored theme
type ThemePreference struct {
	ClientID    string `json:"client_id"`
	Theme       Theme  `json:"theme"`
	ToggleLabel string `json:"toggle_label"`
}
