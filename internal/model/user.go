package model

import "fmt"

// Mode selects the personal or business finance context. It determines the
// available categories, the seeded mock ledger, and the advisor persona.
type Mode string

// Mode constants. ModeNone means the user has not picked a mode yet.
const (
	ModeNone     Mode = ""
	ModePersonal Mode = "Personal"
	ModeBusiness Mode = "Business"
)

// ParseMode converts user input into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "personal", "Personal":
		return ModePersonal, nil
	case "business", "Business":
		return ModeBusiness, nil
	default:
		return ModeNone, fmt.Errorf("unknown mode %q (want personal or business)", s)
	}
}

// Theme is the UI color scheme preference.
type Theme string

// Theme constants.
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme converts user input into a Theme.
func ParseTheme(s string) (Theme, error) {
	switch s {
	case "light":
		return ThemeLight, nil
	case "dark":
		return ThemeDark, nil
	default:
		return "", fmt.Errorf("unknown theme %q (want light or dark)", s)
	}
}

// Language is a supported display language.
type Language string

// Supported languages.
const (
	LanguageEnglish Language = "English"
	LanguageHindi   Language = "Hindi"
	LanguageTelugu  Language = "Telugu"
	LanguageTamil   Language = "Tamil"
)

// Languages lists all supported languages in display order.
func Languages() []Language {
	return []Language{LanguageEnglish, LanguageHindi, LanguageTelugu, LanguageTamil}
}

// ParseLanguage converts user input into a Language.
func ParseLanguage(s string) (Language, error) {
	for _, l := range Languages() {
		if s == string(l) {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown language %q", s)
}

// UserData is the full client-side user record: identity, preferences,
// ledger and categorization rules. It is the shape persisted to disk.
//
// Invariants: Mode == ModeNone implies Transactions is empty, and
// IsAuthenticated is always stored as false (a session never survives a
// restart).
type UserData struct {
	PhoneNumber     string               `json:"phoneNumber"`
	UserName        string               `json:"userName"`
	Mode            Mode                 `json:"mode"`
	Theme           Theme                `json:"theme"`
	Language        Language             `json:"language"`
	Transactions    []Transaction        `json:"transactions"`
	Rules           []CategorizationRule `json:"rules"`
	IsAuthenticated bool                 `json:"isAuthenticated"`
}
