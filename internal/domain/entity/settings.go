// Package entity defines the core business entities for the domain layer.
package entity

import (
	"slices"
	"strings"

	domainerror "github.com/finapple/backend/internal/domain/error"
)

// Theme represents the UI color scheme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Language represents the UI language preference.
type Language string

const (
	LanguageEnglish   Language = "en"
	LanguageUkrainian Language = "ua"
)

// CategoryKind selects one of the category lists.
type CategoryKind string

const (
	CategoryKindIncome     CategoryKind = "income"
	CategoryKindExpense    CategoryKind = "expense"
	CategoryKindInvestment CategoryKind = "investment"
)

// IsValid reports whether the kind names a known category list.
func (k CategoryKind) IsValid() bool {
	return k == CategoryKindIncome || k == CategoryKindExpense || k == CategoryKindInvestment
}

// AccentColors is the palette offered for the accent color and used for charts.
var AccentColors = []string{"#9bd7fe", "#feb0ec", "#ffeba4", "#dae5a5", "#a3ebbe"}

// Categories holds the user-defined category lists.
type Categories struct {
	Income     []string `json:"income"`
	Expense    []string `json:"expense"`
	Investment []string `json:"investment"`
}

// Settings is the owned configuration record. Every modifier returns a new
// record and leaves the receiver untouched.
type Settings struct {
	Theme       Theme      `json:"theme"`
	AccentColor string     `json:"accentColor"`
	Language    Language   `json:"language"`
	Currencies  []string   `json:"currencies"`
	Categories  Categories `json:"categories"`
}

// DefaultSettings returns the settings a fresh installation starts with.
func DefaultSettings() Settings {
	return Settings{
		Theme:       ThemeLight,
		AccentColor: AccentColors[0],
		Language:    LanguageEnglish,
		Currencies:  []string{"UAH", "USD", "EUR"},
		Categories: Categories{
			Income:     []string{"Salary", "Freelance", "Gift", "Dividend", "Other"},
			Expense:    []string{"Food", "Rent", "Transport", "Entertainment", "Health", "Shopping", "Gifts"},
			Investment: []string{"Stock", "Crypto", "Real Estate", "Bond"},
		},
	}
}

// Clone returns a deep copy of the settings.
func (s Settings) Clone() Settings {
	s.Currencies = slices.Clone(s.Currencies)
	s.Categories = Categories{
		Income:     slices.Clone(s.Categories.Income),
		Expense:    slices.Clone(s.Categories.Expense),
		Investment: slices.Clone(s.Categories.Investment),
	}
	return s
}

// CategoriesOf returns a copy of the list for the given kind.
func (s Settings) CategoriesOf(kind CategoryKind) ([]string, error) {
	list, err := s.Categories.list(kind)
	if err != nil {
		return nil, err
	}
	return slices.Clone(*list), nil
}

// WithCategory returns a copy with name appended to the list of the given kind.
// Adding a name that is already present returns an unchanged copy.
func (s Settings) WithCategory(kind CategoryKind, name string) (Settings, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return s, domainerror.ErrBlankSettingsItem
	}
	out := s.Clone()
	list, err := out.Categories.list(kind)
	if err != nil {
		return s, err
	}
	if !slices.Contains(*list, name) {
		*list = append(*list, name)
	}
	return out, nil
}

// WithoutCategory returns a copy with every occurrence of name removed from the
// list of the given kind.
func (s Settings) WithoutCategory(kind CategoryKind, name string) (Settings, error) {
	out := s.Clone()
	list, err := out.Categories.list(kind)
	if err != nil {
		return s, err
	}
	*list = slices.DeleteFunc(*list, func(c string) bool { return c == name })
	return out, nil
}

// WithCurrency returns a copy with the currency appended.
func (s Settings) WithCurrency(code string) (Settings, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return s, domainerror.ErrBlankSettingsItem
	}
	out := s.Clone()
	if !slices.Contains(out.Currencies, code) {
		out.Currencies = append(out.Currencies, code)
	}
	return out, nil
}

// WithoutCurrency returns a copy with the currency removed.
func (s Settings) WithoutCurrency(code string) Settings {
	out := s.Clone()
	out.Currencies = slices.DeleteFunc(out.Currencies, func(c string) bool { return c == code })
	return out
}

// WithTheme returns a copy using the given theme.
func (s Settings) WithTheme(theme Theme) Settings {
	out := s.Clone()
	out.Theme = theme
	return out
}

// WithLanguage returns a copy using the given language.
func (s Settings) WithLanguage(language Language) Settings {
	out := s.Clone()
	out.Language = language
	return out
}

// WithAccentColor returns a copy using the given accent color.
func (s Settings) WithAccentColor(color string) Settings {
	out := s.Clone()
	out.AccentColor = color
	return out
}

func (c *Categories) list(kind CategoryKind) (*[]string, error) {
	switch kind {
	case CategoryKindIncome:
		return &c.Income, nil
	case CategoryKindExpense:
		return &c.Expense, nil
	case CategoryKindInvestment:
		return &c.Investment, nil
	}
	return nil, domainerror.ErrUnknownCategoryKind
}
