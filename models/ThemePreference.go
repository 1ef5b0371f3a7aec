package models

import (
	"strings"

	"gorm.io/gorm"
)

const (
	ThemeLight   = "light"
	ThemeDark    = "dark"
	DefaultTheme = ThemeLight
)

// ThemePreference stores the display mode chosen by an anonymous visitor.
type ThemePreference struct {
	gorm.Model
	VisitorID string `gorm:"type:varchar(36);uniqueIndex;not null"`
	Mode      string `gorm:"type:varchar(8);not null;default:light"`
}

// ValidTheme reports whether value is a storable mode.
func ValidTheme(value string) bool {
	return value == ThemeLight || value == ThemeDark
}

// NormalizeTheme returns value when it is a storable mode and DefaultTheme otherwise.
func NormalizeTheme(value string) string {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	if ValidTheme(trimmed) {
		return trimmed
	}
	return DefaultTheme
}

// BeforeSave keeps invalid modes out of the table.
func (p *ThemePreference) BeforeSave(tx *gorm.DB) error {
	p.Mode = NormalizeTheme(p.Mode)
	return nil
}
