package models

import "time"

// User is the signed-in identity. It is created at login and cleared at
// logout; nothing mutates it in between.
type User struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Avatar     string  `json:"avatar"`
	Level      int     `json:"level"`
	IsPro      bool    `json:"isPro"`
	Weight     float64 `json:"weight"`     // kg
	WeightGoal float64 `json:"weightGoal"` // kg
}

// Theme is the persisted display preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Setting is one persisted key/value row for SQL-backed stores.
type Setting struct {
	Key       string `gorm:"column:setting_key;primaryKey;size:128"`
	Value     []byte `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName provides the explicit table binding for GORM.
func (Setting) TableName() string {
	return "settings"
}
