package db

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"oceanbistro/models"
)

// ErrNoVisitor is returned when a preference is accessed without a visitor id.
var ErrNoVisitor = errors.New("db: visitor id is empty")

// PreferenceStore reads and writes the theme preference of one visitor.
type PreferenceStore struct {
	db        *gorm.DB
	visitorID string
}

// NewPreferenceStore binds a store to visitorID.
func NewPreferenceStore(db *gorm.DB, visitorID string) *PreferenceStore {
	return &PreferenceStore{db: db, visitorID: strings.TrimSpace(visitorID)}
}

// LoadMode returns the stored mode, or an empty string when none exists.
func (s *PreferenceStore) LoadMode(ctx context.Context) (string, error) {
	if s.db == nil {
		return "", gorm.ErrInvalidDB
	}
	if s.visitorID == "" {
		return "", ErrNoVisitor
	}
	var pref models.ThemePreference
	err := s.db.WithContext(ctx).Where("visitor_id = ?", s.visitorID).First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return pref.Mode, nil
}

// SaveMode inserts or updates the visitor's mode.
func (s *PreferenceStore) SaveMode(ctx context.Context, mode string) error {
	if s.db == nil {
		return gorm.ErrInvalidDB
	}
	if s.visitorID == "" {
		return ErrNoVisitor
	}
	pref := models.ThemePreference{VisitorID: s.visitorID, Mode: mode}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "visitor_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"mode", "updated_at"}),
	}).Create(&pref).Error
}
