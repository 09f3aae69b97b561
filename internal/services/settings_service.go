package services

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"invoicer/internal/billing"
	apperrors "invoicer/internal/errors"
	"invoicer/internal/models"
)

// settingsService handles per-account rate configuration.
type settingsService struct {
	db  *gorm.DB
	cal *billing.Calendar
}

// NewSettingsService creates a new SettingsServicer.
func NewSettingsService(db *gorm.DB, cal *billing.Calendar) SettingsServicer {
	return &settingsService{db: db, cal: cal}
}

// GetRateConfig returns the account's rate config, or nil if none is stored.
func (s *settingsService) GetRateConfig(userID string) (*models.RateConfig, error) {
	var rc models.RateConfig
	if err := s.db.Where("user_id = ?", userID).First(&rc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &rc, nil
}

// SaveRateConfig validates and upserts the account's full settings row.
func (s *settingsService) SaveRateConfig(userID string, cfg *models.RateConfig) (*models.RateConfig, error) {
	rc := *cfg
	rc.UserID = userID
	rc.UpdatedAt = s.cal.Now()

	if err := billing.ValidateRateConfig(&rc); err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidRateConfig, err.Error())
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(&rc).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &rc, nil
}
