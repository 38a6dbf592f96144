package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/localnerve/propertyhub/internal/metrics"
	"github.com/localnerve/propertyhub/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingsCache holds the settings row between reads.
// Set replaces the entry; Fill only populates an empty cache.
type SettingsCache interface {
	Get(ctx context.Context) (*models.Settings, bool)
	Set(ctx context.Context, s models.Settings)
	Fill(ctx context.Context, s models.Settings)
	Invalidate(ctx context.Context)
}

// SettingsInput is a partial settings update. Nil fields are left unchanged.
type SettingsInput struct {
	SiteName        *string `json:"siteName" validate:"omitempty,max=255"`
	HeroTitle       *string `json:"heroTitle" validate:"omitempty,max=255"`
	HeroSubtitle    *string `json:"heroSubtitle" validate:"omitempty,max=512"`
	HeroVideoURL    *string `json:"heroVideoUrl" validate:"omitempty,max=1024"`
	ContactPhone    *string `json:"contactPhone" validate:"omitempty,max=32"`
	Whatsapp        *string `json:"whatsapp" validate:"omitempty,max=32"`
	Email           *string `json:"email" validate:"omitempty,max=255"`
	HeadOffice      *string `json:"headOffice" validate:"omitempty,max=512"`
	MaintenanceMode *bool   `json:"maintenanceMode"`
}

// SettingsStore reads and writes the singleton settings row
type SettingsStore struct {
	DB    *gorm.DB
	Cache SettingsCache
}

// NewSettingsStore creates a store; cache may be nil
func NewSettingsStore(db *gorm.DB, cache SettingsCache) *SettingsStore {
	return &SettingsStore{DB: db, Cache: cache}
}

// Load returns the settings with defaults for every empty field.
// A missing row yields the defaults without writing them.
func (s *SettingsStore) Load(ctx context.Context) (models.Settings, error) {
	if s.Cache != nil {
		if cached, ok := s.Cache.Get(ctx); ok {
			metrics.SettingsCacheLookups.WithLabelValues("hit").Inc()
			return cached.WithDefaults(), nil
		}
		metrics.SettingsCacheLookups.WithLabelValues("miss").Inc()
	}

	var row models.Settings
	err := s.DB.WithContext(ctx).Where("id = ?", models.SettingsID).First(&row).Error
	if err != nil && !isNotFound(err) {
		return models.Settings{}, fmt.Errorf("load settings: %w", err)
	}

	settings := row.WithDefaults()
	if s.Cache != nil {
		s.Cache.Fill(ctx, settings)
	}
	return settings, nil
}

// Update upserts the settings row with the supplied fields and returns the
// settings as Load will read them. An empty field falls back to its default.
// The cache is replaced while the row is still locked so concurrent updates
// reach it in commit order.
func (s *SettingsStore) Update(ctx context.Context, in SettingsInput) (models.Settings, error) {
	if err := validateStruct(in); err != nil {
		return models.Settings{}, err
	}

	var settings models.Settings
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row models.Settings
		err := lockForUpdate(tx).Where("id = ?", models.SettingsID).First(&row).Error
		if err != nil && !isNotFound(err) {
			return err
		}

		settings = row.WithDefaults()
		in.apply(&settings)
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(&settings).Error; err != nil {
			return err
		}

		settings = settings.WithDefaults()
		if s.Cache != nil {
			s.Cache.Set(ctx, settings)
		}
		return nil
	})
	if err != nil {
		if s.Cache != nil {
			s.Cache.Invalidate(ctx)
		}
		return models.Settings{}, fmt.Errorf("update settings: %w", err)
	}
	return settings, nil
}

func (in SettingsInput) apply(s *models.Settings) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	set(&s.SiteName, in.SiteName)
	set(&s.HeroTitle, in.HeroTitle)
	set(&s.HeroSubtitle, in.HeroSubtitle)
	set(&s.HeroVideoURL, in.HeroVideoURL)
	set(&s.ContactPhone, in.ContactPhone)
	set(&s.Whatsapp, in.Whatsapp)
	set(&s.Email, in.Email)
	set(&s.HeadOffice, in.HeadOffice)
	if in.MaintenanceMode != nil {
		s.MaintenanceMode = *in.MaintenanceMode
	}
}
