package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/localnerve/propertyhub/internal/models"
	"gorm.io/gorm"
)

// SeedData is the initial content of a fresh installation
type SeedData struct {
	Settings   SettingsInput   `json:"settings"`
	Areas      []string        `json:"areas"`
	Categories []CategoryInput `json:"categories"`
	Listings   []ListingInput  `json:"listings"`
}

// SeedResult counts what a seed run created or touched
type SeedResult struct {
	SettingsCreated   bool `json:"settingsCreated"`
	AreasCreated      int  `json:"areasCreated"`
	AreasUpdated      int  `json:"areasUpdated"`
	CategoriesCreated int  `json:"categoriesCreated"`
	CategoriesUpdated int  `json:"categoriesUpdated"`
	ListingsCreated   int  `json:"listingsCreated"`
}

// ParseSeed decodes seed JSON
func ParseSeed(raw []byte) (*SeedData, error) {
	var data SeedData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	return &data, nil
}

// Seed loads data idempotently. Existing settings and listings are left alone;
// existing areas are re-flagged for the home page and existing categories relabelled.
func Seed(ctx context.Context, db *gorm.DB, data *SeedData) (*SeedResult, error) {
	result := &SeedResult{}
	db = db.WithContext(ctx)

	var count int64
	if err := db.Model(&models.Settings{}).Where("id = ?", models.SettingsID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("seed settings: %w", err)
	}
	if count == 0 {
		if _, err := NewSettingsStore(db, nil).Update(ctx, data.Settings); err != nil {
			return nil, fmt.Errorf("seed settings: %w", err)
		}
		result.SettingsCreated = true
	}

	for _, name := range data.Areas {
		var area models.Area
		err := db.Where("name = ?", name).First(&area).Error
		switch {
		case err == nil:
			if err := db.Model(&area).Updates(map[string]interface{}{
				"show_on_home": true,
				"is_popular":   true,
			}).Error; err != nil {
				return nil, fmt.Errorf("seed area %s: %w", name, err)
			}
			result.AreasUpdated++
		case isNotFound(err):
			show, popular := true, true
			areaName := name
			if _, err := CreateArea(ctx, db, AreaInput{Name: &areaName, ShowOnHome: &show, IsPopular: &popular}); err != nil {
				return nil, fmt.Errorf("seed area %s: %w", name, err)
			}
			result.AreasCreated++
		default:
			return nil, fmt.Errorf("seed area %s: %w", name, err)
		}
	}

	for _, in := range data.Categories {
		var category models.Category
		err := db.Where("name = ?", in.Name).First(&category).Error
		switch {
		case err == nil:
			if err := db.Model(&category).Update("label", in.Label).Error; err != nil {
				return nil, fmt.Errorf("seed category %s: %w", in.Name, err)
			}
			result.CategoriesUpdated++
		case isNotFound(err):
			if _, err := CreateCategory(ctx, db, in); err != nil {
				return nil, fmt.Errorf("seed category %s: %w", in.Name, err)
			}
			result.CategoriesCreated++
		default:
			return nil, fmt.Errorf("seed category %s: %w", in.Name, err)
		}
	}

	for _, in := range data.Listings {
		if in.Title == nil {
			return nil, fmt.Errorf("seed listing without title")
		}
		var existing int64
		if err := db.Model(&models.Listing{}).Where("slug = ?", Slugify(*in.Title)).Count(&existing).Error; err != nil {
			return nil, fmt.Errorf("seed listing %s: %w", *in.Title, err)
		}
		if existing > 0 {
			continue
		}
		if _, err := CreateListing(ctx, db, in); err != nil {
			return nil, fmt.Errorf("seed listing %s: %w", *in.Title, err)
		}
		result.ListingsCreated++
	}

	return result, nil
}
