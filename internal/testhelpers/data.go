// data.go
//
// Test fixtures
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of propertyhub.
// propertyhub is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// propertyhub is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with propertyhub.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package testhelpers

import (
	"testing"
	"time"

	"github.com/localnerve/propertyhub/internal/models"
	"gorm.io/gorm"
)

// ListingFixture describes a listing row inserted directly, bypassing the service
type ListingFixture struct {
	Title        string
	City         string
	PropertyType string
	Price        int64
	Status       string
	Featured     bool
	CreatedAt    time.Time
}

// CreateTestListing inserts a listing with a slug and bracket derived the simple way
func CreateTestListing(t *testing.T, db *gorm.DB, f ListingFixture, bracket, slug string) models.Listing {
	t.Helper()
	listing := models.Listing{
		Title:         f.Title,
		Slug:          slug,
		Description:   "A test listing with enough description text.",
		City:          f.City,
		Locality:      "Model Town",
		PropertyType:  f.PropertyType,
		Price:         f.Price,
		PriceCategory: bracket,
		AreaSqFt:      1200,
		Images:        models.ImageList{"https://images.example.com/1.jpg"},
		Featured:      f.Featured,
		Status:        f.Status,
		CreatedAt:     f.CreatedAt,
	}
	if listing.Status == "" {
		listing.Status = models.StatusActive
	}
	if err := db.Create(&listing).Error; err != nil {
		t.Fatalf("Failed to create listing %s: %v", f.Title, err)
	}
	return listing
}

// CreateTestArea inserts an area with the given priority order
func CreateTestArea(t *testing.T, db *gorm.DB, name string, order int, showOnHome bool) models.Area {
	t.Helper()
	area := models.Area{
		Name:       name,
		State:      "Haryana",
		Type:       models.AreaDistrict,
		Order:      order,
		ShowOnHome: showOnHome,
	}
	if err := db.Create(&area).Error; err != nil {
		t.Fatalf("Failed to create area %s: %v", name, err)
	}
	return area
}

// CreateTestCategory inserts a category
func CreateTestCategory(t *testing.T, db *gorm.DB, name, label string) models.Category {
	t.Helper()
	category := models.Category{Name: name, Label: label}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("Failed to create category %s: %v", name, err)
	}
	return category
}

// CountRows counts rows of the given model
func CountRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	return count
}
