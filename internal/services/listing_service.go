// listing_service.go
//
// Listing create, update and delete
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

package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/localnerve/propertyhub/internal/models"
	"github.com/localnerve/propertyhub/internal/types"
	"gorm.io/gorm"
)

// ListingInput is the create/patch payload for a listing. Nil pointers and
// absent numeric fields are left unchanged on patch.
type ListingInput struct {
	Title        *string            `json:"title" validate:"omitempty,min=5,max=255"`
	Description  *string            `json:"description" validate:"omitempty,min=20"`
	City         *string            `json:"city" validate:"omitempty,min=2,max=120"`
	Locality     *string            `json:"locality" validate:"omitempty,min=2,max=255"`
	PropertyType *string            `json:"propertyType" validate:"omitempty,min=1,max=64"`
	BHK          types.LooseNumber  `json:"bhk" validate:"-"`
	Price        *int64             `json:"price" validate:"omitempty,gte=0"`
	AreaSqFt     *float64           `json:"areaSqFt" validate:"omitempty,gte=0"`
	Images       *types.FlexStrings `json:"images" validate:"omitempty,min=1"`
	Latitude     types.LooseNumber  `json:"latitude" validate:"-"`
	Longitude    types.LooseNumber  `json:"longitude" validate:"-"`
	Featured     *bool              `json:"featured"`
	Status       *string            `json:"status" validate:"omitempty,oneof=ACTIVE SOLD"`
}

// validate runs field constraints, plus the presence check for create.
func (in ListingInput) validate(create bool) error {
	if create {
		required := []struct {
			field   string
			present bool
		}{
			{"title", in.Title != nil},
			{"description", in.Description != nil},
			{"city", in.City != nil},
			{"locality", in.Locality != nil},
			{"propertyType", in.PropertyType != nil},
			{"price", in.Price != nil},
			{"areaSqFt", in.AreaSqFt != nil},
			{"images", in.Images != nil},
		}
		for _, r := range required {
			if !r.present {
				if msg, ok := fieldMessages[r.field+".min"]; ok {
					return types.NewValidationError(r.field, msg)
				}
				return types.NewValidationError(r.field, fieldLabel(r.field)+" is required")
			}
		}
	}

	if err := validateStruct(in); err != nil {
		return err
	}

	if in.BHK.Valid && in.BHK.Value < 0 {
		return types.NewValidationError("bhk", "Bhk must be a non-negative number")
	}
	if in.Latitude.Valid && (in.Latitude.Value < -90 || in.Latitude.Value > 90) {
		return types.NewValidationError("latitude", "Latitude must be between -90 and 90")
	}
	if in.Longitude.Valid && (in.Longitude.Value < -180 || in.Longitude.Value > 180) {
		return types.NewValidationError("longitude", "Longitude must be between -180 and 180")
	}
	return nil
}

// ListAllListings returns every listing, any status, newest first
func ListAllListings(ctx context.Context, db *gorm.DB) ([]models.Listing, error) {
	listings := []models.Listing{}
	if err := db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	return listings, nil
}

// GetListing fetches a listing by id
func GetListing(ctx context.Context, db *gorm.DB, id string) (*models.Listing, error) {
	var listing models.Listing
	if err := db.WithContext(ctx).Where("id = ?", id).First(&listing).Error; err != nil {
		if isNotFound(err) {
			return nil, types.NewNotFoundError("listing", id)
		}
		return nil, fmt.Errorf("get listing: %w", err)
	}
	return &listing, nil
}

// GetListingBySlug fetches a listing by slug, any status
func GetListingBySlug(ctx context.Context, db *gorm.DB, slug string) (*models.Listing, error) {
	var listing models.Listing
	if err := db.WithContext(ctx).Where("slug = ?", slug).First(&listing).Error; err != nil {
		if isNotFound(err) {
			return nil, types.NewNotFoundError("listing", slug)
		}
		return nil, fmt.Errorf("get listing by slug: %w", err)
	}
	return &listing, nil
}

// CreateListing validates and stores a new listing. The slug comes from the
// title and the price bracket from the price; neither is accepted from input.
func CreateListing(ctx context.Context, db *gorm.DB, in ListingInput) (*models.Listing, error) {
	if err := in.validate(true); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(*in.Title)
	slug, err := listingSlug(title)
	if err != nil {
		return nil, err
	}

	listing := models.Listing{
		Title:         title,
		Slug:          slug,
		Description:   *in.Description,
		City:          strings.TrimSpace(*in.City),
		Locality:      strings.TrimSpace(*in.Locality),
		PropertyType:  strings.TrimSpace(*in.PropertyType),
		BHK:           in.BHK.Int(),
		Price:         *in.Price,
		PriceCategory: PriceBracket(*in.Price),
		AreaSqFt:      *in.AreaSqFt,
		Images:        models.ImageList(in.Images.Slice()),
		Latitude:      in.Latitude.Float(),
		Longitude:     in.Longitude.Float(),
		Status:        models.StatusActive,
	}
	if in.Featured != nil {
		listing.Featured = *in.Featured
	}
	if in.Status != nil {
		listing.Status = *in.Status
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkSlug(tx, slug, ""); err != nil {
			return err
		}
		return tx.Create(&listing).Error
	})
	if err != nil {
		return nil, listingWriteError(err, slug)
	}

	return &listing, nil
}

// UpdateListing applies the fields present in the payload. A new title
// regenerates the slug and a new price re-derives the bracket; the id never changes.
func UpdateListing(ctx context.Context, db *gorm.DB, id string, in ListingInput) (*models.Listing, error) {
	if err := in.validate(false); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	slug := ""
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		var err error
		if slug, err = listingSlug(title); err != nil {
			return nil, err
		}
		updates["title"] = title
		updates["slug"] = slug
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.City != nil {
		updates["city"] = strings.TrimSpace(*in.City)
	}
	if in.Locality != nil {
		updates["locality"] = strings.TrimSpace(*in.Locality)
	}
	if in.PropertyType != nil {
		updates["property_type"] = strings.TrimSpace(*in.PropertyType)
	}
	if in.BHK.Present {
		updates["bhk"] = in.BHK.Int()
	}
	if in.Price != nil {
		updates["price"] = *in.Price
		updates["price_category"] = PriceBracket(*in.Price)
	}
	if in.AreaSqFt != nil {
		updates["area_sq_ft"] = *in.AreaSqFt
	}
	if in.Images != nil {
		updates["images"] = models.ImageList(in.Images.Slice())
	}
	if in.Latitude.Present {
		updates["latitude"] = in.Latitude.Float()
	}
	if in.Longitude.Present {
		updates["longitude"] = in.Longitude.Float()
	}
	if in.Featured != nil {
		updates["featured"] = *in.Featured
	}
	if in.Status != nil {
		updates["status"] = *in.Status
	}

	var listing models.Listing
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).Where("id = ?", id).First(&listing).Error; err != nil {
			if isNotFound(err) {
				return types.NewNotFoundError("listing", id)
			}
			return err
		}

		if len(updates) == 0 {
			return nil
		}
		if slug != "" && slug != listing.Slug {
			if err := checkSlug(tx, slug, id); err != nil {
				return err
			}
		}
		if err := tx.Model(&listing).Updates(updates).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).First(&listing).Error
	})
	if err != nil {
		return nil, listingWriteError(err, slug)
	}

	return &listing, nil
}

// DeleteListing removes a listing and returns what was removed.
// Inquiries that reference it keep their dangling listing id.
func DeleteListing(ctx context.Context, db *gorm.DB, id string) (*models.Listing, error) {
	var listing models.Listing
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&listing).Error; err != nil {
			if isNotFound(err) {
				return types.NewNotFoundError("listing", id)
			}
			return err
		}
		return tx.Delete(&listing).Error
	})
	if err != nil {
		if _, ok := types.AsCustomError(err); ok {
			return nil, err
		}
		return nil, fmt.Errorf("delete listing: %w", err)
	}
	return &listing, nil
}

// FeaturedListings returns the newest featured ACTIVE listings
func FeaturedListings(ctx context.Context, db *gorm.DB, limit int) ([]models.Listing, error) {
	listings := []models.Listing{}
	if err := db.WithContext(ctx).
		Where("featured = ? AND status = ?", true, models.StatusActive).
		Order("created_at DESC").Order("id DESC").
		Limit(limit).
		Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("featured listings: %w", err)
	}
	return listings, nil
}

func listingSlug(title string) (string, error) {
	slug := Slugify(title)
	if slug == "" {
		return "", types.NewValidationError("title", "Title must contain letters or digits")
	}
	return slug, nil
}

func checkSlug(tx *gorm.DB, slug, excludeID string) error {
	q := tx.Model(&models.Listing{}).Where("slug = ?", slug)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return fmt.Errorf("check slug: %w", err)
	}
	if count > 0 {
		return slugConflict(slug)
	}
	return nil
}

func slugConflict(slug string) error {
	return types.NewConflictError("listing.slug",
		fmt.Sprintf("A listing with slug '%s' already exists", slug))
}

func listingWriteError(err error, slug string) error {
	if _, ok := types.AsCustomError(err); ok {
		return err
	}
	if slug != "" && isDuplicateKey(err) {
		return slugConflict(slug)
	}
	return fmt.Errorf("write listing: %w", err)
}
