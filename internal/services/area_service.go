// area_service.go
//
// Area management and the area order guard
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

	"github.com/localnerve/propertyhub/internal/metrics"
	"github.com/localnerve/propertyhub/internal/models"
	"github.com/localnerve/propertyhub/internal/types"
	"gorm.io/gorm"
)

// AreaInput is the create/patch payload for an area. Nil fields are left unchanged.
type AreaInput struct {
	Name       *string        `json:"name" validate:"omitempty,max=120"`
	State      *string        `json:"state" validate:"omitempty,max=120"`
	Type       *string        `json:"type" validate:"omitempty,oneof=DISTRICT CITY VILLAGE"`
	Order      *types.FlexInt `json:"order" validate:"omitempty,gte=0"`
	ShowOnHome *bool          `json:"showOnHome"`
	IsPopular  *bool          `json:"isPopular"`
}

// ListAreas returns every area sorted by name
func ListAreas(ctx context.Context, db *gorm.DB) ([]models.Area, error) {
	areas := []models.Area{}
	if err := db.WithContext(ctx).Order("name ASC").Find(&areas).Error; err != nil {
		return nil, fmt.Errorf("list areas: %w", err)
	}
	return areas, nil
}

// CreateArea inserts an area. A nonzero order must not be held by any other area.
func CreateArea(ctx context.Context, db *gorm.DB, in AreaInput) (*models.Area, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	name := trimPtr(in.Name)
	if name == "" {
		return nil, types.NewValidationError("name", "Name is required")
	}

	area := models.Area{
		Name:  name,
		State: "Haryana",
		Type:  models.AreaDistrict,
	}
	if s := trimPtr(in.State); s != "" {
		area.State = s
	}
	if in.Type != nil {
		area.Type = *in.Type
	}
	if in.Order != nil {
		area.Order = in.Order.Int()
	}
	if in.ShowOnHome != nil {
		area.ShowOnHome = *in.ShowOnHome
	}
	if in.IsPopular != nil {
		area.IsPopular = *in.IsPopular
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkAreaOrder(tx, area.Order, ""); err != nil {
			return err
		}
		return tx.Create(&area).Error
	})
	if err != nil {
		return nil, areaWriteError(ctx, db, err, area.Name, area.Order, "")
	}

	return &area, nil
}

// UpdateArea applies the fields present in the payload to an existing area.
// When the order changes to a nonzero value, no other area may hold it.
func UpdateArea(ctx context.Context, db *gorm.DB, id string, in AreaInput) (*models.Area, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, types.NewValidationError("name", "Name is required")
		}
		updates["name"] = name
	}
	if in.State != nil {
		updates["state"] = strings.TrimSpace(*in.State)
	}
	if in.Type != nil {
		updates["type"] = *in.Type
	}
	order := -1
	if in.Order != nil {
		order = in.Order.Int()
		updates["sort_order"] = order
	}
	if in.ShowOnHome != nil {
		updates["show_on_home"] = *in.ShowOnHome
	}
	if in.IsPopular != nil {
		updates["is_popular"] = *in.IsPopular
	}

	var area models.Area
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).Where("id = ?", id).First(&area).Error; err != nil {
			if isNotFound(err) {
				return types.NewNotFoundError("area", id)
			}
			return err
		}

		if order > 0 {
			if err := checkAreaOrder(tx, order, id); err != nil {
				return err
			}
		}

		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&area).Updates(updates).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).First(&area).Error
	})
	if err != nil {
		name, _ := updates["name"].(string)
		return nil, areaWriteError(ctx, db, err, name, order, id)
	}

	return &area, nil
}

// DeleteArea removes an area
func DeleteArea(ctx context.Context, db *gorm.DB, id string) error {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&models.Area{})
	if result.Error != nil {
		return fmt.Errorf("delete area: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return types.NewNotFoundError("area", id)
	}
	return nil
}

// HomeAreas returns the areas shown on the home page in priority order.
// Unordered areas (order 0) come first, alphabetically, matching an ascending sort.
func HomeAreas(ctx context.Context, db *gorm.DB) ([]models.Area, error) {
	areas := []models.Area{}
	if err := db.WithContext(ctx).
		Where("show_on_home = ?", true).
		Order("sort_order ASC").Order("name ASC").
		Find(&areas).Error; err != nil {
		return nil, fmt.Errorf("home areas: %w", err)
	}
	return areas, nil
}

// PopularAreaNames returns the names of areas flagged popular
func PopularAreaNames(ctx context.Context, db *gorm.DB) ([]string, error) {
	names := []string{}
	if err := db.WithContext(ctx).Model(&models.Area{}).
		Where("is_popular = ?", true).
		Order("name ASC").
		Pluck("name", &names).Error; err != nil {
		return nil, fmt.Errorf("popular areas: %w", err)
	}
	return names, nil
}

// checkAreaOrder rejects a nonzero order already held by an area other than excludeID.
func checkAreaOrder(tx *gorm.DB, order int, excludeID string) error {
	if order <= 0 {
		return nil
	}

	holder, err := findOrderHolder(lockForUpdate(tx), order, excludeID)
	if err != nil {
		return err
	}
	if holder != nil {
		metrics.AreaOrderConflicts.WithLabelValues("check").Inc()
		return orderConflict(order, holder.Name)
	}
	return nil
}

func findOrderHolder(tx *gorm.DB, order int, excludeID string) (*models.Area, error) {
	q := tx.Where("sort_order = ?", order)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var holder models.Area
	if err := q.First(&holder).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find area order holder: %w", err)
	}
	return &holder, nil
}

func orderConflict(order int, holder string) error {
	return types.NewConflictError("area.order",
		fmt.Sprintf("Priority order %d is already taken by %s", order, holder))
}

// areaWriteError turns a unique index violation into the conflict it stands for.
// It runs outside the failed transaction, which some drivers abort on error.
func areaWriteError(ctx context.Context, db *gorm.DB, err error, name string, order int, excludeID string) error {
	if _, ok := types.AsCustomError(err); ok || !isDuplicateKey(err) {
		return err
	}

	if order > 0 {
		holder, lookupErr := findOrderHolder(db.WithContext(ctx), order, excludeID)
		if lookupErr == nil && holder != nil {
			metrics.AreaOrderConflicts.WithLabelValues("index").Inc()
			return orderConflict(order, holder.Name)
		}
	}

	return types.NewConflictError("area.name", fmt.Sprintf("Area %s already exists", name))
}
