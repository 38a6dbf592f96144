package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/localnerve/propertyhub/internal/models"
	"github.com/localnerve/propertyhub/internal/types"
	"gorm.io/gorm"
)

// CategoryInput creates a property category
type CategoryInput struct {
	Name  string `json:"name" validate:"required,max=64"`
	Label string `json:"label" validate:"required,max=120"`
}

// ListCategories returns every category sorted by label
func ListCategories(ctx context.Context, db *gorm.DB) ([]models.Category, error) {
	categories := []models.Category{}
	if err := db.WithContext(ctx).Order("label ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// CreateCategory stores a category. Names are upper-cased tags and must be unique.
func CreateCategory(ctx context.Context, db *gorm.DB, in CategoryInput) (*models.Category, error) {
	in.Name = strings.ToUpper(strings.TrimSpace(in.Name))
	in.Label = strings.TrimSpace(in.Label)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	category := models.Category{Name: in.Name, Label: in.Label}
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Category{}).Where("name = ?", in.Name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return categoryConflict(in.Name)
		}
		return tx.Create(&category).Error
	})
	if err != nil {
		if _, ok := types.AsCustomError(err); ok {
			return nil, err
		}
		if isDuplicateKey(err) {
			return nil, categoryConflict(in.Name)
		}
		return nil, fmt.Errorf("create category: %w", err)
	}
	return &category, nil
}

// DeleteCategory removes a category. Listings keep their property type string.
func DeleteCategory(ctx context.Context, db *gorm.DB, id string) error {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&models.Category{})
	if result.Error != nil {
		return fmt.Errorf("delete category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return types.NewNotFoundError("category", id)
	}
	return nil
}

func categoryConflict(name string) error {
	return types.NewConflictError("category.name", fmt.Sprintf("Category %s already exists", name))
}
