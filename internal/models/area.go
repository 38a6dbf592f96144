package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Area types
const (
	AreaDistrict = "DISTRICT"
	AreaCity     = "CITY"
	AreaVillage  = "VILLAGE"
)

// AreaOrderIndex is the partial unique index over nonzero priority orders.
const AreaOrderIndex = "idx_areas_sort_order"

// Area is a district, city or village used for listing locations and home page navigation.
// Order 0 means "unordered"; any other value is unique across areas.
type Area struct {
	ID         string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name       string    `gorm:"uniqueIndex;size:120;not null" json:"name"`
	State      string    `gorm:"size:120;not null;default:'Haryana'" json:"state"`
	Type       string    `gorm:"size:16;not null;default:'DISTRICT'" json:"type"`
	Order      int       `gorm:"column:sort_order;not null;default:0" json:"order"`
	ShowOnHome bool      `gorm:"not null;default:false" json:"showOnHome"`
	IsPopular  bool      `gorm:"not null;default:false" json:"isPopular"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// TableName overrides the table name for Area
func (Area) TableName() string {
	return "areas"
}

// BeforeCreate assigns a uuid when the caller did not
func (a *Area) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
