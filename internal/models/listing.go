package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Listing statuses
const (
	StatusActive = "ACTIVE"
	StatusSold   = "SOLD"
)

// Listing is a property offered on the public site
type Listing struct {
	ID            string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Title         string    `gorm:"size:255;not null" json:"title"`
	Slug          string    `gorm:"uniqueIndex;size:255;not null" json:"slug"`
	Description   string    `gorm:"type:text;not null" json:"description"`
	City          string    `gorm:"size:120;not null;index" json:"city"`
	Locality      string    `gorm:"size:255;not null" json:"locality"`
	PropertyType  string    `gorm:"size:64;not null;index" json:"propertyType"`
	BHK           *int      `gorm:"column:bhk" json:"bhk"`
	Price         int64     `gorm:"not null;index" json:"price"`
	PriceCategory string    `gorm:"size:32;not null;index" json:"priceCategory"`
	AreaSqFt      float64   `gorm:"not null;default:0" json:"areaSqFt"`
	Images        ImageList `json:"images"`
	Latitude      *float64  `json:"latitude"`
	Longitude     *float64  `json:"longitude"`
	Featured      bool      `gorm:"not null;default:false" json:"featured"`
	Status        string    `gorm:"size:16;not null;default:'ACTIVE';index" json:"status"`
	CreatedAt     time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// TableName overrides the table name for Listing
func (Listing) TableName() string {
	return "listings"
}

// BeforeCreate assigns a uuid when the caller did not
func (l *Listing) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
