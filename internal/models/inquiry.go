package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Inquiry types
const (
	InquiryProperty = "PROPERTY"
	InquiryGeneral  = "GENERAL"
	InquiryLoan     = "LOAN"
	InquiryVisit    = "VISIT"
	InquiryOther    = "OTHER"
)

// Inquiry statuses
const (
	InquiryPending   = "PENDING"
	InquiryContacted = "CONTACTED"
)

// Inquiry is a lead submitted from the public site.
// ListingID is a weak reference: there is no foreign key and the listing may be gone.
type Inquiry struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Phone     string    `gorm:"size:32;not null" json:"phone"`
	Type      string    `gorm:"size:16;not null" json:"type"`
	Message   *string   `gorm:"type:text" json:"message"`
	ListingID *string   `gorm:"type:varchar(36);index" json:"listingId"`
	Status    string    `gorm:"size:16;not null;default:'PENDING';index" json:"status"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName overrides the table name for Inquiry
func (Inquiry) TableName() string {
	return "inquiries"
}

// BeforeCreate assigns a uuid when the caller did not
func (i *Inquiry) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
