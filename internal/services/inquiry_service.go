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

// InquiryInput is a lead posted from the public site.
// PropertyID is accepted as an alias of ListingID.
type InquiryInput struct {
	Name       string  `json:"name" validate:"min=2,max=255"`
	Phone      string  `json:"phone" validate:"min=10,max=32"`
	Type       string  `json:"type" validate:"oneof=PROPERTY GENERAL LOAN VISIT OTHER"`
	Message    *string `json:"message"`
	ListingID  *string `json:"listingId" validate:"omitempty,max=36"`
	PropertyID *string `json:"propertyId" validate:"omitempty,max=36"`
}

// InquiryListing is the part of a referenced listing shown with an inquiry
type InquiryListing struct {
	Title string `json:"title"`
}

// InquiryView is an inquiry with the title of its listing, when that listing still exists
type InquiryView struct {
	models.Inquiry
	Listing *InquiryListing `json:"listing"`
}

// CreateInquiry validates and stores a lead with status PENDING.
// The listing reference is not checked; it may dangle.
func CreateInquiry(ctx context.Context, db *gorm.DB, in InquiryInput) (*models.Inquiry, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Type = strings.ToUpper(strings.TrimSpace(in.Type))

	if err := validateStruct(in); err != nil {
		if ce, ok := types.AsCustomError(err); ok {
			metrics.InquiriesRejected.WithLabelValues(ce.Field).Inc()
		}
		return nil, err
	}

	inquiry := models.Inquiry{
		Name:   in.Name,
		Phone:  in.Phone,
		Type:   in.Type,
		Status: models.InquiryPending,
	}
	if msg := trimPtr(in.Message); msg != "" {
		inquiry.Message = &msg
	}
	listingID := trimPtr(in.ListingID)
	if listingID == "" {
		listingID = trimPtr(in.PropertyID)
	}
	if listingID != "" {
		inquiry.ListingID = &listingID
	}

	if err := db.WithContext(ctx).Create(&inquiry).Error; err != nil {
		return nil, fmt.Errorf("create inquiry: %w", err)
	}

	metrics.InquiriesReceived.WithLabelValues(inquiry.Type).Inc()
	return &inquiry, nil
}

// ListInquiries returns every inquiry newest first, each with its listing title
func ListInquiries(ctx context.Context, db *gorm.DB) ([]InquiryView, error) {
	var inquiries []models.Inquiry
	if err := db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&inquiries).Error; err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}

	ids := make([]string, 0, len(inquiries))
	seen := map[string]bool{}
	for _, inq := range inquiries {
		if inq.ListingID != nil && !seen[*inq.ListingID] {
			seen[*inq.ListingID] = true
			ids = append(ids, *inq.ListingID)
		}
	}

	titles := map[string]string{}
	if len(ids) > 0 {
		var listings []models.Listing
		if err := db.WithContext(ctx).Select("id", "title").Where("id IN ?", ids).Find(&listings).Error; err != nil {
			return nil, fmt.Errorf("list inquiry listings: %w", err)
		}
		for _, l := range listings {
			titles[l.ID] = l.Title
		}
	}

	views := make([]InquiryView, 0, len(inquiries))
	for _, inq := range inquiries {
		view := InquiryView{Inquiry: inq}
		if inq.ListingID != nil {
			if title, ok := titles[*inq.ListingID]; ok {
				view.Listing = &InquiryListing{Title: title}
			}
		}
		views = append(views, view)
	}
	return views, nil
}

// UpdateInquiryStatus moves an inquiry between PENDING and CONTACTED
func UpdateInquiryStatus(ctx context.Context, db *gorm.DB, id, status string) (*models.Inquiry, error) {
	status = strings.ToUpper(strings.TrimSpace(status))
	if status != models.InquiryPending && status != models.InquiryContacted {
		return nil, types.NewValidationError("status", "Status must be one of PENDING, CONTACTED")
	}

	var inquiry models.Inquiry
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&inquiry).Error; err != nil {
			if isNotFound(err) {
				return types.NewNotFoundError("inquiry", id)
			}
			return err
		}
		if err := tx.Model(&inquiry).Update("status", status).Error; err != nil {
			return err
		}
		inquiry.Status = status
		return nil
	})
	if err != nil {
		if _, ok := types.AsCustomError(err); ok {
			return nil, err
		}
		return nil, fmt.Errorf("update inquiry: %w", err)
	}
	return &inquiry, nil
}
