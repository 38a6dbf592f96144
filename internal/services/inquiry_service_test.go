package services_test

import (
	"context"
	"testing"

	"github.com/localnerve/propertyhub/internal/models"
	"github.com/localnerve/propertyhub/internal/services"
	"github.com/localnerve/propertyhub/internal/testhelpers"
	"github.com/localnerve/propertyhub/internal/types"
)

// TestCreateInquiryPhoneLength tests the ten character phone minimum
func TestCreateInquiryPhoneLength(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	ctx := context.Background()

	_, err := services.CreateInquiry(ctx, db, services.InquiryInput{Name: "Ravi", Phone: "123456789", Type: "GENERAL"})
	ce, ok := types.AsCustomError(err)
	if !ok || ce.Kind != types.KindValidation {
		t.Fatalf("Expected validation error, got %v", err)
	}
	if ce.Field != "phone" || ce.Message != "Valid phone number is required" {
		t.Errorf("Unexpected error %s: %s", ce.Field, ce.Message)
	}
	if n := testhelpers.CountRows(t, db, &models.Inquiry{}); n != 0 {
		t.Fatalf("Expected no inquiry stored, got %d", n)
	}

	inquiry, err := services.CreateInquiry(ctx, db, services.InquiryInput{Name: "Ravi", Phone: "1234567890", Type: "general"})
	if err != nil {
		t.Fatalf("CreateInquiry failed: %v", err)
	}
	if inquiry.Status != models.InquiryPending {
		t.Errorf("Expected status PENDING, got %s", inquiry.Status)
	}
	if inquiry.Type != models.InquiryGeneral {
		t.Errorf("Expected type GENERAL, got %s", inquiry.Type)
	}
	if inquiry.ListingID != nil || inquiry.Message != nil {
		t.Errorf("Expected no listing or message, got %+v", inquiry)
	}
}

// TestCreateInquiryValidation tests rejected leads
func TestCreateInquiryValidation(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		in    services.InquiryInput
		field string
	}{
		{"short name after trim", services.InquiryInput{Name: " A ", Phone: "9876543210", Type: "VISIT"}, "name"},
		{"unknown type", services.InquiryInput{Name: "Ravi", Phone: "9876543210", Type: "SPAM"}, "type"},
		{"blank phone", services.InquiryInput{Name: "Ravi", Phone: "          ", Type: "LOAN"}, "phone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := services.CreateInquiry(ctx, db, tt.in)
			ce, ok := types.AsCustomError(err)
			if !ok || ce.Kind != types.KindValidation {
				t.Fatalf("Expected validation error, got %v", err)
			}
			if ce.Field != tt.field {
				t.Errorf("Expected field %s, got %s", tt.field, ce.Field)
			}
		})
	}
}

// TestCreateInquiryListingReference tests the propertyId alias and dangling references
func TestCreateInquiryListingReference(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	ctx := context.Background()

	listing := testhelpers.CreateTestListing(t, db, testhelpers.ListingFixture{
		Title: "Corner Plot in Hisar", City: "Hisar", PropertyType: "PLOT", Price: 7_500_000,
	}, services.Bracket50LakhTo1Cr, "corner-plot-in-hisar")

	viaAlias, err := services.CreateInquiry(ctx, db, services.InquiryInput{
		Name: "Ravi", Phone: "9876543210", Type: "PROPERTY",
		PropertyID: strPtr(listing.ID), Message: strPtr("  Is it still available?  "),
	})
	if err != nil {
		t.Fatalf("CreateInquiry failed: %v", err)
	}
	if viaAlias.ListingID == nil || *viaAlias.ListingID != listing.ID {
		t.Errorf("Expected listing id from propertyId, got %v", viaAlias.ListingID)
	}
	if viaAlias.Message == nil || *viaAlias.Message != "Is it still available?" {
		t.Errorf("Expected trimmed message, got %v", viaAlias.Message)
	}

	dangling, err := services.CreateInquiry(ctx, db, services.InquiryInput{
		Name: "Sunita", Phone: "9876500000", Type: "PROPERTY", ListingID: strPtr("gone"),
	})
	if err != nil {
		t.Fatalf("CreateInquiry with dangling listing failed: %v", err)
	}

	views, err := services.ListInquiries(ctx, db)
	if err != nil {
		t.Fatalf("ListInquiries failed: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("Expected 2 inquiries, got %d", len(views))
	}
	for _, v := range views {
		switch v.ID {
		case viaAlias.ID:
			if v.Listing == nil || v.Listing.Title != listing.Title {
				t.Errorf("Expected listing title %s, got %+v", listing.Title, v.Listing)
			}
		case dangling.ID:
			if v.Listing != nil {
				t.Errorf("Expected no listing for dangling reference, got %+v", v.Listing)
			}
		default:
			t.Errorf("Unexpected inquiry %s", v.ID)
		}
	}
}

// TestUpdateInquiryStatus tests status transitions
func TestUpdateInquiryStatus(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	ctx := context.Background()

	inquiry, err := services.CreateInquiry(ctx, db, services.InquiryInput{Name: "Ravi", Phone: "9876543210", Type: "LOAN"})
	if err != nil {
		t.Fatalf("CreateInquiry failed: %v", err)
	}

	updated, err := services.UpdateInquiryStatus(ctx, db, inquiry.ID, "contacted")
	if err != nil {
		t.Fatalf("UpdateInquiryStatus failed: %v", err)
	}
	if updated.Status != models.InquiryContacted {
		t.Errorf("Expected CONTACTED, got %s", updated.Status)
	}

	if _, err := services.UpdateInquiryStatus(ctx, db, inquiry.ID, "DONE"); !types.IsKind(err, types.KindValidation) {
		t.Errorf("Expected validation error for DONE, got %v", err)
	}
	if _, err := services.UpdateInquiryStatus(ctx, db, "missing", "PENDING"); !types.IsKind(err, types.KindNotFound) {
		t.Errorf("Expected not found, got %v", err)
	}
}
