package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/localnerve/propertyhub/internal/models"
	"github.com/localnerve/propertyhub/internal/services"
	"github.com/localnerve/propertyhub/internal/testhelpers"
	"github.com/localnerve/propertyhub/internal/types"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func orderPtr(n int) *types.FlexInt {
	v := types.FlexInt(n)
	return &v
}

// TestCreateAreaDefaults tests the state and type defaults
func TestCreateAreaDefaults(t *testing.T) {
	db := testhelpers.SetupTestDB(t)

	area, err := services.CreateArea(context.Background(), db, services.AreaInput{Name: strPtr("  Hisar ")})
	if err != nil {
		t.Fatalf("CreateArea failed: %v", err)
	}
	if area.Name != "Hisar" {
		t.Errorf("Expected trimmed name Hisar, got %q", area.Name)
	}
	if area.State != "Haryana" || area.Type != models.AreaDistrict {
		t.Errorf("Expected Haryana/DISTRICT defaults, got %s/%s", area.State, area.Type)
	}
	if area.Order != 0 || area.ShowOnHome || area.IsPopular {
		t.Errorf("Expected zero order and no flags, got %+v", area)
	}
}

// TestCreateAreaOrderConflict tests that a nonzero order can be held by one area only
func TestCreateAreaOrderConflict(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	ctx := context.Background()

	if _, err := services.CreateArea(ctx, db, services.AreaInput{Name: strPtr("Hisar"), Order: orderPtr(1)}); err != nil {
		t.Fatalf("CreateArea failed: %v", err)
	}

	_, err := services.CreateArea(ctx, db, services.AreaInput{Name: strPtr("Rohtak"), Order: orderPtr(1)})
	if err == nil {
		t.Fatal("Expected order conflict, got nil")
	}
	if !types.IsKind(err, types.KindConflict) {
		t.Fatalf("Expected conflict error, got %v", err)
	}
	ce, _ := types.AsCustomError(err)
	if ce.Code != 400 {
		t.Errorf("Expected code 400, got %d", ce.Code)
	}
	if ce.Message != "Priority order 1 is already taken by Hisar" {
		t.Errorf("Unexpected message: %s", ce.Message)
	}

	if n := testhelpers.CountRows(t, db, &models.Area{}); n != 1 {
		t.Errorf("Expected 1 area after rejected create, got %d", n)
	}
}

// TestCreateAreaZeroOrderRepeatable tests that order 0 never conflicts
func TestCreateAreaZeroOrderRepeatable(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	ctx := context.Background()

	for _, name := range []string{"Hisar", "Rohtak", "Sirsa"} {
		if _, err := services.CreateArea(ctx, db, services.AreaInput{Name: strPtr(name), Order: orderPtr(0)}); err != nil {
			t.Fatalf("CreateArea %s failed: %v", name, err)
		}
	}
	if n := testhelpers.CountRows(t, db, &models.Area{}); n != 3 {
		t.Errorf("Expected 3 areas, got %d", n)
	}
}

// TestCreateAreaDuplicateName tests the unique name translation
func TestCreateAreaDuplicateName(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	ctx := context.Background()

	testhelpers.CreateTestArea(t, db, "Hisar", 0, false)

	_, err := services.CreateArea(ctx, db, services.AreaInput{Name: strPtr("Hisar")})
	if !types.IsKind(err, types.KindConflict) {
		t.Fatalf("Expected conflict error, got %v", err)
	}
	ce, _ := types.AsCustomError(err)
	if ce.Message != "Area Hisar already exists" {
		t.Errorf("Unexpected message: %s", ce.Message)
	}
}

// TestCreateAreaValidation tests rejected payloads
func TestCreateAreaValidation(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		in    services.AreaInput
		field string
	}{
		{"missing name", services.AreaInput{}, "name"},
		{"blank name", services.AreaInput{Name: strPtr("   ")}, "name"},
		{"negative order", services.AreaInput{Name: strPtr("Hisar"), Order: orderPtr(-1)}, "order"},
		{"bad type", services.AreaInput{Name: strPtr("Hisar"), Type: strPtr("STATE")}, "type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := services.CreateArea(ctx, db, tt.in)
			ce, ok := types.AsCustomError(err)
			if !ok || ce.Kind != types.KindValidation {
				t.Fatalf("Expected validation error, got %v", err)
			}
			if ce.Field != tt.field {
				t.Errorf("Expected field %s, got %s", tt.field, ce.Field)
			}
		})
	}

	if n := testhelpers.CountRows(t, db, &models.Area{}); n != 0 {
		t.Errorf("Expected no areas, got %d", n)
	}
}

// TestUpdateAreaOrder tests order changes on update
func TestUpdateAreaOrder(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	ctx := context.Background()

	hisar := testhelpers.CreateTestArea(t, db, "Hisar", 1, true)
	rohtak := testhelpers.CreateTestArea(t, db, "Rohtak", 2, true)

	// Keeping its own order is not a conflict
	updated, err := services.UpdateArea(ctx, db, hisar.ID, services.AreaInput{Order: orderPtr(1), IsPopular: boolPtr(true)})
	if err != nil {
		t.Fatalf("UpdateArea failed: %v", err)
	}
	if updated.Order != 1 || !updated.IsPopular {
		t.Errorf("Expected order 1 and popular, got %+v", updated)
	}

	_, err = services.UpdateArea(ctx, db, rohtak.ID, services.AreaInput{Order: orderPtr(1)})
	ce, ok := types.AsCustomError(err)
	if !ok || ce.Kind != types.KindConflict {
		t.Fatalf("Expected conflict error, got %v", err)
	}
	if ce.Message != "Priority order 1 is already taken by Hisar" {
		t.Errorf("Unexpected message: %s", ce.Message)
	}

	// Moving to zero frees the slot
	if _, err := services.UpdateArea(ctx, db, hisar.ID, services.AreaInput{Order: orderPtr(0)}); err != nil {
		t.Fatalf("UpdateArea to zero failed: %v", err)
	}
	updated, err = services.UpdateArea(ctx, db, rohtak.ID, services.AreaInput{Order: orderPtr(1)})
	if err != nil {
		t.Fatalf("UpdateArea into freed slot failed: %v", err)
	}
	if updated.Order != 1 {
		t.Errorf("Expected order 1, got %d", updated.Order)
	}
}

// TestUpdateAreaNotFound tests updates and deletes of a missing area
func TestUpdateAreaNotFound(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	ctx := context.Background()

	_, err := services.UpdateArea(ctx, db, "missing", services.AreaInput{Name: strPtr("Hisar")})
	if !types.IsKind(err, types.KindNotFound) {
		t.Errorf("Expected not found on update, got %v", err)
	}

	if err := services.DeleteArea(ctx, db, "missing"); !types.IsKind(err, types.KindNotFound) {
		t.Errorf("Expected not found on delete, got %v", err)
	}
}

// TestDeleteArea tests that a deleted area releases its order
func TestDeleteArea(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	ctx := context.Background()

	area := testhelpers.CreateTestArea(t, db, "Hisar", 3, false)
	if err := services.DeleteArea(ctx, db, area.ID); err != nil {
		t.Fatalf("DeleteArea failed: %v", err)
	}
	if _, err := services.CreateArea(ctx, db, services.AreaInput{Name: strPtr("Rohtak"), Order: orderPtr(3)}); err != nil {
		t.Errorf("Expected order 3 to be free after delete, got %v", err)
	}
}

// TestAreaOrderIndex tests the storage level backstop for nonzero orders
func TestAreaOrderIndex(t *testing.T) {
	db := testhelpers.SetupTestDB(t)

	testhelpers.CreateTestArea(t, db, "Hisar", 4, false)
	testhelpers.CreateTestArea(t, db, "Rohtak", 0, false)
	testhelpers.CreateTestArea(t, db, "Sirsa", 0, false)

	err := db.Create(&models.Area{Name: "Jind", State: "Haryana", Type: models.AreaDistrict, Order: 4}).Error
	if err == nil {
		t.Fatal("Expected the unique order index to reject a second order 4")
	}
	if !strings.Contains(strings.ToLower(err.Error()), "unique") && !strings.Contains(err.Error(), "duplicated key") {
		t.Errorf("Expected a unique violation, got %v", err)
	}
}

// TestHomeAreas tests home page area selection and ordering
func TestHomeAreas(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	ctx := context.Background()

	testhelpers.CreateTestArea(t, db, "Sirsa", 2, true)
	testhelpers.CreateTestArea(t, db, "Hisar", 1, true)
	testhelpers.CreateTestArea(t, db, "Ambala", 0, true)
	testhelpers.CreateTestArea(t, db, "Jind", 3, false)

	areas, err := services.HomeAreas(ctx, db)
	if err != nil {
		t.Fatalf("HomeAreas failed: %v", err)
	}

	want := []string{"Ambala", "Hisar", "Sirsa"}
	if len(areas) != len(want) {
		t.Fatalf("Expected %d areas, got %d", len(want), len(areas))
	}
	for i, name := range want {
		if areas[i].Name != name {
			t.Errorf("Position %d: expected %s, got %s", i, name, areas[i].Name)
		}
	}
}
