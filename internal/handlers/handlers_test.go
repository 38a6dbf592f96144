// handlers_test.go
//
// Handler tests over an in-memory database
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

package handlers_test

import (
	"io"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/propertyhub/internal/config"
	"github.com/localnerve/propertyhub/internal/handlers"
	"github.com/localnerve/propertyhub/internal/models"
	"github.com/localnerve/propertyhub/internal/services"
	"github.com/localnerve/propertyhub/internal/testhelpers"
	"gorm.io/gorm"
)

type testApp struct {
	app  *fiber.App
	db   *gorm.DB
	auth map[string]string
}

// setupApp builds the full route table over an in-memory database with JWT staff auth
func setupApp(t *testing.T) *testApp {
	t.Helper()
	db := testhelpers.SetupTestDB(t)
	validator := testhelpers.NewTestValidator()

	cfg := &config.Config{
		Environment:    "test",
		SiteBaseURL:    "https://propertyhub.example",
		DBType:         "sqlite",
		AuthMode:       config.AuthModeJWT,
		JWTSecret:      testhelpers.TestJWTSecret,
		StaffRoles:     []string{"admin"},
		StatewideToken: "haryana",
	}

	app := handlers.NewApp()
	handlers.Register(app, handlers.Deps{
		Cfg:       cfg,
		DB:        db,
		Settings:  services.NewSettingsStore(db, nil),
		Validator: validator,
	})

	return &testApp{
		app:  app,
		db:   db,
		auth: testhelpers.BearerHeader(testhelpers.StaffToken(t, validator, "admin")),
	}
}

const listingBody = `{
	"title": "Luxury 3 BHK Flat in Hisar",
	"description": "Spacious flat close to the city centre and the main market.",
	"city": "Hisar",
	"locality": "Model Town",
	"propertyType": "FLAT",
	"bhk": 3,
	"price": 7500000,
	"areaSqFt": 1450,
	"images": "https://images.example.com/flat-1.jpg"
}`

// TestStaffRoutesRequireSession tests that staff routes reject anonymous and unprivileged requests
func TestStaffRoutesRequireSession(t *testing.T) {
	ta := setupApp(t)
	editor := testhelpers.BearerHeader(testhelpers.StaffToken(t, testhelpers.NewTestValidator(), "editor"))

	routes := []struct {
		method, target string
	}{
		{fiber.MethodPost, "/api/areas"},
		{fiber.MethodPost, "/api/listings"},
		{fiber.MethodGet, "/api/inquiries"},
		{fiber.MethodGet, "/api/settings"},
		{fiber.MethodGet, "/api/admin/dashboard"},
		{fiber.MethodDelete, "/api/categories/abc"},
	}

	for _, r := range routes {
		resp := testhelpers.DoJSON(t, ta.app, r.method, r.target, nil, nil)
		testhelpers.AssertStatus(t, resp, fiber.StatusUnauthorized)

		var body map[string]interface{}
		testhelpers.ParseJSON(t, resp, &body)
		if body["type"] != "authorization" || body["ok"] != false {
			t.Errorf("%s %s: unexpected body %v", r.method, r.target, body)
		}

		resp = testhelpers.DoJSON(t, ta.app, r.method, r.target, nil, editor)
		testhelpers.AssertStatus(t, resp, fiber.StatusUnauthorized)
	}

	resp := testhelpers.DoJSON(t, ta.app, fiber.MethodGet, "/api/admin/dashboard", nil, map[string]string{"Authorization": "Bearer not-a-token"})
	testhelpers.AssertStatus(t, resp, fiber.StatusUnauthorized)
}

// TestAreaRoutes tests the area lifecycle and the order conflict response
func TestAreaRoutes(t *testing.T) {
	ta := setupApp(t)

	resp := testhelpers.DoJSON(t, ta.app, fiber.MethodPost, "/api/areas", map[string]interface{}{"name": "Hisar", "order": "1", "showOnHome": true}, ta.auth)
	testhelpers.AssertStatus(t, resp, fiber.StatusCreated)
	var hisar models.Area
	testhelpers.ParseJSON(t, resp, &hisar)
	if hisar.ID == "" || hisar.Order != 1 || !hisar.ShowOnHome {
		t.Fatalf("Unexpected area %+v", hisar)
	}

	resp = testhelpers.DoJSON(t, ta.app, fiber.MethodPost, "/api/areas", map[string]interface{}{"name": "Rohtak", "order": 1}, ta.auth)
	testhelpers.AssertStatus(t, resp, fiber.StatusBadRequest)
	var conflict map[string]interface{}
	testhelpers.ParseJSON(t, resp, &conflict)
	if conflict["message"] != "Priority order 1 is already taken by Hisar" {
		t.Errorf("Unexpected conflict body %v", conflict)
	}

	resp = testhelpers.DoJSON(t, ta.app, fiber.MethodPatch, "/api/areas/"+hisar.ID, map[string]interface{}{"isPopular": true}, ta.auth)
	testhelpers.AssertStatus(t, resp, fiber.StatusOK)

	resp = testhelpers.DoJSON(t, ta.app, fiber.MethodGet, "/api/areas", nil, nil)
	testhelpers.AssertStatus(t, resp, fiber.StatusOK)
	var areas []models.Area
	testhelpers.ParseJSON(t, resp, &areas)
	if len(areas) != 1 || !areas[0].IsPopular {
		t.Errorf("Expected one popular area, got %+v", areas)
	}

	resp = testhelpers.DoJSON(t, ta.app, fiber.MethodDelete, "/api/areas/"+hisar.ID, nil, ta.auth)
	testhelpers.AssertStatus(t, resp, fiber.StatusNoContent)
	testhelpers.AssertNoContent(t, resp)

	resp = testhelpers.DoJSON(t, ta.app, fiber.MethodDelete, "/api/areas/"+hisar.ID, nil, ta.auth)
	testhelpers.AssertStatus(t, resp, fiber.StatusNotFound)
}

// TestInvalidBody tests malformed JSON handling
func TestInvalidBody(t *testing.T) {
	ta := setupApp(t)

	resp := testhelpers.DoJSON(t, ta.app, fiber.MethodPost, "/api/areas", `{"name":`, ta.auth)
	testhelpers.AssertStatus(t, resp, fiber.StatusBadRequest)

	var body map[string]interface{}
	testhelpers.ParseJSON(t, resp, &body)
	if body["type"] != "validation.body" {
		t.Errorf("Expected validation.body, got %v", body["type"])
	}
}

// TestListingRoutes tests create, search and admin listing routes
func TestListingRoutes(t *testing.T) {
	ta := setupApp(t)

	resp := testhelpers.DoJSON(t, ta.app, fiber.MethodPost, "/api/listings", listingBody, ta.auth)
	testhelpers.AssertStatus(t, resp, fiber.StatusCreated)
	var created models.Listing
	testhelpers.ParseJSON(t, resp, &created)
	if created.Slug != "luxury-3-bhk-flat-in-hisar" || created.PriceCategory != services.Bracket50LakhTo1Cr {
		t.Fatalf("Unexpected listing %+v", created)
	}

	resp = testhelpers.DoJSON(t, ta.app, fiber.MethodPost, "/api/listings", listingBody, ta.auth)
	testhelpers.AssertStatus(t, resp, fiber.StatusBadRequest)

	resp = testhelpers.DoJSON(t, ta.app, fiber.MethodGet, "/api/listings?city=hisar&type=flat", nil, nil)
	testhelpers.AssertStatus(t, resp, fiber.StatusOK)
	var found []models.Listing
	testhelpers.ParseJSON(t, resp, &found)
	if len(found) != 1 || found[0].ID != created.ID {
		t.Errorf("Expected the created listing, got %d results", len(found))
	}

	resp = testhelpers.DoJSON(t, ta.app, fiber.MethodGet, "/api/listings?minPrice=lots", nil, nil)
	testhelpers.AssertStatus(t, resp, fiber.StatusBadRequest)

	resp = testhelpers.DoJSON(t, ta.app, fiber.MethodPatch, "/api/listings/"+created.ID, map[string]interface{}{"status": "SOLD"}, ta.auth)
	testhelpers.AssertStatus(t, resp, fiber.StatusOK)

	// Sold listings leave the public search but stay in the admin list
	resp = testhelpers.DoJSON(t, ta.app, fiber.MethodGet, "/api/listings", nil, nil)
	testhelpers.ParseJSON(t, resp, &found)
	if len(found) != 0 {
		t.Errorf("Expected no public results, got %d", len(found))
	}
	resp = testhelpers.DoJSON(t, ta.app, fiber.MethodGet, "/api/admin/listings", nil, ta.auth)
	testhelpers.AssertStatus(t, resp, fiber.StatusOK)
	testhelpers.ParseJSON(t, resp, &found)
	if len(found) != 1 {
		t.Errorf("Expected one admin result, got %d", len(found))
	}

	resp = testhelpers.DoJSON(t, ta.app, fiber.MethodDelete, "/api/listings/"+created.ID, nil, ta.auth)
	testhelpers.AssertStatus(t, resp, fiber.StatusOK)
	var deleted models.Listing
	testhelpers.ParseJSON(t, resp, &deleted)
	if deleted.ID != created.ID {
		t.Errorf("Expected the deleted listing in the response, got %s", deleted.ID)
	}

	resp = testhelpers.DoJSON(t, ta.app, fiber.MethodGet, "/api/listings/"+created.ID, nil, ta.auth)
	testhelpers.AssertStatus(t, resp, fiber.StatusNotFound)
}

// TestInquiryRoutes tests public intake and staff follow-up
func TestInquiryRoutes(t *testing.T) {
	ta := setupApp(t)

	resp := testhelpers.DoJSON(t, ta.app, fiber.MethodPost, "/api/inquiries", map[string]interface{}{
		"name": "Ravi", "phone": "12345", "type": "GENERAL",
	}, nil)
	testhelpers.AssertStatus(t, resp, fiber.StatusBadRequest)
	var rejected map[string]interface{}
	testhelpers.ParseJSON(t, resp, &rejected)
	if rejected["field"] != "phone" {
		t.Errorf("Expected phone to be named, got %v", rejected)
	}

	resp = testhelpers.DoJSON(t, ta.app, fiber.MethodPost, "/api/inquiries", map[string]interface{}{
		"name": "Ravi", "phone": "9876543210", "type": "visit", "propertyId": "some-listing",
	}, nil)
	testhelpers.AssertStatus(t, resp, fiber.StatusCreated)
	var inquiry models.Inquiry
	testhelpers.ParseJSON(t, resp, &inquiry)
	if inquiry.Status != models.InquiryPending || inquiry.Type != models.InquiryVisit {
		t.Fatalf("Unexpected inquiry %+v", inquiry)
	}

	resp = testhelpers.DoJSON(t, ta.app, fiber.MethodPatch, "/api/inquiries/"+inquiry.ID, map[string]string{"status": "CONTACTED"}, ta.auth)
	testhelpers.AssertStatus(t, resp, fiber.StatusOK)

	resp = testhelpers.DoJSON(t, ta.app, fiber.MethodGet, "/api/inquiries", nil, ta.auth)
	testhelpers.AssertStatus(t, resp, fiber.StatusOK)
	var views []services.InquiryView
	testhelpers.ParseJSON(t, resp, &views)
	if len(views) != 1 || views[0].Status != models.InquiryContacted || views[0].Listing != nil {
		t.Errorf("Unexpected inquiry list %+v", views)
	}

	// Inquiries are kept; there is no delete route
	resp = testhelpers.DoJSON(t, ta.app, fiber.MethodDelete, "/api/inquiries/"+inquiry.ID, nil, ta.auth)
	testhelpers.AssertStatus(t, resp, fiber.StatusNotFound)
	if n := testhelpers.CountRows(t, ta.db, &models.Inquiry{}); n != 1 {
		t.Errorf("Expected the inquiry to remain, got %d rows", n)
	}
}

// TestCategoryRoutes tests the category routes
func TestCategoryRoutes(t *testing.T) {
	ta := setupApp(t)

	resp := testhelpers.DoJSON(t, ta.app, fiber.MethodPost, "/api/categories", map[string]string{"name": "plot", "label": "Plots"}, ta.auth)
	testhelpers.AssertStatus(t, resp, fiber.StatusCreated)
	var category models.Category
	testhelpers.ParseJSON(t, resp, &category)

	resp = testhelpers.DoJSON(t, ta.app, fiber.MethodPost, "/api/categories", map[string]string{"name": "PLOT", "label": "Land"}, ta.auth)
	testhelpers.AssertStatus(t, resp, fiber.StatusBadRequest)

	resp = testhelpers.DoJSON(t, ta.app, fiber.MethodGet, "/api/categories", nil, nil)
	testhelpers.AssertStatus(t, resp, fiber.StatusOK)
	var categories []models.Category
	testhelpers.ParseJSON(t, resp, &categories)
	if len(categories) != 1 || categories[0].Name != "PLOT" {
		t.Errorf("Unexpected categories %+v", categories)
	}

	resp = testhelpers.DoJSON(t, ta.app, fiber.MethodDelete, "/api/categories/"+category.ID, nil, ta.auth)
	testhelpers.AssertStatus(t, resp, fiber.StatusNoContent)
}

// TestMaintenanceMode tests the 503 gate on the public site routes
func TestMaintenanceMode(t *testing.T) {
	ta := setupApp(t)

	resp := testhelpers.DoJSON(t, ta.app, fiber.MethodGet, "/api/site/home", nil, nil)
	testhelpers.AssertStatus(t, resp, fiber.StatusOK)
	var home services.HomePage
	testhelpers.ParseJSON(t, resp, &home)
	if home.Settings.SiteName != models.DefaultSettings().SiteName {
		t.Errorf("Expected default site name, got %s", home.Settings.SiteName)
	}

	resp = testhelpers.DoJSON(t, ta.app, fiber.MethodPatch, "/api/settings", map[string]interface{}{"maintenanceMode": true, "siteName": "Hisar Homes"}, ta.auth)
	testhelpers.AssertStatus(t, resp, fiber.StatusOK)

	for _, target := range []string{"/api/site/home", "/api/site/locations", "/api/site/properties/haryana"} {
		resp = testhelpers.DoJSON(t, ta.app, fiber.MethodGet, target, nil, nil)
		testhelpers.AssertStatus(t, resp, fiber.StatusServiceUnavailable)
		var body map[string]interface{}
		testhelpers.ParseJSON(t, resp, &body)
		if body["maintenance"] != true || body["siteName"] != "Hisar Homes" {
			t.Errorf("%s: unexpected maintenance body %v", target, body)
		}
	}

	// The API itself stays up
	resp = testhelpers.DoJSON(t, ta.app, fiber.MethodGet, "/api/areas", nil, nil)
	testhelpers.AssertStatus(t, resp, fiber.StatusOK)

	resp = testhelpers.DoJSON(t, ta.app, fiber.MethodPatch, "/api/settings", map[string]interface{}{"maintenanceMode": false}, ta.auth)
	testhelpers.AssertStatus(t, resp, fiber.StatusOK)
	resp = testhelpers.DoJSON(t, ta.app, fiber.MethodGet, "/api/site/home", nil, nil)
	testhelpers.AssertStatus(t, resp, fiber.StatusOK)
}

// TestSitePages tests the search and detail page routes
func TestSitePages(t *testing.T) {
	ta := setupApp(t)

	testhelpers.CreateTestListing(t, ta.db, testhelpers.ListingFixture{Title: "Corner Plot in Hisar", City: "Hisar", PropertyType: "PLOT", Price: 7_500_000}, services.Bracket50LakhTo1Cr, "corner-plot-in-hisar")
	testhelpers.CreateTestListing(t, ta.db, testhelpers.ListingFixture{Title: "Penthouse in Gurugram", City: "Gurugram", PropertyType: "FLAT", Price: 25_000_000}, services.BracketAbove2Crore, "penthouse-in-gurugram")

	resp := testhelpers.DoJSON(t, ta.app, fiber.MethodGet, "/api/site/properties/haryana", nil, nil)
	testhelpers.AssertStatus(t, resp, fiber.StatusOK)
	var page handlers.PropertiesPage
	testhelpers.ParseJSON(t, resp, &page)
	if !page.Statewide || len(page.Listings) != 2 {
		t.Errorf("Expected statewide search with 2 listings, got %v/%d", page.Statewide, len(page.Listings))
	}

	resp = testhelpers.DoJSON(t, ta.app, fiber.MethodGet, "/api/site/properties/hisar/plot/"+services.Bracket50LakhTo1Cr, nil, nil)
	testhelpers.AssertStatus(t, resp, fiber.StatusOK)
	testhelpers.ParseJSON(t, resp, &page)
	if page.Statewide || len(page.Listings) != 1 || page.Listings[0].City != "Hisar" {
		t.Errorf("Unexpected city search result %+v", page)
	}

	resp = testhelpers.DoJSON(t, ta.app, fiber.MethodGet, "/api/site/property/penthouse-in-gurugram", nil, nil)
	testhelpers.AssertStatus(t, resp, fiber.StatusOK)

	resp = testhelpers.DoJSON(t, ta.app, fiber.MethodGet, "/api/site/property/missing-slug", nil, nil)
	testhelpers.AssertStatus(t, resp, fiber.StatusNotFound)
}

// TestSitemapAndHealth tests the root level routes
func TestSitemapAndHealth(t *testing.T) {
	ta := setupApp(t)
	testhelpers.CreateTestListing(t, ta.db, testhelpers.ListingFixture{Title: "Corner Plot in Hisar", City: "Hisar", PropertyType: "PLOT", Price: 7_500_000}, services.Bracket50LakhTo1Cr, "corner-plot-in-hisar")

	resp := testhelpers.DoJSON(t, ta.app, fiber.MethodGet, "/sitemap.xml", nil, nil)
	testhelpers.AssertStatus(t, resp, fiber.StatusOK)
	if ct := resp.Header.Get(fiber.HeaderContentType); !strings.HasPrefix(ct, fiber.MIMEApplicationXML) {
		t.Errorf("Expected XML content type, got %s", ct)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "<loc>https://propertyhub.example/property/corner-plot-in-hisar</loc>") {
		t.Errorf("Expected listing in sitemap, got %s", body)
	}

	resp = testhelpers.DoJSON(t, ta.app, fiber.MethodGet, "/health", nil, nil)
	testhelpers.AssertStatus(t, resp, fiber.StatusOK)
	var health services.HealthCheckResult
	testhelpers.ParseJSON(t, resp, &health)
	if health.Status != "healthy" || health.Database != "ok" {
		t.Errorf("Unexpected health %+v", health)
	}
}

// TestNotFound tests the trailing 404 handler
func TestNotFound(t *testing.T) {
	ta := setupApp(t)

	resp := testhelpers.DoJSON(t, ta.app, fiber.MethodGet, "/api/nothing-here", nil, nil)
	testhelpers.AssertStatus(t, resp, fiber.StatusNotFound)

	var body map[string]interface{}
	testhelpers.ParseJSON(t, resp, &body)
	if body["message"] != "[404] Resource Not Found" {
		t.Errorf("Unexpected body %v", body)
	}
}
