package handlers

import (
	"encoding/xml"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/propertyhub/internal/middleware"
	"github.com/localnerve/propertyhub/internal/models"
	"github.com/localnerve/propertyhub/internal/services"
	"gorm.io/gorm"
)

// SiteHandler serves the data behind the public site pages and the staff dashboard
type SiteHandler struct {
	DB             *gorm.DB
	Settings       *services.SettingsStore
	StatewideToken string
	BaseURL        string
}

// PropertiesPage is the result of a location/type/bracket search page
type PropertiesPage struct {
	Location     string           `json:"location"`
	Statewide    bool             `json:"statewide"`
	PropertyType string           `json:"propertyType,omitempty"`
	Bracket      string           `json:"bracket,omitempty"`
	Listings     []models.Listing `json:"listings"`
}

// settings returns the settings loaded by the maintenance gate, or loads them
func (h *SiteHandler) settings(c *fiber.Ctx) (models.Settings, error) {
	if s, ok := c.Locals(middleware.LocalsSettings).(models.Settings); ok {
		return s, nil
	}
	return h.Settings.Load(c.UserContext())
}

// Home handles GET /api/site/home
// @Summary Home page data
// @Description Settings, featured listings, home page areas in priority order, and popular area names
// @Tags Site
// @Produce json
// @Success 200 {object} services.HomePage
// @Failure 500 {object} utils.ErrorResponseStruct
// @Failure 503 {object} utils.MaintenanceResponseStruct
// @Router /site/home [get]
func (h *SiteHandler) Home(c *fiber.Ctx) error {
	settings, err := h.settings(c)
	if err != nil {
		return respondError(c, err, "home")
	}

	page, err := services.LoadHomePage(c.UserContext(), h.DB, settings)
	if err != nil {
		return respondError(c, err, "home")
	}
	return c.JSON(page)
}

// Locations handles GET /api/site/locations
// @Summary Locations page data
// @Tags Site
// @Produce json
// @Success 200 {object} services.LocationsPage
// @Failure 500 {object} utils.ErrorResponseStruct
// @Failure 503 {object} utils.MaintenanceResponseStruct
// @Router /site/locations [get]
func (h *SiteHandler) Locations(c *fiber.Ctx) error {
	settings, err := h.settings(c)
	if err != nil {
		return respondError(c, err, "locations")
	}

	page, err := services.LoadLocationsPage(c.UserContext(), h.DB, settings)
	if err != nil {
		return respondError(c, err, "locations")
	}
	return c.JSON(page)
}

// Properties handles GET /api/site/properties/:city/:type?/:bracket?
// @Summary Search page data
// @Description ACTIVE listings for a city (or the statewide token), optional property type and price bracket
// @Tags Site
// @Produce json
// @Param city path string true "City, or the statewide token"
// @Param type path string false "Property type"
// @Param bracket path string false "Price bracket"
// @Param minPrice query number false "Minimum price, inclusive"
// @Param maxPrice query number false "Maximum price, inclusive"
// @Success 200 {object} PropertiesPage
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Failure 503 {object} utils.MaintenanceResponseStruct
// @Router /site/properties/{city}/{type}/{bracket} [get]
func (h *SiteHandler) Properties(c *fiber.Ctx) error {
	params := services.ListingQueryParams{
		Location:     c.Params("city"),
		PropertyType: c.Params("type"),
		Bracket:      c.Params("bracket"),
		MinPrice:     c.Query("minPrice"),
		MaxPrice:     c.Query("maxPrice"),
		Page:         c.Query("page"),
		PageSize:     c.Query("pageSize"),
	}
	q, err := services.ParseListingQuery(h.StatewideToken, params)
	if err != nil {
		return respondError(c, err, "properties")
	}

	listings, err := services.SearchListings(c.UserContext(), h.DB, q)
	if err != nil {
		return respondError(c, err, "properties")
	}

	return c.JSON(PropertiesPage{
		Location:     params.Location,
		Statewide:    q.Statewide(),
		PropertyType: params.PropertyType,
		Bracket:      params.Bracket,
		Listings:     listings,
	})
}

// Property handles GET /api/site/property/:slug
// @Summary Listing detail page data
// @Tags Site
// @Produce json
// @Param slug path string true "Listing slug"
// @Success 200 {object} models.Listing
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Failure 503 {object} utils.MaintenanceResponseStruct
// @Router /site/property/{slug} [get]
func (h *SiteHandler) Property(c *fiber.Ctx) error {
	listing, err := services.GetListingBySlug(c.UserContext(), h.DB, c.Params("slug"))
	if err != nil {
		return respondError(c, err, "property")
	}
	return c.JSON(listing)
}

// Sitemap handles GET /sitemap.xml
func (h *SiteHandler) Sitemap(c *fiber.Ctx) error {
	sm, err := services.BuildSitemap(c.UserContext(), h.DB, h.BaseURL)
	if err != nil {
		return respondError(c, err, "sitemap")
	}

	body, err := xml.MarshalIndent(sm, "", "  ")
	if err != nil {
		return respondError(c, err, "sitemap")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Send(append([]byte(xml.Header), body...))
}

// Dashboard handles GET /api/admin/dashboard
// @Summary Staff dashboard counts
// @Tags Admin
// @Produce json
// @Success 200 {object} services.DashboardStats
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Security BearerAuth
// @Router /admin/dashboard [get]
func (h *SiteHandler) Dashboard(c *fiber.Ctx) error {
	stats, err := services.LoadDashboardStats(c.UserContext(), h.DB)
	if err != nil {
		return respondError(c, err, "dashboard")
	}
	return c.JSON(stats)
}
