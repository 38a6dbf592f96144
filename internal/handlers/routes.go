package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/localnerve/propertyhub/internal/config"
	"github.com/localnerve/propertyhub/internal/logger"
	"github.com/localnerve/propertyhub/internal/middleware"
	"github.com/localnerve/propertyhub/internal/services"
	"gorm.io/gorm"
)

// Deps are the shared dependencies of every route
type Deps struct {
	Cfg       *config.Config
	DB        *gorm.DB
	Settings  *services.SettingsStore
	Validator services.SessionValidator
	Cache     services.Pinger
}

// NewApp creates the fiber app with global middleware. Routes are added by
// Register so callers can mount extra middleware (metrics, docs) first.
func NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler:          ErrorHandler,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.Middleware())
	app.Use(compress.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false,
	}))

	return app
}

// Register mounts every route and the trailing 404 handler
func Register(app *fiber.App, d Deps) {
	staff := middleware.RequireStaff(d.Validator, d.Cfg.StaffRoles)

	areas := &AreaHandler{DB: d.DB}
	categories := &CategoryHandler{DB: d.DB}
	listings := &ListingHandler{DB: d.DB, StatewideToken: d.Cfg.StatewideToken}
	inquiries := &InquiryHandler{DB: d.DB}
	settings := &SettingsHandler{Store: d.Settings}
	site := &SiteHandler{
		DB:             d.DB,
		Settings:       d.Settings,
		StatewideToken: d.Cfg.StatewideToken,
		BaseURL:        d.Cfg.SiteBaseURL,
	}
	health := &HealthHandler{Cfg: d.Cfg, DB: d.DB, Cache: d.Cache}

	app.Get("/health", health.Health)
	app.Get("/sitemap.xml", site.Sitemap)

	api := app.Group("/api")

	api.Get("/areas", areas.ListAreas)
	api.Post("/areas", staff, areas.CreateArea)
	api.Patch("/areas/:id", staff, areas.UpdateArea)
	api.Delete("/areas/:id", staff, areas.DeleteArea)

	api.Get("/categories", categories.ListCategories)
	api.Post("/categories", staff, categories.CreateCategory)
	api.Delete("/categories/:id", staff, categories.DeleteCategory)

	api.Get("/listings", listings.SearchListings)
	api.Get("/listings/:id", staff, listings.GetListing)
	api.Post("/listings", staff, listings.CreateListing)
	api.Patch("/listings/:id", staff, listings.UpdateListing)
	api.Delete("/listings/:id", staff, listings.DeleteListing)

	api.Post("/inquiries", inquiries.CreateInquiry)
	api.Get("/inquiries", staff, inquiries.ListInquiries)
	api.Patch("/inquiries/:id", staff, inquiries.UpdateInquiryStatus)

	api.Get("/settings", staff, settings.GetSettings)
	api.Patch("/settings", staff, settings.UpdateSettings)

	admin := api.Group("/admin", staff)
	admin.Get("/listings", listings.ListAllListings)
	admin.Get("/dashboard", site.Dashboard)

	public := api.Group("/site", middleware.Maintenance(d.Settings))
	public.Get("/home", site.Home)
	public.Get("/locations", site.Locations)
	public.Get("/properties/:city/:type?/:bracket?", site.Properties)
	public.Get("/property/:slug", site.Property)

	app.Use(NotFound)
}
