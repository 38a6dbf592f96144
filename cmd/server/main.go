package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	swagger "github.com/gofiber/swagger"
	"github.com/localnerve/propertyhub/internal/cache"
	"github.com/localnerve/propertyhub/internal/config"
	"github.com/localnerve/propertyhub/internal/database"
	"github.com/localnerve/propertyhub/internal/handlers"
	"github.com/localnerve/propertyhub/internal/logger"
	"github.com/localnerve/propertyhub/internal/services"
	"go.uber.org/zap"

	_ "github.com/localnerve/propertyhub/docs/api" // Swagger docs
)

// @title Property Hub API
// @version 1.0.0
// @description Real estate listing service for Haryana: listings, areas, categories, inquiries and site settings
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/localnerve/propertyhub
// @contact.email info@localnerve.com

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name cookie_session

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	var envFilename string
	flag.StringVar(&envFilename, "f", os.Getenv("ENV_FILE"), "path to the .env file")
	flag.Parse()

	cfg, err := config.LoadFile(envFilename)
	if err != nil {
		// The logger is not configured yet
		logger.InitLogger(&logger.LogConfig{Level: "info", ServiceName: "propertyhub"})
		logger.GetLogger().Fatal("Failed to load configuration", zap.Error(err))
	}

	if err := logger.InitLogger(&logger.LogConfig{
		Level:       cfg.LogLevel,
		Environment: cfg.Environment,
		ServiceName: "propertyhub",
	}); err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.GetLogger()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	deps := handlers.Deps{Cfg: cfg, DB: db}

	if cfg.RedisURL != "" {
		client, err := cache.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Fatal("Failed to configure redis", zap.Error(err))
		}
		defer client.Close()

		settingsCache := cache.NewRedisSettings(client, cfg.SettingsCacheTTL)
		deps.Settings = services.NewSettingsStore(db, settingsCache)
		deps.Cache = settingsCache
		log.Info("Settings cache enabled", zap.Duration("ttl", cfg.SettingsCacheTTL))
	} else {
		deps.Settings = services.NewSettingsStore(db, nil)
	}

	deps.Validator, err = services.NewSessionValidator(cfg)
	if err != nil {
		log.Fatal("Failed to configure staff sessions", zap.Error(err))
	}

	app := handlers.NewApp()

	prometheus := fiberprometheus.New("propertyhub")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	app.Get("/swagger/*", swagger.HandlerDefault)

	handlers.Register(app, deps)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigs
		log.Info("Gracefully shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = app.ShutdownWithContext(ctx)
	}()

	log.Info("Starting server",
		zap.String("port", cfg.Port),
		zap.String("authMode", cfg.AuthMode),
		zap.String("dbType", cfg.DBType),
	)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}

	log.Info("Server stopped")
}
