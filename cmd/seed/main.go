package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/localnerve/propertyhub/data"
	"github.com/localnerve/propertyhub/internal/config"
	"github.com/localnerve/propertyhub/internal/database"
	"github.com/localnerve/propertyhub/internal/logger"
	"github.com/localnerve/propertyhub/internal/services"
	"go.uber.org/zap"
)

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show help")
	var envFilename string
	flag.StringVar(&envFilename, "f", os.Getenv("ENV_FILE"), "path to the .env file")
	var seedFile string
	flag.StringVar(&seedFile, "data", "", "path to a seed JSON file, defaults to the embedded seed")
	flag.Parse()

	usage := `
Migrate the database and load the default settings, Haryana districts,
property categories and sample listings. Safe to run more than once.

Usage:

seed [-h] [-f ENV_FILE_PATH] [-data SEED_JSON_PATH]
`
	if showHelp {
		fmt.Println(usage)
		return
	}

	if err := logger.InitLogger(&logger.LogConfig{Level: "info", ServiceName: "propertyhub-seed"}); err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.GetLogger()

	cfg, err := config.LoadFile(envFilename)
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	raw := data.SeedJSON
	if seedFile != "" {
		if raw, err = os.ReadFile(seedFile); err != nil {
			log.Fatal("Failed to read seed file", zap.String("path", seedFile), zap.Error(err))
		}
	}
	seed, err := services.ParseSeed(raw)
	if err != nil {
		log.Fatal("Failed to parse seed data", zap.Error(err))
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	result, err := services.Seed(context.Background(), db, seed)
	if err != nil {
		log.Fatal("Seed failed", zap.Error(err))
	}

	output, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(output))
}
