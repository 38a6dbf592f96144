// main.go
//
// Container health probe for the property hub server
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

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/localnerve/propertyhub/internal/cache"
	"github.com/localnerve/propertyhub/internal/config"
	"github.com/localnerve/propertyhub/internal/database"
	"github.com/localnerve/propertyhub/internal/logger"
	"github.com/localnerve/propertyhub/internal/services"
	"go.uber.org/zap"
)

func main() {
	var envFilename string
	flag.StringVar(&envFilename, "f", os.Getenv("ENV_FILE"), "path to the .env file")
	flag.Parse()

	if err := logger.InitLogger(&logger.LogConfig{Level: "warn", ServiceName: "propertyhub-healthcheck"}); err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.GetLogger()

	cfg, err := config.LoadFile(envFilename)
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var pinger services.Pinger
	if cfg.RedisURL != "" {
		client, err := cache.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Fatal("Failed to configure redis", zap.Error(err))
		}
		defer client.Close()
		pinger = cache.NewRedisSettings(client, cfg.SettingsCacheTTL)
	}

	result := services.HealthCheck(ctx, cfg, db, pinger)

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatal("Failed to marshal health check result", zap.Error(err))
	}
	fmt.Println(string(output))

	if result.Status != "healthy" {
		os.Exit(1)
	}
}
