// connection.go
//
// Database connection, dialect selection and schema migration
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

package database

import (
	"fmt"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	puresqlite "github.com/glebarez/sqlite"
	"github.com/localnerve/propertyhub/internal/config"
	applog "github.com/localnerve/propertyhub/internal/logger"
	"github.com/localnerve/propertyhub/internal/models"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Dialector builds the GORM dialector for the configured DB_TYPE
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBType {
	case "mysql", "mariadb":
		mc := mysqldriver.NewConfig()
		mc.User = cfg.DBUser
		mc.Passwd = cfg.DBPassword
		mc.Net = "tcp"
		mc.Addr = fmt.Sprintf("%s:%s", cfg.DBHost, portOr(cfg.DBPort, "3306"))
		mc.DBName = cfg.DBDatabase
		mc.ParseTime = true
		mc.Loc = time.UTC
		mc.Params = map[string]string{"charset": "utf8mb4"}
		return mysql.Open(mc.FormatDSN()), nil

	case "postgres", "postgresql":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			cfg.DBHost,
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBDatabase,
			portOr(cfg.DBPort, "5432"),
		)
		return postgres.Open(dsn), nil

	case "sqlite":
		// For SQLite, DBDatabase is the file path
		return sqlite.Open(cfg.DBDatabase), nil

	case "sqlite-pure":
		// cgo-free SQLite for static container builds
		return puresqlite.Open(cfg.DBDatabase), nil

	case "sqlserver", "mssql":
		dsn := fmt.Sprintf("sqlserver://%s:%s@%s:%s?database=%s",
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBHost,
			portOr(cfg.DBPort, "1433"),
			cfg.DBDatabase,
		)
		return sqlserver.Open(dsn), nil
	}

	return nil, fmt.Errorf("unsupported database type: %s", cfg.DBType)
}

// Connect establishes a database connection based on the configured DB_TYPE
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := Open(dialector, gormLogLevel(cfg.LogLevel))
	if err != nil {
		return nil, err
	}

	// Get underlying SQL DB for connection pool configuration
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying SQL DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.DBConnectionLimit)
	sqlDB.SetMaxIdleConns(max(cfg.DBConnectionLimit/2, 1))

	applog.GetLogger().Info("Connected to database",
		zap.String("type", cfg.DBType),
		zap.String("database", cfg.DBDatabase),
	)

	return db, nil
}

// Open opens a GORM connection with duplicate key errors translated to gorm.ErrDuplicatedKey
func Open(dialector gorm.Dialector, level logger.LogLevel) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// AutoMigrate runs automatic migrations for all models and creates the
// partial unique index that keeps nonzero area orders unique
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Listing{},
		&models.Area{},
		&models.Category{},
		&models.Inquiry{},
		&models.Settings{},
	); err != nil {
		return err
	}
	return ensureAreaOrderIndex(db)
}

// ensureAreaOrderIndex creates a unique index over areas.sort_order that ignores
// the zero sentinel. MySQL and MariaDB have no partial indexes; there the
// transactional check in the area service is the only guard.
func ensureAreaOrderIndex(db *gorm.DB) error {
	var stmt string
	switch db.Dialector.Name() {
	case "postgres", "sqlite":
		stmt = fmt.Sprintf("CREATE UNIQUE INDEX IF NOT EXISTS %s ON areas (sort_order) WHERE sort_order > 0", models.AreaOrderIndex)
	case "sqlserver":
		if db.Migrator().HasIndex(&models.Area{}, models.AreaOrderIndex) {
			return nil
		}
		stmt = fmt.Sprintf("CREATE UNIQUE INDEX %s ON areas (sort_order) WHERE sort_order > 0", models.AreaOrderIndex)
	default:
		applog.GetLogger().Warn("Partial unique index not supported, area order relies on transactional check",
			zap.String("dialect", db.Dialector.Name()))
		return nil
	}

	if err := db.Exec(stmt).Error; err != nil {
		return fmt.Errorf("failed to create %s: %w", models.AreaOrderIndex, err)
	}
	return nil
}

// Close closes the database connection
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func portOr(port, fallback string) string {
	if port == "" {
		return fallback
	}
	return port
}

func gormLogLevel(level string) logger.LogLevel {
	switch level {
	case "debug":
		return logger.Info
	case "error":
		return logger.Error
	default:
		return logger.Warn
	}
}
