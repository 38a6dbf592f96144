package main

import (
	"fmt"
	"log"

	"github.com/localnerve/propertyhub/internal/database"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm/logger"
)

// Prints the SQLite DDL that AutoMigrate produces, including the partial order index.
func main() {
	db, err := database.Open(sqlite.Open(":memory:"), logger.Silent)
	if err != nil {
		log.Fatal(err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	var rows []struct {
		Type string
		Name string
		SQL  string `gorm:"column:sql"`
	}
	if err := db.Raw("SELECT type, name, sql FROM sqlite_master WHERE sql IS NOT NULL ORDER BY tbl_name, type DESC, name").
		Scan(&rows).Error; err != nil {
		log.Fatal(err)
	}

	for _, r := range rows {
		fmt.Printf("\n=== %s: %s ===\n%s\n", r.Type, r.Name, r.SQL)
	}
}
