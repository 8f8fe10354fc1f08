package config

import (
	"os"

	"github.com/andrewpaige1/galaxymap-api/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var Database *gorm.DB

// Connect opens the database and migrates the documents table. DB_URL
// selects postgres (deployment); without it a local sqlite file is used.
func Connect() error {
	var err error
	if dbURL := os.Getenv("DB_URL"); dbURL != "" {
		Database, err = gorm.Open(postgres.Open(dbURL), &gorm.Config{})
	} else {
		dbPath := os.Getenv("DB_PATH")
		if dbPath == "" {
			dbPath = "galaxymap.db"
		}
		Database, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	}
	if err != nil {
		panic("failed to connect database")
	}

	err = Database.AutoMigrate(&models.Document{})
	if err != nil {
		panic("failed to auto migrate database")
	}

	return nil
}
