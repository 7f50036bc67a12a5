package infra

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"lumen/internal/config"
	"lumen/internal/models/db_models"
)

// InitPostgresql opens the connection pool. Failure to reach the datastore
// at boot is fatal.
func InitPostgresql(cfg *config.Config) *gorm.DB {
	connectionPool, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	return connectionPool
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.Account{},
		&db_models.Transaction{},
		&db_models.Chat{},
		&db_models.Message{},
	)
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	}
}
