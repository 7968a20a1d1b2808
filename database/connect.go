package database

import (
	"fmt"
	"log"
	"strconv"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"studio_booking/config"
	"studio_booking/model"
)

// ConnectDB opens the postgres connection and migrates the schema. The handle
// is returned to the caller and injected into every component; no package
// level singleton is kept.
func ConnectDB() (*gorm.DB, error) {
	port, err := strconv.ParseUint(config.ConfigDefault("DB_PORT", "5432"), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database port: %w", err)
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		config.Config("DB_HOST"), port, config.Config("DB_USER"),
		config.Config("DB_PASSWORD"), config.Config("DB_NAME"))

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	log.Println("Connection opened to database")

	if err := Migrate(db); err != nil {
		return nil, err
	}
	log.Println("Database migrated")

	SeedData(db)
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.Schedule{},
		&model.Order{},
		&model.OrderDetail{},
		&model.Payment{},
		&model.DiscountCode{},
		&model.Notification{},
	)
}
