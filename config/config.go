package config

import (
	"fmt"
	"log"
	"os"

	"github.com/carloangkisann/pantausikecil-sub000/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitDB() *gorm.DB {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found, using environment as-is")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Pregnancy{},
		&models.Food{},
		&models.UserMeal{},
		&models.UserWaterLog{},
		&models.Activity{},
		&models.UserActivity{},
		&models.NutritionalNeed{},
		&models.Reminder{},
		&models.UserConnection{},
		&models.UserDevice{},
		&models.EmergencyAlert{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	if err := SeedNutritionalNeeds(db); err != nil {
		log.Fatalf("Seeding nutritional needs failed: %v", err)
	}
	if err := SeedActivityCatalog(db); err != nil {
		log.Fatalf("Seeding activity catalog failed: %v", err)
	}
	if err := SeedFoodCatalog(db); err != nil {
		log.Fatalf("Seeding food catalog failed: %v", err)
	}

	return db
}
