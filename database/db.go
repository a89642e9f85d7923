package database

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"painel-vendas-backend/models"
)

// DB is the application's own store (dashboard users). Business data
// stays in the external ERP behind the Gateway.
var DB *gorm.DB

func Connect() {
	host := os.Getenv("DB_HOST")
	if host == "" {
		host = "db"
	}
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=5432 sslmode=disable",
		host, os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"))

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("could not connect to application database")
	}
}

func AutoMigrate() {
	if err := DB.AutoMigrate(&models.User{}); err != nil {
		log.Fatal().Err(err).Msg("could not migrate application database")
	}
}
