package db

import (
	"fmt"
	"log"

	"github.com/reqflow-io/reqflow/internal/config"
	"github.com/reqflow-io/reqflow/internal/domain/form"
	"github.com/reqflow-io/reqflow/internal/domain/request"
	"github.com/reqflow-io/reqflow/internal/domain/signer"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	// gen_random_uuid() defaults need pgcrypto on older Postgres
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		log.Printf("Failed to ensure pgcrypto extension: %v", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}

	log.Println("Database connected and migrated")
}

func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&form.Form{},
		&form.Section{},
		&form.Field{},
		&form.Option{},
		&form.ReferenceOption{},
		&signer.Signer{},
		&request.Request{},
		&request.Response{},
		&request.RequestSigner{},
	)
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}
