package main

import (
	"context"
	"log"

	"jobsreport/internal/config"
	"jobsreport/internal/db"
	"jobsreport/internal/model"
	"jobsreport/internal/repository"
	"jobsreport/internal/seed"
)

func main() {
	log.Println("Starting seed script...")

	// Load configuration
	cfg := config.Load()

	// Connect to database
	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(
		&model.Subcontractor{},
		&model.User{},
		&model.Client{},
		&model.Project{},
		&model.WorkReport{},
		&model.Expense{},
		&model.AdditionalWorker{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	repos := seed.Repositories{
		Users:          repository.NewUserRepository(gormDB),
		Clients:        repository.NewClientRepository(gormDB),
		Projects:       repository.NewProjectRepository(gormDB),
		Subcontractors: repository.NewSubcontractorRepository(gormDB),
	}

	if err := seed.Apply(context.Background(), repos); err != nil {
		log.Fatalf("Failed to seed default dataset: %v", err)
	}

	log.Println("Seed completed successfully!")
}
