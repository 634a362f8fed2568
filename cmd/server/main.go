package main

import (
	"context"
	"log"
	"net/http"
	"os"

	_ "jobsreport/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"jobsreport/internal/auth"
	"jobsreport/internal/cache"
	"jobsreport/internal/config"
	"jobsreport/internal/db"
	"jobsreport/internal/handler"
	"jobsreport/internal/model"
	"jobsreport/internal/repository"
	"jobsreport/internal/router"
	"jobsreport/internal/seed"
	"jobsreport/internal/service"
)

// @title JobsReport API
// @version 1.0
// @description Work report management API with per-report cost and margin aggregation, Excel/PDF export, and JWT authentication.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.AdditionalWorker{},
			&model.Expense{},
			&model.WorkReport{},
			&model.Project{},
			&model.Client{},
			&model.User{},
			&model.Subcontractor{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Subcontractor{},
		&model.User{},
		&model.Client{},
		&model.Project{},
		&model.WorkReport{},
		&model.Expense{},
		&model.AdditionalWorker{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	clientRepo := repository.NewClientRepository(gormDB)
	projectRepo := repository.NewProjectRepository(gormDB)
	subcontractorRepo := repository.NewSubcontractorRepository(gormDB)
	reportRepo := repository.NewWorkReportRepository(gormDB)

	if cfg.SeedOnEmpty {
		seeded, err := seed.ApplyIfEmpty(context.Background(), seed.Repositories{
			Users:          userRepo,
			Clients:        clientRepo,
			Projects:       projectRepo,
			Subcontractors: subcontractorRepo,
		})
		if err != nil {
			log.Fatalf("seed: %v", err)
		}
		if seeded {
			log.Println("Empty database detected, default dataset installed")
		}
	}

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	userService := service.NewUserService(userRepo, cacheClient)
	clientService := service.NewClientService(clientRepo, cacheClient)
	projectService := service.NewProjectService(projectRepo, clientRepo, cacheClient)
	subcontractorService := service.NewSubcontractorService(subcontractorRepo)
	reportService := service.NewReportService(reportRepo, projectRepo, userRepo, cacheClient)
	summaryService := service.NewSummaryService(reportRepo, projectRepo, clientRepo, userRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	clientHandler := handler.NewClientHandler(clientService)
	projectHandler := handler.NewProjectHandler(projectService)
	subcontractorHandler := handler.NewSubcontractorHandler(subcontractorService)
	reportHandler := handler.NewReportHandler(reportService)
	summaryHandler := handler.NewSummaryHandler(summaryService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		userHandler,
		clientHandler,
		projectHandler,
		subcontractorHandler,
		reportHandler,
		summaryHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
