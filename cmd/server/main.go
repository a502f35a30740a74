package main

import (
	"encoding/json"
	"log"
	"os"

	"law_records_go/config"
	"law_records_go/handlers"
	"law_records_go/models"
	"law_records_go/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Prepare the data directory layout
	if err := initDataLayout(cfg); err != nil {
		log.Fatalf("Failed to initialize data directory: %v", err)
	}

	// Initialize backup storage (R2 or local fallback)
	services.InitializeStorage(cfg)

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	// Clients
	e.GET("/api/clients", handlers.GetClients)
	e.POST("/api/clients", handlers.CreateClient)
	e.GET("/api/clients/search", handlers.SearchClientsHandler)
	e.POST("/api/clients/:id/cases", handlers.AssignCase)

	// Cases and documents
	e.POST("/api/cases", handlers.CreateCase)
	e.GET("/api/cases/:id/files", handlers.ListCaseFilesHandler)
	e.POST("/api/cases/:id/documents", handlers.CreateCaseDocument)
	e.GET("/api/cases/:id/documents/:name", handlers.GetCaseDocument)

	// Billing and invoices
	e.POST("/api/billing", handlers.RecordBillingHandler)
	e.GET("/api/billing", handlers.GetBilling)
	e.POST("/api/invoices/:caseId", handlers.GenerateInvoiceHandler)

	// Exports and backups
	e.GET("/api/export/billing.xlsx", handlers.ExportBilling)
	e.GET("/api/export/clients.xlsx", handlers.ExportClients)
	e.POST("/api/backups", handlers.RunBackup)

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// initDataLayout creates the data directories and seeds empty collection
// files so first requests find valid JSON.
func initDataLayout(cfg *config.Config) error {
	for _, dir := range []string{cfg.DataDir, cfg.CasesDir, cfg.BackupDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	if _, err := os.Stat(cfg.ClientsFile()); os.IsNotExist(err) {
		if err := seedCollection(cfg.ClientsFile(), &models.ClientCollection{Clients: []models.Client{}}); err != nil {
			return err
		}
	}
	if _, err := os.Stat(cfg.BillingFile()); os.IsNotExist(err) {
		if err := seedCollection(cfg.BillingFile(), &models.BillingCollection{Billing: []models.BillingEntry{}}); err != nil {
			return err
		}
	}
	return nil
}

func seedCollection(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
