package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"climate-service/internal/config"
	"climate-service/internal/handlers"
	"climate-service/internal/services"

	"github.com/gin-gonic/gin"
)

func setupLogging(logDir string) (*os.File, error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic: %v\n", r)
		}
	}()

	err := os.MkdirAll(logDir, 0o755)
	if err != nil {
		return nil, fmt.Errorf("failed to create log directory: %v", err)
	}

	currentTime := time.Now()
	logFileName := fmt.Sprintf("log_%s.log", currentTime.Format("2006-01-02"))
	logFile := filepath.Join(logDir, logFileName)

	file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %v", err)
	}

	log.SetOutput(file)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	return file, nil
}

func main() {
	cfg := config.New()

	logFile, err := setupLogging(cfg.LogDir)
	if err != nil {
		log.Fatalf("Error setting up logging: %v", err)
	}
	defer logFile.Close()

	log.Printf("Climate Service Configuration: %+v", cfg)

	r := gin.Default()

	catalogService := services.NewCatalogService()
	climateService := services.NewClimateService(catalogService)
	agriculturalService := services.NewAgriculturalService(climateService)
	impactService := services.NewImpactService()
	insightService := services.NewInsightService(catalogService, agriculturalService)

	scenarioHandler := handlers.NewScenarioHandler(cfg, catalogService, climateService, agriculturalService, impactService, insightService)
	scenarioHandler.RegisterRoutes(r)

	log.Printf("Starting climate-service on port %s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
