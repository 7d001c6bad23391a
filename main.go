// File: orbit/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"orbit/config"
	"orbit/handlers"
	"orbit/middleware"
	"orbit/routes"
	"orbit/services/flights"
	ai "orbit/services/intelligence"
	"orbit/services/trip"
	"orbit/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env before viper so local keys reach the config layer.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	config.LoadConfig()
	logger := utils.GetLogger()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger())

	// External collaborators.
	aiClient := ai.NewGeminiClient(config.AppConfig.GeminiAPIKey)
	flightsClient := flights.NewFlightLabsClient(
		config.AppConfig.FlightLabsKey,
		config.AppConfig.FlightLabsBaseURL,
	)

	// services.
	tripService := &trip.DefaultTripService{
		AI:      aiClient,
		Flights: flightsClient,
	}
	tripHandler := handlers.NewTripHandler(tripService)

	// Register routes.
	routes.RegisterRoutes(router, tripHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
