package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"user_api/internal/api"
	"user_api/internal/app/service"
	"user_api/internal/domain/repository"
	"user_api/internal/platform/config"
	"user_api/internal/platform/database"
	"user_api/internal/platform/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	// 1. Load Configuration
	config.Load()

	// 2. Initialize Logger
	logger.Init()
	log.Info().Msg("Configuration loaded.")

	// 3. Initialize Database
	database.Connect()
	defer database.Close()

	// 4. Initialize Repositories
	userRepo := repository.NewPgUserRepository(database.DB)

	// 5. Initialize Services
	userService := service.NewUserService(userRepo)

	// 6. Initialize Router & HTTP Server
	router := api.NewRouter(userService, config.AppConfig.APIAccessToken)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 7. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Info().Str("port", config.AppConfig.APIPort).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Str("port", config.AppConfig.APIPort).Msg("Could not listen")
		}
	}()

	<-stop // Wait for interrupt signal

	log.Info().Msg("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server shutdown failed")
	}

	log.Info().Msg("Server stopped gracefully.")
}
