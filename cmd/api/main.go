package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"soulseer-admin/internal/client"
	"soulseer-admin/internal/config"
	"soulseer-admin/internal/repository"
	"soulseer-admin/internal/server"
	"soulseer-admin/internal/service"
	"soulseer-admin/pkg/logger"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(&cfg.Log)

	db := client.InitPostgresClient(cfg.DatabaseURL)
	stripeClient := client.NewStripeClient(&cfg.Stripe)
	backendClient := client.NewBackendClient(&cfg.Backend)

	readerRepo := repository.NewReaderRepository(db)
	productRepo := repository.NewProductRepository(db)
	giftRepo := repository.NewGiftRepository(db)

	readerService := service.NewReaderService(readerRepo, backendClient, log)
	productService := service.NewProductService(productRepo, stripeClient, cfg.Stripe.Currency, log)
	giftService := service.NewGiftService(giftRepo)

	srv := server.NewServer(readerService, productService, giftService, cfg.JWTSecret)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	log.Info("starting HTTP server", "addr", serverAddr, "environment", cfg.Environment.Name)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Info("signal received, starting graceful shutdown")

	if err := srv.Shutdown(); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
		os.Exit(1)
	}
}
