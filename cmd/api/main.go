package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"khalti-storefront-demo/internal/client"
	"khalti-storefront-demo/internal/config"
	"khalti-storefront-demo/internal/repository"
	"khalti-storefront-demo/internal/server"
	"khalti-storefront-demo/internal/service"
	"khalti-storefront-demo/internal/store"

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

	db := client.InitSqliteClient(cfg.DatabaseURL)
	khaltiClient := client.NewKhaltiClient(&cfg.Khalti)
	catalogClient := client.NewCatalogClient(&cfg.Catalog)
	identityClient := client.NewIdentityClient(&cfg.Identity)

	storageRepo := repository.NewStorageRepository(db)
	checkpointRepo := repository.NewCheckpointRepository(storageRepo)
	cartStore := store.NewMemoryCartStore()

	productService := service.NewProductService(catalogClient)
	authService := service.NewAuthService(identityClient, cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLMin)*time.Minute)
	cartService := service.NewCartService(cartStore)
	checkoutService := service.NewCheckoutService(cartStore, checkpointRepo,
		khaltiClient, cfg.BaseURL, cfg.Khalti.OrderName)
	reconcileService := service.NewReconcileService(khaltiClient, checkpointRepo, cartStore)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	// Init HTTP server
	srv := server.NewServer(productService, authService, cartService, checkoutService, reconcileService)

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	_, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}
