package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pub-prices/internal/config"
	"pub-prices/internal/logger"
	"pub-prices/internal/pub"
	"pub-prices/internal/services/pricing"
)

func main() {
	var (
		mode       = flag.String("mode", "", "Mode (quote, pricing-service)")
		configPath = flag.String("config", "config.yaml", "Path to the config file")
		port       = flag.Int("port", 0, "HTTP port, overrides the config file")
		drink      = flag.String("drink", "", "Drink name (quote mode)")
		student    = flag.Bool("student", false, "Apply the student discount (quote mode)")
		amount     = flag.Int("amount", 1, "Number of drinks (quote mode)")
	)
	flag.Parse()

	switch *mode {
	case "quote":
		if err := runQuote(os.Stdout, *drink, *student, *amount); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "pricing-service":
		if err := runPricingService(*configPath, *port); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "":
		fmt.Fprintf(os.Stderr, "Error: --mode flag is required\n")
		flag.Usage()
		os.Exit(1)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown mode: %s\n", *mode)
		os.Exit(1)
	}
}

// runQuote prices a single order and prints the result
func runQuote(w io.Writer, drink string, student bool, amount int) error {
	if drink == "" {
		return errors.New("--drink is required for quote mode")
	}

	price, err := pub.ComputeCost(drink, student, amount)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, price)
	return err
}

// runPricingService serves the pricing API until SIGINT or SIGTERM
func runPricingService(configPath string, port int) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if port != 0 {
		cfg.Server.Port = port
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid --port: %w", err)
		}
	}

	level, _ := logger.ParseLevel(cfg.Log.Level)
	log := logger.NewWithWriter("pricing-service", os.Stdout, level)
	requestID := logger.GenerateRequestID()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	service := pricing.NewService(log)
	handler := pricing.NewHandler(service, log, cfg.Server.AllowedOrigins)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler.SetupRoutes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("service_started", fmt.Sprintf("Pricing service started on port %d", cfg.Server.Port), requestID, map[string]interface{}{
			"port":      cfg.Server.Port,
			"log_level": cfg.Log.Level,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			log.Error("server_failed", "HTTP server failed", requestID, err, nil)
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
		log.Info("graceful_shutdown", "Received shutdown signal", requestID, nil)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("service_stopped", "Service stopped gracefully", requestID, nil)
	return nil
}
