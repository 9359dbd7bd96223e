// Looper campaign server — provides the HTTP API, manages queue workers,
// and runs the multi-stage campaign workflow.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/creatorloop/looper/pkg/api"
	"github.com/creatorloop/looper/pkg/config"
	"github.com/creatorloop/looper/pkg/database"
	"github.com/creatorloop/looper/pkg/enrich"
	"github.com/creatorloop/looper/pkg/events"
	"github.com/creatorloop/looper/pkg/orchestrator"
	"github.com/creatorloop/looper/pkg/platform"
	"github.com/creatorloop/looper/pkg/queue"
	"github.com/creatorloop/looper/pkg/reasoning"
	"github.com/creatorloop/looper/pkg/services"
	"github.com/creatorloop/looper/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configPath := flag.String("config",
		getEnv("CONFIG_FILE", ""),
		"Path to optional YAML configuration file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, continuing with existing environment")
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting looper",
		"version", version.Full(),
		"http_port", httpPort,
		"pod_id", podID)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database: one pool for the HTTP path, a separate one for workers
	// so long-running stage work never starves request handling.
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()

	workerDBConfig, err := database.LoadWorkerConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load worker database config", "error", err)
		os.Exit(1)
	}
	workerDBClient, err := database.NewClient(ctx, workerDBConfig)
	if err != nil {
		slog.Error("Failed to connect worker database pool", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := workerDBClient.Close(); err != nil {
			slog.Error("Error closing worker database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. One-time startup orphan cleanup for this pod's previous life
	if err := queue.CleanupStartupOrphans(ctx, workerDBClient.Client, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — continue
	}

	// 4. Domain services
	userService := services.NewUserService(dbClient.Client)
	profileService := services.NewProfileService(dbClient.Client)
	campaignService := services.NewCampaignService(dbClient.Client)
	contentService := services.NewContentService(dbClient.Client)
	learningService := services.NewLearningService(dbClient.Client, slog.Default())
	webhookService := services.NewWebhookService(dbClient.Client, cfg.Webhook.DuplicateWindow, slog.Default())
	slog.Info("Services initialized")

	// 5. Reasoning sidecar client
	// Note: grpc.NewClient dials lazily; the connection happens on first RPC.
	reasoner, err := reasoning.NewGRPCClient(cfg.Reasoning)
	if err != nil {
		slog.Error("Failed to initialize reasoning client", "addr", cfg.Reasoning.Addr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := reasoner.Close(); err != nil {
			slog.Error("Error closing reasoning client", "error", err)
		}
	}()
	slog.Info("Reasoning client initialized", "addr", cfg.Reasoning.Addr)

	// 6. Platform fetchers and optional enrichers
	youtubeClient := platform.NewYouTubeClient(cfg.Platform)
	twitterClient := platform.NewTwitterClient(cfg.Platform)

	var imageClient *enrich.ImageClient
	if cfg.Enrich.ImageServiceURL != "" {
		imageClient = enrich.NewImageClient(cfg.Enrich)
	}
	var seoClient *enrich.SEOClient
	if cfg.Enrich.SEOServiceURL != "" {
		seoClient = enrich.NewSEOClient(cfg.Enrich)
	}

	// 7. Progress publisher + workflow executor on the worker pool's DB
	publisher := events.NewPublisher(workerDBClient.DB())
	workerCampaigns := services.NewCampaignService(workerDBClient.Client)
	executor := orchestrator.NewExecutor(
		workerDBClient.Client,
		workerCampaigns,
		services.NewProfileService(workerDBClient.Client),
		services.NewContentService(workerDBClient.Client),
		services.NewLearningService(workerDBClient.Client, slog.Default()),
		reasoner,
		youtubeClient,
		twitterClient,
		imageClient,
		seoClient,
		publisher,
	)

	// 8. Worker pool (before the HTTP server takes traffic)
	workerPool := queue.NewWorkerPool(podID, workerDBClient.Client, cfg.Queue, executor, publisher)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}
	runtime := queue.NewRuntime(dbClient.Client, workerPool)

	// 9. HTTP server
	server := api.NewServer(api.Deps{
		DB:            dbClient,
		Users:         userService,
		Profiles:      profileService,
		Campaigns:     campaignService,
		Content:       contentService,
		Learnings:     learningService,
		Webhooks:      webhookService,
		Runtime:       runtime,
		Pool:          workerPool,
		Verifier:      api.NewHTTPVerifier(cfg.Auth),
		WebhookSecret: cfg.Webhook.SigningSecret,
	})

	gin.SetMode(getEnv("GIN_MODE", gin.ReleaseMode))
	router := gin.New()
	router.Use(gin.Recovery())
	server.RegisterRoutes(router)

	httpServer := &http.Server{
		Addr:              ":" + httpPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Looper started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: drain workers first, then the HTTP server.
	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — incomplete tasks will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
