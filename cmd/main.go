package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"menufacil/internal/ai"
	"menufacil/internal/api"
	"menufacil/internal/catalog"
	"menufacil/internal/config"
	"menufacil/internal/logger"
	"menufacil/internal/monitoring"
	"menufacil/internal/storage"
)

var (
	port        = flag.Int("port", 0, "API server port (overrides config)")
	metricsPort = flag.Int("metrics-port", 0, "Metrics server port (overrides config)")
	configFile  = flag.String("config", "configs/config.yaml", "Path to configuration file")
)

func main() {
	flag.Parse()

	log := logger.NewLogger("menufacil")

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Error("startup", "failed to load configuration", err)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *metricsPort != 0 {
		cfg.Server.MetricsPort = *metricsPort
	}

	model, err := initializeLLM(cfg)
	if err != nil {
		log.Error("startup", "failed to initialize LLM", err)
		os.Exit(1)
	}

	store, err := storage.OpenSQLite(cfg.Database.Path)
	if err != nil {
		log.Error("startup", "failed to open store", err)
		os.Exit(1)
	}
	defer store.Close()

	cat, err := catalog.Load(store)
	if err != nil {
		log.Error("startup", "failed to load catalog", err)
		os.Exit(1)
	}

	monitor := monitoring.NewMonitor()

	server, err := api.NewServer(store, cat, ai.New(model), monitor, log, cfg.Admin.TokenSecret)
	if err != nil {
		log.Error("startup", "failed to initialize API server", err)
		os.Exit(1)
	}

	go startMetricsServer(cfg.Server.MetricsPort, log)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: server.Router,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info("shutdown", "shutting down servers")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown", "API server shutdown error", err)
		}
	}()

	log.Info("startup", "starting API server", "port", cfg.Server.Port)
	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Error("startup", "API server error", err)
		os.Exit(1)
	}
}

// initializeLLM builds the description model. Without an API key the
// service still runs; description requests just return the placeholder.
func initializeLLM(cfg *config.Config) (llms.LLM, error) {
	if cfg.LLM.APIKey == "" {
		return nil, nil
	}
	llm, err := openai.New(
		openai.WithModel(cfg.LLM.Model),
		openai.WithToken(cfg.LLM.APIKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenAI client: %w", err)
	}
	return llm, nil
}

func startMetricsServer(port int, log *logger.Logger) {
	metricsRouter := gin.Default()
	metricsRouter.GET("/metrics", gin.WrapH(promhttp.Handler()))

	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: metricsRouter,
	}

	log.Info("startup", "starting metrics server", "port", port)
	if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Error("metrics", "metrics server error", err)
	}
}
