package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"kgraph/internal/config"
	mid "kgraph/internal/server/middleware"
	"kgraph/internal/storage"
	"kgraph/pkg/ai"
	oai "kgraph/pkg/ai/ollama"
	gai "kgraph/pkg/ai/openai"
	pdfloader "kgraph/pkg/loader/pdf"
	"kgraph/pkg/logger"
)

// Init wires the application together and runs the HTTP server until the
// process receives an interrupt or termination signal.
func Init() {
	cfg := config.Load()

	var aiClient ai.CompletionClient
	switch cfg.AIAdapter {
	case "ollama":
		client, err := oai.NewCompletionOllamaClient(oai.NewCompletionOllamaClientParams{
			ExtractionModel: cfg.AIExtractModel,
			BaseURL:         cfg.AIChatURL,
			ApiKey:          cfg.AIChatKey,
		})
		if err != nil {
			logger.Fatal("Failed to create Ollama client", "err", err)
		}
		aiClient = client
	default:
		if cfg.AIChatKey == "" {
			logger.Fatal("Missing AI_CHAT_KEY environment variable")
		}
		aiClient = gai.NewCompletionOpenAIClient(gai.NewCompletionOpenAIClientParams{
			ExtractionModel: cfg.AIExtractModel,
			ChatURL:         cfg.AIChatURL,
			ChatKey:         cfg.AIChatKey,
		})
	}

	store, err := storage.NewDisk(cfg.UploadDir, cfg.GeneratedDir)
	if err != nil {
		logger.Fatal("Failed to prepare storage directories", "err", err)
	}

	app := &mid.App{
		Config:   cfg,
		AiClient: aiClient,
		Loader:   pdfloader.NewPDFLoader(),
		Store:    store,
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(mid.AppContextMiddleware(app))
	e.Use(middleware.CORS())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("64M"))

	RegisterRoutes(e, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("Starting server", "port", cfg.Port)
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed shutting down server", "err", err)
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown server", "err", err)
	}
}
