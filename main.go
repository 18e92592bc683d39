package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/dermasafe-inc/dermasafe-engine/pkg/auth"
	"github.com/dermasafe-inc/dermasafe-engine/pkg/catalog"
	"github.com/dermasafe-inc/dermasafe-engine/pkg/config"
	"github.com/dermasafe-inc/dermasafe-engine/pkg/database"
	"github.com/dermasafe-inc/dermasafe-engine/pkg/handlers"
	"github.com/dermasafe-inc/dermasafe-engine/pkg/llm"
	"github.com/dermasafe-inc/dermasafe-engine/pkg/logging"
	"github.com/dermasafe-inc/dermasafe-engine/pkg/mailer"
	"github.com/dermasafe-inc/dermasafe-engine/pkg/middleware"
	"github.com/dermasafe-inc/dermasafe-engine/pkg/repositories"
	"github.com/dermasafe-inc/dermasafe-engine/pkg/services"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Configuration loaded",
		zap.String("env", cfg.Env),
		zap.String("database", logging.SanitizeConnectionString(cfg.Database.ConnectionString())),
		zap.String("ai_endpoint", cfg.AI.BaseURL),
		zap.Bool("email_configured", cfg.Email.IsConfigured()))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, cfg.Database.ConnectionString(), cfg.Database.MaxConnections)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(db.SQLDB(), cfg.Database.MigrationsPath, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	ingredientCatalog := catalog.Default()

	provider, err := llm.NewProvider(&llm.Config{
		Endpoint: cfg.AI.BaseURL,
		Model:    cfg.AI.Model,
		APIKey:   cfg.AI.APIKey,
		Timeout:  cfg.AI.Timeout(),
	}, logger)
	if err != nil {
		logger.Fatal("Failed to create explanation provider", zap.Error(err))
	}

	scorer := services.NewScorer(ingredientCatalog)
	analyzer := services.NewProductAnalyzer(scorer, provider, cfg.AI.Timeout(), logger)

	tokens, err := auth.NewTokenService(cfg.Auth.TokenSecret, cfg.Auth.TokenTTL())
	if err != nil {
		logger.Fatal("Failed to create token service", zap.Error(err))
	}

	accountMailer := mailer.New(mailer.Config{
		APIKey:      cfg.Email.SendGridAPIKey,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
	}, logger)

	accountRepo := repositories.NewAccountRepository(db)
	accounts := services.NewAccountService(accountRepo, tokens, accountMailer, logger)

	mux := http.NewServeMux()
	handlers.NewHealthHandler(cfg, ingredientCatalog, logger).RegisterRoutes(mux)
	handlers.NewAnalyzeHandler(analyzer, provider, logger).RegisterRoutes(mux)
	handlers.NewIngredientsHandler(ingredientCatalog, logger).RegisterRoutes(mux)
	handlers.NewAccountsHandler(accounts, logger).RegisterRoutes(mux)

	handler := middleware.RequestLogger(logger)(mux)

	addr := cfg.BindAddr + ":" + cfg.Port
	logger.Info("Starting dermasafe-engine",
		zap.String("addr", addr),
		zap.String("version", cfg.Version),
		zap.Int("catalog_size", ingredientCatalog.Len()))

	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}

// newLogger builds the process logger: human-readable in local
// environments, JSON elsewhere.
func newLogger(env string) (*zap.Logger, error) {
	if env == "local" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
