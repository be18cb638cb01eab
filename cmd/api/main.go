package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/goelshashank/Kitchen-Inventory2/internal/api"
	"github.com/goelshashank/Kitchen-Inventory2/internal/config"
	"github.com/goelshashank/Kitchen-Inventory2/internal/mailer"
	"github.com/goelshashank/Kitchen-Inventory2/internal/media"
	"github.com/goelshashank/Kitchen-Inventory2/internal/realtime"
	"github.com/goelshashank/Kitchen-Inventory2/internal/repository"
	"github.com/goelshashank/Kitchen-Inventory2/internal/service"
	"github.com/goelshashank/Kitchen-Inventory2/pkg/utils"
)

func main() {
	// -----------------------
	// CONFIG
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		utils.Log.Error("Failed to load config", zap.Error(err))
		os.Exit(1)
	}
	utils.Init(cfg.Env)
	defer utils.Log.Sync()

	if err := cfg.Validate(); err != nil {
		utils.Log.Error("Invalid config", zap.Error(err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// -----------------------
	// STORAGE
	stores, err := repository.Open(cfg)
	if err != nil {
		utils.Log.Error("Failed to open storage", zap.Error(err))
		os.Exit(1)
	}

	// -----------------------
	// SERVICES
	deps := api.Deps{
		Ingredients: service.NewIngredientService(stores.Ingredients),
		Recipes:     service.NewRecipeService(stores.Recipes, stores.Ingredients),
		Dashboard:   service.NewDashboardService(stores.Ingredients, stores.Recipes, nil),
		Hub:         realtime.NewHub(),
	}

	if cfg.S3.Enabled() {
		uploader, err := media.NewS3Uploader(ctx, cfg.S3)
		if err != nil {
			utils.Log.Error("Failed to set up S3", zap.Error(err))
			os.Exit(1)
		}
		deps.Uploader = uploader
		utils.Log.Info("Recipe image uploads enabled", zap.String("bucket", cfg.S3.Bucket))
	}
	if cfg.SES.Enabled() {
		sender, err := mailer.NewSESSender(ctx, cfg.SES)
		if err != nil {
			utils.Log.Error("Failed to set up SES", zap.Error(err))
			os.Exit(1)
		}
		deps.Mailer = sender
		utils.Log.Info("Report emails enabled", zap.String("sender", cfg.SES.Sender))
	}

	// -----------------------
	// HTTP
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if !cfg.AuthEnabled() {
		utils.Log.Warn("No API_KEY or JWT_SECRET set; the API is open")
	}
	router := api.NewRouter(api.NewHandler(deps), api.AuthConfig{
		APIKey:    cfg.APIKey,
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  cfg.JWTTTL,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			utils.Log.Warn("Shutdown failed", zap.Error(err))
		}
	}()

	utils.Log.Info("API starting", zap.String("addr", srv.Addr), zap.String("storage", cfg.Storage))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		utils.Log.Error("Server failed", zap.Error(err))
		os.Exit(1)
	}
	utils.Log.Info("API stopped")
}
