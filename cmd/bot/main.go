package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/goelshashank/Kitchen-Inventory2/internal/bot"
	"github.com/goelshashank/Kitchen-Inventory2/internal/config"
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

	if err := cfg.ValidateBot(); err != nil {
		utils.Log.Error("Invalid config", zap.Error(err))
		os.Exit(1)
	}

	// -----------------------
	// STORAGE
	stores, err := repository.Open(cfg)
	if err != nil {
		utils.Log.Error("Failed to open storage", zap.Error(err))
		os.Exit(1)
	}

	// -----------------------
	// SERVICES
	svc := bot.Services{
		Ingredients: service.NewIngredientService(stores.Ingredients),
		Recipes:     service.NewRecipeService(stores.Recipes, stores.Ingredients),
		Dashboard:   service.NewDashboardService(stores.Ingredients, stores.Recipes, nil),
	}

	// -----------------------
	// BOT
	botAPI, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		utils.Log.Error("Failed to create bot", zap.Error(err))
		os.Exit(1)
	}
	utils.Log.Info("Loaded admin IDs", zap.Int64s("admins", cfg.Telegram.AdminIDs))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := botAPI.GetUpdatesChan(u)

	utils.Log.Info("Telegram bot starting...", zap.String("username", botAPI.Self.UserName))
	bot.NewBotApp(botAPI, svc, cfg.Telegram.AdminIDs).Run(ctx, updates)
	botAPI.StopReceivingUpdates()
	utils.Log.Info("Telegram bot stopped")
}
