package bot

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/goelshashank/Kitchen-Inventory2/internal/inventory"
	"github.com/goelshashank/Kitchen-Inventory2/internal/service"
	"github.com/goelshashank/Kitchen-Inventory2/pkg/utils"
)

// Sender is the part of *tgbotapi.BotAPI the bot uses to reply.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Services - use cases the bot exposes
type Services struct {
	Ingredients *service.IngredientService
	Recipes     *service.RecipeService
	Dashboard   *service.DashboardService
}

// BotApp - kitchen bot: read views for everyone, mutations for admins
type BotApp struct {
	api    Sender
	admins map[int64]bool
	svc    Services
	flows  *FlowStore
}

func NewBotApp(api Sender, svc Services, adminIDs []int64) *BotApp {
	admins := make(map[int64]bool, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = true
	}
	return &BotApp{api: api, admins: admins, svc: svc, flows: NewFlowStore()}
}

// Run handles updates until ctx is done or the channel closes.
func (b *BotApp) Run(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	utils.Log.Info("🤖 Bot started", zap.Int("admins", len(b.admins)))
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.HandleUpdate(update)
		}
	}
}

func (b *BotApp) HandleUpdate(update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.From == nil {
		return
	}
	if msg.IsCommand() {
		b.handleCommand(msg)
		return
	}
	b.handleRegularMessage(msg)
}

func (b *BotApp) isAdmin(userID int64) bool {
	return b.admins[userID]
}

func (b *BotApp) handleCommand(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	userID := msg.From.ID

	switch msg.Command() {
	case "start", "help":
		b.sendText(chatID, helpText(b.isAdmin(userID)))
	case "dashboard":
		summary, err := b.svc.Dashboard.Dashboard()
		if err != nil {
			b.fail(chatID, "dashboard", err)
			return
		}
		b.sendText(chatID, renderDashboard(summary))
	case "alerts":
		alerts, err := b.svc.Dashboard.Alerts()
		if err != nil {
			b.fail(chatID, "alerts", err)
			return
		}
		b.sendText(chatID, renderAlerts(alerts))
	case "lowstock":
		report, err := b.svc.Dashboard.Reports()
		if err != nil {
			b.fail(chatID, "reports", err)
			return
		}
		b.sendText(chatID, renderLowStock(report.LowStock))
	case "expiring":
		report, err := b.svc.Dashboard.Reports()
		if err != nil {
			b.fail(chatID, "reports", err)
			return
		}
		b.sendText(chatID, renderExpiring(report.Expiring))
	case "recipes":
		recipes, err := b.svc.Recipes.ListRecipesWithStatus()
		if err != nil {
			b.fail(chatID, "recipes", err)
			return
		}
		b.sendText(chatID, renderRecipes(recipes))
	case "ingredients":
		ingredients, err := b.svc.Ingredients.ListIngredients()
		if err != nil {
			b.fail(chatID, "ingredients", err)
			return
		}
		b.sendText(chatID, renderIngredients(ingredients, b.svc.Dashboard.Now()))
	case "add":
		if !b.requireAdmin(chatID, userID) {
			return
		}
		b.flows.Set(userID, newAddIngredientFlow())
		b.sendText(chatID, addIngredientPrompt)
	case "restock":
		if !b.requireAdmin(chatID, userID) {
			return
		}
		b.restock(chatID, msg.CommandArguments())
	case "cancel":
		if b.flows.Delete(userID) {
			b.sendText(chatID, "👌 Cancelled")
			return
		}
		b.sendText(chatID, "Nothing to cancel")
	default:
		b.sendText(chatID, "Unknown command. Use /help")
	}
}

func (b *BotApp) requireAdmin(chatID, userID int64) bool {
	if b.isAdmin(userID) {
		return true
	}
	b.sendText(chatID, "⛔ Admins only")
	return false
}

func (b *BotApp) handleRegularMessage(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	userID := msg.From.ID

	state, ok := b.flows.Get(userID)
	if !ok || !b.isAdmin(userID) {
		b.sendText(chatID, "Use /help to see what I can do")
		return
	}

	switch state.Action {
	case actionAddIngredient:
		reply, dto := advanceAddIngredient(state, msg.Text)
		if dto == nil {
			b.sendText(chatID, reply)
			return
		}
		b.flows.Delete(userID)

		ing, err := b.svc.Ingredients.CreateIngredient(*dto)
		if err != nil {
			b.reportError(chatID, "add ingredient", err)
			return
		}
		b.sendText(chatID, fmt.Sprintf("✅ Added %s (id %d)", esc(ing.Name), ing.ID))
	default:
		b.flows.Delete(userID)
		b.sendText(chatID, "❌ Something went wrong, please start again")
	}
}

func (b *BotApp) restock(chatID int64, args string) {
	id, quantity, err := parseRestockArgs(args)
	if err != nil {
		b.sendText(chatID, "❌ "+esc(err.Error()))
		return
	}
	ing, err := b.svc.Ingredients.RestockIngredient(id, quantity)
	if err != nil {
		b.reportError(chatID, "restock", err)
		return
	}
	b.sendText(chatID, fmt.Sprintf("✅ %s now at %s", esc(ing.Name), inventory.FormatQuantity(ing.Quantity, ing.Unit)))
}

// reportError tells the user what went wrong for errors they can fix and
// falls back to fail for everything else.
func (b *BotApp) reportError(chatID int64, op string, err error) {
	var invalid *service.ValidationError
	switch {
	case errors.As(err, &invalid):
		b.sendText(chatID, "❌ "+esc(invalid.Error()))
	case errors.Is(err, service.ErrNotFound):
		b.sendText(chatID, "❌ Ingredient not found")
	default:
		b.fail(chatID, op, err)
	}
}

func (b *BotApp) fail(chatID int64, op string, err error) {
	utils.Log.Error("bot: "+op+" failed", zap.Int64("chat_id", chatID), zap.Error(err))
	b.sendText(chatID, "❌ Something went wrong, try again later")
}

// sendText sends Markdown and retries as plain text when Telegram rejects
// the markup.
func (b *BotApp) sendText(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := b.api.Send(msg); err != nil {
		utils.Log.Warn("sendText: markdown rejected", zap.Int64("chat_id", chatID), zap.Error(err))

		plain := tgbotapi.NewMessage(chatID, text)
		if _, err := b.api.Send(plain); err != nil {
			utils.Log.Error("sendText failed", zap.Int64("chat_id", chatID), zap.Error(err))
		}
	}
}
