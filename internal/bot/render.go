package bot

import (
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/goelshashank/Kitchen-Inventory2/internal/inventory"
	"github.com/goelshashank/Kitchen-Inventory2/internal/models"
	"github.com/goelshashank/Kitchen-Inventory2/internal/service"
)

// maxListItems keeps list replies under Telegram's message size limit.
const maxListItems = 40

// expiringSoonWindow matches the week used by /expiring.
const expiringSoonWindow = 7 * 24 * time.Hour

func esc(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}

func helpText(admin bool) string {
	var b strings.Builder
	b.WriteString(`📚 *Kitchen Inventory Bot*

/dashboard - summary and alerts
/alerts - expiry and low-stock alerts
/lowstock - ingredients at or below their minimum
/expiring - ingredients expiring within a week
/recipes - recipes and whether you can cook them
/ingredients - everything in stock
`)
	if admin {
		b.WriteString(`
*Admin:*
/add - add an ingredient step by step
/restock <id> <quantity> - set the quantity of an ingredient
/cancel - abort the current step-by-step action
`)
	}
	return b.String()
}

func renderDashboard(s inventory.Summary) string {
	var b strings.Builder
	b.WriteString("📊 *Dashboard*\n\n")
	fmt.Fprintf(&b, "Ingredients: %d\n", s.TotalIngredients)
	fmt.Fprintf(&b, "Recipes: %d\n", s.TotalRecipes)
	fmt.Fprintf(&b, "Low stock: %d\n", s.LowStockCount)
	fmt.Fprintf(&b, "Expiring this week: %d\n", s.ExpiringCount)
	if len(s.Alerts) > 0 {
		b.WriteString("\n")
		b.WriteString(renderAlertLines(s.Alerts))
	}
	return b.String()
}

func renderAlerts(alerts []inventory.Alert) string {
	if len(alerts) == 0 {
		return "✅ No alerts"
	}
	return "🔔 *Alerts*\n\n" + renderAlertLines(alerts)
}

func renderAlertLines(alerts []inventory.Alert) string {
	var b strings.Builder
	for _, a := range alerts {
		icon := "⚠️"
		if a.Type == inventory.AlertDanger {
			icon = "⛔"
		}
		fmt.Fprintf(&b, "%s %s\n", icon, esc(a.Message))
	}
	return b.String()
}

func renderLowStock(items []models.Ingredient) string {
	if len(items) == 0 {
		return "✅ Nothing is running low"
	}
	var b strings.Builder
	b.WriteString("📉 *Low stock*\n\n")
	for i, ing := range items {
		if i == maxListItems {
			fmt.Fprintf(&b, "…and %d more\n", len(items)-i)
			break
		}
		minimum := 0.0
		if ing.MinimumStock != nil {
			minimum = *ing.MinimumStock
		}
		fmt.Fprintf(&b, "• %s: %s (min %s)\n", esc(ing.Name),
			inventory.FormatQuantity(ing.Quantity, ing.Unit),
			inventory.FormatQuantity(minimum, ing.Unit))
	}
	return b.String()
}

func renderExpiring(items []inventory.ExpiringIngredient) string {
	if len(items) == 0 {
		return "✅ Nothing expires this week"
	}
	var b strings.Builder
	b.WriteString("⏳ *Expiring*\n\n")
	for i, e := range items {
		if i == maxListItems {
			fmt.Fprintf(&b, "…and %d more\n", len(items)-i)
			break
		}
		fmt.Fprintf(&b, "• %s: %s\n", esc(e.Name), daysLeftText(e.DaysLeft))
	}
	return b.String()
}

func daysLeftText(days int) string {
	switch {
	case days < 0:
		return fmt.Sprintf("expired %dd ago", -days)
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	default:
		return fmt.Sprintf("in %d days", days)
	}
}

func recipeStatus(m inventory.MissingIngredients) string {
	status := "✅ ready"
	if !m.Ready() {
		status = fmt.Sprintf("❌ %d missing", m.Count)
	}
	if m.LowStock {
		status += " ⚠️ low stock"
	}
	return status
}

func renderRecipes(recipes []service.RecipeWithStatus) string {
	if len(recipes) == 0 {
		return "📭 No recipes yet"
	}
	var b strings.Builder
	b.WriteString("🍳 *Recipes*\n\n")
	for i, r := range recipes {
		if i == maxListItems {
			fmt.Fprintf(&b, "…and %d more\n", len(recipes)-i)
			break
		}
		fmt.Fprintf(&b, "• %s (%d min): %s\n", esc(r.Name), r.CookTime, recipeStatus(r.MissingIngredients))
	}
	return b.String()
}

func renderIngredients(ingredients []*models.Ingredient, now time.Time) string {
	if len(ingredients) == 0 {
		return "📭 The pantry is empty"
	}
	var b strings.Builder
	b.WriteString("🥕 *Ingredients*\n\n")
	for i, ing := range ingredients {
		if i == maxListItems {
			fmt.Fprintf(&b, "…and %d more\n", len(ingredients)-i)
			break
		}
		fmt.Fprintf(&b, "%d. %s: %s (%s)", ing.ID, esc(ing.Name),
			inventory.DisplayQuantity(ing.Quantity, ing.Unit), ing.Category.Label())
		b.WriteString(ingredientBadges(ing, now))
		b.WriteString("\n")
	}
	return b.String()
}

func ingredientBadges(ing *models.Ingredient, now time.Time) string {
	var badges string
	if inventory.IsLowStock(ing) {
		badges += " ⚠️"
	}
	if ing.ExpiryDate != nil {
		switch {
		case inventory.IsExpired(*ing.ExpiryDate, now):
			badges += " ⛔ expired"
		case inventory.IsExpiringSoon(*ing.ExpiryDate, now, expiringSoonWindow):
			badges += " ⏳ " + daysLeftText(inventory.DaysUntilExpiry(*ing.ExpiryDate, now))
		}
	}
	return badges
}

func unitChoices() string {
	var b strings.Builder
	for _, u := range models.Units {
		fmt.Fprintf(&b, "\n%s - %s", u, u.Label())
	}
	return b.String()
}

func categoryChoices() string {
	names := make([]string, 0, len(models.Categories))
	for _, c := range models.Categories {
		names = append(names, esc(string(c)))
	}
	return strings.Join(names, ", ")
}
