package inventory

import (
	"cmp"
	"slices"
	"time"

	"github.com/goelshashank/Kitchen-Inventory2/internal/models"
)

const (
	// ExpiringReportDays bounds daysLeft in the expiring report. Expired
	// items (daysLeft <= 0) stay in.
	ExpiringReportDays = 7
	// MostUsedLimit caps the most-used report.
	MostUsedLimit = 10
)

// ExpiringIngredient is an ingredient annotated with the days left before it expires.
type ExpiringIngredient struct {
	models.Ingredient
	DaysLeft int `json:"daysLeft"`
}

// IngredientUsage is an ingredient annotated with the number of recipes that need it.
type IngredientUsage struct {
	models.Ingredient
	RecipeCount int `json:"recipeCount"`
}

type Report struct {
	LowStock []models.Ingredient `json:"lowStock"`
	Expiring []ExpiringIngredient `json:"expiring"`
	MostUsed []IngredientUsage    `json:"mostUsed"`
}

func BuildReport(ingredients []*models.Ingredient, recipes []*models.Recipe, now time.Time) Report {
	return Report{
		LowStock: LowStockReport(ingredients),
		Expiring: ExpiringReport(ingredients, now),
		MostUsed: MostUsedReport(ingredients, recipes),
	}
}

// LowStockReport lists every low-stock ingredient, most depleted first. Not capped.
func LowStockReport(ingredients []*models.Ingredient) []models.Ingredient {
	low := sortByStockRatio(lowStock(ingredients))
	out := make([]models.Ingredient, 0, len(low))
	for _, ing := range low {
		out = append(out, *ing)
	}
	return out
}

// ExpiringReport lists ingredients with an expiry date and at most
// ExpiringReportDays left, soonest (or longest expired) first.
func ExpiringReport(ingredients []*models.Ingredient, now time.Time) []ExpiringIngredient {
	out := make([]ExpiringIngredient, 0)
	for _, ing := range ingredients {
		if ing == nil || ing.ExpiryDate == nil {
			continue
		}
		left := DaysUntilExpiry(*ing.ExpiryDate, now)
		if left <= ExpiringReportDays {
			out = append(out, ExpiringIngredient{Ingredient: *ing, DaysLeft: left})
		}
	}
	slices.SortStableFunc(out, func(a, b ExpiringIngredient) int {
		return cmp.Compare(a.DaysLeft, b.DaysLeft)
	})
	return out
}

// MostUsedReport counts, for every ingredient, the distinct recipes that
// require it, and keeps the MostUsedLimit highest. Ingredients used by no
// recipe still fill the list when there are fewer used ones.
func MostUsedReport(ingredients []*models.Ingredient, recipes []*models.Recipe) []IngredientUsage {
	usage := make(map[uint]int)
	for _, r := range recipes {
		seen := make(map[uint]bool, len(r.Ingredients))
		for _, req := range r.Ingredients {
			if seen[req.IngredientID] {
				continue
			}
			seen[req.IngredientID] = true
			usage[req.IngredientID]++
		}
	}

	out := make([]IngredientUsage, 0, len(ingredients))
	for _, ing := range ingredients {
		if ing != nil {
			out = append(out, IngredientUsage{Ingredient: *ing, RecipeCount: usage[ing.ID]})
		}
	}
	slices.SortStableFunc(out, func(a, b IngredientUsage) int {
		return cmp.Compare(b.RecipeCount, a.RecipeCount)
	})
	return out[:min(len(out), MostUsedLimit)]
}
