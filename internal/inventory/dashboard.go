package inventory

import (
	"time"

	"github.com/goelshashank/Kitchen-Inventory2/internal/models"
)

// DashboardExpiryWindow is the look-ahead for the "expiring soon" counter.
const DashboardExpiryWindow = 7 * day

// Summary feeds the landing page.
type Summary struct {
	TotalIngredients int     `json:"totalIngredients"`
	TotalRecipes     int     `json:"totalRecipes"`
	LowStockCount    int     `json:"lowStockCount"`
	ExpiringCount    int     `json:"expiringCount"`
	Alerts           []Alert `json:"alerts"`
}

func Summarize(ingredients []*models.Ingredient, recipes []*models.Recipe, now time.Time) Summary {
	s := Summary{
		TotalIngredients: len(ingredients),
		TotalRecipes:     len(recipes),
		LowStockCount:    len(lowStock(ingredients)),
		Alerts:           GenerateAlerts(ingredients, now),
	}
	for _, ing := range ingredients {
		if ing != nil && ing.ExpiryDate != nil && IsExpiringSoon(*ing.ExpiryDate, now, DashboardExpiryWindow) {
			s.ExpiringCount++
		}
	}
	return s
}
