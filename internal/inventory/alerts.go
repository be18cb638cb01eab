package inventory

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/goelshashank/Kitchen-Inventory2/internal/models"
)

type AlertType string

const (
	AlertDanger  AlertType = "danger"
	AlertWarning AlertType = "warning"
)

// Alert is one line on the dashboard.
type Alert struct {
	Type    AlertType `json:"type"`
	Message string    `json:"message"`
}

const (
	// ExpiryAlertWindow is how far ahead an expiry date raises an alert.
	ExpiryAlertWindow = 3 * day
	// MaxAlertsPerStream caps the expiry and the low-stock alerts separately.
	MaxAlertsPerStream = 3
)

// GenerateAlerts returns the expiry alerts (soonest first) followed by the
// low-stock alerts (most depleted first), at most MaxAlertsPerStream of each.
func GenerateAlerts(ingredients []*models.Ingredient, now time.Time) []Alert {
	alerts := make([]Alert, 0, 2*MaxAlertsPerStream)
	alerts = append(alerts, ExpiryAlerts(ingredients, now)...)
	alerts = append(alerts, LowStockAlerts(ingredients)...)
	return alerts
}

// ExpiryAlerts covers ingredients expiring after now and within
// ExpiryAlertWindow. Items that already expired are left to the reports.
func ExpiryAlerts(ingredients []*models.Ingredient, now time.Time) []Alert {
	var expiring []*models.Ingredient
	for _, ing := range ingredients {
		if ing != nil && ing.ExpiryDate != nil && IsExpiringSoon(*ing.ExpiryDate, now, ExpiryAlertWindow) {
			expiring = append(expiring, ing)
		}
	}
	slices.SortStableFunc(expiring, func(a, b *models.Ingredient) int {
		return a.ExpiryDate.Compare(*b.ExpiryDate)
	})

	alerts := make([]Alert, 0, MaxAlertsPerStream)
	for _, ing := range expiring[:min(len(expiring), MaxAlertsPerStream)] {
		alerts = append(alerts, Alert{
			Type:    AlertDanger,
			Message: expiryMessage(ing.Name, fullDaysUntil(*ing.ExpiryDate, now)),
		})
	}
	return alerts
}

// LowStockAlerts covers ingredients at or below their minimum stock, ordered
// by StockRatio ascending.
func LowStockAlerts(ingredients []*models.Ingredient) []Alert {
	low := sortByStockRatio(lowStock(ingredients))

	alerts := make([]Alert, 0, MaxAlertsPerStream)
	for _, ing := range low[:min(len(low), MaxAlertsPerStream)] {
		alerts = append(alerts, Alert{
			Type:    AlertWarning,
			Message: fmt.Sprintf("Low on %s (%s remaining)", ing.Name, FormatQuantity(ing.Quantity, ing.Unit)),
		})
	}
	return alerts
}

func expiryMessage(name string, days int) string {
	switch days {
	case 0:
		return name + " expires today"
	case 1:
		return name + " expires tomorrow"
	default:
		return fmt.Sprintf("%s expires in %d days", name, days)
	}
}

func sortByStockRatio(ingredients []*models.Ingredient) []*models.Ingredient {
	slices.SortStableFunc(ingredients, func(a, b *models.Ingredient) int {
		return cmp.Compare(StockRatio(a), StockRatio(b))
	})
	return ingredients
}
