package inventory

import (
	"strconv"

	"github.com/goelshashank/Kitchen-Inventory2/internal/models"
)

// IsLowStock reports whether the ingredient is at or below its own
// minimum-stock threshold. Ingredients without a threshold are never low.
func IsLowStock(ing *models.Ingredient) bool {
	return ing.MinimumStock != nil && ing.Quantity <= *ing.MinimumStock
}

// StockRatio is quantity divided by the minimum-stock threshold. A missing or
// zero threshold counts as 1.
func StockRatio(ing *models.Ingredient) float64 {
	threshold := 1.0
	if ing.MinimumStock != nil && *ing.MinimumStock != 0 {
		threshold = *ing.MinimumStock
	}
	return ing.Quantity / threshold
}

// FormatQuantity renders a quantity with its unit, e.g. "500g" or "0.5kg".
func FormatQuantity(quantity float64, unit models.Unit) string {
	return strconv.FormatFloat(quantity, 'f', -1, 64) + string(unit)
}

func indexByID(ingredients []*models.Ingredient) map[uint]*models.Ingredient {
	idx := make(map[uint]*models.Ingredient, len(ingredients))
	for _, ing := range ingredients {
		if ing != nil {
			idx[ing.ID] = ing
		}
	}
	return idx
}

func lowStock(ingredients []*models.Ingredient) []*models.Ingredient {
	var out []*models.Ingredient
	for _, ing := range ingredients {
		if ing != nil && IsLowStock(ing) {
			out = append(out, ing)
		}
	}
	return out
}
