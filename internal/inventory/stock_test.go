package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goelshashank/Kitchen-Inventory2/internal/models"
)

func TestIsLowStock(t *testing.T) {
	tests := []struct {
		name string
		ing  *models.Ingredient
		want bool
	}{
		{"no threshold, empty", ingredient(1, "a", 0, models.UnitGram), false},
		{"no threshold, plenty", ingredient(1, "a", 1e6, models.UnitGram), false},
		{"below", withMinimum(ingredient(1, "a", 1, models.UnitGram), 2), true},
		{"equal", withMinimum(ingredient(1, "a", 2, models.UnitGram), 2), true},
		{"above", withMinimum(ingredient(1, "a", 3, models.UnitGram), 2), false},
		{"zero threshold, zero stock", withMinimum(ingredient(1, "a", 0, models.UnitGram), 0), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLowStock(tt.ing))
		})
	}
}

func TestStockRatio(t *testing.T) {
	assert.InDelta(t, 0.667, StockRatio(withMinimum(ingredient(1, "a", 500, models.UnitGram), 750)), 0.001)
	assert.Equal(t, 3.0, StockRatio(withMinimum(ingredient(1, "a", 3, models.UnitGram), 0)))
	assert.Equal(t, 3.0, StockRatio(ingredient(1, "a", 3, models.UnitGram)))
}

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "500g", FormatQuantity(500, models.UnitGram))
	assert.Equal(t, "0.5kg", FormatQuantity(0.5, models.UnitKilogram))
	assert.Equal(t, "2pcs", FormatQuantity(2, models.UnitPiece))
}
