package mailer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/goelshashank/Kitchen-Inventory2/internal/inventory"
	"github.com/goelshashank/Kitchen-Inventory2/internal/models"
)

var now = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

func TestRenderReport(t *testing.T) {
	minimum := 6.0
	eggs := models.Ingredient{ID: 1, Name: "Eggs", Quantity: 2, Unit: models.UnitPiece, MinimumStock: &minimum}
	milk := models.Ingredient{ID: 2, Name: "Milk", Quantity: 1.5, Unit: models.UnitLiter}

	subject, body := RenderReport(inventory.Report{
		LowStock: []models.Ingredient{eggs},
		Expiring: []inventory.ExpiringIngredient{
			{Ingredient: eggs, DaysLeft: -2},
			{Ingredient: milk, DaysLeft: 1},
		},
		MostUsed: []inventory.IngredientUsage{
			{Ingredient: eggs, RecipeCount: 3},
			{Ingredient: milk, RecipeCount: 1},
		},
	}, now)

	assert.Equal(t, "Kitchen inventory report 2024-03-10", subject)
	assert.Equal(t, `Kitchen inventory report for 2024-03-10

Low stock (1)
  - Eggs: 2pcs left, minimum 6pcs

Expiring within 7 days (2)
  - Eggs: expired 2 days ago
  - Milk: expires tomorrow

Most used ingredients
  1. Eggs - 3 recipes
  2. Milk - 1 recipe
`, body)
}

func TestRenderReport_Empty(t *testing.T) {
	_, body := RenderReport(inventory.Report{}, now)

	assert.Contains(t, body, "Low stock (0)\n  none\n")
	assert.Contains(t, body, "Expiring within 7 days (0)\n  none\n")
	assert.Contains(t, body, "Most used ingredients\n  none\n")
}

func TestDescribeDaysLeft(t *testing.T) {
	assert.Equal(t, "expired 1 day ago", describeDaysLeft(-1))
	assert.Equal(t, "expires today", describeDaysLeft(0))
	assert.Equal(t, "expires in 5 days", describeDaysLeft(5))
}
