package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goelshashank/Kitchen-Inventory2/internal/models"
)

func TestLowStockReport(t *testing.T) {
	pantry := []*models.Ingredient{
		withMinimum(ingredient(1, "Flour", 500, models.UnitGram), 750),
		withMinimum(ingredient(2, "Oil", 100, models.UnitMilliliter), 1000),
		withMinimum(ingredient(3, "Salt", 900, models.UnitGram), 100),
		ingredient(4, "Pepper", 0, models.UnitGram),
	}

	got := LowStockReport(pantry)

	require.Len(t, got, 2)
	assert.Equal(t, "Oil", got[0].Name)
	assert.Equal(t, "Flour", got[1].Name)
}

func TestLowStockReport_NotCapped(t *testing.T) {
	var pantry []*models.Ingredient
	for i := uint(1); i <= 12; i++ {
		pantry = append(pantry, withMinimum(ingredient(i, "x", 0, models.UnitGram), 1))
	}

	assert.Len(t, LowStockReport(pantry), 12)
}

func TestExpiringReport(t *testing.T) {
	pantry := []*models.Ingredient{
		withExpiry(ingredient(1, "Cheese", 1, models.UnitPiece), 5*24*time.Hour),
		withExpiry(ingredient(2, "Old milk", 1, models.UnitLiter), -36*time.Hour),
		withExpiry(ingredient(3, "Canned beans", 1, models.UnitPiece), 300*24*time.Hour),
		withExpiry(ingredient(4, "Bread", 1, models.UnitPiece), 12*time.Hour),
		withExpiry(ingredient(5, "Edge", 1, models.UnitPiece), 7*24*time.Hour),
		ingredient(6, "Rice", 1, models.UnitKilogram),
	}

	got := ExpiringReport(pantry, now)

	require.Len(t, got, 4)
	assert.Equal(t, "Old milk", got[0].Name)
	assert.Equal(t, -1, got[0].DaysLeft)
	assert.Equal(t, "Bread", got[1].Name)
	assert.Equal(t, 1, got[1].DaysLeft)
	assert.Equal(t, "Cheese", got[2].Name)
	assert.Equal(t, 5, got[2].DaysLeft)
	assert.Equal(t, "Edge", got[3].Name)
	assert.Equal(t, 7, got[3].DaysLeft)
}

func TestMostUsedReport(t *testing.T) {
	pantry := []*models.Ingredient{
		ingredient(1, "Salt", 1, models.UnitGram),
		ingredient(2, "Eggs", 1, models.UnitPiece),
		ingredient(3, "Saffron", 1, models.UnitGram),
	}
	recipes := []*models.Recipe{
		recipe(1, needs(1, 1), needs(2, 1)),
		recipe(2, needs(2, 3)),
		recipe(3, needs(2, 100), needs(1, 1)),
		recipe(4, needs(2, 1)),
	}

	got := MostUsedReport(pantry, recipes)

	require.Len(t, got, 3)
	assert.Equal(t, "Eggs", got[0].Name)
	assert.Equal(t, 4, got[0].RecipeCount)
	assert.Equal(t, "Salt", got[1].Name)
	assert.Equal(t, 2, got[1].RecipeCount)
	assert.Equal(t, 0, got[2].RecipeCount)
}

func TestMostUsedReport_CountsRecipeOncePerIngredient(t *testing.T) {
	pantry := []*models.Ingredient{ingredient(1, "Garlic", 5, models.UnitPiece)}
	r := recipe(1, needs(1, 1), needs(1, 2))

	got := MostUsedReport(pantry, []*models.Recipe{r})

	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].RecipeCount)
}

func TestMostUsedReport_TopTenSortedDescending(t *testing.T) {
	var pantry []*models.Ingredient
	var recipes []*models.Recipe
	for i := uint(1); i <= 15; i++ {
		pantry = append(pantry, ingredient(i, "x", 1, models.UnitGram))
		for j := uint(0); j < i; j++ {
			recipes = append(recipes, recipe(i*100+j, needs(i, 1)))
		}
	}

	got := MostUsedReport(pantry, recipes)

	require.Len(t, got, MostUsedLimit)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].RecipeCount, got[i].RecipeCount)
	}
	assert.Equal(t, 15, got[0].RecipeCount)
}

func TestBuildReport_EmptyListsNotNil(t *testing.T) {
	got := BuildReport(nil, nil, now)

	assert.NotNil(t, got.LowStock)
	assert.NotNil(t, got.Expiring)
	assert.NotNil(t, got.MostUsed)
}
