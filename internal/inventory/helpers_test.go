package inventory

import (
	"time"

	"github.com/goelshashank/Kitchen-Inventory2/internal/models"
)

var now = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func ingredient(id uint, name string, qty float64, unit models.Unit) *models.Ingredient {
	return &models.Ingredient{
		ID:       id,
		Name:     name,
		Quantity: qty,
		Unit:     unit,
		Category: models.CategoryOther,
	}
}

func withMinimum(ing *models.Ingredient, threshold float64) *models.Ingredient {
	ing.MinimumStock = ptr(threshold)
	return ing
}

func withExpiry(ing *models.Ingredient, in time.Duration) *models.Ingredient {
	ing.ExpiryDate = ptr(now.Add(in))
	return ing
}

func recipe(id uint, reqs ...models.RecipeIngredient) *models.Recipe {
	for i := range reqs {
		reqs[i].RecipeID = id
	}
	return &models.Recipe{ID: id, Name: "recipe", CookTime: 10, Ingredients: reqs}
}

func needs(ingredientID uint, qty float64) models.RecipeIngredient {
	return models.RecipeIngredient{IngredientID: ingredientID, Quantity: qty, Unit: models.UnitGram}
}
