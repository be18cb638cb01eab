package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/goelshashank/Kitchen-Inventory2/internal/models"
	"github.com/goelshashank/Kitchen-Inventory2/internal/repository"
)

var fixedNow = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

type fixture struct {
	ingredients *IngredientService
	recipes     *RecipeService
	dashboard   *DashboardService
}

func newFixture() *fixture {
	store := repository.NewMemoryStore()
	return &fixture{
		ingredients: NewIngredientService(store.Ingredients()),
		recipes:     NewRecipeService(store.Recipes(), store.Ingredients()),
		dashboard:   NewDashboardService(store.Ingredients(), store.Recipes(), func() time.Time { return fixedNow }),
	}
}

func (f *fixture) addIngredient(t *testing.T, name string, qty float64, unit models.Unit) *models.Ingredient {
	t.Helper()
	ing, err := f.ingredients.CreateIngredient(IngredientDTO{
		Name:     name,
		Quantity: qty,
		Unit:     unit,
		Category: models.CategoryOther,
	})
	require.NoError(t, err)
	return ing
}

func validRecipe(name string, reqs ...RequirementDTO) RecipeDTO {
	return RecipeDTO{
		Name:         name,
		CookTime:     15,
		Instructions: "Mix, heat and serve warm.",
		Ingredients:  reqs,
	}
}

// fieldsOf lists the rejected fields of a validation error.
func fieldsOf(t *testing.T, err error) []string {
	t.Helper()
	var v *ValidationError
	require.ErrorAs(t, err, &v)
	out := make([]string, 0, len(v.Fields))
	for _, f := range v.Fields {
		out = append(out, f.Field)
	}
	return out
}
