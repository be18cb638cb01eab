package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goelshashank/Kitchen-Inventory2/internal/models"
)

func ptr[T any](v T) *T { return &v }

// runStoreContract checks the behaviour every store implementation shares.
// Each store handed in must start empty. countLinks reports how many
// requirement rows the store holds.
func runStoreContract(t *testing.T, ingredients IngredientRepository, recipes RecipeRepository, countLinks func(t *testing.T) int64) {
	t.Run("ingredient crud", func(t *testing.T) {
		expiry := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
		created, err := ingredients.Create(&models.Ingredient{
			Name:         "Flour",
			Quantity:     500,
			Unit:         models.UnitGram,
			Category:     models.CategoryDryGoods,
			ExpiryDate:   &expiry,
			MinimumStock: ptr(750.0),
		})
		require.NoError(t, err)
		require.NotZero(t, created.ID)

		got, err := ingredients.FindByID(created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Flour", got.Name)
		assert.Equal(t, 750.0, *got.MinimumStock)
		assert.True(t, expiry.Equal(*got.ExpiryDate))

		// full replace clears optional fields
		got.Quantity = 900
		got.MinimumStock = nil
		got.ExpiryDate = nil
		require.NoError(t, ingredients.Update(got))

		got, err = ingredients.FindByID(created.ID)
		require.NoError(t, err)
		assert.Equal(t, 900.0, got.Quantity)
		assert.Nil(t, got.MinimumStock)
		assert.Nil(t, got.ExpiryDate)

		require.NoError(t, ingredients.Delete(created.ID))
		_, err = ingredients.FindByID(created.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("missing rows", func(t *testing.T) {
		_, err := ingredients.FindByID(424242)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, ingredients.Delete(424242), ErrNotFound)
		assert.ErrorIs(t, ingredients.Update(&models.Ingredient{ID: 424242, Name: "x", Unit: models.UnitGram, Category: models.CategoryOther}), ErrNotFound)

		_, err = recipes.FindByID(424242)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, recipes.Delete(424242), ErrNotFound)
		_, err = recipes.AddIngredients(424242, nil)
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = recipes.ReplaceIngredients(424242, nil)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("recipe requirements and cascades", func(t *testing.T) {
		rice, err := ingredients.Create(&models.Ingredient{Name: "Rice", Quantity: 1000, Unit: models.UnitGram, Category: models.CategoryDryGoods})
		require.NoError(t, err)
		egg, err := ingredients.Create(&models.Ingredient{Name: "Egg", Quantity: 6, Unit: models.UnitPiece, Category: models.CategoryDairy})
		require.NoError(t, err)
		peas, err := ingredients.Create(&models.Ingredient{Name: "Peas", Quantity: 200, Unit: models.UnitGram, Category: models.CategoryFrozen})
		require.NoError(t, err)

		rec, err := recipes.Create(&models.Recipe{
			Name:         "Fried rice",
			CookTime:     20,
			Instructions: "Fry everything together in a hot wok.",
			Ingredients: []models.RecipeIngredient{
				{IngredientID: rice.ID, Quantity: 300, Unit: models.UnitGram},
				{IngredientID: egg.ID, Quantity: 2, Unit: models.UnitPiece},
			},
		})
		require.NoError(t, err)
		require.Len(t, rec.Ingredients, 2)
		require.NotNil(t, rec.Ingredients[0].Ingredient)
		assert.Equal(t, "Rice", rec.Ingredients[0].Ingredient.Name)

		// append overwrites an existing link and adds a new one
		added, err := recipes.AddIngredients(rec.ID, []models.RecipeIngredient{
			{IngredientID: egg.ID, Quantity: 3, Unit: models.UnitPiece},
			{IngredientID: peas.ID, Quantity: 100, Unit: models.UnitGram},
		})
		require.NoError(t, err)
		assert.Len(t, added, 2)

		rec, err = recipes.FindByID(rec.ID)
		require.NoError(t, err)
		require.Len(t, rec.Ingredients, 3)
		for _, l := range rec.Ingredients {
			if l.IngredientID == egg.ID {
				assert.Equal(t, 3.0, l.Quantity)
			}
		}

		// deleting an ingredient removes its requirement rows
		require.NoError(t, ingredients.Delete(peas.ID))
		rec, err = recipes.FindByID(rec.ID)
		require.NoError(t, err)
		require.Len(t, rec.Ingredients, 2)
		for _, l := range rec.Ingredients {
			assert.NotEqual(t, peas.ID, l.IngredientID)
		}

		// replace is wholesale
		replaced, err := recipes.ReplaceIngredients(rec.ID, []models.RecipeIngredient{
			{IngredientID: rice.ID, Quantity: 50, Unit: models.UnitGram},
		})
		require.NoError(t, err)
		assert.Len(t, replaced, 1)
		rec, err = recipes.FindByID(rec.ID)
		require.NoError(t, err)
		require.Len(t, rec.Ingredients, 1)
		assert.Equal(t, 50.0, rec.Ingredients[0].Quantity)

		replaced, err = recipes.ReplaceIngredients(rec.ID, nil)
		require.NoError(t, err)
		assert.Empty(t, replaced)
		rec, err = recipes.FindByID(rec.ID)
		require.NoError(t, err)
		assert.NotNil(t, rec.Ingredients)
		assert.Empty(t, rec.Ingredients)

		// field update keeps requirements
		_, err = recipes.AddIngredients(rec.ID, []models.RecipeIngredient{{IngredientID: egg.ID, Quantity: 1, Unit: models.UnitPiece}})
		require.NoError(t, err)
		rec.Name = "Egg fried rice"
		rec.Image = ptr("https://example.com/rice.jpg")
		require.NoError(t, recipes.Update(rec))
		rec, err = recipes.FindByID(rec.ID)
		require.NoError(t, err)
		assert.Equal(t, "Egg fried rice", rec.Name)
		assert.Equal(t, "https://example.com/rice.jpg", *rec.Image)
		assert.Len(t, rec.Ingredients, 1)

		all, err := recipes.FindAll()
		require.NoError(t, err)
		assert.Len(t, all, 1)
		n, err := recipes.Count()
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)

		// deleting the recipe drops its requirements and keeps the ingredients
		require.EqualValues(t, 1, countLinks(t))
		require.NoError(t, recipes.Delete(rec.ID))
		assert.Zero(t, countLinks(t))
		assert.ErrorIs(t, recipes.Delete(rec.ID), ErrNotFound)
		_, err = ingredients.FindByID(egg.ID)
		assert.NoError(t, err)
		n, err = ingredients.Count()
		require.NoError(t, err)
		assert.EqualValues(t, 2, n)
	})
}
