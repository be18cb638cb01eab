package inventory

import "github.com/goelshashank/Kitchen-Inventory2/internal/models"

// MissingIngredients is the cookability verdict for one recipe.
type MissingIngredients struct {
	Count    int  `json:"count"`
	LowStock bool `json:"lowStock"`
}

// Ready - nothing is missing
func (m MissingIngredients) Ready() bool {
	return m.Count == 0
}

// EvaluateRecipe joins a recipe's requirements against the pantry.
//
// A requirement counts as missing when its ingredient is not in the pantry
// any more or holds less than the required quantity. LowStock is set when any
// referenced ingredient sits at or below its own minimum-stock threshold,
// independently of the recipe's needs.
//
// Quantities are compared as plain numbers: a requirement in kg against stock
// in g is not converted.
func EvaluateRecipe(requirements []models.RecipeIngredient, ingredients []*models.Ingredient) MissingIngredients {
	return evaluate(requirements, indexByID(ingredients))
}

// EvaluateRecipes evaluates every recipe against a single pantry index, keyed by recipe ID.
func EvaluateRecipes(recipes []*models.Recipe, ingredients []*models.Ingredient) map[uint]MissingIngredients {
	stock := indexByID(ingredients)
	out := make(map[uint]MissingIngredients, len(recipes))
	for _, r := range recipes {
		out[r.ID] = evaluate(r.Ingredients, stock)
	}
	return out
}

func evaluate(requirements []models.RecipeIngredient, stock map[uint]*models.Ingredient) MissingIngredients {
	var result MissingIngredients
	for _, req := range requirements {
		ing, found := stock[req.IngredientID]
		if !found || ing.Quantity < req.Quantity {
			result.Count++
		}
		if found && IsLowStock(ing) {
			result.LowStock = true
		}
	}
	return result
}
