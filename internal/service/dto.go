package service

import "github.com/goelshashank/Kitchen-Inventory2/internal/models"

// IngredientDTO - ingredient fields as they arrive from a client. Used for
// both create and update; an update replaces every field.
type IngredientDTO struct {
	Name         string          `json:"name"`
	Quantity     float64         `json:"quantity"`
	Unit         models.Unit     `json:"unit"`
	Category     models.Category `json:"category"`
	ExpiryDate   *string         `json:"expiryDate"` // RFC 3339 or YYYY-MM-DD
	MinimumStock *float64        `json:"minimumStock"`
	Notes        *string         `json:"notes"`
}

// RecipeDTO - recipe fields. Ingredients is only read on create.
type RecipeDTO struct {
	Name         string           `json:"name"`
	CookTime     int              `json:"cookTime"`
	Instructions string           `json:"instructions"`
	Image        *string          `json:"image"`
	Notes        *string          `json:"notes"`
	Ingredients  []RequirementDTO `json:"ingredients"`
}

// RequirementDTO - one ingredient requirement of a recipe
type RequirementDTO struct {
	IngredientID uint        `json:"ingredientId"`
	Quantity     float64     `json:"quantity"`
	Unit         models.Unit `json:"unit"`
}

// RequirementsDTO - body of the append/replace requirement endpoints
type RequirementsDTO struct {
	Ingredients []RequirementDTO `json:"ingredients"`
}
