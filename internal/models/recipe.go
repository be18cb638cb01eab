package models

// Recipe - a cooking procedure with its ingredient requirements
type Recipe struct {
	ID           uint               `gorm:"primaryKey" json:"id"`
	Name         string             `gorm:"type:text;not null" json:"name"`
	CookTime     int                `gorm:"not null" json:"cookTime"` // minutes
	Instructions string             `gorm:"type:text;not null" json:"instructions"`
	Image        *string            `gorm:"type:text" json:"image"`
	Notes        *string            `gorm:"type:text" json:"notes"`
	Ingredients  []RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"ingredients"`
}

// RecipeIngredient - how much of one ingredient a recipe needs.
// (RecipeID, IngredientID) is the primary key, so a recipe lists an ingredient at most once.
type RecipeIngredient struct {
	RecipeID     uint        `gorm:"primaryKey;autoIncrement:false" json:"recipeId"`
	IngredientID uint        `gorm:"primaryKey;autoIncrement:false" json:"ingredientId"`
	Quantity     float64     `gorm:"not null" json:"quantity"`
	Unit         Unit        `gorm:"type:varchar(8);not null" json:"unit"` // not converted, see inventory.EvaluateRecipe
	Ingredient   *Ingredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE" json:"ingredient,omitempty"`
}
