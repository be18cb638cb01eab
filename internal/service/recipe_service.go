package service

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goelshashank/Kitchen-Inventory2/internal/inventory"
	"github.com/goelshashank/Kitchen-Inventory2/internal/models"
	"github.com/goelshashank/Kitchen-Inventory2/internal/repository"
	"github.com/goelshashank/Kitchen-Inventory2/pkg/utils"
)

// RecipeWithStatus - a recipe annotated with what is missing to cook it
type RecipeWithStatus struct {
	models.Recipe
	MissingIngredients inventory.MissingIngredients `json:"missingIngredients"`
}

type RecipeService struct {
	recipes     repository.RecipeRepository
	ingredients repository.IngredientRepository
}

func NewRecipeService(recipes repository.RecipeRepository, ingredients repository.IngredientRepository) *RecipeService {
	return &RecipeService{recipes: recipes, ingredients: ingredients}
}

// CreateRecipe - store a recipe, optionally with its requirement list
func (s *RecipeService) CreateRecipe(dto RecipeDTO) (*models.Recipe, error) {
	recipe, err := recipeFromDTO(dto)
	if err != nil {
		return nil, err
	}
	requirements, err := s.checkRequirements(dto.Ingredients)
	if err != nil {
		return nil, err
	}
	recipe.Ingredients = requirements

	created, err := s.recipes.Create(recipe)
	if err != nil {
		return nil, fmt.Errorf("create recipe: %w", err)
	}
	utils.Log.Info("Recipe created", zap.Uint("id", created.ID), zap.Int("ingredients", len(requirements)))
	return created, nil
}

// ListRecipesWithStatus returns every recipe with its ingredients and a
// fresh availability verdict computed against current stock.
func (s *RecipeService) ListRecipesWithStatus() ([]RecipeWithStatus, error) {
	recipes, err := s.recipes.FindAll()
	if err != nil {
		utils.Log.Error("ListRecipes failed", zap.Error(err))
		return nil, err
	}
	ingredients, err := s.ingredients.FindAll()
	if err != nil {
		utils.Log.Error("ListRecipes: loading ingredients failed", zap.Error(err))
		return nil, err
	}

	status := inventory.EvaluateRecipes(recipes, ingredients)
	out := make([]RecipeWithStatus, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, RecipeWithStatus{Recipe: *r, MissingIngredients: status[r.ID]})
	}
	return out, nil
}

func (s *RecipeService) GetRecipe(id uint) (*models.Recipe, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	return s.recipes.FindByID(id)
}

// UpdateRecipe replaces the recipe's own fields. Requirements are managed
// through AddIngredients and ReplaceIngredients.
func (s *RecipeService) UpdateRecipe(id uint, dto RecipeDTO) (*models.Recipe, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	recipe, err := recipeFromDTO(dto)
	if err != nil {
		return nil, err
	}
	recipe.ID = id
	if err := s.recipes.Update(recipe); err != nil {
		return nil, err
	}
	return s.recipes.FindByID(id)
}

func (s *RecipeService) DeleteRecipe(id uint) error {
	if id == 0 {
		return ErrNotFound
	}
	if err := s.recipes.Delete(id); err != nil {
		return err
	}
	utils.Log.Info("Recipe deleted", zap.Uint("id", id))
	return nil
}

// AddIngredients appends requirements; an ingredient already on the recipe
// has its quantity and unit overwritten.
func (s *RecipeService) AddIngredients(recipeID uint, items []RequirementDTO) ([]models.RecipeIngredient, error) {
	if _, err := s.GetRecipe(recipeID); err != nil {
		return nil, err
	}
	requirements, err := s.checkRequirements(items)
	if err != nil {
		return nil, err
	}
	return s.recipes.AddIngredients(recipeID, requirements)
}

// ReplaceIngredients swaps the recipe's requirement set for items.
func (s *RecipeService) ReplaceIngredients(recipeID uint, items []RequirementDTO) ([]models.RecipeIngredient, error) {
	if _, err := s.GetRecipe(recipeID); err != nil {
		return nil, err
	}
	requirements, err := s.checkRequirements(items)
	if err != nil {
		return nil, err
	}
	return s.recipes.ReplaceIngredients(recipeID, requirements)
}

// SetImage points the recipe at an uploaded image.
func (s *RecipeService) SetImage(id uint, imageURL string) (*models.Recipe, error) {
	if !isWebURL(imageURL) {
		v := &ValidationError{}
		v.add("image", "must be an http or https URL")
		return nil, v
	}
	recipe, err := s.GetRecipe(id)
	if err != nil {
		return nil, err
	}
	recipe.Image = &imageURL
	if err := s.recipes.Update(recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

// checkRequirements validates items and makes sure every referenced
// ingredient exists.
func (s *RecipeService) checkRequirements(items []RequirementDTO) ([]models.RecipeIngredient, error) {
	requirements, err := requirementsFromDTO(items)
	if err != nil {
		return nil, err
	}

	v := &ValidationError{}
	for i, r := range requirements {
		_, err := s.ingredients.FindByID(r.IngredientID)
		switch {
		case errors.Is(err, ErrNotFound):
			v.add(fmt.Sprintf("ingredients[%d].ingredientId", i), "ingredient %d does not exist", r.IngredientID)
		case err != nil:
			return nil, fmt.Errorf("look up ingredient %d: %w", r.IngredientID, err)
		}
	}
	if err := v.err(); err != nil {
		return nil, err
	}
	return requirements, nil
}
