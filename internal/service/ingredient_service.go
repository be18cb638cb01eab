package service

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/goelshashank/Kitchen-Inventory2/internal/models"
	"github.com/goelshashank/Kitchen-Inventory2/internal/repository"
	"github.com/goelshashank/Kitchen-Inventory2/pkg/utils"
)

type IngredientService struct {
	repo repository.IngredientRepository
}

func NewIngredientService(repo repository.IngredientRepository) *IngredientService {
	return &IngredientService{repo: repo}
}

// CreateIngredient - validate and store a new ingredient
func (s *IngredientService) CreateIngredient(dto IngredientDTO) (*models.Ingredient, error) {
	ingredient, err := ingredientFromDTO(dto)
	if err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ingredient)
	if err != nil {
		return nil, fmt.Errorf("create ingredient: %w", err)
	}
	utils.Log.Info("Ingredient created", zap.Uint("id", created.ID), zap.String("name", created.Name))
	return created, nil
}

// ListIngredients - every ingredient ordered by id
func (s *IngredientService) ListIngredients() ([]*models.Ingredient, error) {
	ingredients, err := s.repo.FindAll()
	if err != nil {
		utils.Log.Error("ListIngredients failed", zap.Error(err))
		return nil, err
	}
	return ingredients, nil
}

func (s *IngredientService) GetIngredientByID(id uint) (*models.Ingredient, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	return s.repo.FindByID(id)
}

// UpdateIngredient - full replace of every field
func (s *IngredientService) UpdateIngredient(id uint, dto IngredientDTO) (*models.Ingredient, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	ingredient, err := ingredientFromDTO(dto)
	if err != nil {
		return nil, err
	}
	ingredient.ID = id
	if err := s.repo.Update(ingredient); err != nil {
		return nil, err
	}
	return ingredient, nil
}

// RestockIngredient sets a new quantity and keeps every other field.
func (s *IngredientService) RestockIngredient(id uint, quantity float64) (*models.Ingredient, error) {
	if !finite(quantity) || quantity < 0 {
		v := &ValidationError{}
		v.add("quantity", "must be a non-negative number")
		return nil, v
	}
	ingredient, err := s.GetIngredientByID(id)
	if err != nil {
		return nil, err
	}
	ingredient.Quantity = quantity
	if err := s.repo.Update(ingredient); err != nil {
		return nil, err
	}
	return ingredient, nil
}

// DeleteIngredient - remove an ingredient along with the recipe requirements on it
func (s *IngredientService) DeleteIngredient(id uint) error {
	if id == 0 {
		return ErrNotFound
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	utils.Log.Info("Ingredient deleted", zap.Uint("id", id))
	return nil
}
