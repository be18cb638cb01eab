package service

import (
	"fmt"
	"time"

	"github.com/goelshashank/Kitchen-Inventory2/internal/inventory"
	"github.com/goelshashank/Kitchen-Inventory2/internal/models"
	"github.com/goelshashank/Kitchen-Inventory2/internal/repository"
)

// DashboardService loads the current stores and runs the derived views over
// them. Nothing is cached: every call reads fresh rows.
type DashboardService struct {
	ingredients repository.IngredientRepository
	recipes     repository.RecipeRepository
	now         func() time.Time
}

// NewDashboardService - now may be nil, in which case the wall clock is used
func NewDashboardService(ingredients repository.IngredientRepository, recipes repository.RecipeRepository, now func() time.Time) *DashboardService {
	if now == nil {
		now = time.Now
	}
	return &DashboardService{ingredients: ingredients, recipes: recipes, now: now}
}

// Now is the clock the derived views are computed against.
func (s *DashboardService) Now() time.Time {
	return s.now()
}

func (s *DashboardService) Dashboard() (inventory.Summary, error) {
	ingredients, recipes, err := s.load()
	if err != nil {
		return inventory.Summary{}, err
	}
	return inventory.Summarize(ingredients, recipes, s.now()), nil
}

func (s *DashboardService) Reports() (inventory.Report, error) {
	ingredients, recipes, err := s.load()
	if err != nil {
		return inventory.Report{}, err
	}
	return inventory.BuildReport(ingredients, recipes, s.now()), nil
}

// Alerts - the capped, ranked alert list on its own
func (s *DashboardService) Alerts() ([]inventory.Alert, error) {
	ingredients, err := s.ingredients.FindAll()
	if err != nil {
		return nil, fmt.Errorf("load ingredients: %w", err)
	}
	return inventory.GenerateAlerts(ingredients, s.now()), nil
}

func (s *DashboardService) load() ([]*models.Ingredient, []*models.Recipe, error) {
	ingredients, err := s.ingredients.FindAll()
	if err != nil {
		return nil, nil, fmt.Errorf("load ingredients: %w", err)
	}
	recipes, err := s.recipes.FindAll()
	if err != nil {
		return nil, nil, fmt.Errorf("load recipes: %w", err)
	}
	return ingredients, recipes, nil
}
