package service

import (
	"fmt"
	"math"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/goelshashank/Kitchen-Inventory2/internal/models"
)

const (
	minNameLength         = 2
	minInstructionsLength = 10
)

// ingredientFromDTO validates dto and builds the entity it describes.
func ingredientFromDTO(dto IngredientDTO) (*models.Ingredient, error) {
	v := &ValidationError{}

	name := strings.TrimSpace(dto.Name)
	if utf8.RuneCountInString(name) < minNameLength {
		v.add("name", "must be at least %d characters", minNameLength)
	}
	if !finite(dto.Quantity) || dto.Quantity < 0 {
		v.add("quantity", "must be a non-negative number")
	}
	if !dto.Unit.Valid() {
		v.add("unit", "unknown unit %q", dto.Unit)
	}
	if !dto.Category.Valid() {
		v.add("category", "unknown category %q", dto.Category)
	}
	if dto.MinimumStock != nil && (!finite(*dto.MinimumStock) || *dto.MinimumStock < 0) {
		v.add("minimumStock", "must be a non-negative number")
	}

	expiry, err := parseDate(dto.ExpiryDate)
	if err != nil {
		v.add("expiryDate", "%v", err)
	}

	if err := v.err(); err != nil {
		return nil, err
	}
	return &models.Ingredient{
		Name:         name,
		Quantity:     dto.Quantity,
		Unit:         dto.Unit,
		Category:     dto.Category,
		ExpiryDate:   expiry,
		MinimumStock: dto.MinimumStock,
		Notes:        blankToNil(dto.Notes),
	}, nil
}

func recipeFromDTO(dto RecipeDTO) (*models.Recipe, error) {
	v := &ValidationError{}

	name := strings.TrimSpace(dto.Name)
	if utf8.RuneCountInString(name) < minNameLength {
		v.add("name", "must be at least %d characters", minNameLength)
	}
	if dto.CookTime <= 0 {
		v.add("cookTime", "must be a positive number of minutes")
	}
	instructions := strings.TrimSpace(dto.Instructions)
	if utf8.RuneCountInString(instructions) < minInstructionsLength {
		v.add("instructions", "must be at least %d characters", minInstructionsLength)
	}
	image := blankToNil(dto.Image)
	if image != nil && !isWebURL(*image) {
		v.add("image", "must be an http or https URL")
	}

	if err := v.err(); err != nil {
		return nil, err
	}
	return &models.Recipe{
		Name:         name,
		CookTime:     dto.CookTime,
		Instructions: instructions,
		Image:        image,
		Notes:        blankToNil(dto.Notes),
	}, nil
}

// requirementsFromDTO checks the shape of each requirement. Whether the
// referenced ingredients exist is checked against the store separately.
func requirementsFromDTO(items []RequirementDTO) ([]models.RecipeIngredient, error) {
	v := &ValidationError{}
	seen := make(map[uint]bool, len(items))
	out := make([]models.RecipeIngredient, 0, len(items))

	for i, it := range items {
		field := fmt.Sprintf("ingredients[%d]", i)
		if it.IngredientID == 0 {
			v.add(field+".ingredientId", "is required")
		} else if seen[it.IngredientID] {
			v.add(field+".ingredientId", "ingredient %d is listed more than once", it.IngredientID)
		}
		seen[it.IngredientID] = true

		if !finite(it.Quantity) || it.Quantity <= 0 {
			v.add(field+".quantity", "must be greater than zero")
		}
		if !it.Unit.Valid() {
			v.add(field+".unit", "unknown unit %q", it.Unit)
		}
		out = append(out, models.RecipeIngredient{
			IngredientID: it.IngredientID,
			Quantity:     it.Quantity,
			Unit:         it.Unit,
		})
	}

	if err := v.err(); err != nil {
		return nil, err
	}
	return out, nil
}

// parseDate accepts a full RFC 3339 timestamp or a bare calendar date,
// which is read as midnight UTC. Nil or blank means no date.
func parseDate(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	raw := strings.TrimSpace(*s)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, fmt.Errorf("expected YYYY-MM-DD or RFC 3339, got %q", raw)
	}
	return &t, nil
}

func isWebURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
