package repository

import (
	"github.com/goelshashank/Kitchen-Inventory2/internal/models"
	"gorm.io/gorm"
)

// IngredientRepository - ingredient store
type IngredientRepository interface {
	Create(ingredient *models.Ingredient) (*models.Ingredient, error)
	FindAll() ([]*models.Ingredient, error)
	FindByID(id uint) (*models.Ingredient, error)
	// Update replaces every field of an existing ingredient.
	Update(ingredient *models.Ingredient) error
	// Delete removes the ingredient and, through the foreign key, every recipe requirement on it.
	Delete(id uint) error
	Count() (int64, error)
}

type ingredientRepo struct {
	db *gorm.DB
}

func NewIngredientRepo(db *gorm.DB) IngredientRepository {
	return &ingredientRepo{db: db}
}

func (r *ingredientRepo) Create(ingredient *models.Ingredient) (*models.Ingredient, error) {
	err := r.db.Create(ingredient).Error
	return ingredient, err
}

func (r *ingredientRepo) FindAll() ([]*models.Ingredient, error) {
	var ingredients []*models.Ingredient
	err := r.db.Order("id").Find(&ingredients).Error
	return ingredients, err
}

func (r *ingredientRepo) FindByID(id uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := r.db.First(&ingredient, id).Error; err != nil {
		return nil, translate(err)
	}
	return &ingredient, nil
}

func (r *ingredientRepo) Update(ingredient *models.Ingredient) error {
	res := r.db.Model(&models.Ingredient{}).
		Where("id = ?", ingredient.ID).
		Select("*").Omit("id").
		Updates(ingredient)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ingredientRepo) Delete(id uint) error {
	res := r.db.Delete(&models.Ingredient{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ingredientRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Ingredient{}).Count(&count).Error
	return count, err
}
