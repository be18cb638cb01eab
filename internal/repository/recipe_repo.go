package repository

import (
	"github.com/goelshashank/Kitchen-Inventory2/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecipeRepository - recipe store together with the recipe_ingredients links
type RecipeRepository interface {
	// Create inserts the recipe and any requirements set on it.
	Create(recipe *models.Recipe) (*models.Recipe, error)
	// FindAll returns every recipe with its requirements and their ingredients.
	FindAll() ([]*models.Recipe, error)
	FindByID(id uint) (*models.Recipe, error)
	// Update replaces the recipe's own fields. Requirements are left alone.
	Update(recipe *models.Recipe) error
	Delete(id uint) error
	Count() (int64, error)

	// AddIngredients appends requirements. An ingredient already on the
	// recipe gets its quantity and unit overwritten.
	AddIngredients(recipeID uint, items []models.RecipeIngredient) ([]models.RecipeIngredient, error)
	// ReplaceIngredients deletes every requirement of the recipe and inserts items.
	ReplaceIngredients(recipeID uint, items []models.RecipeIngredient) ([]models.RecipeIngredient, error)
}

type recipeRepo struct {
	db *gorm.DB
}

func NewRecipeRepo(db *gorm.DB) RecipeRepository {
	return &recipeRepo{db: db}
}

func (r *recipeRepo) withIngredients() *gorm.DB {
	return r.db.
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("ingredient_id") }).
		Preload("Ingredients.Ingredient")
}

func (r *recipeRepo) Create(recipe *models.Recipe) (*models.Recipe, error) {
	items := recipe.Ingredients
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(recipe).Error; err != nil {
			return err
		}
		_, err := insertIngredients(tx, recipe.ID, items, false)
		return err
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(recipe.ID)
}

func (r *recipeRepo) FindAll() ([]*models.Recipe, error) {
	var recipes []*models.Recipe
	if err := r.withIngredients().Order("id").Find(&recipes).Error; err != nil {
		return nil, err
	}
	for _, rec := range recipes {
		normalize(rec)
	}
	return recipes, nil
}

func (r *recipeRepo) FindByID(id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := r.withIngredients().First(&recipe, id).Error; err != nil {
		return nil, translate(err)
	}
	normalize(&recipe)
	return &recipe, nil
}

func (r *recipeRepo) Update(recipe *models.Recipe) error {
	res := r.db.Model(&models.Recipe{}).
		Where("id = ?", recipe.ID).
		Select("name", "cook_time", "instructions", "image", "notes").
		Updates(recipe)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the recipe and its requirement rows. The rows are deleted
// explicitly as well so tables created without the cascading key still work.
func (r *recipeRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Recipe{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *recipeRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Recipe{}).Count(&count).Error
	return count, err
}

func (r *recipeRepo) AddIngredients(recipeID uint, items []models.RecipeIngredient) ([]models.RecipeIngredient, error) {
	var added []models.RecipeIngredient
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureRecipe(tx, recipeID); err != nil {
			return err
		}
		var err error
		added, err = insertIngredients(tx, recipeID, items, true)
		return err
	})
	return added, err
}

func (r *recipeRepo) ReplaceIngredients(recipeID uint, items []models.RecipeIngredient) ([]models.RecipeIngredient, error) {
	var replaced []models.RecipeIngredient
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureRecipe(tx, recipeID); err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		var err error
		replaced, err = insertIngredients(tx, recipeID, items, false)
		return err
	})
	return replaced, err
}

func ensureRecipe(tx *gorm.DB, recipeID uint) error {
	var count int64
	if err := tx.Model(&models.Recipe{}).Where("id = ?", recipeID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

func insertIngredients(tx *gorm.DB, recipeID uint, items []models.RecipeIngredient, upsert bool) ([]models.RecipeIngredient, error) {
	rows := make([]models.RecipeIngredient, 0, len(items))
	for _, it := range items {
		rows = append(rows, models.RecipeIngredient{
			RecipeID:     recipeID,
			IngredientID: it.IngredientID,
			Quantity:     it.Quantity,
			Unit:         it.Unit,
		})
	}
	if len(rows) == 0 {
		return rows, nil
	}

	q := tx.Omit(clause.Associations)
	if upsert {
		q = q.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "recipe_id"}, {Name: "ingredient_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity", "unit"}),
		})
	}
	if err := q.Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func normalize(recipe *models.Recipe) {
	if recipe.Ingredients == nil {
		recipe.Ingredients = []models.RecipeIngredient{}
	}
}
