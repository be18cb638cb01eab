package repository

import (
	"cmp"
	"slices"
	"sync"

	"github.com/goelshashank/Kitchen-Inventory2/internal/models"
)

// MemoryStore keeps ingredients, recipes and their links in process memory.
// It follows the same rules as the Postgres schema: ids are assigned on
// insert, deleting an ingredient or a recipe drops its links, and a recipe
// lists an ingredient at most once.
//
// Each store is independent; tests build their own with NewMemoryStore.
type MemoryStore struct {
	mu          sync.RWMutex
	ingredients map[uint]models.Ingredient
	recipes     map[uint]models.Recipe
	links       []models.RecipeIngredient
	lastIngID   uint
	lastRecID   uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		ingredients: make(map[uint]models.Ingredient),
		recipes:     make(map[uint]models.Recipe),
	}
}

// Ingredients returns the store's ingredient repository view.
func (s *MemoryStore) Ingredients() IngredientRepository {
	return &memIngredientRepo{s: s}
}

// Recipes returns the store's recipe repository view.
func (s *MemoryStore) Recipes() RecipeRepository {
	return &memRecipeRepo{s: s}
}

type memIngredientRepo struct {
	s *MemoryStore
}

func (r *memIngredientRepo) Create(ingredient *models.Ingredient) (*models.Ingredient, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.lastIngID++
	ingredient.ID = r.s.lastIngID
	r.s.ingredients[ingredient.ID] = cloneIngredient(*ingredient)
	return ingredient, nil
}

func (r *memIngredientRepo) FindAll() ([]*models.Ingredient, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*models.Ingredient, 0, len(r.s.ingredients))
	for _, id := range sortedKeys(r.s.ingredients) {
		ing := cloneIngredient(r.s.ingredients[id])
		out = append(out, &ing)
	}
	return out, nil
}

func (r *memIngredientRepo) FindByID(id uint) (*models.Ingredient, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	ing, ok := r.s.ingredients[id]
	if !ok {
		return nil, ErrNotFound
	}
	ing = cloneIngredient(ing)
	return &ing, nil
}

func (r *memIngredientRepo) Update(ingredient *models.Ingredient) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.ingredients[ingredient.ID]; !ok {
		return ErrNotFound
	}
	r.s.ingredients[ingredient.ID] = cloneIngredient(*ingredient)
	return nil
}

func (r *memIngredientRepo) Delete(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.ingredients[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.ingredients, id)
	r.s.links = slices.DeleteFunc(r.s.links, func(l models.RecipeIngredient) bool {
		return l.IngredientID == id
	})
	return nil
}

func (r *memIngredientRepo) Count() (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.ingredients)), nil
}

type memRecipeRepo struct {
	s *MemoryStore
}

func (r *memRecipeRepo) Create(recipe *models.Recipe) (*models.Recipe, error) {
	r.s.mu.Lock()
	r.s.lastRecID++
	recipe.ID = r.s.lastRecID
	stored := cloneRecipe(*recipe)
	r.s.recipes[recipe.ID] = stored
	r.s.upsertLinks(recipe.ID, recipe.Ingredients)
	r.s.mu.Unlock()

	return r.FindByID(recipe.ID)
}

func (r *memRecipeRepo) FindAll() ([]*models.Recipe, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*models.Recipe, 0, len(r.s.recipes))
	for _, id := range sortedKeys(r.s.recipes) {
		out = append(out, r.s.resolve(r.s.recipes[id]))
	}
	return out, nil
}

func (r *memRecipeRepo) FindByID(id uint) (*models.Recipe, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rec, ok := r.s.recipes[id]
	if !ok {
		return nil, ErrNotFound
	}
	return r.s.resolve(rec), nil
}

func (r *memRecipeRepo) Update(recipe *models.Recipe) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.recipes[recipe.ID]; !ok {
		return ErrNotFound
	}
	stored := cloneRecipe(*recipe)
	r.s.recipes[recipe.ID] = stored
	return nil
}

func (r *memRecipeRepo) Delete(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.recipes[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.recipes, id)
	r.s.dropLinks(id)
	return nil
}

func (r *memRecipeRepo) Count() (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.recipes)), nil
}

func (r *memRecipeRepo) AddIngredients(recipeID uint, items []models.RecipeIngredient) ([]models.RecipeIngredient, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.recipes[recipeID]; !ok {
		return nil, ErrNotFound
	}
	return r.s.upsertLinks(recipeID, items), nil
}

func (r *memRecipeRepo) ReplaceIngredients(recipeID uint, items []models.RecipeIngredient) ([]models.RecipeIngredient, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.recipes[recipeID]; !ok {
		return nil, ErrNotFound
	}
	r.s.dropLinks(recipeID)
	return r.s.upsertLinks(recipeID, items), nil
}

// upsertLinks must be called with mu held.
func (s *MemoryStore) upsertLinks(recipeID uint, items []models.RecipeIngredient) []models.RecipeIngredient {
	written := make([]models.RecipeIngredient, 0, len(items))
	for _, it := range items {
		link := models.RecipeIngredient{
			RecipeID:     recipeID,
			IngredientID: it.IngredientID,
			Quantity:     it.Quantity,
			Unit:         it.Unit,
		}
		i := slices.IndexFunc(s.links, func(l models.RecipeIngredient) bool {
			return l.RecipeID == recipeID && l.IngredientID == it.IngredientID
		})
		if i >= 0 {
			s.links[i] = link
		} else {
			s.links = append(s.links, link)
		}
		written = append(written, link)
	}
	return written
}

func (s *MemoryStore) dropLinks(recipeID uint) {
	s.links = slices.DeleteFunc(s.links, func(l models.RecipeIngredient) bool {
		return l.RecipeID == recipeID
	})
}

// resolve attaches the recipe's links and their ingredients, ordered by ingredient id.
func (s *MemoryStore) resolve(rec models.Recipe) *models.Recipe {
	rec = cloneRecipe(rec)
	rec.Ingredients = []models.RecipeIngredient{}
	for _, l := range s.links {
		if l.RecipeID != rec.ID {
			continue
		}
		if ing, ok := s.ingredients[l.IngredientID]; ok {
			ing = cloneIngredient(ing)
			l.Ingredient = &ing
		}
		rec.Ingredients = append(rec.Ingredients, l)
	}
	slices.SortFunc(rec.Ingredients, func(a, b models.RecipeIngredient) int {
		return cmp.Compare(a.IngredientID, b.IngredientID)
	})
	return &rec
}

func cloneIngredient(ing models.Ingredient) models.Ingredient {
	if ing.ExpiryDate != nil {
		v := *ing.ExpiryDate
		ing.ExpiryDate = &v
	}
	if ing.MinimumStock != nil {
		v := *ing.MinimumStock
		ing.MinimumStock = &v
	}
	if ing.Notes != nil {
		v := *ing.Notes
		ing.Notes = &v
	}
	return ing
}

// cloneRecipe copies the recipe's own fields; requirements are kept in links.
func cloneRecipe(rec models.Recipe) models.Recipe {
	if rec.Image != nil {
		v := *rec.Image
		rec.Image = &v
	}
	if rec.Notes != nil {
		v := *rec.Notes
		rec.Notes = &v
	}
	rec.Ingredients = nil
	return rec
}

func sortedKeys[V any](m map[uint]V) []uint {
	keys := make([]uint, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
