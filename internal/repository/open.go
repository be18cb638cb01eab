package repository

import (
	"go.uber.org/zap"

	"github.com/goelshashank/Kitchen-Inventory2/internal/config"
	"github.com/goelshashank/Kitchen-Inventory2/internal/database"
	"github.com/goelshashank/Kitchen-Inventory2/pkg/utils"
)

// Stores - the two stores every front-end needs
type Stores struct {
	Ingredients IngredientRepository
	Recipes     RecipeRepository
}

// Open connects the storage backend named in cfg. Postgres is migrated
// before it is returned.
func Open(cfg *config.Config) (*Stores, error) {
	if cfg.Storage == config.StorageMemory {
		utils.Log.Warn("Using in-memory storage; data is lost on restart")
		mem := NewMemoryStore()
		return &Stores{Ingredients: mem.Ingredients(), Recipes: mem.Recipes()}, nil
	}

	db, err := database.NewPostgres(cfg.DatabaseURL, cfg.DBLogLevel)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}
	utils.Log.Info("Storage ready", zap.String("storage", cfg.Storage))
	return &Stores{Ingredients: NewIngredientRepo(db), Recipes: NewRecipeRepo(db)}, nil
}
