package api

import (
	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with every /api route.
func NewRouter(h *Handler, auth AuthConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), AccessLog())
	SetupRoutes(r, h, auth)
	return r
}

// SetupRoutes registers the API. Tokens follow the handler's clock unless
// auth carries its own.
func SetupRoutes(r *gin.Engine, h *Handler, auth AuthConfig) {
	if auth.Now == nil {
		auth.Now = h.now
	}
	api := r.Group("/api")
	api.GET("/health", h.Health)
	api.POST("/auth/token", h.IssueTokenHandler(auth))

	protected := api.Group("")
	protected.Use(AuthMiddleware(auth))

	// Ingredients
	protected.GET("/ingredients", h.ListIngredients)
	protected.GET("/ingredients/:id", h.GetIngredient)
	protected.POST("/ingredients", h.CreateIngredient)
	protected.PATCH("/ingredients/:id", h.UpdateIngredient)
	protected.DELETE("/ingredients/:id", h.DeleteIngredient)

	// Recipes
	protected.GET("/recipes", h.ListRecipes)
	protected.GET("/recipes/:id", h.GetRecipe)
	protected.POST("/recipes", h.CreateRecipe)
	protected.PATCH("/recipes/:id", h.UpdateRecipe)
	protected.DELETE("/recipes/:id", h.DeleteRecipe)
	protected.POST("/recipes/:id/ingredients", h.AddRecipeIngredients)
	protected.PUT("/recipes/:id/ingredients", h.ReplaceRecipeIngredients)
	protected.POST("/recipes/:id/image", h.UploadRecipeImage)

	// Dashboard and reports
	protected.GET("/dashboard", h.Dashboard)
	protected.GET("/reports", h.Reports)
	protected.POST("/reports/email", h.EmailReport)

	protected.GET("/ws", h.ChangeFeed)
}
