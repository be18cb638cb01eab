package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/goelshashank/Kitchen-Inventory2/internal/mailer"
	"github.com/goelshashank/Kitchen-Inventory2/internal/media"
	"github.com/goelshashank/Kitchen-Inventory2/internal/realtime"
	"github.com/goelshashank/Kitchen-Inventory2/internal/service"
	"github.com/goelshashank/Kitchen-Inventory2/pkg/utils"
)

// Deps - everything the handlers need. Hub, Uploader and Mailer are
// optional; the routes that need a missing one answer 503.
type Deps struct {
	Ingredients *service.IngredientService
	Recipes     *service.RecipeService
	Dashboard   *service.DashboardService
	Hub         *realtime.Hub
	Uploader    media.Uploader
	Mailer      mailer.Sender
	Now         func() time.Time
}

type Handler struct {
	ingredients *service.IngredientService
	recipes     *service.RecipeService
	dashboard   *service.DashboardService
	hub         *realtime.Hub
	uploader    media.Uploader
	mailer      mailer.Sender
	now         func() time.Time
}

func NewHandler(d Deps) *Handler {
	now := d.Now
	if now == nil {
		now = time.Now
	}
	return &Handler{
		ingredients: d.Ingredients,
		recipes:     d.Recipes,
		dashboard:   d.Dashboard,
		hub:         d.Hub,
		uploader:    d.Uploader,
		mailer:      d.Mailer,
		now:         now,
	}
}

// Health - liveness check
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondError maps service errors onto status codes. failed is the message
// used for unexpected errors; the error itself only goes to the log.
func respondError(c *gin.Context, err error, notFound, failed string) {
	var invalid *service.ValidationError
	switch {
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input", "errors": invalid.Fields})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": notFound})
	default:
		utils.Log.Error(failed, zap.Error(err), zap.String(ctxRequestID, requestID(c)))
		c.JSON(http.StatusInternalServerError, gin.H{"message": failed})
	}
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": message})
}

// pathID reads the :id parameter. It writes the 400 itself on failure.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		badRequest(c, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

// notifyChanged pushes a freshly computed dashboard to websocket clients.
func (h *Handler) notifyChanged() {
	if h.hub == nil || h.hub.Count() == 0 {
		return
	}
	summary, err := h.dashboard.Dashboard()
	if err != nil {
		utils.Log.Warn("Skipping change broadcast", zap.Error(err))
		return
	}
	h.hub.Broadcast(realtime.Event{Kind: realtime.KindInventoryChanged, Dashboard: summary})
}

// Ingredients

func (h *Handler) ListIngredients(c *gin.Context) {
	ingredients, err := h.ingredients.ListIngredients()
	if err != nil {
		respondError(c, err, "", "Failed to retrieve ingredients")
		return
	}
	c.JSON(http.StatusOK, ingredients)
}

func (h *Handler) GetIngredient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ingredient, err := h.ingredients.GetIngredientByID(id)
	if err != nil {
		respondError(c, err, "Ingredient not found", "Failed to retrieve ingredient")
		return
	}
	c.JSON(http.StatusOK, ingredient)
}

func (h *Handler) CreateIngredient(c *gin.Context) {
	var input service.IngredientDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Invalid JSON body")
		return
	}
	ingredient, err := h.ingredients.CreateIngredient(input)
	if err != nil {
		respondError(c, err, "", "Failed to create ingredient")
		return
	}
	h.notifyChanged()
	c.JSON(http.StatusCreated, ingredient)
}

func (h *Handler) UpdateIngredient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input service.IngredientDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Invalid JSON body")
		return
	}
	ingredient, err := h.ingredients.UpdateIngredient(id, input)
	if err != nil {
		respondError(c, err, "Ingredient not found", "Failed to update ingredient")
		return
	}
	h.notifyChanged()
	c.JSON(http.StatusOK, ingredient)
}

func (h *Handler) DeleteIngredient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.ingredients.DeleteIngredient(id); err != nil {
		respondError(c, err, "Ingredient not found", "Failed to delete ingredient")
		return
	}
	h.notifyChanged()
	c.Status(http.StatusNoContent)
}

// Recipes

func (h *Handler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipes.ListRecipesWithStatus()
	if err != nil {
		respondError(c, err, "", "Failed to retrieve recipes")
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func (h *Handler) GetRecipe(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	recipe, err := h.recipes.GetRecipe(id)
	if err != nil {
		respondError(c, err, "Recipe not found", "Failed to retrieve recipe")
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *Handler) CreateRecipe(c *gin.Context) {
	var input service.RecipeDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Invalid JSON body")
		return
	}
	recipe, err := h.recipes.CreateRecipe(input)
	if err != nil {
		respondError(c, err, "", "Failed to create recipe")
		return
	}
	h.notifyChanged()
	c.JSON(http.StatusCreated, recipe)
}

func (h *Handler) UpdateRecipe(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input service.RecipeDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Invalid JSON body")
		return
	}
	recipe, err := h.recipes.UpdateRecipe(id, input)
	if err != nil {
		respondError(c, err, "Recipe not found", "Failed to update recipe")
		return
	}
	h.notifyChanged()
	c.JSON(http.StatusOK, recipe)
}

func (h *Handler) DeleteRecipe(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.recipes.DeleteRecipe(id); err != nil {
		respondError(c, err, "Recipe not found", "Failed to delete recipe")
		return
	}
	h.notifyChanged()
	c.Status(http.StatusNoContent)
}

// bindRequirements reads {"ingredients": [...]}. It writes the 400 itself
// when the list is missing or is not an array.
func bindRequirements(c *gin.Context) ([]service.RequirementDTO, bool) {
	var input service.RequirementsDTO
	if err := c.ShouldBindJSON(&input); err != nil || input.Ingredients == nil {
		badRequest(c, "Ingredients must be an array")
		return nil, false
	}
	return input.Ingredients, true
}

func (h *Handler) AddRecipeIngredients(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	items, ok := bindRequirements(c)
	if !ok {
		return
	}
	added, err := h.recipes.AddIngredients(id, items)
	if err != nil {
		respondError(c, err, "Recipe not found", "Failed to add ingredients to recipe")
		return
	}
	h.notifyChanged()
	c.JSON(http.StatusCreated, added)
}

func (h *Handler) ReplaceRecipeIngredients(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	items, ok := bindRequirements(c)
	if !ok {
		return
	}
	replaced, err := h.recipes.ReplaceIngredients(id, items)
	if err != nil {
		respondError(c, err, "Recipe not found", "Failed to update recipe ingredients")
		return
	}
	h.notifyChanged()
	c.JSON(http.StatusOK, replaced)
}

// Derived views

func (h *Handler) Dashboard(c *gin.Context) {
	summary, err := h.dashboard.Dashboard()
	if err != nil {
		respondError(c, err, "", "Failed to retrieve dashboard data")
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *Handler) Reports(c *gin.Context) {
	report, err := h.dashboard.Reports()
	if err != nil {
		respondError(c, err, "", "Failed to retrieve reports data")
		return
	}
	c.JSON(http.StatusOK, report)
}
