package bot

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/goelshashank/Kitchen-Inventory2/internal/models"
	"github.com/goelshashank/Kitchen-Inventory2/internal/service"
)

const (
	stepName = iota
	stepQuantity
	stepUnit
	stepCategory
)

func newAddIngredientFlow() *FlowState {
	return &FlowState{Action: actionAddIngredient, Step: stepName, TempData: map[string]string{}}
}

const addIngredientPrompt = "➕ New ingredient. What is it called? (/cancel to stop)"

// advanceAddIngredient consumes one answer. It returns the next prompt, or
// the finished DTO once every step is answered. Bad answers repeat the step.
func advanceAddIngredient(state *FlowState, text string) (string, *service.IngredientDTO) {
	text = strings.TrimSpace(text)

	switch state.Step {
	case stepName:
		if utf8.RuneCountInString(text) < 2 {
			return "❌ The name needs at least 2 characters. Try again:", nil
		}
		state.TempData["name"] = text
		state.Step = stepQuantity
		return fmt.Sprintf("How much %s is there? (a number)", esc(text)), nil

	case stepQuantity:
		q, err := strconv.ParseFloat(strings.ReplaceAll(text, ",", "."), 64)
		if err != nil || q < 0 {
			return "❌ Send a non-negative number, e.g. 250 or 1.5:", nil
		}
		state.TempData["quantity"] = strconv.FormatFloat(q, 'f', -1, 64)
		state.Step = stepUnit
		return "Which unit? " + unitChoices(), nil

	case stepUnit:
		u := models.Unit(strings.ToLower(text))
		if !u.Valid() {
			return "❌ Unknown unit. Pick one of: " + unitChoices(), nil
		}
		state.TempData["unit"] = string(u)
		state.Step = stepCategory
		return "Which category? " + categoryChoices(), nil

	case stepCategory:
		c := models.Category(strings.ToLower(strings.ReplaceAll(text, " ", "_")))
		if !c.Valid() {
			return "❌ Unknown category. Pick one of: " + categoryChoices(), nil
		}
		q, _ := strconv.ParseFloat(state.TempData["quantity"], 64)
		return "", &service.IngredientDTO{
			Name:     state.TempData["name"],
			Quantity: q,
			Unit:     models.Unit(state.TempData["unit"]),
			Category: c,
		}
	}
	return "❌ Something went wrong, start again with /add", nil
}

// parseRestockArgs reads "<id> <quantity>".
func parseRestockArgs(args string) (uint, float64, error) {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("usage: /restock <id> <quantity>")
	}
	id, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil || id == 0 {
		return 0, 0, fmt.Errorf("invalid ingredient id %q", fields[0])
	}
	q, err := strconv.ParseFloat(strings.ReplaceAll(fields[1], ",", "."), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid quantity %q", fields[1])
	}
	return uint(id), q, nil
}
