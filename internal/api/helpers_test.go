package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/goelshashank/Kitchen-Inventory2/internal/media"
	"github.com/goelshashank/Kitchen-Inventory2/internal/realtime"
	"github.com/goelshashank/Kitchen-Inventory2/internal/repository"
	"github.com/goelshashank/Kitchen-Inventory2/internal/service"
)

var fixedNow = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeUploader struct {
	mu   sync.Mutex
	keys []string
	err  error
}

func (f *fakeUploader) Upload(_ context.Context, key string, _ *media.Image) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	f.keys = append(f.keys, key)
	return "https://cdn.test/" + key, nil
}

type sentMail struct {
	to, subject, body string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (f *fakeMailer) Send(_ context.Context, to, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

type testAPI struct {
	router   *gin.Engine
	hub      *realtime.Hub
	uploader *fakeUploader
	mailer   *fakeMailer
}

type option func(*Deps, *AuthConfig)

func withoutIntegrations() option {
	return func(d *Deps, _ *AuthConfig) {
		d.Uploader = nil
		d.Mailer = nil
		d.Hub = nil
	}
}

func withAuth(apiKey, secret string) option {
	return func(_ *Deps, a *AuthConfig) {
		a.APIKey = apiKey
		a.JWTSecret = secret
		a.TokenTTL = time.Hour
	}
}

func newTestAPI(t *testing.T, opts ...option) *testAPI {
	t.Helper()
	store := repository.NewMemoryStore()
	now := func() time.Time { return fixedNow }

	ta := &testAPI{
		hub:      realtime.NewHub(),
		uploader: &fakeUploader{},
		mailer:   &fakeMailer{},
	}
	deps := Deps{
		Ingredients: service.NewIngredientService(store.Ingredients()),
		Recipes:     service.NewRecipeService(store.Recipes(), store.Ingredients()),
		Dashboard:   service.NewDashboardService(store.Ingredients(), store.Recipes(), now),
		Hub:         ta.hub,
		Uploader:    ta.uploader,
		Mailer:      ta.mailer,
		Now:         now,
	}
	var auth AuthConfig
	for _, opt := range opts {
		opt(&deps, &auth)
	}

	ta.router = NewRouter(NewHandler(deps), auth)
	return ta
}

func (ta *testAPI) do(t *testing.T, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	ta.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

type idOnly struct {
	ID uint `json:"id"`
}

func (ta *testAPI) createIngredient(t *testing.T, body map[string]any) uint {
	t.Helper()
	w := ta.do(t, http.MethodPost, "/api/ingredients", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[idOnly](t, w).ID
}

func (ta *testAPI) createRecipe(t *testing.T, body map[string]any) uint {
	t.Helper()
	w := ta.do(t, http.MethodPost, "/api/recipes", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[idOnly](t, w).ID
}

func recipeBody(name string, ingredients ...map[string]any) map[string]any {
	body := map[string]any{
		"name":         name,
		"cookTime":     20,
		"instructions": "Combine everything and cook gently.",
	}
	if ingredients != nil {
		body["ingredients"] = ingredients
	}
	return body
}

func requirement(id uint, qty float64, unit string) map[string]any {
	return map[string]any{"ingredientId": id, "quantity": qty, "unit": unit}
}
