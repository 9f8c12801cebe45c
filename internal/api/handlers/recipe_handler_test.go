package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"recipe-book-api/domain"
	"recipe-book-api/entities"
	"recipe-book-api/internal/api/handlers"
	"recipe-book-api/internal/api/routes"
	"recipe-book-api/internal/middleware"
	"recipe-book-api/pkg/recipe"
)

// newTestApp wires the full handler stack against an in-memory database,
// without the file logger and rate limiter of the production app.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	if err := db.AutoMigrate(&entities.Recipe{}, &entities.Ingredient{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	app := fiber.New()
	recipeRepository := recipe.NewRecipeRepository(db)
	recipeService := recipe.NewRecipeService(recipeRepository)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator.New())

	routesConfig := routes.Config{
		App:           app,
		RecipeHandler: recipeHandler,
		Middleware:    middleware.NewMiddleware(),
	}
	routesConfig.Setup()
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, []byte) {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, raw
}

func createOkroshka(t *testing.T, app *fiber.App) domain.RecipeDetail {
	t.Helper()

	payload := `{
		"name": "Okroshka",
		"cook_time_minutes": 25,
		"description": "Chop. Mix.",
		"ingredients": [{"name": "Kvass"}, {"name": "Cucumber"}]
	}`
	resp, raw := doJSON(t, app, fiber.MethodPost, "/recipes", payload)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created domain.RecipeDetail
	require.NoError(t, json.Unmarshal(raw, &created))
	return created
}

func TestCreateListDetailFlow(t *testing.T) {
	app := newTestApp(t)

	created := createOkroshka(t, app)
	assert.NotZero(t, created.ID)
	assert.Equal(t, 0, created.Views)
	assert.Equal(t, []string{"Kvass", "Cucumber"}, created.Ingredients)

	// First detail fetch increments views to 1, second to 2.
	for want := 1; want <= 2; want++ {
		resp, raw := doJSON(t, app, fiber.MethodGet, "/recipes/"+strconv.Itoa(int(created.ID)), "")
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var detail domain.RecipeDetail
		require.NoError(t, json.Unmarshal(raw, &detail))
		assert.Equal(t, want, detail.Views)
		assert.Equal(t, []string{"Kvass", "Cucumber"}, detail.Ingredients)
		assert.Equal(t, "Chop. Mix.", detail.Description)
	}

	resp, raw := doJSON(t, app, fiber.MethodGet, "/recipes", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var items []domain.RecipeListItem
	require.NoError(t, json.Unmarshal(raw, &items))
	require.Len(t, items, 1)
	assert.Equal(t, created.ID, items[0].ID)
	assert.Equal(t, 2, items[0].Views)
}

func TestListSortsByCookTimeWhenViewsEqual(t *testing.T) {
	app := newTestApp(t)

	for _, minutes := range []int{10, 60, 30} {
		payload := `{
			"name": "recipe-` + strconv.Itoa(minutes) + `",
			"cook_time_minutes": ` + strconv.Itoa(minutes) + `,
			"description": "d",
			"ingredients": []
		}`
		resp, _ := doJSON(t, app, fiber.MethodPost, "/recipes", payload)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	resp, raw := doJSON(t, app, fiber.MethodGet, "/recipes", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var items []domain.RecipeListItem
	require.NoError(t, json.Unmarshal(raw, &items))
	require.Len(t, items, 3)
	assert.Equal(t, 10, items[0].CookTimeMinutes)
	assert.Equal(t, 30, items[1].CookTimeMinutes)
	assert.Equal(t, 60, items[2].CookTimeMinutes)
}

func TestDetailUnknownIDReturns404(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, fiber.MethodGet, "/recipes/999999", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDetailNegativeIDReturns404(t *testing.T) {
	app := newTestApp(t)

	// Negative ids are well-formed integers that match no row.
	resp, _ := doJSON(t, app, fiber.MethodGet, "/recipes/-1", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDetailNonIntegerIDReturns422(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, fiber.MethodGet, "/recipes/abc", "")
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestCreateValidationFailures(t *testing.T) {
	app := newTestApp(t)

	longName := strings.Repeat("x", 201)
	cases := []struct {
		name    string
		payload string
	}{
		{"empty name", `{"name": "", "cook_time_minutes": 10, "description": "d", "ingredients": []}`},
		{"name too long", `{"name": "` + longName + `", "cook_time_minutes": 10, "description": "d", "ingredients": []}`},
		{"zero cook time", `{"name": "r", "cook_time_minutes": 0, "description": "d", "ingredients": []}`},
		{"cook time too large", `{"name": "r", "cook_time_minutes": 1441, "description": "d", "ingredients": []}`},
		{"empty description", `{"name": "r", "cook_time_minutes": 10, "description": "", "ingredients": []}`},
		{"missing ingredients", `{"name": "r", "cook_time_minutes": 10, "description": "d"}`},
		{"empty ingredient name", `{"name": "r", "cook_time_minutes": 10, "description": "d", "ingredients": [{"name": ""}]}`},
		{"malformed body", `{"name": `},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, _ := doJSON(t, app, fiber.MethodPost, "/recipes", tc.payload)
			assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
		})
	}

	// Nothing was persisted by any rejected request.
	resp, raw := doJSON(t, app, fiber.MethodGet, "/recipes", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var items []domain.RecipeListItem
	require.NoError(t, json.Unmarshal(raw, &items))
	assert.Empty(t, items)
}

func TestCreateAcceptsEmptyIngredientList(t *testing.T) {
	app := newTestApp(t)

	payload := `{"name": "Toast", "cook_time_minutes": 5, "description": "Toast it.", "ingredients": []}`
	resp, raw := doJSON(t, app, fiber.MethodPost, "/recipes", payload)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created domain.RecipeDetail
	require.NoError(t, json.Unmarshal(raw, &created))
	assert.NotNil(t, created.Ingredients)
	assert.Empty(t, created.Ingredients)
}

func TestCreateBoundaryCookTimes(t *testing.T) {
	app := newTestApp(t)

	for _, minutes := range []int{1, 1440} {
		payload := `{"name": "r", "cook_time_minutes": ` + strconv.Itoa(minutes) + `, "description": "d", "ingredients": []}`
		resp, _ := doJSON(t, app, fiber.MethodPost, "/recipes", payload)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}
}

func TestPing(t *testing.T) {
	app := newTestApp(t)

	resp, raw := doJSON(t, app, fiber.MethodGet, "/ping", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, "pong", body.Message)
}
