package domain

import "errors"

var (
	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"

	ErrRecipeNotFound  = errors.New("recipe not found")
	ErrInvalidRecipeID = errors.New("recipe id must be an integer")
)

type (
	IngredientRequest struct {
		Name string `json:"name" validate:"required,max=200"`
	}

	// Ingredients carries dive instead of required so that an empty list is
	// accepted; a missing field is rejected by the handler's nil check.
	CreateRecipeRequest struct {
		Name            string              `json:"name" validate:"required,max=200"`
		CookTimeMinutes int                 `json:"cook_time_minutes" validate:"required,min=1,max=1440"`
		Description     string              `json:"description" validate:"required"`
		Ingredients     []IngredientRequest `json:"ingredients" validate:"dive"`
	}

	RecipeListItem struct {
		ID              uint   `json:"id"`
		Name            string `json:"name"`
		Views           int    `json:"views"`
		CookTimeMinutes int    `json:"cook_time_minutes"`
	}

	RecipeDetail struct {
		ID              uint     `json:"id"`
		Name            string   `json:"name"`
		CookTimeMinutes int      `json:"cook_time_minutes"`
		Views           int      `json:"views"`
		Ingredients     []string `json:"ingredients"`
		Description     string   `json:"description"`
	}
)
