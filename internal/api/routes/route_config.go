package routes

import (
	"github.com/gofiber/fiber/v2"

	"recipe-book-api/internal/api/handlers"
	"recipe-book-api/internal/api/presenters"
	"recipe-book-api/internal/middleware"
)

type Config struct {
	App           *fiber.App
	RecipeHandler handlers.RecipeHandler
	Middleware    middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.RequestIDMiddleware())
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Recipes()
	c.GuestRoute()
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/recipes")
	// recipe routes
	{
		recipes.Get("", c.RecipeHandler.GetRecipes)
		recipes.Post("", c.RecipeHandler.CreateRecipe)
		recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/ping", func(c *fiber.Ctx) error {
		return presenters.SuccessResponse(c, nil, fiber.StatusOK, "pong")
	})
}
