package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"recipe-book-api/domain"
	"recipe-book-api/internal/api/presenters"
	"recipe-book-api/pkg/recipe"
)

type (
	RecipeHandler interface {
		GetRecipes(c *fiber.Ctx) error
		GetRecipeDetail(c *fiber.Ctx) error
		CreateRecipe(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	recipes, err := h.recipeService.GetRecipes(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecipes, err)
	}

	return c.Status(fiber.StatusOK).JSON(recipes)
}

func (h *recipeHandler) GetRecipeDetail(c *fiber.Ctx) error {
	// Any integer is a well-formed id; ids that match no row (negatives
	// included) fall through to the not-found path.
	id, err := c.ParamsInt("id")
	if err != nil {
		return presenters.ValidationErrorResponse(c, domain.MessageFailedGetRecipeDetail, domain.ErrInvalidRecipeID)
	}

	res, err := h.recipeService.GetRecipeDetail(c.Context(), uint(id))
	if err != nil {
		if err == domain.ErrRecipeNotFound {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetRecipeDetail, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecipeDetail, err)
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	req := new(domain.CreateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ValidationErrorResponse(c, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ValidationErrorResponse(c, domain.MessageFailedValidation, err)
	}

	// An empty ingredient list is valid, a missing field is not; the
	// validator cannot tell the two apart.
	if req.Ingredients == nil {
		return presenters.ValidationErrorResponse(c, domain.MessageFailedValidation,
			errors.New("ingredients field is required"))
	}

	res, err := h.recipeService.CreateRecipe(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateRecipe, err)
	}

	return c.Status(fiber.StatusCreated).JSON(res)
}
