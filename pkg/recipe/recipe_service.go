package recipe

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"recipe-book-api/domain"
	"recipe-book-api/entities"
)

type (
	RecipeService interface {
		GetRecipes(ctx context.Context) ([]domain.RecipeListItem, error)
		GetRecipeDetail(ctx context.Context, id uint) (domain.RecipeDetail, error)
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.RecipeDetail, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository) RecipeService {
	return &recipeService{recipeRepository: recipeRepository}
}

func (s *recipeService) GetRecipes(ctx context.Context) ([]domain.RecipeListItem, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.RecipeListItem, 0, len(recipes))
	for _, recipe := range recipes {
		result = append(result, domain.RecipeListItem{
			ID:              recipe.ID,
			Name:            recipe.Name,
			Views:           recipe.Views,
			CookTimeMinutes: recipe.CookTimeMinutes,
		})
	}

	return result, nil
}

// GetRecipeDetail increments the view counter as a side effect; the returned
// detail carries the post-increment value.
func (s *recipeService) GetRecipeDetail(ctx context.Context, id uint) (domain.RecipeDetail, error) {
	recipe, err := s.recipeRepository.IncrementViewsAndGet(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetail{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetail{}, err
	}

	return toRecipeDetail(recipe), nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.RecipeDetail, error) {
	recipe := entities.Recipe{
		Name:            req.Name,
		CookTimeMinutes: req.CookTimeMinutes,
		Description:     req.Description,
		Views:           0,
		Ingredients:     make([]entities.Ingredient, 0, len(req.Ingredients)),
	}
	for _, ing := range req.Ingredients {
		recipe.Ingredients = append(recipe.Ingredients, entities.Ingredient{Name: ing.Name})
	}

	if err := s.recipeRepository.CreateRecipe(ctx, &recipe); err != nil {
		return domain.RecipeDetail{}, err
	}

	return toRecipeDetail(&recipe), nil
}

func toRecipeDetail(recipe *entities.Recipe) domain.RecipeDetail {
	ingredients := make([]string, 0, len(recipe.Ingredients))
	for _, ing := range recipe.Ingredients {
		ingredients = append(ingredients, ing.Name)
	}

	return domain.RecipeDetail{
		ID:              recipe.ID,
		Name:            recipe.Name,
		CookTimeMinutes: recipe.CookTimeMinutes,
		Views:           recipe.Views,
		Ingredients:     ingredients,
		Description:     recipe.Description,
	}
}
