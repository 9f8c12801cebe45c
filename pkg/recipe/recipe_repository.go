package recipe

import (
	"context"

	"gorm.io/gorm"

	"recipe-book-api/entities"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipes(ctx context.Context) ([]*entities.Recipe, error)
		GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error)
		IncrementViewsAndGet(ctx context.Context, id uint) (*entities.Recipe, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// CreateRecipe persists the recipe together with its ingredients in one
// transaction. Ingredient rows are inserted in slice order, so their
// assigned ids preserve the submitted order.
func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetRecipes(ctx context.Context) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Order("views desc, cook_time_minutes asc, id asc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Ingredients", orderIngredients).
		First(&recipe, id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// IncrementViewsAndGet bumps the view counter and reloads the recipe inside
// a single transaction. The increment is one UPDATE statement, so two
// concurrent calls for the same id each apply their own +1. A missing id
// leaves the store untouched and surfaces as gorm.ErrRecordNotFound.
func (r *recipeRepository) IncrementViewsAndGet(ctx context.Context, id uint) (*entities.Recipe, error) {
	var recipe entities.Recipe
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.Recipe{}).
			Where("id = ?", id).
			UpdateColumn("views", gorm.Expr("views + ?", 1))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Preload("Ingredients", orderIngredients).First(&recipe, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

func orderIngredients(db *gorm.DB) *gorm.DB {
	return db.Order("ingredients.id asc")
}
