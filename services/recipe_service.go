package services

import (
	"errors"
	"time"

	"github.com/filiperamosmorais-source/MealOps/models"
	"github.com/filiperamosmorais-source/MealOps/utils"

	"gorm.io/gorm"
)

type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

type RecipeItemInput struct {
	IngredientID uint    `json:"ingredientId" binding:"required"`
	QuantityG    float64 `json:"quantityG" binding:"required,gt=0"`
}

type RecipeInput struct {
	Name     string            `json:"name" binding:"required"`
	Servings int               `json:"servings" binding:"required,gte=1"`
	Notes    string            `json:"notes"`
	Items    []RecipeItemInput `json:"items" binding:"required,dive"`
}

type RecipeItemView struct {
	IngredientID   uint    `json:"ingredientId"`
	IngredientName string  `json:"ingredientName"`
	QuantityG      float64 `json:"quantityG"`
}

type RecipeView struct {
	ID        uint             `json:"id"`
	Name      string           `json:"name"`
	Servings  int              `json:"servings"`
	Notes     string           `json:"notes"`
	CreatedAt time.Time        `json:"createdAt"`
	Items     []RecipeItemView `json:"items"`
	Nutrition utils.Nutrition  `json:"nutrition"`
}

// Create validates every referenced ingredient in one batched lookup, then
// persists the recipe and its items inside a single transaction. Nutrition is
// computed from current catalog values, never stored.
func (s *RecipeService) Create(userID uint, in RecipeInput) (*RecipeView, error) {
	ingredients, err := s.lookupIngredients(in.Items)
	if err != nil {
		return nil, err
	}

	recipe := models.Recipe{
		UserID:   userID,
		Name:     in.Name,
		Servings: in.Servings,
		Notes:    in.Notes,
	}
	for _, it := range in.Items {
		recipe.Items = append(recipe.Items, models.RecipeItem{
			IngredientID: it.IngredientID,
			QuantityG:    it.QuantityG,
		})
	}

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&recipe).Error
	}); err != nil {
		return nil, err
	}

	view := s.buildView(&recipe, ingredients)
	return &view, nil
}

func (s *RecipeService) List(userID uint) ([]RecipeView, error) {
	var recipes []models.Recipe
	err := s.db.
		Preload("Items.Ingredient").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}

	out := make([]RecipeView, 0, len(recipes))
	for i := range recipes {
		out = append(out, s.buildView(&recipes[i], nil))
	}
	return out, nil
}

func (s *RecipeService) Get(userID, recipeID uint) (*RecipeView, error) {
	var recipe models.Recipe
	err := s.db.
		Preload("Items.Ingredient").
		Where("id = ? AND user_id = ?", recipeID, userID).
		First(&recipe).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	view := s.buildView(&recipe, nil)
	return &view, nil
}

func (s *RecipeService) Delete(userID, recipeID uint) error {
	var recipe models.Recipe
	err := s.db.Where("id = ? AND user_id = ?", recipeID, userID).First(&recipe).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.PlannedMeal{}).Error; err != nil {
			return err
		}
		return tx.Delete(&recipe).Error
	})
}

// lookupIngredients fetches every referenced ingredient in one query and
// reports the first missing id by name.
func (s *RecipeService) lookupIngredients(items []RecipeItemInput) (map[uint]models.Ingredient, error) {
	ids := make([]uint, 0, len(items))
	seen := make(map[uint]bool, len(items))
	for _, it := range items {
		if !seen[it.IngredientID] {
			seen[it.IngredientID] = true
			ids = append(ids, it.IngredientID)
		}
	}

	var found []models.Ingredient
	if len(ids) > 0 {
		if err := s.db.Where("id IN ?", ids).Find(&found).Error; err != nil {
			return nil, err
		}
	}

	byID := make(map[uint]models.Ingredient, len(found))
	for _, ing := range found {
		byID[ing.ID] = ing
	}
	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			return nil, &UnknownIngredientError{ID: id}
		}
	}
	return byID, nil
}

// buildView assembles the response shape. ingredients may be nil when items
// were loaded with their Ingredient preloaded.
func (s *RecipeService) buildView(r *models.Recipe, ingredients map[uint]models.Ingredient) RecipeView {
	items := make([]RecipeItemView, 0, len(r.Items))
	nut := make([]utils.NutritionItem, 0, len(r.Items))
	for _, it := range r.Items {
		ing := it.Ingredient
		if ingredients != nil {
			ing = ingredients[it.IngredientID]
		}
		items = append(items, RecipeItemView{
			IngredientID:   it.IngredientID,
			IngredientName: ing.Name,
			QuantityG:      it.QuantityG,
		})
		nut = append(nut, utils.NutritionItem{
			Per100g: utils.Macros{
				Kcal:    ing.Kcal,
				Protein: ing.Protein,
				Carbs:   ing.Carbs,
				Fat:     ing.Fat,
			},
			QuantityG: it.QuantityG,
		})
	}

	return RecipeView{
		ID:        r.ID,
		Name:      r.Name,
		Servings:  r.Servings,
		Notes:     r.Notes,
		CreatedAt: r.CreatedAt,
		Items:     items,
		Nutrition: utils.AggregateNutrition(nut, r.Servings),
	}
}
