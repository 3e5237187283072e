package services

import (
	"errors"

	"github.com/filiperamosmorais-source/MealOps/models"

	"gorm.io/gorm"
)

type IngredientService struct {
	db *gorm.DB
}

func NewIngredientService(db *gorm.DB) *IngredientService {
	return &IngredientService{db: db}
}

type IngredientInput struct {
	Name    string  `json:"name" binding:"required"`
	Kcal    float64 `json:"kcal" binding:"gte=0"`
	Protein float64 `json:"protein" binding:"gte=0"`
	Carbs   float64 `json:"carbs" binding:"gte=0"`
	Fat     float64 `json:"fat" binding:"gte=0"`
}

func (s *IngredientService) Create(in IngredientInput) (*models.Ingredient, error) {
	var count int64
	if err := s.db.Model(&models.Ingredient{}).Where("name = ?", in.Name).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateName
	}

	ing := models.Ingredient{
		Name:    in.Name,
		Kcal:    in.Kcal,
		Protein: in.Protein,
		Carbs:   in.Carbs,
		Fat:     in.Fat,
	}
	if err := s.db.Create(&ing).Error; err != nil {
		return nil, err
	}
	return &ing, nil
}

func (s *IngredientService) List() ([]models.Ingredient, error) {
	var ings []models.Ingredient
	err := s.db.Order("name ASC").Find(&ings).Error
	return ings, err
}

func (s *IngredientService) Get(id uint) (*models.Ingredient, error) {
	var ing models.Ingredient
	if err := s.db.First(&ing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ing, nil
}

// Update replaces the macro values and name. Recipes referencing the
// ingredient pick up the new values on their next listing, since nutrition is
// never stored.
func (s *IngredientService) Update(id uint, in IngredientInput) (*models.Ingredient, error) {
	ing, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.Ingredient{}).
		Where("name = ? AND id <> ?", in.Name, id).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateName
	}

	ing.Name = in.Name
	ing.Kcal = in.Kcal
	ing.Protein = in.Protein
	ing.Carbs = in.Carbs
	ing.Fat = in.Fat
	if err := s.db.Save(ing).Error; err != nil {
		return nil, err
	}
	return ing, nil
}

// Delete refuses to remove an ingredient that any recipe item still
// references. No cascade.
func (s *IngredientService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	var refs int64
	if err := s.db.Model(&models.RecipeItem{}).Where("ingredient_id = ?", id).Count(&refs).Error; err != nil {
		return err
	}
	if refs > 0 {
		return ErrIngredientInUse
	}

	return s.db.Delete(&models.Ingredient{}, id).Error
}
