package services

import (
	"testing"

	"github.com/filiperamosmorais-source/MealOps/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRecipeComputesNutrition(t *testing.T) {
	db := newTestDB(t)
	svc := NewRecipeService(db)
	user := seedUser(t, db, "a@example.com", models.RoleUser)
	chicken := seedIngredient(t, db, "Chicken breast", 165, 31, 0, 3.6)

	got, err := svc.Create(user.ID, RecipeInput{
		Name:     "Grilled chicken",
		Servings: 2,
		Items: []RecipeItemInput{
			{IngredientID: chicken.ID, QuantityG: 200},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 330.0, got.Nutrition.Total.Kcal)
	assert.Equal(t, 165.0, got.Nutrition.PerServing.Kcal)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Chicken breast", got.Items[0].IngredientName)
}

func TestCreateRecipeNamesMissingIngredient(t *testing.T) {
	db := newTestDB(t)
	svc := NewRecipeService(db)
	user := seedUser(t, db, "a@example.com", models.RoleUser)
	chicken := seedIngredient(t, db, "Chicken breast", 165, 31, 0, 3.6)

	_, err := svc.Create(user.ID, RecipeInput{
		Name:     "Mystery",
		Servings: 1,
		Items: []RecipeItemInput{
			{IngredientID: chicken.ID, QuantityG: 100},
			{IngredientID: 4242, QuantityG: 50},
		},
	})

	var unknown *UnknownIngredientError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, uint(4242), unknown.ID)

	// Nothing persisted.
	var count int64
	require.NoError(t, db.Model(&models.Recipe{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestListRecipesUsesCurrentIngredientValues(t *testing.T) {
	db := newTestDB(t)
	svc := NewRecipeService(db)
	user := seedUser(t, db, "a@example.com", models.RoleUser)
	rice := seedIngredient(t, db, "Rice", 130, 2.7, 28, 0.3)

	_, err := svc.Create(user.ID, RecipeInput{
		Name:     "Plain rice",
		Servings: 1,
		Items:    []RecipeItemInput{{IngredientID: rice.ID, QuantityG: 100}},
	})
	require.NoError(t, err)

	// Nutrition is never stored: editing the catalog value retroactively
	// changes every listing that references it.
	rice.Kcal = 200
	require.NoError(t, db.Save(rice).Error)

	list, err := svc.List(user.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 200.0, list[0].Nutrition.Total.Kcal)
}

func TestRecipesAreOwnerScoped(t *testing.T) {
	db := newTestDB(t)
	svc := NewRecipeService(db)
	owner := seedUser(t, db, "owner@example.com", models.RoleUser)
	other := seedUser(t, db, "other@example.com", models.RoleUser)
	recipe := seedRecipe(t, db, owner.ID, "Private", 1)

	_, err := svc.Get(other.ID, recipe.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Delete(other.ID, recipe.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	list, err := svc.List(other.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDeleteRecipeRemovesItems(t *testing.T) {
	db := newTestDB(t)
	svc := NewRecipeService(db)
	user := seedUser(t, db, "a@example.com", models.RoleUser)
	rice := seedIngredient(t, db, "Rice", 130, 2.7, 28, 0.3)
	recipe := seedRecipe(t, db, user.ID, "Plain rice", 1,
		models.RecipeItem{IngredientID: rice.ID, QuantityG: 100})

	require.NoError(t, svc.Delete(user.ID, recipe.ID))

	var items int64
	require.NoError(t, db.Model(&models.RecipeItem{}).Where("recipe_id = ?", recipe.ID).Count(&items).Error)
	assert.Zero(t, items)
}
