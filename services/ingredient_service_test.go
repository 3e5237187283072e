package services

import (
	"testing"

	"github.com/filiperamosmorais-source/MealOps/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateIngredientRejectsDuplicateName(t *testing.T) {
	db := newTestDB(t)
	svc := NewIngredientService(db)

	_, err := svc.Create(IngredientInput{Name: "Oats", Kcal: 389, Protein: 16.9, Carbs: 66, Fat: 6.9})
	require.NoError(t, err)

	_, err = svc.Create(IngredientInput{Name: "Oats", Kcal: 400})
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestUpdateIngredientRejectsNameCollision(t *testing.T) {
	db := newTestDB(t)
	svc := NewIngredientService(db)

	_, err := svc.Create(IngredientInput{Name: "Oats", Kcal: 389})
	require.NoError(t, err)
	milk, err := svc.Create(IngredientInput{Name: "Milk", Kcal: 42})
	require.NoError(t, err)

	_, err = svc.Update(milk.ID, IngredientInput{Name: "Oats", Kcal: 42})
	assert.ErrorIs(t, err, ErrDuplicateName)

	// Renaming to its own current name is fine.
	got, err := svc.Update(milk.ID, IngredientInput{Name: "Milk", Kcal: 64})
	require.NoError(t, err)
	assert.Equal(t, 64.0, got.Kcal)
}

func TestDeleteIngredientBlockedWhileReferenced(t *testing.T) {
	db := newTestDB(t)
	svc := NewIngredientService(db)
	user := seedUser(t, db, "a@example.com", models.RoleUser)
	oats := seedIngredient(t, db, "Oats", 389, 16.9, 66, 6.9)
	recipe := seedRecipe(t, db, user.ID, "Porridge", 1,
		models.RecipeItem{IngredientID: oats.ID, QuantityG: 80})

	err := svc.Delete(oats.ID)
	assert.ErrorIs(t, err, ErrIngredientInUse)

	// Still present, no silent cascade.
	_, err = svc.Get(oats.ID)
	require.NoError(t, err)

	// Once the referencing recipe is gone the delete goes through.
	require.NoError(t, NewRecipeService(db).Delete(user.ID, recipe.ID))
	require.NoError(t, svc.Delete(oats.ID))

	_, err = svc.Get(oats.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetIngredientNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewIngredientService(db)

	_, err := svc.Get(12345)
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Delete(12345)
	assert.ErrorIs(t, err, ErrNotFound)
}
