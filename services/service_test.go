package services

import (
	"testing"

	"github.com/filiperamosmorais-source/MealOps/config"
	"github.com/filiperamosmorais-source/MealOps/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, role string) *models.User {
	t.Helper()

	user := models.User{Email: email, Password: "x", Role: role}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func seedIngredient(t *testing.T, db *gorm.DB, name string, kcal, protein, carbs, fat float64) *models.Ingredient {
	t.Helper()

	ing := models.Ingredient{Name: name, Kcal: kcal, Protein: protein, Carbs: carbs, Fat: fat}
	require.NoError(t, db.Create(&ing).Error)
	return &ing
}

func seedRecipe(t *testing.T, db *gorm.DB, userID uint, name string, servings int, items ...models.RecipeItem) *models.Recipe {
	t.Helper()

	recipe := models.Recipe{UserID: userID, Name: name, Servings: servings, Items: items}
	require.NoError(t, db.Create(&recipe).Error)
	return &recipe
}
