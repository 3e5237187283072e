package models

import "gorm.io/gorm"

// A user-owned recipe. Created atomically with its items.
type Recipe struct {
    gorm.Model
    UserID   uint   `gorm:"index;not null"`
    Name     string `gorm:"not null"`
    Servings int    `gorm:"not null"`
    Notes    string
    Items    []RecipeItem
}

// One weighed ingredient line of a recipe.
type RecipeItem struct {
    gorm.Model
    RecipeID     uint `gorm:"index;not null"`
    IngredientID uint `gorm:"index;not null"`
    Ingredient   Ingredient
    QuantityG    float64 // grams
}
