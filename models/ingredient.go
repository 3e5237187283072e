package models

import "gorm.io/gorm"

// Catalog entry. Macro values are per 100 g.
type Ingredient struct {
    gorm.Model
    Name    string  `gorm:"uniqueIndex;not null" json:"name"`
    Kcal    float64 `json:"kcal"`
    Protein float64 `json:"protein"`
    Carbs   float64 `json:"carbs"`
    Fat     float64 `json:"fat"`
}
