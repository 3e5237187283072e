package models

import (
    "time"

    "gorm.io/gorm"
)

// Meal slots, in display order.
const (
    SlotBreakfast      = "breakfast"
    SlotLunch          = "lunch"
    SlotAfternoonSnack = "afternoon_snack"
    SlotDinner         = "dinner"
)

// One plan per user per week. WeekStart is a date-only Monday anchor (UTC).
type MealPlan struct {
    gorm.Model
    UserID    uint      `gorm:"not null;uniqueIndex:idx_user_week"`
    WeekStart time.Time `gorm:"type:date;not null;uniqueIndex:idx_user_week"`
    Meals     []PlannedMeal
}

// A recipe assigned to one (date, slot) cell of the week.
type PlannedMeal struct {
    gorm.Model
    MealPlanID uint      `gorm:"index;not null"`
    Date       time.Time `gorm:"type:date;not null"`
    Slot       string    `gorm:"type:varchar(32);not null"`
    RecipeID   uint      `gorm:"not null"`
}
