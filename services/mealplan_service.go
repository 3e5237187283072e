package services

import (
	"errors"
	"sort"
	"time"

	"github.com/filiperamosmorais-source/MealOps/models"
	"github.com/filiperamosmorais-source/MealOps/utils"

	"gorm.io/gorm"
)

type MealPlanService struct {
	db *gorm.DB
}

func NewMealPlanService(db *gorm.DB) *MealPlanService {
	return &MealPlanService{db: db}
}

type PlannedMealInput struct {
	Date     string `json:"date" binding:"required"`
	Slot     string `json:"slot" binding:"required"`
	RecipeID uint   `json:"recipeId" binding:"required"`
}

type PlannedMealView struct {
	Date       string `json:"date"`
	Slot       string `json:"slot"`
	RecipeID   uint   `json:"recipeId"`
	RecipeName string `json:"recipeName"`
}

type MealPlanView struct {
	ID        *uint             `json:"id"`
	WeekStart string            `json:"weekStart"`
	Meals     []PlannedMealView `json:"meals"`
}

// Slots sort in fixed day order; anything unrecognized goes last.
var slotRank = map[string]int{
	models.SlotBreakfast:      0,
	models.SlotLunch:          1,
	models.SlotAfternoonSnack: 2,
	models.SlotDinner:         3,
}

func rankOf(slot string) int {
	if r, ok := slotRank[slot]; ok {
		return r
	}
	return len(slotRank)
}

// SaveWeek validates the proposed assignments and replaces the week's plan
// wholesale: the plan row is found or created, every existing planned meal
// under it is deleted and the new set inserted, all inside one transaction.
// An empty meals list clears the week.
func (s *MealPlanService) SaveWeek(userID uint, weekStart string, meals []PlannedMealInput) (*MealPlanView, error) {
	ws, err := utils.ParseDateOnly(weekStart)
	if err != nil {
		return nil, err
	}

	type parsedMeal struct {
		day      time.Time
		slot     string
		recipeID uint
	}
	parsed := make([]parsedMeal, 0, len(meals))
	taken := make(map[string]bool, len(meals))
	recipeIDs := make([]uint, 0, len(meals))
	seenRecipe := make(map[uint]bool, len(meals))

	for _, m := range meals {
		d, err := utils.ParseDateOnly(m.Date)
		if err != nil {
			return nil, err
		}
		if !utils.IsWithinWeek(d, ws) {
			return nil, &DateOutsideWeekError{Date: m.Date}
		}

		key := m.Date + "|" + m.Slot
		if taken[key] {
			return nil, &DuplicateSlotError{Date: m.Date}
		}
		taken[key] = true

		if !seenRecipe[m.RecipeID] {
			seenRecipe[m.RecipeID] = true
			recipeIDs = append(recipeIDs, m.RecipeID)
		}
		parsed = append(parsed, parsedMeal{day: d, slot: m.Slot, recipeID: m.RecipeID})
	}

	// Batched ownership check. The error stays coarse on purpose, see
	// ErrUnknownRecipe.
	if len(recipeIDs) > 0 {
		var count int64
		if err := s.db.Model(&models.Recipe{}).
			Where("id IN ? AND user_id = ?", recipeIDs, userID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count < int64(len(recipeIDs)) {
			return nil, ErrUnknownRecipe
		}
	}

	var planID uint
	if err := s.db.Transaction(func(tx *gorm.DB) error {
		var plan models.MealPlan
		err := tx.Where("user_id = ? AND week_start = ?", userID, ws).First(&plan).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			plan = models.MealPlan{UserID: userID, WeekStart: ws}
			err = tx.Create(&plan).Error
		}
		if err != nil {
			return err
		}
		planID = plan.ID

		if err := tx.Where("meal_plan_id = ?", plan.ID).Delete(&models.PlannedMeal{}).Error; err != nil {
			return err
		}

		if len(parsed) == 0 {
			return nil
		}
		rows := make([]models.PlannedMeal, 0, len(parsed))
		for _, p := range parsed {
			rows = append(rows, models.PlannedMeal{
				MealPlanID: plan.ID,
				Date:       p.day,
				Slot:       p.slot,
				RecipeID:   p.recipeID,
			})
		}
		return tx.Create(&rows).Error
	}); err != nil {
		return nil, err
	}

	return s.readPlan(planID, weekStart)
}

// GetWeek returns the saved plan for the week, or an empty view with a nil id
// when none exists yet.
func (s *MealPlanService) GetWeek(userID uint, weekStart string) (*MealPlanView, error) {
	ws, err := utils.ParseDateOnly(weekStart)
	if err != nil {
		return nil, err
	}

	var plan models.MealPlan
	err = s.db.Where("user_id = ? AND week_start = ?", userID, ws).First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &MealPlanView{ID: nil, WeekStart: weekStart, Meals: []PlannedMealView{}}, nil
	}
	if err != nil {
		return nil, err
	}

	return s.readPlan(plan.ID, weekStart)
}

type DaySummary struct {
	Date      string       `json:"date"`
	Meals     int          `json:"meals"`
	Nutrition utils.Macros `json:"nutrition"`
}

type WeekSummary struct {
	WeekStart string       `json:"weekStart"`
	Days      []DaySummary `json:"days"`
	Total     utils.Macros `json:"total"`
}

// Summarize totals the per-serving nutrition of every planned meal, grouped
// by day. A planned meal counts as one serving of its recipe.
func (s *MealPlanService) Summarize(userID uint, weekStart string) (*WeekSummary, error) {
	plan, err := s.GetWeek(userID, weekStart)
	if err != nil {
		return nil, err
	}

	recipes := NewRecipeService(s.db)
	perServing := make(map[uint]utils.Macros)
	byDay := make(map[string]*DaySummary)

	for _, m := range plan.Meals {
		ps, ok := perServing[m.RecipeID]
		if !ok {
			view, err := recipes.Get(userID, m.RecipeID)
			if err != nil {
				return nil, err
			}
			ps = view.Nutrition.PerServing
			perServing[m.RecipeID] = ps
		}

		day, ok := byDay[m.Date]
		if !ok {
			day = &DaySummary{Date: m.Date}
			byDay[m.Date] = day
		}
		day.Meals++
		day.Nutrition.Kcal += ps.Kcal
		day.Nutrition.Protein += ps.Protein
		day.Nutrition.Carbs += ps.Carbs
		day.Nutrition.Fat += ps.Fat
	}

	out := &WeekSummary{WeekStart: weekStart, Days: []DaySummary{}}
	for _, day := range byDay {
		out.Days = append(out.Days, *day)
		out.Total.Kcal += day.Nutrition.Kcal
		out.Total.Protein += day.Nutrition.Protein
		out.Total.Carbs += day.Nutrition.Carbs
		out.Total.Fat += day.Nutrition.Fat
	}
	sort.Slice(out.Days, func(i, j int) bool { return out.Days[i].Date < out.Days[j].Date })

	return out, nil
}

// readPlan re-reads the stored meals joined with their recipe names and sorts
// them by date ascending then slot rank. The date strings are zero-padded ISO,
// so lexical order equals chronological order.
func (s *MealPlanService) readPlan(planID uint, weekStart string) (*MealPlanView, error) {
	type row struct {
		Date       time.Time
		Slot       string
		RecipeID   uint
		RecipeName string
	}
	var rows []row
	err := s.db.
		Table("planned_meals").
		Select("planned_meals.date, planned_meals.slot, planned_meals.recipe_id, recipes.name AS recipe_name").
		Joins("JOIN recipes ON recipes.id = planned_meals.recipe_id").
		Where("planned_meals.meal_plan_id = ? AND planned_meals.deleted_at IS NULL", planID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	meals := make([]PlannedMealView, 0, len(rows))
	for _, r := range rows {
		meals = append(meals, PlannedMealView{
			Date:       utils.FormatDateOnly(r.Date),
			Slot:       r.Slot,
			RecipeID:   r.RecipeID,
			RecipeName: r.RecipeName,
		})
	}

	sort.SliceStable(meals, func(i, j int) bool {
		if meals[i].Date != meals[j].Date {
			return meals[i].Date < meals[j].Date
		}
		return rankOf(meals[i].Slot) < rankOf(meals[j].Slot)
	})

	id := planID
	return &MealPlanView{ID: &id, WeekStart: weekStart, Meals: meals}, nil
}
