package controllers

import (
	"net/http"

	"github.com/filiperamosmorais-source/MealOps/services"

	"github.com/gin-gonic/gin"
)

type MealPlanController struct {
	plans *services.MealPlanService
}

func NewMealPlanController(plans *services.MealPlanService) *MealPlanController {
	return &MealPlanController{plans: plans}
}

type SaveWeekInput struct {
	WeekStart string                      `json:"weekStart" binding:"required"`
	Meals     []services.PlannedMealInput `json:"meals"`
}

// GET /meal-plans?weekStart=YYYY-MM-DD
func (ctl *MealPlanController) GetWeek(c *gin.Context) {
	weekStart := c.Query("weekStart")
	if weekStart == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "weekStart query parameter required"})
		return
	}

	plan, err := ctl.plans.GetWeek(c.GetUint("userID"), weekStart)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// GET /meal-plans/summary?weekStart=YYYY-MM-DD
func (ctl *MealPlanController) Summary(c *gin.Context) {
	weekStart := c.Query("weekStart")
	if weekStart == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "weekStart query parameter required"})
		return
	}

	summary, err := ctl.plans.Summarize(c.GetUint("userID"), weekStart)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// PUT /meal-plans replaces the whole week. An empty meals list clears it.
func (ctl *MealPlanController) SaveWeek(c *gin.Context) {
	var input SaveWeekInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := ctl.plans.SaveWeek(c.GetUint("userID"), input.WeekStart, input.Meals)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}
