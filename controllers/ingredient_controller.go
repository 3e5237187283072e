package controllers

import (
	"net/http"
	"strconv"

	"github.com/filiperamosmorais-source/MealOps/services"

	"github.com/gin-gonic/gin"
)

type IngredientController struct {
	ingredients *services.IngredientService
}

func NewIngredientController(ingredients *services.IngredientService) *IngredientController {
	return &IngredientController{ingredients: ingredients}
}

func (ctl *IngredientController) Create(c *gin.Context) {
	var input services.IngredientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ing, err := ctl.ingredients.Create(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ing)
}

func (ctl *IngredientController) List(c *gin.Context) {
	ings, err := ctl.ingredients.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ings)
}

func (ctl *IngredientController) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ing, err := ctl.ingredients.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ing)
}

func (ctl *IngredientController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input services.IngredientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ing, err := ctl.ingredients.Update(id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ing)
}

func (ctl *IngredientController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := ctl.ingredients.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ingredient deleted"})
}

// pathID parses the :id route parameter, writing the 400 itself on failure.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
