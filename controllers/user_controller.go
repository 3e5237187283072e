package controllers

import (
	"net/http"
	"strconv"

	"github.com/filiperamosmorais-source/MealOps/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

type ProfileInput struct {
	FullName string `json:"full_name" binding:"required"`
}

func (ctl *UserController) GetProfile(c *gin.Context) {
	userID := c.GetUint("userID")
	profile, err := ctl.users.Get(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (ctl *UserController) UpdateProfile(c *gin.Context) {
	userID := c.GetUint("userID")
	var input ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := ctl.users.UpdateProfile(userID, input.FullName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Admin endpoints.

func (ctl *UserController) ListUsers(c *gin.Context) {
	users, err := ctl.users.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

type RoleInput struct {
	Role string `json:"role" binding:"required,oneof=USER ADMIN"`
}

func (ctl *UserController) SetRole(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	var input RoleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ctl.users.SetRole(uint(id), input.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
