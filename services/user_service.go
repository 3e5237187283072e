package services

import (
	"errors"

	"github.com/filiperamosmorais-source/MealOps/models"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

type UserView struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

func viewOf(u *models.User) UserView {
	return UserView{ID: u.ID, Email: u.Email, FullName: u.FullName, Role: u.Role}
}

func (s *UserService) Get(userID uint) (*UserView, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	v := viewOf(&user)
	return &v, nil
}

func (s *UserService) UpdateProfile(userID uint, fullName string) (*UserView, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	user.FullName = fullName
	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}
	v := viewOf(&user)
	return &v, nil
}

func (s *UserService) List() ([]UserView, error) {
	var users []models.User
	if err := s.db.Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}

	out := make([]UserView, 0, len(users))
	for i := range users {
		out = append(out, viewOf(&users[i]))
	}
	return out, nil
}

// SetRole promotes or demotes a user. Demoting the last remaining admin is
// refused. The check is read-then-write; two simultaneous demotions of
// different admins could still race past it (accepted, documented in
// DESIGN.md).
func (s *UserService) SetRole(userID uint, role string) (*UserView, error) {
	if role != models.RoleUser && role != models.RoleAdmin {
		return nil, errors.New("role must be USER or ADMIN")
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if user.Role == models.RoleAdmin && role == models.RoleUser {
		var admins int64
		if err := s.db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&admins).Error; err != nil {
			return nil, err
		}
		if admins <= 1 {
			return nil, ErrLastAdmin
		}
	}

	user.Role = role
	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}
	v := viewOf(&user)
	return &v, nil
}
