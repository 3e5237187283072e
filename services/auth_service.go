package services

import (
	"errors"
	"time"

	"github.com/filiperamosmorais-source/MealOps/models"
	"github.com/filiperamosmorais-source/MealOps/utils"

	"gorm.io/gorm"
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

func (s *AuthService) Register(email, password, fullName string) (*models.User, error) {
	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateEmail
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:    email,
		Password: hashed,
		FullName: fullName,
		Role:     models.RoleUser,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate checks the credentials and issues a signed token carrying the
// user's id, email and role.
func (s *AuthService) Authenticate(email, password string) (string, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return "", ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", ErrInvalidCredentials
	}

	return utils.GenerateJWT(user.ID, user.Email, user.Role)
}

// ForgotPassword stores a short-lived reset code and mails it. An unknown
// email is not an error, so the endpoint does not leak which addresses exist.
func (s *AuthService) ForgotPassword(email string) error {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	code := utils.GenerateRandomToken(6)
	user.ResetCode = code
	user.ResetCodeExp = time.Now().Add(15 * time.Minute)
	if err := s.db.Save(&user).Error; err != nil {
		return err
	}

	return utils.SendResetEmail(user.Email, code)
}

func (s *AuthService) ResetPassword(code, newPassword string) error {
	if code == "" {
		return ErrNotFound
	}

	var user models.User
	if err := s.db.Where("reset_code = ?", code).First(&user).Error; err != nil {
		return ErrNotFound
	}
	if time.Now().After(user.ResetCodeExp) {
		return ErrNotFound
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.Password = hashed
	user.ResetCode = ""
	user.ResetCodeExp = time.Time{}
	return s.db.Save(&user).Error
}
