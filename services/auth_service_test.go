package services

import (
	"testing"
	"time"

	"github.com/filiperamosmorais-source/MealOps/models"
	"github.com/filiperamosmorais-source/MealOps/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	db := newTestDB(t)
	svc := NewAuthService(db)

	user, err := svc.Register("a@example.com", "hunter2hunter2", "Ana")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, "hunter2hunter2", user.Password) // stored hashed

	token, err := svc.Authenticate("a@example.com", "hunter2hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = svc.Authenticate("a@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate("nobody@example.com", "hunter2hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	_, err := svc.Register("a@example.com", "hunter2hunter2", "Ana")
	require.NoError(t, err)

	_, err = svc.Register("a@example.com", "different-pass", "Other Ana")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestResetPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	user, err := svc.Register("a@example.com", "hunter2hunter2", "Ana")
	require.NoError(t, err)

	user.ResetCode = "abc123"
	user.ResetCodeExp = time.Now().Add(10 * time.Minute)
	require.NoError(t, db.Save(user).Error)

	require.NoError(t, svc.ResetPassword("abc123", "newpassword1"))

	var updated models.User
	require.NoError(t, db.First(&updated, user.ID).Error)
	assert.True(t, utils.CheckPasswordHash("newpassword1", updated.Password))
	assert.Empty(t, updated.ResetCode) // single use

	// Reusing the spent code fails.
	assert.ErrorIs(t, svc.ResetPassword("abc123", "another-pass"), ErrNotFound)
}

func TestResetPasswordExpiredCode(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	user, err := svc.Register("a@example.com", "hunter2hunter2", "Ana")
	require.NoError(t, err)

	user.ResetCode = "abc123"
	user.ResetCodeExp = time.Now().Add(-1 * time.Minute)
	require.NoError(t, db.Save(user).Error)

	assert.ErrorIs(t, svc.ResetPassword("abc123", "newpassword1"), ErrNotFound)
}
