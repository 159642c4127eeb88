package util

import (
	"testing"
	"time"

	"dsa_tracker_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	user := &model.User{
		BaseModel: model.BaseModel{ID: 42},
		Username:  "grinder",
		Email:     "grind@example.com",
		Role:      model.RoleUser,
	}

	token, err := GenerateJWT(user, "test-secret-test-secret-test-secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "test-secret-test-secret-test-secret")
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, model.RoleUser, claims.Role)
	assert.Equal(t, "grind@example.com", claims.Email)
	assert.Equal(t, "grinder", claims.Username)
}

func TestParseJWTWrongSecret(t *testing.T) {
	user := &model.User{BaseModel: model.BaseModel{ID: 1}, Role: model.RoleAdmin}
	token, err := GenerateJWT(user, "secret-a-secret-a-secret-a-secret-a", time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT(token, "secret-b-secret-b-secret-b-secret-b")
	assert.Error(t, err)
}

func TestParseJWTExpired(t *testing.T) {
	user := &model.User{BaseModel: model.BaseModel{ID: 1}}
	token, err := GenerateJWT(user, "test-secret-test-secret-test-secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, "test-secret-test-secret-test-secret")
	assert.Error(t, err)
}
