package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/dashboard/internal/app/models"
	"github.com/campushub/dashboard/internal/app/models/dto/enums"
	"github.com/campushub/dashboard/internal/pkg/apperrors"
)

func testUser() *models.User {
	return &models.User{
		ID:    "user-1756300000000-1a2b3c",
		Email: "student@test.com",
		Role:  enums.RoleStudent,
	}
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "campushub.test",
	})

	token, err := svc.GenerateSessionToken(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1756300000000-1a2b3c", claims.UserID)
	assert.Equal(t, "student@test.com", claims.Email)
	assert.Equal(t, string(enums.RoleStudent), claims.Role)
	assert.Equal(t, "campushub.test", claims.Issuer)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := NewJWTService(JWTConfig{
		SecretKey: "test-secret",
		TokenExp:  -time.Minute,
	})

	token, err := svc.GenerateSessionToken(testUser())
	require.NoError(t, err)

	_, err = svc.ValidateSessionToken(token)
	require.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	issuer := NewJWTService(JWTConfig{SecretKey: "secret-a", TokenExp: time.Hour})
	verifier := NewJWTService(JWTConfig{SecretKey: "secret-b", TokenExp: time.Hour})

	token, err := issuer.GenerateSessionToken(testUser())
	require.NoError(t, err)

	_, err = verifier.ValidateSessionToken(token)
	require.Error(t, err)
}

func TestJWTService_RejectsEmptyToken(t *testing.T) {
	svc := NewJWTService(JWTConfig{SecretKey: "test-secret", TokenExp: time.Hour})

	_, err := svc.ValidateSessionToken("")
	require.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("Student@123")
	require.NoError(t, err)
	assert.NotEqual(t, "Student@123", hashed)

	assert.True(t, CheckPassword(hashed, "Student@123"))
	assert.False(t, CheckPassword(hashed, "student@123"))
}
