package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/danceinaction/booking-api/internal/pkg/jwthelper"
)

func TestAdminService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("246810"), bcrypt.MinCost)
	require.NoError(t, err)

	svc := NewAdminService(string(hash), "test-signing-key")

	token, err := svc.Login("246810")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := jwthelper.ParseToken([]byte("test-signing-key"), token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, "admin", claims.Role)
}

func TestAdminService_Login_WrongPIN(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("246810"), bcrypt.MinCost)
	require.NoError(t, err)

	svc := NewAdminService(string(hash), "test-signing-key")

	_, err = svc.Login("000000")

	assert.ErrorIs(t, err, ErrWrongPIN)
}

func TestAdminService_Login_TokenSignedWithOwnKey(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("246810"), bcrypt.MinCost)
	require.NoError(t, err)

	svc := NewAdminService(string(hash), "test-signing-key")

	token, err := svc.Login("246810")
	require.NoError(t, err)

	_, err = jwthelper.ParseToken([]byte("another-key"), token)

	assert.ErrorIs(t, err, jwthelper.ErrInvalidToken)
}
