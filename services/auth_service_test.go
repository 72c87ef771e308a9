package services

import (
	"testing"
	"time"

	"github.com/LucasHenderson/lucashenderson-e-joaopoliveira-topicos3/entity"
	"github.com/LucasHenderson/lucashenderson-e-joaopoliveira-topicos3/repository"
	"github.com/LucasHenderson/lucashenderson-e-joaopoliveira-topicos3/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	return NewAuthService(repository.NewUserRepository(newTestDB(t)), "test-secret", time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)

	user, err := svc.Register("  Maria@Test.com ", "segredo1", "Maria Silva", "Rua A, 1", "9999-0000")
	require.NoError(t, err)
	assert.Equal(t, "maria@test.com", user.Email, "email is normalized")
	assert.Equal(t, entity.RoleCustomer, user.Role)
	assert.NotEqual(t, "segredo1", user.Password, "password must be hashed")

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.Register("maria@test.com", "outra", "Outra", "", "")
		assert.True(t, IsValidation(err))
	})

	t.Run("login ok", func(t *testing.T) {
		token, got, err := svc.Login("maria@test.com", "segredo1")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)

		claims, err := utils.ParseToken(token, "test-secret")
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, entity.RoleCustomer, claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login("maria@test.com", "errada")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := svc.Login("nao@existe.com", "segredo1")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUpdateProfile(t *testing.T) {
	svc := newAuthService(t)

	user, err := svc.Register("maria@test.com", "segredo1", "Maria Silva", "Rua A, 1", "")
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(user.ID, map[string]any{"address": "Rua B, 2"})
	require.NoError(t, err)
	assert.Equal(t, "Rua B, 2", updated.Address)
	assert.Equal(t, "Maria Silva", updated.FullName)
}
