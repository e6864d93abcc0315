//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"parkpass/internal/domain/auth"
	"parkpass/internal/pkg/clock"
	"parkpass/internal/pkg/jwt"
	"parkpass/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenValidator_ValidateToken(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)
	validator := usecase.NewTokenValidator(svc)
	userID := uuid.New()

	t.Run("returns the actor carried by a valid token", func(t *testing.T) {
		token, err := svc.GenerateToken(userID, auth.RoleOperator)
		require.NoError(t, err)

		actor, err := validator.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, auth.Actor{ID: userID, Role: auth.RoleOperator}, actor)
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		token, err := jwt.NewService("other-secret", time.Hour).GenerateToken(userID, auth.RoleDriver)
		require.NoError(t, err)

		_, err = validator.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		token, err := jwt.NewService("test-secret", -time.Minute).GenerateToken(userID, auth.RoleDriver)
		require.NoError(t, err)

		_, err = validator.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("rejects an unknown role", func(t *testing.T) {
		token, err := svc.GenerateToken(userID, auth.Role("valet"))
		require.NoError(t, err)

		_, err = validator.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("keeps the lot scope of operator devices", func(t *testing.T) {
		lotID := uuid.New()
		token, err := svc.GenerateToken(userID, auth.RoleOperator, lotID)
		require.NoError(t, err)

		actor, err := validator.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{lotID}, actor.Lots)
		assert.True(t, actor.MayOperate(lotID))
		assert.False(t, actor.MayOperate(uuid.New()))
	})

	t.Run("drops a lot scope on other roles", func(t *testing.T) {
		token, err := svc.GenerateToken(userID, auth.RoleDriver, uuid.New())
		require.NoError(t, err)

		actor, err := validator.ValidateToken(token)
		require.NoError(t, err)
		assert.Empty(t, actor.Lots)
	})

	t.Run("rejects a token from another issuer", func(t *testing.T) {
		scoped := usecase.NewTokenValidator(jwt.NewService("test-secret", time.Hour, jwt.WithIssuer("https://id.parkpass.example")))
		token, err := jwt.NewService("test-secret", time.Hour, jwt.WithIssuer("https://id.elsewhere.example")).GenerateToken(userID, auth.RoleDriver)
		require.NoError(t, err)

		_, err = scoped.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("expiry follows the injected clock", func(t *testing.T) {
		clk := clock.NewMockClock(time.Date(2026, 4, 10, 9, 0, 0, 0, time.UTC))
		clocked := jwt.NewService("test-secret", time.Hour, jwt.WithClock(clk))
		token, err := clocked.GenerateToken(userID, auth.RoleDriver)
		require.NoError(t, err)

		_, err = clocked.ValidateToken(token)
		require.NoError(t, err)

		clk.Advance(61 * time.Minute)
		_, err = clocked.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := validator.ValidateToken("not-a-jwt")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
