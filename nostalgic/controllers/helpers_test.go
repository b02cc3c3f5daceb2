package controllers

import (
	"context"
	"testing"
	"time"

	"nostalgic/nostalgic/services/token"
	"nostalgic/nostalgic/sources/psql/psqltest"
	"nostalgic/nostalgic/types"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func newAuthController(t *testing.T, db *gorm.DB) *AuthController {
	t.Helper()
	return NewAuthController(db, token.NewService(testSecret, 24*time.Hour), bcrypt.MinCost)
}

func register(t *testing.T, auth *AuthController, username, password string) {
	t.Helper()
	err := auth.Register(context.Background(), types.CreateUserRequest{
		Username:  username,
		Password1: password,
		Password2: password,
	})
	require.NoError(t, err)
}

func newTestDB(t *testing.T) *gorm.DB {
	return psqltest.NewDB(t)
}

// stepClock returns increasing times one millisecond apart so stored file
// names never collide.
func stepClock() func() time.Time {
	t := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Millisecond)
		return t
	}
}
