package service

import (
	"context"
	"testing"

	"hmps-api/internal/config"
	"hmps-api/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureAdminIsIdempotent(t *testing.T) {
	st := testutil.NewStore(t)
	svc := NewAuthService(st)
	ctx := context.Background()

	created, err := svc.EnsureAdmin(ctx, "admin", "admin@hmps.id", "s3cret-pass")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.EnsureAdmin(ctx, "admin", "admin@hmps.id", "other")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, int64(1), testutil.Count(t, st, "users"))

	_, err = svc.EnsureAdmin(ctx, "admin2", "admin2@hmps.id", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestLogin(t *testing.T) {
	st := testutil.NewStore(t)
	svc := NewAuthService(st)
	ctx := context.Background()

	_, err := svc.EnsureAdmin(ctx, "admin", "admin@hmps.id", "s3cret-pass")
	require.NoError(t, err)

	u, err := svc.Login(ctx, "admin", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "admin", u.Username)
	assert.NotZero(t, u.UserID)

	u, err = svc.Login(ctx, "admin@hmps.id", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "admin", u.Username)

	_, err = svc.Login(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody", "s3cret-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestBootstrap(t *testing.T) {
	st := testutil.NewStore(t)
	svc := NewAuthService(st)
	ctx := context.Background()

	require.NoError(t, svc.Bootstrap(ctx, config.AdminConfig{Username: "admin", Email: "admin@hmps.id"}))
	assert.Zero(t, testutil.Count(t, st, "users"))

	cfg := config.AdminConfig{Username: "admin", Email: "admin@hmps.id", Password: "s3cret-pass"}
	require.NoError(t, svc.Bootstrap(ctx, cfg))
	require.NoError(t, svc.Bootstrap(ctx, cfg))
	assert.Equal(t, int64(1), testutil.Count(t, st, "users"))

	err := svc.Bootstrap(ctx, config.AdminConfig{Username: "root", Password: "x"})
	assert.ErrorIs(t, err, ErrValidation)
}
