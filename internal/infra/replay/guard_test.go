//go:build unit

package replay_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"parkpass/internal/infra"
	"parkpass/internal/infra/replay"
	"parkpass/internal/pkg/clock"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisGuard_Claim(t *testing.T) {
	ctx := context.Background()
	db, mock := redismock.NewClientMock()
	guard := replay.NewRedisGuard(db)

	mock.ExpectSetNX("parkpass:token:abc", 1, 2*time.Minute).SetVal(true)
	mock.ExpectSetNX("parkpass:token:abc", 1, 2*time.Minute).SetVal(false)
	mock.ExpectSetNX("parkpass:token:def", 1, 2*time.Minute).SetErr(errors.New("connection refused"))

	ok, err := guard.Claim(ctx, "abc", 2*time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = guard.Claim(ctx, "abc", 2*time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = guard.Claim(ctx, "def", 2*time.Minute)
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemoryGuard_Claim(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	guard := replay.NewMemoryGuard(clk)

	ok, err := guard.Claim(ctx, "digest", 2*time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, _ = guard.Claim(ctx, "digest", 2*time.Minute)
	assert.False(t, ok)

	clk.Advance(2 * time.Minute)
	assert.Equal(t, 1, guard.Sweep())

	ok, _ = guard.Claim(ctx, "digest", 2*time.Minute)
	assert.True(t, ok)
}

func TestRedisGuard_Release(t *testing.T) {
	ctx := context.Background()
	db, mock := redismock.NewClientMock()
	guard := replay.NewRedisGuard(db)

	mock.ExpectSetNX("parkpass:token:abc", 1, time.Minute).SetVal(true)
	mock.ExpectDel("parkpass:token:abc").SetVal(1)
	mock.ExpectSetNX("parkpass:token:abc", 1, time.Minute).SetVal(true)
	mock.ExpectDel("parkpass:token:def").SetErr(errors.New("connection refused"))

	ok, err := guard.Claim(ctx, "abc", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, guard.Release(ctx, "abc"))

	ok, err = guard.Claim(ctx, "abc", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	err = guard.Release(ctx, "def")
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemoryGuard_Release(t *testing.T) {
	ctx := context.Background()
	guard := replay.NewMemoryGuard(clock.NewMockClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))

	ok, _ := guard.Claim(ctx, "digest", time.Minute)
	require.True(t, ok)
	require.NoError(t, guard.Release(ctx, "digest"))

	ok, _ = guard.Claim(ctx, "digest", time.Minute)
	assert.True(t, ok)
	require.NoError(t, guard.Release(ctx, "never-claimed"))
}
