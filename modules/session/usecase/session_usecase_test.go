package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/roysitumorang/storefront/helper"
	sessionModel "github.com/roysitumorang/storefront/modules/session/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	helper.SetLogger(zap.NewNop())
}

func TestAcquireSession(t *testing.T) {
	ctx := context.Background()
	var created atomic.Int32
	useCase := New(time.Minute, 534, func(_ context.Context, session *sessionModel.Session) error {
		created.Add(1)
		return errors.New("logged, not returned")
	})

	first, err := useCase.AcquireSession(ctx, "abc")
	require.NoError(t, err)
	second, err := useCase.AcquireSession(ctx, "abc")
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, int32(1), created.Load())
	assert.Equal(t, 1, useCase.CountSessions())

	_, err = useCase.AcquireSession(ctx, "")
	assert.Error(t, err)
}

func TestFindAndDeleteSession(t *testing.T) {
	ctx := context.Background()
	useCase := New(time.Minute, 0)
	_, err := useCase.FindSession(ctx, "abc")
	require.ErrorIs(t, err, sessionModel.ErrSessionNotFound)

	_, err = useCase.AcquireSession(ctx, "abc")
	require.NoError(t, err)
	session, err := useCase.FindSession(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", session.ID)

	assert.True(t, useCase.DeleteSession(ctx, "abc"))
	assert.False(t, useCase.DeleteSession(ctx, "abc"))
}

func TestSweepSessions(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	useCase := New(10*time.Minute, 0).(*sessionUseCase)
	useCase.now = func() time.Time { return start }
	_, _ = useCase.AcquireSession(ctx, "old")
	useCase.now = func() time.Time { return start.Add(8 * time.Minute) }
	_, _ = useCase.AcquireSession(ctx, "new")

	assert.Zero(t, useCase.SweepSessions(ctx, start.Add(9*time.Minute)))
	assert.Equal(t, 1, useCase.SweepSessions(ctx, start.Add(11*time.Minute)))
	_, err := useCase.FindSession(ctx, "old")
	assert.ErrorIs(t, err, sessionModel.ErrSessionNotFound)
	_, err = useCase.FindSession(ctx, "new")
	assert.NoError(t, err)
}

func TestEachSession(t *testing.T) {
	ctx := context.Background()
	useCase := New(time.Minute, 0)
	for _, id := range []string{"a", "b", "c"} {
		_, _ = useCase.AcquireSession(ctx, id)
	}
	var seen int
	useCase.EachSession(ctx, func(*sessionModel.Session) bool {
		seen++
		return seen < 2
	})
	assert.Equal(t, 2, seen)
}
