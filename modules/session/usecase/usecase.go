package usecase

import (
	"context"
	"time"

	sessionModel "github.com/roysitumorang/storefront/modules/session/model"
)

type (
	SessionUseCase interface {
		AcquireSession(ctx context.Context, sessionID string) (*sessionModel.Session, error)
		FindSession(ctx context.Context, sessionID string) (*sessionModel.Session, error)
		EachSession(ctx context.Context, fn func(session *sessionModel.Session) bool)
		DeleteSession(ctx context.Context, sessionID string) bool
		SweepSessions(ctx context.Context, now time.Time) int
		CountSessions() int
	}

	// OnCreate runs once for every new session, outside the registry lock.
	OnCreate func(ctx context.Context, session *sessionModel.Session) error
)
