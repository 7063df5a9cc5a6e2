package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/roysitumorang/storefront/helper"
	sessionModel "github.com/roysitumorang/storefront/modules/session/model"
	"go.uber.org/zap"
)

type (
	sessionUseCase struct {
		mu          sync.RWMutex
		sessions    map[string]*sessionModel.Session
		ttl         time.Duration
		shippingFee int64
		onCreate    []OnCreate
		now         func() time.Time
	}
)

func New(
	ttl time.Duration,
	shippingFee int64,
	onCreate ...OnCreate,
) SessionUseCase {
	return &sessionUseCase{
		sessions:    map[string]*sessionModel.Session{},
		ttl:         ttl,
		shippingFee: shippingFee,
		onCreate:    onCreate,
		now:         time.Now,
	}
}

func (q *sessionUseCase) AcquireSession(ctx context.Context, sessionID string) (*sessionModel.Session, error) {
	ctxt := "SessionUseCase-AcquireSession"
	if sessionID == "" {
		return nil, errors.New("session id is required")
	}
	now := q.now()
	q.mu.RLock()
	session, ok := q.sessions[sessionID]
	q.mu.RUnlock()
	if ok {
		session.Touch(now)
		return session, nil
	}
	q.mu.Lock()
	if session, ok = q.sessions[sessionID]; ok {
		q.mu.Unlock()
		session.Touch(now)
		return session, nil
	}
	session = sessionModel.New(sessionID, q.shippingFee, now)
	q.sessions[sessionID] = session
	q.mu.Unlock()
	for _, onCreate := range q.onCreate {
		if err := onCreate(ctx, session); err != nil {
			helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrOnCreate")
		}
	}
	return session, nil
}

func (q *sessionUseCase) FindSession(_ context.Context, sessionID string) (*sessionModel.Session, error) {
	q.mu.RLock()
	defer q.mu.RUnlock()
	session, ok := q.sessions[sessionID]
	if !ok {
		return nil, sessionModel.ErrSessionNotFound
	}
	return session, nil
}

func (q *sessionUseCase) EachSession(_ context.Context, fn func(session *sessionModel.Session) bool) {
	q.mu.RLock()
	sessions := make([]*sessionModel.Session, 0, len(q.sessions))
	for _, session := range q.sessions {
		sessions = append(sessions, session)
	}
	q.mu.RUnlock()
	for _, session := range sessions {
		if !fn(session) {
			return
		}
	}
}

func (q *sessionUseCase) DeleteSession(_ context.Context, sessionID string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	_, ok := q.sessions[sessionID]
	delete(q.sessions, sessionID)
	return ok
}

// SweepSessions drops sessions idle for longer than the TTL.
func (q *sessionUseCase) SweepSessions(ctx context.Context, now time.Time) int {
	ctxt := "SessionUseCase-SweepSessions"
	q.mu.Lock()
	var n int
	for sessionID, session := range q.sessions {
		if session.IdleSince(now) > q.ttl {
			delete(q.sessions, sessionID)
			n++
		}
	}
	q.mu.Unlock()
	if n > 0 {
		helper.Log(ctx, zap.InfoLevel, fmt.Sprintf("%d idle sessions evicted", n), ctxt, "")
	}
	return n
}

func (q *sessionUseCase) CountSessions() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.sessions)
}
