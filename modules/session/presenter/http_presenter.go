package presenter

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/roysitumorang/storefront/helper"
	"github.com/roysitumorang/storefront/middleware"
	sessionUseCase "github.com/roysitumorang/storefront/modules/session/usecase"
	"go.uber.org/zap"
)

type (
	sessionHTTPHandler struct {
		store          *session.Store
		sessionUseCase sessionUseCase.SessionUseCase
		basicAuth      fiber.Handler
	}
)

func New(
	store *session.Store,
	sessionUseCase sessionUseCase.SessionUseCase,
	basicAuth fiber.Handler,
) *sessionHTTPHandler {
	return &sessionHTTPHandler{
		store:          store,
		sessionUseCase: sessionUseCase,
		basicAuth:      basicAuth,
	}
}

func (q *sessionHTTPHandler) Mount(r fiber.Router) {
	r.Get("", q.FindCurrentSession).
		Delete("", q.DeleteCurrentSession).
		Get("/admin", q.basicAuth, q.AdminCountSessions)
}

func (q *sessionHTTPHandler) FindCurrentSession(c *fiber.Ctx) error {
	current := middleware.CurrentSession(c)
	return helper.NewResponse(fiber.StatusOK).SetData(map[string]any{
		"id":         current.ID,
		"created_at": current.CreatedAt,
		"last_seen":  current.LastSeen(),
		"user":       middleware.CurrentUser(c),
		"products":   current.Products.State(),
		"filter":     current.Filter.State(),
		"cart":       current.Cart.State(),
	}).WriteResponse(c)
}

// DeleteCurrentSession drops the shopper's provider tree and expires the
// session cookie.
func (q *sessionHTTPHandler) DeleteCurrentSession(c *fiber.Ctx) error {
	ctx := c.UserContext()
	ctxt := "SessionPresenter-DeleteCurrentSession"
	current := middleware.CurrentSession(c)
	q.sessionUseCase.DeleteSession(ctx, current.ID)
	sess, err := q.store.Get(c)
	if err != nil {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrGet")
		return helper.NewResponse(fiber.StatusInternalServerError).SetMessage(err.Error()).WriteResponse(c)
	}
	if err = sess.Destroy(); err != nil {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrDestroy")
		return helper.NewResponse(fiber.StatusInternalServerError).SetMessage(err.Error()).WriteResponse(c)
	}
	return helper.NewResponse(fiber.StatusNoContent).WriteResponse(c)
}

func (q *sessionHTTPHandler) AdminCountSessions(c *fiber.Ctx) error {
	return helper.NewResponse(fiber.StatusOK).SetData(map[string]any{
		"sessions":   q.sessionUseCase.CountSessions(),
		"checked_at": time.Now(),
	}).WriteResponse(c)
}
