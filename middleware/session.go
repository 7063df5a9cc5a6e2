package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/roysitumorang/storefront/helper"
	"github.com/roysitumorang/storefront/models"
	sessionModel "github.com/roysitumorang/storefront/modules/session/model"
	sessionUseCase "github.com/roysitumorang/storefront/modules/session/usecase"
	"go.uber.org/zap"
)

const (
	SessionCookieName = "storefront_session"
)

func NewSessionStore(ttl time.Duration) *session.Store {
	return session.New(session.Config{
		Expiration:     ttl,
		KeyLookup:      "cookie:" + SessionCookieName,
		CookieHTTPOnly: true,
		CookieSameSite: fiber.CookieSameSiteLaxMode,
	})
}

// Session resolves the shopper's provider tree from the session cookie
// and stores it under models.CurrentSession.
func Session(store *session.Store, sessionUseCase sessionUseCase.SessionUseCase) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		ctxt := "Middleware-Session"
		sess, err := store.Get(c)
		if err != nil {
			helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrGet")
			return helper.NewResponse(fiber.StatusInternalServerError).SetMessage(err.Error()).WriteResponse(c)
		}
		// Save releases sess, read the id first
		sessionID := sess.ID()
		if err = sess.Save(); err != nil {
			helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrSave")
			return helper.NewResponse(fiber.StatusInternalServerError).SetMessage(err.Error()).WriteResponse(c)
		}
		current, err := sessionUseCase.AcquireSession(ctx, sessionID)
		if err != nil {
			helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrAcquireSession")
			return helper.NewResponse(fiber.StatusInternalServerError).SetMessage(err.Error()).WriteResponse(c)
		}
		c.Locals(models.CurrentSession, current)
		c.Locals(models.CurrentSessionID, sessionID)
		c.SetUserContext(helper.WithSessionID(ctx, sessionID))
		return c.Next()
	}
}

// CurrentSession returns the session stored by Session.
func CurrentSession(c *fiber.Ctx) *sessionModel.Session {
	current, _ := c.Locals(models.CurrentSession).(*sessionModel.Session)
	return current
}
