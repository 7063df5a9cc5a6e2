package router

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/goccy/go-json"
	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/contrib/fiberzap/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/middleware/rewrite"
	"github.com/roysitumorang/storefront/config"
	_ "github.com/roysitumorang/storefront/docs"
	"github.com/roysitumorang/storefront/helper"
	"github.com/roysitumorang/storefront/middleware"
	cartPresenter "github.com/roysitumorang/storefront/modules/cart/presenter"
	filterPresenter "github.com/roysitumorang/storefront/modules/filter/presenter"
	productPresenter "github.com/roysitumorang/storefront/modules/product/presenter"
	sessionPresenter "github.com/roysitumorang/storefront/modules/session/presenter"
	userPresenter "github.com/roysitumorang/storefront/modules/user/presenter"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

const (
	shutdownTimeout = 10 * time.Second
)

func (q *Service) NewApp(ctx context.Context) *fiber.App {
	ctxt := "Router-NewApp"
	app := fiber.New(fiber.Config{
		AppName:     config.AppName,
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			statusCode := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				statusCode = e.Code
			}
			return helper.NewResponse(statusCode).SetMessage(err.Error()).WriteResponse(ctx)
		},
	})
	app.Use(
		recover.New(recover.Config{
			EnableStackTrace: true,
		}),
		fiberzap.New(fiberzap.Config{
			Logger: helper.GetLogger(),
		}),
		requestid.New(),
		compress.New(),
		rewrite.New(rewrite.Config{
			Rules: map[string]string{
				"/v1/admin/products":   "/v1/products/admin",
				"/v1/admin/products/*": "/v1/products/admin/$1",
				"/v1/admin/session":    "/v1/session/admin",
			},
		}),
		cors.New(),
	)
	if q.Config.SentryEnabled {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              q.Config.SentryDSN,
			Environment:      q.Config.Env,
			Release:          fmt.Sprintf("%s@%s", config.AppName, config.Version),
			AttachStacktrace: true,
			EnableTracing:    true,
		}); err != nil {
			helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrSentryInit")
		} else {
			app.Use(fibersentry.New(fibersentry.Config{
				Repanic:         true,
				WaitForDelivery: true,
			}))
		}
	}
	basicAuth := middleware.BasicAuth(q.Config.BasicAuthUsername, q.Config.BasicAuthPasswordHash)
	if q.Config.IsDevelopment() {
		app.Get("/swagger/*", fiberSwagger.WrapHandler)
	}
	app.Get("/ping", func(c *fiber.Ctx) error {
		data := map[string]any{
			"version":    config.Version,
			"commit":     config.Commit,
			"build":      config.Build,
			"go_version": runtime.Version(),
			"upsince":    config.Now.Format(time.RFC3339),
			"uptime":     time.Since(config.Now).String(),
			"sessions":   q.SessionUseCase.CountSessions(),
		}
		if q.NsqProducer != nil {
			data["nsq"] = "ok"
			if err := q.NsqProducer.Ping(c.UserContext()); err != nil {
				data["nsq"] = err.Error()
			}
		}
		return helper.NewResponse(fiber.StatusOK).SetData(data).WriteResponse(c)
	}).
		Get("/metrics", basicAuth, monitor.New(monitor.Config{
			APIOnly: true,
		}))
	v1 := app.Group(
		"/v1",
		middleware.Session(q.SessionStore, q.SessionUseCase),
		middleware.Identify(q.PublicKey, q.Config.JwtIssuer, q.Config.JwtAudience),
	)
	productPresenter.New(q.ProductUseCase, basicAuth).Mount(v1.Group("/products"))
	filterPresenter.New().Mount(v1.Group("/filter"))
	cartPresenter.New(q.CartUseCase).Mount(v1.Group("/cart"))
	sessionPresenter.New(q.SessionStore, q.SessionUseCase, basicAuth).Mount(v1.Group("/session"))
	userPresenter.New(q.CartUseCase, q.Config.LandingRoute).Mount(v1)
	app.Use(func(c *fiber.Ctx) error {
		return helper.NewResponse(fiber.StatusNotFound).WriteResponse(c)
	})
	return app
}

// HTTPServerMain serves until ctx is done, then shuts down gracefully.
func (q *Service) HTTPServerMain(ctx context.Context) error {
	ctxt := "Router-HTTPServerMain"
	app := q.NewApp(ctx)
	go func() {
		<-ctx.Done()
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrShutdown")
		}
	}()
	err := app.Listen(fmt.Sprintf(":%d", q.Config.Port))
	if err != nil {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrListen")
	}
	return err
}
