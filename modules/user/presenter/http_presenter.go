package presenter

import (
	"github.com/gofiber/fiber/v2"
	"github.com/roysitumorang/storefront/helper"
	"github.com/roysitumorang/storefront/middleware"
	cartUseCase "github.com/roysitumorang/storefront/modules/cart/usecase"
)

type (
	userHTTPHandler struct {
		cartUseCase  cartUseCase.CartUseCase
		landingRoute string
	}
)

func New(
	cartUseCase cartUseCase.CartUseCase,
	landingRoute string,
) *userHTTPHandler {
	return &userHTTPHandler{
		cartUseCase:  cartUseCase,
		landingRoute: landingRoute,
	}
}

// Mount registers /user and the private /checkout view on the version group.
func (q *userHTTPHandler) Mount(r fiber.Router) {
	r.Get("/user", q.FindCurrentUser).
		Get("/checkout", middleware.PrivateRoute(q.landingRoute), q.Checkout)
}

func (q *userHTTPHandler) FindCurrentUser(c *fiber.Ctx) error {
	return helper.NewResponse(fiber.StatusOK).SetData(map[string]any{
		"user": middleware.CurrentUser(c),
	}).WriteResponse(c)
}

func (q *userHTTPHandler) Checkout(c *fiber.Ctx) error {
	state := middleware.CurrentSession(c).Cart.State()
	return helper.NewResponse(fiber.StatusOK).SetData(map[string]any{
		"user":    middleware.CurrentUser(c),
		"summary": q.cartUseCase.Summary(state),
	}).WriteResponse(c)
}
