package presenter

import (
	"github.com/gofiber/fiber/v2"
	"github.com/roysitumorang/storefront/actions"
	"github.com/roysitumorang/storefront/helper"
	"github.com/roysitumorang/storefront/middleware"
	"github.com/roysitumorang/storefront/modules/cart/sanitizer"
	cartUseCase "github.com/roysitumorang/storefront/modules/cart/usecase"
	"go.uber.org/zap"
)

type (
	cartHTTPHandler struct {
		cartUseCase cartUseCase.CartUseCase
	}
)

func New(cartUseCase cartUseCase.CartUseCase) *cartHTTPHandler {
	return &cartHTTPHandler{
		cartUseCase: cartUseCase,
	}
}

func (q *cartHTTPHandler) Mount(r fiber.Router) {
	r.Get("", q.FindCart).
		Delete("", q.ClearCart).
		Get("/summary", q.FindSummary).
		Post("/items", q.AddItem).
		Patch("/items/:id", q.ToggleItem).
		Delete("/items/:id", q.RemoveItem).
		Post("/actions", q.DispatchAction)
}

func (q *cartHTTPHandler) FindCart(c *fiber.Ctx) error {
	return helper.NewResponse(fiber.StatusOK).SetData(middleware.CurrentSession(c).Cart.State()).WriteResponse(c)
}

func (q *cartHTTPHandler) FindSummary(c *fiber.Ctx) error {
	state := middleware.CurrentSession(c).Cart.State()
	return helper.NewResponse(fiber.StatusOK).SetData(q.cartUseCase.Summary(state)).WriteResponse(c)
}

func (q *cartHTTPHandler) AddItem(c *fiber.Ctx) error {
	ctx := c.UserContext()
	ctxt := "CartPresenter-AddItem"
	request, err := sanitizer.AddItem(ctx, c)
	if err != nil {
		return helper.NewResponse(actions.StatusCode(err)).SetMessage(err.Error()).WriteResponse(c)
	}
	state, err := q.cartUseCase.AddItem(ctx, middleware.CurrentSession(c), request)
	if err != nil {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrAddItem")
		return helper.NewErrorResponse(err, actions.StatusCode(err)).SetData(state).WriteResponse(c)
	}
	return helper.NewResponse(fiber.StatusCreated).SetData(state).WriteResponse(c)
}

func (q *cartHTTPHandler) ToggleItem(c *fiber.Ctx) error {
	ctx := c.UserContext()
	ctxt := "CartPresenter-ToggleItem"
	itemID, toggle, err := sanitizer.ToggleItem(ctx, c)
	if err != nil {
		return helper.NewResponse(actions.StatusCode(err)).SetMessage(err.Error()).WriteResponse(c)
	}
	state, err := q.cartUseCase.ToggleItem(ctx, middleware.CurrentSession(c), itemID, toggle)
	if err != nil {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrToggleItem")
		return helper.NewResponse(actions.StatusCode(err)).SetMessage(err.Error()).SetData(state).WriteResponse(c)
	}
	return helper.NewResponse(fiber.StatusOK).SetData(state).WriteResponse(c)
}

func (q *cartHTTPHandler) RemoveItem(c *fiber.Ctx) error {
	ctx := c.UserContext()
	ctxt := "CartPresenter-RemoveItem"
	state, err := q.cartUseCase.RemoveItem(ctx, middleware.CurrentSession(c), c.Params("id"))
	if err != nil {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrRemoveItem")
		return helper.NewResponse(actions.StatusCode(err)).SetMessage(err.Error()).SetData(state).WriteResponse(c)
	}
	return helper.NewResponse(fiber.StatusOK).SetData(state).WriteResponse(c)
}

func (q *cartHTTPHandler) ClearCart(c *fiber.Ctx) error {
	ctx := c.UserContext()
	ctxt := "CartPresenter-ClearCart"
	state, err := q.cartUseCase.ClearCart(ctx, middleware.CurrentSession(c))
	if err != nil {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrClearCart")
		return helper.NewResponse(actions.StatusCode(err)).SetMessage(err.Error()).SetData(state).WriteResponse(c)
	}
	return helper.NewResponse(fiber.StatusOK).SetData(state).WriteResponse(c)
}

func (q *cartHTTPHandler) DispatchAction(c *fiber.Ctx) error {
	ctx := c.UserContext()
	action, err := sanitizer.DecodeAction(ctx, c)
	if err != nil {
		return helper.NewResponse(actions.StatusCode(err)).SetMessage(err.Error()).WriteResponse(c)
	}
	state, err := q.cartUseCase.Dispatch(ctx, middleware.CurrentSession(c), action)
	if err != nil {
		return helper.NewResponse(actions.StatusCode(err)).SetMessage(err.Error()).SetData(state).WriteResponse(c)
	}
	return helper.NewResponse(fiber.StatusOK).SetData(state).WriteResponse(c)
}
