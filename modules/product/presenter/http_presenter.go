package presenter

import (
	"github.com/gofiber/fiber/v2"
	"github.com/roysitumorang/storefront/actions"
	"github.com/roysitumorang/storefront/helper"
	"github.com/roysitumorang/storefront/middleware"
	"github.com/roysitumorang/storefront/modules/product/sanitizer"
	productUseCase "github.com/roysitumorang/storefront/modules/product/usecase"
	"go.uber.org/zap"
)

type (
	productHTTPHandler struct {
		productUseCase productUseCase.ProductUseCase
		basicAuth      fiber.Handler
	}
)

func New(
	productUseCase productUseCase.ProductUseCase,
	basicAuth fiber.Handler,
) *productHTTPHandler {
	return &productHTTPHandler{
		productUseCase: productUseCase,
		basicAuth:      basicAuth,
	}
}

func (q *productHTTPHandler) Mount(r fiber.Router) {
	r.Get("", q.FindProducts).
		Get("/featured", q.FindFeaturedProducts).
		Post("/actions", q.DispatchAction).
		Get("/admin", q.basicAuth, q.AdminFindProducts).
		Post("/admin", q.basicAuth, q.AdminCreateProduct).
		Put("/admin/:id", q.basicAuth, q.AdminUpdateProduct).
		Get("/:id", q.FindProductByID)
}

// FindProducts returns the session's catalog state, refetching it when
// ?reload=true.
func (q *productHTTPHandler) FindProducts(c *fiber.Ctx) error {
	ctx := c.UserContext()
	ctxt := "ProductPresenter-FindProducts"
	session := middleware.CurrentSession(c)
	if !c.QueryBool("reload") {
		return helper.NewResponse(fiber.StatusOK).SetData(session.Products.State()).WriteResponse(c)
	}
	state, err := q.productUseCase.LoadProducts(ctx, session)
	if err != nil {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrLoadProducts")
		return helper.NewResponse(fiber.StatusOK).SetMessage(err.Error()).SetData(state).WriteResponse(c)
	}
	return helper.NewResponse(fiber.StatusOK).SetData(state).WriteResponse(c)
}

func (q *productHTTPHandler) FindFeaturedProducts(c *fiber.Ctx) error {
	state := middleware.CurrentSession(c).Products.State()
	return helper.NewResponse(fiber.StatusOK).SetData(state.FeaturedProducts).WriteResponse(c)
}

func (q *productHTTPHandler) FindProductByID(c *fiber.Ctx) error {
	ctx := c.UserContext()
	ctxt := "ProductPresenter-FindProductByID"
	state, err := q.productUseCase.LoadSingleProduct(ctx, middleware.CurrentSession(c), c.Params("id"))
	if err != nil {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrLoadSingleProduct")
		return helper.NewErrorResponse(err, fiber.StatusOK).SetData(state).WriteResponse(c)
	}
	return helper.NewResponse(fiber.StatusOK).SetData(state).WriteResponse(c)
}

func (q *productHTTPHandler) DispatchAction(c *fiber.Ctx) error {
	ctx := c.UserContext()
	ctxt := "ProductPresenter-DispatchAction"
	action, err := sanitizer.DecodeAction(ctx, c)
	if err != nil {
		return helper.NewResponse(actions.StatusCode(err)).SetMessage(err.Error()).WriteResponse(c)
	}
	state, err := middleware.CurrentSession(c).Products.Dispatch(action)
	if err != nil {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrDispatch")
		return helper.NewResponse(actions.StatusCode(err)).SetMessage(err.Error()).SetData(state).WriteResponse(c)
	}
	return helper.NewResponse(fiber.StatusOK).SetData(state).WriteResponse(c)
}

func (q *productHTTPHandler) AdminFindProducts(c *fiber.Ctx) error {
	ctx := c.UserContext()
	ctxt := "ProductPresenter-AdminFindProducts"
	filter, err := sanitizer.FindProducts(ctx, c)
	if err != nil {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrFindProducts")
		return helper.NewResponse(fiber.StatusBadRequest).SetMessage(err.Error()).WriteResponse(c)
	}
	rows, pagination, err := q.productUseCase.FindProducts(ctx, filter)
	if err != nil {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrFindProducts")
		return helper.NewResponse(fiber.StatusBadRequest).SetMessage(err.Error()).WriteResponse(c)
	}
	return helper.NewResponse(fiber.StatusOK).SetData(map[string]any{
		"pagination": pagination,
		"rows":       rows,
	}).WriteResponse(c)
}

func (q *productHTTPHandler) AdminCreateProduct(c *fiber.Ctx) error {
	ctx := c.UserContext()
	ctxt := "ProductPresenter-AdminCreateProduct"
	request, statusCode, err := sanitizer.ValidateProduct(ctx, c)
	if err != nil {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrValidateProduct")
		return helper.NewResponse(statusCode).SetMessage(err.Error()).WriteResponse(c)
	}
	response, err := q.productUseCase.CreateProduct(ctx, request)
	if err != nil {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrCreateProduct")
		return helper.NewResponse(fiber.StatusUnprocessableEntity).SetMessage(err.Error()).WriteResponse(c)
	}
	return helper.NewResponse(fiber.StatusCreated).SetData(response).WriteResponse(c)
}

func (q *productHTTPHandler) AdminUpdateProduct(c *fiber.Ctx) error {
	ctx := c.UserContext()
	ctxt := "ProductPresenter-AdminUpdateProduct"
	request, statusCode, err := sanitizer.ValidateProduct(ctx, c)
	if err != nil {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrValidateProduct")
		return helper.NewResponse(statusCode).SetMessage(err.Error()).WriteResponse(c)
	}
	product, err := q.productUseCase.FindProductByID(ctx, c.Params("id"))
	if err != nil {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrFindProductByID")
		return helper.NewErrorResponse(err, fiber.StatusBadRequest).WriteResponse(c)
	}
	request.ID = product.ID
	request.CreatedAt = product.CreatedAt
	if err = q.productUseCase.UpdateProduct(ctx, request); err != nil {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrUpdateProduct")
		return helper.NewResponse(fiber.StatusUnprocessableEntity).SetMessage(err.Error()).WriteResponse(c)
	}
	return helper.NewResponse(fiber.StatusOK).SetData(request).WriteResponse(c)
}
