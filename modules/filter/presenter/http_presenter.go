package presenter

import (
	"github.com/gofiber/fiber/v2"
	"github.com/roysitumorang/storefront/actions"
	"github.com/roysitumorang/storefront/helper"
	"github.com/roysitumorang/storefront/middleware"
	filterModel "github.com/roysitumorang/storefront/modules/filter/model"
	"github.com/roysitumorang/storefront/modules/filter/sanitizer"
	"go.uber.org/zap"
)

type (
	filterHTTPHandler struct{}
)

func New() *filterHTTPHandler {
	return &filterHTTPHandler{}
}

func (q *filterHTTPHandler) Mount(r fiber.Router) {
	r.Get("", q.FindFilter).
		Get("/products", q.FindProducts).
		Get("/options", q.FindOptions).
		Put("/sort", q.UpdateSort).
		Put("/view", q.UpdateView).
		Put("/filters", q.UpdateFilters).
		Delete("/filters", q.ClearFilters).
		Post("/actions", q.DispatchAction)
}

func (q *filterHTTPHandler) FindFilter(c *fiber.Ctx) error {
	return helper.NewResponse(fiber.StatusOK).SetData(middleware.CurrentSession(c).Filter.State()).WriteResponse(c)
}

func (q *filterHTTPHandler) FindProducts(c *fiber.Ctx) error {
	ctx := c.UserContext()
	ctxt := "FilterPresenter-FindProducts"
	request, err := sanitizer.FindProducts(ctx, c)
	if err != nil {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrFindProducts")
		return helper.NewResponse(fiber.StatusBadRequest).SetMessage(err.Error()).WriteResponse(c)
	}
	state := middleware.CurrentSession(c).Filter.State()
	total := int64(len(state.FilteredProducts))
	pages, err := helper.CountPages(total, request.Limit)
	if err != nil {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrCountPages")
		return helper.NewResponse(fiber.StatusInternalServerError).SetMessage(err.Error()).WriteResponse(c)
	}
	pagination, err := helper.SetPagination(total, pages, request.Limit, request.Page, request.PaginationURL, request.UrlValues)
	if err != nil {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrSetPagination")
		return helper.NewResponse(fiber.StatusInternalServerError).SetMessage(err.Error()).WriteResponse(c)
	}
	return helper.NewResponse(fiber.StatusOK).SetData(map[string]any{
		"pagination": pagination,
		"rows":       filterModel.Page(state.FilteredProducts, request.Limit, request.Page),
		"grid_view":  state.GridView,
		"sort":       state.Sort,
	}).WriteResponse(c)
}

func (q *filterHTTPHandler) FindOptions(c *fiber.Ctx) error {
	state := middleware.CurrentSession(c).Filter.State()
	return helper.NewResponse(fiber.StatusOK).SetData(map[string]any{
		"options": filterModel.OptionsOf(state.AllProducts),
		"sorts":   filterModel.Sorts(),
	}).WriteResponse(c)
}

func (q *filterHTTPHandler) UpdateSort(c *fiber.Ctx) error {
	ctx := c.UserContext()
	action, err := sanitizer.UpdateSort(ctx, c)
	if err != nil {
		return helper.NewResponse(actions.StatusCode(err)).SetMessage(err.Error()).WriteResponse(c)
	}
	return q.dispatch(c, "FilterPresenter-UpdateSort", action, true)
}

func (q *filterHTTPHandler) UpdateView(c *fiber.Ctx) error {
	ctx := c.UserContext()
	action, err := sanitizer.UpdateView(ctx, c)
	if err != nil {
		return helper.NewResponse(actions.StatusCode(err)).SetMessage(err.Error()).WriteResponse(c)
	}
	return q.dispatch(c, "FilterPresenter-UpdateView", action, false)
}

func (q *filterHTTPHandler) UpdateFilters(c *fiber.Ctx) error {
	ctx := c.UserContext()
	action, err := sanitizer.UpdateFilters(ctx, c)
	if err != nil {
		return helper.NewResponse(actions.StatusCode(err)).SetMessage(err.Error()).WriteResponse(c)
	}
	return q.dispatch(c, "FilterPresenter-UpdateFilters", action, true)
}

func (q *filterHTTPHandler) ClearFilters(c *fiber.Ctx) error {
	return q.dispatch(c, "FilterPresenter-ClearFilters", filterModel.ClearFilters{}, true)
}

// DispatchAction applies one raw action without refiltering.
func (q *filterHTTPHandler) DispatchAction(c *fiber.Ctx) error {
	ctx := c.UserContext()
	action, err := sanitizer.DecodeAction(ctx, c)
	if err != nil {
		return helper.NewResponse(actions.StatusCode(err)).SetMessage(err.Error()).WriteResponse(c)
	}
	return q.dispatch(c, "FilterPresenter-DispatchAction", action, false)
}

// dispatch applies action to the session's filter provider; when refilter is
// set the filtered list is then recomputed and resorted.
func (q *filterHTTPHandler) dispatch(c *fiber.Ctx, ctxt string, action filterModel.Action, refilter bool) error {
	ctx := c.UserContext()
	session := middleware.CurrentSession(c)
	state, err := session.DispatchFilter(action, refilter)
	if err != nil {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrDispatch")
		return helper.NewResponse(actions.StatusCode(err)).SetMessage(err.Error()).SetData(state).WriteResponse(c)
	}
	return helper.NewResponse(fiber.StatusOK).SetData(state).WriteResponse(c)
}
