package sanitizer

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/roysitumorang/storefront/actions"
	"github.com/roysitumorang/storefront/helper"
	"github.com/roysitumorang/storefront/models"
	filterModel "github.com/roysitumorang/storefront/modules/filter/model"
	"go.uber.org/zap"
)

const (
	ViewGrid = "grid"
	ViewList = "list"
)

type (
	PageRequest struct {
		Limit,
		Page int64
		PaginationURL string
		UrlValues     url.Values
	}

	sortRequest struct {
		Sort string `json:"sort"`
	}

	viewRequest struct {
		View string `json:"view"`
	}

	filtersRequest struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	}
)

func FindProducts(ctx context.Context, c *fiber.Ctx) (*PageRequest, error) {
	ctxt := "FilterSanitizer-FindProducts"
	originalURL, err := url.ParseRequestURI(c.OriginalURL())
	if err != nil {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrParseRequestURI")
		return nil, err
	}
	var builder strings.Builder
	_, _ = builder.WriteString(c.BaseURL())
	_, _ = builder.WriteString(originalURL.Path)
	limit, _ := strconv.ParseInt(c.Query("limit"), 10, 64)
	if limit <= 0 {
		limit = models.DefaultLimit
	}
	limit = min(limit, models.MaxLimit)
	page, _ := strconv.ParseInt(c.Query("page"), 10, 64)
	urlValues := url.Values{}
	urlValues.Set("limit", strconv.FormatInt(limit, 10))
	return &PageRequest{
		Limit:         limit,
		Page:          max(page, 1),
		PaginationURL: builder.String(),
		UrlValues:     urlValues,
	}, nil
}

func UpdateSort(ctx context.Context, c *fiber.Ctx) (filterModel.Action, error) {
	ctxt := "FilterSanitizer-UpdateSort"
	var request sortRequest
	if err := c.BodyParser(&request); err != nil {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrBodyParser")
		return nil, actions.InvalidPayload(actions.UpdateSort, err)
	}
	sort, err := filterModel.ParseSort(request.Sort)
	if err != nil {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrParseSort")
		return nil, actions.InvalidPayload(actions.UpdateSort, err)
	}
	return filterModel.UpdateSort{Sort: sort}, nil
}

func UpdateView(ctx context.Context, c *fiber.Ctx) (filterModel.Action, error) {
	ctxt := "FilterSanitizer-UpdateView"
	var request viewRequest
	if err := c.BodyParser(&request); err != nil {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrBodyParser")
		return nil, actions.InvalidPayload(actions.SetGridView, err)
	}
	switch strings.ToLower(strings.TrimSpace(request.View)) {
	case ViewGrid:
		return filterModel.SetGridView{}, nil
	case ViewList:
		return filterModel.SetListView{}, nil
	}
	err := fmt.Errorf("view: should be one of [%s %s]", ViewGrid, ViewList)
	helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrView")
	return nil, actions.InvalidPayload(actions.SetGridView, err)
}

func UpdateFilters(ctx context.Context, c *fiber.Ctx) (filterModel.Action, error) {
	ctxt := "FilterSanitizer-UpdateFilters"
	var request filtersRequest
	if err := c.BodyParser(&request); err != nil {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrBodyParser")
		return nil, actions.InvalidPayload(actions.UpdateFilters, err)
	}
	field, err := filterModel.ParseField(request.Name)
	if err != nil {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrParseField")
		return nil, actions.InvalidPayload(actions.UpdateFilters, err)
	}
	return filterModel.UpdateFilters{Field: field, Value: request.Value}, nil
}

func DecodeAction(ctx context.Context, c *fiber.Ctx) (filterModel.Action, error) {
	ctxt := "FilterSanitizer-DecodeAction"
	envelope, err := actions.Parse(c.Body())
	if err != nil {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrParse")
		return nil, err
	}
	action, err := filterModel.DecodeAction(envelope)
	if err != nil {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrDecodeAction")
	}
	return action, err
}
