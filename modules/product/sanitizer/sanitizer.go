package sanitizer

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/roysitumorang/storefront/actions"
	"github.com/roysitumorang/storefront/helper"
	"github.com/roysitumorang/storefront/models"
	productModel "github.com/roysitumorang/storefront/modules/product/model"
	"go.uber.org/zap"
)

func FindProducts(ctx context.Context, c *fiber.Ctx) (*productModel.Filter, error) {
	ctxt := "ProductSanitizer-FindProducts"
	originalURL, err := url.ParseRequestURI(c.OriginalURL())
	if err != nil {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrParseRequestURI")
		return nil, err
	}
	var builder strings.Builder
	_, _ = builder.WriteString(c.BaseURL())
	_, _ = builder.WriteString(originalURL.Path)
	urlValues := url.Values{}
	options := []productModel.FilterOption{
		productModel.WithPaginationURL(builder.String()),
	}
	if keyword := strings.TrimSpace(c.Query("q")); keyword != "" {
		urlValues.Set("q", keyword)
		options = append(options, productModel.WithKeyword(keyword))
	}
	if featured := c.Query("featured"); featured != "" {
		value, err := strconv.ParseBool(featured)
		if err != nil {
			helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrParseBool")
			return nil, errors.New("featured: must be a boolean")
		}
		urlValues.Set("featured", featured)
		options = append(options, productModel.WithFeatured(value))
	}
	limit, _ := strconv.ParseInt(c.Query("limit"), 10, 64)
	if limit <= 0 {
		limit = models.DefaultLimit
	}
	limit = min(limit, models.MaxLimit)
	urlValues.Set("limit", strconv.FormatInt(limit, 10))
	page, _ := strconv.ParseInt(c.Query("page"), 10, 64)
	page = max(page, 1)
	options = append(
		options,
		productModel.WithLimit(limit),
		productModel.WithPage(page),
		productModel.WithUrlValues(urlValues),
	)
	return productModel.NewFilter(options...), nil
}

func ValidateProduct(ctx context.Context, c *fiber.Ctx) (*productModel.Product, int, error) {
	ctxt := "ProductSanitizer-ValidateProduct"
	var response productModel.Product
	err := c.BodyParser(&response)
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrBodyParser")
		return nil, fiberErr.Code, err
	}
	if err != nil {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrBodyParser")
		return nil, fiber.StatusBadRequest, err
	}
	if err = (&response).Validate(); err != nil {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrValidate")
		return nil, fiber.StatusBadRequest, err
	}
	return &response, fiber.StatusOK, nil
}

func DecodeAction(ctx context.Context, c *fiber.Ctx) (productModel.Action, error) {
	ctxt := "ProductSanitizer-DecodeAction"
	envelope, err := actions.Parse(c.Body())
	if err != nil {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrParse")
		return nil, err
	}
	action, err := productModel.DecodeAction(envelope)
	if err != nil {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrDecodeAction")
	}
	return action, err
}
