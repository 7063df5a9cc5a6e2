package sanitizer

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/roysitumorang/storefront/actions"
	"github.com/roysitumorang/storefront/helper"
	cartModel "github.com/roysitumorang/storefront/modules/cart/model"
	"go.uber.org/zap"
)

func AddItem(ctx context.Context, c *fiber.Ctx) (*cartModel.AddItemRequest, error) {
	ctxt := "CartSanitizer-AddItem"
	var request cartModel.AddItemRequest
	if err := c.BodyParser(&request); err != nil {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrBodyParser")
		return nil, actions.InvalidPayload(actions.AddToCart, err)
	}
	if err := (&request).Validate(); err != nil {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrValidate")
		return nil, actions.InvalidPayload(actions.AddToCart, err)
	}
	return &request, nil
}

func ToggleItem(ctx context.Context, c *fiber.Ctx) (string, cartModel.Toggle, error) {
	ctxt := "CartSanitizer-ToggleItem"
	var request cartModel.ToggleRequest
	if err := c.BodyParser(&request); err != nil {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrBodyParser")
		return "", "", actions.InvalidPayload(actions.ToggleCartItemAmount, err)
	}
	toggle, err := cartModel.ParseToggle(string(request.Value))
	if err != nil {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrParseToggle")
		return "", "", actions.InvalidPayload(actions.ToggleCartItemAmount, err)
	}
	return strings.TrimSpace(c.Params("id")), toggle, nil
}

func DecodeAction(ctx context.Context, c *fiber.Ctx) (cartModel.Action, error) {
	ctxt := "CartSanitizer-DecodeAction"
	envelope, err := actions.Parse(c.Body())
	if err != nil {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrParse")
		return nil, err
	}
	action, err := cartModel.DecodeAction(envelope)
	if err != nil {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrDecodeAction")
	}
	return action, err
}
