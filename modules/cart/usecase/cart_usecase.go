package usecase

import (
	"context"
	"slices"

	"github.com/roysitumorang/storefront/helper"
	cartModel "github.com/roysitumorang/storefront/modules/cart/model"
	productModel "github.com/roysitumorang/storefront/modules/product/model"
	sessionModel "github.com/roysitumorang/storefront/modules/session/model"
	"go.uber.org/zap"
)

type (
	cartUseCase struct {
		productFinder ProductFinder
	}
)

func New(productFinder ProductFinder) CartUseCase {
	return &cartUseCase{
		productFinder: productFinder,
	}
}

func (q *cartUseCase) AddItem(ctx context.Context, session *sessionModel.Session, request *cartModel.AddItemRequest) (cartModel.State, error) {
	ctxt := "CartUseCase-AddItem"
	product, err := q.findProduct(ctx, session, request.ProductID)
	if err != nil {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrFindProduct")
		return session.Cart.State(), err
	}
	return q.Dispatch(ctx, session, cartModel.AddToCart{
		ID:      product.ID,
		Color:   request.Color,
		Amount:  request.Amount,
		Product: *product,
	})
}

func (q *cartUseCase) ToggleItem(ctx context.Context, session *sessionModel.Session, itemID string, value cartModel.Toggle) (cartModel.State, error) {
	return q.Dispatch(ctx, session, cartModel.ToggleCartItemAmount{ID: itemID, Value: value})
}

func (q *cartUseCase) RemoveItem(ctx context.Context, session *sessionModel.Session, itemID string) (cartModel.State, error) {
	return q.Dispatch(ctx, session, cartModel.RemoveCartItem{ID: itemID})
}

func (q *cartUseCase) ClearCart(ctx context.Context, session *sessionModel.Session) (cartModel.State, error) {
	return q.Dispatch(ctx, session, cartModel.ClearCart{})
}

// Dispatch returns the cart as it stands once the totals have been
// recounted.
func (q *cartUseCase) Dispatch(ctx context.Context, session *sessionModel.Session, action cartModel.Action) (cartModel.State, error) {
	ctxt := "CartUseCase-Dispatch"
	if _, err := session.Cart.Dispatch(action); err != nil {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrDispatch")
		return session.Cart.State(), err
	}
	return session.Cart.State(), nil
}

func (q *cartUseCase) Summary(state cartModel.State) cartModel.Summary {
	orderTotal := state.TotalAmount
	if len(state.Cart) > 0 {
		orderTotal += state.ShippingFee
	}
	return cartModel.Summary{
		Items:         slices.Clone(state.Cart),
		TotalItems:    state.TotalItems,
		Subtotal:      helper.FormatPrice(state.TotalAmount),
		ShippingFee:   helper.FormatPrice(state.ShippingFee),
		OrderTotal:    helper.FormatPrice(orderTotal),
		OrderTotalRaw: orderTotal,
		CurrencyCode:  helper.PriceCurrency(),
	}
}

// findProduct prefers the session's loaded catalog and falls back to the
// catalog store.
func (q *cartUseCase) findProduct(ctx context.Context, session *sessionModel.Session, productID string) (*productModel.Product, error) {
	products := session.Products.State().Products
	if i := slices.IndexFunc(products, func(product productModel.Product) bool { return product.ID == productID }); i >= 0 {
		product := products[i]
		return &product, nil
	}
	return q.productFinder.FindProductByID(ctx, productID)
}
