package usecase

import (
	"context"

	cartModel "github.com/roysitumorang/storefront/modules/cart/model"
	productModel "github.com/roysitumorang/storefront/modules/product/model"
	sessionModel "github.com/roysitumorang/storefront/modules/session/model"
)

type (
	CartUseCase interface {
		AddItem(ctx context.Context, session *sessionModel.Session, request *cartModel.AddItemRequest) (cartModel.State, error)
		ToggleItem(ctx context.Context, session *sessionModel.Session, itemID string, value cartModel.Toggle) (cartModel.State, error)
		RemoveItem(ctx context.Context, session *sessionModel.Session, itemID string) (cartModel.State, error)
		ClearCart(ctx context.Context, session *sessionModel.Session) (cartModel.State, error)
		Dispatch(ctx context.Context, session *sessionModel.Session, action cartModel.Action) (cartModel.State, error)
		Summary(state cartModel.State) cartModel.Summary
	}

	ProductFinder interface {
		FindProductByID(ctx context.Context, productID string) (*productModel.Product, error)
	}
)
