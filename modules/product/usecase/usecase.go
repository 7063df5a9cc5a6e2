package usecase

import (
	"context"

	"github.com/roysitumorang/storefront/models"
	productModel "github.com/roysitumorang/storefront/modules/product/model"
	sessionModel "github.com/roysitumorang/storefront/modules/session/model"
	serviceNsq "github.com/roysitumorang/storefront/services/nsq"
)

type (
	ProductUseCase interface {
		FindProducts(ctx context.Context, filter *productModel.Filter) ([]productModel.Product, *models.Pagination, error)
		FindProductByID(ctx context.Context, productID string) (*productModel.Product, error)
		// LoadProducts runs the catalog fetch for session. A failed fetch is
		// recorded in the returned state and also returned as error.
		LoadProducts(ctx context.Context, session *sessionModel.Session) (productModel.State, error)
		LoadSingleProduct(ctx context.Context, session *sessionModel.Session, productID string) (productModel.State, error)
		CreateProduct(ctx context.Context, request *productModel.Product) (*productModel.Product, error)
		UpdateProduct(ctx context.Context, request *productModel.Product) error
		HandleMessage(ctx context.Context, body []byte) error
		ConsumeMessage(ctx context.Context, consumer *serviceNsq.Consumer) error
	}

	// Sessions is the part of the session registry the catalog fan-out needs.
	Sessions interface {
		EachSession(ctx context.Context, fn func(session *sessionModel.Session) bool)
	}
)
