package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
	"github.com/roysitumorang/storefront/config"
	"github.com/roysitumorang/storefront/helper"
	"github.com/roysitumorang/storefront/models"
	productModel "github.com/roysitumorang/storefront/modules/product/model"
	productQuery "github.com/roysitumorang/storefront/modules/product/query"
	sessionModel "github.com/roysitumorang/storefront/modules/session/model"
	serviceNsq "github.com/roysitumorang/storefront/services/nsq"
	"go.uber.org/zap"
)

var (
	errMalformedMessage = errors.New("malformed product message")
)

type (
	productUseCase struct {
		productQuery productQuery.ProductQuery
		sessions     Sessions
		publisher    serviceNsq.Publisher
		counter      atomic.Uint64
	}
)

func New(
	productQuery productQuery.ProductQuery,
	sessions Sessions,
	publisher serviceNsq.Publisher,
) ProductUseCase {
	return &productUseCase{
		productQuery: productQuery,
		sessions:     sessions,
		publisher:    publisher,
	}
}

func (q *productUseCase) FindProducts(ctx context.Context, filter *productModel.Filter) ([]productModel.Product, *models.Pagination, error) {
	ctxt := "ProductUseCase-FindProducts"
	rows, total, pages, err := q.productQuery.FindProducts(ctx, filter)
	if err != nil {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrFindProducts")
		return nil, nil, err
	}
	pagination, err := helper.SetPagination(total, pages, filter.Limit, filter.Page, filter.PaginationURL, filter.UrlValues)
	if err != nil {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrSetPagination")
		return nil, nil, err
	}
	return rows, pagination, nil
}

func (q *productUseCase) FindProductByID(ctx context.Context, productID string) (*productModel.Product, error) {
	ctxt := "ProductUseCase-FindProductByID"
	rows, _, _, err := q.productQuery.FindProducts(ctx, productModel.NewFilter(productModel.WithProductIDs(productID)))
	if err != nil {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrFindProducts")
		return nil, err
	}
	if len(rows) == 0 {
		return nil, productModel.ErrProductNotFound
	}
	return &rows[0], nil
}

func (q *productUseCase) LoadProducts(ctx context.Context, session *sessionModel.Session) (productModel.State, error) {
	ctxt := "ProductUseCase-LoadProducts"
	if _, err := session.Products.Dispatch(productModel.GetProductsBegin{}); err != nil {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrDispatchBegin")
		return session.Products.State(), err
	}
	rows, _, _, fetchErr := q.productQuery.FindProducts(ctx, productModel.NewFilter())
	if fetchErr != nil {
		helper.Log(ctx, zap.ErrorLevel, fetchErr.Error(), ctxt, "ErrFindProducts")
		state, err := session.Products.Dispatch(productModel.GetProductsError{Err: fetchErr})
		if err != nil {
			helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrDispatchError")
		}
		return state, fetchErr
	}
	state, err := session.Products.Dispatch(productModel.GetProductsSuccess{Products: rows})
	if err != nil {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrDispatchSuccess")
	}
	return state, err
}

func (q *productUseCase) LoadSingleProduct(ctx context.Context, session *sessionModel.Session, productID string) (productModel.State, error) {
	ctxt := "ProductUseCase-LoadSingleProduct"
	if _, err := session.Products.Dispatch(productModel.GetSingleProductBegin{}); err != nil {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrDispatchBegin")
		return session.Products.State(), err
	}
	product, fetchErr := q.FindProductByID(ctx, productID)
	if fetchErr != nil {
		state, err := session.Products.Dispatch(productModel.GetSingleProductError{Err: fetchErr})
		if err != nil {
			helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrDispatchError")
		}
		return state, fetchErr
	}
	state, err := session.Products.Dispatch(productModel.GetSingleProductSuccess{Product: *product})
	if err != nil {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrDispatchSuccess")
	}
	return state, err
}

func (q *productUseCase) CreateProduct(ctx context.Context, request *productModel.Product) (*productModel.Product, error) {
	ctxt := "ProductUseCase-CreateProduct"
	response, err := q.productQuery.CreateProduct(ctx, request)
	if err != nil {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrCreateProduct")
		return nil, err
	}
	q.publish(ctx, models.ActionProductCreated, response.ID)
	return response, nil
}

func (q *productUseCase) UpdateProduct(ctx context.Context, request *productModel.Product) error {
	ctxt := "ProductUseCase-UpdateProduct"
	if err := q.productQuery.UpdateProduct(ctx, request); err != nil {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrUpdateProduct")
		return err
	}
	q.publish(ctx, models.ActionProductUpdated, request.ID)
	return nil
}

// publish announces a catalog change. A failed publish leaves the change
// committed; live sessions pick it up on their next fetch.
func (q *productUseCase) publish(ctx context.Context, action, productID string) {
	ctxt := "ProductUseCase-publish"
	if q.publisher == nil {
		return
	}
	if err := q.publisher.Publish(ctx, config.TopicProduct, models.Message{Action: action, ID: productID}); err != nil {
		helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrPublish")
	}
}

func (q *productUseCase) HandleMessage(ctx context.Context, body []byte) error {
	ctxt := "ProductUseCase-HandleMessage"
	var message models.Message
	if err := json.Unmarshal(body, &message); err != nil {
		helper.Capture(ctx, zap.ErrorLevel, err, ctxt, "ErrUnmarshal")
		return fmt.Errorf("%w: %w", errMalformedMessage, err)
	}
	switch message.Action {
	case models.ActionProductCreated, models.ActionProductUpdated:
	default:
		helper.Log(ctx, zap.WarnLevel, fmt.Sprintf("unknown message action %q", message.Action), ctxt, "ErrUnknownAction")
		return nil
	}
	var reloaded, failed int
	var lastErr error
	q.sessions.EachSession(ctx, func(session *sessionModel.Session) bool {
		if _, err := q.LoadProducts(ctx, session); err != nil {
			helper.Log(ctx, zap.ErrorLevel, err.Error(), ctxt, "ErrLoadProducts")
			failed++
			lastErr = err
			return ctx.Err() == nil
		}
		reloaded++
		return true
	})
	helper.Log(ctx, zap.InfoLevel, fmt.Sprintf("%s %s: %d sessions reloaded", message.Action, message.ID, reloaded), ctxt, "")
	if failed > 0 {
		return fmt.Errorf("%d sessions not reloaded: %w", failed, lastErr)
	}
	return nil
}

func (q *productUseCase) ConsumeMessage(ctx context.Context, consumer *serviceNsq.Consumer) error {
	ctxt := "ProductUseCase-ConsumeMessage"
	helper.Log(ctx, zap.InfoLevel, fmt.Sprintf("consume topic %s", config.TopicProduct), ctxt, "")
	err := consumer.Consume(ctx, func(ctx context.Context, body []byte) error {
		now := time.Now()
		counter := q.counter.Add(1)
		err := q.HandleMessage(ctx, body)
		if errors.Is(err, errMalformedMessage) {
			// retrying cannot fix the payload
			err = nil
		}
		helper.Log(
			ctx,
			zap.InfoLevel,
			fmt.Sprintf(
				"message on topic %s@%d: %s, consumed in %s",
				config.TopicProduct,
				counter,
				helper.ByteSlice2String(body),
				time.Since(now).String(),
			),
			ctxt,
			"",
		)
		return err
	})
	if err != nil {
		helper.Capture(ctx, zap.ErrorLevel, err, ctxt, "ErrConsume")
	}
	return err
}
