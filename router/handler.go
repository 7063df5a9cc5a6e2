package router

import (
	"context"
	"crypto/rsa"
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/roysitumorang/storefront/config"
	"github.com/roysitumorang/storefront/helper"
	"github.com/roysitumorang/storefront/keys"
	"github.com/roysitumorang/storefront/middleware"
	"github.com/roysitumorang/storefront/migration"
	cartUseCase "github.com/roysitumorang/storefront/modules/cart/usecase"
	productQuery "github.com/roysitumorang/storefront/modules/product/query"
	productUseCase "github.com/roysitumorang/storefront/modules/product/usecase"
	sessionModel "github.com/roysitumorang/storefront/modules/session/model"
	sessionUseCase "github.com/roysitumorang/storefront/modules/session/usecase"
	serviceNsq "github.com/roysitumorang/storefront/services/nsq"
	"go.uber.org/zap"
)

type (
	Service struct {
		Config         *config.Config
		DbRead,
		DbWrite *pgxpool.Pool
		PublicKey      *rsa.PublicKey
		SessionStore   *session.Store
		NsqProducer    *serviceNsq.Producer
		Migration      *migration.Migration
		ProductUseCase productUseCase.ProductUseCase
		SessionUseCase sessionUseCase.SessionUseCase
		CartUseCase    cartUseCase.CartUseCase
	}
)

func MakeHandler(ctx context.Context, cfg *config.Config) (*Service, error) {
	ctxt := "Router-MakeHandler"
	location, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		helper.Capture(ctx, zap.ErrorLevel, err, ctxt, "ErrLoadLocation")
		return nil, err
	}
	time.Local = location
	if err = helper.SetLogLevel(cfg.LogLevel); err != nil {
		helper.Capture(ctx, zap.ErrorLevel, err, ctxt, "ErrSetLogLevel")
		return nil, err
	}
	publicKey, err := keys.InitPublicKey()
	if err != nil {
		helper.Capture(ctx, zap.ErrorLevel, err, ctxt, "ErrInitPublicKey")
		return nil, err
	}
	dbRead, err := config.GetDbReadOnly(ctx, cfg)
	if err != nil {
		helper.Capture(ctx, zap.ErrorLevel, err, ctxt, "ErrGetDbReadOnly")
		return nil, err
	}
	dbWrite, err := config.GetDbWriteOnly(ctx, cfg)
	if err != nil {
		helper.Capture(ctx, zap.ErrorLevel, err, ctxt, "ErrGetDbWriteOnly")
		return nil, err
	}
	nsqProducer, err := serviceNsq.NewProducer(ctx, cfg.NsqAddress, serviceNsq.NewConfig())
	if err != nil {
		helper.Capture(ctx, zap.ErrorLevel, err, ctxt, "ErrNewProducer")
		return nil, err
	}
	var productUseCaseInstance productUseCase.ProductUseCase
	sessionUseCaseInstance := sessionUseCase.New(
		cfg.SessionTTL,
		cfg.ShippingFee,
		func(ctx context.Context, session *sessionModel.Session) error {
			_, err := productUseCaseInstance.LoadProducts(ctx, session)
			return err
		},
	)
	productUseCaseInstance = productUseCase.New(
		productQuery.New(dbRead, dbWrite),
		sessionUseCaseInstance,
		nsqProducer,
	)
	return &Service{
		Config:         cfg,
		DbRead:         dbRead,
		DbWrite:        dbWrite,
		PublicKey:      publicKey,
		SessionStore:   middleware.NewSessionStore(cfg.SessionTTL),
		NsqProducer:    nsqProducer,
		Migration:      migration.New(dbWrite),
		ProductUseCase: productUseCaseInstance,
		SessionUseCase: sessionUseCaseInstance,
		CartUseCase:    cartUseCase.New(productUseCaseInstance),
	}, nil
}

// Close releases the connections opened by MakeHandler.
func (q *Service) Close() {
	q.NsqProducer.Stop()
	q.DbRead.Close()
	q.DbWrite.Close()
}
