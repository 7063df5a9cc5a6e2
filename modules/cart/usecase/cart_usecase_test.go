package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/roysitumorang/storefront/actions"
	"github.com/roysitumorang/storefront/helper"
	cartModel "github.com/roysitumorang/storefront/modules/cart/model"
	productModel "github.com/roysitumorang/storefront/modules/product/model"
	sessionModel "github.com/roysitumorang/storefront/modules/session/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type productFinderFunc func(ctx context.Context, productID string) (*productModel.Product, error)

func (f productFinderFunc) FindProductByID(ctx context.Context, productID string) (*productModel.Product, error) {
	return f(ctx, productID)
}

func init() {
	helper.SetLogger(zap.NewNop())
}

func newSession(t *testing.T, products ...productModel.Product) *sessionModel.Session {
	t.Helper()
	session := sessionModel.New("s1", 534, time.Now())
	_, err := session.Products.Dispatch(productModel.GetProductsSuccess{Products: products})
	require.NoError(t, err)
	return session
}

func TestAddItem(t *testing.T) {
	ctx := context.Background()
	armchair := productModel.Product{ID: "armchair", Name: "Armchair", Price: 12599, Stock: 3}
	sofa := productModel.Product{ID: "sofa", Name: "Sofa", Price: 69999, Stock: 1}
	var lookups []string
	useCase := New(productFinderFunc(func(_ context.Context, productID string) (*productModel.Product, error) {
		lookups = append(lookups, productID)
		if productID == sofa.ID {
			return &sofa, nil
		}
		return nil, productModel.ErrProductNotFound
	}))
	session := newSession(t, armchair)

	state, err := useCase.AddItem(ctx, session, &cartModel.AddItemRequest{ProductID: "armchair", Color: "#ff0000", Amount: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(2), state.TotalItems)
	assert.Equal(t, int64(25198), state.TotalAmount)
	assert.Empty(t, lookups, "loaded catalog is searched first")

	state, err = useCase.AddItem(ctx, session, &cartModel.AddItemRequest{ProductID: "armchair", Color: "#ff0000", Amount: 5})
	require.NoError(t, err)
	require.Len(t, state.Cart, 1)
	assert.Equal(t, int64(3), state.Cart[0].Amount)

	state, err = useCase.AddItem(ctx, session, &cartModel.AddItemRequest{ProductID: "sofa", Color: "#000", Amount: 1})
	require.NoError(t, err)
	assert.Len(t, state.Cart, 2)
	assert.Equal(t, []string{"sofa"}, lookups)

	_, err = useCase.AddItem(ctx, session, &cartModel.AddItemRequest{ProductID: "lamp", Color: "#000", Amount: 1})
	assert.ErrorIs(t, err, productModel.ErrProductNotFound)
	assert.Len(t, session.Cart.State().Cart, 2)
}

func TestToggleRemoveClear(t *testing.T) {
	ctx := context.Background()
	armchair := productModel.Product{ID: "armchair", Name: "Armchair", Price: 100, Stock: 2}
	useCase := New(productFinderFunc(func(context.Context, string) (*productModel.Product, error) {
		return nil, productModel.ErrProductNotFound
	}))
	session := newSession(t, armchair)
	_, err := useCase.AddItem(ctx, session, &cartModel.AddItemRequest{ProductID: "armchair", Color: "red", Amount: 1})
	require.NoError(t, err)
	itemID := cartModel.ItemID("armchair", "red")

	state, err := useCase.ToggleItem(ctx, session, itemID, cartModel.ToggleInc)
	require.NoError(t, err)
	assert.Equal(t, int64(2), state.TotalItems)
	state, err = useCase.ToggleItem(ctx, session, itemID, cartModel.ToggleInc)
	require.NoError(t, err)
	assert.Equal(t, int64(2), state.TotalItems, "capped at stock")

	_, err = useCase.Dispatch(ctx, session, cartModel.ToggleCartItemAmount{ID: itemID, Value: "sideways"})
	assert.ErrorIs(t, err, actions.ErrInvalidPayload)

	state, err = useCase.RemoveItem(ctx, session, itemID)
	require.NoError(t, err)
	assert.Empty(t, state.Cart)
	assert.Zero(t, state.TotalAmount)

	_, err = useCase.AddItem(ctx, session, &cartModel.AddItemRequest{ProductID: "armchair", Color: "red", Amount: 1})
	require.NoError(t, err)
	state, err = useCase.ClearCart(ctx, session)
	require.NoError(t, err)
	assert.Empty(t, state.Cart)
	assert.Zero(t, state.TotalItems)
}

func TestSummary(t *testing.T) {
	useCase := New(nil)
	summary := useCase.Summary(cartModel.State{
		Cart:        []cartModel.Item{{ID: "a", Amount: 2, Price: 61728}},
		TotalItems:  2,
		TotalAmount: 123456,
		ShippingFee: 534,
	})
	assert.Equal(t, "$1,234.56", summary.Subtotal)
	assert.Equal(t, "$5.34", summary.ShippingFee)
	assert.Equal(t, "$1,239.90", summary.OrderTotal)
	assert.Equal(t, int64(123990), summary.OrderTotalRaw)
	assert.Equal(t, "USD", summary.CurrencyCode)

	empty := useCase.Summary(cartModel.InitialState(534))
	assert.Equal(t, "$0.00", empty.OrderTotal)
}
