package presenter

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/roysitumorang/storefront/helper"
	"github.com/roysitumorang/storefront/models"
	cartModel "github.com/roysitumorang/storefront/modules/cart/model"
	cartUseCase "github.com/roysitumorang/storefront/modules/cart/usecase"
	productModel "github.com/roysitumorang/storefront/modules/product/model"
	sessionModel "github.com/roysitumorang/storefront/modules/session/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type (
	envelope[T any] struct {
		StatusCode int    `json:"status_code"`
		Message    string `json:"message"`
		Data       T      `json:"data"`
	}

	emptyCatalog struct{}
)

func (emptyCatalog) FindProductByID(context.Context, string) (*productModel.Product, error) {
	return nil, productModel.ErrProductNotFound
}

func init() {
	helper.SetLogger(zap.NewNop())
}

func newApp(t *testing.T) (*fiber.App, *sessionModel.Session) {
	t.Helper()
	session := sessionModel.New("s1", 534, time.Now())
	_, err := session.Products.Dispatch(productModel.GetProductsSuccess{Products: []productModel.Product{
		{ID: "armchair", Name: "Armchair", Price: 12599, Stock: 2},
		{ID: "stool", Name: "Bar Stool", Price: 4099, Stock: 0},
	}})
	require.NoError(t, err)
	app := fiber.New(fiber.Config{
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
	})
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(models.CurrentSession, session)
		return c.Next()
	})
	New(cartUseCase.New(emptyCatalog{})).Mount(app.Group("/v1/cart"))
	return app, session
}

func do[T any](t *testing.T, app *fiber.App, method, target, body string) envelope[T] {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	var response envelope[T]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
	require.Equal(t, resp.StatusCode, response.StatusCode)
	return response
}

func TestCartItems(t *testing.T) {
	app, session := newApp(t)
	itemID := cartModel.ItemID("armchair", "red")

	response := do[cartModel.State](t, app, http.MethodPost, "/v1/cart/items", `{"id":"armchair","color":"red","amount":1}`)
	assert.Equal(t, fiber.StatusCreated, response.StatusCode)
	assert.Equal(t, int64(1), response.Data.TotalItems)
	assert.Equal(t, int64(12599), response.Data.TotalAmount)

	response = do[cartModel.State](t, app, http.MethodPatch, "/v1/cart/items/"+itemID, `{"value":"inc"}`)
	assert.Equal(t, fiber.StatusOK, response.StatusCode)
	assert.Equal(t, int64(2), response.Data.TotalItems)

	response = do[cartModel.State](t, app, http.MethodPatch, "/v1/cart/items/"+itemID, `{"value":"up"}`)
	assert.Equal(t, fiber.StatusBadRequest, response.StatusCode)

	summary := do[cartModel.Summary](t, app, http.MethodGet, "/v1/cart/summary", "")
	assert.Equal(t, "$251.98", summary.Data.Subtotal)
	assert.Equal(t, "$257.32", summary.Data.OrderTotal)

	response = do[cartModel.State](t, app, http.MethodDelete, "/v1/cart/items/"+itemID, "")
	assert.Equal(t, fiber.StatusOK, response.StatusCode)
	assert.Empty(t, response.Data.Cart)
	assert.Empty(t, session.Cart.State().Cart)
}

func TestAddItemRejections(t *testing.T) {
	app, _ := newApp(t)
	testCases := []struct {
		name, body string
		statusCode int
	}{
		{"unknown product", `{"id":"lamp","color":"red","amount":1}`, fiber.StatusNotFound},
		{"out of stock", `{"id":"stool","color":"red","amount":1}`, fiber.StatusBadRequest},
		{"zero amount", `{"id":"armchair","color":"red","amount":0}`, fiber.StatusBadRequest},
		{"missing color", `{"id":"armchair","amount":1}`, fiber.StatusBadRequest},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			response := do[cartModel.State](t, app, http.MethodPost, "/v1/cart/items", tc.body)
			assert.Equal(t, tc.statusCode, response.StatusCode)
		})
	}
}

func TestClearCartAndActions(t *testing.T) {
	app, _ := newApp(t)
	response := do[cartModel.State](t, app, http.MethodPost, "/v1/cart/actions", `{
		"type": "ADD_TO_CART",
		"payload": {"id": "armchair", "color": "blue", "amount": 2, "product": {"id": "armchair", "name": "Armchair", "price": 12599, "stock": 2}}
	}`)
	assert.Equal(t, fiber.StatusOK, response.StatusCode)
	assert.Equal(t, int64(2), response.Data.TotalItems)

	response = do[cartModel.State](t, app, http.MethodPost, "/v1/cart/actions", `{"type":"SIDEBAR_OPEN"}`)
	assert.Equal(t, fiber.StatusBadRequest, response.StatusCode)

	response = do[cartModel.State](t, app, http.MethodDelete, "/v1/cart", "")
	assert.Equal(t, fiber.StatusOK, response.StatusCode)
	assert.Empty(t, response.Data.Cart)
	assert.Zero(t, response.Data.TotalAmount)

	cart := do[cartModel.State](t, app, http.MethodGet, "/v1/cart", "")
	assert.Equal(t, int64(534), cart.Data.ShippingFee)
}
