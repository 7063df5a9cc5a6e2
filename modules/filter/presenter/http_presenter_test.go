package presenter

import (
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
	filterModel "github.com/roysitumorang/storefront/modules/filter/model"
	productModel "github.com/roysitumorang/storefront/modules/product/model"
	sessionModel "github.com/roysitumorang/storefront/modules/session/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope[T any] struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
	Data       T      `json:"data"`
}

func init() {
	helper.SetLogger(zap.NewNop())
}

func newApp(t *testing.T) (*fiber.App, *sessionModel.Session) {
	t.Helper()
	session := sessionModel.New("s1", 534, time.Now())
	_, err := session.Products.Dispatch(productModel.GetProductsSuccess{Products: []productModel.Product{
		{ID: "1", Name: "Armchair", Price: 12599, Category: "living room", Company: "marcos", Colors: []string{"#ff0000"}},
		{ID: "2", Name: "Bar Stool", Price: 4099, Category: "kitchen", Company: "liddy", Colors: []string{"#000"}, Shipping: true},
		{ID: "3", Name: "Computer Table", Price: 30999, Category: "office", Company: "ikea", Colors: []string{"#ffb900"}},
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
	New().Mount(app.Group("/v1/filter"))
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

func names(products []productModel.Product) []string {
	response := make([]string, len(products))
	for i, product := range products {
		response[i] = product.Name
	}
	return response
}

func TestFindFilter(t *testing.T) {
	app, _ := newApp(t)
	response := do[filterModel.State](t, app, http.MethodGet, "/v1/filter", "")
	assert.Equal(t, fiber.StatusOK, response.StatusCode)
	assert.Len(t, response.Data.AllProducts, 3)
	assert.Equal(t, []string{"Bar Stool", "Armchair", "Computer Table"}, names(response.Data.FilteredProducts))
	assert.Equal(t, int64(4099), response.Data.Filters.MinPrice)
	assert.Equal(t, int64(30999), response.Data.Filters.MaxPrice)
}

func TestUpdateSort(t *testing.T) {
	app, _ := newApp(t)
	response := do[filterModel.State](t, app, http.MethodPut, "/v1/filter/sort", `{"sort":"name-z"}`)
	assert.Equal(t, fiber.StatusOK, response.StatusCode)
	assert.Equal(t, filterModel.SortNameZ, response.Data.Sort)
	assert.Equal(t, []string{"Computer Table", "Bar Stool", "Armchair"}, names(response.Data.FilteredProducts))

	response = do[filterModel.State](t, app, http.MethodPut, "/v1/filter/sort", `{"sort":"random"}`)
	assert.Equal(t, fiber.StatusBadRequest, response.StatusCode)
}

func TestUpdateAndClearFilters(t *testing.T) {
	app, session := newApp(t)
	response := do[filterModel.State](t, app, http.MethodPut, "/v1/filter/filters", `{"name":"price","value":"15000"}`)
	assert.Equal(t, fiber.StatusOK, response.StatusCode)
	assert.Equal(t, []string{"Bar Stool", "Armchair"}, names(response.Data.FilteredProducts))

	response = do[filterModel.State](t, app, http.MethodPut, "/v1/filter/filters", `{"name":"shipping","value":"true"}`)
	assert.Equal(t, []string{"Bar Stool"}, names(response.Data.FilteredProducts))

	response = do[filterModel.State](t, app, http.MethodPut, "/v1/filter/filters", `{"name":"weight","value":"1"}`)
	assert.Equal(t, fiber.StatusBadRequest, response.StatusCode)

	response = do[filterModel.State](t, app, http.MethodDelete, "/v1/filter/filters", "")
	assert.Equal(t, fiber.StatusOK, response.StatusCode)
	assert.Len(t, response.Data.FilteredProducts, 3)
	assert.Equal(t, int64(30999), session.Filter.State().Filters.Price)
}

func TestUpdateView(t *testing.T) {
	app, _ := newApp(t)
	response := do[filterModel.State](t, app, http.MethodPut, "/v1/filter/view", `{"view":"list"}`)
	assert.False(t, response.Data.GridView)
	response = do[filterModel.State](t, app, http.MethodPut, "/v1/filter/view", `{"view":"grid"}`)
	assert.True(t, response.Data.GridView)
	response = do[filterModel.State](t, app, http.MethodPut, "/v1/filter/view", `{"view":"table"}`)
	assert.Equal(t, fiber.StatusBadRequest, response.StatusCode)
}

func TestFindProductsPaginates(t *testing.T) {
	app, _ := newApp(t)
	response := do[struct {
		Pagination models.Pagination     `json:"pagination"`
		Rows       []productModel.Product `json:"rows"`
	}](t, app, http.MethodGet, "/v1/filter/products?limit=2&page=2", "")
	assert.Equal(t, fiber.StatusOK, response.StatusCode)
	assert.Equal(t, []string{"Computer Table"}, names(response.Data.Rows))
	assert.Equal(t, int64(3), response.Data.Pagination.Info.Total)
	assert.Equal(t, int64(2), response.Data.Pagination.Info.Pages)
	assert.Empty(t, response.Data.Pagination.Links.Next)
}

func TestFindProductsOutOfRangePage(t *testing.T) {
	app, _ := newApp(t)
	response := do[struct {
		Pagination models.Pagination     `json:"pagination"`
		Rows       []productModel.Product `json:"rows"`
	}](t, app, http.MethodGet, "/v1/filter/products?limit=10&page=1844674407370955161", "")
	assert.Equal(t, fiber.StatusOK, response.StatusCode)
	assert.Empty(t, response.Data.Rows)

	response = do[struct {
		Pagination models.Pagination     `json:"pagination"`
		Rows       []productModel.Product `json:"rows"`
	}](t, app, http.MethodGet, "/v1/filter/products?limit=9223372036854775807&page=9223372036854775807", "")
	assert.Equal(t, fiber.StatusOK, response.StatusCode)
	assert.Empty(t, response.Data.Rows)
	assert.Equal(t, models.MaxLimit, response.Data.Pagination.Info.Limit)
}

func TestFindOptions(t *testing.T) {
	app, _ := newApp(t)
	response := do[struct {
		Options filterModel.Options `json:"options"`
		Sorts   []filterModel.Sort  `json:"sorts"`
	}](t, app, http.MethodGet, "/v1/filter/options", "")
	assert.Equal(t, []string{"all", "living room", "kitchen", "office"}, response.Data.Options.Categories)
	assert.Len(t, response.Data.Sorts, 4)
}

func TestDispatchAction(t *testing.T) {
	app, _ := newApp(t)
	response := do[filterModel.State](t, app, http.MethodPost, "/v1/filter/actions", `{"type":"SET_LISTVIEW"}`)
	assert.Equal(t, fiber.StatusOK, response.StatusCode)
	assert.False(t, response.Data.GridView)

	response = do[filterModel.State](t, app, http.MethodPost, "/v1/filter/actions", `{"type":"ADD_TO_CART"}`)
	assert.Equal(t, fiber.StatusBadRequest, response.StatusCode)
	assert.Contains(t, response.Message, "ADD_TO_CART")
}
