package presenter

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/roysitumorang/storefront/helper"
	"github.com/roysitumorang/storefront/models"
	cartModel "github.com/roysitumorang/storefront/modules/cart/model"
	cartUseCase "github.com/roysitumorang/storefront/modules/cart/usecase"
	sessionModel "github.com/roysitumorang/storefront/modules/session/model"
	userModel "github.com/roysitumorang/storefront/modules/user/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	helper.SetLogger(zap.NewNop())
}

func newApp(user *userModel.User) *fiber.App {
	session := sessionModel.New("s1", 534, time.Now())
	app := fiber.New(fiber.Config{
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
	})
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(models.CurrentSession, session)
		if user != nil {
			c.Locals(models.CurrentUser, user)
		}
		return c.Next()
	})
	New(cartUseCase.New(nil), "/").Mount(app.Group("/v1"))
	return app
}

func TestFindCurrentUser(t *testing.T) {
	var response struct {
		Data struct {
			User *userModel.User `json:"user"`
		} `json:"data"`
	}

	resp, err := newApp(nil).Test(httptest.NewRequest(http.MethodGet, "/v1/user", nil), -1)
	require.NoError(t, err)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
	assert.Nil(t, response.Data.User)

	resp, err = newApp(&userModel.User{Subject: "auth0|42", Name: "Jane"}).Test(httptest.NewRequest(http.MethodGet, "/v1/user", nil), -1)
	require.NoError(t, err)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
	require.NotNil(t, response.Data.User)
	assert.Equal(t, "auth0|42", response.Data.User.Subject)
}

func TestCheckout(t *testing.T) {
	resp, err := newApp(nil).Test(httptest.NewRequest(http.MethodGet, "/v1/checkout", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get(fiber.HeaderLocation))

	resp, err = newApp(&userModel.User{Subject: "auth0|42"}).Test(httptest.NewRequest(http.MethodGet, "/v1/checkout", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var response struct {
		Data struct {
			Summary cartModel.Summary `json:"summary"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
	assert.Equal(t, "$0.00", response.Data.Summary.OrderTotal)
	assert.Equal(t, "USD", response.Data.Summary.CurrencyCode)
}
