package model

import (
	"fmt"
	"sync"
	"testing"
	"time"

	cartModel "github.com/roysitumorang/storefront/modules/cart/model"
	filterModel "github.com/roysitumorang/storefront/modules/filter/model"
	productModel "github.com/roysitumorang/storefront/modules/product/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionSyncsFilterWithCatalog(t *testing.T) {
	session := New("s1", 534, time.Now())
	_, err := session.Filter.Dispatch(filterModel.UpdateSort{Sort: filterModel.SortNameZ})
	require.NoError(t, err)

	products := []productModel.Product{
		{ID: "1", Name: "Armchair", Price: 100},
		{ID: "2", Name: "Bed", Price: 300},
	}
	_, err = session.Products.DispatchAll(
		productModel.GetProductsBegin{},
		productModel.GetProductsSuccess{Products: products},
	)
	require.NoError(t, err)

	state := session.Filter.State()
	assert.Equal(t, products, state.AllProducts)
	require.Len(t, state.FilteredProducts, 2)
	assert.Equal(t, "Bed", state.FilteredProducts[0].Name)
	assert.Equal(t, int64(300), state.Filters.Price)
}

func TestSessionIgnoresOtherCatalogActions(t *testing.T) {
	session := New("s1", 534, time.Now())
	_, err := session.Products.Dispatch(productModel.SidebarOpen{})
	require.NoError(t, err)
	assert.Empty(t, session.Filter.State().AllProducts)
}

func TestSessionCountsCartTotals(t *testing.T) {
	session := New("s1", 534, time.Now())
	product := productModel.Product{ID: "1", Name: "Armchair", Price: 100, Stock: 5}
	state, err := session.Cart.Dispatch(cartModel.AddToCart{ID: product.ID, Color: "red", Amount: 2, Product: product})
	require.NoError(t, err)
	assert.Zero(t, state.TotalItems, "returned state precedes the totals listener")

	state = session.Cart.State()
	assert.Equal(t, int64(2), state.TotalItems)
	assert.Equal(t, int64(200), state.TotalAmount)
	assert.Equal(t, int64(534), state.ShippingFee)
}

func TestSessionIdle(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	session := New("s1", 0, start)
	assert.Equal(t, 5*time.Minute, session.IdleSince(start.Add(5*time.Minute)))
	session.Touch(start.Add(4 * time.Minute))
	assert.Equal(t, time.Minute, session.IdleSince(start.Add(5*time.Minute)))
}

func TestSessionFilterFollowsLastCatalog(t *testing.T) {
	session := New("s1", 534, time.Now())
	catalog := func(n int) []productModel.Product {
		company := "marcos"
		if n%2 == 0 {
			company = "ikea"
		}
		return []productModel.Product{
			{ID: fmt.Sprintf("%d-1", n), Name: "Armchair", Price: int64(100 + n), Company: company},
			{ID: fmt.Sprintf("%d-2", n), Name: "Bed", Price: int64(300 + n), Company: "ikea"},
		}
	}

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := session.Products.Dispatch(productModel.GetProductsSuccess{Products: catalog(i)})
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, err := session.DispatchFilter(filterModel.UpdateFilters{Field: filterModel.FieldCompany, Value: "ikea"}, true)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	products := session.Products.State().Products
	state := session.Filter.State()
	assert.Equal(t, products, state.AllProducts)
	for _, product := range state.FilteredProducts {
		assert.Equal(t, "ikea", product.Company)
		assert.Contains(t, products, product)
	}
	var ikea int
	for _, product := range products {
		if product.Company == "ikea" {
			ikea++
		}
	}
	assert.Len(t, state.FilteredProducts, ikea)
}

func TestDispatchFilter(t *testing.T) {
	session := New("s1", 534, time.Now())
	_, err := session.Products.Dispatch(productModel.GetProductsSuccess{Products: []productModel.Product{
		{ID: "1", Name: "Armchair", Price: 100, Company: "marcos"},
		{ID: "2", Name: "Bed", Price: 300, Company: "ikea"},
	}})
	require.NoError(t, err)

	update := filterModel.UpdateFilters{Field: filterModel.FieldCompany, Value: "ikea"}
	state, err := session.DispatchFilter(update, false)
	require.NoError(t, err)
	assert.Len(t, state.FilteredProducts, 2, "raw dispatch leaves the view as is")

	state, err = session.DispatchFilter(update, true)
	require.NoError(t, err)
	require.Len(t, state.FilteredProducts, 1)
	assert.Equal(t, "Bed", state.FilteredProducts[0].Name)

	_, err = session.DispatchFilter(filterModel.UpdateSort{Sort: "cheapest"}, true)
	assert.Error(t, err)
}
