package model

import (
	"slices"

	"github.com/roysitumorang/storefront/actions"
)

type (
	State struct {
		IsSidebarOpen        bool      `json:"is_sidebar_open"`
		ProductsLoading      bool      `json:"products_loading"`
		ProductsError        bool      `json:"products_error"`
		Products             []Product `json:"products"`
		FeaturedProducts     []Product `json:"featured_products"`
		SingleProductLoading bool      `json:"single_product_loading"`
		SingleProductError   bool      `json:"single_product_error"`
		SingleProduct        *Product  `json:"single_product"`
	}
)

func InitialState() State {
	return State{
		Products:         []Product{},
		FeaturedProducts: []Product{},
	}
}

// Reduce is the catalog reducer.
func Reduce(state State, action Action) (State, error) {
	switch action := action.(type) {
	case SidebarOpen:
		state.IsSidebarOpen = true
	case SidebarClose:
		state.IsSidebarOpen = false
	case GetProductsBegin:
		state.ProductsLoading = true
	case GetProductsSuccess:
		state.ProductsLoading = false
		state.ProductsError = false
		state.Products = slices.Clone(action.Products)
		if state.Products == nil {
			state.Products = []Product{}
		}
		state.FeaturedProducts = FeaturedOf(state.Products)
	case GetProductsError:
		state.ProductsLoading = false
		state.ProductsError = true
	case GetSingleProductBegin:
		state.SingleProductLoading = true
		state.SingleProductError = false
	case GetSingleProductSuccess:
		product := action.Product
		state.SingleProductLoading = false
		state.SingleProduct = &product
	case GetSingleProductError:
		state.SingleProductLoading = false
		state.SingleProductError = true
	default:
		var actionType actions.Type = "<nil>"
		if action != nil {
			actionType = action.Type()
		}
		return state, actions.Unknown(actionType)
	}
	return state, nil
}

// FeaturedOf returns the featured products in their original order.
func FeaturedOf(products []Product) []Product {
	featured := []Product{}
	for _, product := range products {
		if product.Featured {
			featured = append(featured, product)
		}
	}
	return featured
}
