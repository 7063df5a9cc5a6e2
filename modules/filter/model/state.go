package model

import (
	"slices"
	"strconv"
	"strings"

	"github.com/roysitumorang/storefront/actions"
	productModel "github.com/roysitumorang/storefront/modules/product/model"
)

type (
	State struct {
		AllProducts      []productModel.Product `json:"all_products"`
		FilteredProducts []productModel.Product `json:"filtered_products"`
		GridView         bool                   `json:"grid_view"`
		Sort             Sort                   `json:"sort"`
		Filters          Filters                `json:"filters"`
	}
)

func InitialState() State {
	return State{
		AllProducts:      []productModel.Product{},
		FilteredProducts: []productModel.Product{},
		GridView:         true,
		Sort:             SortPriceLowest,
		Filters:          DefaultFilters(),
	}
}

// Reduce is the filter reducer.
func Reduce(state State, action Action) (State, error) {
	switch action := action.(type) {
	case LoadProducts:
		state.AllProducts = cloneProducts(action.Products)
		state.FilteredProducts = cloneProducts(action.Products)
		minPrice, maxPrice := priceBounds(action.Products)
		state.Filters.MinPrice = minPrice
		state.Filters.MaxPrice = maxPrice
		state.Filters.Price = maxPrice
	case SetGridView:
		state.GridView = true
	case SetListView:
		state.GridView = false
	case UpdateSort:
		if _, err := action.Sort.Compare(); err != nil {
			return state, actions.InvalidPayload(action.Type(), err)
		}
		state.Sort = action.Sort
	case SortProducts:
		compare, err := state.Sort.Compare()
		if err != nil {
			return state, err
		}
		products := cloneProducts(state.FilteredProducts)
		slices.SortStableFunc(products, compare)
		state.FilteredProducts = products
	case UpdateFilters:
		filters, err := state.Filters.with(action.Field, action.Value)
		if err != nil {
			return state, actions.InvalidPayload(action.Type(), err)
		}
		state.Filters = filters
	case FilterProducts:
		products := make([]productModel.Product, 0, len(state.AllProducts))
		for _, product := range state.AllProducts {
			if state.Filters.Match(product) {
				products = append(products, product)
			}
		}
		state.FilteredProducts = products
	case ClearFilters:
		filters := DefaultFilters()
		filters.MinPrice = state.Filters.MinPrice
		filters.MaxPrice = state.Filters.MaxPrice
		filters.Price = state.Filters.MaxPrice
		state.Filters = filters
	default:
		var actionType actions.Type = "<nil>"
		if action != nil {
			actionType = action.Type()
		}
		return state, actions.Unknown(actionType)
	}
	return state, nil
}

func (q Filters) with(field Field, value string) (Filters, error) {
	switch field {
	case FieldText:
		q.Text = value
	case FieldCompany:
		q.Company = strings.ToLower(strings.TrimSpace(value))
	case FieldCategory:
		q.Category = strings.ToLower(strings.TrimSpace(value))
	case FieldColor:
		q.Color = strings.TrimSpace(value)
	case FieldPrice:
		price, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return q, err
		}
		q.Price = price
	case FieldShipping:
		shipping, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return q, err
		}
		q.Shipping = shipping
	default:
		_, err := ParseField(string(field))
		return q, err
	}
	return q, nil
}

func priceBounds(products []productModel.Product) (minPrice, maxPrice int64) {
	for i, product := range products {
		if i == 0 || product.Price < minPrice {
			minPrice = product.Price
		}
		if i == 0 || product.Price > maxPrice {
			maxPrice = product.Price
		}
	}
	return
}

func cloneProducts(products []productModel.Product) []productModel.Product {
	if products == nil {
		return []productModel.Product{}
	}
	return slices.Clone(products)
}
