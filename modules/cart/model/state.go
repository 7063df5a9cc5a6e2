package model

import (
	"errors"
	"slices"

	"github.com/roysitumorang/storefront/actions"
)

type (
	State struct {
		Cart        []Item `json:"cart"`
		TotalItems  int64  `json:"total_items"`
		TotalAmount int64  `json:"total_amount"`
		ShippingFee int64  `json:"shipping_fee"`
	}
)

func InitialState(shippingFee int64) State {
	return State{
		Cart:        []Item{},
		ShippingFee: shippingFee,
	}
}

// Reduce is the cart reducer.
func Reduce(state State, action Action) (State, error) {
	switch action := action.(type) {
	case AddToCart:
		if action.Amount < 1 {
			return state, actions.InvalidPayload(action.Type(), errors.New("amount: must be at least 1"))
		}
		id := ItemID(action.ID, action.Color)
		cart := slices.Clone(state.Cart)
		if i := slices.IndexFunc(cart, func(item Item) bool { return item.ID == id }); i >= 0 {
			cart[i].Amount = min(cart[i].Amount+action.Amount, cart[i].Max)
		} else {
			product := action.Product
			product.ID = action.ID
			item := NewItem(product, action.Color, action.Amount)
			if item.Max < 1 {
				return state, actions.InvalidPayload(action.Type(), errors.New("product is out of stock"))
			}
			item.Amount = min(item.Amount, item.Max)
			cart = append(cart, item)
		}
		state.Cart = cart
	case RemoveCartItem:
		state.Cart = slices.DeleteFunc(slices.Clone(state.Cart), func(item Item) bool {
			return item.ID == action.ID
		})
	case ToggleCartItemAmount:
		cart := slices.Clone(state.Cart)
		for i, item := range cart {
			if item.ID != action.ID {
				continue
			}
			switch action.Value {
			case ToggleInc:
				cart[i].Amount = min(item.Amount+1, item.Max)
			case ToggleDec:
				cart[i].Amount = max(item.Amount-1, 1)
			default:
				return state, actions.InvalidPayload(action.Type(), errors.New("value: should be either inc or dec"))
			}
		}
		state.Cart = cart
	case ClearCart:
		state.Cart = []Item{}
	case CountCartTotals:
		state.TotalItems, state.TotalAmount = 0, 0
		for _, item := range state.Cart {
			state.TotalItems += item.Amount
			state.TotalAmount += item.Price * item.Amount
		}
	default:
		var actionType actions.Type = "<nil>"
		if action != nil {
			actionType = action.Type()
		}
		return state, actions.Unknown(actionType)
	}
	if state.Cart == nil {
		state.Cart = []Item{}
	}
	return state, nil
}
