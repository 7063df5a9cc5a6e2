package model

import (
	"github.com/roysitumorang/storefront/actions"
	productModel "github.com/roysitumorang/storefront/modules/product/model"
)

type (
	// Action is the closed set of transitions the cart reducer accepts.
	Action interface {
		Type() actions.Type
		cartAction()
	}

	AddToCart struct {
		ID      string               `json:"id"`
		Color   string               `json:"color"`
		Amount  int64                `json:"amount"`
		Product productModel.Product `json:"product"`
	}
	RemoveCartItem       struct{ ID string }
	ToggleCartItemAmount struct {
		ID    string
		Value Toggle
	}
	ClearCart       struct{}
	CountCartTotals struct{}
)

func (AddToCart) Type() actions.Type            { return actions.AddToCart }
func (RemoveCartItem) Type() actions.Type       { return actions.RemoveCartItem }
func (ToggleCartItemAmount) Type() actions.Type { return actions.ToggleCartItemAmount }
func (ClearCart) Type() actions.Type            { return actions.ClearCart }
func (CountCartTotals) Type() actions.Type      { return actions.CountCartTotals }

func (AddToCart) cartAction()            {}
func (RemoveCartItem) cartAction()       {}
func (ToggleCartItemAmount) cartAction() {}
func (ClearCart) cartAction()            {}
func (CountCartTotals) cartAction()      {}

// DecodeAction turns a wire envelope into a cart action.
func DecodeAction(envelope actions.Envelope) (Action, error) {
	switch envelope.Type {
	case actions.AddToCart:
		var payload AddToCart
		if err := envelope.DecodePayload(&payload); err != nil {
			return nil, err
		}
		if payload.ID == "" {
			payload.ID = payload.Product.ID
		}
		return payload, nil
	case actions.RemoveCartItem:
		var id string
		if err := envelope.DecodePayload(&id); err != nil {
			return nil, err
		}
		return RemoveCartItem{ID: id}, nil
	case actions.ToggleCartItemAmount:
		var payload struct {
			ID    string `json:"id"`
			Value string `json:"value"`
		}
		if err := envelope.DecodePayload(&payload); err != nil {
			return nil, err
		}
		toggle, err := ParseToggle(payload.Value)
		if err != nil {
			return nil, actions.InvalidPayload(envelope.Type, err)
		}
		return ToggleCartItemAmount{ID: payload.ID, Value: toggle}, nil
	case actions.ClearCart:
		return ClearCart{}, nil
	case actions.CountCartTotals:
		return CountCartTotals{}, nil
	}
	return nil, actions.Unknown(envelope.Type)
}
