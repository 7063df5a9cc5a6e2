package model

import (
	"errors"

	"github.com/roysitumorang/storefront/actions"
)

type (
	// Action is the closed set of transitions the catalog reducer accepts.
	Action interface {
		Type() actions.Type
		catalogAction()
	}

	SidebarOpen  struct{}
	SidebarClose struct{}

	GetProductsBegin   struct{}
	GetProductsSuccess struct{ Products []Product }
	GetProductsError   struct{ Err error }

	GetSingleProductBegin   struct{}
	GetSingleProductSuccess struct{ Product Product }
	GetSingleProductError   struct{ Err error }
)

func (SidebarOpen) Type() actions.Type             { return actions.SidebarOpen }
func (SidebarClose) Type() actions.Type            { return actions.SidebarClose }
func (GetProductsBegin) Type() actions.Type        { return actions.GetProductsBegin }
func (GetProductsSuccess) Type() actions.Type      { return actions.GetProductsSuccess }
func (GetProductsError) Type() actions.Type        { return actions.GetProductsError }
func (GetSingleProductBegin) Type() actions.Type   { return actions.GetSingleProductBegin }
func (GetSingleProductSuccess) Type() actions.Type { return actions.GetSingleProductSuccess }
func (GetSingleProductError) Type() actions.Type   { return actions.GetSingleProductError }

func (SidebarOpen) catalogAction()             {}
func (SidebarClose) catalogAction()            {}
func (GetProductsBegin) catalogAction()        {}
func (GetProductsSuccess) catalogAction()      {}
func (GetProductsError) catalogAction()        {}
func (GetSingleProductBegin) catalogAction()   {}
func (GetSingleProductSuccess) catalogAction() {}
func (GetSingleProductError) catalogAction()   {}

// DecodeAction turns a wire envelope into a catalog action.
func DecodeAction(envelope actions.Envelope) (Action, error) {
	switch envelope.Type {
	case actions.SidebarOpen:
		return SidebarOpen{}, nil
	case actions.SidebarClose:
		return SidebarClose{}, nil
	case actions.GetProductsBegin:
		return GetProductsBegin{}, nil
	case actions.GetProductsSuccess:
		var products []Product
		if err := envelope.DecodePayload(&products); err != nil {
			return nil, err
		}
		return GetProductsSuccess{Products: products}, nil
	case actions.GetProductsError:
		return GetProductsError{Err: errors.New("dispatched products error")}, nil
	case actions.GetSingleProductBegin:
		return GetSingleProductBegin{}, nil
	case actions.GetSingleProductSuccess:
		var product Product
		if err := envelope.DecodePayload(&product); err != nil {
			return nil, err
		}
		return GetSingleProductSuccess{Product: product}, nil
	case actions.GetSingleProductError:
		return GetSingleProductError{Err: errors.New("dispatched single product error")}, nil
	}
	return nil, actions.Unknown(envelope.Type)
}
