package model

import (
	"github.com/roysitumorang/storefront/actions"
	productModel "github.com/roysitumorang/storefront/modules/product/model"
)

type (
	// Action is the closed set of transitions the filter reducer accepts.
	Action interface {
		Type() actions.Type
		filterAction()
	}

	LoadProducts struct{ Products []productModel.Product }
	SetGridView  struct{}
	SetListView  struct{}
	UpdateSort   struct{ Sort Sort }
	SortProducts struct{}

	// UpdateFilters sets one filter field. Value is parsed per field:
	// price as integer cents, shipping as a boolean.
	UpdateFilters struct {
		Field Field  `json:"name"`
		Value string `json:"value"`
	}
	FilterProducts struct{}
	ClearFilters   struct{}
)

func (LoadProducts) Type() actions.Type   { return actions.LoadProducts }
func (SetGridView) Type() actions.Type    { return actions.SetGridView }
func (SetListView) Type() actions.Type    { return actions.SetListView }
func (UpdateSort) Type() actions.Type     { return actions.UpdateSort }
func (SortProducts) Type() actions.Type   { return actions.SortProducts }
func (UpdateFilters) Type() actions.Type  { return actions.UpdateFilters }
func (FilterProducts) Type() actions.Type { return actions.FilterProducts }
func (ClearFilters) Type() actions.Type   { return actions.ClearFilters }

func (LoadProducts) filterAction()   {}
func (SetGridView) filterAction()    {}
func (SetListView) filterAction()    {}
func (UpdateSort) filterAction()     {}
func (SortProducts) filterAction()   {}
func (UpdateFilters) filterAction()  {}
func (FilterProducts) filterAction() {}
func (ClearFilters) filterAction()   {}

// DecodeAction turns a wire envelope into a filter action.
func DecodeAction(envelope actions.Envelope) (Action, error) {
	switch envelope.Type {
	case actions.LoadProducts:
		var products []productModel.Product
		if err := envelope.DecodePayload(&products); err != nil {
			return nil, err
		}
		return LoadProducts{Products: products}, nil
	case actions.SetGridView:
		return SetGridView{}, nil
	case actions.SetListView:
		return SetListView{}, nil
	case actions.UpdateSort:
		var raw string
		if err := envelope.DecodePayload(&raw); err != nil {
			return nil, err
		}
		sort, err := ParseSort(raw)
		if err != nil {
			return nil, actions.InvalidPayload(envelope.Type, err)
		}
		return UpdateSort{Sort: sort}, nil
	case actions.SortProducts:
		return SortProducts{}, nil
	case actions.UpdateFilters:
		var payload struct {
			Name  string `json:"name"`
			Value string `json:"value"`
		}
		if err := envelope.DecodePayload(&payload); err != nil {
			return nil, err
		}
		field, err := ParseField(payload.Name)
		if err != nil {
			return nil, actions.InvalidPayload(envelope.Type, err)
		}
		return UpdateFilters{Field: field, Value: payload.Value}, nil
	case actions.FilterProducts:
		return FilterProducts{}, nil
	case actions.ClearFilters:
		return ClearFilters{}, nil
	}
	return nil, actions.Unknown(envelope.Type)
}
