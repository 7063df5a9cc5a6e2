// Package actions holds the action type vocabulary shared by every
// reducer and the {type, payload} envelope used to dispatch over HTTP.
package actions

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
)

type (
	Type string

	Envelope struct {
		Type    Type            `json:"type"`
		Payload json.RawMessage `json:"payload,omitempty"`
	}
)

const (
	SidebarOpen  Type = "SIDEBAR_OPEN"
	SidebarClose Type = "SIDEBAR_CLOSE"

	GetProductsBegin   Type = "GET_PRODUCTS_BEGIN"
	GetProductsSuccess Type = "GET_PRODUCTS_SUCCESS"
	GetProductsError   Type = "GET_PRODUCTS_ERROR"

	GetSingleProductBegin   Type = "GET_SINGLE_PRODUCT_BEGIN"
	GetSingleProductSuccess Type = "GET_SINGLE_PRODUCT_SUCCESS"
	GetSingleProductError   Type = "GET_SINGLE_PRODUCT_ERROR"

	LoadProducts   Type = "LOAD_PRODUCTS"
	SetGridView    Type = "SET_GRIDVIEW"
	SetListView    Type = "SET_LISTVIEW"
	UpdateSort     Type = "UPDATE_SORT"
	SortProducts   Type = "SORT_PRODUCTS"
	UpdateFilters  Type = "UPDATE_FILTERS"
	FilterProducts Type = "FILTER_PRODUCTS"
	ClearFilters   Type = "CLEAR_FILTERS"

	AddToCart            Type = "ADD_TO_CART"
	RemoveCartItem       Type = "REMOVE_CART_ITEM"
	ToggleCartItemAmount Type = "TOGGLE_CART_ITEM_AMOUNT"
	ClearCart            Type = "CLEAR_CART"
	CountCartTotals      Type = "COUNT_CART_TOTALS"
)

var (
	ErrUnknownAction  = errors.New("unknown action type")
	ErrInvalidPayload = errors.New("invalid action payload")
)

// Unknown reports an action type a reducer does not handle.
func Unknown(actionType Type) error {
	return fmt.Errorf("%w: no matching %q action type", ErrUnknownAction, actionType)
}

// InvalidPayload wraps a payload decoding or validation failure.
func InvalidPayload(actionType Type, err error) error {
	return fmt.Errorf("%w for %q: %w", ErrInvalidPayload, actionType, err)
}

// Normalize upper-cases and trims a raw type name.
func Normalize(raw string) Type {
	return Type(strings.ToUpper(strings.TrimSpace(raw)))
}

// DecodePayload unmarshals the envelope payload into out. A missing
// payload is an error for actions that carry one.
func (q Envelope) DecodePayload(out any) error {
	if len(q.Payload) == 0 || string(q.Payload) == "null" {
		return InvalidPayload(q.Type, errors.New("payload is required"))
	}
	if err := json.Unmarshal(q.Payload, out); err != nil {
		return InvalidPayload(q.Type, err)
	}
	return nil
}

// Parse decodes a wire envelope and normalizes its type name.
func Parse(body []byte) (Envelope, error) {
	var envelope Envelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return envelope, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	if envelope.Type = Normalize(string(envelope.Type)); envelope.Type == "" {
		return envelope, fmt.Errorf("%w: type is required", ErrInvalidPayload)
	}
	return envelope, nil
}

// StatusCode maps a decode or dispatch error to an HTTP status.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidPayload), errors.Is(err, ErrUnknownAction):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
