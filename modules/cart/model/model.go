package model

import (
	"errors"
	"strings"

	productModel "github.com/roysitumorang/storefront/modules/product/model"
)

const (
	ToggleInc Toggle = "inc"
	ToggleDec Toggle = "dec"

	itemIDSeparator = ":"
)

type (
	Toggle string

	Item struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Color  string `json:"color"`
		Amount int64  `json:"amount"`
		Image  string `json:"image"`
		Price  int64  `json:"price"`
		Max    int64  `json:"max"`
	}

	AddItemRequest struct {
		ProductID string `json:"id"`
		Color     string `json:"color"`
		Amount    int64  `json:"amount"`
	}

	ToggleRequest struct {
		Value Toggle `json:"value"`
	}

	// Summary is the cart with formatted money, as shown at checkout.
	Summary struct {
		Items         []Item `json:"items"`
		TotalItems    int64  `json:"total_items"`
		Subtotal      string `json:"subtotal"`
		ShippingFee   string `json:"shipping_fee"`
		OrderTotal    string `json:"order_total"`
		OrderTotalRaw int64  `json:"order_total_raw"`
		CurrencyCode  string `json:"currency"`
	}
)

// ItemID keys a cart line by product and color. Product ids never
// contain itemIDSeparator.
func ItemID(productID, color string) string {
	return productID + itemIDSeparator + color
}

func NewItem(product productModel.Product, color string, amount int64) Item {
	return Item{
		ID:     ItemID(product.ID, color),
		Name:   product.Name,
		Color:  color,
		Amount: amount,
		Image:  product.Image,
		Price:  product.Price,
		Max:    product.Stock,
	}
}

func (q *AddItemRequest) Validate() error {
	if q.ProductID = strings.TrimSpace(q.ProductID); q.ProductID == "" {
		return errors.New("id: is required")
	}
	if q.Color = strings.TrimSpace(q.Color); q.Color == "" {
		return errors.New("color: is required")
	}
	if q.Amount < 1 {
		return errors.New("amount: must be at least 1")
	}
	return nil
}

func ParseToggle(raw string) (Toggle, error) {
	switch toggle := Toggle(strings.ToLower(strings.TrimSpace(raw))); toggle {
	case ToggleInc, ToggleDec:
		return toggle, nil
	}
	return "", errors.New("value: should be either inc or dec")
}
