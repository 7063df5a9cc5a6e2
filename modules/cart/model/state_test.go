package model

import (
	"testing"

	"github.com/roysitumorang/storefront/actions"
	productModel "github.com/roysitumorang/storefront/modules/product/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var chair = productModel.Product{ID: "rec1", Name: "accent chair", Price: 2599, Image: "chair.jpg", Stock: 3}

func reduceAll(t *testing.T, state State, actionList ...Action) State {
	t.Helper()
	for _, action := range actionList {
		var err error
		state, err = Reduce(state, action)
		require.NoError(t, err, action.Type())
	}
	return state
}

func TestAddToCart(t *testing.T) {
	t.Run("new line", func(t *testing.T) {
		state := reduceAll(t, InitialState(534), AddToCart{ID: chair.ID, Color: "#ff0000", Amount: 2, Product: chair})
		require.Len(t, state.Cart, 1)
		assert.Equal(t, Item{ID: "rec1:#ff0000", Name: "accent chair", Color: "#ff0000", Amount: 2, Image: "chair.jpg", Price: 2599, Max: 3}, state.Cart[0])
	})

	t.Run("merges and caps at stock", func(t *testing.T) {
		state := reduceAll(t, InitialState(534),
			AddToCart{ID: chair.ID, Color: "#ff0000", Amount: 2, Product: chair},
			AddToCart{ID: chair.ID, Color: "#ff0000", Amount: 2, Product: chair},
		)
		require.Len(t, state.Cart, 1)
		assert.Equal(t, int64(3), state.Cart[0].Amount)
	})

	t.Run("colors are separate lines", func(t *testing.T) {
		state := reduceAll(t, InitialState(534),
			AddToCart{ID: chair.ID, Color: "#ff0000", Amount: 1, Product: chair},
			AddToCart{ID: chair.ID, Color: "#00ff00", Amount: 1, Product: chair},
		)
		assert.Len(t, state.Cart, 2)
	})

	t.Run("out of stock", func(t *testing.T) {
		soldOut := chair
		soldOut.Stock = 0
		_, err := Reduce(InitialState(534), AddToCart{ID: soldOut.ID, Color: "#ff0000", Amount: 1, Product: soldOut})
		assert.ErrorIs(t, err, actions.ErrInvalidPayload)
	})

	t.Run("zero amount", func(t *testing.T) {
		_, err := Reduce(InitialState(534), AddToCart{ID: chair.ID, Color: "#ff0000", Product: chair})
		assert.ErrorIs(t, err, actions.ErrInvalidPayload)
	})
}

func TestToggleAndRemove(t *testing.T) {
	state := reduceAll(t, InitialState(534), AddToCart{ID: chair.ID, Color: "#ff0000", Amount: 1, Product: chair})
	id := ItemID(chair.ID, "#ff0000")

	state = reduceAll(t, state, ToggleCartItemAmount{ID: id, Value: ToggleDec})
	assert.Equal(t, int64(1), state.Cart[0].Amount)

	state = reduceAll(t, state,
		ToggleCartItemAmount{ID: id, Value: ToggleInc},
		ToggleCartItemAmount{ID: id, Value: ToggleInc},
		ToggleCartItemAmount{ID: id, Value: ToggleInc},
	)
	assert.Equal(t, int64(3), state.Cart[0].Amount)

	_, err := Reduce(state, ToggleCartItemAmount{ID: id, Value: "twice"})
	assert.ErrorIs(t, err, actions.ErrInvalidPayload)

	removed := reduceAll(t, state, RemoveCartItem{ID: id})
	assert.Empty(t, removed.Cart)
	assert.Len(t, state.Cart, 1)
}

func TestCountCartTotals(t *testing.T) {
	table := productModel.Product{ID: "rec2", Name: "dining table", Price: 1000, Stock: 10}
	state := reduceAll(t, InitialState(534),
		AddToCart{ID: chair.ID, Color: "#ff0000", Amount: 2, Product: chair},
		AddToCart{ID: table.ID, Color: "#000", Amount: 3, Product: table},
		CountCartTotals{},
	)
	assert.Equal(t, int64(5), state.TotalItems)
	assert.Equal(t, int64(2*2599+3*1000), state.TotalAmount)
	assert.Equal(t, int64(534), state.ShippingFee)

	state = reduceAll(t, state, ClearCart{}, CountCartTotals{})
	assert.Empty(t, state.Cart)
	assert.Zero(t, state.TotalItems)
	assert.Zero(t, state.TotalAmount)
}

func TestReduceUnknownAction(t *testing.T) {
	_, err := Reduce(InitialState(0), nil)
	assert.ErrorIs(t, err, actions.ErrUnknownAction)
}

func TestDecodeAction(t *testing.T) {
	action, err := DecodeAction(actions.Envelope{Type: actions.ToggleCartItemAmount, Payload: []byte(`{"id":"x","value":"INC"}`)})
	require.NoError(t, err)
	assert.Equal(t, ToggleCartItemAmount{ID: "x", Value: ToggleInc}, action)

	action, err = DecodeAction(actions.Envelope{Type: actions.RemoveCartItem, Payload: []byte(`"x"`)})
	require.NoError(t, err)
	assert.Equal(t, RemoveCartItem{ID: "x"}, action)

	_, err = DecodeAction(actions.Envelope{Type: actions.SortProducts})
	assert.ErrorIs(t, err, actions.ErrUnknownAction)
}

func TestItemIDKeepsProductAndColorApart(t *testing.T) {
	assert.NotEqual(t, ItemID("ab", "c"), ItemID("a", "bc"))
	assert.Equal(t, ItemID(chair.ID, "#ff0000"), ItemID(chair.ID, "#ff0000"))

	state := reduceAll(t, InitialState(534),
		AddToCart{ID: "ab", Color: "c", Amount: 1, Product: productModel.Product{ID: "ab", Price: 100, Stock: 5}},
		AddToCart{ID: "a", Color: "bc", Amount: 1, Product: productModel.Product{ID: "a", Price: 200, Stock: 5}},
	)
	assert.Len(t, state.Cart, 2, "distinct product/color pairs stay distinct lines")
}
