package model

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	cartModel "github.com/roysitumorang/storefront/modules/cart/model"
	filterModel "github.com/roysitumorang/storefront/modules/filter/model"
	productModel "github.com/roysitumorang/storefront/modules/product/model"
	"github.com/roysitumorang/storefront/store"
)

type (
	ProductsProvider = store.Provider[productModel.State, productModel.Action]
	FilterProvider   = store.Provider[filterModel.State, filterModel.Action]
	CartProvider     = store.Provider[cartModel.State, cartModel.Action]

	// Session is one shopper's provider tree.
	Session struct {
		ID        string
		CreatedAt time.Time
		Products  *ProductsProvider
		Filter    *FilterProvider
		Cart      *CartProvider
		lastSeen  atomic.Int64
		// filterMu serializes multi-step filter updates.
		filterMu  sync.Mutex
	}
)

var (
	ErrSessionNotFound = errors.New("session not found")
)

func New(id string, shippingFee int64, now time.Time) *Session {
	session := &Session{
		ID:        id,
		CreatedAt: now,
		Products:  store.New(productModel.Reduce, productModel.InitialState()),
		Filter:    store.New(filterModel.Reduce, filterModel.InitialState()),
		Cart:      store.New(cartModel.Reduce, cartModel.InitialState(shippingFee)),
	}
	session.Touch(now)
	session.Products.Subscribe(session.syncFilter)
	session.Cart.Subscribe(session.countTotals)
	return session
}

// syncFilter reloads the filter view whenever a catalog fetch succeeds.
// It loads the catalog current at the time it runs, so racing fetches
// leave the filter holding the last catalog committed.
func (q *Session) syncFilter(action productModel.Action, _, _ productModel.State) error {
	if _, ok := action.(productModel.GetProductsSuccess); !ok {
		return nil
	}
	q.filterMu.Lock()
	defer q.filterMu.Unlock()
	_, err := q.Filter.DispatchAll(
		filterModel.LoadProducts{Products: q.Products.State().Products},
		filterModel.FilterProducts{},
		filterModel.SortProducts{},
	)
	return err
}

func (q *Session) countTotals(action cartModel.Action, _, _ cartModel.State) error {
	if _, ok := action.(cartModel.CountCartTotals); ok {
		return nil
	}
	_, err := q.Cart.Dispatch(cartModel.CountCartTotals{})
	return err
}

func (q *Session) Touch(now time.Time) {
	q.lastSeen.Store(now.UnixNano())
}

func (q *Session) LastSeen() time.Time {
	return time.Unix(0, q.lastSeen.Load())
}

func (q *Session) IdleSince(now time.Time) time.Duration {
	return now.Sub(q.LastSeen())
}

// Refilter reapplies the active filters and sort key.
func (q *Session) Refilter() (filterModel.State, error) {
	q.filterMu.Lock()
	defer q.filterMu.Unlock()
	return q.refilter()
}

func (q *Session) refilter() (filterModel.State, error) {
	return q.Filter.DispatchAll(filterModel.FilterProducts{}, filterModel.SortProducts{})
}

// DispatchFilter applies action and, when refilter is set, reapplies the
// filters and sort key before any other filter update can interleave.
func (q *Session) DispatchFilter(action filterModel.Action, refilter bool) (filterModel.State, error) {
	q.filterMu.Lock()
	defer q.filterMu.Unlock()
	state, err := q.Filter.Dispatch(action)
	if err != nil || !refilter {
		return state, err
	}
	return q.refilter()
}
