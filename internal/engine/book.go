package engine

import (
	"fmt"
	"sort"
	"sync"

	"github.com/mfalcao/goldmatch/internal/domain"
	"github.com/mfalcao/goldmatch/internal/store"
)

// Book maintains the resting buy and sell collections plus the match
// journal for one trading session. Both sides hold only orders with
// quantity > 0; an order drained by a fill is removed in the same step.
//
// One mutex guards the whole book: Add's match scan and re-sort must be
// atomic relative to other submissions, and Render snapshots both sides
// under the same lock.
type Book struct {
	mu      sync.Mutex
	buys    []*domain.Order // sorted descending by price, best bid first
	sells   []*domain.Order // sorted ascending by price, best ask first
	journal *store.Journal
}

// NewBook creates an empty order book.
func NewBook() *Book {
	return &Book{
		buys:    []*domain.Order{},
		sells:   []*domain.Order{},
		journal: store.NewJournal(),
	}
}

// Add ingests one validated order: it matches against the opposite
// side, rests any unfilled remainder on the order's own side, and
// re-sorts that side by price priority. Matching is pure arithmetic
// over validated data and cannot fail.
func (b *Book) Add(order *domain.Order) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if order.IsBuy() {
		b.sells = b.match(order, b.sells)
		if order.Quantity > 0 {
			b.buys = append(b.buys, order)
		}
		// Stable sort keeps equal-price orders in insertion order,
		// giving FIFO priority within a price level.
		sort.SliceStable(b.buys, func(i, j int) bool {
			return b.buys[i].Price > b.buys[j].Price
		})
	} else {
		b.buys = b.match(order, b.buys)
		if order.Quantity > 0 {
			b.sells = append(b.sells, order)
		}
		sort.SliceStable(b.sells, func(i, j int) bool {
			return b.sells[i].Price < b.sells[j].Price
		})
	}
}

// match scans the opposite side from its head and fills the incoming
// order against every resting order with the identical contract and
// price. There is no crossing: eligibility is strict equality, and the
// sorted order of the collection only determines scan position.
//
// The match event is recorded before quantities are decremented, so
// each event carries both orders' remaining quantity at that fill
// step. A drained resting order is removed in place and the index does
// not advance — the next element shifts into the current position.
// Returns the (possibly shortened) opposite collection.
func (b *Book) match(order *domain.Order, opposite []*domain.Order) []*domain.Order {
	i := 0
	for i < len(opposite) && order.Quantity > 0 {
		resting := opposite[i]
		if resting.Contract == order.Contract && resting.Price == order.Price {
			fill := order.Quantity
			if resting.Quantity < fill {
				fill = resting.Quantity
			}
			b.journal.Append(order.Contract, matchEvent(resting, order))
			order.Quantity -= fill
			resting.Quantity -= fill
			if resting.Quantity == 0 {
				opposite = append(opposite[:i], opposite[i+1:]...)
				continue
			}
		}
		i++
	}
	return opposite
}

// matchEvent formats the record for one fill step. Quantities are each
// order's remaining quantity before the fill is applied.
func matchEvent(resting, incoming *domain.Order) string {
	price := domain.FormatPrice(incoming.Price)
	return fmt.Sprintf("Match: %s %d@%s with %s %d@%s on %s",
		resting.Side, resting.Quantity, price,
		incoming.Side, incoming.Quantity, price,
		incoming.Contract)
}

// BuyOrders returns the resting buy side, best bid first.
func (b *Book) BuyOrders() []*domain.Order {
	b.mu.Lock()
	defer b.mu.Unlock()

	orders := make([]*domain.Order, len(b.buys))
	copy(orders, b.buys)
	return orders
}

// SellOrders returns the resting sell side, best ask first.
func (b *Book) SellOrders() []*domain.Order {
	b.mu.Lock()
	defer b.mu.Unlock()

	orders := make([]*domain.Order, len(b.sells))
	copy(orders, b.sells)
	return orders
}

// Matches returns the contract's match events in chronological order.
func (b *Book) Matches(contract string) []string {
	return b.journal.Events(contract)
}

// Journal exposes the match journal for introspection.
func (b *Book) Journal() *store.Journal {
	return b.journal
}
