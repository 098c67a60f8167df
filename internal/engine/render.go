package engine

import (
	"fmt"
	"strings"

	"github.com/google/btree"

	"github.com/mfalcao/goldmatch/internal/domain"
)

// Render formats the current book state as a deterministic report and
// returns it without writing anywhere; callers pick the sink. Contracts
// appear in lexicographic order; within a contract, match events come
// first in chronological order, then the resting orders of each side in
// the side's current sort order. A contract with events but no resting
// orders gets a no-open-orders notice. The renderer never mutates
// state and never fails: a stale zero-quantity entry truncates that
// side's listing instead of erroring.
func (b *Book) Render() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	buysByContract := groupByContract(b.buys)
	sellsByContract := groupByContract(b.sells)

	// Union of every contract seen on either side or in the journal,
	// held in a B-tree so iteration is lexicographic.
	const degree = 32
	contracts := btree.NewG[string](degree, func(x, y string) bool { return x < y })
	for contract := range buysByContract {
		contracts.ReplaceOrInsert(contract)
	}
	for contract := range sellsByContract {
		contracts.ReplaceOrInsert(contract)
	}
	for _, contract := range b.journal.Contracts() {
		contracts.ReplaceOrInsert(contract)
	}

	var sb strings.Builder
	contracts.Ascend(func(contract string) bool {
		for _, event := range b.journal.Events(contract) {
			fmt.Fprintf(&sb, "\n%s\n", event)
		}
		fmt.Fprintf(&sb, "\n%s: \n", contract)

		buys := buysByContract[contract]
		sells := sellsByContract[contract]

		for _, order := range buys {
			if order.Quantity == 0 {
				break
			}
			sb.WriteString("BUY ORDERS:\n")
			fmt.Fprintf(&sb, "%s\n", order)
		}
		if len(sells) > 0 {
			for _, order := range sells {
				if order.Quantity == 0 {
					break
				}
				sb.WriteString("SELL ORDERS:\n")
				fmt.Fprintf(&sb, "%s\n", order)
			}
		} else if len(buys) == 0 {
			sb.WriteString("No open orders.\n")
		}
		return true
	})

	return sb.String()
}

// Display writes the rendered report to standard output.
func (b *Book) Display() {
	fmt.Print(b.Render())
}

// groupByContract buckets orders by contract, preserving the slice's
// current sort order within each bucket.
func groupByContract(orders []*domain.Order) map[string][]*domain.Order {
	grouped := make(map[string][]*domain.Order)
	for _, order := range orders {
		grouped[order.Contract] = append(grouped[order.Contract], order)
	}
	return grouped
}
