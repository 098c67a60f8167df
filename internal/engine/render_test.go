package engine

import (
	"strings"
	"testing"

	"github.com/mfalcao/goldmatch/internal/domain"
)

func lines(ls ...string) string {
	return strings.Join(ls, "\n") + "\n"
}

func TestRender_NoMatches(t *testing.T) {
	book := NewBook()
	book.Add(mustOrder(t, domain.SideBuy, 101.0, 10, "GCQ4 Comdty"))
	book.Add(mustOrder(t, domain.SideSell, 102.0, 10, "GCQ4 Comdty"))

	want := lines(
		"",
		"GCQ4 Comdty: ",
		"BUY ORDERS:",
		"Price: 101.0, Quantity: 10, Contract: GCQ4 Comdty",
		"SELL ORDERS:",
		"Price: 102.0, Quantity: 10, Contract: GCQ4 Comdty",
	)
	if got := book.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_FullMatchLeavesNoOpenOrders(t *testing.T) {
	book := NewBook()
	book.Add(mustOrder(t, domain.SideBuy, 101.0, 10, "GCQ4 Comdty"))
	book.Add(mustOrder(t, domain.SideSell, 101.0, 10, "GCQ4 Comdty"))

	want := lines(
		"",
		"Match: BUY 10@101.0 with SELL 10@101.0 on GCQ4 Comdty",
		"",
		"GCQ4 Comdty: ",
		"No open orders.",
	)
	if got := book.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

// The fixed driver session: a full match on the August contract and a
// partial fill on the December contract, rendered in lexicographic
// contract order.
func TestRender_SessionReport(t *testing.T) {
	book := NewBook()
	book.Add(mustOrder(t, domain.SideBuy, 1500, 2, "GCQ4 Comdty"))
	book.Add(mustOrder(t, domain.SideSell, 1500, 2, "GCQ4 Comdty"))
	book.Add(mustOrder(t, domain.SideBuy, 1550, 3, "GCZ4 Comdty"))
	book.Add(mustOrder(t, domain.SideSell, 1550, 1, "GCZ4 Comdty"))

	want := lines(
		"",
		"Match: BUY 2@1500.0 with SELL 2@1500.0 on GCQ4 Comdty",
		"",
		"GCQ4 Comdty: ",
		"No open orders.",
		"",
		"Match: BUY 3@1550.0 with SELL 1@1550.0 on GCZ4 Comdty",
		"",
		"GCZ4 Comdty: ",
		"BUY ORDERS:",
		"Price: 1550.0, Quantity: 2, Contract: GCZ4 Comdty",
	)
	if got := book.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

// Only total absence of both sides produces the notice: a contract with
// buys and no sells renders its buys and nothing else.
func TestRender_BuyOnlyContractGetsNoNotice(t *testing.T) {
	book := NewBook()
	book.Add(mustOrder(t, domain.SideBuy, 100.0, 5, "GCQ4 Comdty"))

	got := book.Render()
	if strings.Contains(got, "No open orders.") {
		t.Errorf("unexpected no-open-orders notice:\n%s", got)
	}
	if strings.Contains(got, "SELL ORDERS:") {
		t.Errorf("unexpected sell label:\n%s", got)
	}
}

// Each resting order is rendered under its own side label.
func TestRender_LabelPerOrder(t *testing.T) {
	book := NewBook()
	book.Add(mustOrder(t, domain.SideBuy, 100.0, 5, "GCQ4 Comdty"))
	book.Add(mustOrder(t, domain.SideBuy, 99.0, 3, "GCQ4 Comdty"))

	got := book.Render()
	if n := strings.Count(got, "BUY ORDERS:"); n != 2 {
		t.Errorf("BUY ORDERS label count = %d, want 2:\n%s", n, got)
	}
}

// A stale zero-quantity entry truncates the side's listing instead of
// failing the render.
func TestRender_TruncatesAtStaleEntry(t *testing.T) {
	book := NewBook()
	book.Add(mustOrder(t, domain.SideBuy, 102.0, 5, "GCQ4 Comdty"))
	book.Add(mustOrder(t, domain.SideBuy, 101.0, 3, "GCQ4 Comdty"))

	// Simulate a stale entry at the head of the buy side.
	book.BuyOrders()[0].Quantity = 0

	got := book.Render()
	if strings.Contains(got, "BUY ORDERS:") {
		t.Errorf("expected truncated buy listing, got:\n%s", got)
	}
}

func TestRender_ContractsLexicographic(t *testing.T) {
	book := NewBook()
	book.Add(mustOrder(t, domain.SideBuy, 100.0, 1, "GCZ4 Comdty"))
	book.Add(mustOrder(t, domain.SideBuy, 100.0, 1, "GCF5 Comdty"))
	book.Add(mustOrder(t, domain.SideBuy, 100.0, 1, "GCQ4 Comdty"))

	got := book.Render()
	f := strings.Index(got, "GCF5 Comdty: ")
	q := strings.Index(got, "GCQ4 Comdty: ")
	z := strings.Index(got, "GCZ4 Comdty: ")
	if f == -1 || q == -1 || z == -1 || !(f < q && q < z) {
		t.Errorf("contracts not in lexicographic order:\n%s", got)
	}
}
