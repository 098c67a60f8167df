package store

import (
	"sync"

	"github.com/google/btree"
)

// journalEntry holds the chronological match events for one contract.
type journalEntry struct {
	contract string
	events   []string
}

func entryLess(a, b journalEntry) bool {
	return a.contract < b.contract
}

// Journal is a thread-safe append-only log of match events keyed by
// contract. Events for a contract are kept in insertion (chronological)
// order; contracts iterate in lexicographic order via the B-tree.
type Journal struct {
	mu   sync.RWMutex
	tree *btree.BTreeG[journalEntry]
}

// NewJournal creates an empty Journal.
func NewJournal() *Journal {
	const degree = 32
	return &Journal{
		tree: btree.NewG[journalEntry](degree, entryLess),
	}
}

// Append adds an event to the contract's chronological list, creating
// the list on first insertion for a new contract.
func (j *Journal) Append(contract, event string) {
	j.mu.Lock()
	defer j.mu.Unlock()

	entry, ok := j.tree.Get(journalEntry{contract: contract})
	if !ok {
		entry = journalEntry{contract: contract}
	}
	entry.events = append(entry.events, event)
	j.tree.ReplaceOrInsert(entry)
}

// Events returns the contract's match events in chronological order.
// Returns an empty slice for an unknown contract.
func (j *Journal) Events(contract string) []string {
	j.mu.RLock()
	defer j.mu.RUnlock()

	entry, ok := j.tree.Get(journalEntry{contract: contract})
	if !ok {
		return []string{}
	}

	// Return a copy to avoid callers mutating the internal slice.
	events := make([]string, len(entry.events))
	copy(events, entry.events)
	return events
}

// Contracts returns every contract with at least one event, in
// lexicographic order.
func (j *Journal) Contracts() []string {
	j.mu.RLock()
	defer j.mu.RUnlock()

	contracts := make([]string, 0, j.tree.Len())
	j.tree.Ascend(func(entry journalEntry) bool {
		contracts = append(contracts, entry.contract)
		return true
	})
	return contracts
}

// Len returns the number of contracts with recorded events.
func (j *Journal) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.tree.Len()
}
