// Package store holds the canonical in-memory state of the dashboard:
// inventory, the order queue, navigation, and the external product feed.
//
// Each store follows the same lifecycle: it is constructed with built-in
// default data (Uninitialized), Hydrate loads and repairs whatever was
// persisted (Hydrating), and from then on every mutation is written through
// the storage gateway (Ready). Reads before Ready see defaults that may not
// match what hydration is about to load; callers that need parity gate on
// Ready.
package store

import (
	"github.com/lena-laurent/blanks-inventory-api/storage"
)

// State is the hydration lifecycle state of a store
type State int

const (
	StateUninitialized State = iota
	StateHydrating
	StateReady
)

// String returns the lifecycle state name
func (s State) String() string {
	switch s {
	case StateHydrating:
		return "hydrating"
	case StateReady:
		return "ready"
	default:
		return "uninitialized"
	}
}

// Stores bundles the domain stores so they can be injected as one explicit
// dependency instead of living as package-level singletons
type Stores struct {
	Inventory  *InventoryStore
	Orders     *OrderStore
	Navigation *NavigationStore
}

// New creates the domain stores, all backed by the same gateway. Order
// completion credits are wired to the inventory store here.
func New(gateway *storage.Gateway) *Stores {
	inventory := NewInventoryStore(gateway)
	return &Stores{
		Inventory:  inventory,
		Orders:     NewOrderStore(gateway, inventory),
		Navigation: NewNavigationStore(gateway),
	}
}

// Hydrate loads persisted state into every store. It blocks until all stores
// are Ready, so callers that want a non-blocking startup run it in a
// goroutine.
func (s *Stores) Hydrate() {
	s.Inventory.Hydrate()
	s.Orders.Hydrate()
	s.Navigation.Hydrate()
}

// Ready reports whether every store has finished hydrating
func (s *Stores) Ready() bool {
	return s.Inventory.State() == StateReady &&
		s.Orders.State() == StateReady &&
		s.Navigation.State() == StateReady
}

// Reset restores every store to its built-in defaults. Used after the
// persisted data has been cleared.
func (s *Stores) Reset() {
	s.Inventory.Reset()
	s.Orders.Reset()
	s.Navigation.Reset()
}
