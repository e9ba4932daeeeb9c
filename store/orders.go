package store

import (
	"sync"
	"time"

	"github.com/lena-laurent/blanks-inventory-api/migration"
	"github.com/lena-laurent/blanks-inventory-api/models"
	"github.com/lena-laurent/blanks-inventory-api/storage"
)

// OrderStore holds the reorder queue. Each order embeds a snapshot of the
// inventory record as it was when the order was placed; the completion credit
// re-resolves the item by identity against current inventory.
type OrderStore struct {
	mu        sync.Mutex
	gateway   *storage.Gateway
	inventory *InventoryStore
	state     State
	orders    []models.OrderItem
	lastID    int
}

// NewOrderStore creates an order store. Completing an order credits stock
// back through the given inventory store.
func NewOrderStore(gateway *storage.Gateway, inventory *InventoryStore) *OrderStore {
	return &OrderStore{
		gateway:   gateway,
		inventory: inventory,
		state:     StateUninitialized,
		orders:    []models.OrderItem{},
	}
}

// Hydrate loads persisted orders through the schema migrator and transitions
// the store to Ready
func (s *OrderStore) Hydrate() {
	s.mu.Lock()
	s.state = StateHydrating
	s.mu.Unlock()

	var raw any
	s.gateway.Load(storage.KeyOrders, &raw)
	orders := migration.MigrateOrders(raw)

	s.mu.Lock()
	s.orders = orders
	for _, order := range orders {
		if order.ID > s.lastID {
			s.lastID = order.ID
		}
	}
	s.state = StateReady
	s.mu.Unlock()
}

// State returns the current lifecycle state
func (s *OrderStore) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Orders returns a copy of the order queue
func (s *OrderStore) Orders() []models.OrderItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := make([]models.OrderItem, len(s.orders))
	copy(orders, s.orders)
	return orders
}

// Create places a new order for the given inventory record. The record is
// embedded by value, the identity is time-based and unique, status starts at
// pending and the order date is today.
func (s *OrderStore) Create(item models.TShirtItem, quantity int) models.OrderItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := models.OrderItem{
		ID:        s.nextIDLocked(),
		Item:      item,
		Quantity:  quantity,
		Status:    models.StatusPending,
		OrderDate: time.Now().Format("2006-01-02"),
	}
	s.orders = append(s.orders, order)
	s.persistLocked()
	return order
}

// SetStatus transitions an order's status. Transitioning into completed from
// a non-completed status credits the ordered quantity back to the matching
// inventory record exactly once; the guard is on the previous status, so
// repeating the call on an already-completed order credits nothing.
// creditApplied reports whether the inventory credit found its target.
func (s *OrderStore) SetStatus(orderID int, status models.OrderStatus) (result Result, creditApplied bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != orderID {
			continue
		}

		previous := s.orders[i].Status
		if !validTransition(previous, status) {
			return ResultInvalidTransition, false
		}

		s.orders[i].Status = status
		if status == models.StatusCompleted && previous != models.StatusCompleted {
			// The embedded snapshot may have drifted from live inventory; the
			// credit resolves by identity and is skipped when the item is gone.
			creditApplied = s.inventory.AddQuantity(s.orders[i].Item.ID, s.orders[i].Quantity) == ResultApplied
		}
		s.persistLocked()
		return ResultApplied, creditApplied
	}
	return ResultNotFound, false
}

// Remove deletes an order regardless of its status
func (s *OrderStore) Remove(orderID int) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			s.persistLocked()
			return ResultApplied
		}
	}
	return ResultNotFound
}

// Reset empties the order queue
func (s *OrderStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = []models.OrderItem{}
}

// validTransition reports whether an order may move from one status to
// another. The queue moves forward, with one explicit back-transition from
// processing to pending; a completed order stays completed.
func validTransition(from, to models.OrderStatus) bool {
	if from == models.StatusCompleted {
		return to == models.StatusCompleted
	}
	return to.IsValid()
}

// nextIDLocked issues a time-based identity, bumped past the last issued one
// when two orders land on the same millisecond. Callers must hold the lock.
func (s *OrderStore) nextIDLocked() int {
	id := int(time.Now().UnixMilli())
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// persistLocked writes the queue through the gateway once the store is Ready.
// Callers must hold the lock.
func (s *OrderStore) persistLocked() {
	if s.state != StateReady {
		return
	}
	s.gateway.Save(storage.KeyOrders, s.orders)
}
