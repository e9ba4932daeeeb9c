package store

import (
	"sync"

	"github.com/lena-laurent/blanks-inventory-api/migration"
	"github.com/lena-laurent/blanks-inventory-api/models"
	"github.com/lena-laurent/blanks-inventory-api/storage"
)

// InventoryStore holds the canonical in-memory inventory collection
type InventoryStore struct {
	mu      sync.RWMutex
	gateway *storage.Gateway
	state   State
	items   []models.TShirtItem
}

// NewInventoryStore creates an inventory store presenting the built-in
// default data until Hydrate replaces it with persisted state
func NewInventoryStore(gateway *storage.Gateway) *InventoryStore {
	return &InventoryStore{
		gateway: gateway,
		state:   StateUninitialized,
		items:   models.DefaultInventory(),
	}
}

// Hydrate loads persisted inventory through the schema migrator and
// transitions the store to Ready. Mutations made after Ready are persisted.
func (s *InventoryStore) Hydrate() {
	s.mu.Lock()
	s.state = StateHydrating
	s.mu.Unlock()

	var raw any
	s.gateway.Load(storage.KeyInventory, &raw)
	items := migration.MigrateInventory(raw)

	s.mu.Lock()
	s.items = items
	s.state = StateReady
	s.mu.Unlock()
}

// State returns the current lifecycle state
func (s *InventoryStore) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Items returns a copy of the inventory collection
func (s *InventoryStore) Items() []models.TShirtItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]models.TShirtItem, len(s.items))
	copy(items, s.items)
	return items
}

// Get returns the item with the given identity
func (s *InventoryStore) Get(id int) (models.TShirtItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return models.TShirtItem{}, false
}

// SetQuantity replaces the on-hand quantity of the item with the given
// identity, clamped to zero or above
func (s *InventoryStore) SetQuantity(id, quantity int) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			if quantity < 0 {
				quantity = 0
			}
			s.items[i].Quantity = quantity
			s.persistLocked()
			return ResultApplied
		}
	}
	return ResultNotFound
}

// AddQuantity adjusts the on-hand quantity of the item by delta, clamped to
// zero or above. Used by order completion to credit stock back.
func (s *InventoryStore) AddQuantity(id, delta int) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			quantity := s.items[i].Quantity + delta
			if quantity < 0 {
				quantity = 0
			}
			s.items[i].Quantity = quantity
			s.persistLocked()
			return ResultApplied
		}
	}
	return ResultNotFound
}

// AddItem assigns a fresh identity to the new record and appends it.
// Identities are strictly greater than every current identity and are never
// reused.
func (s *InventoryStore) AddItem(create models.CreateTShirtItem) models.TShirtItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	maxID := 0
	for _, item := range s.items {
		if item.ID > maxID {
			maxID = item.ID
		}
	}

	requiredPcs := create.RequiredPcs
	if requiredPcs <= 0 {
		requiredPcs = models.DefaultRequiredPcs
	}
	quantity := create.Quantity
	if quantity < 0 {
		quantity = 0
	}

	item := models.TShirtItem{
		ID:          maxID + 1,
		Name:        create.Name,
		Size:        create.Size,
		Color:       create.Color,
		Quantity:    quantity,
		RequiredPcs: requiredPcs,
	}
	s.items = append(s.items, item)
	s.persistLocked()
	return item
}

// Reset restores the built-in default inventory
func (s *InventoryStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = models.DefaultInventory()
}

// persistLocked writes the collection through the gateway. Writes happen only
// once the store is Ready, so hydration cannot be overwritten by a stale
// default set. Callers must hold the write lock.
func (s *InventoryStore) persistLocked() {
	if s.state != StateReady {
		return
	}
	s.gateway.Save(storage.KeyInventory, s.items)
}
