package store

import (
	"sync"

	"github.com/lena-laurent/blanks-inventory-api/migration"
	"github.com/lena-laurent/blanks-inventory-api/models"
	"github.com/lena-laurent/blanks-inventory-api/storage"
)

// NavigationStore holds the process-wide navigation state, persisted on
// every change and independent of inventory and order data
type NavigationStore struct {
	mu      sync.RWMutex
	gateway *storage.Gateway
	state   State
	nav     models.NavigationState
}

// NewNavigationStore creates a navigation store with the default state
func NewNavigationStore(gateway *storage.Gateway) *NavigationStore {
	return &NavigationStore{
		gateway: gateway,
		state:   StateUninitialized,
		nav:     models.DefaultNavigationState(),
	}
}

// Hydrate loads persisted navigation state and transitions the store to Ready
func (s *NavigationStore) Hydrate() {
	s.mu.Lock()
	s.state = StateHydrating
	s.mu.Unlock()

	var raw any
	s.gateway.Load(storage.KeyNavigation, &raw)
	nav := migration.MigrateNavigation(raw)

	s.mu.Lock()
	s.nav = nav
	s.state = StateReady
	s.mu.Unlock()
}

// State returns the current lifecycle state
func (s *NavigationStore) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Get returns the current navigation state
func (s *NavigationStore) Get() models.NavigationState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nav
}

// SetActiveNavItem switches the active dashboard section
func (s *NavigationStore) SetActiveNavItem(item models.NavItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nav.ActiveNavItem = item
	s.persistLocked()
}

// SetSidebarExpanded sets the sidebar expansion flag
func (s *NavigationStore) SetSidebarExpanded(expanded bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nav.SidebarExpanded = expanded
	s.persistLocked()
}

// Reset restores the default navigation state
func (s *NavigationStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nav = models.DefaultNavigationState()
}

// persistLocked writes the state through the gateway once the store is Ready.
// Callers must hold the write lock.
func (s *NavigationStore) persistLocked() {
	if s.state != StateReady {
		return
	}
	s.gateway.Save(storage.KeyNavigation, s.nav)
}
