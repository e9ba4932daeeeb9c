package store

import (
	"testing"

	"github.com/lena-laurent/blanks-inventory-api/models"
	"github.com/lena-laurent/blanks-inventory-api/storage"
	"github.com/stretchr/testify/assert"
)

func TestNavigationDefaults(t *testing.T) {
	stores, _ := setupStores(t)

	nav := stores.Navigation.Get()
	assert.Equal(t, models.NavMaterials, nav.ActiveNavItem)
	assert.False(t, nav.SidebarExpanded)
}

func TestNavigationMutationsPersist(t *testing.T) {
	stores, gateway := setupStores(t)

	stores.Navigation.SetActiveNavItem(models.NavIntegrations)
	stores.Navigation.SetSidebarExpanded(true)

	var persisted models.NavigationState
	assert.True(t, gateway.Load(storage.KeyNavigation, &persisted))
	assert.Equal(t, models.NavIntegrations, persisted.ActiveNavItem)
	assert.True(t, persisted.SidebarExpanded)

	// Each change is written through independently
	stores.Navigation.SetSidebarExpanded(false)
	assert.True(t, gateway.Load(storage.KeyNavigation, &persisted))
	assert.False(t, persisted.SidebarExpanded)
	assert.Equal(t, models.NavIntegrations, persisted.ActiveNavItem)
}

func TestNavigationSurvivesSession(t *testing.T) {
	stores, gateway := setupStores(t)
	stores.Navigation.SetActiveNavItem(models.NavProducts)

	fresh := New(gateway)
	fresh.Hydrate()
	assert.Equal(t, models.NavProducts, fresh.Navigation.Get().ActiveNavItem)
}
