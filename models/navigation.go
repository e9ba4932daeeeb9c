package models

// NavItem identifies a section of the dashboard
type NavItem string

const (
	NavMaterials    NavItem = "materials"
	NavProducts     NavItem = "products"
	NavFulfillment  NavItem = "fulfillment"
	NavIntegrations NavItem = "integrations"
)

// NavItems lists all valid navigation sections
var NavItems = []NavItem{NavMaterials, NavProducts, NavFulfillment, NavIntegrations}

// IsValid reports whether the nav item is a known member of the enum
func (n NavItem) IsValid() bool {
	switch n {
	case NavMaterials, NavProducts, NavFulfillment, NavIntegrations:
		return true
	}
	return false
}

// NavigationState is the persisted UI navigation state, shared across the
// whole dashboard and independent of inventory and order data
type NavigationState struct {
	ActiveNavItem   NavItem `json:"activeNavItem"`
	SidebarExpanded bool    `json:"sidebarExpanded"`
}

// DefaultNavigationState returns the state used before anything was persisted
func DefaultNavigationState() NavigationState {
	return NavigationState{
		ActiveNavItem:   NavMaterials,
		SidebarExpanded: false,
	}
}
