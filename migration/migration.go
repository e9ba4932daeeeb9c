// Package migration repairs persisted dashboard data into the current schema.
//
// Input is whatever came out of deserializing the key-value store: nil, a
// stale shape from an older version, or arbitrary corruption. Every function
// here is total — it always returns a usable, well-typed value and never
// fails. Corruption is isolated per record: one bad element never discards
// its neighbors.
package migration

import (
	"time"

	"github.com/lena-laurent/blanks-inventory-api/models"
)

// DataVersion is the current persisted-data schema version
const DataVersion = "1.0.0"

// MigrateInventory normalizes persisted inventory data to the current schema.
// Non-array input yields the built-in default data set.
func MigrateInventory(data any) []models.TShirtItem {
	raw, ok := data.([]any)
	if !ok {
		return models.DefaultInventory()
	}

	items := make([]models.TShirtItem, 0, len(raw))
	for _, el := range raw {
		items = append(items, migrateItem(el))
	}
	return items
}

// migrateItem repairs a single inventory record field by field
func migrateItem(el any) models.TShirtItem {
	obj, _ := el.(map[string]any)

	size := models.ProductSize(stringField(obj, "size"))
	if !size.IsValid() {
		size = models.SizeM
	}
	color := models.ProductColor(stringField(obj, "color"))
	if !color.IsValid() {
		color = models.ColorRed
	}

	name := stringField(obj, "name")
	if name == "" {
		name = models.UnknownItemName
	}

	return models.TShirtItem{
		ID:          intField(obj, "id", 0),
		Name:        name,
		Size:        size,
		Color:       color,
		Quantity:    intField(obj, "quantity", 0),
		RequiredPcs: intField(obj, "requiredPcs", models.DefaultRequiredPcs),
	}
}

// MigrateOrders normalizes persisted order data to the current schema.
// Non-array input yields an empty queue.
func MigrateOrders(data any) []models.OrderItem {
	raw, ok := data.([]any)
	if !ok {
		return []models.OrderItem{}
	}

	orders := make([]models.OrderItem, 0, len(raw))
	for _, el := range raw {
		obj, _ := el.(map[string]any)

		status := models.OrderStatus(stringField(obj, "status"))
		if !status.IsValid() {
			status = models.StatusPending
		}

		quantity := intField(obj, "quantity", 1)

		date := stringField(obj, "orderDate")
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}

		id := intField(obj, "id", 0)
		if id == 0 {
			id = int(time.Now().UnixMilli())
		}

		var item any
		if obj != nil {
			item = obj["item"]
		}

		orders = append(orders, models.OrderItem{
			ID:        id,
			Item:      migrateItem(item),
			Quantity:  quantity,
			Status:    status,
			OrderDate: date,
		})
	}
	return orders
}

// MigrateNavigation normalizes persisted navigation state to the current schema
func MigrateNavigation(data any) models.NavigationState {
	obj, ok := data.(map[string]any)
	if !ok {
		return models.DefaultNavigationState()
	}

	state := models.DefaultNavigationState()

	if item := models.NavItem(stringField(obj, "activeNavItem")); item.IsValid() {
		state.ActiveNavItem = item
	}
	if expanded, ok := obj["sidebarExpanded"].(bool); ok {
		state.SidebarExpanded = expanded
	}
	return state
}

// stringField extracts a string field, returning "" for anything else
func stringField(obj map[string]any, key string) string {
	if obj == nil {
		return ""
	}
	s, _ := obj[key].(string)
	return s
}

// intField extracts a numeric field, returning fallback for anything else.
// JSON numbers decode as float64, but ints are accepted too so migrated
// values survive a second pass.
func intField(obj map[string]any, key string, fallback int) int {
	if obj == nil {
		return fallback
	}
	switch v := obj[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return fallback
}
