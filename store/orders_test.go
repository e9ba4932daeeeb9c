package store

import (
	"testing"
	"time"

	"github.com/lena-laurent/blanks-inventory-api/models"
	"github.com/lena-laurent/blanks-inventory-api/storage"
	"github.com/stretchr/testify/assert"
)

func TestCreateOrderSnapshotsItem(t *testing.T) {
	stores, _ := setupStores(t)

	item, _ := stores.Inventory.Get(5)
	order := stores.Orders.Create(item, 7)

	assert.Equal(t, models.StatusPending, order.Status)
	assert.Equal(t, 7, order.Quantity)
	assert.Equal(t, time.Now().Format("2006-01-02"), order.OrderDate)
	assert.Equal(t, item, order.Item)

	// Later edits to the inventory record do not propagate into the order
	stores.Inventory.SetQuantity(5, 999)
	orders := stores.Orders.Orders()
	assert.Equal(t, item.Quantity, orders[0].Item.Quantity, "Order must keep its snapshot")
}

func TestCreateOrderIdentitiesAreUnique(t *testing.T) {
	stores, _ := setupStores(t)
	item, _ := stores.Inventory.Get(1)

	seen := map[int]bool{}
	for i := 0; i < 50; i++ {
		order := stores.Orders.Create(item, 1)
		assert.False(t, seen[order.ID], "Identity %d was reused", order.ID)
		seen[order.ID] = true
	}
}

func TestCompletionCreditsInventoryExactlyOnce(t *testing.T) {
	stores, _ := setupStores(t)

	stores.Inventory.SetQuantity(5, 20)
	item, _ := stores.Inventory.Get(5)
	order := stores.Orders.Create(item, 7)

	_, _ = stores.Orders.SetStatus(order.ID, models.StatusProcessing)

	result, credited := stores.Orders.SetStatus(order.ID, models.StatusCompleted)
	assert.Equal(t, ResultApplied, result)
	assert.True(t, credited)

	after, _ := stores.Inventory.Get(5)
	assert.Equal(t, 27, after.Quantity, "Completion must credit the ordered quantity back")

	// Completing an already-completed order credits nothing further
	result, credited = stores.Orders.SetStatus(order.ID, models.StatusCompleted)
	assert.Equal(t, ResultApplied, result)
	assert.False(t, credited)

	after, _ = stores.Inventory.Get(5)
	assert.Equal(t, 27, after.Quantity, "Repeated completion must not re-credit")
}

func TestCompletionCreditSkippedWhenItemGone(t *testing.T) {
	stores, _ := setupStores(t)

	// An order whose embedded item no longer exists in inventory
	ghost := models.TShirtItem{ID: 999, Name: "Retired Tee", Size: models.SizeM, Color: models.ColorRed, Quantity: 5, RequiredPcs: 24}
	order := stores.Orders.Create(ghost, 3)

	before := stores.Inventory.Items()
	result, credited := stores.Orders.SetStatus(order.ID, models.StatusCompleted)

	assert.Equal(t, ResultApplied, result, "The transition itself still applies")
	assert.False(t, credited, "The credit is skipped when the item is gone")
	assert.Equal(t, before, stores.Inventory.Items())
}

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		name     string
		from     models.OrderStatus
		to       models.OrderStatus
		expected Result
	}{
		{"pending to processing", models.StatusPending, models.StatusProcessing, ResultApplied},
		{"processing back to pending", models.StatusProcessing, models.StatusPending, ResultApplied},
		{"pending straight to completed", models.StatusPending, models.StatusCompleted, ResultApplied},
		{"processing to completed", models.StatusProcessing, models.StatusCompleted, ResultApplied},
		{"completed stays completed", models.StatusCompleted, models.StatusCompleted, ResultApplied},
		{"completed cannot return to processing", models.StatusCompleted, models.StatusProcessing, ResultInvalidTransition},
		{"completed cannot return to pending", models.StatusCompleted, models.StatusPending, ResultInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stores, _ := setupStores(t)
			item, _ := stores.Inventory.Get(1)
			order := stores.Orders.Create(item, 2)

			// Walk the order into the starting status
			if tt.from != models.StatusPending {
				_, _ = stores.Orders.SetStatus(order.ID, tt.from)
			}

			result, _ := stores.Orders.SetStatus(order.ID, tt.to)
			assert.Equal(t, tt.expected, result)

			orders := stores.Orders.Orders()
			if tt.expected == ResultApplied {
				assert.Equal(t, tt.to, orders[0].Status)
			} else {
				assert.Equal(t, tt.from, orders[0].Status, "A rejected transition must not change state")
			}
		})
	}
}

func TestSetStatusNotFound(t *testing.T) {
	stores, _ := setupStores(t)

	result, credited := stores.Orders.SetStatus(123456, models.StatusCompleted)
	assert.Equal(t, ResultNotFound, result)
	assert.False(t, credited)
}

func TestRemoveOrder(t *testing.T) {
	stores, _ := setupStores(t)
	item, _ := stores.Inventory.Get(1)

	order := stores.Orders.Create(item, 2)
	completed := stores.Orders.Create(item, 3)
	_, _ = stores.Orders.SetStatus(completed.ID, models.StatusCompleted)

	// Deletion is permitted in any status
	assert.Equal(t, ResultApplied, stores.Orders.Remove(order.ID))
	assert.Equal(t, ResultApplied, stores.Orders.Remove(completed.ID))
	assert.Empty(t, stores.Orders.Orders())

	assert.Equal(t, ResultNotFound, stores.Orders.Remove(order.ID))
}

func TestOrderWriteThrough(t *testing.T) {
	stores, gateway := setupStores(t)
	item, _ := stores.Inventory.Get(1)

	order := stores.Orders.Create(item, 4)

	var persisted []models.OrderItem
	assert.True(t, gateway.Load(storage.KeyOrders, &persisted))
	assert.Len(t, persisted, 1)
	assert.Equal(t, order.ID, persisted[0].ID)

	_, _ = stores.Orders.SetStatus(order.ID, models.StatusProcessing)
	assert.True(t, gateway.Load(storage.KeyOrders, &persisted))
	assert.Equal(t, models.StatusProcessing, persisted[0].Status)
}

func TestHydrateRestoresLastID(t *testing.T) {
	stores, gateway := setupStores(t)
	item, _ := stores.Inventory.Get(1)
	order := stores.Orders.Create(item, 1)

	// A new session over the same storage must not reuse identities
	fresh := New(gateway)
	fresh.Hydrate()
	next := fresh.Orders.Create(item, 1)
	assert.Greater(t, next.ID, order.ID)
}
