package models

// OrderStatus tracks an order through the fulfillment queue
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusCompleted  OrderStatus = "completed"
)

// OrderStatuses lists all valid statuses
var OrderStatuses = []OrderStatus{StatusPending, StatusProcessing, StatusCompleted}

// IsValid reports whether the status is a known member of the enum
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted:
		return true
	}
	return false
}

// MaxOrderQuantity is the largest quantity accepted for a single order
const MaxOrderQuantity = 1000

// OrderItem is an entry in the reorder queue. Item is a snapshot of the
// inventory record at order-creation time, not a live reference; later edits
// to the inventory record do not propagate into existing orders.
type OrderItem struct {
	ID        int         `json:"id"`
	Item      TShirtItem  `json:"item"`
	Quantity  int         `json:"quantity"`
	Status    OrderStatus `json:"status"`
	OrderDate string      `json:"orderDate"`
}
