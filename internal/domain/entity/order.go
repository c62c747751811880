package entity

import "time"

// Order statuses. The set is not closed: the status field accepts any string,
// and no transition graph is enforced between values.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusCompleted = "COMPLETED"
	OrderStatusCancelled = "CANCELLED"
)

// Order represents a customer order. It references its owning user by ID only
// and exclusively owns its item sequence. TotalAmount is taken verbatim from
// the caller; it is never recomputed from the items.
type Order struct {
	ID          string      // The store-assigned identifier for the order.
	UserID      string      // Identifier of the owning user.
	Items       []OrderItem // Ordered sequence of line items, embedded.
	TotalAmount float64     // Caller-supplied total.
	Status      string      // Current status, e.g. "PENDING".
	OrderDate   time.Time   // Server-assigned creation timestamp.
}

// OrderItem is an embedded line-item value. ProductName and Price are a
// snapshot taken at order time, not a live reference to the Product.
type OrderItem struct {
	ProductID   string
	ProductName string
	Quantity    int
	Price       float64
}
