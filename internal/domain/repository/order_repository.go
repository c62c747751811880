package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
// Every method is a single store round trip; callers composing a read followed
// by a write get no isolation between the two calls.
type OrderRepository interface {
	// FindAll retrieves every order in the store, in store-native order.
	FindAll(ctx context.Context) ([]*entity.Order, error)

	// FindByID retrieves a single order by its store-assigned ID.
	FindByID(ctx context.Context, id string) (*entity.Order, error)

	// FindByUserID retrieves all orders whose owning-user field equals userID.
	// An empty slice is returned when none match.
	FindByUserID(ctx context.Context, userID string) ([]*entity.Order, error)

	// Save persists a new order and fills in the store-assigned ID.
	Save(ctx context.Context, order *entity.Order) error

	// UpdateStatus sets the status field of an existing order.
	UpdateStatus(ctx context.Context, id string, status string) error

	// ExistsByID reports whether an order with the given ID exists.
	ExistsByID(ctx context.Context, id string) (bool, error)

	// DeleteByID removes an order permanently.
	DeleteByID(ctx context.Context, id string) error
}
