package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// OrderItemInput is a caller-supplied line item. Name and price are trusted
// snapshots; they are not resolved against the catalog.
type OrderItemInput struct {
	ProductID   string
	ProductName string
	Quantity    int
	Price       float64
}

// CreateOrderInput defines the caller-supplied order payload. TotalAmount is
// stored verbatim; any caller-supplied status or date is discarded.
type CreateOrderInput struct {
	UserID      string
	Items       []OrderItemInput
	TotalAmount float64
}

// OrderUsecase defines the interface for the order lifecycle operations.
type OrderUsecase interface {
	// ListAll returns every order in the store.
	ListAll(ctx context.Context) ([]*entity.Order, error)

	// ListByUser returns the orders owned by the given user, an empty slice
	// when none match.
	ListByUser(ctx context.Context, userID string) ([]*entity.Order, error)

	// GetByID returns the order or ErrOrderNotFound.
	GetByID(ctx context.Context, id string) (*entity.Order, error)

	// Create persists a new order with status PENDING and a server-assigned
	// order date, returning the stored order with its assigned ID.
	Create(ctx context.Context, input *CreateOrderInput) (*entity.Order, error)

	// UpdateStatus sets the order's status to the given string verbatim and
	// returns the updated order, or ErrOrderNotFound.
	UpdateStatus(ctx context.Context, id string, status string) (*entity.Order, error)

	// Delete removes the order permanently, or returns ErrOrderNotFound.
	Delete(ctx context.Context, id string) error
}
