package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// FindAll retrieves every product in the catalog.
	FindAll(ctx context.Context) ([]*entity.Product, error)

	// FindByID retrieves a single product by its store-assigned ID.
	FindByID(ctx context.Context, id string) (*entity.Product, error)

	// Save persists a new product and fills in the store-assigned ID.
	Save(ctx context.Context, product *entity.Product) error

	// Update replaces the stored fields of an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// ExistsByID reports whether a product with the given ID exists.
	ExistsByID(ctx context.Context, id string) (bool, error)

	// DeleteByID removes a product permanently.
	DeleteByID(ctx context.Context, id string) error
}
