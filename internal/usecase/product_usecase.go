package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CreateProductInput defines the data required to create a catalog product.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	ImageURL    string
}

// UpdateProductInput defines the replacement fields for an existing product.
type UpdateProductInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	ImageURL    string
}

// ProductUsecase defines the interface for catalog operations.
type ProductUsecase interface {
	// ListAll returns every product in the catalog.
	ListAll(ctx context.Context) ([]*entity.Product, error)

	// GetByID returns the product or ErrProductNotFound.
	GetByID(ctx context.Context, id string) (*entity.Product, error)

	// Create persists a new product and returns it with its assigned ID.
	Create(ctx context.Context, input *CreateProductInput) (*entity.Product, error)

	// Update replaces the stored fields of an existing product and returns
	// the updated product, or ErrProductNotFound.
	Update(ctx context.Context, id string, input *UpdateProductInput) (*entity.Product, error)

	// Delete removes the product permanently, or returns ErrProductNotFound.
	Delete(ctx context.Context, id string) error
}
