package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for productService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAll returns every product in the catalog.
func (srv *productService) ListAll(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetByID returns the product or ErrProductNotFound.
func (srv *productService) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to get product by id")
	}

	return product, nil
}

// Create persists a new product and returns it with its assigned ID.
func (srv *productService) Create(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	product := &entity.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		ImageURL:    input.ImageURL,
	}

	if err := srv.productRepo.Save(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to save product")
	}

	srv.log(ctx).Info("Product created",
		slog.String("productID", product.ID),
		slog.String("name", product.Name))

	return product, nil
}

// Update replaces the stored fields of an existing product.
func (srv *productService) Update(ctx context.Context, id string, input *usecase.UpdateProductInput) (*entity.Product, error) {
	product := &entity.Product{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		ImageURL:    input.ImageURL,
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// Delete checks existence first and then removes the product permanently.
func (srv *productService) Delete(ctx context.Context, id string) error {
	exists, err := srv.productRepo.ExistsByID(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to check product existence")
	}
	if !exists {
		return domainerrors.ErrProductNotFound
	}

	if err := srv.productRepo.DeleteByID(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.String("productID", id))

	return nil
}
