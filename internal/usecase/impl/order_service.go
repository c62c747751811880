// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo repository.OrderRepository
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo: params.OrderRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAll returns every order in the store.
func (srv *orderService) ListAll(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list all orders")
	}

	return orders, nil
}

// ListByUser returns the orders owned by the given user. No ownership check is
// applied here: any authenticated caller passing the role gate may query any
// user ID, matching the original access model.
func (srv *orderService) ListByUser(ctx context.Context, userID string) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by user")
	}

	return orders, nil
}

// GetByID returns the order or ErrOrderNotFound.
func (srv *orderService) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to get order by id")
	}

	return order, nil
}

// Create persists a caller-supplied order. The items and total amount are
// trusted verbatim; status and order date are unconditionally overwritten
// with PENDING and the current server time.
func (srv *orderService) Create(ctx context.Context, input *usecase.CreateOrderInput) (*entity.Order, error) {
	items := make([]entity.OrderItem, len(input.Items))
	for i, item := range input.Items {
		items[i] = entity.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		}
	}

	order := &entity.Order{
		UserID:      input.UserID,
		Items:       items,
		TotalAmount: input.TotalAmount,
		Status:      entity.OrderStatusPending,
		OrderDate:   time.Now(),
	}

	if err := srv.orderRepo.Save(ctx, order); err != nil {
		srv.log(ctx).Error("Failed to save order", slog.String("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to save order")
	}

	srv.log(ctx).Info("Order created",
		slog.String("orderID", order.ID),
		slog.String("userID", order.UserID))

	return order, nil
}

// UpdateStatus looks up the order and sets its status to the given string.
// The status value is not validated against the nominal status set, and no
// transition graph is enforced. The lookup and the write are two separate
// store calls with no isolation between them.
func (srv *orderService) UpdateStatus(ctx context.Context, id string, status string) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to load order for status update")
	}

	if err := srv.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to update order status")
	}

	srv.log(ctx).Info("Order status updated",
		slog.String("orderID", id),
		slog.String("from", order.Status),
		slog.String("to", status))

	order.Status = status

	return order, nil
}

// Delete checks existence first and then removes the order permanently.
func (srv *orderService) Delete(ctx context.Context, id string) error {
	exists, err := srv.orderRepo.ExistsByID(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to check order existence")
	}
	if !exists {
		return domainerrors.ErrOrderNotFound
	}

	if err := srv.orderRepo.DeleteByID(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete order")
	}

	srv.log(ctx).Info("Order deleted", slog.String("orderID", id))

	return nil
}
