package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestOrderService(repo repository.OrderRepository) usecase.OrderUsecase {
	return NewOrderService(OrderServiceParams{
		OrderRepo: repo,
		Logger:    newDiscardLogger(),
	})
}

func TestOrderService_Create_ForcesPendingStatusAndServerDate(t *testing.T) {
	t.Parallel()

	repo := new(mockOrderRepository)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*entity.Order")).
		Run(func(args mock.Arguments) {
			order := args.Get(1).(*entity.Order)
			order.ID = "64f1b2c3d4e5f6a7b8c9d0e1"
		}).
		Return(nil)

	svc := newTestOrderService(repo)

	before := time.Now()
	order, err := svc.Create(context.Background(), &usecase.CreateOrderInput{
		UserID: "64f1b2c3d4e5f6a7b8c9d0aa",
		Items: []usecase.OrderItemInput{
			{ProductID: "64f1b2c3d4e5f6a7b8c9d0bb", ProductName: "Keyboard", Quantity: 2, Price: 49.5},
		},
		TotalAmount: 999,
	})
	after := time.Now()

	require.NoError(t, err)
	assert.Equal(t, "64f1b2c3d4e5f6a7b8c9d0e1", order.ID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.False(t, order.OrderDate.Before(before))
	assert.False(t, order.OrderDate.After(after))
	// The total is persisted as supplied, even when it disagrees with the items.
	assert.InDelta(t, 999, order.TotalAmount, 0.0001)
	repo.AssertExpectations(t)
}

func TestOrderService_Create_SaveFailure(t *testing.T) {
	t.Parallel()

	repo := new(mockOrderRepository)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*entity.Order")).
		Return(errors.New("connection reset"))

	svc := newTestOrderService(repo)

	order, err := svc.Create(context.Background(), &usecase.CreateOrderInput{
		UserID:      "64f1b2c3d4e5f6a7b8c9d0aa",
		Items:       []usecase.OrderItemInput{{ProductID: "p", ProductName: "n", Quantity: 1, Price: 1}},
		TotalAmount: 1,
	})

	require.Error(t, err)
	assert.Nil(t, order)
}

func TestOrderService_GetByID(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		stored := &entity.Order{ID: "64f1b2c3d4e5f6a7b8c9d0e1", UserID: "u1", Status: entity.OrderStatusCompleted}
		repo := new(mockOrderRepository)
		repo.On("FindByID", mock.Anything, stored.ID).Return(stored, nil)

		svc := newTestOrderService(repo)

		order, err := svc.GetByID(context.Background(), stored.ID)
		require.NoError(t, err)
		assert.Equal(t, stored, order)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		repo := new(mockOrderRepository)
		repo.On("FindByID", mock.Anything, "missing").Return(nil, repository.ErrOrderNotFound)

		svc := newTestOrderService(repo)

		order, err := svc.GetByID(context.Background(), "missing")
		require.Error(t, err)
		assert.Nil(t, order)
		assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	})
}

func TestOrderService_ListByUser_EmptyResultIsNotAnError(t *testing.T) {
	t.Parallel()

	repo := new(mockOrderRepository)
	repo.On("FindByUserID", mock.Anything, "64f1b2c3d4e5f6a7b8c9d0aa").Return([]*entity.Order{}, nil)

	svc := newTestOrderService(repo)

	orders, err := svc.ListByUser(context.Background(), "64f1b2c3d4e5f6a7b8c9d0aa")
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

func TestOrderService_UpdateStatus_AcceptsArbitraryStatusValues(t *testing.T) {
	t.Parallel()

	// The status string is persisted verbatim, including values outside the
	// nominal PENDING/COMPLETED/CANCELLED set.
	for _, status := range []string{entity.OrderStatusCompleted, entity.OrderStatusCancelled, "SHIPPED_TO_MOON"} {
		repo := new(mockOrderRepository)
		repo.On("FindByID", mock.Anything, "64f1b2c3d4e5f6a7b8c9d0e1").
			Return(&entity.Order{ID: "64f1b2c3d4e5f6a7b8c9d0e1", Status: entity.OrderStatusPending}, nil)
		repo.On("UpdateStatus", mock.Anything, "64f1b2c3d4e5f6a7b8c9d0e1", status).Return(nil)

		svc := newTestOrderService(repo)

		order, err := svc.UpdateStatus(context.Background(), "64f1b2c3d4e5f6a7b8c9d0e1", status)
		require.NoError(t, err)
		assert.Equal(t, status, order.Status)
		repo.AssertExpectations(t)
	}
}

func TestOrderService_UpdateStatus_IsIdempotent(t *testing.T) {
	t.Parallel()

	repo := new(mockOrderRepository)
	repo.On("FindByID", mock.Anything, "64f1b2c3d4e5f6a7b8c9d0e1").
		Return(&entity.Order{ID: "64f1b2c3d4e5f6a7b8c9d0e1", Status: entity.OrderStatusCompleted}, nil)
	repo.On("UpdateStatus", mock.Anything, "64f1b2c3d4e5f6a7b8c9d0e1", entity.OrderStatusCompleted).Return(nil)

	svc := newTestOrderService(repo)

	// Setting the status an order already has succeeds again with the same result.
	for range 2 {
		order, err := svc.UpdateStatus(context.Background(), "64f1b2c3d4e5f6a7b8c9d0e1", entity.OrderStatusCompleted)
		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusCompleted, order.Status)
	}
}

func TestOrderService_UpdateStatus_NotFound(t *testing.T) {
	t.Parallel()

	repo := new(mockOrderRepository)
	repo.On("FindByID", mock.Anything, "missing").Return(nil, repository.ErrOrderNotFound)

	svc := newTestOrderService(repo)

	order, err := svc.UpdateStatus(context.Background(), "missing", entity.OrderStatusCompleted)
	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_Delete(t *testing.T) {
	t.Parallel()

	t.Run("existing order is removed", func(t *testing.T) {
		t.Parallel()

		repo := new(mockOrderRepository)
		repo.On("ExistsByID", mock.Anything, "64f1b2c3d4e5f6a7b8c9d0e1").Return(true, nil)
		repo.On("DeleteByID", mock.Anything, "64f1b2c3d4e5f6a7b8c9d0e1").Return(nil)

		svc := newTestOrderService(repo)

		err := svc.Delete(context.Background(), "64f1b2c3d4e5f6a7b8c9d0e1")
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("absent order leaves the store untouched", func(t *testing.T) {
		t.Parallel()

		repo := new(mockOrderRepository)
		repo.On("ExistsByID", mock.Anything, "missing").Return(false, nil)

		svc := newTestOrderService(repo)

		err := svc.Delete(context.Background(), "missing")
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
		repo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
	})
}

func TestOrderService_ListAll(t *testing.T) {
	t.Parallel()

	stored := []*entity.Order{
		{ID: "64f1b2c3d4e5f6a7b8c9d0e1", UserID: "u1", Status: entity.OrderStatusPending},
		{ID: "64f1b2c3d4e5f6a7b8c9d0e2", UserID: "u2", Status: entity.OrderStatusCancelled},
	}
	repo := new(mockOrderRepository)
	repo.On("FindAll", mock.Anything).Return(stored, nil)

	svc := newTestOrderService(repo)

	orders, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stored, orders)
}
