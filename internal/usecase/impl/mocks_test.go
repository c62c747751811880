package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockOrderRepository is a hand-written testify mock for repository.OrderRepository.
type mockOrderRepository struct {
	mock.Mock
}

func (m *mockOrderRepository) FindAll(ctx context.Context) ([]*entity.Order, error) {
	args := m.Called(ctx)
	if orders, ok := args.Get(0).([]*entity.Order); ok {
		return orders, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockOrderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	args := m.Called(ctx, id)
	if order, ok := args.Get(0).(*entity.Order); ok {
		return order, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockOrderRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.Order, error) {
	args := m.Called(ctx, userID)
	if orders, ok := args.Get(0).([]*entity.Order); ok {
		return orders, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockOrderRepository) Save(ctx context.Context, order *entity.Order) error {
	args := m.Called(ctx, order)

	return args.Error(0)
}

func (m *mockOrderRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	args := m.Called(ctx, id, status)

	return args.Error(0)
}

func (m *mockOrderRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)

	return args.Bool(0), args.Error(1)
}

func (m *mockOrderRepository) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// mockUserRepository is a hand-written testify mock for repository.UserRepository.
type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)

	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)

	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepository) Save(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

// mockProductRepository is a hand-written testify mock for repository.ProductRepository.
type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)
	if products, ok := args.Get(0).([]*entity.Product); ok {
		return products, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockProductRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if product, ok := args.Get(0).(*entity.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockProductRepository) Save(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)

	return args.Error(0)
}

func (m *mockProductRepository) Update(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)

	return args.Error(0)
}

func (m *mockProductRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)

	return args.Bool(0), args.Error(1)
}

func (m *mockProductRepository) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// mockPasswordHasher is a hand-written testify mock for service.PasswordHasher.
type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

// mockTokenService is a hand-written testify mock for service.TokenService.
type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) GenerateTokens(userID string, roles []string) (string, string, error) {
	args := m.Called(userID, roles)

	return args.String(0), args.String(1), args.Error(2)
}

func (m *mockTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if claims, ok := args.Get(0).(*service.Claims); ok {
		return claims, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockTokenService) GetRefreshTokenDuration() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}
