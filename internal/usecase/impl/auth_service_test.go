package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(userRepo *mockUserRepository, hasher *mockPasswordHasher, tokens *mockTokenService) usecase.AuthUsecase {
	return NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokens,
		Logger:       newDiscardLogger(),
	})
}

func TestAuthService_Register_Success(t *testing.T) {
	t.Parallel()

	userRepo := new(mockUserRepository)
	hasher := new(mockPasswordHasher)
	tokens := new(mockTokenService)

	userRepo.On("ExistsByUsername", mock.Anything, "alice").Return(false, nil)
	userRepo.On("ExistsByEmail", mock.Anything, "alice@example.com").Return(false, nil)
	hasher.On("Hash", "s3cretpass").Return("$2a$12$hashedvalue", nil)
	userRepo.On("Save", mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			user.ID = "64f1b2c3d4e5f6a7b8c9d0aa"
		}).
		Return(nil)

	svc := newTestAuthService(userRepo, hasher, tokens)

	before := time.Now()
	output, err := svc.Register(context.Background(), &usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cretpass",
	})

	require.NoError(t, err)
	require.NotNil(t, output.User)
	assert.Equal(t, "64f1b2c3d4e5f6a7b8c9d0aa", output.User.ID)
	assert.Equal(t, "alice", output.User.Username)
	assert.Equal(t, "$2a$12$hashedvalue", output.User.PasswordHash)
	assert.NotContains(t, output.User.PasswordHash, "s3cretpass")
	assert.Equal(t, entity.Roles{entity.RoleUser}, output.User.Roles)
	assert.False(t, output.User.CreatedAt.Before(before))
	userRepo.AssertExpectations(t)
	hasher.AssertExpectations(t)
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	t.Parallel()

	userRepo := new(mockUserRepository)
	userRepo.On("ExistsByUsername", mock.Anything, "alice").Return(true, nil)

	svc := newTestAuthService(userRepo, new(mockPasswordHasher), new(mockTokenService))

	output, err := svc.Register(context.Background(), &usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cretpass",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
	userRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	t.Parallel()

	userRepo := new(mockUserRepository)
	userRepo.On("ExistsByUsername", mock.Anything, "alice").Return(false, nil)
	userRepo.On("ExistsByEmail", mock.Anything, "alice@example.com").Return(true, nil)

	svc := newTestAuthService(userRepo, new(mockPasswordHasher), new(mockTokenService))

	output, err := svc.Register(context.Background(), &usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cretpass",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
	userRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestAuthService_Login_Success(t *testing.T) {
	t.Parallel()

	stored := &entity.User{
		ID:           "64f1b2c3d4e5f6a7b8c9d0aa",
		Username:     "alice",
		PasswordHash: "$2a$12$hashedvalue",
		Roles:        entity.Roles{entity.RoleUser, entity.RoleAdmin},
	}

	userRepo := new(mockUserRepository)
	hasher := new(mockPasswordHasher)
	tokens := new(mockTokenService)

	userRepo.On("FindByUsername", mock.Anything, "alice").Return(stored, nil)
	hasher.On("Check", "s3cretpass", stored.PasswordHash).Return(true)
	tokens.On("GenerateTokens", stored.ID, []string{"ROLE_USER", "ROLE_ADMIN"}).
		Return("access-token", "refresh-token", nil)

	svc := newTestAuthService(userRepo, hasher, tokens)

	output, err := svc.Login(context.Background(), &usecase.LoginInput{
		Username: "alice",
		Password: "s3cretpass",
	})

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, stored, output.User)
	tokens.AssertExpectations(t)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	t.Parallel()

	stored := &entity.User{ID: "u1", Username: "alice", PasswordHash: "$2a$12$hashedvalue"}

	userRepo := new(mockUserRepository)
	hasher := new(mockPasswordHasher)

	userRepo.On("FindByUsername", mock.Anything, "alice").Return(stored, nil)
	hasher.On("Check", "wrongpass", stored.PasswordHash).Return(false)

	svc := newTestAuthService(userRepo, hasher, new(mockTokenService))

	output, err := svc.Login(context.Background(), &usecase.LoginInput{
		Username: "alice",
		Password: "wrongpass",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	t.Parallel()

	userRepo := new(mockUserRepository)
	userRepo.On("FindByUsername", mock.Anything, "ghost").Return(nil, repository.ErrUserNotFound)

	svc := newTestAuthService(userRepo, new(mockPasswordHasher), new(mockTokenService))

	output, err := svc.Login(context.Background(), &usecase.LoginInput{
		Username: "ghost",
		Password: "whatever",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	// Unknown users and bad passwords are indistinguishable to the caller.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
