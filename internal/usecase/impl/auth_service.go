package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account. Username and email must each be unique;
// the password is stored as a bcrypt hash and never in plaintext. New
// accounts are granted the customer role.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username))

	usernameTaken, err := srv.userRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check username availability")
	}
	if usernameTaken {
		return nil, domainerrors.ErrUsernameTaken
	}

	emailTaken, err := srv.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check email availability")
	}
	if emailTaken {
		return nil, domainerrors.ErrEmailTaken
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	user := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: passwordHash,
		Roles:        entity.Roles{entity.RoleUser},
		CreatedAt:    time.Now(),
	}

	if err := srv.userRepo.Save(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to save user during registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.String("userID", user.ID))

	return &usecase.RegisterOutput{User: user}, nil
}

// Login verifies the credentials and issues the access and refresh tokens.
// The access token carries the user's role set for stateless authorization.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to load user during login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch during login", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Roles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens during login")
	}

	srv.log(ctx).Info("Login successful", slog.String("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}
