// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	deliverycontext "gatehouse/internal/delivery/context"
	"gatehouse/internal/domain/entity"
	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/domain/repository"
	"gatehouse/internal/domain/service"
	"gatehouse/internal/usecase"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// Register orchestrates the user registration process: hash the password,
// then insert the credential record. The store's unique indexes decide
// whether the username and email are free, so there is no pre-read; the
// insert either wins or surfaces a duplicate error atomically.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	logger.Info("Starting user registration", "username", input.Username)

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		logger.Error("Failed to hash password during registration", "error", err)

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	newUser := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		logger.Error("Failed to create user", "error", err, "username", input.Username)

		// A duplicate and any other store failure surface to the client as
		// the same generic registration error, so a taken username is
		// indistinguishable from a taken email or an unreachable store.
		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			return nil, errors.WithStack(err)
		}

		return nil, domainerrors.ErrUserCreationFailed.WrapMessage("failed to create user")
	}

	logger.Debug("User registered successfully", "userID", newUser.ID)

	return &usecase.RegisterOutput{User: newUser}, nil
}

// Login orchestrates the user login process.
// An unknown username and a wrong password both yield ErrInvalidCredentials,
// so the response never reveals whether the account exists.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	logger.Debug("Starting user login", "username", input.Username)

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}
		logger.Error("Failed to look up user during login", "error", err)

		return nil, domainerrors.ErrLoginFailed.WrapMessage("failed to find user by username")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	logger.Debug("User logged in successfully", "userID", user.ID)

	return &usecase.LoginOutput{User: user}, nil
}
