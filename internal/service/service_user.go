package service

import (
	"context"
	"fmt"

	"github.com/avolkhov/go-bookmark-keeper/internal/logger"
	"github.com/avolkhov/go-bookmark-keeper/internal/store"
	"github.com/avolkhov/go-bookmark-keeper/internal/validators"
	"github.com/avolkhov/go-bookmark-keeper/models"
)

// User implements UserService.
type User struct {
	users  store.UserRepository
	logger *logger.Logger
}

// NewUserService wires a UserService to the user repository.
func NewUserService(users store.UserRepository, log *logger.Logger) *User {
	return &User{
		users:  users,
		logger: log,
	}
}

func (s *User) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	return s.users.FindUserByID(ctx, userID)
}

func (s *User) EditUser(ctx context.Context, userID int64, patch models.EditUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateEditUserRequest(patch); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	// An all-nil patch is a read, not a write.
	if patch.IsEmpty() {
		return s.users.FindUserByID(ctx, userID)
	}

	user, err := s.users.UpdateUser(ctx, userID, patch)
	if err != nil {
		return models.User{}, err
	}
	log.Info().Str("func", "EditUser").Int64("userID", userID).Msg("profile updated")

	return user, nil
}
