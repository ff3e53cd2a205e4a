// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artyom Volkhov

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avolkhov/go-bookmark-keeper/internal/config"
	"github.com/avolkhov/go-bookmark-keeper/internal/crypto"
	"github.com/avolkhov/go-bookmark-keeper/internal/logger"
	"github.com/avolkhov/go-bookmark-keeper/internal/store"
	"github.com/avolkhov/go-bookmark-keeper/internal/utils"
	"github.com/avolkhov/go-bookmark-keeper/internal/validators"
	"github.com/avolkhov/go-bookmark-keeper/models"
)

// Auth implements AuthService: Argon2id password hashing at rest, HS256
// bearer tokens on the wire.
type Auth struct {
	users  store.UserRepository
	hasher crypto.PasswordHasher
	app    config.App
	logger *logger.Logger
}

// NewAuthService wires an AuthService to the user repository and the
// application's token settings.
func NewAuthService(users store.UserRepository, hasher crypto.PasswordHasher, app config.App, log *logger.Logger) *Auth {
	return &Auth{
		users:  users,
		hasher: hasher,
		app:    app,
		logger: log,
	}
}

func (s *Auth) SignUp(ctx context.Context, request models.AuthRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateAuthRequest(request); err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	passwordHash, err := s.hasher.Hash(request.Password)
	if err != nil {
		log.Err(err).Str("func", "SignUp").Msg("failed to hash password")
		return models.Token{}, err
	}

	user, err := s.users.CreateUser(ctx, models.User{
		Email:        request.Email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		return models.Token{}, err
	}
	log.Info().Str("func", "SignUp").Int64("userID", user.ID).Msg("new account registered")

	return s.issueToken(user)
}

func (s *Auth) SignIn(ctx context.Context, request models.AuthRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateAuthRequest(request); err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := s.users.FindUserByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.Token{}, ErrWrongCredentials
		}
		return models.Token{}, err
	}

	ok, err := s.hasher.Verify(request.Password, user.PasswordHash)
	if err != nil {
		log.Err(err).Str("func", "SignIn").Int64("userID", user.ID).Msg("failed to verify password hash")
		return models.Token{}, err
	}
	if !ok {
		log.Info().Str("func", "SignIn").Int64("userID", user.ID).Msg("password mismatch")
		return models.Token{}, ErrWrongCredentials
	}

	return s.issueToken(user)
}

func (s *Auth) ParseToken(tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.app.TokenSignKey, s.app.TokenIssuer)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	return token, nil
}

func (s *Auth) issueToken(user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.app.TokenIssuer, user.ID, user.Email, s.app.TokenDuration, s.app.TokenSignKey)
	if err != nil {
		s.logger.Err(err).Str("func", "issueToken").Int64("userID", user.ID).Msg("failed to sign token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}
