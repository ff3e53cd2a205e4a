package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/avolkhov/go-bookmark-keeper/models"
)

// PostgresUserRepository implements UserRepository on top of PostgreSQL.
type PostgresUserRepository struct {
	db *DB
}

// NewPostgresUserRepository returns a UserRepository backed by db.
func NewPostgresUserRepository(db *DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := r.db.logger.With().Str("repository", "PostgresUserRepository").Logger()

	row := r.db.QueryRowContext(ctx, createUserQuery, user.Email, user.PasswordHash)

	var created models.User
	err := row.Scan(
		&created.ID,
		&created.Email,
		&created.PasswordHash,
		&created.FirstName,
		&created.LastName,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			log.Info().Str("func", "CreateUser").Str("email", user.Email).Msg("email already registered")
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "CreateUser").Msg("failed to insert user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

func (r *PostgresUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := r.db.logger.With().Str("repository", "PostgresUserRepository").Logger()

	row := r.db.QueryRowContext(ctx, findUserByEmailQuery, email)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "FindUserByEmail").Msg("failed to query user by email")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

func (r *PostgresUserRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	log := r.db.logger.With().Str("repository", "PostgresUserRepository").Logger()

	row := r.db.QueryRowContext(ctx, findUserByIDQuery, id)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "FindUserByID").Msg("failed to query user by id")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

func (r *PostgresUserRepository) UpdateUser(ctx context.Context, id int64, patch models.EditUserRequest) (models.User, error) {
	log := r.db.logger.With().Str("repository", "PostgresUserRepository").Logger()

	query, args, err := buildUpdateUserQuery(id, patch)
	if err != nil {
		log.Err(err).Str("func", "UpdateUser").Msg("failed to build update query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	user, err := scanUser(row)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return models.User{}, ErrNoUserWasFound
		case postgresError(err) == pgerrcode.UniqueViolation:
			log.Info().Str("func", "UpdateUser").Int64("userID", id).Msg("email already registered")
			return models.User{}, ErrEmailAlreadyExists
		default:
			log.Err(err).Str("func", "UpdateUser").Msg("failed to update user")
			return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return user, nil
}

func scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.FirstName,
		&user.LastName,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}
