package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/avolkhov/go-bookmark-keeper/models"
)

// psql builds parameterised queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const userColumns = `id, email, password_hash, first_name, last_name, created_at, updated_at`

const bookmarkColumns = `id, user_id, title, description, link, created_at, updated_at`

const createUserQuery = `
	INSERT INTO users (email, password_hash)
	VALUES ($1, $2)
	RETURNING ` + userColumns + `;`

const findUserByEmailQuery = `
	SELECT ` + userColumns + `
	FROM users
	WHERE email = $1;`

const findUserByIDQuery = `
	SELECT ` + userColumns + `
	FROM users
	WHERE id = $1;`

const createBookmarkQuery = `
	INSERT INTO bookmarks (user_id, title, description, link)
	VALUES ($1, $2, $3, $4)
	RETURNING ` + bookmarkColumns + `;`

const getAllBookmarksQuery = `
	SELECT ` + bookmarkColumns + `
	FROM bookmarks
	WHERE user_id = $1
	ORDER BY id;`

const getBookmarkByIDQuery = `
	SELECT ` + bookmarkColumns + `
	FROM bookmarks
	WHERE user_id = $1 AND id = $2;`

const deleteBookmarkQuery = `
	DELETE FROM bookmarks
	WHERE user_id = $1 AND id = $2;`

// buildUpdateUserQuery assembles a partial UPDATE for the users table from the
// non-nil fields of patch. updated_at is always bumped server-side.
func buildUpdateUserQuery(userID int64, patch models.EditUserRequest) (string, []any, error) {
	builder := psql.Update("users").
		Set("updated_at", sq.Expr("NOW()"))

	if patch.Email != nil {
		builder = builder.Set("email", *patch.Email)
	}
	if patch.FirstName != nil {
		builder = builder.Set("first_name", *patch.FirstName)
	}
	if patch.LastName != nil {
		builder = builder.Set("last_name", *patch.LastName)
	}

	return builder.
		Where(sq.Eq{"id": userID}).
		Suffix("RETURNING " + userColumns).
		ToSql()
}

// buildUpdateBookmarkQuery assembles a partial UPDATE for the bookmarks table
// from the non-nil fields of patch, scoped to the owning user.
func buildUpdateBookmarkQuery(userID, bookmarkID int64, patch models.EditBookmarkRequest) (string, []any, error) {
	builder := psql.Update("bookmarks").
		Set("updated_at", sq.Expr("NOW()"))

	if patch.Title != nil {
		builder = builder.Set("title", *patch.Title)
	}
	if patch.Description != nil {
		builder = builder.Set("description", *patch.Description)
	}
	if patch.Link != nil {
		builder = builder.Set("link", *patch.Link)
	}

	return builder.
		Where(sq.Eq{"user_id": userID, "id": bookmarkID}).
		Suffix("RETURNING " + bookmarkColumns).
		ToSql()
}
