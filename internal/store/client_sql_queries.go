// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artyom Volkhov

package store

const createClientSchema = `
	CREATE TABLE IF NOT EXISTS sessions
	(
		id       INTEGER PRIMARY KEY CHECK (id = 1),
		user_id  INTEGER   NOT NULL,
		email    TEXT      NOT NULL,
		token    TEXT      NOT NULL,
		saved_at TIMESTAMP NOT NULL
	);

	CREATE TABLE IF NOT EXISTS bookmarks_cache
	(
		id          INTEGER   NOT NULL,
		user_id     INTEGER   NOT NULL,
		title       TEXT      NOT NULL,
		description TEXT      NOT NULL DEFAULT '',
		link        TEXT      NOT NULL DEFAULT '',
		created_at  TIMESTAMP NOT NULL,
		updated_at  TIMESTAMP NOT NULL,
		PRIMARY KEY (user_id, id)
	);`

const (
	saveSessionQuery = `
		INSERT INTO sessions (id, user_id, email, token, saved_at)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			user_id  = excluded.user_id,
			email    = excluded.email,
			token    = excluded.token,
			saved_at = excluded.saved_at;`

	getSessionQuery = `
		SELECT user_id, email, token, saved_at
		FROM sessions
		WHERE id = 1;`

	deleteSessionQuery = `DELETE FROM sessions;`
)

const (
	putCachedBookmarkQuery = `
		INSERT INTO bookmarks_cache (id, user_id, title, description, link, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, id) DO UPDATE SET
			title       = excluded.title,
			description = excluded.description,
			link        = excluded.link,
			created_at  = excluded.created_at,
			updated_at  = excluded.updated_at;`

	getAllCachedBookmarksQuery = `
		SELECT id, user_id, title, description, link, created_at, updated_at
		FROM bookmarks_cache
		WHERE user_id = ?
		ORDER BY id;`

	deleteCachedBookmarkQuery = `
		DELETE FROM bookmarks_cache
		WHERE user_id = ? AND id = ?;`

	clearCachedBookmarksQuery = `
		DELETE FROM bookmarks_cache
		WHERE user_id = ?;`
)
