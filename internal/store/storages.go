// Package store provides the persistence layer: PostgreSQL-backed
// repositories on the server side and a SQLite cache on the client side.
package store

// Storages bundles the server-side repositories behind their interfaces.
type Storages struct {
	UserRepository
	BookmarkRepository
}

// NewStorages wires all server-side repositories to a shared database handle.
func NewStorages(db *DB) *Storages {
	return &Storages{
		UserRepository:     NewPostgresUserRepository(db),
		BookmarkRepository: NewPostgresBookmarkRepository(db),
	}
}
