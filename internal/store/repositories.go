package store

// Repositories groups all storage-layer interfaces for injection into the
// service layer.
type Repositories struct {
	UserRepository UserRepository
	ItemRepository ItemRepository
}

// NewRepositories constructs both repositories over a shared database
// connection.
func NewRepositories(db *DB) *Repositories {
	return &Repositories{
		UserRepository: NewUserRepository(db, db.logger),
		ItemRepository: NewItemRepository(db, db.logger),
	}
}
