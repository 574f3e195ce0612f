package store

import (
	"context"

	"github.com/avkarpov/itemvault/models"
)

// UserRepository provides persistence operations for user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	ListUsers(ctx context.Context, page models.Pagination) ([]models.User, error)
	UpdateUser(ctx context.Context, id int64, patch models.UserPatch) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// ItemRepository provides persistence operations for items.
type ItemRepository interface {
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)
	FindItemByID(ctx context.Context, id int64) (models.Item, error)
	ListItems(ctx context.Context, page models.Pagination) ([]models.Item, error)
	ListItemsByOwner(ctx context.Context, ownerID int64, page models.Pagination) ([]models.Item, error)
	UpdateItem(ctx context.Context, id int64, patch models.ItemPatch) (models.Item, error)
	DeleteItem(ctx context.Context, id int64) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. Implementations inspect driver-specific error values.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
