package service

import (
	"context"

	"github.com/avkarpov/itemvault/models"
)

// AuthService handles account registration, credential verification, and the
// JWT token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, create models.UserCreate) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	CreateTokenPair(ctx context.Context, user models.User) (models.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error)
	CurrentUser(ctx context.Context, accessToken string) (models.User, error)
}

// UserService exposes profile and account administration operations.
// Every method takes the authenticated caller so that access policies are
// applied in one place.
type UserService interface {
	GetByID(ctx context.Context, caller models.User, id int64) (models.User, error)
	List(ctx context.Context, caller models.User, page models.Pagination) ([]models.User, error)
	UpdateMe(ctx context.Context, caller models.User, update models.UserUpdate) (models.User, error)
	Delete(ctx context.Context, caller models.User, id int64) error
}

// ItemService exposes item CRUD. Reads are public; writes require the
// authenticated caller for ownership checks.
type ItemService interface {
	Create(ctx context.Context, caller models.User, create models.ItemCreate) (models.Item, error)
	GetByID(ctx context.Context, id int64) (models.Item, error)
	List(ctx context.Context, page models.Pagination) ([]models.Item, error)
	ListMine(ctx context.Context, caller models.User, page models.Pagination) ([]models.Item, error)
	Update(ctx context.Context, caller models.User, id int64, patch models.ItemPatch) (models.Item, error)
	Delete(ctx context.Context, caller models.User, id int64) error
}

// AppInfoService reports build metadata for the health endpoint.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
