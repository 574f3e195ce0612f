// SPDX-License-Identifier: Apache-2.0

// Package adapter provides a typed HTTP client for the itemvault API.
//
// The primary abstraction is [ServerAdapter], which decouples callers from
// the wire protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/avkarpov/itemvault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines typed communication with the itemvault server.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called with the access
	// token obtained from Login or Refresh.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account and returns the persisted user.
	Register(ctx context.Context, create models.UserCreate) (models.User, error)

	// Login authenticates with email and password. On success the returned
	// access token is stored via SetToken and the full pair is returned.
	Login(ctx context.Context, email, password string) (models.TokenPair, error)

	// Refresh exchanges a refresh token for a new token pair. On success the
	// new access token replaces the stored one.
	Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error)

	// TestToken returns the account the stored access token resolves to.
	TestToken(ctx context.Context) (models.User, error)

	// Me returns the authenticated caller's own profile.
	Me(ctx context.Context) (models.User, error)

	// UpdateMe applies a partial update to the caller's own account.
	UpdateMe(ctx context.Context, update models.UserUpdate) (models.User, error)

	// User returns the account with the given ID.
	User(ctx context.Context, id int64) (models.User, error)

	// Users returns a page of all accounts. Superusers only.
	Users(ctx context.Context, page models.Pagination) ([]models.User, error)

	// DeleteUser removes the account with the given ID.
	DeleteUser(ctx context.Context, id int64) error

	// CreateItem persists a new item owned by the caller.
	CreateItem(ctx context.Context, create models.ItemCreate) (models.Item, error)

	// Item returns the item with the given ID. No authentication required.
	Item(ctx context.Context, id int64) (models.Item, error)

	// Items returns a page of all items. No authentication required.
	Items(ctx context.Context, page models.Pagination) ([]models.Item, error)

	// MyItems returns a page of the caller's own items.
	MyItems(ctx context.Context, page models.Pagination) ([]models.Item, error)

	// UpdateItem applies a partial update to the item with the given ID.
	UpdateItem(ctx context.Context, id int64, patch models.ItemPatch) (models.Item, error)

	// DeleteItem removes the item with the given ID.
	DeleteItem(ctx context.Context, id int64) error

	// Health probes the unauthenticated liveness endpoint.
	Health(ctx context.Context) (models.HealthResponse, error)
}
