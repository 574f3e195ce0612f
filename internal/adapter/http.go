package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/avkarpov/itemvault/internal/config"
	"github.com/avkarpov/itemvault/internal/logger"
	"github.com/avkarpov/itemvault/internal/utils"
	"github.com/avkarpov/itemvault/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// cfg.HTTPAddress and configures the underlying HTTP client with the resolved
// base URL and request timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg config.Server, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Register implements [ServerAdapter].
func (h *httpServerAdapter) Register(ctx context.Context, create models.UserCreate) (models.User, error) {
	var created models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(create).
		SetResult(&created).
		Post("/api/v1/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return created, nil
}

// Login implements [ServerAdapter]. Credentials travel form-encoded with the
// OAuth2 password flow field names ("username" carries the email).
func (h *httpServerAdapter) Login(ctx context.Context, email, password string) (models.TokenPair, error) {
	var pair models.TokenPair

	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"username": email,
			"password": password,
		}).
		SetResult(&pair).
		Post("/api/v1/auth/login")
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenPair{}, err
	}

	h.SetToken(pair.AccessToken)
	return pair, nil
}

// Refresh implements [ServerAdapter].
func (h *httpServerAdapter) Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	var pair models.TokenPair

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"refresh_token": refreshToken}).
		SetResult(&pair).
		Post("/api/v1/auth/refresh")
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("refresh request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenPair{}, err
	}

	h.SetToken(pair.AccessToken)
	return pair, nil
}

// TestToken implements [ServerAdapter].
func (h *httpServerAdapter) TestToken(ctx context.Context) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).
		SetResult(&user).
		Post("/api/v1/auth/test-token")
	if err != nil {
		return models.User{}, fmt.Errorf("test token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Me implements [ServerAdapter].
func (h *httpServerAdapter) Me(ctx context.Context) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).
		SetResult(&user).
		Get("/api/v1/users/me")
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// UpdateMe implements [ServerAdapter].
func (h *httpServerAdapter) UpdateMe(ctx context.Context, update models.UserUpdate) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		SetResult(&user).
		Put("/api/v1/users/me")
	if err != nil {
		return models.User{}, fmt.Errorf("update me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// User implements [ServerAdapter].
func (h *httpServerAdapter) User(ctx context.Context, id int64) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).
		SetResult(&user).
		Get("/api/v1/users/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.User{}, fmt.Errorf("user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Users implements [ServerAdapter].
func (h *httpServerAdapter) Users(ctx context.Context, page models.Pagination) ([]models.User, error) {
	var users []models.User

	resp, err := h.authedRequest(ctx).
		SetQueryParams(paginationParams(page)).
		SetResult(&users).
		Get("/api/v1/users/")
	if err != nil {
		return nil, fmt.Errorf("users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return users, nil
}

// DeleteUser implements [ServerAdapter].
func (h *httpServerAdapter) DeleteUser(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/v1/users/" + strconv.FormatInt(id, 10))
	if err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}

	return mapHTTPError(resp)
}

// CreateItem implements [ServerAdapter].
func (h *httpServerAdapter) CreateItem(ctx context.Context, create models.ItemCreate) (models.Item, error) {
	var item models.Item

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(create).
		SetResult(&item).
		Post("/api/v1/items/")
	if err != nil {
		return models.Item{}, fmt.Errorf("create item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Item{}, err
	}

	return item, nil
}

// Item implements [ServerAdapter].
func (h *httpServerAdapter) Item(ctx context.Context, id int64) (models.Item, error) {
	var item models.Item

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&item).
		Get("/api/v1/items/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.Item{}, fmt.Errorf("item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Item{}, err
	}

	return item, nil
}

// Items implements [ServerAdapter].
func (h *httpServerAdapter) Items(ctx context.Context, page models.Pagination) ([]models.Item, error) {
	var items []models.Item

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(paginationParams(page)).
		SetResult(&items).
		Get("/api/v1/items/")
	if err != nil {
		return nil, fmt.Errorf("items request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return items, nil
}

// MyItems implements [ServerAdapter].
func (h *httpServerAdapter) MyItems(ctx context.Context, page models.Pagination) ([]models.Item, error) {
	var items []models.Item

	resp, err := h.authedRequest(ctx).
		SetQueryParams(paginationParams(page)).
		SetResult(&items).
		Get("/api/v1/items/my-items")
	if err != nil {
		return nil, fmt.Errorf("my items request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return items, nil
}

// UpdateItem implements [ServerAdapter].
func (h *httpServerAdapter) UpdateItem(ctx context.Context, id int64, patch models.ItemPatch) (models.Item, error) {
	var item models.Item

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(patch).
		SetResult(&item).
		Put("/api/v1/items/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.Item{}, fmt.Errorf("update item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Item{}, err
	}

	return item, nil
}

// DeleteItem implements [ServerAdapter].
func (h *httpServerAdapter) DeleteItem(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/v1/items/" + strconv.FormatInt(id, 10))
	if err != nil {
		return fmt.Errorf("delete item request: %w", err)
	}

	return mapHTTPError(resp)
}

// Health implements [ServerAdapter].
func (h *httpServerAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&health).
		Get("/health")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthResponse{}, err
	}

	return health, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func paginationParams(page models.Pagination) map[string]string {
	params := make(map[string]string, 2)
	if page.Skip > 0 {
		params["skip"] = strconv.Itoa(page.Skip)
	}
	if page.Limit > 0 {
		params["limit"] = strconv.Itoa(page.Limit)
	}
	return params
}
