package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avkarpov/itemvault/internal/config"
	"github.com/avkarpov/itemvault/internal/logger"
	"github.com/avkarpov/itemvault/internal/mock"
	"github.com/avkarpov/itemvault/internal/service"
	"github.com/avkarpov/itemvault/internal/store"
	"github.com/avkarpov/itemvault/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// testEnv bundles a running test server with the store mocks behind it. The
// full middleware chain and the real service layer sit between the HTTP
// surface and the mocks, so tests exercise routing, auth, and error mapping
// end to end.
type testEnv struct {
	server   *httptest.Server
	users    *mock.MockUserRepository
	items    *mock.MockItemRepository
	services *service.Services
}

func newTestEnv(t *testing.T, ctrl *gomock.Controller) *testEnv {
	t.Helper()

	mockUsers := mock.NewMockUserRepository(ctrl)
	mockItems := mock.NewMockItemRepository(ctrl)

	cfg := &config.StructuredConfig{
		App: config.App{Version: "test"},
		Auth: config.Auth{
			TokenSignKey:         "test-sign-key",
			TokenIssuer:          "itemvault",
			AccessTokenDuration:  30 * time.Minute,
			RefreshTokenDuration: 7 * 24 * time.Hour,
		},
	}

	services := service.NewServices(&store.Repositories{
		UserRepository: mockUsers,
		ItemRepository: mockItems,
	}, cfg, logger.Nop())

	handler := NewHandler(services, cfg.App, logger.Nop())
	server := httptest.NewServer(handler.Init())
	t.Cleanup(server.Close)

	return &testEnv{
		server:   server,
		users:    mockUsers,
		items:    mockItems,
		services: services,
	}
}

// accessTokenFor issues a real signed access token for the given user.
func (e *testEnv) accessTokenFor(t *testing.T, user models.User) string {
	t.Helper()
	pair, err := e.services.AuthService.CreateTokenPair(context.Background(), user)
	require.NoError(t, err)
	return pair.AccessToken
}

func (e *testEnv) do(t *testing.T, req *http.Request) *http.Response {
	t.Helper()
	resp, err := e.server.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}
