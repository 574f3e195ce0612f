package server

import (
	"testing"

	"github.com/avkarpov/itemvault/internal/config"
	"github.com/avkarpov/itemvault/internal/handler"
	serverhttp "github.com/avkarpov/itemvault/internal/handler/http"
	"github.com/avkarpov/itemvault/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	handlers := &handler.Handlers{
		HTTP: serverhttp.NewHandler(nil, config.App{}, logger.Nop()),
	}

	srv, err := NewServer(handlers, config.Server{HTTPAddress: ":0"}, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, srv)
}

func TestNewServer_NoAddress(t *testing.T) {
	handlers := &handler.Handlers{
		HTTP: serverhttp.NewHandler(nil, config.App{}, logger.Nop()),
	}

	_, err := NewServer(handlers, config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
}
