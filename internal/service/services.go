package service

import (
	"github.com/avkarpov/itemvault/internal/config"
	"github.com/avkarpov/itemvault/internal/logger"
	"github.com/avkarpov/itemvault/internal/store"
)

// Services groups all business-logic services for injection into the
// transport layer.
type Services struct {
	AuthService    AuthService
	UserService    UserService
	ItemService    ItemService
	AppInfoService AppInfoService
}

// NewServices wires the service layer over the given repositories and
// configuration.
func NewServices(repos *store.Repositories, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(repos.UserRepository, cfg.Auth, logger),
		UserService:    NewUserService(repos.UserRepository, logger),
		ItemService:    NewItemService(repos.ItemRepository, logger),
		AppInfoService: NewAppInfoService(cfg.App, logger),
	}
}
