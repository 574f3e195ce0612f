// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"errors"
	"fmt"

	"github.com/avkarpov/itemvault/internal/config"
	"github.com/avkarpov/itemvault/internal/logger"
	"github.com/avkarpov/itemvault/internal/store"
	"github.com/avkarpov/itemvault/internal/utils"
	"github.com/avkarpov/itemvault/models"
)

// SeedSuperuserWorker is a one-shot startup task that guarantees the
// configured superuser account exists. When the account is already present
// it is left untouched, so a changed password in the config does not rotate
// the stored credential.
type SeedSuperuserWorker struct {
	userRepository store.UserRepository
	cfg            config.Auth
	logger         *logger.Logger
}

// NewSeedSuperuserWorker constructs the seeder over the given repository.
func NewSeedSuperuserWorker(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) *SeedSuperuserWorker {
	return &SeedSuperuserWorker{
		userRepository: userRepository,
		cfg:            cfg,
		logger:         logger,
	}
}

// Run creates the superuser account unless one with the configured email
// already exists. Seeding is skipped entirely when no email is configured.
func (w *SeedSuperuserWorker) Run(ctx context.Context) error {
	if w.cfg.FirstSuperuserEmail == "" {
		w.logger.Debug().Msg("no superuser email configured, skipping seeding")
		return nil
	}

	_, err := w.userRepository.FindUserByEmail(ctx, w.cfg.FirstSuperuserEmail)
	if err == nil {
		w.logger.Debug().Str("email", w.cfg.FirstSuperuserEmail).Msg("superuser already exists")
		return nil
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		return fmt.Errorf("superuser lookup failed: %w", err)
	}

	hash, err := utils.HashPassword(w.cfg.FirstSuperuserPassword)
	if err != nil {
		return fmt.Errorf("hashing superuser password failed: %w", err)
	}

	created, err := w.userRepository.CreateUser(ctx, models.User{
		Email:          w.cfg.FirstSuperuserEmail,
		HashedPassword: hash,
		IsActive:       true,
		IsSuperuser:    true,
	})
	if err != nil {
		// Another instance may have seeded concurrently.
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			w.logger.Debug().Str("email", w.cfg.FirstSuperuserEmail).Msg("superuser already exists")
			return nil
		}
		return fmt.Errorf("superuser creation failed: %w", err)
	}

	w.logger.Info().Int64("id", created.ID).Str("email", created.Email).Msg("superuser account seeded")
	return nil
}
