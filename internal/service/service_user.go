package service

import (
	"context"
	"fmt"

	"github.com/avkarpov/itemvault/internal/logger"
	"github.com/avkarpov/itemvault/internal/store"
	"github.com/avkarpov/itemvault/internal/utils"
	"github.com/avkarpov/itemvault/models"
)

// userService is the concrete implementation of UserService. It layers the
// shared access policy over the UserRepository.
type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewUserService constructs a UserService over the given repository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// GetByID returns the user with the given ID.
//
// A caller may always read their own record. Reading anyone else's record
// requires the superuser flag; the privilege check fires before the lookup,
// so non-superusers probing foreign IDs get ErrForbidden rather than a
// not-found signal.
func (s *userService) GetByID(ctx context.Context, caller models.User, id int64) (models.User, error) {
	if caller.ID != id {
		if err := requireSuperuser(caller); err != nil {
			return models.User{}, err
		}
	}

	user, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user, nil
}

// List returns a page of all users. Superusers only.
func (s *userService) List(ctx context.Context, caller models.User, page models.Pagination) ([]models.User, error) {
	if err := requireSuperuser(caller); err != nil {
		return nil, err
	}

	users, err := s.userRepository.ListUsers(ctx, page.Normalize())
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("user listing failed")
		return nil, fmt.Errorf("user listing failed: %w", err)
	}

	return users, nil
}

// UpdateMe applies the optional fields of update to the caller's own account.
//
// A new password is validated against the minimum length and re-hashed before
// storage. An email change that collides with another account surfaces as
// store.ErrEmailAlreadyExists via the unique constraint.
func (s *userService) UpdateMe(ctx context.Context, caller models.User, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	patch := models.UserPatch{
		Email:    update.Email,
		FullName: update.FullName,
		IsActive: update.IsActive,
	}

	if update.Email != nil && !isValidEmail(*update.Email) {
		return models.User{}, ErrInvalidDataProvided
	}

	if update.Password != nil {
		if len(*update.Password) < minPasswordLength {
			return models.User{}, ErrInvalidDataProvided
		}
		hashedPassword, err := utils.HashPassword(*update.Password)
		if err != nil {
			log.Err(err).Msg("password hashing failed")
			return models.User{}, ErrInvalidDataProvided
		}
		patch.HashedPassword = &hashedPassword
	}

	updated, err := s.userRepository.UpdateUser(ctx, caller.ID, patch)
	if err != nil {
		log.Err(err).Int64("id", caller.ID).Msg("user update failed")
		return models.User{}, fmt.Errorf("user update failed: %w", err)
	}

	return updated, nil
}

// Delete removes the account with the given ID. Callers may delete their own
// account; deleting anyone else's requires the superuser flag. Items owned by
// the account are removed by the database cascade.
func (s *userService) Delete(ctx context.Context, caller models.User, id int64) error {
	if err := requireOwnerOrSuperuser(caller, id); err != nil {
		return err
	}

	if err := s.userRepository.DeleteUser(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("user deletion failed")
		return fmt.Errorf("user deletion failed: %w", err)
	}

	return nil
}
