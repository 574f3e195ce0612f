package service

import (
	"context"
	"fmt"

	"github.com/avkarpov/itemvault/internal/logger"
	"github.com/avkarpov/itemvault/internal/store"
	"github.com/avkarpov/itemvault/models"
)

// itemService is the concrete implementation of ItemService. Writes go
// through the shared owner-or-superuser policy; reads are unrestricted.
type itemService struct {
	itemRepository store.ItemRepository
	logger         *logger.Logger
}

// NewItemService constructs an ItemService over the given repository.
func NewItemService(itemRepository store.ItemRepository, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		logger:         logger,
	}
}

// Create persists a new item owned by the caller.
// Returns ErrInvalidDataProvided if the title is empty.
func (s *itemService) Create(ctx context.Context, caller models.User, create models.ItemCreate) (models.Item, error) {
	if create.Title == "" {
		return models.Item{}, ErrInvalidDataProvided
	}

	item, err := s.itemRepository.CreateItem(ctx, models.Item{
		Title:       create.Title,
		Description: create.Description,
		OwnerID:     caller.ID,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("owner_id", caller.ID).Msg("item creation failed")
		return models.Item{}, fmt.Errorf("item creation failed: %w", err)
	}

	return item, nil
}

// GetByID returns the item with the given ID.
func (s *itemService) GetByID(ctx context.Context, id int64) (models.Item, error) {
	item, err := s.itemRepository.FindItemByID(ctx, id)
	if err != nil {
		return models.Item{}, fmt.Errorf("item lookup failed: %w", err)
	}

	return item, nil
}

// List returns a page of all items.
func (s *itemService) List(ctx context.Context, page models.Pagination) ([]models.Item, error) {
	items, err := s.itemRepository.ListItems(ctx, page.Normalize())
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("item listing failed")
		return nil, fmt.Errorf("item listing failed: %w", err)
	}

	return items, nil
}

// ListMine returns a page of the caller's own items.
func (s *itemService) ListMine(ctx context.Context, caller models.User, page models.Pagination) ([]models.Item, error) {
	items, err := s.itemRepository.ListItemsByOwner(ctx, caller.ID, page.Normalize())
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("owner_id", caller.ID).Msg("item listing failed")
		return nil, fmt.Errorf("item listing failed: %w", err)
	}

	return items, nil
}

// Update applies the non-nil fields of patch to the item with the given ID.
// The item is loaded first so that unknown IDs surface as not-found rather
// than as a privilege error.
func (s *itemService) Update(ctx context.Context, caller models.User, id int64, patch models.ItemPatch) (models.Item, error) {
	item, err := s.itemRepository.FindItemByID(ctx, id)
	if err != nil {
		return models.Item{}, fmt.Errorf("item lookup failed: %w", err)
	}

	if err := requireOwnerOrSuperuser(caller, item.OwnerID); err != nil {
		return models.Item{}, err
	}

	updated, err := s.itemRepository.UpdateItem(ctx, id, patch)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("item update failed")
		return models.Item{}, fmt.Errorf("item update failed: %w", err)
	}

	return updated, nil
}

// Delete removes the item with the given ID, subject to the same ownership
// policy as Update.
func (s *itemService) Delete(ctx context.Context, caller models.User, id int64) error {
	item, err := s.itemRepository.FindItemByID(ctx, id)
	if err != nil {
		return fmt.Errorf("item lookup failed: %w", err)
	}

	if err := requireOwnerOrSuperuser(caller, item.OwnerID); err != nil {
		return err
	}

	if err := s.itemRepository.DeleteItem(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("item deletion failed")
		return fmt.Errorf("item deletion failed: %w", err)
	}

	return nil
}
