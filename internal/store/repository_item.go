// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avkarpov/itemvault/internal/logger"
	"github.com/avkarpov/itemvault/models"
)

// itemRepository is the SQL-backed implementation of [ItemRepository].
// Ownership checks live in the service layer; this type deals purely with
// rows in the "items" table.
type itemRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewItemRepository constructs an [ItemRepository] backed by the provided
// database connection and logger.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		db:     db,
		logger: logger,
	}
}

// CreateItem persists a new item and returns the fully populated
// [models.Item] with server-assigned fields (ID, CreatedAt, UpdatedAt).
func (r *itemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := insertItemQuery(r.db.builder, item)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.CreateItem").Msg("error: building query")
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Item
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&created.ID, &created.Title, &created.Description, &created.OwnerID,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.CreateItem").Msg("error: inserting item")
		r.db.warnIfRetryable(log, err)
		return models.Item{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindItemByID retrieves the item with the given ID.
// Returns [ErrItemNotFound] if no such item exists.
func (r *itemRepository) FindItemByID(ctx context.Context, id int64) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectItemByIDQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.FindItemByID").Msg("error: building query")
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Item
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&found.ID, &found.Title, &found.Description, &found.OwnerID,
		&found.CreatedAt, &found.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, ErrItemNotFound
		}
		log.Err(err).Str("func", "*itemRepository.FindItemByID").Msg("error: scanning item row")
		r.db.warnIfRetryable(log, err)
		return models.Item{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// ListItems returns a page of all items ordered by ID.
func (r *itemRepository) ListItems(ctx context.Context, page models.Pagination) ([]models.Item, error) {
	query, args, err := selectItemsQuery(r.db.builder, page)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*itemRepository.ListItems").Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryItems(ctx, "*itemRepository.ListItems", query, args, page)
}

// ListItemsByOwner returns a page of items owned by the given user, ordered
// by ID.
func (r *itemRepository) ListItemsByOwner(ctx context.Context, ownerID int64, page models.Pagination) ([]models.Item, error) {
	query, args, err := selectItemsByOwnerQuery(r.db.builder, ownerID, page)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*itemRepository.ListItemsByOwner").Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryItems(ctx, "*itemRepository.ListItemsByOwner", query, args, page)
}

// UpdateItem applies the non-nil fields of patch to the item with the given
// ID and returns the updated record.
// Returns [ErrItemNotFound] if no row matched the ID.
func (r *itemRepository) UpdateItem(ctx context.Context, id int64, patch models.ItemPatch) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := updateItemQuery(r.db.builder, id, patch)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.UpdateItem").Msg("error: building query")
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Item
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&updated.ID, &updated.Title, &updated.Description, &updated.OwnerID,
		&updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, ErrItemNotFound
		}
		log.Err(err).Str("func", "*itemRepository.UpdateItem").Msg("error: updating item")
		r.db.warnIfRetryable(log, err)
		return models.Item{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteItem removes the item with the given ID.
// Returns [ErrItemNotFound] if no row was deleted.
func (r *itemRepository) DeleteItem(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := deleteItemQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.DeleteItem").Msg("error: building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.DeleteItem").Msg("error: deleting item")
		r.db.warnIfRetryable(log, err)
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}

func (r *itemRepository) queryItems(ctx context.Context, funcName, query string, args []any, page models.Pagination) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error: executing query")
		r.db.warnIfRetryable(log, err)
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0, page.Limit)
	for rows.Next() {
		var it models.Item
		if err := rows.Scan(&it.ID, &it.Title, &it.Description, &it.OwnerID, &it.CreatedAt, &it.UpdatedAt); err != nil {
			log.Err(err).Str("func", funcName).Msg("error: scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error: iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}
