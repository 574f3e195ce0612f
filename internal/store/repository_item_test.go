package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/avkarpov/itemvault/internal/logger"
	"github.com/avkarpov/itemvault/models"
)

func newTestItemRepo(t *testing.T) (*itemRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	wrapped := &DB{
		DB:                 db,
		builder:            sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             l,
	}
	repo := &itemRepository{
		db:     wrapped,
		logger: l,
	}
	return repo, mock, db
}

func itemRows(items ...models.Item) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "title", "description", "owner_id", "created_at", "updated_at"})
	for _, it := range items {
		rows.AddRow(it.ID, it.Title, it.Description, it.OwnerID, it.CreatedAt, it.UpdatedAt)
	}
	return rows
}

func TestCreateItem_Success(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	item := models.Item{Title: "desk", Description: "standing desk", OwnerID: 3}
	saved := item
	saved.ID = 1
	saved.CreatedAt = time.Now()
	saved.UpdatedAt = saved.CreatedAt

	mock.ExpectQuery("INSERT INTO items").
		WithArgs(item.Title, item.Description, item.OwnerID).
		WillReturnRows(itemRows(saved))

	created, err := repo.CreateItem(context.Background(), item)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected ID=1, got %d", created.ID)
	}
	if created.OwnerID != 3 {
		t.Errorf("expected OwnerID=3, got %d", created.OwnerID)
	}
}

func TestFindItemByID_NotFound(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM items WHERE id").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindItemByID(context.Background(), 404)
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestListItemsByOwner_Success(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	now := time.Now()
	stored := []models.Item{
		{ID: 1, Title: "desk", OwnerID: 3, CreatedAt: now, UpdatedAt: now},
		{ID: 2, Title: "lamp", OwnerID: 3, CreatedAt: now, UpdatedAt: now},
	}

	mock.ExpectQuery("SELECT (.+) FROM items WHERE owner_id").
		WithArgs(int64(3)).
		WillReturnRows(itemRows(stored...))

	items, err := repo.ListItemsByOwner(context.Background(), 3, models.Pagination{Limit: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Title != "desk" || items[1].Title != "lamp" {
		t.Errorf("unexpected items order: %+v", items)
	}
}

func TestListItems_QueryError(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM items").
		WillReturnError(errors.New("db gone"))

	_, err := repo.ListItems(context.Background(), models.Pagination{Limit: 100})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestUpdateItem_Success(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	title := "new title"
	updated := models.Item{ID: 5, Title: title, OwnerID: 3, CreatedAt: time.Now(), UpdatedAt: time.Now()}

	mock.ExpectQuery("UPDATE items SET").
		WithArgs(title, int64(5)).
		WillReturnRows(itemRows(updated))

	got, err := repo.UpdateItem(context.Background(), 5, models.ItemPatch{Title: &title})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Title != title {
		t.Errorf("expected title %q, got %q", title, got.Title)
	}
}

func TestUpdateItem_NotFound(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	title := "whatever"
	mock.ExpectQuery("UPDATE items SET").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateItem(context.Background(), 404, models.ItemPatch{Title: &title})
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestDeleteItem_Success(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM items").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteItem(context.Background(), 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteItem_NotFound(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM items").
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteItem(context.Background(), 404)
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}
