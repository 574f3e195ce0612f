package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/avkarpov/itemvault/models"
)

// Column lists shared by the query builders and the row scanners. The order
// here must match the scan order in the repositories.
var (
	userColumns = []string{"id", "email", "hashed_password", "full_name", "is_active", "is_superuser", "created_at", "updated_at"}
	itemColumns = []string{"id", "title", "description", "owner_id", "created_at", "updated_at"}
)

// returningAll appends a RETURNING clause listing the given columns, so that
// INSERT and UPDATE statements hand back the canonical database row.
// Supported by PostgreSQL and by SQLite since 3.35.
func returningAll(columns []string) string {
	clause := "RETURNING "
	for i, c := range columns {
		if i > 0 {
			clause += ", "
		}
		clause += c
	}
	return clause
}

func insertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(user.TableName()).
		Columns("email", "hashed_password", "full_name", "is_active", "is_superuser").
		Values(user.Email, user.HashedPassword, user.FullName, user.IsActive, user.IsSuperuser).
		Suffix(returningAll(userColumns)).
		ToSql()
}

func selectUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func selectUserByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func selectUsersQuery(b sq.StatementBuilderType, page models.Pagination) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		OrderBy("id").
		Offset(uint64(page.Skip)).
		Limit(uint64(page.Limit)).
		ToSql()
}

// updateUserQuery builds a partial UPDATE from the non-nil patch fields.
// updated_at is always touched so that even a no-op patch leaves a trace.
func updateUserQuery(b sq.StatementBuilderType, id int64, patch models.UserPatch) (string, []any, error) {
	update := b.Update(models.User{}.TableName()).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP"))

	if patch.Email != nil {
		update = update.Set("email", *patch.Email)
	}
	if patch.FullName != nil {
		update = update.Set("full_name", *patch.FullName)
	}
	if patch.HashedPassword != nil {
		update = update.Set("hashed_password", *patch.HashedPassword)
	}
	if patch.IsActive != nil {
		update = update.Set("is_active", *patch.IsActive)
	}

	return update.
		Where(sq.Eq{"id": id}).
		Suffix(returningAll(userColumns)).
		ToSql()
}

func deleteUserQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(models.User{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func insertItemQuery(b sq.StatementBuilderType, item models.Item) (string, []any, error) {
	return b.Insert(item.TableName()).
		Columns("title", "description", "owner_id").
		Values(item.Title, item.Description, item.OwnerID).
		Suffix(returningAll(itemColumns)).
		ToSql()
}

func selectItemByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(itemColumns...).
		From(models.Item{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func selectItemsQuery(b sq.StatementBuilderType, page models.Pagination) (string, []any, error) {
	return b.Select(itemColumns...).
		From(models.Item{}.TableName()).
		OrderBy("id").
		Offset(uint64(page.Skip)).
		Limit(uint64(page.Limit)).
		ToSql()
}

func selectItemsByOwnerQuery(b sq.StatementBuilderType, ownerID int64, page models.Pagination) (string, []any, error) {
	return b.Select(itemColumns...).
		From(models.Item{}.TableName()).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("id").
		Offset(uint64(page.Skip)).
		Limit(uint64(page.Limit)).
		ToSql()
}

func updateItemQuery(b sq.StatementBuilderType, id int64, patch models.ItemPatch) (string, []any, error) {
	update := b.Update(models.Item{}.TableName()).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP"))

	if patch.Title != nil {
		update = update.Set("title", *patch.Title)
	}
	if patch.Description != nil {
		update = update.Set("description", *patch.Description)
	}

	return update.
		Where(sq.Eq{"id": id}).
		Suffix(returningAll(itemColumns)).
		ToSql()
}

func deleteItemQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(models.Item{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}
