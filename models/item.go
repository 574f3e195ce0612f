package models

import "time"

// Item is a user-owned resource. Every item references exactly one owner;
// the reference is enforced by a foreign key and removed together with the
// owning account (ON DELETE CASCADE).
type Item struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`

	// OwnerID references the user that owns this item.
	OwnerID int64 `json:"owner_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Item model.
func (i Item) TableName() string {
	return "items"
}

// ItemCreate carries the caller-supplied fields of a new item.
// The owner is always the authenticated caller, never part of the payload.
type ItemCreate struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// ItemPatch is a partial item update. Nil fields are left untouched.
type ItemPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}
