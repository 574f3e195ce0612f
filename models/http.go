package models

// DefaultPageLimit bounds list responses when the caller does not specify
// a limit of their own.
const DefaultPageLimit = 100

// Pagination carries the skip/limit window of a list request.
type Pagination struct {
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
}

// Normalize clamps negative offsets and applies the default limit.
func (p Pagination) Normalize() Pagination {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	return p
}
