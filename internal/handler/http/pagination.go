package http

import (
	"net/http"
	"strconv"

	"github.com/avkarpov/itemvault/models"
)

// paginationFromRequest reads the skip/limit query parameters. Absent or
// unparsable values fall back to zero; the service layer normalizes zero to
// the default page size.
func paginationFromRequest(r *http.Request) models.Pagination {
	var page models.Pagination

	if skip, err := strconv.Atoi(r.URL.Query().Get("skip")); err == nil {
		page.Skip = skip
	}
	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil {
		page.Limit = limit
	}

	return page
}
