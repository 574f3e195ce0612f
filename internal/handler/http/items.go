package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/avkarpov/itemvault/internal/logger"
	"github.com/avkarpov/itemvault/internal/store"
	"github.com/avkarpov/itemvault/internal/utils"
	"github.com/avkarpov/itemvault/models"
	"github.com/go-chi/chi/v5"
)

// createItem persists a new item owned by the caller and responds 201.
func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	caller, ok := utils.GetUserFromContext(ctx)
	if !ok {
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var create models.ItemCreate
	if err := json.NewDecoder(r.Body).Decode(&create); err != nil {
		log.Warn().Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	item, err := h.services.ItemService.Create(ctx, caller, create)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, item, http.StatusCreated)
}

// listItems returns a page of all items. No authentication required.
func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.ItemService.List(r.Context(), paginationFromRequest(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

// getItem returns the item with the path ID. No authentication required.
func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	id, err := itemIDFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	item, err := h.services.ItemService.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

// myItems returns a page of the caller's own items.
func (h *Handler) myItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := utils.GetUserFromContext(ctx)
	if !ok {
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	items, err := h.services.ItemService.ListMine(ctx, caller, paginationFromRequest(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

// updateItem applies a partial update to the item with the path ID, subject
// to the owner-or-superuser policy.
func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	caller, ok := utils.GetUserFromContext(ctx)
	if !ok {
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	id, err := itemIDFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var patch models.ItemPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Warn().Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	item, err := h.services.ItemService.Update(ctx, caller, id, patch)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

// deleteItem removes the item with the path ID, subject to the
// owner-or-superuser policy. Responds 204 on success.
func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := utils.GetUserFromContext(ctx)
	if !ok {
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	id, err := itemIDFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.services.ItemService.Delete(ctx, caller, id); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// itemIDFromRequest parses the {id} path parameter. A non-numeric value maps
// to the not-found sentinel since no item can have such an ID.
func itemIDFromRequest(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, store.ErrItemNotFound
	}
	return id, nil
}
