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

// me returns the authenticated caller's own profile.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	caller, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, caller, http.StatusOK)
}

// updateMe applies a partial update to the caller's own account.
func (h *Handler) updateMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	caller, ok := utils.GetUserFromContext(ctx)
	if !ok {
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var update models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Warn().Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.UserService.UpdateMe(ctx, caller, update)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

// getUser returns the user with the path ID, subject to the self-or-superuser
// policy.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := utils.GetUserFromContext(ctx)
	if !ok {
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	id, err := userIDFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.GetByID(ctx, caller, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// listUsers returns a page of all accounts. Superusers only.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := utils.GetUserFromContext(ctx)
	if !ok {
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	users, err := h.services.UserService.List(ctx, caller, paginationFromRequest(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

// deleteUser removes the account with the path ID, subject to the
// self-or-superuser policy. Responds 204 on success.
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := utils.GetUserFromContext(ctx)
	if !ok {
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	id, err := userIDFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.services.UserService.Delete(ctx, caller, id); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// userIDFromRequest parses the {id} path parameter. A non-numeric value maps
// to the not-found sentinel since no user can have such an ID.
func userIDFromRequest(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, store.ErrUserNotFound
	}
	return id, nil
}
