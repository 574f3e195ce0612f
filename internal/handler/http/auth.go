// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"net/http"

	"github.com/avkarpov/itemvault/internal/logger"
	"github.com/avkarpov/itemvault/internal/utils"
	"github.com/avkarpov/itemvault/models"
)

// register creates a new account from a JSON body and returns the persisted
// user with HTTP 201.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var create models.UserCreate
	if err := json.NewDecoder(r.Body).Decode(&create); err != nil {
		log.Warn().Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, create)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", registeredUser.ID).Msg("user registered")
	utils.WriteJSON(w, registeredUser, http.StatusCreated)
}

// login authenticates form-encoded credentials (`username` carries the
// email, mirroring the OAuth2 password flow field names) and returns a token
// pair.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Warn().Err(err).Msg("invalid form body")
		utils.WriteJSONError(w, "invalid form body", http.StatusBadRequest)
		return
	}

	email := r.PostFormValue("username")
	password := r.PostFormValue("password")

	foundUser, err := h.services.AuthService.Login(ctx, email, password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	pair, err := h.services.AuthService.CreateTokenPair(ctx, foundUser)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", foundUser.ID).Msg("user successfully logged in")
	utils.WriteJSON(w, pair, http.StatusOK)
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// refresh exchanges a refresh token for a brand-new token pair.
func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	pair, err := h.services.AuthService.Refresh(ctx, req.RefreshToken)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, pair, http.StatusOK)
}

// testToken echoes the account resolved from the presented access token.
func (h *Handler) testToken(w http.ResponseWriter, r *http.Request) {
	caller, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, caller, http.StatusOK)
}
