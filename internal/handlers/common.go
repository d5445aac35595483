package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"TRIPMATE_BACK-END/internal/models"
	"TRIPMATE_BACK-END/internal/store"
	"TRIPMATE_BACK-END/internal/utils"
)

// writeInternalError logs the cause and returns a generic 500 body. Raw
// driver errors carry table names and endpoint detail that must not reach
// clients.
func writeInternalError(w http.ResponseWriter, err error) {
	log.Error().Err(err).Msg("request failed")
	utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error", "An unexpected error occurred")
}

// requireUserID extracts the authenticated user id, writing a 401 when the
// context carries none.
func requireUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return "", false
	}
	return userID, true
}

// tripIDFromQuery parses the trip_id query parameter, writing a 400 on
// missing or malformed values.
func tripIDFromQuery(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("trip_id")
	if raw == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "trip_id is required")
		return 0, false
	}
	tripID, err := strconv.Atoi(raw)
	if err != nil || tripID <= 0 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "trip_id must be a positive integer")
		return 0, false
	}
	return tripID, true
}

// requireGuest loads the caller's guest row for the trip, writing a 403 when
// the caller is not a guest and a 404 when the trip itself is unknown.
func requireGuest(w http.ResponseWriter, r *http.Request, s store.Store, tripID int, userID string) (models.TripGuest, bool) {
	if _, err := s.GetTrip(r.Context(), tripID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Not found", "Trip not found")
		} else {
			writeInternalError(w, err)
		}
		return models.TripGuest{}, false
	}

	guest, err := s.GetGuest(r.Context(), tripID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusForbidden, "Forbidden", "You are not a guest of this trip")
		} else {
			writeInternalError(w, err)
		}
		return models.TripGuest{}, false
	}
	return guest, true
}

// requireHost is requireGuest plus an is_host check, writing a 403 for
// non-host guests.
func requireHost(w http.ResponseWriter, r *http.Request, s store.Store, tripID int, userID string) (models.TripGuest, bool) {
	guest, ok := requireGuest(w, r, s, tripID, userID)
	if !ok {
		return models.TripGuest{}, false
	}
	if !guest.IsHost {
		utils.WriteErrorResponse(w, http.StatusForbidden, "Forbidden", "Only the trip host may perform this action")
		return models.TripGuest{}, false
	}
	return guest, true
}

// writeStoreError maps store sentinels onto HTTP statuses. notFoundDetail
// names the missing resource for 404 bodies.
func writeStoreError(w http.ResponseWriter, err error, notFoundDetail string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not found", notFoundDetail)
	case errors.Is(err, store.ErrDuplicate):
		utils.WriteErrorResponse(w, http.StatusConflict, "Conflict", "Resource already exists")
	default:
		writeInternalError(w, err)
	}
}
