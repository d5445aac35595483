package handlers

import (
	"errors"
	"net/http"

	"TRIPMATE_BACK-END/internal/dto"
	"TRIPMATE_BACK-END/internal/models"
	"TRIPMATE_BACK-END/internal/store"
	"TRIPMATE_BACK-END/internal/utils"
)

// GuestsHandler manages trip membership endpoints
type GuestsHandler struct {
	store store.Store
}

// NewGuestsHandler creates a new GuestsHandler
func NewGuestsHandler(s store.Store) *GuestsHandler {
	return &GuestsHandler{store: s}
}

// GetTripGuests handles GET /trip_guests/get-trip-guests
// @Summary List a trip's guests with profile names and RSVP states
// @Tags trip_guests
// @Produce json
// @Param trip_id query int true "Trip id"
// @Success 200 {object} dto.GetTripGuestsResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /trip_guests/get-trip-guests [get]
func (h *GuestsHandler) GetTripGuests(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	tripID, ok := tripIDFromQuery(w, r)
	if !ok {
		return
	}
	if _, ok := requireGuest(w, r, h.store, tripID, userID); !ok {
		return
	}

	guests, err := h.store.ListGuests(r.Context(), tripID)
	if err != nil {
		writeInternalError(w, err)
		return
	}

	items := make([]dto.GuestItem, 0, len(guests))
	for _, g := range guests {
		items = append(items, dto.GuestItem{
			GuestID:        g.GuestID,
			GuestFirstName: g.FirstName,
			GuestLastName:  g.LastName,
			IsHost:         g.IsHost,
			RsvpStatus:     string(g.RsvpStatus),
		})
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.GetTripGuestsResponse{Guests: items})
}

// GetGuestInfo handles GET /trip_guests/get-guest-info
// @Summary Get the caller's own membership row for a trip
// @Tags trip_guests
// @Produce json
// @Param trip_id query int true "Trip id"
// @Success 200 {object} dto.GetGuestInfoResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /trip_guests/get-guest-info [get]
func (h *GuestsHandler) GetGuestInfo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	tripID, ok := tripIDFromQuery(w, r)
	if !ok {
		return
	}

	guest, ok := requireGuest(w, r, h.store, tripID, userID)
	if !ok {
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.GetGuestInfoResponse{
		Guest: dto.GuestInfo{
			TripID:      guest.TripID,
			GuestUserID: guest.GuestID,
			IsHost:      guest.IsHost,
			RsvpStatus:  string(guest.RsvpStatus),
		},
	})
}

// AcceptInvite handles POST /trip_guests/accept-invite
// @Summary Join a trip through its invite token
// @Tags trip_guests
// @Accept json
// @Produce json
// @Param payload body dto.AcceptInviteRequest true "Invite payload"
// @Success 201 {object} dto.AcceptInviteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /trip_guests/accept-invite [post]
func (h *GuestsHandler) AcceptInvite(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req dto.AcceptInviteRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if req.TripToken == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "trip_token is required")
		return
	}

	trip, err := h.store.GetTripByToken(r.Context(), req.TripToken)
	if err != nil {
		writeStoreError(w, err, "Trip not found")
		return
	}

	guest := models.TripGuest{
		TripID:     trip.ID,
		GuestID:    userID,
		IsHost:     false,
		RsvpStatus: models.RsvpInvited,
	}
	if err := h.store.AddGuest(r.Context(), guest); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			utils.WriteErrorResponse(w, http.StatusConflict, "Conflict", "You are already a guest of this trip")
			return
		}
		writeInternalError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, dto.AcceptInviteResponse{
		Message: "Invite accepted",
		TripID:  trip.ID,
	})
}

// UpdateRsvpStatus handles PUT /trip_guests/update-rsvp-status
// @Summary Set the caller's RSVP status for a trip
// @Tags trip_guests
// @Accept json
// @Produce json
// @Param payload body dto.UpdateRsvpRequest true "RSVP payload"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /trip_guests/update-rsvp-status [put]
func (h *GuestsHandler) UpdateRsvpStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateRsvpRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if req.TripID <= 0 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "trip_id is required")
		return
	}

	status := models.RsvpStatus(req.RsvpStatus)
	// INVITED is the initial state, not a response a guest can set.
	if !status.Valid() || status == models.RsvpInvited {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "rsvp_status must be YES, NO, or MAYBE")
		return
	}

	guest, ok := requireGuest(w, r, h.store, req.TripID, userID)
	if !ok {
		return
	}
	if guest.IsHost {
		utils.WriteErrorResponse(w, http.StatusForbidden, "Forbidden", "The host cannot change their RSVP status")
		return
	}

	if err := h.store.UpdateRsvp(r.Context(), req.TripID, userID, status); err != nil {
		writeStoreError(w, err, "Guest not found")
		return
	}
	utils.WriteMessageResponse(w, http.StatusOK, "RSVP status updated")
}

// DeleteTripGuest handles DELETE /trip_guests/delete-trip-guest
// @Summary Remove a guest from a trip
// @Tags trip_guests
// @Accept json
// @Produce json
// @Param payload body dto.DeleteTripGuestRequest true "Removal payload"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /trip_guests/delete-trip-guest [delete]
func (h *GuestsHandler) DeleteTripGuest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req dto.DeleteTripGuestRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if req.TripID <= 0 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "trip_id is required")
		return
	}
	targetID := req.GuestID
	if targetID == "" {
		targetID = userID
	}

	caller, ok := requireGuest(w, r, h.store, req.TripID, userID)
	if !ok {
		return
	}
	if targetID != userID && !caller.IsHost {
		utils.WriteErrorResponse(w, http.StatusForbidden, "Forbidden", "Only the trip host may remove other guests")
		return
	}

	target, err := h.store.GetGuest(r.Context(), req.TripID, targetID)
	if err != nil {
		writeStoreError(w, err, "Guest not found")
		return
	}
	if target.IsHost {
		utils.WriteErrorResponse(w, http.StatusForbidden, "Forbidden", "The trip host cannot be removed")
		return
	}

	if err := h.store.DeleteGuest(r.Context(), req.TripID, targetID); err != nil {
		writeStoreError(w, err, "Guest not found")
		return
	}
	utils.WriteMessageResponse(w, http.StatusOK, "Guest removed successfully")
}
