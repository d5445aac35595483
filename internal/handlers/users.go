package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"TRIPMATE_BACK-END/internal/dto"
	"TRIPMATE_BACK-END/internal/models"
	"TRIPMATE_BACK-END/internal/store"
	"TRIPMATE_BACK-END/internal/utils"
)

// UsersHandler manages user registration endpoints
type UsersHandler struct {
	store store.Store
}

// NewUsersHandler creates a new UsersHandler
func NewUsersHandler(s store.Store) *UsersHandler {
	return &UsersHandler{store: s}
}

// CreateUser handles POST /users/create-user
// @Summary Register the authenticated identity
// @Tags users
// @Accept json
// @Produce json
// @Param payload body dto.CreateUserRequest true "Profile payload"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /users/create-user [post]
func (h *UsersHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	phoneNumber, ok := utils.GetPhoneNumberFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Token missing phone number")
		return
	}

	var req dto.CreateUserRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	if req.FirstName == "" || req.LastName == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "firstName and lastName are required")
		return
	}

	user := models.User{
		ID:          userID,
		PhoneNumber: phoneNumber,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		CreatedAt:   time.Now(),
	}
	if err := h.store.CreateUser(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			utils.WriteErrorResponse(w, http.StatusConflict, "Conflict", "User already exists")
			return
		}
		writeInternalError(w, err)
		return
	}

	utils.WriteMessageResponse(w, http.StatusCreated, "User created successfully")
}

// ValidateUser handles POST /users/validate-user
// @Summary Return the stored profile for the authenticated identity
// @Tags users
// @Produce json
// @Success 200 {object} dto.ValidateUserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /users/validate-user [post]
func (h *UsersHandler) ValidateUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	user, err := h.store.GetUser(r.Context(), userID)
	if err != nil {
		writeStoreError(w, err, "User not found")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.ValidateUserResponse{
		Message:     "User exists",
		PhoneNumber: user.PhoneNumber,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
	})
}
