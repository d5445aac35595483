package handlers

import (
	"net/http"
	"strings"
	"time"

	"TRIPMATE_BACK-END/internal/dto"
	"TRIPMATE_BACK-END/internal/models"
	"TRIPMATE_BACK-END/internal/store"
	"TRIPMATE_BACK-END/internal/utils"
)

// TodosHandler manages shared checklist endpoints
type TodosHandler struct {
	store store.Store
}

// NewTodosHandler creates a new TodosHandler
func NewTodosHandler(s store.Store) *TodosHandler {
	return &TodosHandler{store: s}
}

// requireConfirmedGuest loads the caller's guest row and rejects writers who
// have not confirmed their attendance.
func (h *TodosHandler) requireConfirmedGuest(w http.ResponseWriter, r *http.Request, tripID int, userID string) (models.TripGuest, bool) {
	guest, ok := requireGuest(w, r, h.store, tripID, userID)
	if !ok {
		return models.TripGuest{}, false
	}
	if guest.RsvpStatus != models.RsvpYes {
		utils.WriteErrorResponse(w, http.StatusForbidden, "Forbidden", "Only guests with a confirmed RSVP may modify todos")
		return models.TripGuest{}, false
	}
	return guest, true
}

// AddTodo handles POST /trip_todos/add-todo
// @Summary Add a checklist item
// @Tags trip_todos
// @Accept json
// @Produce json
// @Param payload body dto.AddTodoRequest true "Todo payload"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /trip_todos/add-todo [post]
func (h *TodosHandler) AddTodo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req dto.AddTodoRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	req.TodoID = strings.TrimSpace(req.TodoID)
	req.Text = strings.TrimSpace(req.Text)
	if req.TripID <= 0 || req.TodoID == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "trip_id and todo_id are required")
		return
	}
	if req.Text == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "text cannot be blank")
		return
	}
	if _, ok := h.requireConfirmedGuest(w, r, req.TripID, userID); !ok {
		return
	}

	if err := h.store.CreateTodo(r.Context(), models.TripTodo{
		ID:            req.TodoID,
		TripID:        req.TripID,
		Text:          req.Text,
		Checked:       false,
		LastUpdatedBy: userID,
		LastUpdatedAt: time.Now(),
	}); err != nil {
		writeStoreError(w, err, "Trip not found")
		return
	}
	utils.WriteMessageResponse(w, http.StatusCreated, "Todo added successfully")
}

// UpdateTodo handles PUT /trip_todos/update-todo
// @Summary Update a checklist item's text or checked state
// @Tags trip_todos
// @Accept json
// @Produce json
// @Param payload body dto.UpdateTodoRequest true "Todo payload"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /trip_todos/update-todo [put]
func (h *TodosHandler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateTodoRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	req.TodoID = strings.TrimSpace(req.TodoID)
	if req.TripID <= 0 || req.TodoID == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "trip_id and todo_id are required")
		return
	}
	if req.Text == nil && req.Checked == nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "nothing to update")
		return
	}
	if _, ok := h.requireConfirmedGuest(w, r, req.TripID, userID); !ok {
		return
	}

	todo, err := h.store.GetTodo(r.Context(), req.TripID, req.TodoID)
	if err != nil {
		writeStoreError(w, err, "Todo not found")
		return
	}

	if req.Text != nil {
		text := strings.TrimSpace(*req.Text)
		if text == "" {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "text cannot be blank")
			return
		}
		todo.Text = text
	}
	if req.Checked != nil {
		todo.Checked = *req.Checked
	}
	todo.LastUpdatedBy = userID
	todo.LastUpdatedAt = time.Now()

	if err := h.store.UpdateTodo(r.Context(), todo); err != nil {
		writeStoreError(w, err, "Todo not found")
		return
	}
	utils.WriteMessageResponse(w, http.StatusOK, "Todo updated successfully")
}

// GetTodos handles GET /trip_todos/get-todos
// @Summary List a trip's checklist
// @Tags trip_todos
// @Produce json
// @Param trip_id query int true "Trip id"
// @Success 200 {object} dto.GetTodosResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /trip_todos/get-todos [get]
func (h *TodosHandler) GetTodos(w http.ResponseWriter, r *http.Request) {
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

	todos, err := h.store.ListTodos(r.Context(), tripID)
	if err != nil {
		writeInternalError(w, err)
		return
	}

	items := make([]dto.TodoItem, 0, len(todos))
	for _, t := range todos {
		items = append(items, dto.TodoItem{
			ID:            t.ID,
			Text:          t.Text,
			Checked:       t.Checked,
			LastUpdatedBy: t.LastUpdatedBy,
			LastUpdatedAt: t.LastUpdatedAt.UTC().Format(time.RFC3339),
		})
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.GetTodosResponse{Todos: items})
}

// DeleteTodo handles DELETE /trip_todos/delete-todo
// @Summary Remove a checklist item
// @Tags trip_todos
// @Accept json
// @Produce json
// @Param payload body dto.DeleteTodoRequest true "Deletion payload"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /trip_todos/delete-todo [delete]
func (h *TodosHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req dto.DeleteTodoRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	req.TodoID = strings.TrimSpace(req.TodoID)
	if req.TripID <= 0 || req.TodoID == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "trip_id and todo_id are required")
		return
	}
	if _, ok := requireHost(w, r, h.store, req.TripID, userID); !ok {
		return
	}

	if err := h.store.DeleteTodo(r.Context(), req.TripID, req.TodoID); err != nil {
		writeStoreError(w, err, "Todo not found")
		return
	}
	utils.WriteMessageResponse(w, http.StatusOK, "Todo deleted successfully")
}
