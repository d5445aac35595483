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

// ExpensesHandler manages shared expense endpoints
type ExpensesHandler struct {
	store store.Store
}

// NewExpensesHandler creates a new ExpensesHandler
func NewExpensesHandler(s store.Store) *ExpensesHandler {
	return &ExpensesHandler{store: s}
}

// validateShares checks an incoming usersInvolved array. Every share needs a
// user id and a non-negative amount.
func validateShares(w http.ResponseWriter, shares []dto.ExpenseShareInput) bool {
	if len(shares) == 0 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "usersInvolved cannot be empty")
		return false
	}
	for _, s := range shares {
		if s.SelectedUserID == "" {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "each share requires a selectedUserId")
			return false
		}
		if s.Amount < 0 {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "share amounts cannot be negative")
			return false
		}
	}
	return true
}

// AddExpense handles POST /expenses/add-expense
// @Summary Record an expense split across guests
// @Tags expenses
// @Accept json
// @Produce json
// @Param payload body dto.AddExpenseRequest true "Expense payload"
// @Success 201 {object} dto.AddExpenseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /expenses/add-expense [post]
func (h *ExpensesHandler) AddExpense(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req dto.AddExpenseRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.TripID <= 0 || req.Title == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "trip_id and title are required")
		return
	}
	if req.Amount <= 0 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "amount must be positive")
		return
	}
	if !validateShares(w, req.UsersInvolved) {
		return
	}
	if _, ok := requireGuest(w, r, h.store, req.TripID, userID); !ok {
		return
	}

	now := time.Now()
	expense := models.TripExpense{
		TripID:    req.TripID,
		UserID:    userID,
		Title:     req.Title,
		Amount:    req.Amount,
		Settled:   false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	shares := make([]models.TripExpenseShare, 0, len(req.UsersInvolved))
	for _, s := range req.UsersInvolved {
		shares = append(shares, models.TripExpenseShare{
			TripID: req.TripID,
			UserID: s.SelectedUserID,
			Amount: s.Amount,
		})
	}

	expenseID, err := h.store.CreateExpense(r.Context(), expense, shares)
	if err != nil {
		writeStoreError(w, err, "Trip not found")
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, dto.AddExpenseResponse{
		Message:   "Expense added successfully",
		ExpenseID: expenseID,
	})
}

// UpdateExpense handles PUT /expenses/update-expense
// @Summary Rewrite an expense and replace its share set
// @Tags expenses
// @Accept json
// @Produce json
// @Param payload body dto.UpdateExpenseRequest true "Expense payload"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /expenses/update-expense [put]
func (h *ExpensesHandler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateExpenseRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.TripID <= 0 || req.ExpenseID <= 0 || req.Title == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "trip_id, expense_id, and title are required")
		return
	}
	if req.Amount <= 0 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "amount must be positive")
		return
	}
	if !validateShares(w, req.UsersInvolved) {
		return
	}
	if _, ok := requireGuest(w, r, h.store, req.TripID, userID); !ok {
		return
	}

	settled := false
	if req.Settled != nil {
		settled = *req.Settled
	}
	expense := models.TripExpense{
		ID:        req.ExpenseID,
		TripID:    req.TripID,
		Title:     req.Title,
		Amount:    req.Amount,
		Settled:   settled,
		UpdatedAt: time.Now(),
	}
	shares := make([]models.TripExpenseShare, 0, len(req.UsersInvolved))
	for _, s := range req.UsersInvolved {
		shares = append(shares, models.TripExpenseShare{
			ExpenseID: req.ExpenseID,
			TripID:    req.TripID,
			UserID:    s.SelectedUserID,
			Amount:    s.Amount,
		})
	}

	if err := h.store.UpdateExpense(r.Context(), expense, shares); err != nil {
		writeStoreError(w, err, "Expense not found")
		return
	}
	utils.WriteMessageResponse(w, http.StatusOK, "Expense updated successfully")
}

// DeleteExpense handles DELETE /expenses/delete-expense
// @Summary Delete an expense and its shares
// @Tags expenses
// @Accept json
// @Produce json
// @Param payload body dto.DeleteExpenseRequest true "Deletion payload"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /expenses/delete-expense [delete]
func (h *ExpensesHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req dto.DeleteExpenseRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if req.TripID <= 0 || req.ExpenseID <= 0 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "trip_id and expense_id are required")
		return
	}
	if _, ok := requireGuest(w, r, h.store, req.TripID, userID); !ok {
		return
	}

	if err := h.store.DeleteExpense(r.Context(), req.TripID, req.ExpenseID); err != nil {
		writeStoreError(w, err, "Expense not found")
		return
	}
	utils.WriteMessageResponse(w, http.StatusOK, "Expense deleted successfully")
}

// GetExpenses handles GET /expenses/get-expenses
// @Summary List a trip's expenses with their shares
// @Tags expenses
// @Produce json
// @Param trip_id query int true "Trip id"
// @Success 200 {object} dto.GetExpensesResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /expenses/get-expenses [get]
func (h *ExpensesHandler) GetExpenses(w http.ResponseWriter, r *http.Request) {
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

	expenses, err := h.store.ListExpenses(r.Context(), tripID)
	if err != nil {
		writeInternalError(w, err)
		return
	}

	items := make([]dto.ExpenseItem, 0, len(expenses))
	for _, e := range expenses {
		shares := make([]dto.ExpenseShareItem, 0, len(e.Shares))
		for _, s := range e.Shares {
			shares = append(shares, dto.ExpenseShareItem{
				SelectedUserID: s.UserID,
				Amount:         s.Amount,
				FirstName:      s.FirstName,
				LastName:       s.LastName,
			})
		}
		items = append(items, dto.ExpenseItem{
			ExpenseID:     e.ID,
			Title:         e.Title,
			Amount:        e.Amount,
			Settled:       e.Settled,
			CreatedDate:   e.CreatedAt.UTC().Format(time.RFC3339),
			UpdatedDate:   e.UpdatedAt.UTC().Format(time.RFC3339),
			UserID:        e.UserID,
			UserFirstName: e.PayerFirstName,
			UserLastName:  e.PayerLastName,
			UsersInvolved: shares,
		})
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.GetExpensesResponse{Expenses: items})
}
