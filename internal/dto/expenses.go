package dto

// ExpenseShareInput is one user's portion in an expense payload
type ExpenseShareInput struct {
	SelectedUserID string  `json:"selectedUserId"`
	Amount         float64 `json:"amount"`
}

// AddExpenseRequest creates an expense plus its share rows
type AddExpenseRequest struct {
	TripID        int                 `json:"trip_id"`
	Title         string              `json:"title"`
	Amount        float64             `json:"amount"`
	UsersInvolved []ExpenseShareInput `json:"usersInvolved"`
}

// AddExpenseResponse returns the new expense id
type AddExpenseResponse struct {
	Message   string `json:"message"`
	ExpenseID int    `json:"expense_id"`
}

// UpdateExpenseRequest rewrites an expense and replaces its share set
type UpdateExpenseRequest struct {
	TripID        int                 `json:"trip_id"`
	ExpenseID     int                 `json:"expense_id"`
	Title         string              `json:"title"`
	Amount        float64             `json:"amount"`
	Settled       *bool               `json:"settled"`
	UsersInvolved []ExpenseShareInput `json:"usersInvolved"`
}

// DeleteExpenseRequest deletes an expense and its shares
type DeleteExpenseRequest struct {
	TripID    int `json:"trip_id"`
	ExpenseID int `json:"expense_id"`
}

// ExpenseShareItem is one share in a listed expense
type ExpenseShareItem struct {
	SelectedUserID string  `json:"selectedUserId"`
	Amount         float64 `json:"amount"`
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
}

// ExpenseItem is one listed expense with its shares
type ExpenseItem struct {
	ExpenseID     int                `json:"expenseId"`
	Title         string             `json:"title"`
	Amount        float64            `json:"amount"`
	Settled       bool               `json:"settled"`
	CreatedDate   string             `json:"createdDate"`
	UpdatedDate   string             `json:"updatedDate"`
	UserID        string             `json:"userId"`
	UserFirstName string             `json:"userFirstName"`
	UserLastName  string             `json:"userLastName"`
	UsersInvolved []ExpenseShareItem `json:"usersInvolved"`
}

// GetExpensesResponse envelope
type GetExpensesResponse struct {
	Expenses []ExpenseItem `json:"expenses"`
}
