package models

import "time"

// TripExpense is a single expense paid by one guest, split across zero or
// more TripExpenseShare rows.
type TripExpense struct {
	ID        int       `json:"id" db:"id"`
	TripID    int       `json:"trip_id" db:"trip_id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Title     string    `json:"title" db:"title"`
	Amount    float64   `json:"amount" db:"amount"`
	Settled   bool      `json:"settled" db:"settled"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// TripExpenseShare is one user's portion of an expense. TripID is denormalized
// and always equals the parent expense's trip id.
type TripExpenseShare struct {
	ID        int     `json:"id" db:"id"`
	ExpenseID int     `json:"expense_id" db:"expense_id"`
	UserID    string  `json:"user_id" db:"user_id"`
	Amount    float64 `json:"amount" db:"amount"`
	TripID    int     `json:"trip_id" db:"trip_id"`
}
