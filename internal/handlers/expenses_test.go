package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TRIPMATE_BACK-END/internal/dto"
)

func expenseEnv(t *testing.T) (*testEnv, int) {
	t.Helper()
	env := newTestEnv(t)
	env.addUser(t, "host", "Ada", "Lovelace")
	env.addUser(t, "bob", "Bob", "Odenkirk")
	created := env.createTrip(t, "host", "Winter escape", "01/01/2022", "01/30/2022")
	env.joinTrip(t, "bob", created.TripToken)
	return env, created.TripID
}

func TestAddExpenseSplitsAcrossGuests(t *testing.T) {
	env, tripID := expenseEnv(t)

	rec := env.do(t, env.expenses.AddExpense, http.MethodPost, "/expenses/add-expense", dto.AddExpenseRequest{
		TripID: tripID,
		Title:  "Hotel",
		Amount: 100,
		UsersInvolved: []dto.ExpenseShareInput{
			{SelectedUserID: "host", Amount: 50},
			{SelectedUserID: "bob", Amount: 50},
		},
	}, "host")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeBody[dto.AddExpenseResponse](t, rec)
	require.NotZero(t, created.ExpenseID)

	rec = env.do(t, env.expenses.GetExpenses, http.MethodGet, "/expenses/get-expenses?trip_id=1", nil, "bob")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[dto.GetExpensesResponse](t, rec)
	require.Len(t, resp.Expenses, 1)

	e := resp.Expenses[0]
	assert.Equal(t, "Hotel", e.Title)
	assert.Equal(t, 100.0, e.Amount)
	assert.False(t, e.Settled)
	assert.Equal(t, "host", e.UserID)
	assert.Equal(t, "Ada", e.UserFirstName)
	require.Len(t, e.UsersInvolved, 2)

	total := 0.0
	for _, s := range e.UsersInvolved {
		total += s.Amount
	}
	assert.Equal(t, 100.0, total)
}

func TestAddExpenseValidation(t *testing.T) {
	env, tripID := expenseEnv(t)

	cases := []dto.AddExpenseRequest{
		{TripID: tripID, Title: "", Amount: 10, UsersInvolved: []dto.ExpenseShareInput{{SelectedUserID: "host", Amount: 10}}},
		{TripID: tripID, Title: "Zero", Amount: 0, UsersInvolved: []dto.ExpenseShareInput{{SelectedUserID: "host", Amount: 0}}},
		{TripID: tripID, Title: "No shares", Amount: 10},
		{TripID: tripID, Title: "Anonymous share", Amount: 10, UsersInvolved: []dto.ExpenseShareInput{{Amount: 10}}},
		{TripID: tripID, Title: "Negative share", Amount: 10, UsersInvolved: []dto.ExpenseShareInput{{SelectedUserID: "host", Amount: -1}}},
	}
	for _, req := range cases {
		rec := env.do(t, env.expenses.AddExpense, http.MethodPost, "/expenses/add-expense", req, "host")
		assert.Equal(t, http.StatusBadRequest, rec.Code, "title %q", req.Title)
	}
}

func TestAddExpenseRequiresMembership(t *testing.T) {
	env, tripID := expenseEnv(t)
	env.addUser(t, "eve", "Eve", "Outsider")

	rec := env.do(t, env.expenses.AddExpense, http.MethodPost, "/expenses/add-expense", dto.AddExpenseRequest{
		TripID: tripID,
		Title:  "Sneaky",
		Amount: 10,
		UsersInvolved: []dto.ExpenseShareInput{
			{SelectedUserID: "eve", Amount: 10},
		},
	}, "eve")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUpdateExpenseReplacesShareSet(t *testing.T) {
	env, tripID := expenseEnv(t)
	env.addUser(t, "carol", "Carol", "Chen")

	rec := env.do(t, env.expenses.AddExpense, http.MethodPost, "/expenses/add-expense", dto.AddExpenseRequest{
		TripID: tripID,
		Title:  "Dinner",
		Amount: 90,
		UsersInvolved: []dto.ExpenseShareInput{
			{SelectedUserID: "host", Amount: 45},
			{SelectedUserID: "bob", Amount: 45},
		},
	}, "host")
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[dto.AddExpenseResponse](t, rec)

	settled := true
	rec = env.do(t, env.expenses.UpdateExpense, http.MethodPut, "/expenses/update-expense", dto.UpdateExpenseRequest{
		TripID:    tripID,
		ExpenseID: created.ExpenseID,
		Title:     "Dinner out",
		Amount:    120,
		Settled:   &settled,
		UsersInvolved: []dto.ExpenseShareInput{
			{SelectedUserID: "host", Amount: 40},
			{SelectedUserID: "bob", Amount: 40},
			{SelectedUserID: "carol", Amount: 40},
		},
	}, "host")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = env.do(t, env.expenses.GetExpenses, http.MethodGet, "/expenses/get-expenses?trip_id=1", nil, "host")
	resp := decodeBody[dto.GetExpensesResponse](t, rec)
	require.Len(t, resp.Expenses, 1)
	assert.Equal(t, "Dinner out", resp.Expenses[0].Title)
	assert.True(t, resp.Expenses[0].Settled)
	assert.Len(t, resp.Expenses[0].UsersInvolved, 3)
}

func TestUpdateExpenseNotFound(t *testing.T) {
	env, tripID := expenseEnv(t)

	rec := env.do(t, env.expenses.UpdateExpense, http.MethodPut, "/expenses/update-expense", dto.UpdateExpenseRequest{
		TripID:    tripID,
		ExpenseID: 42,
		Title:     "Ghost",
		Amount:    10,
		UsersInvolved: []dto.ExpenseShareInput{
			{SelectedUserID: "host", Amount: 10},
		},
	}, "host")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteExpense(t *testing.T) {
	env, tripID := expenseEnv(t)

	rec := env.do(t, env.expenses.AddExpense, http.MethodPost, "/expenses/add-expense", dto.AddExpenseRequest{
		TripID: tripID,
		Title:  "Taxi",
		Amount: 30,
		UsersInvolved: []dto.ExpenseShareInput{
			{SelectedUserID: "bob", Amount: 30},
		},
	}, "bob")
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[dto.AddExpenseResponse](t, rec)

	rec = env.do(t, env.expenses.DeleteExpense, http.MethodDelete, "/expenses/delete-expense", dto.DeleteExpenseRequest{
		TripID:    tripID,
		ExpenseID: created.ExpenseID,
	}, "host")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, env.expenses.GetExpenses, http.MethodGet, "/expenses/get-expenses?trip_id=1", nil, "host")
	resp := decodeBody[dto.GetExpensesResponse](t, rec)
	assert.Empty(t, resp.Expenses)
}
