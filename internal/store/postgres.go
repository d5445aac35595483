package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"TRIPMATE_BACK-END/internal/models"
)

// Postgres implements Store on a pgx connection pool. Every SQL statement in
// the application lives here; handlers never see the pool.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a Postgres store backed by the given pool.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// mapErr translates pgx errors into the store's sentinel errors. A foreign key
// violation means the referenced row (user, trip) does not exist.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return ErrDuplicate
		case foreignKeyViolation:
			return ErrNotFound
		}
	}
	return err
}

func (s *Postgres) withTx(ctx context.Context, fn func(pgx.Tx) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return mapErr(err)
	}
	return tx.Commit(ctx)
}

// --- Users ---

func (s *Postgres) CreateUser(ctx context.Context, u models.User) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO users (id, phone_number, first_name, last_name, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		u.ID, u.PhoneNumber, u.FirstName, u.LastName, u.CreatedAt)
	return mapErr(err)
}

func (s *Postgres) GetUser(ctx context.Context, id string) (models.User, error) {
	var u models.User
	err := s.pool.QueryRow(ctx,
		`SELECT id, phone_number, first_name, last_name, created_at
		   FROM users WHERE id = $1`, id).Scan(
		&u.ID, &u.PhoneNumber, &u.FirstName, &u.LastName, &u.CreatedAt)
	return u, mapErr(err)
}

// --- Trips ---

func (s *Postgres) CreateTrip(ctx context.Context, trip models.Trip, entries []models.ItineraryEntry) (models.Trip, error) {
	err := s.withTx(ctx, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx,
			`INSERT INTO trips (token, name, description, host_id, start_date, end_date, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 RETURNING id`,
			trip.Token, trip.Name, trip.Description, trip.HostID, trip.StartDate, trip.EndDate, trip.CreatedAt,
		).Scan(&trip.ID); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx,
			`INSERT INTO trip_guests (trip_id, guest_id, is_host, rsvp_status)
			 VALUES ($1, $2, TRUE, $3)`,
			trip.ID, trip.HostID, models.RsvpYes); err != nil {
			return err
		}

		for _, e := range entries {
			if _, err := tx.Exec(ctx,
				`INSERT INTO itinerary_entries (id, trip_id, date, description)
				 VALUES ($1, $2, $3, $4)`,
				e.ID, trip.ID, e.Date, e.Description); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.Trip{}, err
	}
	return trip, nil
}

func (s *Postgres) GetTrip(ctx context.Context, id int) (models.Trip, error) {
	return s.scanTrip(s.pool.QueryRow(ctx,
		`SELECT id, token, name, description, host_id, start_date, end_date, created_at
		   FROM trips WHERE id = $1`, id))
}

func (s *Postgres) GetTripByToken(ctx context.Context, token string) (models.Trip, error) {
	return s.scanTrip(s.pool.QueryRow(ctx,
		`SELECT id, token, name, description, host_id, start_date, end_date, created_at
		   FROM trips WHERE token = $1`, token))
}

func (s *Postgres) scanTrip(row pgx.Row) (models.Trip, error) {
	var t models.Trip
	err := row.Scan(&t.ID, &t.Token, &t.Name, &t.Description, &t.HostID, &t.StartDate, &t.EndDate, &t.CreatedAt)
	return t, mapErr(err)
}

func (s *Postgres) ListUserTrips(ctx context.Context, userID string) ([]TripWithRsvp, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT t.id, t.token, t.name, t.description, t.host_id, t.start_date, t.end_date, t.created_at,
		        tg.rsvp_status
		   FROM trips t
		   JOIN trip_guests tg ON tg.trip_id = t.id
		  WHERE tg.guest_id = $1
		  ORDER BY t.start_date`, userID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	trips := make([]TripWithRsvp, 0)
	for rows.Next() {
		var t TripWithRsvp
		if err := rows.Scan(&t.ID, &t.Token, &t.Name, &t.Description, &t.HostID,
			&t.StartDate, &t.EndDate, &t.CreatedAt, &t.RsvpStatus); err != nil {
			return nil, mapErr(err)
		}
		trips = append(trips, t)
	}
	return trips, mapErr(rows.Err())
}

func (s *Postgres) UpdateTrip(ctx context.Context, trip models.Trip) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE trips
		    SET name = $1, description = $2, start_date = $3, end_date = $4
		  WHERE id = $5`,
		trip.Name, trip.Description, trip.StartDate, trip.EndDate, trip.ID)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Postgres) DeleteTrip(ctx context.Context, id int) ([]string, error) {
	var keys []string
	err := s.withTx(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `SELECT storage_key FROM user_uploads WHERE trip_id = $1`, id)
		if err != nil {
			return err
		}
		for rows.Next() {
			var key string
			if err := rows.Scan(&key); err != nil {
				rows.Close()
				return err
			}
			keys = append(keys, key)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}

		for _, stmt := range []string{
			`DELETE FROM trip_expense_shares WHERE trip_id = $1`,
			`DELETE FROM trip_expenses WHERE trip_id = $1`,
			`DELETE FROM trip_locations WHERE trip_id = $1`,
			`DELETE FROM location_categories WHERE trip_id = $1`,
			`DELETE FROM itinerary_entries WHERE trip_id = $1`,
			`DELETE FROM trip_todos WHERE trip_id = $1`,
			`DELETE FROM user_uploads WHERE trip_id = $1`,
			`DELETE FROM trip_guests WHERE trip_id = $1`,
		} {
			if _, err := tx.Exec(ctx, stmt, id); err != nil {
				return err
			}
		}

		tag, err := tx.Exec(ctx, `DELETE FROM trips WHERE id = $1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}

func (s *Postgres) SetNewHost(ctx context.Context, tripID int, oldHostID, newHostID string) error {
	return s.withTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE trip_guests SET is_host = FALSE WHERE trip_id = $1 AND guest_id = $2`,
			tripID, oldHostID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}

		// Hosting implies attending, so the incoming host's RSVP moves to YES.
		tag, err = tx.Exec(ctx,
			`UPDATE trip_guests SET is_host = TRUE, rsvp_status = $3 WHERE trip_id = $1 AND guest_id = $2`,
			tripID, newHostID, models.RsvpYes)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}

		_, err = tx.Exec(ctx, `UPDATE trips SET host_id = $2 WHERE id = $1`, tripID, newHostID)
		return err
	})
}

// --- Guests ---

func (s *Postgres) AddGuest(ctx context.Context, g models.TripGuest) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO trip_guests (trip_id, guest_id, is_host, rsvp_status)
		 VALUES ($1, $2, $3, $4)`,
		g.TripID, g.GuestID, g.IsHost, g.RsvpStatus)
	return mapErr(err)
}

func (s *Postgres) GetGuest(ctx context.Context, tripID int, userID string) (models.TripGuest, error) {
	var g models.TripGuest
	err := s.pool.QueryRow(ctx,
		`SELECT id, trip_id, guest_id, is_host, rsvp_status
		   FROM trip_guests WHERE trip_id = $1 AND guest_id = $2`,
		tripID, userID).Scan(&g.ID, &g.TripID, &g.GuestID, &g.IsHost, &g.RsvpStatus)
	return g, mapErr(err)
}

func (s *Postgres) ListGuests(ctx context.Context, tripID int) ([]GuestWithUser, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT tg.id, tg.trip_id, tg.guest_id, tg.is_host, tg.rsvp_status,
		        u.first_name, u.last_name
		   FROM trip_guests tg
		   JOIN users u ON u.id = tg.guest_id
		  WHERE tg.trip_id = $1
		  ORDER BY tg.id`, tripID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	guests := make([]GuestWithUser, 0)
	for rows.Next() {
		var g GuestWithUser
		if err := rows.Scan(&g.ID, &g.TripID, &g.GuestID, &g.IsHost, &g.RsvpStatus,
			&g.FirstName, &g.LastName); err != nil {
			return nil, mapErr(err)
		}
		guests = append(guests, g)
	}
	return guests, mapErr(rows.Err())
}

func (s *Postgres) DeleteGuest(ctx context.Context, tripID int, userID string) error {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM trip_guests WHERE trip_id = $1 AND guest_id = $2`, tripID, userID)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Postgres) UpdateRsvp(ctx context.Context, tripID int, userID string, status models.RsvpStatus) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE trip_guests SET rsvp_status = $3 WHERE trip_id = $1 AND guest_id = $2`,
		tripID, userID, status)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Expenses ---

func (s *Postgres) CreateExpense(ctx context.Context, e models.TripExpense, shares []models.TripExpenseShare) (int, error) {
	var id int
	err := s.withTx(ctx, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx,
			`INSERT INTO trip_expenses (trip_id, user_id, title, amount, settled, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 RETURNING id`,
			e.TripID, e.UserID, e.Title, e.Amount, e.Settled, e.CreatedAt, e.UpdatedAt,
		).Scan(&id); err != nil {
			return err
		}
		return insertShares(ctx, tx, id, e.TripID, shares)
	})
	return id, err
}

func (s *Postgres) UpdateExpense(ctx context.Context, e models.TripExpense, shares []models.TripExpenseShare) error {
	return s.withTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE trip_expenses
			    SET title = $1, amount = $2, settled = $3, updated_at = $4
			  WHERE id = $5 AND trip_id = $6`,
			e.Title, e.Amount, e.Settled, e.UpdatedAt, e.ID, e.TripID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}

		// Replace the full share set; the original's upsert could strand
		// shares for users no longer involved.
		if _, err := tx.Exec(ctx,
			`DELETE FROM trip_expense_shares WHERE expense_id = $1`, e.ID); err != nil {
			return err
		}
		return insertShares(ctx, tx, e.ID, e.TripID, shares)
	})
}

func insertShares(ctx context.Context, tx pgx.Tx, expenseID, tripID int, shares []models.TripExpenseShare) error {
	for _, sh := range shares {
		if _, err := tx.Exec(ctx,
			`INSERT INTO trip_expense_shares (expense_id, user_id, amount, trip_id)
			 VALUES ($1, $2, $3, $4)`,
			expenseID, sh.UserID, sh.Amount, tripID); err != nil {
			return err
		}
	}
	return nil
}

func (s *Postgres) DeleteExpense(ctx context.Context, tripID, expenseID int) error {
	return s.withTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`DELETE FROM trip_expense_shares WHERE expense_id = $1`, expenseID); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx,
			`DELETE FROM trip_expenses WHERE id = $1 AND trip_id = $2`, expenseID, tripID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (s *Postgres) ListExpenses(ctx context.Context, tripID int) ([]ExpenseWithShares, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT e.id, e.trip_id, e.user_id, e.title, e.amount, e.settled, e.created_at, e.updated_at,
		        u.first_name, u.last_name
		   FROM trip_expenses e
		   JOIN users u ON u.id = e.user_id
		  WHERE e.trip_id = $1
		  ORDER BY e.created_at`, tripID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	expenses := make([]ExpenseWithShares, 0)
	for rows.Next() {
		var e ExpenseWithShares
		if err := rows.Scan(&e.ID, &e.TripID, &e.UserID, &e.Title, &e.Amount, &e.Settled,
			&e.CreatedAt, &e.UpdatedAt, &e.PayerFirstName, &e.PayerLastName); err != nil {
			return nil, mapErr(err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, mapErr(err)
	}

	for i := range expenses {
		shares, err := s.listShares(ctx, expenses[i].ID)
		if err != nil {
			return nil, err
		}
		expenses[i].Shares = shares
	}
	return expenses, nil
}

func (s *Postgres) listShares(ctx context.Context, expenseID int) ([]ShareWithUser, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT sh.id, sh.expense_id, sh.user_id, sh.amount, sh.trip_id,
		        u.first_name, u.last_name
		   FROM trip_expense_shares sh
		   JOIN users u ON u.id = sh.user_id
		  WHERE sh.expense_id = $1
		  ORDER BY sh.id`, expenseID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	shares := make([]ShareWithUser, 0)
	for rows.Next() {
		var sh ShareWithUser
		if err := rows.Scan(&sh.ID, &sh.ExpenseID, &sh.UserID, &sh.Amount, &sh.TripID,
			&sh.FirstName, &sh.LastName); err != nil {
			return nil, mapErr(err)
		}
		shares = append(shares, sh)
	}
	return shares, mapErr(rows.Err())
}

// --- Location categories ---

func (s *Postgres) CreateCategory(ctx context.Context, c models.LocationCategory) (int, error) {
	var id int
	err := s.pool.QueryRow(ctx,
		`INSERT INTO location_categories (trip_id, name) VALUES ($1, $2) RETURNING id`,
		c.TripID, c.Name).Scan(&id)
	return id, mapErr(err)
}

func (s *Postgres) GetCategoryByName(ctx context.Context, tripID int, name string) (models.LocationCategory, error) {
	var c models.LocationCategory
	err := s.pool.QueryRow(ctx,
		`SELECT id, trip_id, name FROM location_categories WHERE trip_id = $1 AND name = $2`,
		tripID, name).Scan(&c.ID, &c.TripID, &c.Name)
	return c, mapErr(err)
}

func (s *Postgres) RenameCategory(ctx context.Context, tripID int, oldName, newName string) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE location_categories SET name = $3 WHERE trip_id = $1 AND name = $2`,
		tripID, oldName, newName)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Postgres) DeleteCategory(ctx context.Context, tripID int, name string) error {
	return s.withTx(ctx, func(tx pgx.Tx) error {
		var id int
		if err := tx.QueryRow(ctx,
			`SELECT id FROM location_categories WHERE trip_id = $1 AND name = $2`,
			tripID, name).Scan(&id); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx,
			`DELETE FROM trip_locations WHERE trip_id = $1 AND category_id = $2`,
			tripID, id); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, `DELETE FROM location_categories WHERE id = $1`, id)
		return err
	})
}

func (s *Postgres) ListCategories(ctx context.Context, tripID int) ([]models.LocationCategory, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, trip_id, name FROM location_categories WHERE trip_id = $1 ORDER BY name`,
		tripID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	categories := make([]models.LocationCategory, 0)
	for rows.Next() {
		var c models.LocationCategory
		if err := rows.Scan(&c.ID, &c.TripID, &c.Name); err != nil {
			return nil, mapErr(err)
		}
		categories = append(categories, c)
	}
	return categories, mapErr(rows.Err())
}

// --- Locations ---

func (s *Postgres) CreateLocation(ctx context.Context, l models.TripLocation) (int, error) {
	var id int
	err := s.pool.QueryRow(ctx,
		`INSERT INTO trip_locations (place_id, trip_id, user_id, name, latitude, longitude, category_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		l.PlaceID, l.TripID, l.UserID, l.Name, l.Latitude, l.Longitude, l.CategoryID).Scan(&id)
	return id, mapErr(err)
}

func (s *Postgres) GetLocation(ctx context.Context, tripID int, placeID string) (models.TripLocation, error) {
	var l models.TripLocation
	err := s.pool.QueryRow(ctx,
		`SELECT id, place_id, trip_id, user_id, name, latitude, longitude, category_id
		   FROM trip_locations WHERE trip_id = $1 AND place_id = $2`,
		tripID, placeID).Scan(&l.ID, &l.PlaceID, &l.TripID, &l.UserID, &l.Name,
		&l.Latitude, &l.Longitude, &l.CategoryID)
	return l, mapErr(err)
}

func (s *Postgres) UpdateLocation(ctx context.Context, l models.TripLocation) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE trip_locations
		    SET name = $1, latitude = $2, longitude = $3, category_id = $4
		  WHERE trip_id = $5 AND place_id = $6`,
		l.Name, l.Latitude, l.Longitude, l.CategoryID, l.TripID, l.PlaceID)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Postgres) DeleteLocation(ctx context.Context, tripID int, placeID string) error {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM trip_locations WHERE trip_id = $1 AND place_id = $2`, tripID, placeID)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Postgres) ListLocations(ctx context.Context, tripID int) ([]LocationWithCategory, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT l.id, l.place_id, l.trip_id, l.user_id, l.name, l.latitude, l.longitude, l.category_id,
		        COALESCE(c.name, '')
		   FROM trip_locations l
		   LEFT JOIN location_categories c ON c.id = l.category_id
		  WHERE l.trip_id = $1
		  ORDER BY l.id`, tripID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	locations := make([]LocationWithCategory, 0)
	for rows.Next() {
		var l LocationWithCategory
		if err := rows.Scan(&l.ID, &l.PlaceID, &l.TripID, &l.UserID, &l.Name,
			&l.Latitude, &l.Longitude, &l.CategoryID, &l.CategoryName); err != nil {
			return nil, mapErr(err)
		}
		locations = append(locations, l)
	}
	return locations, mapErr(rows.Err())
}

// --- Itinerary ---

func (s *Postgres) CreateItineraryEntry(ctx context.Context, e models.ItineraryEntry) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO itinerary_entries (id, trip_id, date, description)
		 VALUES ($1, $2, $3, $4)`,
		e.ID, e.TripID, e.Date, e.Description)
	return mapErr(err)
}

func (s *Postgres) UpdateItineraryEntry(ctx context.Context, e models.ItineraryEntry) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE itinerary_entries SET date = $1, description = $2
		  WHERE id = $3 AND trip_id = $4`,
		e.Date, e.Description, e.ID, e.TripID)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Postgres) DeleteItineraryEntry(ctx context.Context, tripID int, id string) error {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM itinerary_entries WHERE id = $1 AND trip_id = $2`, id, tripID)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Postgres) ListItinerary(ctx context.Context, tripID int) ([]models.ItineraryEntry, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, trip_id, date, description
		   FROM itinerary_entries WHERE trip_id = $1 ORDER BY date`, tripID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	entries := make([]models.ItineraryEntry, 0)
	for rows.Next() {
		var e models.ItineraryEntry
		if err := rows.Scan(&e.ID, &e.TripID, &e.Date, &e.Description); err != nil {
			return nil, mapErr(err)
		}
		entries = append(entries, e)
	}
	return entries, mapErr(rows.Err())
}

// --- Todos ---

func (s *Postgres) CreateTodo(ctx context.Context, t models.TripTodo) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO trip_todos (id, trip_id, text, checked, last_updated_by, last_updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		t.ID, t.TripID, t.Text, t.Checked, t.LastUpdatedBy, t.LastUpdatedAt)
	return mapErr(err)
}

func (s *Postgres) GetTodo(ctx context.Context, tripID int, id string) (models.TripTodo, error) {
	var t models.TripTodo
	err := s.pool.QueryRow(ctx,
		`SELECT id, trip_id, text, checked, last_updated_by, last_updated_at
		   FROM trip_todos WHERE id = $1 AND trip_id = $2`, id, tripID).Scan(
		&t.ID, &t.TripID, &t.Text, &t.Checked, &t.LastUpdatedBy, &t.LastUpdatedAt)
	return t, mapErr(err)
}

func (s *Postgres) UpdateTodo(ctx context.Context, t models.TripTodo) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE trip_todos
		    SET text = $1, checked = $2, last_updated_by = $3, last_updated_at = $4
		  WHERE id = $5 AND trip_id = $6`,
		t.Text, t.Checked, t.LastUpdatedBy, t.LastUpdatedAt, t.ID, t.TripID)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Postgres) DeleteTodo(ctx context.Context, tripID int, id string) error {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM trip_todos WHERE id = $1 AND trip_id = $2`, id, tripID)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Postgres) ListTodos(ctx context.Context, tripID int) ([]models.TripTodo, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, trip_id, text, checked, last_updated_by, last_updated_at
		   FROM trip_todos WHERE trip_id = $1 ORDER BY last_updated_at`, tripID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	todos := make([]models.TripTodo, 0)
	for rows.Next() {
		var t models.TripTodo
		if err := rows.Scan(&t.ID, &t.TripID, &t.Text, &t.Checked,
			&t.LastUpdatedBy, &t.LastUpdatedAt); err != nil {
			return nil, mapErr(err)
		}
		todos = append(todos, t)
	}
	return todos, mapErr(rows.Err())
}

// --- Uploads ---

func (s *Postgres) CreateUpload(ctx context.Context, u models.UserUpload) (int, error) {
	var id int
	err := s.pool.QueryRow(ctx,
		`INSERT INTO user_uploads (upload_user_id, trip_id, document_category, file_name, storage_key, upload_timestamp)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		u.UploadUserID, u.TripID, u.DocumentCategory, u.FileName, u.StorageKey, u.UploadTimestamp).Scan(&id)
	return id, mapErr(err)
}

func (s *Postgres) GetUpload(ctx context.Context, tripID, id int) (models.UserUpload, error) {
	var u models.UserUpload
	err := s.pool.QueryRow(ctx,
		`SELECT id, upload_user_id, trip_id, document_category, file_name, storage_key, upload_timestamp
		   FROM user_uploads WHERE id = $1 AND trip_id = $2`, id, tripID).Scan(
		&u.ID, &u.UploadUserID, &u.TripID, &u.DocumentCategory, &u.FileName, &u.StorageKey, &u.UploadTimestamp)
	return u, mapErr(err)
}

func (s *Postgres) DeleteUpload(ctx context.Context, tripID, id int) error {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM user_uploads WHERE id = $1 AND trip_id = $2`, id, tripID)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Postgres) ListUploads(ctx context.Context, tripID int, category *models.DocumentCategory) ([]models.UserUpload, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, upload_user_id, trip_id, document_category, file_name, storage_key, upload_timestamp
		   FROM user_uploads
		  WHERE trip_id = $1 AND ($2::text IS NULL OR document_category = $2)
		  ORDER BY upload_timestamp`, tripID, category)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	uploads := make([]models.UserUpload, 0)
	for rows.Next() {
		var u models.UserUpload
		if err := rows.Scan(&u.ID, &u.UploadUserID, &u.TripID, &u.DocumentCategory,
			&u.FileName, &u.StorageKey, &u.UploadTimestamp); err != nil {
			return nil, mapErr(err)
		}
		uploads = append(uploads, u)
	}
	return uploads, mapErr(rows.Err())
}
