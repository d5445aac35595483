package store

import (
	"context"
	"sort"
	"sync"

	"TRIPMATE_BACK-END/internal/models"
)

// Memory is a mutex-guarded in-memory Store with the same semantics as the
// Postgres implementation. It backs handler tests; nothing in the server wires
// it up.
type Memory struct {
	mu sync.Mutex

	users      map[string]models.User
	trips      map[int]models.Trip
	guests     map[int]models.TripGuest
	expenses   map[int]models.TripExpense
	shares     map[int]models.TripExpenseShare
	categories map[int]models.LocationCategory
	locations  map[int]models.TripLocation
	itinerary  map[string]models.ItineraryEntry
	todos      map[string]models.TripTodo
	uploads    map[int]models.UserUpload

	nextID int
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		users:      make(map[string]models.User),
		trips:      make(map[int]models.Trip),
		guests:     make(map[int]models.TripGuest),
		expenses:   make(map[int]models.TripExpense),
		shares:     make(map[int]models.TripExpenseShare),
		categories: make(map[int]models.LocationCategory),
		locations:  make(map[int]models.TripLocation),
		itinerary:  make(map[string]models.ItineraryEntry),
		todos:      make(map[string]models.TripTodo),
		uploads:    make(map[int]models.UserUpload),
		nextID:     0,
	}
}

func (m *Memory) next() int {
	m.nextID++
	return m.nextID
}

// --- Users ---

func (m *Memory) CreateUser(_ context.Context, u models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[u.ID]; ok {
		return ErrDuplicate
	}
	for _, existing := range m.users {
		if existing.PhoneNumber == u.PhoneNumber {
			return ErrDuplicate
		}
	}
	m.users[u.ID] = u
	return nil
}

func (m *Memory) GetUser(_ context.Context, id string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return u, nil
}

// --- Trips ---

func (m *Memory) CreateTrip(_ context.Context, trip models.Trip, entries []models.ItineraryEntry) (models.Trip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[trip.HostID]; !ok {
		return models.Trip{}, ErrNotFound
	}
	for _, e := range entries {
		if _, ok := m.itinerary[e.ID]; ok {
			return models.Trip{}, ErrDuplicate
		}
	}

	trip.ID = m.next()
	m.trips[trip.ID] = trip

	hostRow := models.TripGuest{
		ID:         m.next(),
		TripID:     trip.ID,
		GuestID:    trip.HostID,
		IsHost:     true,
		RsvpStatus: models.RsvpYes,
	}
	m.guests[hostRow.ID] = hostRow

	for _, e := range entries {
		e.TripID = trip.ID
		m.itinerary[e.ID] = e
	}
	return trip, nil
}

func (m *Memory) GetTrip(_ context.Context, id int) (models.Trip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.trips[id]
	if !ok {
		return models.Trip{}, ErrNotFound
	}
	return t, nil
}

func (m *Memory) GetTripByToken(_ context.Context, token string) (models.Trip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.trips {
		if t.Token == token {
			return t, nil
		}
	}
	return models.Trip{}, ErrNotFound
}

func (m *Memory) ListUserTrips(_ context.Context, userID string) ([]TripWithRsvp, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	trips := make([]TripWithRsvp, 0)
	for _, g := range m.guests {
		if g.GuestID != userID {
			continue
		}
		t, ok := m.trips[g.TripID]
		if !ok {
			continue
		}
		trips = append(trips, TripWithRsvp{Trip: t, RsvpStatus: g.RsvpStatus})
	}
	sort.Slice(trips, func(i, j int) bool { return trips[i].StartDate.Before(trips[j].StartDate) })
	return trips, nil
}

func (m *Memory) UpdateTrip(_ context.Context, trip models.Trip) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.trips[trip.ID]
	if !ok {
		return ErrNotFound
	}
	cur.Name = trip.Name
	cur.Description = trip.Description
	cur.StartDate = trip.StartDate
	cur.EndDate = trip.EndDate
	m.trips[trip.ID] = cur
	return nil
}

func (m *Memory) DeleteTrip(_ context.Context, id int) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.trips[id]; !ok {
		return nil, ErrNotFound
	}

	var keys []string
	for uid, u := range m.uploads {
		if u.TripID == id {
			keys = append(keys, u.StorageKey)
			delete(m.uploads, uid)
		}
	}
	for gid, g := range m.guests {
		if g.TripID == id {
			delete(m.guests, gid)
		}
	}
	for sid, sh := range m.shares {
		if sh.TripID == id {
			delete(m.shares, sid)
		}
	}
	for eid, e := range m.expenses {
		if e.TripID == id {
			delete(m.expenses, eid)
		}
	}
	for lid, l := range m.locations {
		if l.TripID == id {
			delete(m.locations, lid)
		}
	}
	for cid, c := range m.categories {
		if c.TripID == id {
			delete(m.categories, cid)
		}
	}
	for iid, e := range m.itinerary {
		if e.TripID == id {
			delete(m.itinerary, iid)
		}
	}
	for tid, t := range m.todos {
		if t.TripID == id {
			delete(m.todos, tid)
		}
	}
	delete(m.trips, id)
	return keys, nil
}

func (m *Memory) SetNewHost(_ context.Context, tripID int, oldHostID, newHostID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	oldRow, ok := m.findGuest(tripID, oldHostID)
	if !ok {
		return ErrNotFound
	}
	newRow, ok := m.findGuest(tripID, newHostID)
	if !ok {
		return ErrNotFound
	}

	oldRow.IsHost = false
	m.guests[oldRow.ID] = oldRow
	newRow.IsHost = true
	// Hosting implies attending, so the incoming host's RSVP moves to YES.
	newRow.RsvpStatus = models.RsvpYes
	m.guests[newRow.ID] = newRow

	trip := m.trips[tripID]
	trip.HostID = newHostID
	m.trips[tripID] = trip
	return nil
}

func (m *Memory) findGuest(tripID int, userID string) (models.TripGuest, bool) {
	for _, g := range m.guests {
		if g.TripID == tripID && g.GuestID == userID {
			return g, true
		}
	}
	return models.TripGuest{}, false
}

// --- Guests ---

func (m *Memory) AddGuest(_ context.Context, g models.TripGuest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.findGuest(g.TripID, g.GuestID); ok {
		return ErrDuplicate
	}
	g.ID = m.next()
	m.guests[g.ID] = g
	return nil
}

func (m *Memory) GetGuest(_ context.Context, tripID int, userID string) (models.TripGuest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.findGuest(tripID, userID)
	if !ok {
		return models.TripGuest{}, ErrNotFound
	}
	return g, nil
}

func (m *Memory) ListGuests(_ context.Context, tripID int) ([]GuestWithUser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	guests := make([]GuestWithUser, 0)
	for _, g := range m.guests {
		if g.TripID != tripID {
			continue
		}
		u := m.users[g.GuestID]
		guests = append(guests, GuestWithUser{TripGuest: g, FirstName: u.FirstName, LastName: u.LastName})
	}
	sort.Slice(guests, func(i, j int) bool { return guests[i].ID < guests[j].ID })
	return guests, nil
}

func (m *Memory) DeleteGuest(_ context.Context, tripID int, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.findGuest(tripID, userID)
	if !ok {
		return ErrNotFound
	}
	delete(m.guests, g.ID)
	return nil
}

func (m *Memory) UpdateRsvp(_ context.Context, tripID int, userID string, status models.RsvpStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.findGuest(tripID, userID)
	if !ok {
		return ErrNotFound
	}
	g.RsvpStatus = status
	m.guests[g.ID] = g
	return nil
}

// --- Expenses ---

func (m *Memory) CreateExpense(_ context.Context, e models.TripExpense, shares []models.TripExpenseShare) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e.ID = m.next()
	m.expenses[e.ID] = e
	for _, sh := range shares {
		sh.ID = m.next()
		sh.ExpenseID = e.ID
		sh.TripID = e.TripID
		m.shares[sh.ID] = sh
	}
	return e.ID, nil
}

func (m *Memory) UpdateExpense(_ context.Context, e models.TripExpense, shares []models.TripExpenseShare) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.expenses[e.ID]
	if !ok || cur.TripID != e.TripID {
		return ErrNotFound
	}
	cur.Title = e.Title
	cur.Amount = e.Amount
	cur.Settled = e.Settled
	cur.UpdatedAt = e.UpdatedAt
	m.expenses[e.ID] = cur

	for sid, sh := range m.shares {
		if sh.ExpenseID == e.ID {
			delete(m.shares, sid)
		}
	}
	for _, sh := range shares {
		sh.ID = m.next()
		sh.ExpenseID = e.ID
		sh.TripID = e.TripID
		m.shares[sh.ID] = sh
	}
	return nil
}

func (m *Memory) DeleteExpense(_ context.Context, tripID, expenseID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.expenses[expenseID]
	if !ok || e.TripID != tripID {
		return ErrNotFound
	}
	for sid, sh := range m.shares {
		if sh.ExpenseID == expenseID {
			delete(m.shares, sid)
		}
	}
	delete(m.expenses, expenseID)
	return nil
}

func (m *Memory) ListExpenses(_ context.Context, tripID int) ([]ExpenseWithShares, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	expenses := make([]ExpenseWithShares, 0)
	for _, e := range m.expenses {
		if e.TripID != tripID {
			continue
		}
		payer := m.users[e.UserID]
		item := ExpenseWithShares{
			TripExpense:    e,
			PayerFirstName: payer.FirstName,
			PayerLastName:  payer.LastName,
			Shares:         make([]ShareWithUser, 0),
		}
		for _, sh := range m.shares {
			if sh.ExpenseID != e.ID {
				continue
			}
			u := m.users[sh.UserID]
			item.Shares = append(item.Shares, ShareWithUser{
				TripExpenseShare: sh,
				FirstName:        u.FirstName,
				LastName:         u.LastName,
			})
		}
		sort.Slice(item.Shares, func(i, j int) bool { return item.Shares[i].ID < item.Shares[j].ID })
		expenses = append(expenses, item)
	}
	sort.Slice(expenses, func(i, j int) bool { return expenses[i].ID < expenses[j].ID })
	return expenses, nil
}

// --- Location categories ---

func (m *Memory) findCategory(tripID int, name string) (models.LocationCategory, bool) {
	for _, c := range m.categories {
		if c.TripID == tripID && c.Name == name {
			return c, true
		}
	}
	return models.LocationCategory{}, false
}

func (m *Memory) CreateCategory(_ context.Context, c models.LocationCategory) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.findCategory(c.TripID, c.Name); ok {
		return 0, ErrDuplicate
	}
	c.ID = m.next()
	m.categories[c.ID] = c
	return c.ID, nil
}

func (m *Memory) GetCategoryByName(_ context.Context, tripID int, name string) (models.LocationCategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.findCategory(tripID, name)
	if !ok {
		return models.LocationCategory{}, ErrNotFound
	}
	return c, nil
}

func (m *Memory) RenameCategory(_ context.Context, tripID int, oldName, newName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.findCategory(tripID, newName); ok {
		return ErrDuplicate
	}
	c, ok := m.findCategory(tripID, oldName)
	if !ok {
		return ErrNotFound
	}
	c.Name = newName
	m.categories[c.ID] = c
	return nil
}

func (m *Memory) DeleteCategory(_ context.Context, tripID int, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.findCategory(tripID, name)
	if !ok {
		return ErrNotFound
	}
	for lid, l := range m.locations {
		if l.TripID == tripID && l.CategoryID != nil && *l.CategoryID == c.ID {
			delete(m.locations, lid)
		}
	}
	delete(m.categories, c.ID)
	return nil
}

func (m *Memory) ListCategories(_ context.Context, tripID int) ([]models.LocationCategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	categories := make([]models.LocationCategory, 0)
	for _, c := range m.categories {
		if c.TripID == tripID {
			categories = append(categories, c)
		}
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories, nil
}

// --- Locations ---

func (m *Memory) findLocation(tripID int, placeID string) (models.TripLocation, bool) {
	for _, l := range m.locations {
		if l.TripID == tripID && l.PlaceID == placeID {
			return l, true
		}
	}
	return models.TripLocation{}, false
}

func (m *Memory) CreateLocation(_ context.Context, l models.TripLocation) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.findLocation(l.TripID, l.PlaceID); ok {
		return 0, ErrDuplicate
	}
	l.ID = m.next()
	m.locations[l.ID] = l
	return l.ID, nil
}

func (m *Memory) GetLocation(_ context.Context, tripID int, placeID string) (models.TripLocation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.findLocation(tripID, placeID)
	if !ok {
		return models.TripLocation{}, ErrNotFound
	}
	return l, nil
}

func (m *Memory) UpdateLocation(_ context.Context, l models.TripLocation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.findLocation(l.TripID, l.PlaceID)
	if !ok {
		return ErrNotFound
	}
	cur.Name = l.Name
	cur.Latitude = l.Latitude
	cur.Longitude = l.Longitude
	cur.CategoryID = l.CategoryID
	m.locations[cur.ID] = cur
	return nil
}

func (m *Memory) DeleteLocation(_ context.Context, tripID int, placeID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.findLocation(tripID, placeID)
	if !ok {
		return ErrNotFound
	}
	delete(m.locations, l.ID)
	return nil
}

func (m *Memory) ListLocations(_ context.Context, tripID int) ([]LocationWithCategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	locations := make([]LocationWithCategory, 0)
	for _, l := range m.locations {
		if l.TripID != tripID {
			continue
		}
		item := LocationWithCategory{TripLocation: l}
		if l.CategoryID != nil {
			if c, ok := m.categories[*l.CategoryID]; ok {
				item.CategoryName = c.Name
			}
		}
		locations = append(locations, item)
	}
	sort.Slice(locations, func(i, j int) bool { return locations[i].ID < locations[j].ID })
	return locations, nil
}

// --- Itinerary ---

func (m *Memory) CreateItineraryEntry(_ context.Context, e models.ItineraryEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.itinerary[e.ID]; ok {
		return ErrDuplicate
	}
	m.itinerary[e.ID] = e
	return nil
}

func (m *Memory) UpdateItineraryEntry(_ context.Context, e models.ItineraryEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.itinerary[e.ID]
	if !ok || cur.TripID != e.TripID {
		return ErrNotFound
	}
	cur.Date = e.Date
	cur.Description = e.Description
	m.itinerary[e.ID] = cur
	return nil
}

func (m *Memory) DeleteItineraryEntry(_ context.Context, tripID int, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.itinerary[id]
	if !ok || e.TripID != tripID {
		return ErrNotFound
	}
	delete(m.itinerary, id)
	return nil
}

func (m *Memory) ListItinerary(_ context.Context, tripID int) ([]models.ItineraryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entries := make([]models.ItineraryEntry, 0)
	for _, e := range m.itinerary {
		if e.TripID == tripID {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date.Before(entries[j].Date) })
	return entries, nil
}

// --- Todos ---

func (m *Memory) CreateTodo(_ context.Context, t models.TripTodo) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.todos[t.ID]; ok {
		return ErrDuplicate
	}
	m.todos[t.ID] = t
	return nil
}

func (m *Memory) GetTodo(_ context.Context, tripID int, id string) (models.TripTodo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.todos[id]
	if !ok || t.TripID != tripID {
		return models.TripTodo{}, ErrNotFound
	}
	return t, nil
}

func (m *Memory) UpdateTodo(_ context.Context, t models.TripTodo) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.todos[t.ID]
	if !ok || cur.TripID != t.TripID {
		return ErrNotFound
	}
	cur.Text = t.Text
	cur.Checked = t.Checked
	cur.LastUpdatedBy = t.LastUpdatedBy
	cur.LastUpdatedAt = t.LastUpdatedAt
	m.todos[t.ID] = cur
	return nil
}

func (m *Memory) DeleteTodo(_ context.Context, tripID int, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.todos[id]
	if !ok || t.TripID != tripID {
		return ErrNotFound
	}
	delete(m.todos, id)
	return nil
}

func (m *Memory) ListTodos(_ context.Context, tripID int) ([]models.TripTodo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	todos := make([]models.TripTodo, 0)
	for _, t := range m.todos {
		if t.TripID == tripID {
			todos = append(todos, t)
		}
	}
	sort.Slice(todos, func(i, j int) bool { return todos[i].LastUpdatedAt.Before(todos[j].LastUpdatedAt) })
	return todos, nil
}

// --- Uploads ---

func (m *Memory) CreateUpload(_ context.Context, u models.UserUpload) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u.ID = m.next()
	m.uploads[u.ID] = u
	return u.ID, nil
}

func (m *Memory) GetUpload(_ context.Context, tripID, id int) (models.UserUpload, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.uploads[id]
	if !ok || u.TripID != tripID {
		return models.UserUpload{}, ErrNotFound
	}
	return u, nil
}

func (m *Memory) DeleteUpload(_ context.Context, tripID, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.uploads[id]
	if !ok || u.TripID != tripID {
		return ErrNotFound
	}
	delete(m.uploads, id)
	return nil
}

func (m *Memory) ListUploads(_ context.Context, tripID int, category *models.DocumentCategory) ([]models.UserUpload, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	uploads := make([]models.UserUpload, 0)
	for _, u := range m.uploads {
		if u.TripID != tripID {
			continue
		}
		if category != nil && u.DocumentCategory != *category {
			continue
		}
		uploads = append(uploads, u)
	}
	sort.Slice(uploads, func(i, j int) bool { return uploads[i].ID < uploads[j].ID })
	return uploads, nil
}
