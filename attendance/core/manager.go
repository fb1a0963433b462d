package core

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"tapacademy.com/attendance/attendance/model"
)

// Store persists attendance records. Implementations must enforce uniqueness
// of (user_id, date) and return ErrAlreadyCheckedIn when Create violates it.
type Store interface {
	// FindByUserAndDate returns nil, nil when no record exists.
	FindByUserAndDate(ctx context.Context, userID, date string) (*model.AttendanceRecord, error)
	Create(ctx context.Context, rec *model.AttendanceRecord) error
	// CompleteCheckOut writes the check-out fields only if the stored record
	// has none yet, returning ErrAlreadyCheckedOut otherwise.
	CompleteCheckOut(ctx context.Context, rec *model.AttendanceRecord) error
	// ListByUser and ListAll order by date descending.
	ListByUser(ctx context.Context, userID string) ([]model.AttendanceRecord, error)
	ListAll(ctx context.Context) ([]model.AttendanceRecord, error)
}

// Directory resolves user ids to display attributes. Unknown ids are omitted.
type Directory interface {
	Resolve(ctx context.Context, userIDs []string) (map[string]model.UserView, error)
}

// JoinedRecord is an attendance record with its owner's directory view.
// User is nil when the owner is no longer in the directory.
type JoinedRecord struct {
	model.AttendanceRecord
	User *model.UserView `json:"user"`
}

type Manager struct {
	store     Store
	directory Directory
	rules     Rules
	newID     func() string
}

func NewManager(store Store, directory Directory, rules Rules) *Manager {
	return &Manager{
		store:     store,
		directory: directory,
		rules:     rules,
		newID:     uuid.NewString,
	}
}

func (m *Manager) Rules() Rules {
	return m.rules
}

// CheckIn opens today's record for userID.
func (m *Manager) CheckIn(ctx context.Context, userID string, now time.Time) (*model.AttendanceRecord, error) {
	date := m.rules.Today(now)

	existing, err := m.store.FindByUserAndDate(ctx, userID, date)
	if err != nil {
		return nil, storeErr("find", err)
	}
	if existing != nil {
		return nil, ErrAlreadyCheckedIn
	}

	rec := &model.AttendanceRecord{
		ID:          m.newID(),
		UserID:      userID,
		Date:        date,
		CheckInTime: now,
		Status:      m.rules.CheckInStatus(now),
		TotalHours:  0,
	}

	if err := m.store.Create(ctx, rec); err != nil {
		// a concurrent check-in won the unique index
		if errors.Is(err, ErrAlreadyCheckedIn) {
			return nil, ErrAlreadyCheckedIn
		}
		return nil, storeErr("create", err)
	}

	return rec, nil
}

// CheckOut closes today's record for userID. A record can be closed once.
func (m *Manager) CheckOut(ctx context.Context, userID string, now time.Time) (*model.AttendanceRecord, error) {
	date := m.rules.Today(now)

	rec, err := m.store.FindByUserAndDate(ctx, userID, date)
	if err != nil {
		return nil, storeErr("find", err)
	}
	if rec == nil {
		return nil, ErrNotCheckedIn
	}
	if rec.CheckedOut() {
		return nil, ErrAlreadyCheckedOut
	}

	worked := now.Sub(rec.CheckInTime)
	updated := *rec
	updated.CheckOutTime = &now
	updated.TotalHours = RoundHours(worked)
	updated.Status = m.rules.CheckOutStatus(rec.Status, worked)

	if err := m.store.CompleteCheckOut(ctx, &updated); err != nil {
		if errors.Is(err, ErrAlreadyCheckedOut) {
			return nil, ErrAlreadyCheckedOut
		}
		return nil, storeErr("check out", err)
	}

	return &updated, nil
}

// TodayStatus returns nil, nil when userID has not checked in today.
func (m *Manager) TodayStatus(ctx context.Context, userID string, now time.Time) (*model.AttendanceRecord, error) {
	rec, err := m.store.FindByUserAndDate(ctx, userID, m.rules.Today(now))
	if err != nil {
		return nil, storeErr("find", err)
	}
	return rec, nil
}

func (m *Manager) History(ctx context.Context, userID string) ([]model.AttendanceRecord, error) {
	records, err := m.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, storeErr("list by user", err)
	}
	return records, nil
}

// All returns every record joined with its owner's directory view.
func (m *Manager) All(ctx context.Context) ([]JoinedRecord, error) {
	records, err := m.store.ListAll(ctx)
	if err != nil {
		return nil, storeErr("list all", err)
	}
	return m.Join(ctx, records)
}

// Join attaches directory views to records, preserving order.
func (m *Manager) Join(ctx context.Context, records []model.AttendanceRecord) ([]JoinedRecord, error) {
	seen := make(map[string]struct{})
	ids := make([]string, 0)
	for _, r := range records {
		if _, ok := seen[r.UserID]; ok {
			continue
		}
		seen[r.UserID] = struct{}{}
		ids = append(ids, r.UserID)
	}

	users := map[string]model.UserView{}
	if len(ids) > 0 {
		var err error
		users, err = m.directory.Resolve(ctx, ids)
		if err != nil {
			return nil, storeErr("resolve users", err)
		}
	}

	joined := make([]JoinedRecord, len(records))
	for i, r := range records {
		joined[i] = JoinedRecord{AttendanceRecord: r}
		if u, ok := users[r.UserID]; ok {
			joined[i].User = &u
		}
	}
	return joined, nil
}
