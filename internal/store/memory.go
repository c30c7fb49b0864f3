package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryReports is a concurrency-safe in-memory ReportStore. It backs the
// API when no document database is configured, and the tests.
type MemoryReports struct {
	mu   sync.RWMutex
	data map[string]Report
}

// NewMemoryReports creates an empty in-memory report store.
func NewMemoryReports() *MemoryReports {
	return &MemoryReports{data: make(map[string]Report)}
}

func (s *MemoryReports) Insert(_ context.Context, r *Report) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r.ID = uuid.NewString()
	s.data[r.ID] = *r
	return r.ID, nil
}

func (s *MemoryReports) List(_ context.Context, status string, limit int64) ([]Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reports := []Report{}
	for _, r := range s.data {
		if status != "" && status != "all" && r.Status != status {
			continue
		}
		reports = append(reports, r)
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].CreatedAt.After(reports[j].CreatedAt)
	})

	if limit > 0 && int64(len(reports)) > limit {
		reports = reports[:limit]
	}
	return reports, nil
}

func (s *MemoryReports) Get(_ context.Context, id string) (*Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.data[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &r, nil
}

func (s *MemoryReports) SetStatus(_ context.Context, id, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.data[id]
	if !ok {
		return ErrNotFound
	}
	r.Status = status
	r.UpdatedAt = time.Now().UTC()
	s.data[id] = r
	return nil
}

func (s *MemoryReports) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[id]; !ok {
		return ErrNotFound
	}
	delete(s.data, id)
	return nil
}

func (s *MemoryReports) Count(_ context.Context, status string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, r := range s.data {
		if status == "" || r.Status == status {
			n++
		}
	}
	return n, nil
}

// MemoryUsers is a concurrency-safe in-memory UserStore.
type MemoryUsers struct {
	mu   sync.RWMutex
	data map[string]User
}

// NewMemoryUsers creates an empty in-memory user store.
func NewMemoryUsers() *MemoryUsers {
	return &MemoryUsers{data: make(map[string]User)}
}

func (s *MemoryUsers) FindByIdentity(_ context.Context, googleID, email string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.data {
		if u.GoogleID == googleID || u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryUsers) FindByID(_ context.Context, id string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.data[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (s *MemoryUsers) Create(_ context.Context, u *User) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u.ID = uuid.NewString()
	s.data[u.ID] = *u
	return u.ID, nil
}

func (s *MemoryUsers) UpdateProfile(_ context.Context, id, name, picture string, lastLogin time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.data[id]
	if !ok {
		return ErrNotFound
	}
	u.Name = name
	u.Picture = picture
	u.LastLogin = lastLogin
	s.data[id] = u
	return nil
}

func (s *MemoryUsers) IncrementReports(_ context.Context, id string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.data[id]
	if !ok {
		return ErrNotFound
	}
	u.ReportsCount += delta
	s.data[id] = u
	return nil
}

func (s *MemoryUsers) List(_ context.Context, limit int64) ([]User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := []User{}
	for _, u := range s.data {
		users = append(users, u)
	}

	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})

	if limit > 0 && int64(len(users)) > limit {
		users = users[:limit]
	}
	return users, nil
}

func (s *MemoryUsers) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.data)), nil
}
