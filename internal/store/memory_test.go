package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryReportsLifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryReports()

	id, err := s.Insert(ctx, &Report{
		City:        "jakarta",
		Type:        "flood",
		Severity:    "high",
		Description: "Banjir setinggi lutut",
		Status:      StatusPending,
		CreatedAt:   time.Now().UTC(),
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, got.Status)
	assert.Equal(t, "jakarta", got.City)

	require.NoError(t, s.SetStatus(ctx, id, StatusApproved))

	got, err = s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, got.Status)
	assert.False(t, got.UpdatedAt.IsZero())

	require.NoError(t, s.Delete(ctx, id))

	_, err = s.Get(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryReportsNotFound(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryReports()

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.SetStatus(ctx, "missing", StatusApproved), ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, "missing"), ErrNotFound)
}

func TestMemoryReportsListFilterAndOrder(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryReports()

	base := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	for i, status := range []string{StatusPending, StatusApproved, StatusPending} {
		_, err := s.Insert(ctx, &Report{
			Description: status,
			Status:      status,
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	all, err := s.List(ctx, "", 50)
	require.NoError(t, err)
	require.Len(t, all, 3)

	// Newest first.
	assert.True(t, all[0].CreatedAt.After(all[1].CreatedAt))
	assert.True(t, all[1].CreatedAt.After(all[2].CreatedAt))

	// "all" behaves like no filter.
	unfiltered, err := s.List(ctx, "all", 50)
	require.NoError(t, err)
	assert.Len(t, unfiltered, 3)

	pending, err := s.List(ctx, StatusPending, 50)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	for _, r := range pending {
		assert.Equal(t, StatusPending, r.Status)
	}

	limited, err := s.List(ctx, "", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestMemoryReportsCount(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryReports()

	for _, status := range []string{StatusPending, StatusPending, StatusApproved} {
		_, err := s.Insert(ctx, &Report{Status: status, CreatedAt: time.Now().UTC()})
		require.NoError(t, err)
	}

	total, err := s.Count(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	pending, err := s.Count(ctx, StatusPending)
	require.NoError(t, err)
	assert.Equal(t, int64(2), pending)

	rejected, err := s.Count(ctx, StatusRejected)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rejected)
}

func TestMemoryUsersIdentityLookup(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryUsers()

	id, err := s.Create(ctx, &User{
		GoogleID: "g-1",
		Email:    "andi@example.org",
		Name:     "Andi",
		Role:     "user",
	})
	require.NoError(t, err)

	// Either the external id or the email resolves the account.
	byGoogle, err := s.FindByIdentity(ctx, "g-1", "other@example.org")
	require.NoError(t, err)
	assert.Equal(t, id, byGoogle.ID)

	byEmail, err := s.FindByIdentity(ctx, "g-unknown", "andi@example.org")
	require.NoError(t, err)
	assert.Equal(t, id, byEmail.ID)

	_, err = s.FindByIdentity(ctx, "g-unknown", "nobody@example.org")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryUsersProfileAndCounters(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryUsers()

	id, err := s.Create(ctx, &User{GoogleID: "g-1", Email: "andi@example.org", Name: "Andi"})
	require.NoError(t, err)

	login := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	require.NoError(t, s.UpdateProfile(ctx, id, "Andi Wijaya", "pic.png", login))

	require.NoError(t, s.IncrementReports(ctx, id, 1))
	require.NoError(t, s.IncrementReports(ctx, id, 1))

	u, err := s.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Andi Wijaya", u.Name)
	assert.Equal(t, "pic.png", u.Picture)
	assert.Equal(t, login, u.LastLogin)
	assert.Equal(t, 2, u.ReportsCount)

	assert.ErrorIs(t, s.UpdateProfile(ctx, "missing", "x", "y", login), ErrNotFound)
	assert.ErrorIs(t, s.IncrementReports(ctx, "missing", 1), ErrNotFound)
}
