package users

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/ramadankeeper/internal/common"
	"github.com/dmitrijs2005/ramadankeeper/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	repo := NewStoreRepository(storage.NewMemoryStore())
	return NewService(repo, PlaintextComparer{})
}

func TestRegister_FirstUserIsAdmin(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	first, err := s.Register(ctx, "amina", "amina@example.com", "secret1", "secret1")
	require.NoError(t, err)
	assert.True(t, first.IsAdmin)

	second, err := s.Register(ctx, "bilal", "bilal@example.com", "secret2", "secret2")
	require.NoError(t, err)
	assert.False(t, second.IsAdmin)

	third, err := s.Register(ctx, "dana", "dana@example.com", "secret3", "secret3")
	require.NoError(t, err)
	assert.False(t, third.IsAdmin)
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		email    string
		password string
		confirm  string
	}{
		{name: "empty username", username: "", email: "a@b.c", password: "secret1", confirm: "secret1"},
		{name: "empty email", username: "a", email: "", password: "secret1", confirm: "secret1"},
		{name: "empty password", username: "a", email: "a@b.c", password: "", confirm: ""},
		{name: "whitespace-only username", username: "   ", email: "a@b.c", password: "secret1", confirm: "secret1"},
		{name: "mismatched passwords", username: "a", email: "a@b.c", password: "secret1", confirm: "secret2"},
		{name: "short password", username: "a", email: "a@b.c", password: "12345", confirm: "12345"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestService(t)
			_, err := s.Register(context.Background(), tc.username, tc.email, tc.password, tc.confirm)
			require.ErrorIs(t, err, common.ErrValidation)
		})
	}
}

func TestRegister_DuplicateUsernameOrEmail(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	_, err := s.Register(ctx, "amina", "amina@example.com", "secret1", "secret1")
	require.NoError(t, err)

	_, err = s.Register(ctx, "amina", "other@example.com", "secret1", "secret1")
	require.ErrorIs(t, err, common.ErrDuplicateUser)

	_, err = s.Register(ctx, "other", "amina@example.com", "secret1", "secret1")
	require.ErrorIs(t, err, common.ErrDuplicateUser)

	// Case differs: exact match only, so this is a new user.
	_, err = s.Register(ctx, "Amina", "Amina@example.com", "secret1", "secret1")
	require.NoError(t, err)
}

func TestRegister_IDAndJoinDateComeFromClock(t *testing.T) {
	s := newTestService(t)
	fixed := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	u, err := s.Register(context.Background(), "amina", "amina@example.com", "secret1", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01", u.JoinDate)
	assert.Equal(t, "1772368200000", u.ID)
}

func TestAuthenticate_ByUsernameOrEmail(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	_, err := s.Register(ctx, "amina", "amina@example.com", "secret1", "secret1")
	require.NoError(t, err)

	byName, err := s.Authenticate(ctx, "amina", "secret1")
	require.NoError(t, err)

	byEmail, err := s.Authenticate(ctx, "amina@example.com", "secret1")
	require.NoError(t, err)

	// Idempotent read: identical fields on repeated calls.
	assert.Equal(t, byName, byEmail)

	again, err := s.Authenticate(ctx, "amina", "secret1")
	require.NoError(t, err)
	assert.Equal(t, byName, again)
}

func TestAuthenticate_Failures(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	_, err := s.Register(ctx, "amina", "amina@example.com", "secret1", "secret1")
	require.NoError(t, err)

	_, err = s.Authenticate(ctx, "amina", "wrong")
	require.ErrorIs(t, err, common.ErrUnauthorized)

	_, err = s.Authenticate(ctx, "nobody", "secret1")
	require.ErrorIs(t, err, common.ErrUnauthorized)

	// Password comparison is case-sensitive.
	_, err = s.Authenticate(ctx, "amina", "SECRET1")
	require.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestReplace_OverwritesWithoutMerge(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	_, err := s.Register(ctx, "amina", "amina@example.com", "secret1", "secret1")
	require.NoError(t, err)

	imported := []User{
		{ID: "1", Username: "x", Email: "x@example.com", Password: "px", JoinDate: "2026-02-18", IsAdmin: true},
		{ID: "2", Username: "y", Email: "y@example.com", Password: "py", JoinDate: "2026-02-19", IsAdmin: false},
	}
	require.NoError(t, s.Replace(ctx, imported))

	list, err := s.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, imported, list)
}

func TestAvatarInitial(t *testing.T) {
	u := &User{Username: "amina"}
	assert.Equal(t, "A", u.AvatarInitial())

	empty := &User{}
	assert.Equal(t, "", empty.AvatarInitial())
}
