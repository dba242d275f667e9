package admin

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/ramadankeeper/internal/catalog"
	"github.com/dmitrijs2005/ramadankeeper/internal/common"
	"github.com/dmitrijs2005/ramadankeeper/internal/logging"
	"github.com/dmitrijs2005/ramadankeeper/internal/storage"
	"github.com/dmitrijs2005/ramadankeeper/internal/tracker"
	"github.com/dmitrijs2005/ramadankeeper/internal/users"
)

type fixture struct {
	svc   *Service
	users *users.Service
	grid  *tracker.Grid
	store storage.Store
	state *catalog.State
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := storage.NewMemoryStore()
	us := users.NewService(users.NewStoreRepository(store), users.PlaintextComparer{})
	grid := tracker.NewGrid(store)
	state := catalog.NewState()
	state.Set(catalog.Defaults())

	return &fixture{
		svc:   NewService(us, grid, store, state, logging.NewDiscardLogger()),
		users: us,
		grid:  grid,
		store: store,
		state: state,
	}
}

func (f *fixture) register(t *testing.T, name string) *users.User {
	t.Helper()
	u, err := f.users.Register(context.Background(), name, name+"@example.com", "secret1", "secret1")
	require.NoError(t, err)
	return u
}

func TestAggregate_CountsUsersAdminsAndJoinedToday(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.register(t, "amina")
	f.register(t, "bilal")

	// Backdate one user and add one with an unparseable joinDate.
	list, err := f.users.All(ctx)
	require.NoError(t, err)
	list[1].JoinDate = "2020-01-01"
	list = append(list, users.User{ID: "x", Username: "x", Email: "x@example.com", JoinDate: "yesterday"})
	require.NoError(t, f.users.Replace(ctx, list))

	stats, err := f.svc.Aggregate(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalUsers)
	assert.Equal(t, 1, stats.JoinedToday)
	assert.Equal(t, 1, stats.Admins)
}

func TestExportAll_MaterializesFullGrid(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u := f.register(t, "amina")
	require.NoError(t, f.grid.SetTask(ctx, u.ID, 5, "fajr", true))

	data, err := f.svc.ExportAll(ctx)
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal(data, &doc))

	require.Len(t, doc.Users, 1)
	days := doc.TrackerData[u.ID]
	require.Len(t, days, tracker.DaysInPeriod)
	require.Len(t, days["day5"], len(tracker.Tasks))
	assert.True(t, days["day5"]["fajr"])
	assert.False(t, days["day5"]["isha"])
	assert.False(t, days["day17"]["etkaf"], "untouched cells default to false")

	assert.Equal(t, catalog.Defaults(), doc.Resources)

	// Pretty-printed output.
	assert.Contains(t, string(data), "\n  \"users\"")
}

func TestImportAll_ParseFailureLeavesStateUntouched(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u := f.register(t, "amina")

	reloaded := false
	f.svc.OnReload(func() { reloaded = true })

	err := f.svc.ImportAll(ctx, []byte(`{"users": [`))
	require.ErrorIs(t, err, common.ErrImportParse)
	assert.Contains(t, err.Error(), "unexpected end of JSON input")
	assert.False(t, reloaded)

	list, err := f.users.All(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, u.ID, list[0].ID)
}

func TestImportAll_PartialDocument_TrackerOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.register(t, "amina")
	before := f.state.Snapshot()

	err := f.svc.ImportAll(ctx, []byte(`{"trackerData": {"u1": {"day1": {"fajr": true}}}}`))
	require.NoError(t, err)

	// The tracker key is written as the literal string.
	raw, err := f.store.Get(ctx, "u1-day1-fajr")
	require.NoError(t, err)
	assert.Equal(t, "true", raw)

	// Users and resources are untouched.
	list, err := f.users.All(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, before, f.state.Snapshot())
}

func TestImportAll_UsersReplacedWholesale(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.register(t, "amina")

	err := f.svc.ImportAll(ctx, []byte(`{"users": [
		{"id": "9", "username": "zane", "email": "z@example.com", "password": "pw", "joinDate": "2026-03-02", "isAdmin": false}
	]}`))
	require.NoError(t, err)

	list, err := f.users.All(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "zane", list[0].Username)
}

func TestImportAll_FalseValuesWrittenVerbatim(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	err := f.svc.ImportAll(ctx, []byte(`{"trackerData": {"u1": {"day2": {"isha": false}}}}`))
	require.NoError(t, err)

	raw, err := f.store.Get(ctx, "u1-day2-isha")
	require.NoError(t, err)
	assert.Equal(t, "false", raw, "stored as the literal string, not removed")
}

// faultStore fails every write except the user list, simulating a crash
// partway through an import.
type faultStore struct {
	storage.Store
	err error
}

func (s *faultStore) Set(ctx context.Context, key, value string) error {
	if key != "users" {
		return s.err
	}
	return s.Store.Set(ctx, key, value)
}

func TestImportAll_WriteFailureLeavesPartialState(t *testing.T) {
	store := &faultStore{Store: storage.NewMemoryStore(), err: errors.New("disk full")}
	us := users.NewService(users.NewStoreRepository(store), users.PlaintextComparer{})
	grid := tracker.NewGrid(store)
	state := catalog.NewState()
	state.Set(catalog.Defaults())
	svc := NewService(us, grid, store, state, logging.NewDiscardLogger())

	reloaded := false
	svc.OnReload(func() { reloaded = true })

	ctx := context.Background()
	err := svc.ImportAll(ctx, []byte(`{
		"users": [{"id": "9", "username": "zane", "email": "z@example.com", "password": "pw", "joinDate": "2026-03-02", "isAdmin": true}],
		"trackerData": {"u1": {"day1": {"fajr": true}}}
	}`))
	require.ErrorContains(t, err, "disk full")
	assert.False(t, reloaded)

	// Writes are per-key with no transaction: the users section already
	// landed, the tracker cell never did.
	list, err := us.All(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "zane", list[0].Username)

	raw, err := store.Store.Get(ctx, "u1-day1-fajr")
	require.NoError(t, err)
	assert.Equal(t, "", raw)
}

func TestImportAll_ReloadFiresOnSuccess(t *testing.T) {
	f := newFixture(t)

	reloaded := false
	f.svc.OnReload(func() { reloaded = true })

	require.NoError(t, f.svc.ImportAll(context.Background(), []byte(`{}`)))
	assert.True(t, reloaded)
}

func TestRoundTrip_ImportOfExportPreservesState(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	amina := f.register(t, "amina")
	bilal := f.register(t, "bilal")

	for _, task := range tracker.Tasks {
		require.NoError(t, f.grid.SetTask(ctx, amina.ID, 1, task, true))
	}
	require.NoError(t, f.grid.SetTask(ctx, bilal.ID, 9, "juz", true))

	usersBefore, err := f.users.All(ctx)
	require.NoError(t, err)
	aminaStats, err := f.grid.Stats(ctx, amina.ID)
	require.NoError(t, err)
	bilalStats, err := f.grid.Stats(ctx, bilal.ID)
	require.NoError(t, err)

	data, err := f.svc.ExportAll(ctx)
	require.NoError(t, err)
	require.NoError(t, f.svc.ImportAll(ctx, data))

	usersAfter, err := f.users.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, usersBefore, usersAfter)

	gotAmina, err := f.grid.Stats(ctx, amina.ID)
	require.NoError(t, err)
	assert.Equal(t, aminaStats, gotAmina)

	gotBilal, err := f.grid.Stats(ctx, bilal.ID)
	require.NoError(t, err)
	assert.Equal(t, bilalStats, gotBilal)
}

func TestWriteExportFile_WritesDocument(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "amina")

	dir := t.TempDir()
	path, err := f.svc.WriteExportFile(ctx, filepath.Join(dir, "out.json"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Len(t, doc.Users, 1)
}

func TestAggregate_UsesInjectedClock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.register(t, "amina")
	f.svc.now = func() time.Time { return time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC) }

	stats, err := f.svc.Aggregate(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.JoinedToday)
}
