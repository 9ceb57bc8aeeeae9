package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/propunit/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})

	return store
}

func testDefinition(symbol string) domain.UnitDefinition {
	return domain.UnitDefinition{
		ID:          "id-" + symbol,
		Symbol:      symbol,
		Category:    domain.Length,
		Scale:       201.168,
		Description: "test unit " + symbol,
		CreatedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

// ==================== Store Creation and Initialization Tests ====================

func TestNewStore_ErrorHandling(t *testing.T) {
	_, err := NewStore("/invalid\x00path")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "creating data directory")
}

func TestNewStore_Success(t *testing.T) {
	tempDir := t.TempDir()

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	defer store.Close()

	dbPath := filepath.Join(tempDir, DatabaseFile)
	assert.Equal(t, dbPath, store.Path())
	assert.FileExists(t, dbPath)
	assert.NoError(t, store.db.Ping())
}

func TestNewStore_DefaultDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := NewStore("")
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(home, ".propunit", "data", DatabaseFile), store.Path())
}

func TestNewStore_DirectoryCreation(t *testing.T) {
	nestedDir := filepath.Join(t.TempDir(), "nested", "path", "to", "db")

	store, err := NewStore(nestedDir)
	require.NoError(t, err)
	defer store.Close()

	assert.DirExists(t, nestedDir)
}

func TestNewStore_Migrations(t *testing.T) {
	store := setupTestStore(t)

	version, err := store.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, 1, version)

	var tableExists int
	err = store.db.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='units'",
	).Scan(&tableExists)
	require.NoError(t, err)
	assert.Equal(t, 1, tableExists)
}

func TestNewStore_ReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.UnitStore().Save(ctx, testDefinition("furlong")))
	require.NoError(t, store.Close())

	store, err = NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	def, err := store.UnitStore().Get(ctx, "furlong")
	require.NoError(t, err)
	assert.Equal(t, "id-furlong", def.ID)

	var applied int
	require.NoError(t, store.db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&applied))
	assert.Equal(t, 1, applied, "migrations must not be re-applied")
}

func TestStore_MigrateSkipsAppliedVersions(t *testing.T) {
	store := setupTestStore(t)

	fsys := fstest.MapFS{
		"001_units.up.sql":   {Data: []byte("THIS IS NOT SQL")},
		"002_extra.up.sql":   {Data: []byte("CREATE TABLE extra (id INTEGER PRIMARY KEY);")},
		"002_extra.down.sql": {Data: []byte("DROP TABLE extra;")},
		"readme.txt":         {Data: []byte("ignored")},
	}
	require.NoError(t, store.migrate(fsys))

	version, err := store.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, 2, version)
}

func TestStore_MigrateFailureRollsBack(t *testing.T) {
	store := setupTestStore(t)

	fsys := fstest.MapFS{
		"002_broken.up.sql": {Data: []byte("CREATE TABLE broken (")},
	}
	err := store.migrate(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "002_broken.up.sql")

	version, err := store.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, 1, version)
}

func TestNewStore_ForeignKeysEnabled(t *testing.T) {
	store := setupTestStore(t)

	var fkEnabled int
	require.NoError(t, store.db.QueryRow("PRAGMA foreign_keys").Scan(&fkEnabled))
	assert.Equal(t, 1, fkEnabled)
}

func TestStore_Close(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Close())
	assert.Error(t, store.db.Ping())
}

func TestStore_UnitStoreGetter(t *testing.T) {
	store := setupTestStore(t)
	assert.NotNil(t, store.UnitStore())
}

// ==================== UnitStore Tests ====================

func TestUnitStore_SaveAndGet(t *testing.T) {
	store := setupTestStore(t)
	units := store.UnitStore()
	ctx := context.Background()

	def := testDefinition("furlong")
	require.NoError(t, units.Save(ctx, def))

	got, err := units.Get(ctx, "furlong")
	require.NoError(t, err)
	assert.Equal(t, def.ID, got.ID)
	assert.Equal(t, def.Symbol, got.Symbol)
	assert.Equal(t, domain.Length, got.Category)
	assert.Equal(t, 201.168, got.Scale)
	assert.Zero(t, got.Offset)
	assert.Equal(t, def.Description, got.Description)
	assert.True(t, def.CreatedAt.Equal(got.CreatedAt))
}

func TestUnitStore_SaveUpdate(t *testing.T) {
	store := setupTestStore(t)
	units := store.UnitStore()
	ctx := context.Background()

	def := testDefinition("furlong")
	require.NoError(t, units.Save(ctx, def))

	def.ID = "ignored-on-update"
	def.Scale = 201.17
	def.Description = "rounded"
	require.NoError(t, units.Save(ctx, def))

	got, err := units.Get(ctx, "furlong")
	require.NoError(t, err)
	assert.Equal(t, "id-furlong", got.ID)
	assert.Equal(t, 201.17, got.Scale)
	assert.Equal(t, "rounded", got.Description)
}

func TestUnitStore_SaveAffine(t *testing.T) {
	store := setupTestStore(t)
	units := store.UnitStore()
	ctx := context.Background()

	def := domain.UnitDefinition{
		ID:       "id-re",
		Symbol:   "°Ré",
		Category: domain.Temperature,
		Scale:    1.25,
		Offset:   273.15,
	}
	require.NoError(t, units.Save(ctx, def))

	got, err := units.Get(ctx, "°Ré")
	require.NoError(t, err)
	assert.Equal(t, 273.15, got.Offset)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestUnitStore_SaveInvalid(t *testing.T) {
	store := setupTestStore(t)
	units := store.UnitStore()

	err := units.Save(context.Background(), domain.UnitDefinition{ID: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = units.Save(context.Background(), domain.UnitDefinition{Symbol: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUnitStore_Get_NotFound(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.UnitStore().Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUnitStore_List(t *testing.T) {
	store := setupTestStore(t)
	units := store.UnitStore()
	ctx := context.Background()

	empty, err := units.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	for _, symbol := range []string{"league", "chain", "furlong"} {
		require.NoError(t, units.Save(ctx, testDefinition(symbol)))
	}

	defs, err := units.List(ctx)
	require.NoError(t, err)
	require.Len(t, defs, 3)
	assert.Equal(t, "chain", defs[0].Symbol)
	assert.Equal(t, "furlong", defs[1].Symbol)
	assert.Equal(t, "league", defs[2].Symbol)
}

func TestUnitStore_Delete(t *testing.T) {
	store := setupTestStore(t)
	units := store.UnitStore()
	ctx := context.Background()

	require.NoError(t, units.Save(ctx, testDefinition("furlong")))
	require.NoError(t, units.Delete(ctx, "furlong"))

	_, err := units.Get(ctx, "furlong")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, units.Delete(ctx, "furlong"), domain.ErrNotFound)
}

func TestUnitStore_ContextCancelled(t *testing.T) {
	store := setupTestStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.UnitStore().List(ctx)
	assert.Error(t, err)
}

func TestStore_FilePermissions(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0700), info.Mode().Perm())
}
