package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// exercise runs the behaviour every backend must share.
func exercise(t *testing.T, s Storage) {
	t.Helper()
	ctx := context.Background()

	_, found, err := s.Get(ctx, "cart")
	require.NoError(t, err)
	assert.False(t, found, "missing key")

	require.NoError(t, s.Set(ctx, "cart", `[{"id":"1"}]`))
	v, found, err := s.Get(ctx, "cart")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, `[{"id":"1"}]`, v)

	require.NoError(t, s.Set(ctx, "cart", `[]`))
	v, _, _ = s.Get(ctx, "cart")
	assert.Equal(t, `[]`, v, "Set overwrites")

	require.NoError(t, s.Remove(ctx, "cart"))
	_, found, err = s.Get(ctx, "cart")
	require.NoError(t, err)
	assert.False(t, found, "removed key")

	require.NoError(t, s.Remove(ctx, "never-set"), "removing a missing key is not an error")
}

func TestMemory(t *testing.T) {
	exercise(t, NewMemory())
}

func TestMemory_DumpRestore(t *testing.T) {
	ctx := context.Background()
	src := NewMemory()
	require.NoError(t, src.Set(ctx, "s1:cart", `[1]`))
	require.NoError(t, src.Set(ctx, "s2:cart", `[2]`))

	file := filepath.Join(t.TempDir(), "storage.json")
	require.NoError(t, src.DumpToFile(file))

	dst := NewMemory()
	require.NoError(t, dst.RestoreFromFile(file))
	assert.Equal(t, []string{"s1:cart", "s2:cart"}, dst.Keys())
	v, _, _ := dst.Get(ctx, "s2:cart")
	assert.Equal(t, `[2]`, v)
}

func TestMemory_RestoreMissingFile(t *testing.T) {
	assert.Error(t, NewMemory().RestoreFromFile("/nonexistent/path/storage.json"))
}

func TestPrefixed(t *testing.T) {
	ctx := context.Background()
	base := NewMemory()
	a := Prefixed(base, "a")
	b := Prefixed(base, "b")
	exercise(t, a)

	require.NoError(t, a.Set(ctx, "cart", "A"))
	require.NoError(t, b.Set(ctx, "cart", "B"))
	assert.Equal(t, []string{"a:cart", "b:cart"}, base.Keys())
	v, _, _ := b.Get(ctx, "cart")
	assert.Equal(t, "B", v)

	assert.Same(t, Storage(base), Prefixed(base, ""), "empty prefix returns the backend itself")
}

func TestDB(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	s, err := NewDB(db)
	require.NoError(t, err)
	exercise(t, s)

	ctx := context.Background()
	require.NoError(t, s.Set(ctx, "s1:cart", "x"))
	require.NoError(t, s.Set(ctx, "s2:cart", "y"))
	require.NoError(t, s.Set(ctx, "other", "z"))
	keys, err := s.Keys("s")
	require.NoError(t, err)
	assert.Equal(t, []string{"s1:cart", "s2:cart"}, keys)
}

func TestRedis(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()
	exercise(t, NewRedis(client, "storefront:test:"+t.Name()+":"))
}
