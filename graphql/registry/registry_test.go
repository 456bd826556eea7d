package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Register_Resolve(t *testing.T) {
	defer Unregister("testEcho")

	Register("testEcho", func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return map[string]interface{}{"echo": args["say"]}, nil
	})

	got, err := Resolve(context.Background(), "testEcho", map[string]interface{}{"say": "ok"})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"echo": "ok"}, got)
}

func TestRegistry_Resolve_Unknown(t *testing.T) {
	defer Unregister("nonexistent")
	_, err := Resolve(context.Background(), "nonexistent", nil)
	assert.EqualError(t, err, "unknown extension: nonexistent")
}

func TestRegistry_LockedAfterResolve(t *testing.T) {
	defer Unregister("late")
	_, _ = Resolve(context.Background(), "nonexistent", nil)
	assert.Panics(t, func() {
		Register("late", func(context.Context, map[string]interface{}) (interface{}, error) { return nil, nil })
	})
}

func TestRegistry_Duplicate(t *testing.T) {
	defer Unregister("dup")
	noop := func(context.Context, map[string]interface{}) (interface{}, error) { return nil, nil }
	Register("dup", noop)
	assert.Panics(t, func() { Register("dup", noop) })
}

func TestRegistry_Names(t *testing.T) {
	defer Unregister("b-names")
	defer Unregister("a-names")
	noop := func(context.Context, map[string]interface{}) (interface{}, error) { return nil, nil }
	Register("b-names", noop)
	Register("a-names", noop)

	names := Names()
	assert.Subset(t, names, []string{"a-names", "b-names"})
	assert.IsNonDecreasing(t, names)
}
