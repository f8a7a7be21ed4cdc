package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMove(t *testing.T) {
	subs := []string{"a", "b", "c"}
	assert.Equal(t, []string{"b", "a", "c"}, move(subs, "b", -1))

	subs = []string{"a", "b", "c"}
	assert.Equal(t, []string{"a", "c", "b"}, move(subs, "b", 1))

	// edges are no-ops
	subs = []string{"a", "b", "c"}
	assert.Equal(t, []string{"a", "b", "c"}, move(subs, "a", -1))
	subs = []string{"a", "b", "c"}
	assert.Equal(t, []string{"a", "b", "c"}, move(subs, "c", 1))

	subs = []string{"a", "b", "c"}
	assert.Equal(t, []string{"a", "b", "c"}, move(subs, "missing", 1))
}

func TestRemove(t *testing.T) {
	assert.Equal(t, []string{"a", "c"}, remove([]string{"a", "b", "c"}, "b"))
	assert.Nil(t, remove([]string{"a"}, "a"))
	assert.Equal(t, []string{"a"}, remove([]string{"a"}, "z"))
}

func TestContains(t *testing.T) {
	assert.True(t, contains([]string{"a", "b"}, "b"))
	assert.False(t, contains([]string{"a", "b"}, "c"))
	assert.False(t, contains(nil, "a"))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, clampInt(-5, 0, 100))
	assert.Equal(t, 100, clampInt(150, 0, 100))
	assert.Equal(t, 40, clampInt(40, 0, 100))

	assert.Equal(t, 0.25, clampFloat(0.1, 0.25, 2.0))
	assert.Equal(t, 2.0, clampFloat(3.5, 0.25, 2.0))
	assert.Equal(t, 1.5, clampFloat(1.5, 0.25, 2.0))
}
