package collections

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetAddIfAbsent(t *testing.T) {
	set := NewSet[int]()

	assert.True(t, set.AddIfAbsent(3))
	assert.False(t, set.AddIfAbsent(3))
	assert.True(t, set.Contains(3))
	assert.Len(t, set, 1)
}

func TestSetValues(t *testing.T) {
	values := NewSet(3, 1, 2, 1).Values()
	sort.Ints(values)

	assert.Equal(t, []int{1, 2, 3}, values)
}

func TestSetRemove(t *testing.T) {
	set := NewSet("a", "b")
	set.Remove("a")
	set.Remove("missing")

	assert.False(t, set.Contains("a"))
	assert.True(t, set.Contains("b"))
}
