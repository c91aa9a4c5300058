package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	var s Set
	assert.Zero(t, s.Len())
	assert.Empty(t, s.IDs())

	s.Add(3)
	s.Add(1)
	s.Add(3)
	assert.Equal(t, []int{1, 3}, s.IDs())
	assert.True(t, s.Contains(1))

	s.Remove(1)
	s.Remove(42)
	assert.Equal(t, []int{3}, s.IDs())

	assert.True(t, s.Toggle(5))
	assert.False(t, s.Toggle(3))
	assert.Equal(t, []int{5}, s.IDs())

	s.Clear()
	assert.Zero(t, s.Len())
}

func TestReplace(t *testing.T) {
	s := New(1, 2, 3)
	s.Replace([]int{4, 2, 4})
	assert.Equal(t, []int{2, 4}, s.IDs())
	assert.False(t, s.Contains(1))
}

func TestClone(t *testing.T) {
	s := New(1, 2)
	c := s.Clone()
	c.Add(3)
	c.Remove(1)

	assert.Equal(t, []int{1, 2}, s.IDs())
	assert.Equal(t, []int{2, 3}, c.IDs())

	var empty Set
	assert.Zero(t, empty.Clone().Len())
}
