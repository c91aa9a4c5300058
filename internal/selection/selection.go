// Package selection holds the user's chosen coalition as a set of party IDs.
package selection

import "sort"

// Set is an unordered set of party IDs. The zero value is empty and ready
// to use. A Set is not safe for concurrent use.
type Set struct {
	ids map[int]struct{}
}

// New returns a set holding ids.
func New(ids ...int) *Set {
	s := &Set{}
	s.Replace(ids)
	return s
}

// Add inserts id. Adding an existing id is a no-op.
func (s *Set) Add(id int) {
	if s.ids == nil {
		s.ids = make(map[int]struct{})
	}
	s.ids[id] = struct{}{}
}

// Remove deletes id if present.
func (s *Set) Remove(id int) {
	delete(s.ids, id)
}

// Toggle flips membership of id and reports whether it is now selected.
func (s *Set) Toggle(id int) bool {
	if s.Contains(id) {
		s.Remove(id)
		return false
	}
	s.Add(id)
	return true
}

// Clear empties the set.
func (s *Set) Clear() {
	s.ids = nil
}

// Replace swaps the contents for ids, dropping duplicates.
func (s *Set) Replace(ids []int) {
	s.Clear()
	for _, id := range ids {
		s.Add(id)
	}
}

// Clone returns an independent copy of s.
func (s *Set) Clone() *Set {
	c := &Set{}
	for id := range s.ids {
		c.Add(id)
	}
	return c
}

func (s *Set) Contains(id int) bool {
	_, ok := s.ids[id]
	return ok
}

func (s *Set) Len() int {
	return len(s.ids)
}

// IDs returns the members in ascending order.
func (s *Set) IDs() []int {
	out := make([]int, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}
