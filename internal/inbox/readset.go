package inbox

import (
	"sort"
)

// ReadSet is a grow-only set of reader ids. Elements are never removed, so
// applying the same adds in any order or any number of times gives the same set.
type ReadSet struct {
	members map[string]struct{}
}

// FromSlice builds a set from stored reader ids, ignoring duplicates and blanks.
func FromSlice(ids []string) ReadSet {
	s := ReadSet{members: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add inserts id. It reports whether the set grew.
func (s *ReadSet) Add(id string) bool {
	if id == "" {
		return false
	}
	if s.members == nil {
		s.members = make(map[string]struct{})
	}
	if _, ok := s.members[id]; ok {
		return false
	}
	s.members[id] = struct{}{}
	return true
}

// Contains reports whether id is in the set.
func (s ReadSet) Contains(id string) bool {
	_, ok := s.members[id]
	return ok
}

// Merge returns the union of s and other without modifying either.
func (s ReadSet) Merge(other ReadSet) ReadSet {
	out := ReadSet{members: make(map[string]struct{}, len(s.members)+len(other.members))}
	for id := range s.members {
		out.members[id] = struct{}{}
	}
	for id := range other.members {
		out.members[id] = struct{}{}
	}
	return out
}

// Len returns the number of readers.
func (s ReadSet) Len() int {
	return len(s.members)
}

// Slice returns the readers sorted, for storage.
func (s ReadSet) Slice() []string {
	out := make([]string, 0, len(s.members))
	for id := range s.members {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
