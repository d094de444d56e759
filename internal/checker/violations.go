package checker

import "strings"

// ViolationSet keeps violations in insertion order and drops exact duplicates.
type ViolationSet struct {
	items []string
	seen  map[string]struct{}
}

// Add records msg unless it is already present. It reports whether msg was new.
func (s *ViolationSet) Add(msg string) bool {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, ok := s.seen[msg]; ok {
		return false
	}
	s.seen[msg] = struct{}{}
	s.items = append(s.items, msg)
	return true
}

func (s *ViolationSet) Merge(msgs ...string) {
	for _, msg := range msgs {
		s.Add(msg)
	}
}

// List returns a copy of the violations; never nil.
func (s *ViolationSet) List() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

func (s *ViolationSet) Len() int {
	return len(s.items)
}

func (s *ViolationSet) Joined(sep string) string {
	return strings.Join(s.items, sep)
}
