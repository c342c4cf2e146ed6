package utils

import "sync"

// Stamper hands out stable positive integer identifiers for objects.
// The first Stamp call for an object assigns the next id; every later call
// for the same object returns that same id. Ids are monotonic within one
// Stamper for its lifetime. Each editor owns its own Stamper rather than
// sharing process-wide state, so two editors never contend over a counter.
//
// Objects are keyed by their dynamic value, so callers must pass something
// comparable, in practice a pointer, which is what every scene object is.
type Stamper struct {
	mu   sync.Mutex
	next int64
	ids  map[any]int64
}

// NewStamper creates an allocator whose first id is 1.
func NewStamper() *Stamper {
	return &Stamper{
		next: 1,
		ids:  make(map[any]int64),
	}
}

// Stamp returns obj's identifier, assigning a fresh one on first sight.
func (s *Stamper) Stamp(obj any) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.ids[obj]; ok {
		return id
	}
	id := s.next
	s.next++
	s.ids[obj] = id
	return id
}

// HasStamp reports obj's identifier without assigning one.
func (s *Stamper) HasStamp(obj any) (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.ids[obj]
	return id, ok
}
