package transform

import "github.com/zgsxwsdxg/simpletx"

// shared owns one backend and counts the handles aliasing it. The count is
// not atomic and the clone-before-mutate check is not either: handles
// aliasing one backend must not be mutated from multiple goroutines.
type shared struct {
	backend simpletx.Backend
	refs    int
}

func newShared(b simpletx.Backend) *shared {
	return &shared{backend: b, refs: 1}
}

// acquire registers one more aliasing handle.
func (s *shared) acquire() *shared {
	s.refs++
	return s
}

// release unregisters an aliasing handle.
func (s *shared) release() {
	s.refs--
}
