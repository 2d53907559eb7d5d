package repository

import "github.com/eyamansouri/matchboard/internal/domain/model"

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithMatch seeds the store with an initial match snapshot.
func WithMatch(m model.Match) Option {
	return func(s *MemStore) {
		s.match = m
		s.hasMatch = true
	}
}
