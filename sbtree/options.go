package sbtree

import "github.com/rs/zerolog"

// Option configures a Store before its roots are created.
type Option func(*Store)

// WithChildMap selects the container allocated for each node's children.
// Panics on nil to surface programmer error early.
func WithChildMap(factory ChildMapFactory) Option {
	if factory == nil {
		panic("sbtree: WithChildMap(nil)")
	}
	return func(s *Store) { s.newChildren = factory }
}

// WithLogger attaches a logger. The store emits one trace event per created
// node and nothing else; the default is zerolog.Nop().
func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) { s.log = log }
}
