// Package sbtree builds the Stern–Brocot tree of irreducible fractions
// lazily and lets callers navigate it in O(1) per step.
//
// What:
//
//   - Store is an append-only arena of nodes. Each node is a reduced fraction
//     p/q ≥ 1 indexed by its continued fraction [u0; u1, …, un].
//   - Fraction is a small value handle (store, node index, reciprocal flag).
//     Only fractions ≥ 1 are stored; q/p is the same node seen upside down.
//   - Nodes are created on demand, once per distinct fraction, and never
//     freed while the Store is alive.
//
// Why:
//
//   - Digital straight lines and Christoffel words are coded by continued
//     fractions; recognizers need fathers, ancestors and splits of a slope
//     without recomputing Euclid's algorithm every time.
//   - The Berstel split gives a run-length form whose size is the depth of the
//     fraction, not the sum of its coefficients.
//
// Layout of a node [u0, …, un] (un ≥ 2, or the fraction 1/1 = [1]):
//
//	origin   = [u0, …, u(n-1), 1]       stored back-reference
//	child(v) = [u0, …, un - 1, v]       v ≥ 2, built on demand
//	father   = [u0, …, un - 1]          origin.child(un-1), or origin if un = 2
//
// The top row u0/1 hangs below 1/1, whose children [0; v] fold onto v/1.
//
// Complexity:
//
//   - Store.Fraction(p, q): O(n) node steps for n coefficients, plus Euclid.
//   - Father, Ancestor, Origin, PreviousPartial, Inverse, Left, Right:
//     O(1) plus at most one lazy node construction.
//   - Split, SplitBerstel: O(1), at most two nodes built.
//   - CFrac, Partial, Reduced: O(depth).
//   - BFS, InOrder: O(V) for V visited fractions, each child built lazily.
//
// Errors:
//
//   - ErrNegative, ErrZeroOverZero, ErrNotCoprime, ErrQuotientOverflow,
//     ErrEmptyQuotients, ErrBadQuotient: returned by the constructors.
//   - ErrNullFraction, ErrRootFraction, ErrFatherRange, ErrDepthRange,
//     ErrIncompatible, ErrStoreMismatch: panic values for contract
//     violations on a Fraction.
//   - ErrOptionViolation, ErrStopWalk: walk options and early stop.
//
// Concurrency:
//
//	A Store is not safe for concurrent use. Use one Store per goroutine or
//	guard it externally. Instance only synchronizes its own creation.
package sbtree
