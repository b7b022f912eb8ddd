package sbtree

import (
	"fmt"
	"math/big"
)

// Split returns the two fractions f1 < f2 whose mediant is f:
// the father and the previous partial of f, ordered by value.
// 1/1 splits into 0/1 and 1/0. Panics with ErrRootFraction on 0/1 and 1/0.
// Complexity: O(1), at most two nodes built.
func (f Fraction) Split() (f1, f2 Fraction) {
	f.mustInner()
	a, b := f.s.split(f.id)
	if f.inv {
		return b.Inverse(), a.Inverse()
	}

	return a, b
}

// SplitBerstel returns the run-length split f = nb1·f1 ⊕ nb2·f2, f1 < f2,
// where nb·g is g added nb times. For [u0, …, un] the patterns are the
// convergents [u0, …, u(n-2)] (once) and [u0, …, u(n-1)] (un times).
//
// Odd depth gives nb1 = 1, even depth gives nb2 = 1; reciprocals mirror.
// 1/1 is the only fraction where both counts are 1.
// Panics with ErrRootFraction on 0/1 and 1/0.
// Complexity: O(1), at most two nodes built.
func (f Fraction) SplitBerstel() (f1 Fraction, nb1 uint64, f2 Fraction, nb2 uint64) {
	f.mustInner()
	f1, nb1, f2, nb2 = f.s.splitBerstel(f.id)
	if f.inv {
		return f2.Inverse(), nb2, f1.Inverse(), nb1
	}

	return f1, nb1, f2, nb2
}

// CFrac returns the coefficients [u0, …, un] of f, with a leading 0 when
// f < 1. 0/1 gives [0] and 1/0 gives an empty slice.
// Complexity: O(K()).
func (f Fraction) CFrac() []uint64 {
	f.mustNode()
	us := f.s.quotients(f.id)
	if f.inv {
		us = append([]uint64{0}, us...)
	}

	return us
}

// Mediant returns (p+p')/(q+q'). f and g must be Stern–Brocot neighbours,
// |p·q' - q·p'| = 1, and share a store; otherwise Mediant panics with
// ErrIncompatible or ErrStoreMismatch.
// Complexity: O(n) node steps like Store.Fraction.
func (f Fraction) Mediant(g Fraction) Fraction {
	f.mustNode()
	g.mustNode()
	if f.s != g.s {
		panic(ErrStoreMismatch)
	}

	det := new(big.Int).Mul(f.num(), g.den())
	det.Sub(det, new(big.Int).Mul(f.den(), g.num()))
	if det.CmpAbs(bigOne) != 0 {
		panic(fmt.Errorf("%w: %s and %s", ErrIncompatible, f, g))
	}

	m, err := f.s.Fraction(
		new(big.Int).Add(f.num(), g.num()),
		new(big.Int).Add(f.den(), g.den()),
	)
	if err != nil {
		panic(err)
	}

	return m
}

// split works on a node read as p/q ≥ 1.
func (s *Store) split(id nodeID) (Fraction, Fraction) {
	if id == oneOverOne {
		return s.ZeroOverOne(), s.OneOverZero()
	}
	fa := s.handle(s.father(id), false)
	pp := s.handle(s.previousPartial(id), false)
	// Odd depth: raising un raises the value, so the father lies below.
	if s.nodes[id].k%2 == 1 {
		return fa, pp
	}

	return pp, fa
}

func (s *Store) splitBerstel(id nodeID) (Fraction, uint64, Fraction, uint64) {
	n := s.nodes[id]
	switch {
	case id == oneOverOne:
		return s.ZeroOverOne(), 1, s.OneOverZero(), 1
	case n.origin == oneOverOne:
		// u0/1 = 1·(0/1) ⊕ u0·(1/0)
		return s.ZeroOverOne(), 1, s.OneOverZero(), n.u
	}

	x := s.handle(s.previousPartial(id), false)       // [u0, …, u(n-1)]
	y := s.handle(s.previousPartial(n.origin), false) // [u0, …, u(n-2)]
	if n.k%2 == 1 {
		return y, 1, x, n.u
	}

	return x, n.u, y, 1
}

// quotients walks the origin chain up to 1/1.
func (s *Store) quotients(id nodeID) []uint64 {
	switch id {
	case zeroOverOne:
		return []uint64{0}
	case oneOverZero:
		return []uint64{}
	}

	n := s.nodes[id]
	us := make([]uint64, 0, n.k)
	us = append(us, n.u)
	if id == oneOverOne {
		return us
	}
	// Every origin above the node ends in u(i)+1.
	for o := n.origin; o != oneOverOne; o = s.nodes[o].origin {
		us = append(us, s.nodes[o].u-1)
	}
	for i, j := 0, len(us)-1; i < j; i, j = i+1, j-1 {
		us[i], us[j] = us[j], us[i]
	}

	return us
}
