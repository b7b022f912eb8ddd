package sbtree

import "math"

// Left returns the left Stern–Brocot child of f, building it if needed.
//
// For a node [u0, …, un] the two children are the sibling [u0, …, un+1]
// and the deeper node [u0, …, un - 1, 2]. The sibling is the right child at
// odd depth and the left child at even depth, so an in-order walk visits
// fractions in increasing order. Reciprocals mirror both sides.
// Complexity: O(1), at most one node built.
func (f Fraction) Left() Fraction {
	f.mustInner()
	if f.inv {
		return f.s.sideChild(f.id, true).Inverse()
	}

	return f.s.sideChild(f.id, false)
}

// Right returns the right Stern–Brocot child of f, building it if needed.
// Complexity: O(1), at most one node built.
func (f Fraction) Right() Fraction {
	f.mustInner()
	if f.inv {
		return f.s.sideChild(f.id, false).Inverse()
	}

	return f.s.sideChild(f.id, true)
}

// Father returns [u0, …, un - 1]: origin.child(un-1) when un > 2, the
// origin when un = 2. The father of 1/1 is 0/1.
// Complexity: O(1), at most one node built.
func (f Fraction) Father() Fraction {
	f.mustInner()

	return f.s.handle(f.s.father(f.id), f.inv)
}

// FatherAt returns [u0, …, u(n-1), m] for 1 ≤ m ≤ U(); m = U() is f itself.
// Panics with ErrFatherRange outside that range.
// Complexity: O(1), at most one node built.
func (f Fraction) FatherAt(m uint64) Fraction {
	n := f.mustInner()
	if m < 1 || m > n.u {
		panic(ErrFatherRange)
	}
	switch m {
	case n.u:
		return f
	case 1:
		return f.s.handle(n.origin, f.inv)
	}

	return f.s.handle(f.s.child(n.origin, m), f.inv)
}

// Ancestor returns the previous convergent [u0, …, u(n-1)]. The top row u0/1
// has 1/1 as ancestor and 1/1 has 1/0. Note that the ancestor of an
// ancestor is not Reduced(2) when a coefficient equal to 1 is skipped.
// Complexity: O(1), at most one node built.
func (f Fraction) Ancestor() Fraction {
	f.mustInner()

	return f.s.handle(f.s.ancestor(f.id), f.inv)
}

// IsAncestorDirect reports whether Ancestor() has depth K()-1.
func (f Fraction) IsAncestorDirect() bool {
	n := f.mustInner()

	return f.s.nodes[f.s.ancestor(f.id)].k+1 == n.k
}

// Origin returns the stored back-reference [u0, …, u(n-1), 1].
// Complexity: O(1).
func (f Fraction) Origin() Fraction {
	n := f.mustInner()

	return f.s.handle(n.origin, f.inv)
}

// PreviousPartial returns the convergent [u0, …, u(n-1)] by value; it is
// 1/0 (0/1 for reciprocals) on the top row and for 1/1.
// Complexity: O(1), at most one node built.
func (f Fraction) PreviousPartial() Fraction {
	f.mustInner()

	return f.s.handle(f.s.previousPartial(f.id), f.inv)
}

// Partial returns the convergent [u0, …, u(kp-1)] made of the first kp
// coefficients, 0 ≤ kp ≤ K(). Partial(0) is 1/0 (0/1 for reciprocals).
// Panics with ErrDepthRange when kp > K().
//
// Unlike the other navigation methods, Partial is not O(1): nodes keep only
// their origin and previous convergent, so it walks K() - kp origins.
// Complexity: O(K() - kp).
func (f Fraction) Partial(kp uint64) Fraction {
	n := f.mustInner()
	switch {
	case kp > n.k:
		panic(ErrDepthRange)
	case kp == n.k:
		return f
	case kp == 0:
		return f.s.handle(oneOverZero, f.inv)
	}

	// Each origin is one level up; the origin at depth kp ends in u(kp-1)+1.
	id := f.id
	for j := n.k - kp; j > 0; j-- {
		id = f.s.nodes[id].origin
	}

	return f.s.handle(f.s.father(id), f.inv)
}

// Reduced returns Partial(K() - i) for 0 ≤ i ≤ K().
// Panics with ErrDepthRange when i > K().
// Complexity: O(i), an origin walk like Partial.
func (f Fraction) Reduced(i uint64) Fraction {
	n := f.mustInner()
	if i > n.k {
		panic(ErrDepthRange)
	}

	return f.Partial(n.k - i)
}

// Inverse returns 1/f. 0/1 and 1/0 swap; 1/1 is its own inverse.
// Complexity: O(1).
func (f Fraction) Inverse() Fraction {
	f.mustNode()

	return f.s.handle(f.id, !f.inv)
}

// sideChild returns the right (or left) child of a node read as p/q ≥ 1.
func (s *Store) sideChild(id nodeID, right bool) Fraction {
	if id == oneOverOne {
		// [1] → [2] on the right, [0; 2] on the left.
		return s.handle(s.child(id, 2), !right)
	}
	siblingRight := s.nodes[id].k%2 == 1
	if right == siblingRight {
		return s.handle(s.sibling(id), false)
	}

	return s.handle(s.child(id, 2), false)
}

// sibling returns [u0, …, un+1].
func (s *Store) sibling(id nodeID) nodeID {
	if id == oneOverOne {
		return s.child(id, 2)
	}
	n := s.nodes[id]
	if n.u == math.MaxUint64 {
		panic(ErrQuotientOverflow)
	}

	return s.child(n.origin, n.u+1)
}

// father expects a node other than the roots.
func (s *Store) father(id nodeID) nodeID {
	if id == oneOverOne {
		return zeroOverOne
	}
	n := s.nodes[id]
	if n.u == 2 {
		return n.origin
	}

	return s.child(n.origin, n.u-1)
}

// previousPartial expects a node other than the roots.
func (s *Store) previousPartial(id nodeID) nodeID {
	if id == oneOverOne || s.nodes[id].origin == oneOverOne {
		return oneOverZero
	}

	// origin = [u0, …, u(n-1)+1], so its father is [u0, …, u(n-1)].
	return s.father(s.nodes[id].origin)
}

// ancestor expects a node other than the roots.
func (s *Store) ancestor(id nodeID) nodeID {
	switch {
	case id == oneOverOne:
		return oneOverZero
	case s.nodes[id].origin == oneOverOne:
		return oneOverOne
	}

	return s.previousPartial(id)
}
