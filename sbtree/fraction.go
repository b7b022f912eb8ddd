package sbtree

import "math/big"

// Fraction is a handle on a stored node. When the reciprocal flag is unset
// it denotes p/q of the node, otherwise q/p.
//
// Fractions are small values; compare them with == (handles are normalized)
// or with Cmp. The zero Fraction is the null fraction 0/0: every method other
// than IsNull and String panics with ErrNullFraction on it.
//
// A Fraction is valid as long as its Store is reachable.
type Fraction struct {
	s   *Store
	id  nodeID
	inv bool
}

// IsNull reports whether f is the null fraction 0/0.
func (f Fraction) IsNull() bool { return f.s == nil }

// Store returns the store owning f.
func (f Fraction) Store() *Store {
	f.mustNode()

	return f.s
}

// IsReciprocal reports whether f is read upside down from its node (f < 1).
func (f Fraction) IsReciprocal() bool {
	f.mustNode()

	return f.inv
}

// P returns a copy of the numerator.
func (f Fraction) P() *big.Int { return new(big.Int).Set(f.num()) }

// Q returns a copy of the denominator.
func (f Fraction) Q() *big.Int { return new(big.Int).Set(f.den()) }

// U returns the last coefficient of the node's continued fraction.
// Roots return 0 and 1/1 returns 1.
func (f Fraction) U() uint64 { return f.mustNode().u }

// K returns the depth of the node: its number of continued fraction
// coefficients, with roots at 0 and both 1/1 and u0/1 at 1.
// The reciprocal flag does not change it.
func (f Fraction) K() uint64 { return f.mustNode().k }

// Even reports whether K() is even.
func (f Fraction) Even() bool { return f.K()%2 == 0 }

// Odd reports whether K() is odd.
func (f Fraction) Odd() bool { return f.K()%2 == 1 }

// Equals reports whether f = p1/q1. Cross multiplication, no reduction needed.
func (f Fraction) Equals(p1, q1 *big.Int) bool { return cmpCross(f.num(), f.den(), p1, q1) == 0 }

// LessThan reports whether f < p1/q1.
func (f Fraction) LessThan(p1, q1 *big.Int) bool { return cmpCross(f.num(), f.den(), p1, q1) < 0 }

// MoreThan reports whether f > p1/q1.
func (f Fraction) MoreThan(p1, q1 *big.Int) bool { return cmpCross(f.num(), f.den(), p1, q1) > 0 }

// Cmp compares f and g by value and returns -1, 0 or +1.
// Fractions of different stores compare by value as well.
func (f Fraction) Cmp(g Fraction) int { return cmpCross(f.num(), f.den(), g.num(), g.den()) }

// Equal reports whether f and g denote the same rational.
func (f Fraction) Equal(g Fraction) bool { return f.Cmp(g) == 0 }

// Less reports whether f < g.
func (f Fraction) Less(g Fraction) bool { return f.Cmp(g) < 0 }

// Greater reports whether f > g.
func (f Fraction) Greater(g Fraction) bool { return f.Cmp(g) > 0 }

// String returns "p/q", or "0/0" for the null fraction.
func (f Fraction) String() string {
	if f.IsNull() {
		return "0/0"
	}

	return f.num().String() + "/" + f.den().String()
}

// cmpCross compares p1/q1 with p2/q2 for non-negative operands.
func cmpCross(p1, q1, p2, q2 *big.Int) int {
	l := new(big.Int).Mul(p1, q2)
	r := new(big.Int).Mul(q1, p2)

	return l.Cmp(r)
}

// mustNode returns a copy of f's node, panicking on the null fraction.
func (f Fraction) mustNode() node {
	if f.s == nil {
		panic(ErrNullFraction)
	}

	return f.s.nodes[f.id]
}

// mustInner is mustNode for operations undefined on 0/1 and 1/0.
func (f Fraction) mustInner() node {
	n := f.mustNode()
	if f.id == zeroOverOne || f.id == oneOverZero {
		panic(ErrRootFraction)
	}

	return n
}

// num and den return the stored integers without copying.
func (f Fraction) num() *big.Int {
	n := f.mustNode()
	if f.inv {
		return n.q
	}

	return n.p
}

func (f Fraction) den() *big.Int {
	n := f.mustNode()
	if f.inv {
		return n.p
	}

	return n.q
}
