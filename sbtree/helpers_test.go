package sbtree_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sternbrocot/sbtree"
)

// coprimePairs lists every reduced p/q with 1 ≤ p, q ≤ max.
func coprimePairs(max int64) [][2]int64 {
	var out [][2]int64
	for p := int64(1); p <= max; p++ {
		for q := int64(1); q <= max; q++ {
			if new(big.Int).GCD(nil, nil, big.NewInt(p), big.NewInt(q)).Int64() == 1 {
				out = append(out, [2]int64{p, q})
			}
		}
	}

	return out
}

// fromCFrac evaluates [u0; u1, …, un] with the convergent recurrence.
func fromCFrac(us []uint64) (p, q *big.Int) {
	p0, q0 := big.NewInt(0), big.NewInt(1) // p(-2), q(-2)
	p1, q1 := big.NewInt(1), big.NewInt(0) // p(-1), q(-1)
	for _, u := range us {
		bu := new(big.Int).SetUint64(u)
		p2 := new(big.Int).Add(new(big.Int).Mul(bu, p1), p0)
		q2 := new(big.Int).Add(new(big.Int).Mul(bu, q1), q0)
		p0, q0, p1, q1 = p1, q1, p2, q2
	}

	return p1, q1
}

// combine returns nb1·f1 ⊕ nb2·f2 as a numerator/denominator pair.
func combine(f1 sbtree.Fraction, nb1 uint64, f2 sbtree.Fraction, nb2 uint64) (p, q *big.Int) {
	n1, n2 := new(big.Int).SetUint64(nb1), new(big.Int).SetUint64(nb2)
	p = new(big.Int).Add(new(big.Int).Mul(n1, f1.P()), new(big.Int).Mul(n2, f2.P()))
	q = new(big.Int).Add(new(big.Int).Mul(n1, f1.Q()), new(big.Int).Mul(n2, f2.Q()))

	return p, q
}

// assertSame checks handle identity, which implies the same stored node.
func assertSame(t *testing.T, want, got sbtree.Fraction, msgAndArgs ...any) {
	t.Helper()
	assert.Truef(t, want == got, "want %v, got %v %v", want, got, msgAndArgs)
}

// recoverErr runs fn and returns the error it panicked with.
func recoverErr(t *testing.T, fn func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		e, ok := r.(error)
		require.Truef(t, ok, "panic value %v is not an error", r)
		err = e
	}()
	fn()

	return nil
}
