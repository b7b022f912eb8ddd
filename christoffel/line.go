package christoffel

import (
	"fmt"
	"math"
	"math/big"

	"github.com/katalvlaran/sternbrocot/sbtree"
)

// Line is the standard (4-connected) arithmetic line of slope A/B and lower
// bound Mu: the points with Mu ≤ A·x − B·y < Mu + A + B. Walking it from one
// of its points, a step x+1 is coded 0 and a step y+1 is coded 1.
type Line struct {
	A, B, Mu int64
}

// NewLine validates A, B ≥ 0, not both zero, with A + B representable
// as an int64.
func NewLine(a, b, mu int64) (Line, error) {
	l := Line{A: a, B: b, Mu: mu}
	if err := l.check(); err != nil {
		return Line{}, err
	}

	return l, nil
}

func (l Line) check() error {
	switch {
	case l.A < 0 || l.B < 0:
		return fmt.Errorf("%w: %d/%d", ErrNegativeSlope, l.A, l.B)
	case l.A == 0 && l.B == 0:
		return ErrZeroSlope
	case l.A > math.MaxInt64-l.B:
		return fmt.Errorf("%w: %d + %d", ErrLineOverflow, l.A, l.B)
	}

	return nil
}

// Contains reports whether (x, y) belongs to the line.
// The test is exact for every int64 input.
func (l Line) Contains(x, y int64) bool {
	r := l.remainder(x, y)
	width := new(big.Int).Add(big.NewInt(l.A), big.NewInt(l.B))

	return r.Sign() >= 0 && r.Cmp(width) < 0
}

// remainder returns A·x − B·y − Mu.
func (l Line) remainder(x, y int64) *big.Int {
	r := new(big.Int).Mul(big.NewInt(l.A), big.NewInt(x))
	r.Sub(r, new(big.Int).Mul(big.NewInt(l.B), big.NewInt(y)))

	return r.Sub(r, big.NewInt(l.Mu))
}

// Code returns the n steps of the line starting at (x, y).
// Exactly one of the two steps stays on the line at every point.
func (l Line) Code(x, y int64, n int) (string, error) {
	if err := l.check(); err != nil {
		return "", err
	}
	if n < 0 {
		return "", fmt.Errorf("christoffel: negative step count %d", n)
	}
	if !l.Contains(x, y) {
		return "", fmt.Errorf("%w: (%d, %d)", ErrNotOnLine, x, y)
	}

	// r stays in [0, A+B), which fits in an int64 once check passed.
	code := make([]byte, n)
	r := l.remainder(x, y).Int64()
	for i := range code {
		if r < l.B {
			code[i] = '0'
			r += l.A
		} else {
			code[i] = '1'
			r -= l.B
		}
	}

	return string(code), nil
}

// Slope returns A/B reduced, as a fraction of s.
func (l Line) Slope(s *sbtree.Store) (sbtree.Fraction, error) {
	a, b := big.NewInt(l.A), big.NewInt(l.B)
	g := new(big.Int).GCD(nil, nil, a, b)

	return s.Fraction(a.Quo(a, g), b.Quo(b, g))
}

// Pattern returns the period of the line: the Christoffel word of its
// reduced slope. Code from a point with A·x − B·y = Mu spells exactly one
// period every p + q steps.
func (l Line) Pattern(s *sbtree.Store) (*Pattern, error) {
	f, err := l.Slope(s)
	if err != nil {
		return nil, err
	}

	return Encode(f), nil
}
