package christoffel

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/katalvlaran/sternbrocot/sbtree"
)

// Pattern is a Christoffel word in run-length form. A letter pattern has no
// parts; any other pattern expands to lo repeated nlo times followed by hi
// repeated nhi times. Patterns are immutable and may share parts.
type Pattern struct {
	slope    sbtree.Fraction
	letter   byte
	lo, hi   *Pattern
	nlo, nhi uint64
}

// Encode returns the pattern of f. Panics with sbtree.ErrNullFraction on
// the null fraction.
func Encode(f sbtree.Fraction) *Pattern {
	return encode(f, make(map[sbtree.Fraction]*Pattern))
}

func encode(f sbtree.Fraction, seen map[sbtree.Fraction]*Pattern) *Pattern {
	if p, ok := seen[f]; ok {
		return p
	}

	var p *Pattern
	s := f.Store()
	switch f {
	case s.ZeroOverOne():
		p = &Pattern{slope: f, letter: '0'}
	case s.OneOverZero():
		p = &Pattern{slope: f, letter: '1'}
	default:
		f1, nb1, f2, nb2 := f.SplitBerstel()
		p = &Pattern{
			slope: f,
			lo:    encode(f1, seen),
			hi:    encode(f2, seen),
			nlo:   nb1,
			nhi:   nb2,
		}
	}
	seen[f] = p

	return p
}

// Word returns the lower Christoffel word of f.
// The result has p + q letters; use Encode for large fractions.
func Word(f sbtree.Fraction) string { return Encode(f).String() }

// Slope returns the fraction whose word p expands to.
func (p *Pattern) Slope() sbtree.Fraction { return p.slope }

// IsLetter reports whether p is the single letter 0 or 1.
func (p *Pattern) IsLetter() bool { return p.lo == nil }

// Len returns the number of letters, p + q.
func (p *Pattern) Len() *big.Int {
	return new(big.Int).Add(p.slope.P(), p.slope.Q())
}

// String expands p into its word.
func (p *Pattern) String() string {
	var sb strings.Builder
	if n := p.Len(); n.IsInt64() {
		sb.Grow(int(n.Int64()))
	}
	p.write(&sb)

	return sb.String()
}

func (p *Pattern) write(sb *strings.Builder) {
	if p.IsLetter() {
		sb.WriteByte(p.letter)
		return
	}
	for i := uint64(0); i < p.nlo; i++ {
		p.lo.write(sb)
	}
	for i := uint64(0); i < p.nhi; i++ {
		p.hi.write(sb)
	}
}

// Lo returns the first part of p and its repeat count; nil for letters.
func (p *Pattern) Lo() (*Pattern, uint64) { return p.lo, p.nlo }

// Hi returns the second part of p and its repeat count; nil for letters.
func (p *Pattern) Hi() (*Pattern, uint64) { return p.hi, p.nhi }

// Def renders the defining equation of p, e.g. "W(5/3) = W(1/1) W(2/1)^2".
func (p *Pattern) Def() string {
	head := "W(" + p.slope.String() + ") = "
	if p.IsLetter() {
		return head + string(p.letter)
	}

	return head + run(p.lo, p.nlo) + " " + run(p.hi, p.nhi)
}

func run(part *Pattern, n uint64) string {
	w := "W(" + part.slope.String() + ")"
	if n == 1 {
		return w
	}

	return w + "^" + strconv.FormatUint(n, 10)
}

// Defs lists every distinct pattern reachable from p, parts before the
// patterns built from them, p last. The list has O(K()) entries.
func (p *Pattern) Defs() []*Pattern {
	var out []*Pattern
	seen := make(map[*Pattern]bool)
	var visit func(q *Pattern)
	visit = func(q *Pattern) {
		if seen[q] {
			return
		}
		seen[q] = true
		if !q.IsLetter() {
			visit(q.lo)
			visit(q.hi)
		}
		out = append(out, q)
	}
	visit(p)

	return out
}

// Recognize returns the fraction of s whose lower Christoffel word is w.
func Recognize(s *sbtree.Store, w string) (sbtree.Fraction, error) {
	if w == "" {
		return sbtree.Fraction{}, ErrEmptyWord
	}

	var ones, zeros int64
	for i := 0; i < len(w); i++ {
		switch w[i] {
		case '0':
			zeros++
		case '1':
			ones++
		default:
			return sbtree.Fraction{}, fmt.Errorf("%w: %q at %d", ErrBadLetter, w[i], i)
		}
	}

	f, err := s.FractionInt(ones, zeros)
	if errors.Is(err, sbtree.ErrNotCoprime) {
		return sbtree.Fraction{}, fmt.Errorf("%w: %d ones and %d zeros", ErrNotChristoffel, ones, zeros)
	}
	if err != nil {
		return sbtree.Fraction{}, err
	}
	if Word(f) != w {
		return sbtree.Fraction{}, fmt.Errorf("%w: %s", ErrNotChristoffel, w)
	}

	return f, nil
}
