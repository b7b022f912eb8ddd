package christoffel_test

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sternbrocot/christoffel"
	"github.com/katalvlaran/sternbrocot/sbtree"
)

// splitWord is the textbook definition W(f1 ⊕ f2) = W(f1)·W(f2).
func splitWord(f sbtree.Fraction) string {
	s := f.Store()
	switch f {
	case s.ZeroOverOne():
		return "0"
	case s.OneOverZero():
		return "1"
	}
	f1, f2 := f.Split()

	return splitWord(f1) + splitWord(f2)
}

func coprime(p, q int64) bool {
	return new(big.Int).GCD(nil, nil, big.NewInt(p), big.NewInt(q)).Int64() == 1
}

// TestWord_Examples pins a few well-known words.
func TestWord_Examples(t *testing.T) {
	s := sbtree.New()
	cases := []struct {
		p, q int64
		want string
	}{
		{0, 1, "0"},
		{1, 0, "1"},
		{1, 1, "01"},
		{2, 1, "011"},
		{1, 2, "001"},
		{3, 2, "01011"},
		{2, 3, "00101"},
		{5, 3, "01011011"},
		{1, 4, "00001"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, christoffel.Word(s.MustFraction(tc.p, tc.q)), "%d/%d", tc.p, tc.q)
	}
}

// TestWord_MatchesSplit compares the run-length expansion with the
// mediant definition and checks the letter counts.
func TestWord_MatchesSplit(t *testing.T) {
	s := sbtree.New()
	for p := int64(1); p <= 25; p++ {
		for q := int64(1); q <= 25; q++ {
			if !coprime(p, q) {
				continue
			}
			f := s.MustFraction(p, q)
			w := christoffel.Word(f)
			require.Equal(t, splitWord(f), w, "%v", f)
			require.EqualValues(t, q, strings.Count(w, "0"), "%v", f)
			require.EqualValues(t, p, strings.Count(w, "1"), "%v", f)
			require.EqualValues(t, p+q, christoffel.Encode(f).Len().Int64())
		}
	}
}

// TestEncode_Defs checks the run-length definitions and sharing.
func TestEncode_Defs(t *testing.T) {
	s := sbtree.New()
	pat := christoffel.Encode(s.MustFraction(5, 3))
	assert.Equal(t, "5/3", pat.Slope().String())
	assert.False(t, pat.IsLetter())

	var defs []string
	for _, d := range pat.Defs() {
		defs = append(defs, d.Def())
	}
	assert.Equal(t, []string{
		"W(0/1) = 0",
		"W(1/0) = 1",
		"W(1/1) = W(0/1) W(1/0)",
		"W(2/1) = W(0/1) W(1/0)^2",
		"W(5/3) = W(1/1) W(2/1)^2",
	}, defs)

	lo, nlo := pat.Lo()
	hi, nhi := pat.Hi()
	assert.Equal(t, "01", lo.String())
	assert.EqualValues(t, 1, nlo)
	assert.Equal(t, "011", hi.String())
	assert.EqualValues(t, 2, nhi)

	one := christoffel.Encode(s.OneOverZero())
	assert.True(t, one.IsLetter())
	part, n := one.Lo()
	assert.Nil(t, part)
	assert.Zero(t, n)
	assert.Equal(t, "W(1/4) = W(0/1)^4 W(1/0)", christoffel.Encode(s.MustFraction(1, 4)).Def())
}

// TestEncode_Deep keeps a huge word in run-length form.
func TestEncode_Deep(t *testing.T) {
	s := sbtree.New()
	p, _ := new(big.Int).SetString("354224848179261915075", 10)
	q, _ := new(big.Int).SetString("218922995834555169026", 10)
	f, err := s.Fraction(p, q)
	require.NoError(t, err)

	pat := christoffel.Encode(f)
	assert.Equal(t, "573147844013817084101", pat.Len().String())
	assert.LessOrEqual(t, len(pat.Defs()), int(f.K())+3, "size follows the depth, not the length")
}

// TestRecognize covers every error and the round trip.
func TestRecognize(t *testing.T) {
	s := sbtree.New()
	for p := int64(0); p <= 15; p++ {
		for q := int64(0); q <= 15; q++ {
			if (p == 0 && q == 0) || !coprime(p, q) {
				continue
			}
			f := s.MustFraction(p, q)
			g, err := christoffel.Recognize(s, christoffel.Word(f))
			require.NoError(t, err)
			require.True(t, f == g, "%v recognized as %v", f, g)
		}
	}

	_, err := christoffel.Recognize(s, "")
	assert.ErrorIs(t, err, christoffel.ErrEmptyWord)
	_, err = christoffel.Recognize(s, "01a1")
	assert.ErrorIs(t, err, christoffel.ErrBadLetter)
	_, err = christoffel.Recognize(s, "0101")
	assert.ErrorIs(t, err, christoffel.ErrNotChristoffel, "2/2 is not reduced")
	_, err = christoffel.Recognize(s, "10")
	assert.ErrorIs(t, err, christoffel.ErrNotChristoffel, "upper word of 1/1")
	_, err = christoffel.Recognize(s, "01101")
	assert.ErrorIs(t, err, christoffel.ErrNotChristoffel, "conjugate of 01011")
}
