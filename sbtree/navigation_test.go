package sbtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sternbrocot/sbtree"
)

// walk visits the Stern–Brocot tree below f down to depth levels, where lo
// and hi are the bounds whose mediant is f.
func walk(t *testing.T, f, lo, hi sbtree.Fraction, depth int, visit func(f, lo, hi sbtree.Fraction)) {
	if depth == 0 {
		return
	}
	visit(f, lo, hi)
	walk(t, f.Left(), lo, f, depth-1, visit)
	walk(t, f.Right(), f, hi, depth-1, visit)
}

// TestTree_Structure checks every node down to 10 levels against the
// mediant construction: value, father, split and Berstel split.
func TestTree_Structure(t *testing.T) {
	s := sbtree.New()
	var inorder []sbtree.Fraction
	var collect func(f sbtree.Fraction, depth int)
	collect = func(f sbtree.Fraction, depth int) {
		if depth == 0 {
			return
		}
		collect(f.Left(), depth-1)
		inorder = append(inorder, f)
		collect(f.Right(), depth-1)
	}

	visited := 0
	walk(t, s.OneOverOne(), s.ZeroOverOne(), s.OneOverZero(), 10, func(f, lo, hi sbtree.Fraction) {
		visited++
		assertSame(t, lo.Mediant(hi), f, "mediant of bounds")

		a, b := f.Split()
		assertSame(t, lo, a, "split low of %v", f)
		assertSame(t, hi, b, "split high of %v", f)

		assertSame(t, f, f.Left().Father(), "father of left child")
		assertSame(t, f, f.Right().Father(), "father of right child")
		assert.True(t, f.Left().Less(f))
		assert.True(t, f.Right().Greater(f))
	})
	require.Equal(t, 1<<10-1, visited)

	collect(s.OneOverOne(), 10)
	for i := 1; i < len(inorder); i++ {
		require.Truef(t, inorder[i-1].Less(inorder[i]), "%v before %v", inorder[i-1], inorder[i])
	}
	assert.NoError(t, s.Validate())
}

// TestChildren_Examples pins a few children by value.
func TestChildren_Examples(t *testing.T) {
	s := sbtree.New()
	cases := []struct {
		p, q        int64
		left, right string
	}{
		{1, 1, "1/2", "2/1"},
		{2, 1, "3/2", "3/1"},
		{3, 2, "4/3", "5/3"},
		{5, 3, "8/5", "7/4"},
		{1, 2, "1/3", "2/3"},
		{3, 5, "4/7", "5/8"},
	}
	for _, tc := range cases {
		f := s.MustFraction(tc.p, tc.q)
		assert.Equal(t, tc.left, f.Left().String(), "left of %v", f)
		assert.Equal(t, tc.right, f.Right().String(), "right of %v", f)
	}
}

// TestFather_Chain walks 5/3 back up to 1/1.
func TestFather_Chain(t *testing.T) {
	s := sbtree.New()
	f := s.MustFraction(5, 3)
	require.Equal(t, []uint64{1, 1, 2}, f.CFrac())

	assert.Equal(t, "3/2", f.Father().String())
	assert.Equal(t, "2/1", f.Father().Father().String())
	assertSame(t, s.OneOverOne(), f.Father().Father().Father())
	assertSame(t, s.ZeroOverOne(), s.OneOverOne().Father())

	assert.Equal(t, "2/3", f.Inverse().Father().String())
}

// TestFatherAt covers the whole range of the last coefficient.
func TestFatherAt(t *testing.T) {
	s := sbtree.New()
	f := s.MustFraction(10, 3) // [3; 3]
	require.EqualValues(t, 3, f.U())

	assert.Equal(t, "4/1", f.FatherAt(1).String())
	assert.Equal(t, "7/2", f.FatherAt(2).String())
	assertSame(t, f, f.FatherAt(3))
	assertSame(t, f.Origin(), f.FatherAt(1))
	assertSame(t, f.Father(), f.FatherAt(2))
	assert.Equal(t, "2/7", f.Inverse().FatherAt(2).String())

	assert.PanicsWithValue(t, sbtree.ErrFatherRange, func() { f.FatherAt(0) })
	assert.PanicsWithValue(t, sbtree.ErrFatherRange, func() { f.FatherAt(4) })
}

// TestAncestor compares the previous convergent with the depth rule.
func TestAncestor(t *testing.T) {
	s := sbtree.New()
	cases := []struct {
		p, q     int64
		ancestor string
		direct   bool
	}{
		{1, 1, "1/0", true},
		{2, 1, "1/1", false}, // both at depth 1
		{7, 2, "3/1", true},  // [3; 2]
		{8, 5, "3/2", false}, // [1; 1, 1, 2] skips the 1
		{7, 5, "3/2", true},  // [1; 2, 2]
		{5, 3, "2/1", false}, // [1; 1, 2]: 2/1 sits at depth 1
	}
	for _, tc := range cases {
		f := s.MustFraction(tc.p, tc.q)
		assert.Equal(t, tc.ancestor, f.Ancestor().String(), "ancestor of %v", f)
		assert.Equal(t, tc.direct, f.IsAncestorDirect(), "direct ancestor of %v", f)
	}
	assert.Equal(t, "1/3", s.MustFraction(2, 7).Ancestor().String())
}

// TestPreviousPartial checks the top row, 1/1 and reciprocals.
func TestPreviousPartial(t *testing.T) {
	s := sbtree.New()
	assertSame(t, s.OneOverZero(), s.OneOverOne().PreviousPartial())
	assertSame(t, s.OneOverZero(), s.MustFraction(4, 1).PreviousPartial())
	assertSame(t, s.ZeroOverOne(), s.MustFraction(1, 4).PreviousPartial())
	assert.Equal(t, "4/1", s.MustFraction(13, 3).PreviousPartial().String()) // [4; 3]
	assert.Equal(t, "3/2", s.MustFraction(8, 5).PreviousPartial().String())
}

// TestPartial_Reduced checks convergents against CFrac prefixes.
func TestPartial_Reduced(t *testing.T) {
	s := sbtree.New()
	f := s.MustFraction(8, 5) // [1; 1, 1, 2]
	want := []string{"1/0", "1/1", "2/1", "3/2", "8/5"}
	for kp, w := range want {
		assert.Equal(t, w, f.Partial(uint64(kp)).String(), "Partial(%d)", kp)
		assert.Equal(t, w, f.Reduced(uint64(len(want)-1-kp)).String(), "Reduced(%d)", len(want)-1-kp)
	}
	assertSame(t, s.ZeroOverOne(), f.Inverse().Partial(0))
	assert.Equal(t, "2/3", f.Inverse().Reduced(1).String())

	assert.PanicsWithValue(t, sbtree.ErrDepthRange, func() { f.Partial(5) })
	assert.PanicsWithValue(t, sbtree.ErrDepthRange, func() { f.Reduced(5) })

	for _, pq := range coprimePairs(25) {
		g := s.MustFraction(pq[0], pq[1])
		us := g.CFrac()
		if g.IsReciprocal() {
			us = us[1:]
		}
		for kp := 1; kp <= len(us); kp++ {
			h := g.Partial(uint64(kp))
			if g.IsReciprocal() {
				h = h.Inverse()
			}
			p, q := fromCFrac(us[:kp])
			require.Truef(t, h.Equals(p, q), "Partial(%d) of %v = %v, want %s/%s", kp, g, h, p, q)
		}
	}
}

// TestRoots_Panic checks the operations undefined on 0/1 and 1/0.
func TestRoots_Panic(t *testing.T) {
	s := sbtree.New()
	for _, r := range []sbtree.Fraction{s.ZeroOverOne(), s.OneOverZero()} {
		for name, fn := range map[string]func(){
			"Left":         func() { r.Left() },
			"Right":        func() { r.Right() },
			"Father":       func() { r.Father() },
			"FatherAt":     func() { r.FatherAt(1) },
			"Ancestor":     func() { r.Ancestor() },
			"Origin":       func() { r.Origin() },
			"Partial":      func() { r.Partial(0) },
			"Split":        func() { r.Split() },
			"SplitBerstel": func() { r.SplitBerstel() },
		} {
			assert.PanicsWithValue(t, sbtree.ErrRootFraction, fn, "%s of %v", name, r)
		}
	}
}
