package cli

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/sternbrocot/sbtree"
)

// FractionReport describes one fraction and its neighbourhood in the tree.
// Fields undefined on 0/1 and 1/0 are left empty.
type FractionReport struct {
	Fraction        string         `json:"fraction" yaml:"fraction"`
	P               string         `json:"p" yaml:"p"`
	Q               string         `json:"q" yaml:"q"`
	U               uint64         `json:"u" yaml:"u"`
	K               uint64         `json:"k" yaml:"k"`
	CFrac           []uint64       `json:"cfrac" yaml:"cfrac,flow"`
	Father          string         `json:"father,omitempty" yaml:"father,omitempty"`
	Ancestor        string         `json:"ancestor,omitempty" yaml:"ancestor,omitempty"`
	AncestorDirect  *bool          `json:"ancestor_direct,omitempty" yaml:"ancestor_direct,omitempty"`
	Origin          string         `json:"origin,omitempty" yaml:"origin,omitempty"`
	PreviousPartial string         `json:"previous_partial,omitempty" yaml:"previous_partial,omitempty"`
	Left            string         `json:"left,omitempty" yaml:"left,omitempty"`
	Right           string         `json:"right,omitempty" yaml:"right,omitempty"`
	Split           []string       `json:"split,omitempty" yaml:"split,omitempty,flow"`
	Berstel         *BerstelReport `json:"berstel,omitempty" yaml:"berstel,omitempty"`
	Nodes           int            `json:"nodes" yaml:"nodes"`
}

// BerstelReport is f = NLo·Lo ⊕ NHi·Hi.
type BerstelReport struct {
	Lo  string `json:"lo" yaml:"lo"`
	NLo uint64 `json:"nlo" yaml:"nlo"`
	Hi  string `json:"hi" yaml:"hi"`
	NHi uint64 `json:"nhi" yaml:"nhi"`
}

func isRoot(f sbtree.Fraction) bool {
	s := f.Store()
	return f == s.ZeroOverOne() || f == s.OneOverZero()
}

func newFractionReport(f sbtree.Fraction) FractionReport {
	r := FractionReport{
		Fraction: f.String(),
		P:        f.P().String(),
		Q:        f.Q().String(),
		U:        f.U(),
		K:        f.K(),
		CFrac:    f.CFrac(),
	}
	if !isRoot(f) {
		direct := f.IsAncestorDirect()
		f1, f2 := f.Split()
		b1, nb1, b2, nb2 := f.SplitBerstel()

		r.Father = f.Father().String()
		r.Ancestor = f.Ancestor().String()
		r.AncestorDirect = &direct
		r.Origin = f.Origin().String()
		r.PreviousPartial = f.PreviousPartial().String()
		r.Left = f.Left().String()
		r.Right = f.Right().String()
		r.Split = []string{f1.String(), f2.String()}
		r.Berstel = &BerstelReport{Lo: b1.String(), NLo: nb1, Hi: b2.String(), NHi: nb2}
	}
	r.Nodes = f.Store().Len()

	return r
}

// Text implements texter.
func (r FractionReport) Text() string {
	var t table
	t.row("fraction", r.Fraction)
	t.row("cfrac", formatCFrac(r.CFrac))
	t.row("depth", r.K)
	t.row("last coefficient", r.U)
	if r.Berstel != nil {
		t.row("father", r.Father)
		t.row("ancestor", fmt.Sprintf("%s (direct: %t)", r.Ancestor, *r.AncestorDirect))
		t.row("origin", r.Origin)
		t.row("previous partial", r.PreviousPartial)
		t.row("children", r.Left+" "+r.Right)
		t.row("split", r.Split[0]+" ⊕ "+r.Split[1])
		t.row("berstel", fmt.Sprintf("%d·%s ⊕ %d·%s", r.Berstel.NLo, r.Berstel.Lo, r.Berstel.NHi, r.Berstel.Hi))
	}
	t.row("nodes", r.Nodes)

	return t.String()
}

// formatCFrac renders [u0; u1, …, un].
func formatCFrac(us []uint64) string {
	if len(us) == 0 {
		return "[]"
	}
	parts := make([]string, len(us))
	for i, u := range us {
		parts[i] = fmt.Sprint(u)
	}
	if len(parts) == 1 {
		return "[" + parts[0] + "]"
	}

	return "[" + parts[0] + "; " + strings.Join(parts[1:], ", ") + "]"
}

// PathStep is one fraction on the way up to the root.
type PathStep struct {
	Fraction string   `json:"fraction" yaml:"fraction"`
	CFrac    []uint64 `json:"cfrac" yaml:"cfrac,flow"`
	K        uint64   `json:"k" yaml:"k"`
}

// PathReport lists the fathers of a fraction, itself first, 0/1 last.
type PathReport struct {
	Steps []PathStep `json:"steps" yaml:"steps"`
}

func newPathReport(f sbtree.Fraction) PathReport {
	var r PathReport
	for {
		r.Steps = append(r.Steps, PathStep{Fraction: f.String(), CFrac: f.CFrac(), K: f.K()})
		if isRoot(f) {
			return r
		}
		f = f.Father()
	}
}

// Text implements texter.
func (r PathReport) Text() string {
	var sb strings.Builder
	for _, s := range r.Steps {
		fmt.Fprintf(&sb, "%-12s %s\n", s.Fraction, formatCFrac(s.CFrac))
	}

	return sb.String()
}
