package sbtree

import (
	"fmt"
	"math"
	"math/big"
	"sync"

	"github.com/rs/zerolog"
)

// nodeID is a stable index into Store.nodes.
type nodeID int

// Indices of the nodes every Store starts with.
const (
	zeroOverOne nodeID = iota // 0/1
	oneOverZero               // 1/0
	oneOverOne                // 1/1
)

// node is one stored fraction p/q ≥ 1 (or one of the two roots).
// Fields are written once, when the node is appended; children grows.
type node struct {
	p, q         *big.Int // reduced fraction
	prevP, prevQ *big.Int // seed of the children: previous convergent
	u            uint64   // last coefficient; 0 for roots
	k            uint64   // number of coefficients; 0 for roots
	origin       nodeID   // [u0, …, u(n-1), 1]
	children     ChildMap // nil until the first child is built
}

// Store owns every node ever constructed for one tree. It only grows.
//
// The zero value is not usable; call New or Instance.
type Store struct {
	nodes       []node
	newChildren ChildMapFactory
	log         zerolog.Logger
}

var (
	instanceOnce sync.Once
	instance     *Store
)

// Instance returns the process-wide Store, creating it on first use with
// default options. It lives until the process exits.
func Instance() *Store {
	instanceOnce.Do(func() { instance = New() })

	return instance
}

// New creates a Store holding 0/1, 1/0 and 1/1.
// By default children use HashChildren and logging is disabled.
// Complexity: O(1)
func New(opts ...Option) *Store {
	s := &Store{
		newChildren: HashChildren,
		log:         zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.nodes = make([]node, 0, 64)
	s.nodes = append(s.nodes,
		node{p: big.NewInt(0), q: big.NewInt(1), prevP: big.NewInt(1), prevQ: big.NewInt(0), origin: oneOverZero},
		node{p: big.NewInt(1), q: big.NewInt(0), prevP: big.NewInt(0), prevQ: big.NewInt(1), origin: oneOverZero},
		// 1/1 seeds its children with 0/1: [0; v] folds onto v/1.
		node{p: big.NewInt(1), q: big.NewInt(1), prevP: big.NewInt(0), prevQ: big.NewInt(1), u: 1, k: 1, origin: oneOverZero},
	)
	s.setChild(oneOverZero, 1, oneOverOne)

	return s
}

// Len returns the number of nodes constructed so far, roots included.
func (s *Store) Len() int { return len(s.nodes) }

// ZeroOverOne returns the fraction 0/1.
func (s *Store) ZeroOverOne() Fraction { return Fraction{s: s, id: zeroOverOne} }

// OneOverZero returns the fraction 1/0.
func (s *Store) OneOverZero() Fraction { return Fraction{s: s, id: oneOverZero} }

// OneOverOne returns the fraction 1/1.
func (s *Store) OneOverOne() Fraction { return Fraction{s: s, id: oneOverOne} }

// Fraction returns the fraction p/q, building the missing nodes of its path.
//
// Implementation:
//   - Stage 1: validate signs, 0/0 and gcd(p, q) = 1.
//   - Stage 2: orient so that p ≥ q; remember the reciprocal flag.
//   - Stage 3: compute the coefficients [u0; …, un] by Euclidean division.
//   - Stage 4: descend from 1/1 with keys u0+1, …, u(n-1)+1, un.
//
// Complexity: O(n) node steps for n coefficients, plus Euclid on big integers.
func (s *Store) Fraction(p, q *big.Int) (Fraction, error) {
	if p.Sign() < 0 || q.Sign() < 0 {
		return Fraction{}, ErrNegative
	}
	if p.Sign() == 0 && q.Sign() == 0 {
		return Fraction{}, ErrZeroOverZero
	}
	if new(big.Int).GCD(nil, nil, p, q).Cmp(bigOne) != 0 {
		return Fraction{}, fmt.Errorf("%w: %s/%s", ErrNotCoprime, p, q)
	}
	switch {
	case q.Sign() == 0:
		return s.OneOverZero(), nil
	case p.Sign() == 0:
		return s.ZeroOverOne(), nil
	}

	inv := p.Cmp(q) < 0
	a, b := new(big.Int).Set(p), new(big.Int).Set(q)
	if inv {
		a, b = b, a
	}

	var us []uint64
	quo, rem := new(big.Int), new(big.Int)
	for b.Sign() != 0 {
		quo.QuoRem(a, b, rem)
		if !quo.IsUint64() {
			return Fraction{}, fmt.Errorf("%w: %s/%s", ErrQuotientOverflow, p, q)
		}
		us = append(us, quo.Uint64())
		a, b, rem = b, rem, a
	}

	id, err := s.descend(us)
	if err != nil {
		return Fraction{}, fmt.Errorf("%w: %s/%s", err, p, q)
	}

	return s.handle(id, inv), nil
}

// FractionInt is Fraction for machine integers.
func (s *Store) FractionInt(p, q int64) (Fraction, error) {
	return s.Fraction(big.NewInt(p), big.NewInt(q))
}

// MustFraction is FractionInt that panics on invalid input.
func (s *Store) MustFraction(p, q int64) Fraction {
	f, err := s.FractionInt(p, q)
	if err != nil {
		panic(err)
	}

	return f
}

// FromQuotients returns the fraction [u0; u1, …, un].
//
// A leading 0 denotes a fraction below 1 ([0] alone is 0/1). Every later
// coefficient must be ≥ 1; a trailing 1 is folded into its predecessor.
// Complexity: O(n) node steps.
func (s *Store) FromQuotients(us []uint64) (Fraction, error) {
	if len(us) == 0 {
		return Fraction{}, ErrEmptyQuotients
	}
	for i, u := range us[1:] {
		if u == 0 {
			return Fraction{}, fmt.Errorf("%w: index %d", ErrBadQuotient, i+1)
		}
	}

	inv := false
	if us[0] == 0 {
		if len(us) == 1 {
			return s.ZeroOverOne(), nil
		}
		inv = true
		us = us[1:]
	}

	canon := append([]uint64(nil), us...)
	if n := len(canon); n > 1 && canon[n-1] == 1 {
		if canon[n-2] == math.MaxUint64 {
			return Fraction{}, ErrQuotientOverflow
		}
		canon[n-2]++
		canon = canon[:n-1]
	}

	id, err := s.descend(canon)
	if err != nil {
		return Fraction{}, err
	}

	return s.handle(id, inv), nil
}

// descend walks from 1/1 along a canonical expansion (last coefficient ≥ 2,
// or the single coefficient 1) and returns the node it names.
func (s *Store) descend(us []uint64) (nodeID, error) {
	n := len(us) - 1
	if n == 0 && us[0] == 1 {
		return oneOverOne, nil
	}
	for _, u := range us[:n] {
		if u == math.MaxUint64 {
			return 0, ErrQuotientOverflow
		}
	}

	id := oneOverOne
	for _, u := range us[:n] {
		id = s.child(id, u+1)
	}

	return s.child(id, us[n]), nil
}

// child returns [u0, …, un - 1, v] for the node [u0, …, un], creating it if
// needed: child(v) = v·(N - prev) + prev, with prev(child) = N - prev.
// Complexity: one ChildMap lookup, plus one insert the first time.
func (s *Store) child(id nodeID, v uint64) nodeID {
	if n := &s.nodes[id]; n.children != nil {
		if c, ok := n.children.Get(v); ok {
			return nodeID(c)
		}
	}
	if id == zeroOverOne || id == oneOverZero || v < 2 {
		panic(fmt.Sprintf("sbtree: child(%d) of node %d is not part of the tree", v, id))
	}

	n := s.nodes[id]
	bv := new(big.Int).SetUint64(v)
	dp := new(big.Int).Sub(n.p, n.prevP)
	dq := new(big.Int).Sub(n.q, n.prevQ)
	p := new(big.Int).Mul(bv, dp)
	p.Add(p, n.prevP)
	q := new(big.Int).Mul(bv, dq)
	q.Add(q, n.prevQ)

	k := n.k + 1
	if id == oneOverOne {
		k = n.k // top row shares depth 1 with 1/1
	}

	c := nodeID(len(s.nodes))
	s.nodes = append(s.nodes, node{p: p, q: q, prevP: dp, prevQ: dq, u: v, k: k, origin: id})
	s.setChild(id, v, c)

	if e := s.log.Trace(); e.Enabled() {
		e.Str("p", p.String()).
			Str("q", q.String()).
			Uint64("u", v).
			Uint64("k", k).
			Int("node", int(c)).
			Msg("sbtree: node created")
	}

	return c
}

func (s *Store) setChild(parent nodeID, v uint64, c nodeID) {
	n := &s.nodes[parent]
	if n.children == nil {
		n.children = s.newChildren()
	}
	n.children.Set(v, int(c))
}

// handle wraps a node index, normalizing the reciprocal flag so that equal
// fractions compare equal with ==.
func (s *Store) handle(id nodeID, inv bool) Fraction {
	if inv {
		switch id {
		case oneOverOne:
			inv = false
		case zeroOverOne:
			id, inv = oneOverZero, false
		case oneOverZero:
			id, inv = zeroOverOne, false
		}
	}

	return Fraction{s: s, id: id, inv: inv}
}

// Validate checks the structural invariants of every stored node and of
// every child container, and returns the first violation found, or nil.
// Complexity: O(N) nodes plus the children of each.
func (s *Store) Validate() error {
	if len(s.nodes) < 3 {
		return fmt.Errorf("sbtree: store has %d nodes, want at least 3", len(s.nodes))
	}
	gcd := new(big.Int)
	built := make([]int, len(s.nodes)) // children constructed per node
	built[oneOverZero] = 1
	for i := int(oneOverOne) + 1; i < len(s.nodes); i++ {
		n := s.nodes[i]
		if n.origin >= nodeID(i) {
			return fmt.Errorf("sbtree: node %d: origin %d not constructed before it", i, n.origin)
		}
		if n.p.Cmp(n.q) <= 0 {
			return fmt.Errorf("sbtree: node %d: %s/%s is not above 1", i, n.p, n.q)
		}
		if gcd.GCD(nil, nil, n.p, n.q).Cmp(bigOne) != 0 {
			return fmt.Errorf("sbtree: node %d: %s/%s is not reduced", i, n.p, n.q)
		}
		if n.u < 2 {
			return fmt.Errorf("sbtree: node %d: coefficient %d < 2", i, n.u)
		}
		o := s.nodes[n.origin]
		wantK := o.k + 1
		if n.origin == oneOverOne {
			wantK = o.k
		}
		if n.k != wantK {
			return fmt.Errorf("sbtree: node %d: depth %d, want %d", i, n.k, wantK)
		}
		if o.children == nil {
			return fmt.Errorf("sbtree: node %d: origin %d has no children", i, n.origin)
		}
		if c, ok := o.children.Get(n.u); !ok || c != i {
			return fmt.Errorf("sbtree: node %d: not registered under key %d of its origin", i, n.u)
		}
		// p·(q - prevQ) - q·(p - prevP) = ±1 for consecutive convergents.
		det := new(big.Int).Mul(n.p, n.prevQ)
		det.Sub(det, new(big.Int).Mul(n.q, n.prevP))
		if det.CmpAbs(bigOne) != 0 {
			return fmt.Errorf("sbtree: node %d: seed %s/%s is not a neighbour", i, n.prevP, n.prevQ)
		}
		built[n.origin]++
	}

	return s.validateChildren(built)
}

// validateChildren checks that every ChildMap holds exactly the nodes built
// from its owner, each under its own coefficient.
func (s *Store) validateChildren(built []int) error {
	for i, n := range s.nodes {
		if n.children == nil {
			continue
		}
		if got := n.children.Len(); got != built[i] {
			return fmt.Errorf("sbtree: node %d: %d children registered, %d built", i, got, built[i])
		}
		var err error
		n.children.Range(func(v uint64, c int) bool {
			switch {
			case c <= int(oneOverZero) || c >= len(s.nodes):
				err = fmt.Errorf("sbtree: node %d: key %d points outside the store", i, v)
			case s.nodes[c].origin != nodeID(i) || s.nodes[c].u != v:
				err = fmt.Errorf("sbtree: node %d: key %d points to node %d of another parent", i, v, c)
			}
			return err == nil
		})
		if err != nil {
			return err
		}
	}

	return nil
}

var bigOne = big.NewInt(1)
