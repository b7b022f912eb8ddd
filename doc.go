// Package sternbrocot is a lazily built, memoized Stern–Brocot tree of
// irreducible fractions, together with the Christoffel words and digital
// straight lines it codes.
//
// What is in the module?
//
//	sbtree/          — Store arena, Fraction handles: father, ancestor, origin,
//	                   children, inverse, splits, continued fractions, mediant
//	christoffel/     — lower Christoffel words, run-length patterns, recognition,
//	                   standard arithmetic lines
//	cmd/sbtree/      — command line front end (cobra)
//	internal/cli/    — sbtree subcommands and their text/JSON/YAML reports
//	internal/clilog/ — zerolog logger with lipgloss console styling
//
// Why a lazy tree?
//
//   - Every fraction p/q = [u0; u1, …, un] sits at depth n+1, so the full tree
//     cannot be stored; only the paths actually requested are built.
//   - Each node keeps its origin and its previous convergent, so fathers,
//     neighbours and splits cost O(1) instead of a new Euclid run.
//
// Quick example:
//
//	s := sbtree.New()
//	f := s.MustFraction(5, 3)          // [1; 1, 2]
//	f.Father()                         // 3/2
//	f1, nb1, f2, nb2 := f.SplitBerstel() // 1·(1/1) ⊕ 2·(2/1)
//	christoffel.Word(f)                // "01011011"
//
//	go install github.com/katalvlaran/sternbrocot/cmd/sbtree@latest
package sternbrocot
