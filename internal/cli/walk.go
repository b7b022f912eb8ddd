package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sternbrocot/sbtree"
)

// WalkReport lists the subtree below a fraction, by level or in order.
type WalkReport struct {
	Start   string     `json:"start" yaml:"start"`
	Depth   int        `json:"depth" yaml:"depth"`
	InOrder []string   `json:"inorder,omitempty" yaml:"inorder,omitempty,flow"`
	Levels  [][]string `json:"levels,omitempty" yaml:"levels,omitempty"`
}

// Text implements texter.
func (r WalkReport) Text() string {
	if r.InOrder != nil {
		return strings.Join(r.InOrder, " ") + "\n"
	}
	var sb strings.Builder
	for _, level := range r.Levels {
		sb.WriteString(strings.Join(level, " "))
		sb.WriteByte('\n')
	}

	return sb.String()
}

func newWalkCmd(a *app) *cobra.Command {
	var (
		depth   int
		inorder bool
	)
	cmd := &cobra.Command{
		Use:   "walk P/Q",
		Short: "List the subtree below a fraction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if depth < 1 {
				return fmt.Errorf("%w: depth %d, want at least 1", sbtree.ErrOptionViolation, depth)
			}
			p, q, err := parseFraction(args[0])
			if err != nil {
				return err
			}
			f, err := a.store.Fraction(p, q)
			if err != nil {
				return err
			}

			r := WalkReport{Start: f.String(), Depth: depth}
			if inorder {
				res, err := sbtree.InOrder(f, sbtree.WithMaxDepth(depth), sbtree.WithContext(cmd.Context()))
				if err != nil {
					return err
				}
				r.InOrder = fractionNames(res.Order)
			} else {
				res, err := sbtree.BFS(f, sbtree.WithMaxDepth(depth), sbtree.WithContext(cmd.Context()))
				if err != nil {
					return err
				}
				r.Levels = make([][]string, depth+1)
				for _, g := range res.Order {
					d := res.Depth[g]
					r.Levels[d] = append(r.Levels[d], g.String())
				}
			}
			a.log.Debug().Str("start", r.Start).Int("depth", depth).Int("nodes", a.store.Len()).Msg("walk done")

			return render(cmd.OutOrStdout(), a.output, r)
		},
	}
	cmd.Flags().IntVarP(&depth, "depth", "d", 3, "levels below the start (at least 1)")
	cmd.Flags().BoolVar(&inorder, "inorder", false, "list in increasing order instead of by level")

	return cmd
}

func fractionNames(fs []sbtree.Fraction) []string {
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = f.String()
	}

	return out
}
