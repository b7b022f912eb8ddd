package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sternbrocot/christoffel"
)

// LineReport is a stretch of a digital straight line.
type LineReport struct {
	A      int64  `json:"a" yaml:"a"`
	B      int64  `json:"b" yaml:"b"`
	Mu     int64  `json:"mu" yaml:"mu"`
	X      int64  `json:"x" yaml:"x"`
	Y      int64  `json:"y" yaml:"y"`
	Slope  string `json:"slope" yaml:"slope"`
	Period string `json:"period,omitempty" yaml:"period,omitempty"`
	Code   string `json:"code" yaml:"code"`
}

// Text implements texter.
func (r LineReport) Text() string {
	var t table
	t.row("slope", r.Slope)
	if r.Period != "" {
		t.row("period", r.Period)
	}
	t.row("code", r.Code)

	return t.String()
}

func newLineCmd(a *app) *cobra.Command {
	var (
		steps int
		x, y  int64
	)
	cmd := &cobra.Command{
		Use:   "line A B MU",
		Short: "Print the Freeman code of the line MU ≤ A·x − B·y < MU + A + B",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			vs, err := parseInts(args)
			if err != nil {
				return err
			}
			l, err := christoffel.NewLine(vs[0], vs[1], vs[2])
			if err != nil {
				return err
			}
			code, err := l.Code(x, y, steps)
			if err != nil {
				return err
			}
			pat, err := l.Pattern(a.store)
			if err != nil {
				return err
			}

			r := LineReport{A: l.A, B: l.B, Mu: l.Mu, X: x, Y: y, Slope: pat.Slope().String(), Code: code}
			if n := pat.Len(); n.IsInt64() && n.Int64() <= maxWordLen {
				r.Period = pat.String()
			}

			return render(cmd.OutOrStdout(), a.output, r)
		},
	}
	cmd.Flags().IntVarP(&steps, "steps", "n", 16, "number of steps")
	cmd.Flags().Int64Var(&x, "x", 0, "start abscissa")
	cmd.Flags().Int64Var(&y, "y", 0, "start ordinate")

	return cmd
}
