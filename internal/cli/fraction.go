package cli

import (
	"github.com/spf13/cobra"
)

func newFractionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fraction P/Q",
		Short: "Show a fraction and its neighbourhood in the tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, q, err := parseFraction(args[0])
			if err != nil {
				return err
			}
			f, err := a.store.Fraction(p, q)
			if err != nil {
				return err
			}
			a.log.Debug().Str("fraction", f.String()).Int("nodes", a.store.Len()).Msg("fraction built")

			return render(cmd.OutOrStdout(), a.output, newFractionReport(f))
		},
	}
}

func newPathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path P/Q",
		Short: "List the fathers of a fraction up to 0/1",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, q, err := parseFraction(args[0])
			if err != nil {
				return err
			}
			f, err := a.store.Fraction(p, q)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), a.output, newPathReport(f))
		},
	}
}

func newCFracCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cfrac U0 [U1 ...]",
		Short: "Build a fraction from its continued fraction coefficients",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			us, err := parseUints(args)
			if err != nil {
				return err
			}
			f, err := a.store.FromQuotients(us)
			if err != nil {
				return err
			}
			a.log.Debug().Str("fraction", f.String()).Msg("fraction built from coefficients")

			return render(cmd.OutOrStdout(), a.output, newFractionReport(f))
		},
	}
}
