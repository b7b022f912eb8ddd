package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sternbrocot/christoffel"
	"github.com/katalvlaran/sternbrocot/sbtree"
)

// maxWordLen bounds the words the CLI expands.
const maxWordLen = 1 << 20

// ErrWordTooLong is returned when a word would exceed maxWordLen letters.
var ErrWordTooLong = errors.New("cli: word too long to expand, use --pattern")

// WordReport is a Christoffel word, expanded or in run-length form.
type WordReport struct {
	Fraction string   `json:"fraction" yaml:"fraction"`
	Length   string   `json:"length" yaml:"length"`
	Word     string   `json:"word,omitempty" yaml:"word,omitempty"`
	Defs     []string `json:"defs,omitempty" yaml:"defs,omitempty"`
}

// Text implements texter.
func (r WordReport) Text() string {
	if r.Defs != nil {
		return strings.Join(r.Defs, "\n") + "\n"
	}

	return r.Word + "\n"
}

func newWordReport(f sbtree.Fraction, pattern bool) (WordReport, error) {
	pat := christoffel.Encode(f)
	r := WordReport{Fraction: f.String(), Length: pat.Len().String()}
	if pattern {
		for _, d := range pat.Defs() {
			r.Defs = append(r.Defs, d.Def())
		}
		return r, nil
	}
	if n := pat.Len(); !n.IsInt64() || n.Int64() > maxWordLen {
		return WordReport{}, fmt.Errorf("%w: %s letters", ErrWordTooLong, n)
	}
	r.Word = pat.String()

	return r, nil
}

func newWordCmd(a *app) *cobra.Command {
	var pattern bool
	cmd := &cobra.Command{
		Use:   "word P/Q",
		Short: "Print the lower Christoffel word of a fraction",
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
			r, err := newWordReport(f, pattern)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), a.output, r)
		},
	}
	cmd.Flags().BoolVar(&pattern, "pattern", false, "print the run-length definitions instead of the word")

	return cmd
}

// RecognizeReport is the slope of a recognized word.
type RecognizeReport struct {
	Word     string   `json:"word" yaml:"word"`
	Fraction string   `json:"fraction" yaml:"fraction"`
	CFrac    []uint64 `json:"cfrac" yaml:"cfrac,flow"`
}

// Text implements texter.
func (r RecognizeReport) Text() string {
	return r.Fraction + " " + formatCFrac(r.CFrac) + "\n"
}

func newRecognizeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "recognize WORD",
		Short: "Find the slope of a lower Christoffel word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := christoffel.Recognize(a.store, args[0])
			if err != nil {
				return err
			}
			a.log.Debug().Str("fraction", f.String()).Int("letters", len(args[0])).Msg("word recognized")

			return render(cmd.OutOrStdout(), a.output, RecognizeReport{
				Word:     args[0],
				Fraction: f.String(),
				CFrac:    f.CFrac(),
			})
		},
	}
}
