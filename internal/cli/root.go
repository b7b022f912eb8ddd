// Package cli implements the sbtree command: inspection of the lazily built
// Stern–Brocot tree and of the Christoffel words it codes.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sternbrocot/internal/clilog"
	"github.com/katalvlaran/sternbrocot/sbtree"
)

// EnvChildren selects the default child container.
const EnvChildren = "SBTREE_CHILDREN"

// Child container names accepted by --children.
const (
	ChildrenHash    = "hash"
	ChildrenOrdered = "ordered"
)

// ErrBadChildren is returned for an unknown --children value.
var ErrBadChildren = errors.New("cli: unknown child container")

// app carries the state shared by every subcommand of one invocation.
type app struct {
	output    string
	logLevel  string
	logFormat string
	children  string

	log   zerolog.Logger
	store *sbtree.Store
}

// NewRootCmd builds a fresh command tree. Flag defaults come from the
// SBTREE_* environment variables.
func NewRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}
	env := clilog.ConfigFromEnv()
	children := os.Getenv(EnvChildren)
	if children == "" {
		children = ChildrenHash
	}

	root := &cobra.Command{
		Use:           "sbtree",
		Short:         "Explore the Stern–Brocot tree and Christoffel words",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.output, "output", "o", FormatText, "output format: text, json or yaml")
	flags.StringVar(&a.logLevel, "log-level", env.Level, "log level (env "+clilog.EnvLevel+")")
	flags.StringVar(&a.logFormat, "log-format", env.Format, "log format: auto, console or json (env "+clilog.EnvFormat+")")
	flags.StringVar(&a.children, "children", children, "child container: hash or ordered (env "+EnvChildren+")")

	root.AddCommand(
		newFractionCmd(a),
		newPathCmd(a),
		newCFracCmd(a),
		newWordCmd(a),
		newRecognizeCmd(a),
		newLineCmd(a),
		newWalkCmd(a),
	)

	return root
}

// Execute runs the command tree with os.Args and reports the error on stderr.
func Execute() int {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		return 1
	}

	return 0
}

// setup builds the logger and the store once flags are parsed.
func (a *app) setup(stderr io.Writer) error {
	if err := checkFormat(a.output); err != nil {
		return err
	}

	log, err := clilog.New(stderr, clilog.Config{Level: a.logLevel, Format: a.logFormat})
	if err != nil {
		return err
	}
	a.log = log

	var factory sbtree.ChildMapFactory
	switch strings.ToLower(a.children) {
	case ChildrenHash:
		factory = sbtree.HashChildren
	case ChildrenOrdered:
		factory = sbtree.OrderedChildren
	default:
		return fmt.Errorf("%w: %q", ErrBadChildren, a.children)
	}

	a.store = sbtree.New(
		sbtree.WithChildMap(factory),
		sbtree.WithLogger(log.With().Str("component", "sbtree").Logger()),
	)
	a.log.Debug().Str("children", a.children).Msg("store ready")

	return nil
}
