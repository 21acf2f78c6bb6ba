// Package cli implements the fsa command-line interface.
//
// The commands load an automaton definition (a file, or one of the built-in
// automata), compile it, and then work on the resulting machine:
//   - convert: print the DFA produced by subset construction
//   - accepts: decide membership for the given strings
//   - count: count accepted strings of an exact length
//   - builtins: list the built-in automata
//
// All commands support --verbose (-v) for debug-level logging. The logger
// travels through context.Context.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/coregx/fsa"
	"github.com/coregx/fsa/dfa"
	"github.com/coregx/fsa/internal/definition"
	"github.com/coregx/fsa/nfa"
)

// options holds the flags shared by every command.
type options struct {
	verbose   bool
	file      string
	builtin   string
	maxStates int
	order     string
	workers   int
}

// Execute runs the fsa CLI with the given context.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "fsa",
		Short: "fsa determinizes finite automata and counts the strings they accept",
		Long: `fsa converts a nondeterministic finite automaton into an equivalent
deterministic one by subset construction, tests strings for membership, and
counts accepted strings of a given length exactly.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level))
			cmd.SetContext(ctx)
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	flags.StringVarP(&opts.file, "file", "f", "", "automaton definition file (.toml or .json)")
	flags.StringVarP(&opts.builtin, "builtin", "b", "mod7", "built-in automaton to use when no file is given")
	flags.IntVar(&opts.maxStates, "max-states", dfa.DefaultConfig().MaxStates, "maximum number of DFA states")
	flags.StringVar(&opts.order, "order", dfa.OrderFIFO.String(), "worklist order for subset construction (fifo or lifo)")
	flags.IntVarP(&opts.workers, "workers", "w", 1, "goroutines per counting generation")

	root.AddCommand(newConvertCmd(opts))
	root.AddCommand(newAcceptsCmd(opts))
	root.AddCommand(newCountCmd(opts))
	root.AddCommand(newBuiltinsCmd())

	return root
}

// loadNFA reads the automaton selected by the flags.
func (o *options) loadNFA(ctx context.Context) (*nfa.NFA, error) {
	logger := loggerFromContext(ctx)

	var (
		def    *definition.Definition
		source string
		err    error
	)
	if o.file != "" {
		source = o.file
		def, err = definition.Load(o.file)
	} else {
		source = "builtin:" + o.builtin
		def, err = definition.Builtin(o.builtin)
	}
	if err != nil {
		return nil, err
	}

	n, err := def.NFA()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	logger.Debug("loaded automaton", "source", source, "states", n.States(), "start", n.Name(n.Start()))
	return n, nil
}

// config turns the shared flags into a machine configuration.
func (o *options) config(ctx context.Context) (fsa.Config, error) {
	order, err := dfa.ParseOrder(o.order)
	if err != nil {
		return fsa.Config{}, err
	}
	cfg := fsa.DefaultConfig()
	cfg.DFA = cfg.DFA.WithMaxStates(o.maxStates).WithOrder(order)
	cfg.Counter = cfg.Counter.WithWorkers(o.workers)
	cfg.Logger = loggerFromContext(ctx)
	return cfg, nil
}

// compile loads and compiles the selected automaton.
func (o *options) compile(ctx context.Context) (*fsa.Machine, error) {
	cfg, err := o.config(ctx)
	if err != nil {
		return nil, err
	}
	n, err := o.loadNFA(ctx)
	if err != nil {
		return nil, err
	}

	p := newProgress(cfg.Logger)
	m, err := fsa.CompileWithConfig(n, cfg)
	if err != nil {
		return nil, err
	}
	p.done(fmt.Sprintf("Compiled %d NFA states into %d DFA states", n.States(), m.DFA().StateCount()))
	return m, nil
}

// isTerminal reports whether v is a file attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

