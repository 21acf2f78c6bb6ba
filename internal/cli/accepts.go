package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newAcceptsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "accepts STRING...",
		Short: "Test strings for membership in the automaton's language",
		Long: `Run every string through the NFA and through the DFA and print the
verdict. Both automata always agree; a disagreement is reported as an error.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := opts.compile(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			v := newVerdicts(out)
			for _, s := range args {
				byNFA := m.NFA().InLanguage(s)
				byDFA := m.DFA().InLanguage(s)
				if byNFA != byDFA {
					return fmt.Errorf("NFA and DFA disagree on %q (nfa=%v, dfa=%v)", s, byNFA, byDFA)
				}
				fmt.Fprintf(out, "%q\t%s\n", s, v.format(byDFA))
			}
			return nil
		},
	}
}

// verdicts colours accept/reject labels when writing to a terminal.
type verdicts struct {
	accept *color.Color
	reject *color.Color
}

func newVerdicts(w io.Writer) *verdicts {
	v := &verdicts{
		accept: color.New(color.FgGreen, color.Bold),
		reject: color.New(color.FgRed),
	}
	if !isTerminal(w) {
		v.accept.DisableColor()
		v.reject.DisableColor()
	}
	return v
}

func (v *verdicts) format(accepted bool) string {
	if accepted {
		return v.accept.Sprint("accepted")
	}
	return v.reject.Sprint("rejected")
}
