package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/coregx/fsa/dfa"
)

func newConvertCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "convert",
		Short: "Print the DFA obtained by subset construction",
		Long: `Determinize the automaton and print its transition table: one row per
reachable subset, with the subset's NFA states, whether it is final, and
its target for every symbol. Final states are marked with "*".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := opts.compile(cmd.Context())
			if err != nil {
				return err
			}
			return writeTable(cmd.OutOrStdout(), m.DFA())
		},
	}
}

// writeTable renders d's transition table.
func writeTable(w io.Writer, d *dfa.DFA) error {
	alphabet := d.Alphabet()

	header := make([]string, 0, len(alphabet)+3)
	header = append(header, "State", "Subset", "Final")
	for _, a := range alphabet {
		header = append(header, a.String())
	}

	table := tablewriter.NewWriter(w)
	table.Header(header)
	for id := 0; id < d.StateCount(); id++ {
		sid := dfa.StateID(id)
		row := make([]string, 0, len(header))
		final := ""
		if d.IsMatch(sid) {
			final = "*"
		}
		row = append(row, strconv.Itoa(id), d.Format(sid), final)
		for _, a := range alphabet {
			next, err := d.Next(sid, a)
			if err != nil {
				return fmt.Errorf("state %d: %w", id, err)
			}
			row = append(row, strconv.FormatUint(uint64(next), 10))
		}
		table.Append(row)
	}
	table.Render()
	return nil
}
