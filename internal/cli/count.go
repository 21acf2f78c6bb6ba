package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/coregx/fsa"
)

func newCountCmd(opts *options) *cobra.Command {
	var series bool

	cmd := &cobra.Command{
		Use:   "count [N...]",
		Short: "Count the accepted strings of length N",
		Long: `Print the number of strings of exactly length N the automaton accepts.

Without arguments, lengths are read from standard input: interactively when
it is a terminal, otherwise one per line. A negative length ends the input.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			lengths, err := parseLengths(args)
			if err != nil {
				return err
			}

			m, err := opts.compile(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(lengths) > 0 {
				for _, n := range lengths {
					if err := writeCount(ctx, out, m, n, series); err != nil {
						return err
					}
				}
				return nil
			}

			in := cmd.InOrStdin()
			var r lineReader
			if isTerminal(in) {
				r = newPromptReader()
			} else {
				r = newScanReader(in)
			}
			return countLoop(ctx, out, r, m, series)
		},
	}

	cmd.Flags().BoolVarP(&series, "series", "s", false, "print the counts for every length from 0 to N")
	return cmd
}

func parseLengths(args []string) ([]int, error) {
	lengths := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid length %q: %w", arg, err)
		}
		if n < 0 {
			return nil, fmt.Errorf("invalid length %d: must be >= 0", n)
		}
		lengths = append(lengths, n)
	}
	return lengths, nil
}

func writeCount(ctx context.Context, w io.Writer, m *fsa.Machine, n int, series bool) error {
	if !series {
		count, err := m.CountContext(ctx, n)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d\t%s\n", n, count)
		return nil
	}

	counts, err := m.Series(ctx, n)
	if err != nil {
		return err
	}
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Length", "Accepted"})
	for k, c := range counts {
		table.Append([]string{strconv.Itoa(k), c.String()})
	}
	table.Render()
	return nil
}

// errStop ends a count loop without error.
var errStop = errors.New("stop")

// lineReader yields lengths typed by the user, one per call. It returns
// errStop when the input is exhausted.
type lineReader interface {
	readLine(ctx context.Context) (string, error)
}

// countLoop answers lengths until a negative one or the end of input.
func countLoop(ctx context.Context, w io.Writer, r lineReader, m *fsa.Machine, series bool) error {
	logger := loggerFromContext(ctx)
	for line := 1; ; line++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		text, err := r.readLine(ctx)
		if errors.Is(err, errStop) {
			return nil
		}
		if err != nil {
			return err
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		n, err := strconv.Atoi(text)
		if err != nil {
			return fmt.Errorf("line %d: invalid length %q", line, text)
		}
		if n < 0 {
			logger.Debug("negative length, stopping", "line", line)
			return nil
		}
		if err := writeCount(ctx, w, m, n, series); err != nil {
			return err
		}
	}
}

// scanReader reads lengths from non-interactive input.
type scanReader struct {
	scanner *bufio.Scanner
}

func newScanReader(r io.Reader) *scanReader {
	return &scanReader{scanner: bufio.NewScanner(r)}
}

func (s *scanReader) readLine(context.Context) (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", errStop
	}
	return s.scanner.Text(), nil
}

// promptReader asks for lengths on a terminal.
type promptReader struct {
	prompt promptui.Prompt
}

func newPromptReader() *promptReader {
	return &promptReader{prompt: promptui.Prompt{
		Label:    "Length (negative to quit)",
		Validate: validateLength,
	}}
}

func validateLength(s string) error {
	if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
		return errors.New("enter an integer")
	}
	return nil
}

func (p *promptReader) readLine(context.Context) (string, error) {
	text, err := p.prompt.Run()
	switch {
	case errors.Is(err, promptui.ErrInterrupt):
		return "", context.Canceled
	case errors.Is(err, promptui.ErrEOF):
		return "", errStop
	}
	return text, err
}
