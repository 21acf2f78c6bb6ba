package cli

import (
	"bytes"
	"context"
	"errors"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/fsa"
	"github.com/coregx/fsa/dfa"
	"github.com/coregx/fsa/internal/definition"
)

// run executes the CLI with args and returns what it wrote to stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestBuiltins(t *testing.T) {
	out, _, err := run(t, "", "builtins")
	require.NoError(t, err)
	assert.Equal(t, "mod7\nsample\n", out)
}

func TestAccepts(t *testing.T) {
	out, _, err := run(t, "", "accepts", "7", "54", "", "9999997")
	require.NoError(t, err)
	assert.Equal(t, "\"7\"\taccepted\n\"54\"\trejected\n\"\"\taccepted\n\"9999997\"\taccepted\n", out)
}

func TestAccepts_OutsideAlphabet(t *testing.T) {
	out, _, err := run(t, "", "accepts", "7a")
	require.NoError(t, err)
	assert.Contains(t, out, "rejected")
}

func TestAccepts_NeedsArgs(t *testing.T) {
	_, _, err := run(t, "", "accepts")
	assert.Error(t, err)
}

func TestConvert(t *testing.T) {
	out, stderr, err := run(t, "", "convert")
	require.NoError(t, err)
	for i := 0; i < 7; i++ {
		assert.Contains(t, out, "{q"+string(rune('0'+i))+"}")
	}
	assert.Contains(t, out, "*")
	assert.Contains(t, stderr, "Compiled 7 NFA states into 7 DFA states")
}

func TestConvert_Sample(t *testing.T) {
	out, _, err := run(t, "", "-b", "sample", "--order", "lifo", "convert")
	require.NoError(t, err)
	assert.Contains(t, out, "{q14}")
}

func TestCount_Args(t *testing.T) {
	out, _, err := run(t, "", "count", "0", "1", "2", "3")
	require.NoError(t, err)
	assert.Equal(t, "0\t1\n1\t2\n2\t15\n3\t143\n", out)
}

func TestCount_Series(t *testing.T) {
	out, _, err := run(t, "", "-b", "sample", "count", "--series", "4")
	require.NoError(t, err)
	for _, want := range []string{"LENGTH", "37", "416", "4800"} {
		assert.Contains(t, strings.ToUpper(out), want)
	}
}

func TestCount_Workers(t *testing.T) {
	out, _, err := run(t, "", "-w", "4", "count", "12")
	require.NoError(t, err)
	// floor((10^12 - 1) / 7) + 1
	assert.Equal(t, "12\t142857142858\n", out)
}

func TestCount_InvalidArgs(t *testing.T) {
	_, _, err := run(t, "", "count", "-1")
	assert.Error(t, err)
	_, _, err = run(t, "", "count", "x")
	assert.Error(t, err)
}

func TestCount_PipedInput(t *testing.T) {
	out, _, err := run(t, "1\n\n 2 \n-1\n3\n", "count")
	require.NoError(t, err)
	assert.Equal(t, "1\t2\n2\t15\n", out)
}

func TestCount_PipedInputUntilEOF(t *testing.T) {
	out, _, err := run(t, "0\n1", "count")
	require.NoError(t, err)
	assert.Equal(t, "0\t1\n1\t2\n", out)
}

func TestCount_PipedInputInvalid(t *testing.T) {
	_, _, err := run(t, "1\nseven\n", "count")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

type fakeReader struct {
	lines []string
	err   error
}

func (f *fakeReader) readLine(context.Context) (string, error) {
	if len(f.lines) == 0 {
		if f.err != nil {
			return "", f.err
		}
		return "", errStop
	}
	line := f.lines[0]
	f.lines = f.lines[1:]
	return line, nil
}

func compileMod7(t *testing.T) *fsa.Machine {
	t.Helper()
	def, err := definition.Builtin("mod7")
	require.NoError(t, err)
	n, err := def.NFA()
	require.NoError(t, err)
	return fsa.MustCompile(n)
}

func TestCountLoop(t *testing.T) {
	m := compileMod7(t)

	t.Run("negative sentinel", func(t *testing.T) {
		var out bytes.Buffer
		r := &fakeReader{lines: []string{"2", "-5", "1"}}
		require.NoError(t, countLoop(context.Background(), &out, r, m, false))
		assert.Equal(t, "2\t15\n", out.String())
		assert.Equal(t, []string{"1"}, r.lines)
	})

	t.Run("interrupt", func(t *testing.T) {
		var out bytes.Buffer
		r := &fakeReader{lines: []string{"1"}, err: context.Canceled}
		err := countLoop(context.Background(), &out, r, m, false)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, "1\t2\n", out.String())
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := countLoop(ctx, &bytes.Buffer{}, &fakeReader{lines: []string{"1"}}, m, false)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestValidateLength(t *testing.T) {
	assert.NoError(t, validateLength("12"))
	assert.NoError(t, validateLength(" -1 "))
	assert.Error(t, validateLength("twelve"))
}

func TestFileFlag(t *testing.T) {
	def, err := definition.Divisibility(2, 3)
	require.NoError(t, err)
	data, err := def.Encode(definition.FormatJSON)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "div3.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	out, _, err := run(t, "", "-f", path, "accepts", "11", "10")
	require.NoError(t, err)
	assert.Equal(t, "\"11\"\taccepted\n\"10\"\trejected\n", out)

	_, _, err = run(t, "", "-f", filepath.Join(t.TempDir(), "none.toml"), "count", "1")
	var defErr *definition.Error
	assert.True(t, errors.As(err, &defErr))
}

func TestFlagErrors(t *testing.T) {
	_, _, err := run(t, "", "--order", "sideways", "count", "1")
	assert.ErrorIs(t, err, dfa.ErrInvalidConfig)

	_, _, err = run(t, "", "-b", "nope", "count", "1")
	assert.ErrorIs(t, err, definition.ErrUnknownBuiltin)

	_, _, err = run(t, "", "--max-states", "3", "convert")
	assert.ErrorIs(t, err, dfa.ErrStateLimitExceeded)
}

func TestVerbose(t *testing.T) {
	_, stderr, err := run(t, "", "-v", "count", "1")
	require.NoError(t, err)
	assert.Contains(t, stderr, "loaded automaton")
	assert.Contains(t, stderr, "subset construction done")

	_, stderr, err = run(t, "", "count", "1")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "loaded automaton")
}

func TestLoggerFromContext(t *testing.T) {
	assert.Same(t, log.Default(), loggerFromContext(context.Background()))

	var buf bytes.Buffer
	l := newLogger(&buf, log.InfoLevel)
	assert.Same(t, l, loggerFromContext(withLogger(context.Background(), l)))

	newProgress(l).done("finished")
	assert.Contains(t, buf.String(), "finished")
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, isTerminal(&bytes.Buffer{}))
	assert.False(t, isTerminal(strings.NewReader("")))
}

func TestWriteCount(t *testing.T) {
	m := compileMod7(t)
	var out bytes.Buffer
	require.NoError(t, writeCount(context.Background(), &out, m, 20, false))
	want := new(big.Int).Exp(big.NewInt(10), big.NewInt(20), nil)
	want.Sub(want, big.NewInt(1)).Div(want, big.NewInt(7)).Add(want, big.NewInt(1))
	assert.Equal(t, "20\t"+want.String()+"\n", out.String())
}
