package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/calebcase/fixedpoint"
)

// unary are the single operand functions understood by batch.
var unary = map[string]func(fixedpoint.Value) (fixedpoint.Value, error){
	"sqrt":  fixedpoint.Sqrt,
	"recip": recip,
	"neg":   fixedpoint.Value.Neg,
	"abs":   fixedpoint.Value.Abs,
}

// line is one expression of a batch.
type line struct {
	n      int
	fields []string
}

// expr evaluates "a op b" or "fn a".
func (e *env) expr(fields []string) (fixedpoint.Value, error) {
	switch len(fields) {
	case 2:
		fn, ok := unary[fields[0]]
		if !ok {
			return fixedpoint.Value{}, Error.New("unknown function %q", fields[0])
		}

		a, err := e.parse(fields[1])
		if err != nil {
			return fixedpoint.Value{}, err
		}

		return fn(a)
	case 3:
		op, ok := ops[fields[1]]
		if !ok {
			return fixedpoint.Value{}, Error.New("unknown operator %q", fields[1])
		}

		a, err := e.parse(fields[0])
		if err != nil {
			return fixedpoint.Value{}, err
		}

		b, err := e.parse(fields[2])
		if err != nil {
			return fixedpoint.Value{}, err
		}

		return op(a, b)
	default:
		return fixedpoint.Value{}, Error.New("expected \"a op b\" or \"fn a\", got %d fields", len(fields))
	}
}

// readLines collects the expressions of r, skipping blank lines and lines
// starting with '#'.
func readLines(r io.Reader) (lines []line, err error) {
	s := bufio.NewScanner(r)
	for n := 1; s.Scan(); n++ {
		text := strings.TrimSpace(s.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		lines = append(lines, line{n: n, fields: strings.Fields(text)})
	}

	return lines, s.Err()
}

// batch evaluates lines with at most workers concurrent evaluations. Results
// keep the order of lines. The first failure cancels the remaining work.
func (e *env) batch(ctx context.Context, lines []line, workers int) ([]fixedpoint.Value, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]fixedpoint.Value, len(lines))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, l := range lines {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			v, err := e.expr(l.fields)
			if err != nil {
				return fmt.Errorf("line %d: %w", l.n, err)
			}

			results[i] = v

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func newBatchCommand(e *env) *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "Evaluate one expression per line",
		Long: `Evaluate the expressions in file (or standard input), one per line, and
print one result per line in the same order. A line is either "a op b" with
op one of +, -, *, / or "fn a" with fn one of sqrt, recip, neg, abs. Blank
lines and lines starting with # are skipped.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return Error.Wrap(err)
				}
				defer f.Close()

				in = f
			}

			lines, err := readLines(in)
			if err != nil {
				return Error.Wrap(err)
			}

			e.log.Printf("batch of %d expressions, %d workers", len(lines), workers)

			results, err := e.batch(cmd.Context(), lines, workers)
			if err != nil {
				return err
			}

			w := bufio.NewWriter(cmd.OutOrStdout())
			for _, v := range results {
				fmt.Fprintln(w, e.text(v))
			}

			return w.Flush()
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "j", 0, "concurrent evaluations (0 uses GOMAXPROCS)")

	return cmd
}
