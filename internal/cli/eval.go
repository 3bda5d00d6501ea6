package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/calebcase/fixedpoint"
)

// ops are the binary operators understood by eval.
var ops = map[string]func(a, b fixedpoint.Value) (fixedpoint.Value, error){
	"+": fixedpoint.Value.Add,
	"-": fixedpoint.Value.Sub,
	"*": fixedpoint.Value.Mul,
	"/": fixedpoint.Value.Div,
}

func newEvalCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <a> <op> <b>",
		Short: "Evaluate a binary operation (+, -, *, /)",
		Long: `Evaluate a op b in the configured format. Negative operands must follow
a "--" so they are not read as flags:

  fixedpoint eval -- -1.5 '*' 2`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := e.expr(args)
			if err != nil {
				return err
			}

			e.log.Printf("%s = %s (%s)", strings.Join(args, " "), r.Hex(), r.Format())

			fmt.Fprintln(cmd.OutOrStdout(), e.text(r))

			return nil
		},
	}
}
