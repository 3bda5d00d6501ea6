package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calebcase/fixedpoint"
)

func newSqrtCommand(e *env) *cobra.Command {
	var fast bool

	cmd := &cobra.Command{
		Use:   "sqrt <decimal>",
		Short: "Square root, rounded toward zero",
		Long: `Square root of a non negative number in the configured format.

With --fast the root is returned in the half width format Q((I+1)/2).((F+1)/2)
instead of the input format.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := e.parse(args[0])
			if err != nil {
				return err
			}

			sqrt := fixedpoint.Sqrt
			if fast {
				sqrt = fixedpoint.SqrtFast
			}

			r, err := sqrt(v)
			if err != nil {
				return err
			}

			e.log.Printf("sqrt %s (%s) = %s (%s)", v, v.Format(), r, r.Format())

			fmt.Fprintln(cmd.OutOrStdout(), e.text(r))

			return nil
		},
	}

	cmd.Flags().BoolVar(&fast, "fast", false, "return the root in the half width format")

	return cmd
}
