package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calebcase/fixedpoint"
)

// recip returns 1/v in the format of v.
func recip(v fixedpoint.Value) (fixedpoint.Value, error) {
	r, err := fixedpoint.Recip(v)
	if err != nil {
		return fixedpoint.Value{}, err
	}

	return r.Value(v.Format())
}

func newRecipCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "recip <decimal>",
		Short: "Reciprocal, rounded toward negative infinity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := e.parse(args[0])
			if err != nil {
				return err
			}

			q, err := recip(v)
			if err != nil {
				return err
			}

			e.log.Printf("1 / %s = %s (%s)", v, q, q.Hex())

			fmt.Fprintln(cmd.OutOrStdout(), e.text(q))

			return nil
		},
	}
}
