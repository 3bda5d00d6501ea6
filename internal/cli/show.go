package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newShowCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "show <decimal>",
		Short: "Show how a number is represented",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := e.parse(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "decimal: %s\n", e.text(v))
			fmt.Fprintf(out, "hex:     %s\n", v.Hex())
			fmt.Fprintf(out, "float:   %s\n", strconv.FormatFloat(v.Float64(), 'g', -1, 64))
			fmt.Fprintf(out, "format:  %s (%s)\n", v.Format(), v.Format().Kind())

			return nil
		},
	}
}
