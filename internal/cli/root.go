package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/zeebo/errs"

	"github.com/calebcase/fixedpoint"
	"github.com/calebcase/fixedpoint/internal/config"
)

// Error is the class of command errors.
var Error = errs.Class("cli")

// Version is reported by the version command.
var Version = "0.1.0-dev"

// env is the state shared by every command of one invocation.
type env struct {
	configFile string

	cfg    *config.Config
	format fixedpoint.Format
	log    *log.Logger
}

// parse reads s in the configured format.
func (e *env) parse(s string) (fixedpoint.Value, error) {
	v, ok := fixedpoint.Parse(e.format, s)
	if !ok {
		return fixedpoint.Value{}, Error.New("cannot read %q as %s", s, e.format)
	}

	return v, nil
}

// text renders v with the configured precision.
func (e *env) text(v fixedpoint.Value) string {
	return v.Text(e.cfg.Precision, e.cfg.ZeroPad)
}

// NewRootCommand returns the fixedpoint command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:   "fixedpoint",
		Short: "Deterministic binary fixed point arithmetic",
		Long: `fixedpoint reads decimal numbers into a binary fixed point format
(QI.F: I integer bits including the sign, F fractional bits) and evaluates
them with the same bit exact operations as the library.

Settings are read from defaults, an optional configuration file,
FIXEDPOINT_ environment variables and flags, in increasing priority.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			e.cfg, err = config.Load(e.configFile, cmd.Flags())
			if err != nil {
				return err
			}

			e.format, err = e.cfg.ParseFormat()
			if err != nil {
				return err
			}

			out := io.Discard
			if e.cfg.Verbose {
				out = cmd.ErrOrStderr()
			}
			e.log = log.New(out, "fixedpoint: ", 0)

			if file := e.cfg.File(); file != "" {
				e.log.Printf("config file %s", file)
			}
			e.log.Printf("format %s, precision %d, zero pad %t", e.format, e.cfg.Precision, e.cfg.ZeroPad)

			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&e.configFile, "config", "", "configuration file path")
	pf.StringP("format", "f", "16.16", "number format as I.F or QI.F")
	pf.IntP("prec", "p", -1, "fractional digits to print (negative selects the digits F resolves)")
	pf.Bool("zero-pad", false, "keep trailing zeros")
	pf.BoolP("verbose", "v", false, "verbose logging")

	root.AddCommand(
		newShowCommand(e),
		newSqrtCommand(e),
		newRecipCommand(e),
		newEvalCommand(e),
		newBatchCommand(e),
		newVersionCommand(),
	)

	return root
}

// Execute runs the root command with the process arguments and exits non
// zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
