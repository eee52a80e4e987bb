package cli

import (
	"github.com/spf13/cobra"
	"github.com/zeebo/errs"

	"github.com/calebcase/csd"
)

// NewToDecimalCommand creates the to_decimal command.
func NewToDecimalCommand(rootOpts *RootOptions) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "to_decimal <csd>",
		Short: "Decode a CSD string",
		Long: `Decode a canonical CSD string and print its value in the shortest
form that reads back exactly.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToDecimal(rootOpts, kind, args, cmd)
		},
	}

	kindFlag(cmd, &kind, csd.Float64)

	return cmd
}

func runToDecimal(opts *RootOptions, kindName string, args []string, cmd *cobra.Command) error {
	if len(args) < 1 {
		return errs.New("to_decimal requires a CSD string")
	}

	kind, err := csd.ParseKind(kindName)
	if err != nil {
		return err
	}

	v, err := csd.Decode(args[0], kind)
	if err != nil {
		return err
	}

	return opts.formatter(cmd).Success(Result{
		Input:  args[0],
		Output: v.String(),
		Kind:   kind.String(),
	})
}
