package cli

import (
	"github.com/spf13/cobra"
	"github.com/zeebo/errs"
	"go.uber.org/zap"

	"github.com/calebcase/csd"
)

// NewToCSDCommand creates the to_csd command.
func NewToCSDCommand(rootOpts *RootOptions) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "to_csd <value> [places]",
		Short: "Encode a value with a fixed number of fractional digits",
		Long: `Encode a value as a CSD string.

Floating point values are written with exactly [places] fractional digits
(default from the config file, otherwise 4). Integer kinds are exact and
ignore [places].`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToCSD(rootOpts, kind, args, cmd)
		},
	}

	kindFlag(cmd, &kind, csd.Float64)

	return cmd
}

func runToCSD(opts *RootOptions, kindName string, args []string, cmd *cobra.Command) error {
	if len(args) < 1 {
		return errs.New("to_csd requires a value")
	}

	kind, err := csd.ParseKind(kindName)
	if err != nil {
		return err
	}

	v, err := parseValue(args[0], kind)
	if err != nil {
		return err
	}

	places, err := optionalCount(args, opts.Config.Places)
	if err != nil {
		return err
	}

	var out string
	if kind == csd.Float64 {
		out, err = csd.NewBuilder(v.Float64()).Places(places).Build()
	} else {
		out, err = csd.Encode(v, csd.FixedPlaces{})
	}
	if err != nil {
		return err
	}

	opts.Logger.Debug("to_csd",
		zap.String("value", args[0]),
		zap.Int("places", places),
		zap.String("csd", out),
	)

	return opts.formatter(cmd).Success(Result{
		Input:  args[0],
		Output: out,
		Kind:   kind.String(),
	})
}
