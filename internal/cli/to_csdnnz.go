package cli

import (
	"github.com/spf13/cobra"
	"github.com/zeebo/errs"
	"go.uber.org/zap"

	"github.com/calebcase/csd"
)

// NewToCSDNNZCommand creates the to_csdnnz command.
func NewToCSDNNZCommand(rootOpts *RootOptions) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "to_csdnnz <value> [nnz]",
		Short: "Encode a value with at most [nnz] non-zero digits",
		Long: `Encode a value as the closest CSD string with at most [nnz] non-zero
digits (default from the config file, otherwise 4).`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToCSDNNZ(rootOpts, kind, args, cmd)
		},
	}

	kindFlag(cmd, &kind, csd.Float64)

	return cmd
}

func runToCSDNNZ(opts *RootOptions, kindName string, args []string, cmd *cobra.Command) error {
	if len(args) < 1 {
		return errs.New("to_csdnnz requires a value")
	}

	kind, err := csd.ParseKind(kindName)
	if err != nil {
		return err
	}

	v, err := parseValue(args[0], kind)
	if err != nil {
		return err
	}

	nnz, err := optionalCount(args, int(opts.Config.NonZeros))
	if err != nil {
		return err
	}

	if nnz < 0 {
		return errs.New("Error parsing value: negative non-zero count %d", nnz)
	}

	var out string
	if kind == csd.Float64 {
		out, err = csd.NewBuilder(v.Float64()).MaxNonZeros(uint(nnz)).Build()
	} else {
		out, err = csd.Encode(v, csd.MaxNonZeros{K: uint(nnz)})
	}
	if err != nil {
		return err
	}

	opts.Logger.Debug("to_csdnnz",
		zap.String("value", args[0]),
		zap.Int("nnz", nnz),
		zap.String("csd", out),
	)

	return opts.formatter(cmd).Success(Result{
		Input:  args[0],
		Output: out,
		Kind:   kind.String(),
	})
}
