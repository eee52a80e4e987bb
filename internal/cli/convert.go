package cli

import (
	"math/big"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/zeebo/errs"

	"github.com/calebcase/csd"
)

func parseValue(s string, k csd.Kind) (csd.Value, error) {
	switch k {
	case csd.Int32:
		i, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return csd.Value{}, parseError(err)
		}

		return csd.FromInt32(int32(i)), nil
	case csd.Int64:
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return csd.Value{}, parseError(err)
		}

		return csd.FromInt64(i), nil
	case csd.Int128:
		i, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return csd.Value{}, errs.New("Error parsing value: invalid int128 %q", s)
		}

		v, err := csd.FromInt128(i)
		if err != nil {
			return csd.Value{}, parseError(err)
		}

		return v, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return csd.Value{}, parseError(err)
	}

	return csd.FromFloat64(f), nil
}

func parseError(err error) error {
	return errs.New("Error parsing value: %v", err)
}

// optionalCount parses the optional second argument, falling back to def.
func optionalCount(args []string, def int) (int, error) {
	if len(args) < 2 {
		return def, nil
	}

	n, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, parseError(err)
	}

	return n, nil
}

func kindFlag(cmd *cobra.Command, kind *string, def csd.Kind) {
	cmd.Flags().StringVarP(kind, "kind", "k", def.String(), "numeric kind (int32|int64|int128|float64)")
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Config.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
	}
}
