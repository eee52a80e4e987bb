package cli

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/calebcase/csd"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Verbose    bool
	Format     string // "json" | "text"
	LogLevel   string

	// Config is resolved before any subcommand runs.
	Config Config

	Logger *zap.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// RegisterFlags adds the global flags to fs.
func (o *RootOptions) RegisterFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.ConfigPath, "config", "", "YAML file with command defaults")
	fs.BoolVarP(&o.Verbose, "verbose", "v", false, "verbose output")
	fs.StringVar(&o.Format, "format", "text", "output format (json|text)")
	fs.StringVar(&o.LogLevel, "log-level", "", "log level (debug|info|warn|error)")
}

// resolve merges the config file and the flags that were set explicitly.
// Flags win over the file, the file wins over the defaults.
func (o *RootOptions) resolve(fs *pflag.FlagSet, stderr io.Writer) error {
	o.Config = DefaultConfig()

	if o.ConfigPath != "" {
		cfg, err := LoadConfig(o.ConfigPath)
		if err != nil {
			return err
		}

		o.Config = *cfg
	}

	if fs.Changed("format") {
		o.Config.Format = o.Format
	}

	if fs.Changed("log-level") {
		o.Config.LogLevel = o.LogLevel
	}

	if !isValidFormat(o.Config.Format) {
		return ConfigError.New("invalid format %q: must be one of %v", o.Config.Format, ValidFormats)
	}

	level, err := zapcore.ParseLevel(o.Config.LogLevel)
	if err != nil {
		return ConfigError.New("invalid log level %q", o.Config.LogLevel)
	}

	if o.Verbose {
		level = zapcore.DebugLevel
	}

	o.Logger = newLogger(level, stderr)
	csd.SetLogger(o.Logger.Named("csd"))

	return nil
}

func newLogger(level zapcore.Level, w io.Writer) *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())

	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), level))
}

// NewRootCommand creates the root command for the csd CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "csd",
		Short: "Canonical Signed Digit converter",
		Long: `Convert numbers to and from Canonical Signed Digit (CSD) strings.

A CSD string uses the digits '+' (+1), '0' and '-' (-1) with no two
non-zero digits adjacent, e.g. +00-00.+ = 32 - 4 + 0.5 = 28.5.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd.Flags(), cmd.ErrOrStderr())
		},
	}

	opts.RegisterFlags(cmd.PersistentFlags())

	cmd.AddCommand(NewToCSDCommand(opts))
	cmd.AddCommand(NewToCSDNNZCommand(opts))
	cmd.AddCommand(NewToDecimalCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
