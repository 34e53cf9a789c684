package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/grindlemire/go-minsize/internal/layout"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const longRoot = `minsize computes minimum sizes for trees of layout items.

Trees are YAML or JSON documents. Every item has a kind (plain, column or
row), spacing, margins and optional minimumWidth/minimumHeight hints.

Settings come from flags, MINSIZE_* environment variables and an optional
config file, in that order of precedence. Set MINSIZE_DEBUG to a path to
append debug logs there.`

// app carries state shared by all subcommands.
type app struct {
	out, errOut io.Writer
	v           *viper.Viper
	cfgFile     string

	cfg      config
	logger   *log.Logger
	measurer *layout.Measurer
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut, v: newViper()}

	root := &cobra.Command{
		Use:           "minsize",
		Short:         "Compute minimum sizes of layout trees",
		Long:          longRoot,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (YAML, JSON or TOML)")
	flags.String("log-level", "warn", "log level: debug, info, warn, error")
	flags.Bool("clamp-empty", false, "treat spacing of stacks without children as 0 instead of -spacing")
	flags.Bool("strict", false, "validate trees before measuring")
	flags.Bool("column-layout", true, "column stacks are available in the host environment")
	flags.Bool("row-layout", true, "row stacks are available in the host environment")

	a.bind("log_level", flags.Lookup("log-level"))
	a.bind("clamp_empty", flags.Lookup("clamp-empty"))
	a.bind("strict", flags.Lookup("strict"))
	a.bind("capabilities.column", flags.Lookup("column-layout"))
	a.bind("capabilities.row", flags.Lookup("row-layout"))

	root.AddCommand(
		newMeasureCmd(a),
		newTreeCmd(a),
		newCheckCmd(a),
		newBoundCmd(a),
		newVersionCmd(a),
	)
	return root
}

// bind ties a viper key to a flag. BindPFlag only fails on a nil flag,
// which is a programming error.
func (a *app) bind(key string, flag *pflag.Flag) {
	if err := a.v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("binding %s: %v", key, err))
	}
}

func (a *app) setup() error {
	cfg, err := loadConfig(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	logger, err := cfg.logger(a.errOut)
	if err != nil {
		return err
	}
	m, err := cfg.measurer(logger)
	if err != nil {
		return err
	}
	a.cfg, a.logger, a.measurer = cfg, logger, m
	logger.Debug("configured", "axis", cfg.Axis, "clamp_empty", cfg.ClampEmpty, "strict", cfg.Strict)
	return nil
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(a.out, "minsize version %s\n", version)
			return err
		},
	}
}
