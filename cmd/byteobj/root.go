package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/deepnoodle-ai/byteobj"
	"github.com/deepnoodle-ai/byteobj/config"
)

// app holds the state shared by all subcommands.
type app struct {
	v      *viper.Viper
	out    io.Writer
	errOut io.Writer
	cfg    config.Config
	logger zerolog.Logger
	rt     *byteobj.Runtime
}

func newRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{v: viper.New(), out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "byteobj",
		Short:         "Construct and inspect immutable bytes objects",
		Version:       fmt.Sprintf("%s (%s, %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "Path to a TOML config file (default "+config.DefaultPath+")")
	flags.StringP("output", "o", "", "Output format: text, json or cbor")
	flags.Bool("no-color", false, "Disable colored output")
	flags.String("log-level", "", "Log level: trace, debug, info, warn or error")
	flags.Int64("max-size", 0, "Largest bytes object that may be constructed")
	_ = root.RegisterFlagCompletionFunc("output", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{config.OutputText, config.OutputJSON, config.OutputCBOR}, cobra.ShellCompDirectiveNoFileComp
	})

	a.v.SetEnvPrefix("BYTEOBJ")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	_ = a.v.BindPFlags(flags)

	root.AddCommand(
		a.reprCommand(),
		a.lenCommand(),
		a.hashCommand(),
		a.iterCommand(),
		a.compareCommand(),
		a.hexCommand(),
		a.classesCommand(),
	)
	root.SetOut(out)
	root.SetErr(errOut)
	return root
}

// setup merges the config file with flags and environment variables, then
// creates the logger and runtime.
func (a *app) setup() error {
	cfg, err := config.Load(a.v.GetString("config"))
	if err != nil {
		return err
	}
	if level := a.v.GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}
	if output := a.v.GetString("output"); output != "" {
		cfg.Output = strings.ToLower(output)
	}
	if size := a.v.GetInt64("max-size"); size != 0 {
		cfg.MaxBytesSize = size
	}
	if a.v.GetBool("no-color") {
		cfg.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = zerolog.New(zerolog.ConsoleWriter{Out: a.errOut, NoColor: !cfg.Color}).
		With().Timestamp().Logger()
	a.rt = byteobj.New(cfg.Options(a.logger)...)
	a.logger.Debug().Str("runtime", a.rt.ID().String()).Str("output", cfg.Output).Msg("ready")
	return nil
}

func (a *app) context(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return a.rt.Context(ctx)
}
