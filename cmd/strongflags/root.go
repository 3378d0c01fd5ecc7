package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/hupe1980/strongflags/internal/codegen"
)

type app struct {
	viper   *viper.Viper
	cfgFile string
	cfg     Config
	logger  *codegen.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{viper: viper.New()}

	cmd := &cobra.Command{
		Use:          "strongflags",
		Short:        "strongflags generates strongly typed flag sets",
		Long:         "strongflags turns an ordered list of flag names into a distinct Go flag-set type,\none constant bit index and one single-bit value per flag.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	cmd.AddGroup(&cobra.Group{
		ID:    "actions",
		Title: "Actions",
	})

	a.addPersistentFlags(cmd.PersistentFlags())
	cmd.AddCommand(
		newGenerateCmd(a),
		newCheckCmd(a),
		newVersionCmd(),
	)
	return cmd
}

func (a *app) addPersistentFlags(fs *pflag.FlagSet) {
	fs.StringVar(&a.cfgFile, "config", "", "config file (default is .strongflags.toml in the working or home directory)")
	fs.String("log-level", "info", "log level (debug, info, warn, error)")
	fs.String("log-format", logFormatText, "log format (text, json)")
	fs.Bool("no-color", false, "disable colored log output")
	fs.String("order", string(codegen.Descending), "default bit order (descending, ascending)")
	fs.Int("concurrency", 0, "declaration files generated in parallel (0 = GOMAXPROCS)")
}

func (a *app) init(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	for key, name := range map[string]string{
		"log.level":    "log-level",
		"log.format":   "log-format",
		"log.no_color": "no-color",
		"order":        "order",
		"concurrency":  "concurrency",
	} {
		if err := a.viper.BindPFlag(key, flags.Lookup(name)); err != nil {
			return err
		}
	}

	cfg, err := loadConfig(a.viper, a.cfgFile)
	if err != nil {
		return err
	}
	handler, err := newLogHandler(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = codegen.NewLogger(handler)
	return nil
}

func (a *app) generator() (*codegen.Generator, error) {
	order, err := codegen.ParseOrder(a.cfg.Order)
	if err != nil {
		return nil, err
	}
	return codegen.New(
		codegen.WithLogger(a.logger),
		codegen.WithOrder(order),
		codegen.WithConcurrency(a.cfg.Concurrency),
	), nil
}
