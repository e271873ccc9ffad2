// Package cmd implements the mobilepicker CLI commands.
//
// The root command loads settings through viper (a --config file, then
// MOBILEPICKER_* environment variables) and binds them to any flag the user
// did not set explicitly. Subcommands register themselves in init.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	pickererrors "github.com/go-drift/picker/pkg/errors"
	"github.com/go-drift/picker/pkg/logging"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

var (
	cfgFile  string
	logLevel string
	verbose  bool
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "mobilepicker",
		Short: "Mobile-style column pickers for the terminal",
		Long: `mobilepicker drives mobile-style scroll-and-snap column pickers.

Run one interactively in the terminal, replay a gesture script against it
on a virtual clock, or render it to a PNG.

Settings can come from a config file (--config, or .mobilepicker.yaml in
the home or current directory) and from MOBILEPICKER_* environment
variables. Flags given on the command line always win.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}
	c.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.mobilepicker.yaml)")
	c.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	c.PersistentFlags().BoolVar(&verbose, "verbose", false, "include stack traces when reporting recovered panics")
	return c
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return rootCmd.Execute()
}

func setup(cmd *cobra.Command, _ []string) error {
	if err := initConfig(); err != nil {
		return err
	}
	bindFlags(cmd)

	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	logger := logging.New(cmd.ErrOrStderr(), level)
	slog.SetDefault(logger)
	pickererrors.SetHandler(&pickererrors.LogHandler{Logger: logger, Verbose: verbose})
	return nil
}

func initConfig() error {
	v := viper.GetViper()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigName(".mobilepicker")
	}
	v.SetEnvPrefix("mobilepicker")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// bindFlags sets every flag the user did not pass from viper, when viper
// has a value for it. Config keys may use the flag name or drop its hyphens
// ("item-height" or "itemHeight"); viper compares case-insensitively.
func bindFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			return
		}
		for _, key := range []string{f.Name, strings.ReplaceAll(f.Name, "-", "")} {
			if !viper.IsSet(key) {
				continue
			}
			val := viper.Get(key)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				slog.Warn("ignoring config value", "flag", f.Name, "value", val, "err", err)
			}
			return
		}
	})
}
