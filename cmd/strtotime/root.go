// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gitlab.com/fisherprime/strtotime"
)

const envPrefix = "strtotime"

// Configuration keys, also readable as STRTOTIME_<KEY> environment variables.
const (
	keyDebug = "debug"
	keyNow   = "now"
	keyTZ    = "tz"
)

var logger = logrus.New()

func newRootCmd() *cobra.Command {
	cfg := viper.New()

	rootCmd := &cobra.Command{
		Use:          "strtotime",
		Short:        "Parse free-form date/time strings",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadConfig(cfg, cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String(keyTZ, "", "default zone for zone-less input (name, alias or offset)")
	flags.Int64(keyNow, 0, "unix time standing in for the current instant")
	flags.Bool(keyDebug, false, "log grammar trials & parse state")

	rootCmd.AddCommand(newParseCmd(cfg))
	rootCmd.AddCommand(newTokensCmd())
	rootCmd.AddCommand(newZonesCmd())
	rootCmd.AddCommand(newFormatCmd(cfg))
	rootCmd.AddCommand(newMktimeCmd(cfg))

	return rootCmd
}

// loadConfig layers flags over STRTOTIME_* environment variables, a .env file feeding the latter.
func loadConfig(cfg *viper.Viper, cmd *cobra.Command) error {
	if err := godotenv.Load(); err != nil {
		logger.WithError(err).Trace(".env not loaded")
	}

	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cfg.AutomaticEnv()

	if err := cfg.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}

	logger.SetOutput(cmd.ErrOrStderr())
	if cfg.GetBool(keyDebug) {
		logger.SetLevel(logrus.DebugLevel)
	}
	strtotime.SetLogger(logger)

	return nil
}

// location resolves the configured default zone, time.Local when unset.
func location(cfg *viper.Viper) (*time.Location, error) {
	tz := cfg.GetString(keyTZ)
	if tz == "" {
		return time.Local, nil
	}

	return strtotime.ResolveZone(tz)
}

// newParser builds a strtotime.Parser from the configuration.
func newParser(cfg *viper.Viper) (*strtotime.Parser, error) {
	loc, err := location(cfg)
	if err != nil {
		return nil, err
	}

	options := []strtotime.Option{
		strtotime.WithLocation(loc),
		strtotime.WithDebug(cfg.GetBool(keyDebug)),
		strtotime.WithLogger(logger),
	}
	if cfg.IsSet(keyNow) {
		options = append(options, strtotime.WithNow(time.Unix(cfg.GetInt64(keyNow), 0)))
	}

	return strtotime.New(options...), nil
}
