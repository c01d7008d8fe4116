package main

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kydenul/probability"
)

// app holds state shared by every subcommand
type app struct {
	configFile string // Path of an explicit config file
	logLevel   string // Overrides engine.log_level when set

	engine *probability.Engine
}

// newRootCmd builds the probcalc command tree
func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:          "probcalc",
		Short:        "Exact probabilities over finite sample spaces",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", "Config file (default: probability.yaml in ., ./config or $HOME/.probability)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		a.newChooseCmd(),
		a.newEvalCmd(),
		a.newSimulateCmd(),
		a.newCardsCmd(),
		a.newDiceCmd(),
	)
	return rootCmd
}

// setup loads the configuration and builds the engine
func (a *app) setup() error {
	// A .env file may carry PROBABILITY_* overrides
	_ = godotenv.Load()

	cm := probability.NewConfigManager()
	if a.configFile != "" {
		cm.SetConfigFile(a.configFile)
	}
	config, err := cm.LoadConfig()
	if err != nil {
		return err
	}

	level := config.Engine.LogLevel
	if a.logLevel != "" {
		if _, err := logrus.ParseLevel(a.logLevel); err != nil {
			return probability.ErrConfigInvalid.WithDetails("log level %q", a.logLevel).WithCause(err)
		}
		level = a.logLevel
	}

	a.engine = probability.NewEngineWithConfigAndLogger(cm, probability.NewDefaultLogger(level))
	return nil
}
