// Package cmd provides the command-line interface for drill with
// configuration from multiple sources.
//
// Configuration precedence, highest first:
//
//  1. Command-line flags (--config, --log-level)
//  2. DRILL_CONFIG_FILE environment variable - custom config file path
//  3. Individual environment variables (DRILL_SERVER_PORT, etc.)
//  4. Configuration file (.drill.yml)
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "drill",
	Short: "Runnable practice drills for core language semantics",
	Long: `Drill is a practice tool: a catalog of small runnable exercises on
value-object validation, defensive copying, fail-fast iteration, scoped
file I/O and encoding semantics, each with a recorded transcript the tool
can verify, plus a set of study notes.

Quick Start:
  drill list                      List all drills
  drill run overdraft             Run one drill
  drill verify                    Re-run every drill against its transcript
  drill notes                     List study notes
  drill serve                     Browse notes and drills in the browser

Command Aliases (for faster typing):
  list (l), run (r), verify (v), notes (n), serve (s)`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .drill.yml, can also use DRILL_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig wires viper's config sources. A missing config file is not
// an error; the tool degrades to defaults.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("DRILL_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".drill")
	}

	viper.SetEnvPrefix("DRILL")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
