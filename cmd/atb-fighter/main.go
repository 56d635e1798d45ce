// Package main is the entry point for the ATB battle screen
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lixenwraith/atb-fighter/config"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "atb-fighter",
	Short: "Active time battle selection screen",
	Long: `atb-fighter runs an active time battle in the terminal: readiness clocks fill
in real time while actions are chosen through actor, command, variant and target menus.`,
	SilenceUsage: true,
	RunE:         runBattle,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (toml, yaml or json)")
	flags.String("log-level", "info", "log level: trace, debug, info, warn, error, off")
	flags.String("log-file", "", "log file path; logging is off when empty")
	flags.String("roster", "", "roster YAML file; built-in parties when empty")
	flags.Duration("tick", 0, "frame tick interval (e.g. 200ms)")
	flags.Bool("consume", false, "spend the variant mana and time cost when an action resolves")
	flags.Bool("no-audio", false, "disable sound cues")
	flags.Bool("metrics", false, "export OpenTelemetry metrics to metrics.file or the log file")

	rootCmd.AddCommand(versionCmd)
}

// bindFlags maps explicitly set flags onto their config keys
func bindFlags(cmd *cobra.Command) {
	flags := cmd.Root().PersistentFlags()
	bind := map[string]string{
		"log-level": config.KeyLogLevel,
		"log-file":  config.KeyLogFile,
		"roster":    config.KeyRoster,
		"tick":      config.KeyTickInterval,
		"consume":   config.KeyConsumeOnResolve,
		"metrics":   config.KeyMetricsEnabled,
	}
	for name, key := range bind {
		if f := flags.Lookup(name); f != nil && f.Changed {
			viper.Set(key, f.Value.String())
		}
	}
	if noAudio, _ := flags.GetBool("no-audio"); noAudio {
		viper.Set(config.KeyAudioEnabled, false)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
