package main

import (
	"fmt"
	"os"

	"github.com/cuemby/flowsched/pkg/api"
	"github.com/cuemby/flowsched/pkg/config"
	"github.com/cuemby/flowsched/pkg/log"
	"github.com/spf13/cobra"
)

var (
	// Version information (set via ldflags during build)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flowsched",
	Short: "Flowsched - min-cost flow task scheduler",
	Long: `Flowsched places tasks onto servers by solving a minimum cost flow
problem over the cluster. Agents on every server run the tasks, report
their resource usage and the scheduler moves work to where it fits best.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"Flowsched version %s\nCommit: %s\nBuilt: %s\n",
		Version, Commit, BuildTime,
	))
	api.Version = Version

	rootCmd.PersistentFlags().String("config", "", "YAML configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Log in JSON")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Flowsched version %s\nCommit: %s\nBuilt: %s\n", Version, Commit, BuildTime)
	},
}

// initLogging applies the log flags over cfg and initializes the logger
func initLogging(cmd *cobra.Command, cfg config.LogConfig) error {
	if cmd.Flags().Changed("log-level") {
		cfg.Level, _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flags().Changed("log-json") {
		cfg.JSON, _ = cmd.Flags().GetBool("log-json")
	}

	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return err
	}
	log.Init(log.Config{Level: level, JSONOutput: cfg.JSON})
	return nil
}
