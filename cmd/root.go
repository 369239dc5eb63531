package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/dahldesign/dahl-properties/plugin"
	"github.com/dahldesign/dahl-properties/props"
	"github.com/dahldesign/dahl-properties/telemetry"
)

var (
	// CLI flags for the replay host
	configPath    string // Plugin configuration YAML (optional)
	recordingPath string // Telemetry recording (.yaml/.yml/.cbor)
	logLevel      string // Log verbosity level
	logFile       string // Rotating log file, in addition to stderr
	dumpProps     bool   // Print every property after the replay
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "dahl-properties",
	Short: "Rate-multiplexed dashboard property publisher for racing telemetry",
}

// runCmd replays a telemetry recording through the plugin, acting as the dashboard host
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Replay a telemetry recording through the property scheduler",
	Run: func(cmd *cobra.Command, args []string) {
		if err := setupLogging(logLevel, logFile); err != nil {
			logrus.Fatalf("%v", err)
		}

		cfg := plugin.DefaultConfig()
		if configPath != "" {
			var err error
			if cfg, err = plugin.LoadConfig(configPath); err != nil {
				logrus.Fatalf("Unable to load config: %v", err)
			}
		}

		rec, err := telemetry.LoadRecording(recordingPath)
		if err != nil {
			logrus.Fatalf("Unable to load recording: %v", err)
		}

		store := props.NewStore()
		p, err := plugin.New(cfg, store, store)
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}

		res := plugin.Replay(p, rec)
		p.End()

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Session %s: %d frames, %d active, %d task errors\n", res.SessionID, res.Frames, res.Active, len(res.Errors))
		p.Metrics().Print(out)
		if dumpProps {
			printProperties(out, store.Snapshot())
		}
	},
}

// setupLogging applies the log level and, when path is set, tees log output
// into a size-rotated file.
func setupLogging(level, path string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logrus.SetLevel(lvl)
	if path != "" {
		logrus.SetOutput(io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   path,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
		}))
	}
	return nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	runCmd.Flags().StringVar(&configPath, "config", "", "Path to plugin config YAML (defaults when empty)")
	runCmd.Flags().StringVar(&recordingPath, "recording", "", "Path to telemetry recording (.yaml, .yml or .cbor)")
	runCmd.Flags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&logFile, "log-file", "", "Also write logs to this file, rotated at 10MB")
	runCmd.Flags().BoolVar(&dumpProps, "dump", false, "Print all property values after the replay")
	_ = runCmd.MarkFlagRequired("recording")

	rootCmd.AddCommand(runCmd)
}
