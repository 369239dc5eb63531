package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dahldesign/dahl-properties/telemetry"
)

var (
	convertIn  string
	convertOut string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a telemetry recording between YAML and CBOR",
	Long:  "Convert a telemetry recording. Formats are chosen by file extension (.yaml/.yml or .cbor). Without --out the result is written to stdout as YAML.",
	Run: func(cmd *cobra.Command, args []string) {
		if err := convertRecording(convertIn, convertOut); err != nil {
			logrus.Fatalf("Conversion failed: %v", err)
		}
	},
}

// convertRecording re-encodes the recording at in into the format implied by
// out. An empty out writes YAML to stdout.
func convertRecording(in, out string) error {
	rec, err := telemetry.LoadRecording(in)
	if err != nil {
		return err
	}
	if out == "" {
		return rec.Encode(os.Stdout, telemetry.FormatYAML)
	}
	format, err := telemetry.FormatFromPath(out)
	if err != nil {
		return err
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", out, err)
	}
	if err := rec.Encode(f, format); err != nil {
		_ = f.Close()
		return err
	}
	logrus.Infof("Wrote %d samples to %s", len(rec.Samples), out)
	return f.Close()
}

func init() {
	convertCmd.Flags().StringVar(&convertIn, "in", "", "Input recording")
	convertCmd.Flags().StringVar(&convertOut, "out", "", "Output recording (stdout YAML when empty)")
	_ = convertCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(convertCmd)
}
