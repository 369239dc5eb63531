package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dahldesign/dahl-properties/props"
)

// propertiesCmd lists the declaration table without running anything
var propertiesCmd = &cobra.Command{
	Use:   "properties",
	Short: "List every declared dashboard property with its initial value",
	Run: func(cmd *cobra.Command, args []string) {
		table, err := props.Table()
		if err != nil {
			logrus.Fatalf("Unable to load property table: %v", err)
		}
		values := make([]props.Value, 0, len(table))
		for _, p := range table {
			values = append(values, props.Value{Name: p.Name, Value: p.Initial, Description: p.Description})
		}
		printProperties(cmd.OutOrStdout(), values)
	},
}

// printProperties writes one aligned row per property.
func printProperties(w io.Writer, values []props.Value) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tVALUE\tDESCRIPTION")
	for _, v := range values {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", v.Name, formatValue(v.Value), v.Description)
	}
	_ = tw.Flush()
}

func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "-"
	case string:
		return fmt.Sprintf("%q", x)
	case time.Duration:
		return x.String()
	case float64:
		return fmt.Sprintf("%.2f", x)
	}
	return fmt.Sprint(v)
}

func init() {
	rootCmd.AddCommand(propertiesCmd)
}
