// Package tool implements the matchtool CLI: demo-event seeding and a
// terminal view of the dashboard row set, both talking to a running
// matchboard server.
package tool

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var baseURL string

var rootCmd = &cobra.Command{
	Use:   "matchtool",
	Short: "matchboard operator tool",
	Long:  "Seed demo events into a running matchboard server and inspect the derived player rows.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "base URL of the matchboard server")

	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(rowsCmd)
}
