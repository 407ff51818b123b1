// Command server exposes the layout/render pipeline over HTTP: POST a JSON
// node tree to /render-pdf, get back a PDF. This mirrors the
// original Rust service's axum + tower-http CORS setup
// (original_source/src/main.rs), with a small cobra root command in the
// shape of speier-smith's CLI (internal/cli/root.go):
// running with no subcommand behaves like `serve`, and `render` is added
// as a second, ops-facing subcommand for rendering a node tree from disk
// without standing up a listener.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use: "pdftree-server",
	Short: "Render JSON node trees into paginated PDFs",
	Long: `pdftree-server exposes the measure/place/table/paginate layout
engine over HTTP: POST a JSON node tree to /render-pdf and get
back PDF bytes.

Running with no subcommand is equivalent to "serve".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd, args)
	},
	SilenceErrors: true,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serveAddr, "addr", "", "listen address (overrides config file)")
	rootCmd.PersistentFlags().StringVar(&serveConfigPath, "config", "", "path to a YAML config file (config.Load)")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(renderCmd)
}

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "pdftree-server: %v\n", err)
		os.Exit(1)
	}
}
