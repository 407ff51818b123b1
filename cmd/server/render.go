package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wudi/pdftree/config"
	"github.com/wudi/pdftree/layout"
	"github.com/wudi/pdftree/node"
	"github.com/wudi/pdftree/observability"
	"github.com/wudi/pdftree/render"
)

var (
	renderIn string
	renderOut string
)

var renderCmd = &cobra.Command{
	Use: "render",
	Short: "Render a JSON node tree file to a PDF file",
	Long: `Render reads the same {"root": <node>} document the HTTP service
accepts from --in, runs it through the measure/place/paginate engine, and
writes the resulting PDF to --out. Useful for local testing and scripted
document generation without a running server.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderIn, "in", "", "path to the JSON node tree file (required)")
	renderCmd.Flags().StringVar(&renderOut, "out", "out.pdf", "path to write the rendered PDF")
	renderCmd.MarkFlagRequired("in")
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(serveConfigPath)
	if err != nil {
		return err
	}

	body, err := os.ReadFile(renderIn)
	if err != nil {
		return fmt.Errorf("render: read %s: %w", renderIn, err)
	}

	root, err := node.Decode(body)
	if err != nil {
		return fmt.Errorf("render: decode: %w", err)
	}

	logger := observability.NewStdLoggerLevel(cfg.LogLevel)
	engine := layout.NewEngine(
		layout.WithLogger(logger),
		layout.WithPaperSize(resolvePaperSize(cfg.PaperSize)),
		layout.WithDefaultFont(cfg.DefaultFont),
		layout.WithMargins(cfg.Margins.Top, cfg.Margins.Right, cfg.Margins.Bottom, cfg.Margins.Left),
	)
	pages := engine.Render(root)

	pdf, err := render.Render(pages, render.Options{Logger: logger})
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if err := os.WriteFile(renderOut, pdf, 0o644); err != nil {
		return fmt.Errorf("render: write %s: %w", renderOut, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes, %d pages)\n", renderOut, len(pdf), len(pages))
	return nil
}
