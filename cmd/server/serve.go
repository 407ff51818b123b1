package main

import (
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/wudi/pdftree/config"
	"github.com/wudi/pdftree/layout"
	"github.com/wudi/pdftree/node"
	"github.com/wudi/pdftree/observability"
	"github.com/wudi/pdftree/render"
)

var (
	serveAddr string
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use: "serve",
	Short: "Run the HTTP render service",
	Long: `Start the POST /render-pdf HTTP server.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(serveConfigPath)
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}

	logger := observability.NewStdLoggerLevel(cfg.LogLevel)
	engineOpts := []layout.EngineOption{
		layout.WithLogger(logger),
		layout.WithPaperSize(resolvePaperSize(cfg.PaperSize)),
		layout.WithDefaultFont(cfg.DefaultFont),
		layout.WithMargins(cfg.Margins.Top, cfg.Margins.Right, cfg.Margins.Bottom, cfg.Margins.Left),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", handleHealthz)
	mux.HandleFunc("/render-pdf", handleRenderPDF(logger, engineOpts))

	logger.Info("server: listening", observability.String("addr", cfg.Addr))
	return http.ListenAndServe(cfg.Addr, withCORS(mux))
}

func resolvePaperSize(name config.PaperSize) layout.PageSize {
	switch name {
	case config.A3:
		return layout.A3
	case config.Letter:
		return layout.Letter
	default:
		return layout.A4
	}
}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "ok")
}

func handleRenderPDF(logger observability.Logger, engineOpts []layout.EngineOption) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, fmt.Sprintf("read body: %v", err), http.StatusBadRequest)
			return
		}

		root, err := node.Decode(body)
		if err != nil {
			logger.Warn("render-pdf: decode failed", observability.Error("err", err))
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		engine := layout.NewEngine(engineOpts...)
		pages := engine.Render(root)

		pdf, err := render.Render(pages, render.Options{Logger: logger})
		if err != nil {
			logger.Error("render-pdf: render failed", observability.Error("err", err))
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.WriteHeader(http.StatusOK)
		w.Write(pdf)
	}
}

// withCORS permits all origins and headers and the GET, POST and OPTIONS
// methods, in the spirit of the original's
// tower_http::cors::CorsLayer::new.allow_origin(Any).
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
