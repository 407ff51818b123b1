package layout

import "github.com/wudi/pdftree/observability"

// PageSize is a named paper size in points.
type PageSize struct{ Width, Height float32 }

// Named paper sizes, generalized from wudi-pdfkit's builder page-size
// constants (builder/builder.go) to this engine's page geometry.
var (
	A4 = PageSize{595, 842}
	A3 = PageSize{842, 1191}
	Letter = PageSize{612, 792}
)

// Config is the Engine's resolved configuration.
type Config struct {
	PageWidth, PageHeight float32
	MarginTop, MarginRight, MarginBottom, MarginLeft float32
	DefaultFont string
	Logger observability.Logger
}

// EngineOption configures a Config, mirroring wudi-pdfkit's
// layout.NewEngine(b, opts...) functional-options pattern
// (layout/config_test.go).
type EngineOption func(*Config)

// WithPageSize sets an explicit page size in points.
func WithPageSize(width, height float32) EngineOption {
	return func(c *Config) { c.PageWidth, c.PageHeight = width, height }
}

// WithPaperSize sets the page size from a named PageSize.
func WithPaperSize(p PageSize) EngineOption {
	return func(c *Config) { c.PageWidth, c.PageHeight = p.Width, p.Height }
}

// WithMargins sets the default page padding applied when the root page node
// declares none of its own.
func WithMargins(top, right, bottom, left float32) EngineOption {
	return func(c *Config) {
		c.MarginTop, c.MarginRight, c.MarginBottom, c.MarginLeft = top, right, bottom, left
	}
}

// WithDefaultFont records a default font name in Config.DefaultFont. The
// layout and render packages do not read it: text is always measured and
// drawn with one of the four Helvetica variants chosen by weight and style.
func WithDefaultFont(name string) EngineOption {
	return func(c *Config) { c.DefaultFont = name }
}

// WithLogger installs an observability.Logger for Debug-level trace points.
func WithLogger(l observability.Logger) EngineOption {
	return func(c *Config) { c.Logger = l }
}

func defaultConfig() Config {
	return Config{
		PageWidth: A4.Width,
		PageHeight: A4.Height,
		DefaultFont: "Helvetica",
		Logger: observability.NopLogger{},
	}
}
