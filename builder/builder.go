// Package builder is a minimal fluent PDF content builder, adapted from the
// teacher's builder.PDFBuilder/PageBuilder shape (NewPage/DrawText/Finish)
// but generalized from a naive single unescaped Tj into the drawing
// primitives the render package needs to turn a placed layout tree into
// page content: text runs, filled/stroked rectangles (borders,
// backgrounds, table rules), and raster images. It only ever targets the
// four standard, non-embedded Helvetica base fonts: no
// font subsetting or glyph shaping pipeline is needed.
package builder

import "fmt"

// Rectangle is an axis-aligned box in PDF user space (origin bottom-left).
type Rectangle struct{ LLX, LLY, URX, URY float64 }

// Color is RGB in [0,1] plus alpha; matches style.Color's resolved form.
type Color struct{ R, G, B, A float64 }

// Font identifies one of the four standard Helvetica base fonts by name
// (e.g. "Helvetica", "Helvetica-Bold", "Helvetica-Oblique",
// "Helvetica-BoldOblique"); no FontFile is ever embedded.
type Font struct {
	BaseFont string
}

// Image is decoded raster data ready to embed as an XObject.
type Image struct {
	Width, Height int
	BitsPerComponent int
	ColorSpace string // "DeviceRGB" or "DeviceGray"
	Data []byte // raw samples, row-major, not yet filtered
	SMaskData []byte // optional alpha channel, DeviceGray
}

// TextOptions configures one DrawText call. Callers pass one already
// wrapped line at a time; wrapping itself is the layout package's job.
type TextOptions struct {
	Font Font
	FontSize float64
	Color Color
}

// RectOptions configures one DrawRect call.
type RectOptions struct {
	Fill bool
	Stroke bool
	FillColor Color
	StrokeColor Color
	LineWidth float64
}

// ImageOptions configures one DrawImage call.
type ImageOptions struct {
	Opacity float64 // 1 = opaque; 0 draws nothing
}

// Document is the built-up, renderer-ready document: one or more pages,
// each with its own content stream and resource set.
type Document struct {
	Pages []*Page
}

// Page holds one page's content stream operators and the resources
// (fonts, images) referenced from it.
type Page struct {
	MediaBox Rectangle
	ops []byte
	Fonts map[string]Font // resource name -> font
	Images map[string]*Image // resource name -> image
	imgSeq int
}

// Builder accumulates pages into a Document.
type Builder struct {
	doc *Document
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{doc: &Document{}}
}

// NewPage starts a page of the given size in points and returns it for
// drawing; Finish appends it to the document.
func (b *Builder) NewPage(width, height float64) *Page {
	return &Page{
		MediaBox: Rectangle{0, 0, width, height},
		Fonts: map[string]Font{},
		Images: map[string]*Image{},
	}
}

// Finish appends p to the builder's document and returns the builder, so
// callers can chain NewPage(...) drawing calls...Finish the way the
// teacher's PageBuilder.Finish -> PDFBuilder did.
func (b *Builder) Finish(p *Page) *Builder {
	b.doc.Pages = append(b.doc.Pages, p)
	return b
}

// Build returns the accumulated document.
func (b *Builder) Build() (*Document, error) {
	return b.doc, nil
}

func (p *Page) fontResourceName(f Font) string {
	for name, existing := range p.Fonts {
		if existing.BaseFont == f.BaseFont {
			return name
		}
	}
	name := fmt.Sprintf("F%d", len(p.Fonts)+1)
	p.Fonts[name] = f
	return name
}

// DrawText draws one line of already-measured, already-wrapped text with
// its baseline at (x,y) in PDF user space.
func (p *Page) DrawText(text string, x, y float64, opts TextOptions) *Page {
	name := p.fontResourceName(opts.Font)
	p.writeOp("q\n")
	p.writeOp(fmt.Sprintf("%s rg\n", rgbOperands(opts.Color)))
	p.writeOp("BT\n")
	p.writeOp(fmt.Sprintf("/%s %g Tf\n", name, opts.FontSize))
	p.writeOp(fmt.Sprintf("%g %g Td\n", x, y))
	p.writeOp(fmt.Sprintf("(%s) Tj\n", escapeText(text)))
	p.writeOp("ET\nQ\n")
	return p
}

// DrawRect fills and/or strokes an axis-aligned rectangle, used for
// backgrounds, borders, and table rules.
func (p *Page) DrawRect(x, y, w, h float64, opts RectOptions) *Page {
	if !opts.Fill && !opts.Stroke {
		return p
	}
	p.writeOp("q\n")
	if opts.Fill {
		p.writeOp(fmt.Sprintf("%s rg\n", rgbOperands(opts.FillColor)))
	}
	if opts.Stroke {
		p.writeOp(fmt.Sprintf("%s RG\n%g w\n", rgbOperands(opts.StrokeColor), opts.LineWidth))
	}
	p.writeOp(fmt.Sprintf("%g %g %g %g re\n", x, y, w, h))
	switch {
	case opts.Fill && opts.Stroke:
		p.writeOp("B\n")
	case opts.Fill:
		p.writeOp("f\n")
	case opts.Stroke:
		p.writeOp("S\n")
	}
	p.writeOp("Q\n")
	return p
}

// DrawImage places img's unit square scaled to (w,h) at (x,y).
func (p *Page) DrawImage(img *Image, x, y, w, h float64, opts ImageOptions) *Page {
	if img == nil || opts.Opacity == 0 {
		return p
	}
	p.imgSeq++
	name := fmt.Sprintf("Im%d", p.imgSeq)
	p.Images[name] = img
	p.writeOp("q\n")
	p.writeOp(fmt.Sprintf("%g 0 0 %g %g %g cm\n", w, h, x, y))
	p.writeOp(fmt.Sprintf("/%s Do\n", name))
	p.writeOp("Q\n")
	return p
}

func (p *Page) writeOp(s string) { p.ops = append(p.ops, []byte(s)...) }

// Ops returns the raw content stream operators accumulated so far.
func (p *Page) Ops() []byte { return p.ops }

func rgbOperands(c Color) string {
	return fmt.Sprintf("%.3f %.3f %.3f", clamp01(c.R), clamp01(c.G), clamp01(c.B))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func escapeText(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', ')', '\\':
			out = append(out, '\\', s[i])
		default:
			out = append(out, s[i])
		}
	}
	return string(out)
}
