package render

import (
	"bytes"
	"compress/zlib"
	"fmt"

	"github.com/wudi/pdftree/builder"
)

// pdfWriter is a minimal single-pass PDF object/xref/trailer serializer,
// adapted from the shape of wudi-pdfkit's writer.WriterBuilder/Config
// (writer/writer.go) and the indirect-object bookkeeping of
// writer/object_builder.go, trimmed to what an unencrypted, unsigned,
// non-linearized document needs: objects, an xref table, a trailer. Unlike
// wudi-pdfkit's helpers.go (which fed raw compress/flate straight into a
// FlateDecode stream — PDF requires the zlib wrapper, RFC1950, not raw
// deflate), streams here go through compress/zlib.
type pdfWriter struct {
	buf bytes.Buffer
	offsets []int // offsets[0] is unused; offsets[i] is the byte offset of object i.
}

func newPDFWriter() *pdfWriter {
	w := &pdfWriter{}
	w.buf.WriteString("%PDF-1.4\n%\xE2\xE3\xCF\xD3\n")
	w.offsets = append(w.offsets, 0)
	return w
}

func (w *pdfWriter) nextID() int {
	w.offsets = append(w.offsets, 0)
	return len(w.offsets) - 1
}

func (w *pdfWriter) writeObject(id int, body string) {
	w.offsets[id] = w.buf.Len()
	fmt.Fprintf(&w.buf, "%d 0 obj\n%s\nendobj\n", id, body)
}

func (w *pdfWriter) writeStreamObject(id int, dict string, data []byte) error {
	var compressed bytes.Buffer
	zw := zlib.NewWriter(&compressed)
	if _, err := zw.Write(data); err != nil {
		return fmt.Errorf("deflate stream: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("deflate stream: %w", err)
	}

	w.offsets[id] = w.buf.Len()
	fmt.Fprintf(&w.buf, "%d 0 obj\n<< %s /Filter /FlateDecode /Length %d >>\nstream\n", id, dict, compressed.Len())
	w.buf.Write(compressed.Bytes())
	w.buf.WriteString("\nendstream\nendobj\n")
	return nil
}

func (w *pdfWriter) writeImageObject(img *builder.Image) (int, error) {
	var smaskRef string
	if len(img.SMaskData) > 0 {
		smaskID := w.nextID()
		dict := fmt.Sprintf("/Type /XObject /Subtype /Image /Width %d /Height %d /ColorSpace /DeviceGray /BitsPerComponent 8",
			img.Width, img.Height)
		if err := w.writeStreamObject(smaskID, dict, img.SMaskData); err != nil {
			return 0, err
		}
		smaskRef = fmt.Sprintf("/SMask %d 0 R ", smaskID)
	}

	id := w.nextID()
	dict := fmt.Sprintf("/Type /XObject /Subtype /Image /Width %d /Height %d /ColorSpace /%s /BitsPerComponent %d %s",
		img.Width, img.Height, img.ColorSpace, img.BitsPerComponent, smaskRef)
	if err := w.writeStreamObject(id, dict, img.Data); err != nil {
		return 0, err
	}
	return id, nil
}

func (w *pdfWriter) finish(catalogID int) []byte {
	xrefOffset := w.buf.Len()
	fmt.Fprintf(&w.buf, "xref\n0 %d\n", len(w.offsets))
	w.buf.WriteString("0000000000 65535 f \n")
	for i := 1; i < len(w.offsets); i++ {
		fmt.Fprintf(&w.buf, "%010d 00000 n \n", w.offsets[i])
	}
	fmt.Fprintf(&w.buf, "trailer\n<< /Size %d /Root %d 0 R >>\nstartxref\n%d\n%%%%EOF", len(w.offsets), catalogID, xrefOffset)
	return w.buf.Bytes()
}

// WriteDocument serializes a built builder.Document into PDF bytes: one
// Catalog, one Pages tree, one Page object (plus its content stream, fonts,
// and image XObjects) per builder.Page.
func WriteDocument(doc *builder.Document) ([]byte, error) {
	w := newPDFWriter()

	catalogID := w.nextID()
	pagesID := w.nextID()

	fontIDs := map[string]int{}
	var pageIDs []int
	var pageBodies []string

	for _, page := range doc.Pages {
		contentID := w.nextID()
		if err := w.writeStreamObject(contentID, "", page.Ops()); err != nil {
			return nil, fmt.Errorf("pdf writer: %w", err)
		}

		var fontRefs bytes.Buffer
		for name, f := range page.Fonts {
			id, ok := fontIDs[f.BaseFont]
			if !ok {
				id = w.nextID()
				w.writeObject(id, fmt.Sprintf("<< /Type /Font /Subtype /Type1 /BaseFont /%s >>", f.BaseFont))
				fontIDs[f.BaseFont] = id
			}
			fmt.Fprintf(&fontRefs, "/%s %d 0 R ", name, id)
		}

		var imageRefs bytes.Buffer
		for name, img := range page.Images {
			id, err := w.writeImageObject(img)
			if err != nil {
				return nil, fmt.Errorf("pdf writer: %w", err)
			}
			fmt.Fprintf(&imageRefs, "/%s %d 0 R ", name, id)
		}

		pageID := w.nextID()
		pageIDs = append(pageIDs, pageID)
		pageBodies = append(pageBodies, fmt.Sprintf(
			"<< /Type /Page /Parent %d 0 R /MediaBox [%g %g %g %g] "+
			"/Resources << /Font << %s>> /XObject << %s>> >> /Contents %d 0 R >>",
			pagesID, page.MediaBox.LLX, page.MediaBox.LLY, page.MediaBox.URX, page.MediaBox.URY,
			fontRefs.String(), imageRefs.String(), contentID,
		))
	}

	for i, id := range pageIDs {
		w.writeObject(id, pageBodies[i])
	}

	var kids bytes.Buffer
	for _, id := range pageIDs {
		fmt.Fprintf(&kids, "%d 0 R ", id)
	}
	w.writeObject(pagesID, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", kids.String(), len(pageIDs)))
	w.writeObject(catalogID, fmt.Sprintf("<< /Type /Catalog /Pages %d 0 R >>", pagesID))

	return w.finish(catalogID), nil
}
