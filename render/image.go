package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/wudi/pdftree/builder"
	"github.com/wudi/pdftree/style"
)

// embedDPI is the pixel density used when downsampling a decoded image to
// its placed display size before embedding: large source
// photos shrink to what the page actually shows, the way wudi-pdfkit's
// optimize/images.go caps embedded resolution to measured display usage.
const embedDPI = 150.0

// loadImageBytes resolves a node's `src` (data: URI, local path) to raw
// bytes. Remote URL fetching is not attempted; lists "URL / data: /
// local path" as the accepted src forms, and the core never needs pixels
// (only the renderer does, for embedding).
func loadImageBytes(src string) ([]byte, error) {
	if strings.HasPrefix(src, "data:") {
		idx := strings.Index(src, ",")
		if idx < 0 {
			return nil, fmt.Errorf("malformed data URI")
		}
		meta, payload := src[:idx], src[idx+1:]
		if strings.Contains(meta, ";base64") {
			return base64.StdEncoding.DecodeString(payload)
		}
		return []byte(payload), nil
	}
	return os.ReadFile(src)
}

// decodeRawImage decodes a node's `src` (data: URI, local path) into an
// image.Image at its native resolution, using the standard library for the
// common raster formats (wudi-pdfkit's own choice over golang.org/x/image
// for PNG/JPEG, see builder/images.go) plus the x/image format packages
// registered above for BMP/TIFF/WebP sources (object_fit's
// "src: URL/data:/local path" is format-agnostic). Callers that
// know the placed display rect should downsample with downsampleToDisplay
// before converting to a builder.Image.
func decodeRawImage(src string) (image.Image, error) {
	raw, err := loadImageBytes(src)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// toBuilderImage converts a decoded image to the 8-bit RGB + optional alpha
// SMask shape builder.Image expects, mirroring wudi-pdfkit's
// builder/images.go ImageFromFile/FromImage conversion.
func toBuilderImage(img image.Image) *builder.Image {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	rgb := make([]byte, 0, width*height*3)
	alpha := make([]byte, 0, width*height)
	hasAlpha := false
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			rgb = append(rgb, byte(r>>8), byte(g>>8), byte(b>>8))
			av := byte(a >> 8)
			alpha = append(alpha, av)
			if av != 255 {
				hasAlpha = true
			}
		}
	}
	out := &builder.Image{Width: width, Height: height, BitsPerComponent: 8, ColorSpace: "DeviceRGB", Data: rgb}
	if hasAlpha {
		out.SMaskData = alpha
	}
	return out
}

// downsampleToDisplay shrinks img to roughly embedDPI pixels per inch of
// its placed display size, using a high-quality x/image/draw scaler. It
// never upsamples: a source smaller than the target is returned unchanged.
func downsampleToDisplay(img image.Image, displayW, displayH float64) image.Image {
	if displayW <= 0 || displayH <= 0 {
		return img
	}
	targetW := int(displayW / 72 * embedDPI)
	targetH := int(displayH / 72 * embedDPI)
	if targetW <= 0 || targetH <= 0 {
		return img
	}
	bounds := img.Bounds()
	if bounds.Dx() <= targetW || bounds.Dy() <= targetH {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, targetW, targetH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

// fitImage applies object_fit to compute the drawn image rect,
// in box-local coordinates, within a box of size boxW x boxH.
func fitImage(fit style.ObjectFit, imgW, imgH, boxW, boxH float64) (x, y, w, h float64) {
	if imgW <= 0 || imgH <= 0 {
		return 0, 0, boxW, boxH
	}
	imgRatio := imgW / imgH
	switch fit {
	case style.FitFill:
		w, h = boxW, boxH
	case style.FitNone:
		w, h = imgW, imgH
	case style.FitCover:
		w, h = coverSize(imgRatio, boxW, boxH)
	case style.FitScaleDown:
		w, h = imgW, imgH
		if w > boxW || h > boxH {
			w, h = containSize(imgRatio, boxW, boxH)
		}
	default: // contain
		w, h = containSize(imgRatio, boxW, boxH)
	}
	x = (boxW - w) / 2
	y = (boxH - h) / 2
	return
}

func containSize(imgRatio, boxW, boxH float64) (w, h float64) {
	boxRatio := boxW / boxH
	if imgRatio > boxRatio {
		return boxW, boxW / imgRatio
	}
	return boxH * imgRatio, boxH
}

func coverSize(imgRatio, boxW, boxH float64) (w, h float64) {
	boxRatio := boxW / boxH
	if imgRatio > boxRatio {
		return boxH * imgRatio, boxH
	}
	return boxW, boxW / imgRatio
}
