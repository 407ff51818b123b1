package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidImage(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestDownsampleToDisplayShrinksOversizedSource(t *testing.T) {
	src := solidImage(1200, 800, color.RGBA{R: 255, A: 255})
	// 100x66.67pt at embedDPI=150 -> ~208x139px target, well under 1200x800.
	out := downsampleToDisplay(src, 100, 66.6667)
	bounds := out.Bounds()
	assert.Less(t, bounds.Dx(), 1200)
	assert.Less(t, bounds.Dy(), 800)
}

func TestDownsampleToDisplayLeavesSmallSourceAlone(t *testing.T) {
	src := solidImage(20, 20, color.RGBA{G: 255, A: 255})
	out := downsampleToDisplay(src, 500, 500)
	require.Equal(t, src.Bounds(), out.Bounds())
}

func TestDownsampleToDisplayIgnoresNonPositiveTarget(t *testing.T) {
	src := solidImage(50, 50, color.RGBA{B: 255, A: 255})
	out := downsampleToDisplay(src, 0, 0)
	require.Equal(t, src, out)
}

func TestToBuilderImageDetectsAlpha(t *testing.T) {
	transparent := image.NewRGBA(image.Rect(0, 0, 2, 2))
	transparent.Set(0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 128})

	out := toBuilderImage(transparent)
	require.Equal(t, 2, out.Width)
	require.Equal(t, 2, out.Height)
	assert.NotEmpty(t, out.SMaskData)

	opaque := solidImage(2, 2, color.RGBA{R: 1, G: 2, B: 3, A: 255})
	out2 := toBuilderImage(opaque)
	assert.Nil(t, out2.SMaskData)
}
