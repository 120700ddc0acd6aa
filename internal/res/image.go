package res

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/image/draw"
)

// DefaultDPI is assumed for images that carry no resolution metadata.
const DefaultDPI = 96

// MaxPixels bounds the longer side of an embedded image. Larger images are
// resampled without changing their physical size.
const MaxPixels = 3000

// Picture is a decoded image normalized to an opaque PNG.
type Picture struct {
	PNG         []byte
	PixelWidth  int
	PixelHeight int
	DPI         float64
	// Name is derived from the pixel content; equal pictures share a name.
	Name string
}

// PhysicalSize returns the intrinsic size in points.
func (p *Picture) PhysicalSize() (float64, float64) {
	return float64(p.PixelWidth) / p.DPI * 72, float64(p.PixelHeight) / p.DPI * 72
}

// DecodeImage decodes a raster or SVG payload, composites any transparency
// onto white and re-encodes it as PNG. defaultDPI is used when the payload
// has no density metadata, which is always the case for SVG.
func DecodeImage(data []byte, defaultDPI float64) (*Picture, error) {
	if defaultDPI <= 0 {
		defaultDPI = DefaultDPI
	}
	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return nil, fmt.Errorf("%w: detected %s", ErrNotImage, mt.String())
	}

	var (
		img image.Image
		dpi = defaultDPI
		err error
	)
	if mt.Is("image/svg+xml") {
		img, err = decodeSVG(data)
	} else {
		img, _, err = image.Decode(bytes.NewReader(data))
		if d, ok := readDPI(data); ok {
			dpi = d
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", mt.String(), err)
	}

	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("failed to decode %s: empty image", mt.String())
	}

	flat := Flatten(img)
	if long := max(b.Dx(), b.Dy()); long > MaxPixels {
		scale := float64(MaxPixels) / float64(long)
		w := max(1, int(float64(b.Dx())*scale))
		h := max(1, int(float64(b.Dy())*scale))
		small := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.ApproxBiLinear.Scale(small, small.Bounds(), flat, flat.Bounds(), draw.Src, nil)
		dpi *= float64(w) / float64(b.Dx())
		flat = small
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, flat); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	sum := sha256.Sum256(buf.Bytes())
	return &Picture{
		PNG:         buf.Bytes(),
		PixelWidth:  flat.Bounds().Dx(),
		PixelHeight: flat.Bounds().Dy(),
		DPI:         dpi,
		Name:        "img-" + hex.EncodeToString(sum[:8]),
	}, nil
}

// Flatten composites img onto an opaque white canvas.
func Flatten(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Over)
	return dst
}
