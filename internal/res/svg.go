package res

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	"image/png"
	"math"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// maxSVGPixels bounds the raster size of SVG images without explicit size.
const maxSVGPixels = 2048

// RasterizeSVG renders an SVG document into a w×h RGBA image.
func RasterizeSVG(data []byte, w, h int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse svg: %w", err)
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid raster size %dx%d", w, h)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	icon.Draw(rasterx.NewDasher(w, h, rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())), 1)
	return rgba, nil
}

// decodeSVG rasterizes an SVG image at its intrinsic view box size.
func decodeSVG(data []byte) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse svg: %w", err)
	}
	w, h := icon.ViewBox.W, icon.ViewBox.H
	if w <= 0 || h <= 0 {
		w, h = 300, 150
	}
	if long := math.Max(w, h); long > maxSVGPixels {
		w, h = w*maxSVGPixels/long, h*maxSVGPixels/long
	}
	return RasterizeSVG(data, int(math.Ceil(w)), int(math.Ceil(h)))
}

// IconPNG rasterizes an SVG icon to a square PNG of px pixels, keeping its
// transparency, and returns it with a content-derived name.
func IconPNG(data []byte, px int) ([]byte, string, error) {
	rgba, err := RasterizeSVG(data, px, px)
	if err != nil {
		return nil, "", err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, rgba); err != nil {
		return nil, "", fmt.Errorf("failed to encode icon: %w", err)
	}
	sum := sha256.Sum256(buf.Bytes())
	return buf.Bytes(), "icon-" + hex.EncodeToString(sum[:8]), nil
}
