package res

import (
	"bytes"
	"encoding/binary"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// readDPI returns the horizontal resolution recorded in PNG or JPEG
// metadata. It reports false when the image carries no physical density.
func readDPI(data []byte) (float64, bool) {
	switch {
	case bytes.HasPrefix(data, pngSignature):
		return pngDPI(data)
	case len(data) > 2 && data[0] == 0xFF && data[1] == 0xD8:
		return jfifDPI(data)
	}
	return 0, false
}

// pngDPI reads the pHYs chunk, which must precede the image data.
func pngDPI(data []byte) (float64, bool) {
	p := data[len(pngSignature):]
	for len(p) >= 12 {
		n := binary.BigEndian.Uint32(p[:4])
		typ := string(p[4:8])
		if uint64(len(p)) < 12+uint64(n) {
			return 0, false
		}
		body := p[8 : 8+n]
		switch typ {
		case "pHYs":
			if n < 9 || body[8] != 1 {
				return 0, false
			}
			ppm := binary.BigEndian.Uint32(body[:4])
			if ppm == 0 {
				return 0, false
			}
			return float64(ppm) * 0.0254, true
		case "IDAT", "IEND":
			return 0, false
		}
		p = p[12+n:]
	}
	return 0, false
}

// jfifDPI reads the density of an APP0 JFIF segment.
func jfifDPI(data []byte) (float64, bool) {
	p := data[2:]
	for len(p) >= 4 && p[0] == 0xFF {
		marker := p[1]
		n := int(binary.BigEndian.Uint16(p[2:4]))
		if n < 2 || len(p) < 2+n {
			return 0, false
		}
		seg := p[4 : 2+n]
		if marker == 0xE0 && len(seg) >= 12 && bytes.Equal(seg[:5], []byte("JFIF\x00")) {
			units := seg[7]
			x := float64(binary.BigEndian.Uint16(seg[8:10]))
			if x == 0 {
				return 0, false
			}
			switch units {
			case 1:
				return x, true
			case 2:
				return x * 2.54, true
			}
			return 0, false
		}
		if marker == 0xDA {
			break
		}
		p = p[2+n:]
	}
	return 0, false
}
