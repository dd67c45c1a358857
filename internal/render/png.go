package render

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	xdraw "golang.org/x/image/draw"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// TightCrop trims the uniform border of img (the color of its top-left pixel)
// and keeps pad pixels of margin, like a tight bounding box.
func TightCrop(img image.Image, pad int) image.Image {
	b := img.Bounds()
	if b.Empty() {
		return img
	}
	bg := color.RGBAModel.Convert(img.At(b.Min.X, b.Min.Y))

	content := image.Rectangle{}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if color.RGBAModel.Convert(img.At(x, y)) == bg {
				continue
			}
			content = content.Union(image.Rect(x, y, x+1, y+1))
		}
	}
	if content.Empty() {
		return img
	}
	crop := image.Rect(content.Min.X-pad, content.Min.Y-pad, content.Max.X+pad, content.Max.Y+pad).Intersect(b)

	dst := image.NewRGBA(image.Rect(0, 0, crop.Dx(), crop.Dy()))
	xdraw.Draw(dst, dst.Bounds(), img, crop.Min, xdraw.Src)
	return dst
}

// EncodePNG encodes img and records dpi in a pHYs chunk.
func EncodePNG(img image.Image, dpi float64) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return withPHYs(buf.Bytes(), dpi)
}

// WritePNG encodes img at dpi into path.
func WritePNG(path string, img image.Image, dpi float64) error {
	data, err := EncodePNG(img, dpi)
	if err != nil {
		return fmt.Errorf("png encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// withPHYs inserts a pHYs chunk right after IHDR.
func withPHYs(data []byte, dpi float64) ([]byte, error) {
	// signature + IHDR (length, type, 13 data bytes, crc)
	const ihdrEnd = 8 + 4 + 4 + 13 + 4
	if len(data) < ihdrEnd || !bytes.Equal(data[:8], pngSignature) || string(data[12:16]) != "IHDR" {
		return nil, errors.New("not a PNG stream")
	}
	ppm := uint32(math.Round(dpi / 0.0254))

	chunk := make([]byte, 4+4+9+4)
	binary.BigEndian.PutUint32(chunk[0:4], 9)
	copy(chunk[4:8], "pHYs")
	binary.BigEndian.PutUint32(chunk[8:12], ppm)
	binary.BigEndian.PutUint32(chunk[12:16], ppm)
	chunk[16] = 1 // unit: meter
	binary.BigEndian.PutUint32(chunk[17:21], crc32.ChecksumIEEE(chunk[4:17]))

	out := make([]byte, 0, len(data)+len(chunk))
	out = append(out, data[:ihdrEnd]...)
	out = append(out, chunk...)
	out = append(out, data[ihdrEnd:]...)
	return out, nil
}

// ReadDPI returns the horizontal resolution stored in the pHYs chunk of a PNG.
func ReadDPI(data []byte) (float64, bool) {
	if len(data) < 8 || !bytes.Equal(data[:8], pngSignature) {
		return 0, false
	}
	for off := 8; off+8 <= len(data); {
		n := int(binary.BigEndian.Uint32(data[off : off+4]))
		typ := string(data[off+4 : off+8])
		if off+12+n > len(data) {
			return 0, false
		}
		if typ == "pHYs" && n == 9 && data[off+16] == 1 {
			ppm := binary.BigEndian.Uint32(data[off+8 : off+12])
			return math.Round(float64(ppm) * 0.0254), true
		}
		if typ == "IDAT" || typ == "IEND" {
			return 0, false
		}
		off += 12 + n
	}
	return 0, false
}
