package images

import (
	"bytes"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// EncodePNG encodes an image to PNG bytes. Errors are ignored and may return an empty slice.
func EncodePNG(img image.Image) []byte {
	if img == nil {
		return nil
	}
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	_ = enc.Encode(&buf, img)
	return buf.Bytes()
}

// ScaleToHeight resizes src to exactly h pixels tall, preserving the aspect
// ratio. Up- and downscaling both apply so the preview keeps a fixed height.
func ScaleToHeight(src image.Image, h int) image.Image {
	if src == nil {
		return nil
	}
	if h < 1 {
		h = 1
	}
	if src.Bounds().Dy() == h {
		return src
	}
	return imaging.Resize(src, 0, h, imaging.Linear)
}
