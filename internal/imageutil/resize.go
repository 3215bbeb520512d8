package imageutil

import (
	"bytes"
	"errors"
	"image"

	"github.com/disintegration/imaging"
)

var ErrInvalidSize = errors.New("invalid target size")

// ResizeImage scales the provided image to exactly dstW x dstH using
// Lanczos resampling. Same-size inputs are returned as *image.NRGBA copies.
func ResizeImage(src image.Image, dstW, dstH int) (image.Image, error) {
	if dstW <= 0 || dstH <= 0 {
		return nil, ErrInvalidSize
	}
	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, errors.New("source image has zero size")
	}
	if b.Dx() == dstW && b.Dy() == dstH {
		return imaging.Clone(src), nil
	}
	return imaging.Resize(src, dstW, dstH, imaging.Lanczos), nil
}

// EncodePNG returns the PNG encoding of img.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ResizePNGBytes decodes PNG bytes, resizes the image to target width/height
// and returns the resulting PNG bytes.
func ResizePNGBytes(pngBytes []byte, dstW, dstH int) ([]byte, error) {
	if dstW <= 0 || dstH <= 0 {
		return nil, ErrInvalidSize
	}
	img, err := imaging.Decode(bytes.NewReader(pngBytes))
	if err != nil {
		return nil, err
	}
	out, err := ResizeImage(img, dstW, dstH)
	if err != nil {
		return nil, err
	}
	return EncodePNG(out)
}
