package easel

import (
	"errors"
	"fmt"
	"image"
	"io"

	// Registered decoders for DecodeContent.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrEmptyContent is returned for images with a zero dimension.
var ErrEmptyContent = errors.New("easel: content has no pixels")

// Content is the picture hung inside the frame. Only its pixel dimensions
// affect geometry; Image is passed through to the image plane's material.
type Content struct {
	Name   string
	Image  image.Image
	Width  int
	Height int
}

// NewContent wraps an already-decoded image.
func NewContent(name string, img image.Image) (*Content, error) {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, ErrEmptyContent
	}
	return &Content{Name: name, Image: img, Width: b.Dx(), Height: b.Dy()}, nil
}

// SizedContent describes content by dimensions only, for hosts that keep
// the pixels on their side.
func SizedContent(name string, width, height int) (*Content, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyContent
	}
	return &Content{Name: name, Width: width, Height: height}, nil
}

// DecodeContent decodes a PNG, JPEG, BMP, TIFF or WebP stream.
func DecodeContent(name string, r io.Reader) (*Content, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode content %q: %w", name, err)
	}
	c, err := NewContent(name, img)
	if err != nil {
		return nil, fmt.Errorf("decode content %q (%s): %w", name, format, err)
	}
	return c, nil
}

// AspectRatio returns width / height.
func (c *Content) AspectRatio() float64 {
	return float64(c.Width) / float64(c.Height)
}
