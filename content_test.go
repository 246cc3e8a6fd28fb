package easel

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"golang.org/x/image/bmp"
)

func TestSizedContent(t *testing.T) {
	c, err := SizedContent("art", 2000, 1000)
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, "aspect", c.AspectRatio(), 2)
	if c.Image != nil {
		t.Error("sized content carries no pixels")
	}

	for _, dims := range [][2]int{{0, 10}, {10, 0}, {-1, 5}} {
		if _, err := SizedContent("bad", dims[0], dims[1]); !errors.Is(err, ErrEmptyContent) {
			t.Errorf("SizedContent(%v) err = %v, want ErrEmptyContent", dims, err)
		}
	}
}

func TestNewContentEmpty(t *testing.T) {
	if _, err := NewContent("empty", image.NewRGBA(image.Rect(0, 0, 0, 4))); !errors.Is(err, ErrEmptyContent) {
		t.Errorf("err = %v, want ErrEmptyContent", err)
	}
}

func testImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	return img
}

func TestDecodeContentPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage(40, 30)); err != nil {
		t.Fatal(err)
	}
	c, err := DecodeContent("photo.png", &buf)
	if err != nil {
		t.Fatal(err)
	}
	if c.Width != 40 || c.Height != 30 || c.Name != "photo.png" {
		t.Errorf("content = %s %dx%d", c.Name, c.Width, c.Height)
	}
	if c.Image == nil {
		t.Error("decoded content should keep its pixels")
	}
}

func TestDecodeContentBMP(t *testing.T) {
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, testImage(8, 16)); err != nil {
		t.Fatal(err)
	}
	c, err := DecodeContent("scan.bmp", &buf)
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, "aspect", c.AspectRatio(), 0.5)
}

func TestDecodeContentGarbage(t *testing.T) {
	_, err := DecodeContent("notes.txt", strings.NewReader("hello"))
	if err == nil {
		t.Fatal("expected a decode error")
	}
	if !strings.Contains(err.Error(), `"notes.txt"`) {
		t.Errorf("error should name the content: %v", err)
	}
}
