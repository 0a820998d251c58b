package image

import (
	"fmt"
	stdimage "image"
)

// bytesPerPixel is the size of one RGBA pixel
const bytesPerPixel = 4

// Framebuffer is a width × height grid of 8-bit RGBA pixels, row-major.
// It is owned exclusively by the renderer while rendering and handed to the
// output stage afterward.
type Framebuffer struct {
	Width  int
	Height int
	Pix    []uint8 // RGBA, 4 bytes per pixel, row-major
}

// NewFramebuffer allocates a zeroed framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*bytesPerPixel),
	}
}

// FromPixels wraps a caller-provided contiguous pixel buffer without copying,
// so renders land directly in the caller's memory. The buffer length is
// checked against the declared dimensions.
func FromPixels(pix []uint8, width, height int) (*Framebuffer, error) {
	if expected := width * height * bytesPerPixel; len(pix) != expected {
		return nil, fmt.Errorf("pixel buffer is %d bytes, want %d for %dx%d RGBA",
			len(pix), expected, width, height)
	}
	return &Framebuffer{Width: width, Height: height, Pix: pix}, nil
}

// Pixels exposes the contiguous RGBA array for foreign callers
func (f *Framebuffer) Pixels() []uint8 {
	return f.Pix
}

// SetRGBA stores one pixel at (row, column)
func (f *Framebuffer) SetRGBA(row, column int, r, g, b, a uint8) {
	i := (row*f.Width + column) * bytesPerPixel
	f.Pix[i] = r
	f.Pix[i+1] = g
	f.Pix[i+2] = b
	f.Pix[i+3] = a
}

// At returns the pixel at (row, column)
func (f *Framebuffer) At(row, column int) (r, g, b, a uint8) {
	i := (row*f.Width + column) * bytesPerPixel
	return f.Pix[i], f.Pix[i+1], f.Pix[i+2], f.Pix[i+3]
}

// ToRGBA copies the framebuffer into a standard library image for PNG encoding
func (f *Framebuffer) ToRGBA() *stdimage.RGBA {
	img := stdimage.NewRGBA(stdimage.Rect(0, 0, f.Width, f.Height))
	copy(img.Pix, f.Pix)
	return img
}
