package image

import (
	"bufio"
	"fmt"
	"io"
)

// WritePPM encodes the framebuffer as a plain-text PPM (P3) image:
// a three-line header (magic token, "width height", max channel value)
// followed by one "R G B" triplet per pixel in row-major order.
// The alpha channel is dropped; PPM has no transparency.
func WritePPM(w io.Writer, f *Framebuffer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", f.Width, f.Height); err != nil {
		return err
	}

	for row := 0; row < f.Height; row++ {
		for column := 0; column < f.Width; column++ {
			r, g, b, _ := f.At(row, column)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}
