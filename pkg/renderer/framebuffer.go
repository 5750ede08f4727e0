package renderer

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fogleman/gg"

	"github.com/davg/go-parallel-raytracer/pkg/core"
)

// ppmMagic identifies the binary (raw) PPM variant
const ppmMagic = "P6"

// Framebuffer is a width x height array of final colors, indexed y*width+x.
// Each cell is written exactly once per render by the aggregator and is
// read-only during serialization. Out-of-range access is a partitioning
// bug, not a recoverable condition, and panics.
type Framebuffer struct {
	Width  int
	Height int
	pixels []core.Vec3
}

// NewFramebuffer creates a black framebuffer of the given dimensions
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// Set stores the final color for pixel (x, y)
func (fb *Framebuffer) Set(x, y int, c core.Vec3) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		panic(fmt.Sprintf("framebuffer: setting pixel (%d, %d) out of range (%d, %d)", x, y, fb.Width, fb.Height))
	}
	fb.pixels[y*fb.Width+x] = c
}

// At returns the color stored for pixel (x, y)
func (fb *Framebuffer) At(x, y int) core.Vec3 {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		panic(fmt.Sprintf("framebuffer: getting pixel (%d, %d) out of range (%d, %d)", x, y, fb.Width, fb.Height))
	}
	return fb.pixels[y*fb.Width+x]
}

// WritePPM serializes the framebuffer as binary PPM: a textual header
// followed by 3 raw bytes per pixel, top image row (y = height-1) first
func (fb *Framebuffer) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "%s\n%d %d\n255\n", ppmMagic, fb.Width, fb.Height); err != nil {
		return fmt.Errorf("writing PPM header: %w", err)
	}

	rgb := make([]byte, 3)
	for y := fb.Height - 1; y >= 0; y-- {
		for x := 0; x < fb.Width; x++ {
			rgb[0], rgb[1], rgb[2] = core.RGBBytes(fb.At(x, y))
			if _, err := bw.Write(rgb); err != nil {
				return fmt.Errorf("writing pixel (%d, %d): %w", x, y, err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing PPM output: %w", err)
	}
	return nil
}

// image converts the framebuffer to a drawing context for PNG export
func (fb *Framebuffer) image() *gg.Context {
	dc := gg.NewContext(fb.Width, fb.Height)
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			r, g, b := core.RGBBytes(fb.At(x, y))
			dc.SetRGB255(int(r), int(g), int(b))
			// Raster row 0 is the top of the image
			dc.SetPixel(x, fb.Height-1-y)
		}
	}
	return dc
}

// WritePNG saves the framebuffer as a PNG file
func (fb *Framebuffer) WritePNG(path string) error {
	if err := gg.SavePNG(path, fb.image().Image()); err != nil {
		return fmt.Errorf("writing PNG %s: %w", path, err)
	}
	return nil
}
