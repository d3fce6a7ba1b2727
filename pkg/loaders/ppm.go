package loaders

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// PPMHeader returns the binary PPM (P6) header for an 8-bit image
func PPMHeader(width, height int) string {
	return fmt.Sprintf("P6\n%d %d\n255\n", width, height)
}

// PPMSize returns the encoded byte length of a width x height P6 image
func PPMSize(width, height int) int {
	return len(PPMHeader(width, height)) + 3*width*height
}

// Quantize maps an unclamped channel value to 8 bits: floor(255.99 * clamp(c, 0, 1))
func Quantize(channel float64) uint8 {
	return uint8(math.Floor(255.99 * mgl64.Clamp(channel, 0, 1)))
}

// WritePPM serializes the frame buffer as a binary P6 PPM
func WritePPM(w io.Writer, fb *renderer.FrameBuffer) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(PPMHeader(fb.Width, fb.Height)); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}

	for _, c := range fb.Pixels {
		if _, err := bw.Write([]byte{Quantize(c.X), Quantize(c.Y), Quantize(c.Z)}); err != nil {
			return fmt.Errorf("failed to write PPM pixels: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush PPM: %w", err)
	}
	return nil
}

// writePPMImage serializes an already quantized image as P6, ignoring alpha
func writePPMImage(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(PPMHeader(bounds.Dx(), bounds.Dy())); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if _, err := bw.Write([]byte{c.R, c.G, c.B}); err != nil {
				return fmt.Errorf("failed to write PPM pixels: %w", err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush PPM: %w", err)
	}
	return nil
}
