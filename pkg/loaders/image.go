package loaders

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// ErrUnknownFormat is returned for output formats other than ppm, png and jpeg
var ErrUnknownFormat = errors.New("unknown image format")

// Format identifies an output encoding
type Format string

const (
	FormatPPM  Format = "ppm"
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
)

// jpegQuality is used for all JPEG output
const jpegQuality = 95

// ParseFormat converts a user supplied name such as "PNG" or "jpg" to a Format
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "ppm":
		return FormatPPM, nil
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// FormatFromPath picks the format from a file extension
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// ContentType returns the MIME type for the format
func (f Format) ContentType() string {
	switch f {
	case FormatPNG:
		return "image/png"
	case FormatJPEG:
		return "image/jpeg"
	default:
		return "image/x-portable-pixmap"
	}
}

// Extension returns the file extension for the format, including the dot
func (f Format) Extension() string {
	if f == FormatJPEG {
		return ".jpg"
	}
	return "." + string(f)
}

// ToImage converts the frame buffer to an opaque 8-bit image using the same
// quantization as the PPM writer
func ToImage(fb *renderer.FrameBuffer) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			c := fb.At(x, y)
			img.SetNRGBA(x, y, color.NRGBA{
				R: Quantize(c.X),
				G: Quantize(c.Y),
				B: Quantize(c.Z),
				A: 255,
			})
		}
	}
	return img
}

// EncodeFrame writes the frame buffer in the given format
func EncodeFrame(w io.Writer, fb *renderer.FrameBuffer, format Format) error {
	if format == FormatPPM {
		return WritePPM(w, fb)
	}
	return EncodeImage(w, ToImage(fb), format)
}

// EncodeImage writes an 8-bit image in the given format
func EncodeImage(w io.Writer, img image.Image, format Format) error {
	var err error
	switch format {
	case FormatPPM:
		return writePPMImage(w, img)
	case FormatPNG:
		err = imaging.Encode(w, img, imaging.PNG)
	case FormatJPEG:
		err = imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality))
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return nil
}

// SaveFrame writes the frame buffer to path, choosing the format from its extension
// and creating parent directories as needed
func SaveFrame(path string, fb *renderer.FrameBuffer) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	return saveWith(path, func(w io.Writer) error { return EncodeFrame(w, fb, format) })
}

// SaveImage writes an 8-bit image to path, choosing the format from its extension
func SaveImage(path string, img image.Image) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	return saveWith(path, func(w io.Writer) error { return EncodeImage(w, img, format) })
}

func saveWith(path string, encode func(io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}

	if err := encode(file); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close image file: %w", err)
	}
	return nil
}
