package loaders

import (
	"image"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
)

// Thumbnail scales img down so that neither side exceeds maxSide, keeping the aspect
// ratio. Images already small enough are returned unchanged.
func Thumbnail(img image.Image, maxSide uint) image.Image {
	return resize.Thumbnail(maxSide, maxSide, img, resize.Bilinear)
}

// ThumbnailPath derives the thumbnail file name for an output path,
// e.g. "out/render.ppm" becomes "out/render_thumb.png"
func ThumbnailPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_thumb" + FormatPNG.Extension()
}
