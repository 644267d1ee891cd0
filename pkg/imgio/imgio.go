// Package imgio loads cover images and saves stego images. Saving is limited
// to lossless formats because lossy encoders destroy the low bits that carry
// the hidden data.
package imgio

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Format names a lossless output encoding.
type Format string

const (
	PNG  Format = "png"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

var (
	ErrLossyFormat   = errors.New("lossy image formats cannot carry hidden data")
	ErrUnknownFormat = errors.New("unknown image format")
)

var lossy = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"webp": true,
}

// FormatFromPath picks the output format from the file extension. A path
// without an extension is written as PNG.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "", "png":
		return PNG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	}
	if lossy[ext] {
		return "", fmt.Errorf("%w: .%s", ErrLossyFormat, ext)
	}
	return "", fmt.Errorf("%w: .%s", ErrUnknownFormat, ext)
}

// Decode reads any registered format: PNG, JPEG, GIF, BMP, TIFF and WebP.
func Decode(r io.Reader) (image.Image, string, error) {
	return image.Decode(r)
}

// Load opens and decodes the image at path.
func Load(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// Encode writes img to w in the given lossless format.
func Encode(w io.Writer, format Format, img image.Image) error {
	switch format {
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	if lossy[string(format)] {
		return fmt.Errorf("%w: %s", ErrLossyFormat, format)
	}
	return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
}

// Save writes img to path, creating parent directories as needed. The
// format follows the extension.
func Save(path string, img image.Image) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(file, format, img); err != nil {
		file.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return file.Close()
}
