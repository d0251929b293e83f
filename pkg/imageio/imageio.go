// Package imageio loads and saves the image formats the resizer can browse.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/spakin/netpbm"
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// SupportedExtensions lists the extensions shown when browsing a folder.
var SupportedExtensions = []string{
	".bmp", ".dib",
	".jpeg", ".jpg",
	".png",
	".webp",
	".pbm", ".pgm", ".ppm", ".pxm", ".pnm",
	".tiff", ".tif",
	".hdr",
}

var (
	// ErrUnsupportedFormat is returned when no decoder handles a file.
	ErrUnsupportedFormat = errors.New("unsupported image format")
	// ErrUnsupportedEncoding is returned when a format can be read but not written.
	ErrUnsupportedEncoding = errors.New("saving in this format is not supported")
)

// Ext returns the lower-cased extension of name, including the dot.
func Ext(name string) string {
	return strings.ToLower(filepath.Ext(name))
}

// IsSupported reports whether name has one of the SupportedExtensions.
func IsSupported(name string) bool {
	return slices.Contains(SupportedExtensions, Ext(name))
}

// CanEncode reports whether Save can write a file with the extension of name.
func CanEncode(name string) bool {
	_, ok := imagingFormats[Ext(name)]
	if ok {
		return true
	}
	_, ok = netpbmFormats[Ext(name)]
	return ok
}

var imagingFormats = map[string]imaging.Format{
	".jpg":  imaging.JPEG,
	".jpeg": imaging.JPEG,
	".png":  imaging.PNG,
	".bmp":  imaging.BMP,
	".dib":  imaging.BMP,
	".tif":  imaging.TIFF,
	".tiff": imaging.TIFF,
}

var netpbmFormats = map[string]netpbm.Format{
	".pbm": netpbm.PBM,
	".pgm": netpbm.PGM,
	".ppm": netpbm.PPM,
	".pnm": netpbm.PPM,
	".pxm": netpbm.PPM,
}

// Load opens and decodes the image at path.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := Decode(f, Ext(path))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	return img, nil
}

// Decode reads an image from r. ext selects the Netpbm reader for the
// pbm family; every other format is sniffed from the data.
func Decode(r io.Reader, ext string) (image.Image, error) {
	if _, ok := netpbmFormats[strings.ToLower(ext)]; ok {
		img, err := netpbm.Decode(r, &netpbm.DecodeOptions{
			Target:      netpbm.PPM,
			PBMMaxValue: 255,
		})
		if err != nil {
			return nil, err
		}
		return img, nil
	}

	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if errors.Is(err, image.ErrFormat) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	return img, err
}

// DecodeConfig returns the dimensions of the image at path as Load would
// return them. Only JPEG files, whose EXIF orientation can rotate them, are
// fully decoded.
func DecodeConfig(path string) (int, int, error) {
	if _, ok := netpbmFormats[Ext(path)]; ok {
		img, err := Load(path)
		if err != nil {
			return 0, 0, err
		}
		return img.Bounds().Dx(), img.Bounds().Dy(), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer file.Close()

	cfg, format, err := image.DecodeConfig(file)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return 0, 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, Ext(path))
		}
		return 0, 0, err
	}
	if format != "jpeg" {
		return cfg.Width, cfg.Height, nil
	}

	// EXIF orientation may swap the sides, so report what Load returns.
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return 0, 0, err
	}
	img, err := imaging.Decode(file, imaging.AutoOrientation(true))
	if err != nil {
		return 0, 0, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	return img.Bounds().Dx(), img.Bounds().Dy(), nil
}

// Encode writes img to w in the format named by ext.
func Encode(w io.Writer, img image.Image, ext string, quality int) error {
	ext = strings.ToLower(ext)
	if format, ok := imagingFormats[ext]; ok {
		return imaging.Encode(w, img, format, imaging.JPEGQuality(quality))
	}
	if format, ok := netpbmFormats[ext]; ok {
		maxValue := uint16(255)
		if format == netpbm.PBM {
			maxValue = 1
		}
		return netpbm.Encode(w, img, &netpbm.EncodeOptions{
			Format:   format,
			MaxValue: maxValue,
		})
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedEncoding, ext)
}

// Save encodes img by the extension of path. The file is written under a
// temporary name and renamed into place once complete.
func Save(path string, img image.Image, quality int) error {
	if !CanEncode(path) {
		return fmt.Errorf("%w: %s", ErrUnsupportedEncoding, Ext(path))
	}

	tmp := path + ".tmp"
	file, err := os.Create(tmp)
	if err != nil {
		return err
	}

	if err := Encode(file, img, Ext(path), quality); err != nil {
		file.Close()
		os.Remove(tmp)
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}
	if err := file.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
