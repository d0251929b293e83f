// Package fitter letterboxes images onto the fixed activities.esn.org
// banner canvas: uniform scale, centered, white padding.
package fitter

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/isc-ctu/esnresizer/config"
	"github.com/nfnt/resize"
)

// ErrEmptyImage is returned for images with zero width or height.
var ErrEmptyImage = errors.New("image has no pixels")

// Geometry describes where the scaled content lands on the canvas.
type Geometry struct {
	Scale         float64
	ContentWidth  int
	ContentHeight int
	XStart        int
	YStart        int
}

// Fitter fits images onto a canvas of a fixed size.
type Fitter struct {
	width       int
	height      int
	background  color.Color
	downsampler imaging.ResampleFilter // area averaging when shrinking
	upsampler   imaging.ResampleFilter // used when the content grows
}

// Option configures a Fitter.
type Option func(*Fitter)

// WithCanvasSize overrides the canvas dimensions.
func WithCanvasSize(width, height int) Option {
	return func(f *Fitter) {
		f.width = width
		f.height = height
	}
}

// WithBackground overrides the padding color.
func WithBackground(c color.Color) Option {
	return func(f *Fitter) {
		f.background = c
	}
}

// WithFilters overrides the resampling filters.
func WithFilters(down, up imaging.ResampleFilter) Option {
	return func(f *Fitter) {
		f.downsampler = down
		f.upsampler = up
	}
}

// New creates a Fitter for the 1920x460 banner on a white background.
func New(opts ...Option) *Fitter {
	f := &Fitter{
		width:       config.CanvasWidth,
		height:      config.CanvasHeight,
		background:  color.White,
		downsampler: imaging.Box,
		upsampler:   imaging.Linear,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Size returns the canvas dimensions.
func (f *Fitter) Size() (int, int) {
	return f.width, f.height
}

// Geometry computes the uniform scale and centering offsets for a source
// image of srcWidth x srcHeight.
func (f *Fitter) Geometry(srcWidth, srcHeight int) (Geometry, error) {
	if srcWidth <= 0 || srcHeight <= 0 {
		return Geometry{}, fmt.Errorf("%w: %dx%d", ErrEmptyImage, srcWidth, srcHeight)
	}

	scale := math.Min(float64(f.height)/float64(srcHeight), float64(f.width)/float64(srcWidth))

	// Extreme aspect ratios can round a side down to zero.
	contentWidth := clamp(round(float64(srcWidth)*scale), 1, f.width)
	contentHeight := clamp(round(float64(srcHeight)*scale), 1, f.height)

	return Geometry{
		Scale:         scale,
		ContentWidth:  contentWidth,
		ContentHeight: contentHeight,
		XStart:        round(float64(f.width-contentWidth) / 2),
		YStart:        round(float64(f.height-contentHeight) / 2),
	}, nil
}

// Fit scales img to fit inside the canvas without distortion and pastes it
// centered onto the background. The alpha channel of img is ignored.
func (f *Fitter) Fit(img image.Image) (*image.NRGBA, error) {
	bounds := img.Bounds()
	g, err := f.Geometry(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	var content image.Image = dropAlpha(img)
	if g.ContentWidth != bounds.Dx() || g.ContentHeight != bounds.Dy() {
		filter := f.downsampler
		if g.Scale > 1 {
			filter = f.upsampler
		}
		content = imaging.Resize(content, g.ContentWidth, g.ContentHeight, filter)
	}

	canvas := imaging.New(f.width, f.height, f.background)
	return imaging.Paste(canvas, content, image.Pt(g.XStart, g.YStart)), nil
}

var defaultFitter = New()

// Fit letterboxes img onto the 1920x460 white banner canvas.
func Fit(img image.Image) (*image.NRGBA, error) {
	return defaultFitter.Fit(img)
}

// ComputeGeometry returns the banner placement for a srcWidth x srcHeight image.
func ComputeGeometry(srcWidth, srcHeight int) (Geometry, error) {
	return defaultFitter.Geometry(srcWidth, srcHeight)
}

// Preview shrinks a fitted canvas by divisor for on-screen display.
func Preview(canvas image.Image, divisor int) image.Image {
	if divisor <= 1 {
		return canvas
	}
	b := canvas.Bounds()
	width := max(b.Dx()/divisor, 1)
	height := max(b.Dy()/divisor, 1)
	return resize.Resize(uint(width), uint(height), canvas, resize.Bilinear)
}

// dropAlpha returns an opaque copy of img that keeps the stored color of
// every pixel, including fully transparent ones.
func dropAlpha(img image.Image) *image.NRGBA {
	dst := imaging.Clone(img)
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 0xff
	}
	return dst
}

// round rounds half to even.
func round(v float64) int {
	return int(math.RoundToEven(v))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
