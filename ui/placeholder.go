package ui

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/isc-ctu/esnresizer/config"
)

const placeholderText = "No image selected"

// placeholderPreview returns an empty banner preview with a centered hint.
func placeholderPreview() image.Image {
	width := config.CanvasWidth / config.PreviewDivisor
	height := config.CanvasHeight / config.PreviewDivisor
	img := imaging.New(width, height, color.White)

	// Outline so the empty banner is visible on light themes.
	border := color.NRGBA{R: 200, G: 200, B: 200, A: 255}
	for x := 0; x < width; x++ {
		img.Set(x, 0, border)
		img.Set(x, height-1, border)
	}
	for y := 0; y < height; y++ {
		img.Set(0, y, border)
		img.Set(width-1, y, border)
	}

	bounds, _ := font.BoundString(basicfont.Face7x13, placeholderText)
	textWidth := bounds.Max.X.Ceil()

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.NRGBA{R: 120, G: 120, B: 120, A: 255}),
		Face: basicfont.Face7x13,
		Dot: fixed.Point26_6{
			X: fixed.I((width - textWidth) / 2),
			Y: fixed.I(height/2 + basicfont.Face7x13.Ascent/2),
		},
	}
	d.DrawString(placeholderText)
	return img
}
