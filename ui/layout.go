package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// leftColumnShare is the part of the window width given to the folder column.
const leftColumnShare = 1.0 / 3

// splitLayout places two widgets side by side, the first taking share of
// the width. Both are stretched to the full height of the container.
type splitLayout struct {
	widget1 fyne.CanvasObject
	widget2 fyne.CanvasObject
	share   float32
}

// MinSize calculates the minimum size.
func (s *splitLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	w1Size := s.widget1.MinSize()
	w2Size := s.widget2.MinSize()
	return fyne.NewSize(w1Size.Width+w2Size.Width, fyne.Max(w1Size.Height, w2Size.Height))
}

// Layout arranges the widgets.
func (s *splitLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	widget1Width := fyne.Max(containerSize.Width*s.share, s.widget1.MinSize().Width)
	widget2Width := fyne.Max(containerSize.Width-widget1Width, s.widget2.MinSize().Width)

	s.widget1.Resize(fyne.NewSize(widget1Width, containerSize.Height))
	s.widget2.Resize(fyne.NewSize(widget2Width, containerSize.Height))

	s.widget1.Move(fyne.NewPos(0, 0))
	s.widget2.Move(fyne.NewPos(widget1Width, 0))
}

// NewSplitRow creates a row where widget1 takes share of the width and
// widget2 the rest.
func NewSplitRow(widget1, widget2 fyne.CanvasObject, share float32) *fyne.Container {
	layout := &splitLayout{
		widget1: widget1,
		widget2: widget2,
		share:   share,
	}
	return container.New(layout, widget1, widget2)
}
