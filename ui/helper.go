package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// labelStyle is the look of a word-wrapped label.
type labelStyle struct {
	importance widget.Importance
	text       fyne.TextStyle
}

var (
	headingStyle     = labelStyle{importance: widget.HighImportance, text: fyne.TextStyle{Bold: true}}
	settingStyle     = labelStyle{importance: widget.MediumImportance, text: fyne.TextStyle{Bold: true}}
	descriptionStyle = labelStyle{importance: widget.LowImportance, text: fyne.TextStyle{Italic: true}}
)

func newStyledLabel(text string, style labelStyle) *widget.Label {
	label := widget.NewLabel(text)
	label.Wrapping = fyne.TextWrapWord
	label.Importance = style.importance
	label.TextStyle = style.text
	return label
}

// newStatusLabel returns an empty label for one-line status messages.
func newStatusLabel() *widget.Label {
	return newStyledLabel("", labelStyle{importance: widget.MediumImportance})
}

// showStatus sets the text of a status label. Errors are shown in bold.
func showStatus(label *widget.Label, text string, importance widget.Importance) {
	label.Importance = importance
	label.TextStyle = fyne.TextStyle{Bold: importance == widget.DangerImportance}
	label.SetText(text)
}
