package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
)

func TestStyledLabel(t *testing.T) {
	tests := []struct {
		name       string
		style      labelStyle
		importance widget.Importance
		text       fyne.TextStyle
	}{
		{"heading", headingStyle, widget.HighImportance, fyne.TextStyle{Bold: true}},
		{"setting", settingStyle, widget.MediumImportance, fyne.TextStyle{Bold: true}},
		{"description", descriptionStyle, widget.LowImportance, fyne.TextStyle{Italic: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label := newStyledLabel("Image Folder", tt.style)
			assert.Equal(t, "Image Folder", label.Text)
			assert.Equal(t, fyne.TextWrapWord, label.Wrapping)
			assert.Equal(t, tt.importance, label.Importance)
			assert.Equal(t, tt.text, label.TextStyle)
		})
	}
}

func TestShowStatus(t *testing.T) {
	label := newStatusLabel()
	assert.Empty(t, label.Text)
	assert.Equal(t, fyne.TextWrapWord, label.Wrapping)

	showStatus(label, "Cannot read folder: gone", widget.DangerImportance)
	assert.Equal(t, "Cannot read folder: gone", label.Text)
	assert.Equal(t, widget.DangerImportance, label.Importance)
	assert.True(t, label.TextStyle.Bold)

	showStatus(label, "Saved: a_ESN_OK.png", widget.SuccessImportance)
	assert.Equal(t, widget.SuccessImportance, label.Importance)
	assert.False(t, label.TextStyle.Bold)
}
