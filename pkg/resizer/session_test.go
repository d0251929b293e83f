package resizer

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/isc-ctu/esnresizer/pkg/gallery"
	"github.com/isc-ctu/esnresizer/pkg/imageio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	green = color.NRGBA{G: 200, A: 255}
)

// newFolder creates a folder with a 800x600 PNG, a 4000x400 JPEG, a corrupt
// PNG and a text file.
func newFolder(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, imaging.Save(imaging.New(800, 600, green), filepath.Join(dir, "photo.png")))
	require.NoError(t, imaging.Save(imaging.New(4000, 400, green), filepath.Join(dir, "wide.jpg")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.png"), []byte("not an image"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0644))
	return dir
}

func TestOpenFolder(t *testing.T) {
	dir := newFolder(t)
	s := NewSession()

	files, err := s.OpenFolder(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"broken.png", "photo.png", "wide.jpg"}, files)
	assert.Equal(t, dir, s.Folder())
	assert.Equal(t, files, s.Files())
	assert.Empty(t, s.Selected())
}

func TestOpenFolderUnreadable(t *testing.T) {
	s := NewSession()
	_, err := s.OpenFolder(newFolder(t))
	require.NoError(t, err)
	require.NoError(t, s.Select("photo.png"))

	files, err := s.OpenFolder(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, ErrFolderUnreadable)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, KindFolderUnreadable, KindOf(err))
	assert.Empty(t, files)
	assert.Empty(t, s.Files())
	assert.Empty(t, s.Folder())
	assert.Empty(t, s.Selected())
}

func TestSelect(t *testing.T) {
	s := NewSession()
	_, err := s.OpenFolder(newFolder(t))
	require.NoError(t, err)

	require.NoError(t, s.Select("photo.png"))
	assert.Equal(t, "photo.png", s.Selected())

	err = s.Select("elsewhere.png")
	assert.Equal(t, KindNoSelection, KindOf(err))
	assert.Empty(t, s.Selected())

	err = s.Select("")
	assert.ErrorIs(t, err, ErrNoSelection)

	// Only listed images can be selected.
	err = s.Select("notes.txt")
	assert.ErrorIs(t, err, ErrNoSelection)
}

func TestNoSelection(t *testing.T) {
	s := NewSession()

	_, err := s.Render()
	assert.ErrorIs(t, err, ErrNoSelection)
	_, err = s.Preview()
	assert.ErrorIs(t, err, ErrNoSelection)
	_, err = s.Save(gallery.SaveJPEG)
	assert.ErrorIs(t, err, ErrNoSelection)

	_, err = s.OpenFolder(newFolder(t))
	require.NoError(t, err)
	_, err = s.Save(gallery.SaveOriginal)
	assert.Equal(t, KindNoSelection, KindOf(err))
}

func TestRenderAndPreview(t *testing.T) {
	s := NewSession()
	_, err := s.OpenFolder(newFolder(t))
	require.NoError(t, err)
	require.NoError(t, s.Select("photo.png"))

	canvas, err := s.Render()
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 1920, 460), canvas.Bounds())
	assert.Equal(t, white, canvas.NRGBAAt(0, 0))
	assert.Equal(t, green, canvas.NRGBAAt(960, 230))

	again, err := s.Render()
	require.NoError(t, err)
	assert.Same(t, canvas, again, "render is cached for the selection")

	preview, err := s.Preview()
	require.NoError(t, err)
	assert.Equal(t, 640, preview.Bounds().Dx())
	assert.Equal(t, 153, preview.Bounds().Dy())

	require.NoError(t, s.Select("wide.jpg"))
	wide, err := s.Render()
	require.NoError(t, err)
	assert.NotSame(t, canvas, wide)
}

func TestDecodeFailure(t *testing.T) {
	s := NewSession()
	dir := newFolder(t)
	_, err := s.OpenFolder(dir)
	require.NoError(t, err)
	require.NoError(t, s.Select("broken.png"))

	_, err = s.Render()
	assert.ErrorIs(t, err, ErrDecodeFailure)
	assert.Equal(t, KindDecodeFailure, KindOf(err))

	_, err = s.Save(gallery.SaveJPEG)
	assert.ErrorIs(t, err, ErrDecodeFailure)
	_, statErr := os.Stat(filepath.Join(dir, "broken_ESN_OK.jpg"))
	assert.True(t, os.IsNotExist(statErr))

	// Deleted behind our back.
	require.NoError(t, s.Select("photo.png"))
	require.NoError(t, os.Remove(filepath.Join(dir, "photo.png")))
	_, err = s.Render()
	assert.ErrorIs(t, err, ErrDecodeFailure)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSaveRoundTrip(t *testing.T) {
	s := NewSession()
	dir := newFolder(t)
	_, err := s.OpenFolder(dir)
	require.NoError(t, err)
	require.NoError(t, s.Select("photo.png"))

	out, err := s.Save(gallery.SaveOriginal)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "photo_ESN_OK.png"), out)

	img, err := imageio.Load(out)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 1920, 460), img.Bounds())

	// PNG is lossless: the white bars are exact.
	nrgba := imaging.Clone(img)
	for _, p := range []image.Point{{0, 0}, {653, 230}, {1267, 230}, {1919, 459}} {
		assert.Equal(t, white, nrgba.NRGBAAt(p.X, p.Y), "border at %v", p)
	}
	assert.Equal(t, green, nrgba.NRGBAAt(960, 230))

	out, err = s.Save(gallery.SaveJPEG)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "photo_ESN_OK.jpg"), out)

	img, err = imageio.Load(out)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 1920, 460), img.Bounds())
	r, g, b, _ := img.At(100, 100).RGBA()
	assert.InDelta(t, 0xffff, r, 0x0400)
	assert.InDelta(t, 0xffff, g, 0x0400)
	assert.InDelta(t, 0xffff, b, 0x0400)
}

func TestSaveWideJPEG(t *testing.T) {
	s := NewSession(WithJPEGQuality(80))
	dir := newFolder(t)
	_, err := s.OpenFolder(dir)
	require.NoError(t, err)
	require.NoError(t, s.Select("wide.jpg"))

	out, err := s.Save(gallery.SaveOriginal)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "wide_ESN_OK.jpg"), out)

	w, h, err := imageio.DecodeConfig(out)
	require.NoError(t, err)
	assert.Equal(t, 1920, w)
	assert.Equal(t, 460, h)
}

func TestWriteFailure(t *testing.T) {
	s := NewSession()
	dir := newFolder(t)
	_, err := s.OpenFolder(dir)
	require.NoError(t, err)
	require.NoError(t, s.Select("photo.png"))

	// A directory in the way of the output file.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "photo_ESN_OK.png"), 0755))

	_, err = s.Save(gallery.SaveOriginal)
	assert.ErrorIs(t, err, ErrWriteFailure)
	assert.Equal(t, KindWriteFailure, KindOf(err))
	assert.Contains(t, Describe(err), "Cannot save image")

	_, statErr := os.Stat(filepath.Join(dir, "photo_ESN_OK.png.tmp"))
	assert.True(t, os.IsNotExist(statErr), "temporary file left behind")

	// The JPEG variant still works.
	_, err = s.Save(gallery.SaveJPEG)
	assert.NoError(t, err)
}

func TestRefresh(t *testing.T) {
	s := NewSession()
	files, err := s.Refresh()
	assert.NoError(t, err)
	assert.Nil(t, files)

	dir := newFolder(t)
	_, err = s.OpenFolder(dir)
	require.NoError(t, err)
	require.NoError(t, s.Select("photo.png"))

	_, err = s.Save(gallery.SaveJPEG)
	require.NoError(t, err)

	files, err = s.Refresh()
	require.NoError(t, err)
	assert.Equal(t, []string{"broken.png", "photo.png", "photo_ESN_OK.jpg", "wide.jpg"}, files)
	assert.Equal(t, "photo.png", s.Selected())

	require.NoError(t, os.Remove(filepath.Join(dir, "photo.png")))
	files, err = s.Refresh()
	require.NoError(t, err)
	assert.NotContains(t, files, "photo.png")
	assert.Empty(t, s.Selected())

	require.NoError(t, os.RemoveAll(dir))
	_, err = s.Refresh()
	assert.ErrorIs(t, err, ErrFolderUnreadable)
	assert.Empty(t, s.Files())
}

func TestFitFile(t *testing.T) {
	s := NewSession()
	dir := newFolder(t)

	out, err := s.FitFile(filepath.Join(dir, "wide.jpg"), gallery.SaveJPEG)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "wide_ESN_OK.jpg"), out)
	assert.Empty(t, s.Folder(), "FitFile leaves the session alone")

	_, err = s.FitFile(filepath.Join(dir, "broken.png"), gallery.SaveJPEG)
	assert.ErrorIs(t, err, ErrDecodeFailure)
}
