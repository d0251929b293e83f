// Package resizer holds the state of one resizing session: the open
// folder, its images, the selection and the rendered banner.
package resizer

import (
	"image"
	"path/filepath"
	"slices"

	"github.com/isc-ctu/esnresizer/config"
	"github.com/isc-ctu/esnresizer/pkg/fitter"
	"github.com/isc-ctu/esnresizer/pkg/gallery"
	"github.com/isc-ctu/esnresizer/pkg/imageio"
	"github.com/isc-ctu/esnresizer/util/log"
)

// Session is the explicit state passed through the window handlers and the
// command line. It is not safe for concurrent use.
type Session struct {
	fitter  *fitter.Fitter
	quality int

	folder   *gallery.Folder
	files    []string
	selected string
	rendered *image.NRGBA // banner of selected, nil until rendered
}

// Option configures a Session.
type Option func(*Session)

// WithFitter replaces the default banner fitter.
func WithFitter(f *fitter.Fitter) Option {
	return func(s *Session) {
		s.fitter = f
	}
}

// WithJPEGQuality sets the quality of saved JPEG files.
func WithJPEGQuality(q int) Option {
	return func(s *Session) {
		s.quality = config.ClampQuality(q)
	}
}

// NewSession creates an empty session with no folder open.
func NewSession(opts ...Option) *Session {
	s := &Session{
		fitter:  fitter.New(),
		quality: config.DefaultJPEGQuality,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Folder returns the open folder, or "" when none is open.
func (s *Session) Folder() string {
	if s.folder == nil {
		return ""
	}
	return s.folder.Dir()
}

// Files returns the images of the open folder.
func (s *Session) Files() []string {
	return slices.Clone(s.files)
}

// Selected returns the selected file name, or "".
func (s *Session) Selected() string {
	return s.selected
}

// SetJPEGQuality changes the quality used by later saves.
func (s *Session) SetJPEGQuality(q int) {
	s.quality = config.ClampQuality(q)
}

// OpenFolder lists the images in dir and makes it the current folder.
// On failure the session is left with no folder and no files.
func (s *Session) OpenFolder(dir string) ([]string, error) {
	s.folder = nil
	s.files = nil
	s.ClearSelection()

	f, err := gallery.Open(dir)
	if err != nil {
		return nil, classify(ErrFolderUnreadable, "", err)
	}
	files, err := f.List()
	if err != nil {
		return nil, classify(ErrFolderUnreadable, "", err)
	}

	s.folder = f
	s.files = files
	log.Printf("Opened %s (%d images)", dir, len(files))
	return s.Files(), nil
}

// Refresh lists the current folder again. The selection survives when the
// selected file still exists.
func (s *Session) Refresh() ([]string, error) {
	if s.folder == nil {
		return nil, nil
	}

	files, err := s.folder.List()
	if err != nil {
		s.files = nil
		s.ClearSelection()
		return nil, classify(ErrFolderUnreadable, "", err)
	}

	s.files = files
	s.rendered = nil
	if s.selected != "" && !slices.Contains(files, s.selected) {
		s.ClearSelection()
	}
	return s.Files(), nil
}

// Select makes name, one of Files, the current image.
func (s *Session) Select(name string) error {
	if name == "" {
		s.ClearSelection()
		return ErrNoSelection
	}
	if !slices.Contains(s.files, name) {
		s.ClearSelection()
		return classify(ErrNoSelection, name+" is not in the list", nil)
	}
	if name != s.selected {
		s.selected = name
		s.rendered = nil
	}
	return nil
}

// ClearSelection forgets the current image.
func (s *Session) ClearSelection() {
	s.selected = ""
	s.rendered = nil
}

// SelectedPath returns the full path of the selected image.
func (s *Session) SelectedPath() (string, error) {
	if s.folder == nil || s.selected == "" {
		return "", ErrNoSelection
	}
	path, err := s.folder.Path(s.selected)
	if err != nil {
		return "", classify(ErrNoSelection, "", err)
	}
	return path, nil
}

// Render returns the banner of the selected image.
func (s *Session) Render() (*image.NRGBA, error) {
	path, err := s.SelectedPath()
	if err != nil {
		return nil, err
	}
	if s.rendered != nil {
		return s.rendered, nil
	}

	canvas, err := s.fit(path)
	if err != nil {
		return nil, err
	}
	s.rendered = canvas
	return canvas, nil
}

// Preview returns the banner of the selected image shrunk for display.
func (s *Session) Preview() (image.Image, error) {
	canvas, err := s.Render()
	if err != nil {
		return nil, err
	}
	return fitter.Preview(canvas, config.PreviewDivisor), nil
}

// Save writes the banner of the selected image next to it and returns the
// written path.
func (s *Session) Save(mode gallery.SaveMode) (string, error) {
	path, err := s.SelectedPath()
	if err != nil {
		return "", err
	}
	canvas, err := s.Render()
	if err != nil {
		return "", err
	}
	return s.write(path, canvas, mode)
}

// FitFile fits the image at path and saves the banner next to it without
// touching the session's folder or selection.
func (s *Session) FitFile(path string, mode gallery.SaveMode) (string, error) {
	canvas, err := s.fit(path)
	if err != nil {
		return "", err
	}
	return s.write(path, canvas, mode)
}

func (s *Session) fit(path string) (*image.NRGBA, error) {
	img, err := imageio.Load(path)
	if err != nil {
		return nil, classify(ErrDecodeFailure, "", err)
	}
	canvas, err := s.fitter.Fit(img)
	if err != nil {
		return nil, classify(ErrDecodeFailure, filepath.Base(path), err)
	}
	log.Debugf("Fitted %s (%dx%d)", path, img.Bounds().Dx(), img.Bounds().Dy())
	return canvas, nil
}

func (s *Session) write(src string, canvas image.Image, mode gallery.SaveMode) (string, error) {
	out := gallery.OutputPath(src, mode)
	if err := imageio.Save(out, canvas, s.quality); err != nil {
		return "", classify(ErrWriteFailure, "", err)
	}
	log.Printf("Saved: %s", out)
	return out, nil
}
