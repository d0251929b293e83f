// Package gallery lists the images of a folder and names the files written
// next to them.
package gallery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/isc-ctu/esnresizer/config"
	"github.com/isc-ctu/esnresizer/pkg/imageio"
	"github.com/isc-ctu/esnresizer/util/log"
)

// SaveMode selects the extension of a saved banner.
type SaveMode int

const (
	// SaveOriginal keeps the extension of the source file.
	SaveOriginal SaveMode = iota
	// SaveJPEG always writes a .jpg file.
	SaveJPEG
)

func (m SaveMode) String() string {
	switch m {
	case SaveOriginal:
		return "original"
	case SaveJPEG:
		return "jpg"
	}
	return fmt.Sprintf("SaveMode(%d)", int(m))
}

// Folder is a directory of source images.
type Folder struct {
	dir string
}

// Open returns the Folder at dir. dir must exist and be a directory.
func Open(dir string) (*Folder, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}
	return &Folder{dir: dir}, nil
}

// Dir returns the directory of the folder.
func (f *Folder) Dir() string {
	return f.dir
}

// List returns the names of the regular files with a supported image
// extension, sorted by name.
func (f *Folder) List() ([]string, error) {
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", f.dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !imageio.IsSupported(entry.Name()) {
			continue
		}
		if !entry.Type().IsRegular() {
			// Follow symlinks, skip everything that is not a file.
			info, err := os.Stat(filepath.Join(f.dir, entry.Name()))
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	log.Debugf("gallery: %d images in %s", len(names), f.dir)
	return names, nil
}

// Path returns the path of the file name inside the folder.
func (f *Folder) Path(name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("invalid file name %q", name)
	}
	return filepath.Join(f.dir, name), nil
}

// ListImages returns the supported images in dir.
func ListImages(dir string) ([]string, error) {
	f, err := Open(dir)
	if err != nil {
		return nil, err
	}
	return f.List()
}

// OutputPath returns where the banner for src is saved:
// <dir>/<stem>_ESN_OK<ext>, ext being the source extension or .jpg.
func OutputPath(src string, mode SaveMode) string {
	ext := filepath.Ext(src)
	stem := strings.TrimSuffix(src, ext)
	if mode == SaveJPEG {
		ext = ".jpg"
	}
	return stem + config.OutputSuffix + ext
}
