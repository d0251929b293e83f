package resizer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/isc-ctu/esnresizer/pkg/imageio"
)

// Kind classifies the failures a user can run into.
type Kind int

const (
	// KindUnknown is any error not produced by this package.
	KindUnknown Kind = iota
	// KindFolderUnreadable means the folder could not be listed.
	KindFolderUnreadable
	// KindNoSelection means an action needed a selected image.
	KindNoSelection
	// KindDecodeFailure means the selected image could not be read.
	KindDecodeFailure
	// KindWriteFailure means the banner could not be written.
	KindWriteFailure
)

func (k Kind) String() string {
	switch k {
	case KindFolderUnreadable:
		return "FolderUnreadable"
	case KindNoSelection:
		return "NoSelection"
	case KindDecodeFailure:
		return "DecodeFailure"
	case KindWriteFailure:
		return "WriteFailure"
	}
	return "Unknown"
}

// Sentinel errors, one per Kind. Returned errors wrap one of them and the cause.
var (
	ErrFolderUnreadable = errors.New("folder cannot be read")
	ErrNoSelection      = errors.New("no image selected")
	ErrDecodeFailure    = errors.New("image cannot be decoded")
	ErrWriteFailure     = errors.New("image cannot be saved")
)

var kinds = []struct {
	sentinel error
	kind     Kind
}{
	{ErrFolderUnreadable, KindFolderUnreadable},
	{ErrNoSelection, KindNoSelection},
	{ErrDecodeFailure, KindDecodeFailure},
	{ErrWriteFailure, KindWriteFailure},
}

// KindOf returns the Kind of err.
func KindOf(err error) Kind {
	for _, k := range kinds {
		if errors.Is(err, k.sentinel) {
			return k.kind
		}
	}
	return KindUnknown
}

// classify wraps cause with the sentinel. context is optional when cause
// already names the file.
func classify(sentinel error, context string, cause error) error {
	switch {
	case cause == nil:
		return fmt.Errorf("%w: %s", sentinel, context)
	case context == "":
		return fmt.Errorf("%w: %w", sentinel, cause)
	}
	return fmt.Errorf("%w: %s: %w", sentinel, context, cause)
}

// Describe returns a one-line message for the status bar.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	switch KindOf(err) {
	case KindFolderUnreadable:
		return "Cannot read folder: " + cause(err)
	case KindNoSelection:
		return "Choose an image from the list first."
	case KindDecodeFailure:
		return "Cannot open image: " + cause(err)
	case KindWriteFailure:
		if errors.Is(err, imageio.ErrUnsupportedEncoding) {
			return "This format cannot be saved, use Save jpg instead."
		}
		return "Cannot save image: " + cause(err)
	}
	return err.Error()
}

// cause strips the sentinel prefix from a classified error message.
func cause(err error) string {
	msg := err.Error()
	for _, k := range kinds {
		if rest, ok := strings.CutPrefix(msg, k.sentinel.Error()+": "); ok {
			return rest
		}
	}
	return msg
}
