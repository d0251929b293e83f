package config

import "strings"

// AppVersion is the version of the application, set with -ldflags at build time.
var AppVersion = "dev"

// AppName is the name of the application.
const AppName = "ESNResizer"

// AppID is the unique fyne application ID, also the preference store name.
const AppID = "cz.cvut.isc.esnresizer"

// WindowTitle is the title of the main window.
const WindowTitle = "Image resizer for activities.esn.org"

// CanvasWidth and CanvasHeight are the activities.esn.org banner format.
const (
	CanvasWidth  = 1920
	CanvasHeight = 460
)

// PreviewDivisor shrinks the canvas for the on-screen preview.
const PreviewDivisor = 3

// OutputSuffix is appended to the source file stem when saving.
const OutputSuffix = "_ESN_OK"

// DefaultJPEGQuality is the JPEG quality used when nothing else is configured.
const DefaultJPEGQuality = 95

// LogWinSubDir is the sub directory for the log files on windows.
var LogWinSubDir = AppName

// LogSubDir is the sub directory for the log files.
var LogSubDir = "." + strings.ToLower(AppName)

// LogExt is the extension for the log files.
var LogExt = ".log"
