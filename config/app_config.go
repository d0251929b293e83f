package config

import "fyne.io/fyne/v2"

// AppConfig holds the application-wide configuration
type AppConfig struct {
	prefs fyne.Preferences
}

// NewAppConfig creates a new AppConfig instance
func NewAppConfig(p fyne.Preferences) *AppConfig {
	return &AppConfig{prefs: p}
}

// LastFolderKey is the key for the last opened folder preference
const LastFolderKey = "last_folder"

// GetLastFolder returns the folder that was open when the app last closed
func (c *AppConfig) GetLastFolder() string {
	return c.prefs.StringWithFallback(LastFolderKey, "")
}

// SetLastFolder remembers the currently open folder
func (c *AppConfig) SetLastFolder(folder string) {
	c.prefs.SetString(LastFolderKey, folder)
}

// RestoreLastFolderKey is the key for the restore last folder preference
const RestoreLastFolderKey = "restore_last_folder"

// GetRestoreLastFolder returns whether the last folder is reopened on start
func (c *AppConfig) GetRestoreLastFolder() bool {
	return c.prefs.BoolWithFallback(RestoreLastFolderKey, true)
}

// SetRestoreLastFolder sets whether the last folder is reopened on start
func (c *AppConfig) SetRestoreLastFolder(enabled bool) {
	c.prefs.SetBool(RestoreLastFolderKey, enabled)
}

// JPEGQualityKey is the key for the JPEG quality preference
const JPEGQualityKey = "jpeg_quality"

// GetJPEGQuality returns the JPEG quality used for saving, always within 1..100
func (c *AppConfig) GetJPEGQuality() int {
	return ClampQuality(c.prefs.IntWithFallback(JPEGQualityKey, DefaultJPEGQuality))
}

// SetJPEGQuality sets the JPEG quality used for saving
func (c *AppConfig) SetJPEGQuality(quality int) {
	c.prefs.SetInt(JPEGQualityKey, ClampQuality(quality))
}

// ClampQuality limits q to the range accepted by the JPEG encoder.
func ClampQuality(q int) int {
	switch {
	case q < 1:
		return 1
	case q > 100:
		return 100
	}
	return q
}
