package ui

const (
	windowWidth  = 1100
	windowHeight = 560

	// folderLabel heads the folder picker column.
	folderLabel = "Image Folder"
	// chooseLabel heads the preview column.
	chooseLabel = "Choose an image from list on left:"

	saveJPGButtonText = "Save jpg"
	saveButtonText    = "Save"
)
