package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// NewSignToolbar holds the secondary actions of the signing page: clear the
// pad and save a copy of the submitted signature.
func NewSignToolbar(onClear, onSaveReceipt func()) fyne.CanvasObject {
	return widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentClearIcon(), onClear),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), onSaveReceipt),
	)
}
