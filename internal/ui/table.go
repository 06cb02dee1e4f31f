package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// stringTable shows a header row followed by data rows. Row 0 of the widget
// is the header; OnSelected receives data row indices.
type stringTable struct {
	*widget.Table
	headers []string
	rows    [][]string

	OnSelected func(row int)
}

func newStringTable(headers []string, widths ...float32) *stringTable {
	t := &stringTable{headers: headers}
	t.Table = widget.NewTable(
		func() (int, int) { return len(t.rows) + 1, len(t.headers) },
		func() fyne.CanvasObject {
			l := widget.NewLabel("")
			l.Truncation = fyne.TextTruncateEllipsis
			return l
		},
		func(id widget.TableCellID, o fyne.CanvasObject) {
			l := o.(*widget.Label)
			if id.Row == 0 {
				l.TextStyle = fyne.TextStyle{Bold: true}
				l.SetText(t.headers[id.Col])
				return
			}
			l.TextStyle = fyne.TextStyle{}
			row := t.rows[id.Row-1]
			if id.Col < len(row) {
				l.SetText(row[id.Col])
			} else {
				l.SetText("")
			}
		},
	)
	t.Table.OnSelected = func(id widget.TableCellID) {
		t.Table.UnselectAll()
		if id.Row > 0 && t.OnSelected != nil {
			t.OnSelected(id.Row - 1)
		}
	}
	for i, w := range widths {
		t.SetColumnWidth(i, w)
	}
	return t
}

// SetData must be called on the UI thread.
func (t *stringTable) SetData(headers []string, rows [][]string) {
	if headers != nil {
		t.headers = headers
	}
	t.rows = rows
	t.Refresh()
}
