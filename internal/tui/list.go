package tui

// chromeLines is the number of lines a screen spends outside its list:
// title, its margin, a status line, and help with its margin.
const chromeLines = 6

// listWindow is the visible slice of a scrolling list.
type listWindow struct {
	height int // visible rows; non-positive shows everything
	offset int
}

// follow scrolls so that cursor is visible.
func (w *listWindow) follow(cursor int) {
	if w.height <= 0 {
		w.offset = 0
		return
	}
	if cursor < w.offset {
		w.offset = cursor
	}
	if cursor >= w.offset+w.height {
		w.offset = cursor - w.height + 1
	}
	if w.offset < 0 {
		w.offset = 0
	}
}

// window returns the [start, end) range of rows to render for n rows.
func (w *listWindow) window(cursor, n int) (start, end int) {
	w.follow(cursor)
	if w.height <= 0 || n <= w.height {
		return 0, n
	}
	start = min(w.offset, n-w.height)
	return start, start + w.height
}

// lastVisible returns the index of the last row rendered for n rows, or -1
// when there are none.
func (w *listWindow) lastVisible(cursor, n int) int {
	_, end := w.window(cursor, n)
	return end - 1
}
