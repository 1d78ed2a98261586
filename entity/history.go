package entity

import "time"

// HistoryEntry is one version record of the vendor delta feed.
type HistoryEntry struct {
	Path      string
	Size      int64
	IsDeleted bool
	IsDir     bool
	Modified  time.Time
	Revision  int64
}

// History is one page of the vendor delta feed. Cursor is carried as hex on
// the wire but exposed as an integer.
type History struct {
	Reset   bool
	Cursor  int64
	HasMore bool
	Entries []*HistoryEntry
}

// Next returns the cursor to pass to the following history call, or false
// when the feed is complete.
func (h *History) Next() (int64, bool) {
	if h.HasMore {
		return h.Cursor, true
	}
	return 0, false
}
