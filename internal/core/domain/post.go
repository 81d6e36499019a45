package domain

import "time"

// PostStatus represents the lifecycle state of a sticky note.
type PostStatus string

const (
	PostActive   PostStatus = "active"
	PostArchived PostStatus = "archived"
)

// The fixed sticky-note palette. Posts only ever carry one of these codes.
const (
	ColorGreen  = "#c7ebb3"
	ColorPink   = "#ffd5f8"
	ColorBlue   = "#c5e8f1"
	ColorYellow = "#f8eaae"
)

var palette = map[string]struct{}{
	ColorGreen:  {},
	ColorPink:   {},
	ColorBlue:   {},
	ColorYellow: {},
}

// NormalizeColor maps an unknown color code to the default note color.
func NormalizeColor(code string) string {
	if _, ok := palette[code]; ok {
		return code
	}
	return ColorGreen
}

// Post is a sticky note on the wall. Username is denormalized from the author
// at creation time so list views need no join.
type Post struct {
	ID        int        `json:"postId"`
	Text      string     `json:"postText"`
	Color     string     `json:"colorCode"`
	Status    PostStatus `json:"status"`
	UserID    int        `json:"userId"`
	Username  string     `json:"username"`
	CreatedAt time.Time  `json:"postDate"`
}
