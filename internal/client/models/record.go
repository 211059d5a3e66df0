package models

import "strings"

// Record is a single diary entry owned by a user.
type Record struct {
	ID      int64
	UserID  int64
	Content string
}

// Title returns the text before the first line break of the content,
// or the whole content when it is a single line.
func (r Record) Title() string {
	title, _, _ := strings.Cut(r.Content, "\n")
	return title
}
