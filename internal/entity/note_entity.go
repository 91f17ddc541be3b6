// FILE: internal/entity/note_entity.go
package entity

import "time"

type Note struct {
	Id        string
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WasEdited reports whether the note changed after it was created.
func (n Note) WasEdited() bool {
	return n.UpdatedAt.After(n.CreatedAt)
}
