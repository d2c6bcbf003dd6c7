package core

import "time"

// Note is the central entity of the domain.
// It represents a single task the user wrote down for a team and theme.
type Note struct {
	ID        int64      `json:"id" yaml:"id"`
	Title     string     `json:"title" yaml:"title"`
	Content   string     `json:"content" yaml:"content"`
	CreatedAt time.Time  `json:"createdAt" yaml:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty" yaml:"updatedAt,omitempty"`
}

// Edited reports whether the note was changed after creation.
func (n Note) Edited() bool {
	return n.UpdatedAt != nil
}

// LastTouched returns UpdatedAt when set, CreatedAt otherwise.
func (n Note) LastTouched() time.Time {
	if n.UpdatedAt != nil {
		return *n.UpdatedAt
	}
	return n.CreatedAt
}

// NoteList is ordered newest-created first.
// Edits keep a note at its original position.
type NoteList []Note

// Find returns the note with the given id.
func (l NoteList) Find(id int64) (Note, bool) {
	for _, n := range l {
		if n.ID == id {
			return n, true
		}
	}
	return Note{}, false
}

// MaxID returns the largest id in the list, or 0 for an empty list.
func (l NoteList) MaxID() int64 {
	var max int64
	for _, n := range l {
		if n.ID > max {
			max = n.ID
		}
	}
	return max
}

// Upsert replaces the note sharing n.ID in place, or prepends n when no
// such note exists. The input list is never modified.
func Upsert(list NoteList, n Note) NoteList {
	for i := range list {
		if list[i].ID == n.ID {
			out := make(NoteList, len(list))
			copy(out, list)
			out[i] = n
			return out
		}
	}

	out := make(NoteList, 0, len(list)+1)
	out = append(out, n)
	return append(out, list...)
}

// Remove returns a copy of list without the note identified by id.
// An unknown id yields an unchanged copy.
func Remove(list NoteList, id int64) NoteList {
	out := make(NoteList, 0, len(list))
	for _, n := range list {
		if n.ID != id {
			out = append(out, n)
		}
	}
	return out
}
