package session

import "time"

// Session is a time-boxed attendance-code challenge tied to one slot.
// Only the SHA-256 digest of the code is stored; the raw code is returned
// once to the owning lecturer and then discarded.
type Session struct {
	ID        string
	SlotID    string
	TeacherID string
	CodeHash  string
	StartTime time.Time
	EndTime   time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ActiveAt reports whether t falls inside the closed validity window.
func (s Session) ActiveAt(t time.Time) bool {
	return !t.Before(s.StartTime) && !t.After(s.EndTime)
}
