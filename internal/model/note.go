package model

import "time"

// NoteType tags which kind of note a record is. Each type uses a different
// subset of the optional fields; the notes service constructors are the only
// way a subset gets populated.
type NoteType string

const (
	NoteQuick NoteType = "quick"
	NoteExam  NoteType = "exam"
	NoteClass NoteType = "class"
)

// Note is a typed note record. Quick notes carry Content; exam notes carry
// Subject, Date, Time and Location; class notes carry Subject, DayOfWeek,
// Time and Location.
type Note struct {
	ID        string    `json:"id"`
	Type      NoteType  `json:"type"`
	Title     string    `json:"title"`
	Content   string    `json:"content,omitempty"`
	Date      string    `json:"date,omitempty"` // DateFormat
	Time      string    `json:"time,omitempty"` // TimeFormat
	Subject   string    `json:"subject,omitempty"`
	Location  string    `json:"location,omitempty"`
	DayOfWeek string    `json:"dayOfWeek,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
