package model

// RecordStatus is the attendance state of a class day. Every transition
// between statuses is allowed; a record is always re-editable.
type RecordStatus string

const (
	StatusTaken   RecordStatus = "taken"
	StatusAbsent  RecordStatus = "absent"
	StatusPending RecordStatus = "pending"
)

// ClassRecord marks one student's attendance on one calendar day. The
// (StudentID, Date) pair is the natural key: at most one record exists per
// pair, maintained by upsert. A day with no record has no explicit mark.
type ClassRecord struct {
	ID        string       `json:"id"`
	StudentID string       `json:"studentId"`
	Date      string       `json:"date"` // DateFormat
	Status    RecordStatus `json:"status"`
	Comment   string       `json:"comment,omitempty"`
}
