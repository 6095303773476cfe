package model

// ReminderType selects how a scheduled work should remind.
type ReminderType string

const (
	ReminderNotification ReminderType = "notification"
	ReminderAlarm        ReminderType = "alarm"
)

// ScheduledWork is a dated task. Completed starts false and is toggled
// independently of any other field.
type ScheduledWork struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description,omitempty"`
	Date         string       `json:"date"` // DateFormat
	Time         string       `json:"time"` // TimeFormat
	ReminderType ReminderType `json:"reminderType"`
	Completed    bool         `json:"completed"`
}
