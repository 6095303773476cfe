package model

// DateFormat is the canonical calendar-date layout for every stored date.
// Dates are kept as strings in this form so that lexicographic comparison
// and chronological comparison agree.
const DateFormat = "2006-01-02"

// TimeFormat is the canonical clock-time layout for stored times.
const TimeFormat = "15:04"
