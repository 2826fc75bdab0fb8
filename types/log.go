package types

import "time"

// LogEntry represents a request audit entry to be stored in the database
type LogEntry struct {
	ID              uint
	Method          string
	URL             string
	Actor           string
	RequestBody     string
	ResponseBody    string
	RequestHeaders  string
	ResponseHeaders string
	StatusCode      int
	CreatedAt       time.Time
}
