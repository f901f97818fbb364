package email

import "time"

// Envelope holds the summary metadata of one inbox message.
type Envelope struct {
	MessageID string
	Subject   string
	From      string
	Date      time.Time
	Flags     []string // \Seen, \Flagged, \Answered, \Deleted
	UID       uint32
}

// ParsedMessage holds the parsed content of an email message.
type ParsedMessage struct {
	Envelope Envelope
	TextBody string

	// HasCalendarPart is true when the message carries a text/calendar
	// attachment, i.e. it is an invitation.
	HasCalendarPart bool
}
