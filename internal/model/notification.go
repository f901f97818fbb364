package model

import "time"

// NotificationType categorizes a notification and decides which widget
// the action router spawns when the notification is activated.
type NotificationType string

const (
	NotificationStandard NotificationType = "standard"
	NotificationEvent    NotificationType = "event"
	NotificationYoutube  NotificationType = "youtube"
	NotificationBlog     NotificationType = "blog"
	NotificationPotd     NotificationType = "potd"
	NotificationPoll     NotificationType = "poll"
	NotificationMeeting  NotificationType = "meeting"
)

// ActionData is the typed-by-category payload attached to a
// notification. Keys depend on the type: "youtube" carries videoId,
// videoTitle, channelName; "event" carries eventTitle, eventDate,
// eventLocation; and so on. A nil map means the notification carries
// no action.
type ActionData map[string]string

// NotificationRecord is a single entry in the notification center.
type NotificationRecord struct {
	// ID is the unique identifier for this record.
	ID string `json:"id"`

	// Title is the short headline shown in the notification list.
	Title string `json:"title"`

	// Message is the human-readable notification body.
	Message string `json:"message"`

	// Timestamp is when this record was created.
	Timestamp time.Time `json:"timestamp"`

	// Read indicates whether the user has seen this record.
	Read bool `json:"read"`

	// Type is the notification category.
	Type NotificationType `json:"type"`

	// ActionData is the optional payload consumed by the action router.
	ActionData ActionData `json:"actionData,omitempty"`
}

// PendingAction is the single-slot "a widget should be created for
// this" signal. A zero Type means the slot is empty. A second action
// set before the first is consumed overwrites it (last-write-wins).
type PendingAction struct {
	Type NotificationType
	Data ActionData
}

// IsZero reports whether the slot is empty.
func (p PendingAction) IsZero() bool {
	return p.Type == "" && p.Data == nil
}
