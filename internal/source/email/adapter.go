// Package email implements a notification source over IMAP: new inbox
// mail becomes notification records, and calendar invitations become
// meeting notifications the action router can open.
package email

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dashy/dashy/internal/model"
	"github.com/dashy/dashy/internal/notify"
	"github.com/dashy/dashy/internal/source"
)

// fetchWindowDays bounds how far back the first poll looks.
const fetchWindowDays = 7

// fetchLimit caps how many messages a single poll delivers.
const fetchLimit = 25

// messagePreviewLen is how much of the text body is carried into the
// notification message.
const messagePreviewLen = 200

// Adapter implements source.Source for IMAP mailboxes.
type Adapter struct {
	client *IMAPClient
	name   string

	// lastUID is the high-water mark so already-delivered messages are
	// never redelivered within a session.
	lastUID uint32
}

// NewAdapter creates a new email notification source.
func NewAdapter(name, host, port, username, password string, useTLS bool, mailbox string) *Adapter {
	return &Adapter{
		client: NewIMAPClient(host, port, username, password, useTLS, mailbox),
		name:   name,
	}
}

// Type returns the source type identifier.
func (a *Adapter) Type() source.SourceType {
	return source.SourceTypeEmail
}

// Name returns the configured label for this mailbox.
func (a *Adapter) Name() string {
	return a.name
}

// Fetch retrieves messages newer than the high-water mark and maps
// them to notification records. Calendar invitations are classified as
// meeting notifications with an action payload; everything else is a
// standard notification.
func (a *Adapter) Fetch(ctx context.Context) ([]notify.Incoming, error) {
	messages, err := a.client.FetchRecent(ctx, fetchWindowDays, fetchLimit, a.lastUID)
	if err != nil {
		return nil, fmt.Errorf("fetching mail for %s: %w", a.name, err)
	}

	var out []notify.Incoming
	for _, msg := range messages {
		env := msg.Envelope
		if env.UID > a.lastUID {
			a.lastUID = env.UID
		}
		if hasFlag(env.Flags, "\\Seen") || hasFlag(env.Flags, "\\Deleted") {
			continue
		}

		title := env.Subject
		if title == "" {
			title = "New mail"
		}
		message := preview(msg.TextBody)
		if message == "" {
			message = fmt.Sprintf("From %s", env.From)
		}

		in := notify.Incoming{
			Title:   title,
			Message: message,
			Type:    model.NotificationStandard,
		}
		if msg.HasCalendarPart {
			in.Type = model.NotificationMeeting
			in.ActionData = model.ActionData{
				"meetingId":    env.MessageID,
				"meetingTitle": env.Subject,
				"startTime":    env.Date.Format(time.RFC3339),
			}
		}
		out = append(out, in)
	}
	return out, nil
}

// hasFlag reports whether the IMAP flag list contains the given flag.
func hasFlag(flags []string, flag string) bool {
	for _, f := range flags {
		if strings.EqualFold(f, flag) {
			return true
		}
	}
	return false
}

// preview collapses a message body into a single trimmed line capped
// at messagePreviewLen runes.
func preview(body string) string {
	body = strings.Join(strings.Fields(body), " ")
	runes := []rune(body)
	if len(runes) > messagePreviewLen {
		return string(runes[:messagePreviewLen]) + "..."
	}
	return body
}
