package email

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/emersion/go-imap/v2"
	"github.com/emersion/go-imap/v2/imapclient"
	"github.com/emersion/go-message/mail"

	"github.com/dashy/dashy/internal/source"
)

// IMAPClient wraps go-imap v2 for connecting to and querying IMAP
// servers.
type IMAPClient struct {
	host     string
	port     string
	username string
	password string
	tls      bool
	mailbox  string
}

// NewIMAPClient creates a new IMAP client configuration. An empty
// mailbox defaults to INBOX.
func NewIMAPClient(host, port, username, password string, tls bool, mailbox string) *IMAPClient {
	if mailbox == "" {
		mailbox = "INBOX"
	}
	return &IMAPClient{
		host:     host,
		port:     port,
		username: username,
		password: password,
		tls:      tls,
		mailbox:  mailbox,
	}
}

// Connect establishes a connection to the IMAP server, authenticates,
// and returns the connected client. The caller is responsible for
// calling Logout on the returned client.
func (c *IMAPClient) Connect(_ context.Context) (*imapclient.Client, error) {
	addr := c.host + ":" + c.port

	var client *imapclient.Client
	var err error

	if c.tls {
		client, err = imapclient.DialTLS(addr, nil)
	} else {
		client, err = imapclient.DialStartTLS(addr, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("connecting to IMAP %s: %w", addr, err)
	}

	if err := client.Login(c.username, c.password).Wait(); err != nil {
		_ = client.Logout().Wait()
		return nil, &source.AuthError{
			SourceType: source.SourceTypeEmail,
			Message: fmt.Sprintf(
				"authentication failed for %s: %v",
				c.username, err,
			),
		}
	}

	return client, nil
}

// FetchRecent connects, selects the mailbox, searches for messages
// from the last sinceDays days with UID greater than afterUID, and
// returns them parsed (envelope plus text body), oldest first.
func (c *IMAPClient) FetchRecent(ctx context.Context, sinceDays, limit int, afterUID uint32) ([]ParsedMessage, error) {
	client, err := c.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = client.Logout().Wait() }()

	if _, err := client.Select(c.mailbox, nil).Wait(); err != nil {
		return nil, fmt.Errorf("selecting %s: %w", c.mailbox, err)
	}

	criteria := &imap.SearchCriteria{
		Since: time.Now().AddDate(0, 0, -sinceDays),
	}

	searchData, err := client.UIDSearch(criteria, nil).Wait()
	if err != nil {
		return nil, fmt.Errorf("searching messages: %w", err)
	}

	uids := searchData.AllUIDs()
	var fresh []imap.UID
	for _, uid := range uids {
		if uint32(uid) > afterUID {
			fresh = append(fresh, uid)
		}
	}
	if len(fresh) == 0 {
		return nil, nil
	}
	if limit > 0 && len(fresh) > limit {
		fresh = fresh[len(fresh)-limit:]
	}

	uidSet := imap.UIDSetNum(fresh...)

	bodySection := &imap.FetchItemBodySection{Peek: true}
	fetchOpts := &imap.FetchOptions{
		Envelope:    true,
		Flags:       true,
		UID:         true,
		BodySection: []*imap.FetchItemBodySection{bodySection},
	}

	fetchCmd := client.Fetch(uidSet, fetchOpts)
	defer fetchCmd.Close()

	var messages []ParsedMessage
	for {
		msg := fetchCmd.Next()
		if msg == nil {
			break
		}

		buf, err := msg.Collect()
		if err != nil {
			continue
		}

		parsed := ParsedMessage{Envelope: envelopeFromBuffer(buf)}
		if rawBody := buf.FindBodySection(bodySection); rawBody != nil {
			parsed.TextBody, parsed.HasCalendarPart = parseMIMEBody(rawBody)
		}
		messages = append(messages, parsed)
	}

	if err := fetchCmd.Close(); err != nil {
		return messages, fmt.Errorf("fetching messages: %w", err)
	}

	return messages, nil
}

// envelopeFromBuffer extracts an Envelope from a FetchMessageBuffer.
func envelopeFromBuffer(buf *imapclient.FetchMessageBuffer) Envelope {
	env := Envelope{
		UID: uint32(buf.UID),
	}

	if buf.Envelope != nil {
		env.MessageID = buf.Envelope.MessageID
		env.Subject = buf.Envelope.Subject
		env.Date = buf.Envelope.Date

		if len(buf.Envelope.From) > 0 {
			from := buf.Envelope.From[0]
			if from.Name != "" {
				env.From = from.Name
			} else {
				env.From = from.Addr()
			}
		}
	}

	for _, flag := range buf.Flags {
		env.Flags = append(env.Flags, string(flag))
	}

	return env
}

// parseMIMEBody parses a raw RFC 2822 message body using go-message
// and extracts the text/plain body, noting whether a text/calendar
// part (an invitation) is present.
func parseMIMEBody(raw []byte) (textBody string, hasCalendar bool) {
	reader := bytes.NewReader(raw)

	mr, err := mail.CreateReader(reader)
	if err != nil {
		// If parsing fails, treat the whole thing as plain text.
		return string(raw), false
	}
	defer mr.Close()

	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			break
		}

		switch h := part.Header.(type) {
		case *mail.InlineHeader:
			contentType, _, _ := h.ContentType()
			body, readErr := io.ReadAll(part.Body)
			if readErr != nil {
				continue
			}
			switch {
			case strings.HasPrefix(contentType, "text/plain") && textBody == "":
				textBody = string(body)
			case strings.HasPrefix(contentType, "text/calendar"):
				hasCalendar = true
			}

		case *mail.AttachmentHeader:
			contentType, _, _ := h.ContentType()
			if strings.HasPrefix(contentType, "text/calendar") {
				hasCalendar = true
			}
		}
	}

	return textBody, hasCalendar
}
