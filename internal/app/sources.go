package app

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dashy/dashy/internal/credential"
	"github.com/dashy/dashy/internal/model"
	"github.com/dashy/dashy/internal/source"
	"github.com/dashy/dashy/internal/source/email"
	"github.com/dashy/dashy/internal/source/feed"
)

// sourcesRegisteredMsg is sent when all configured sources have been
// registered with the poller.
type sourcesRegisteredMsg struct {
	count int
}

// registerSources registers each enabled configured source with the
// poller. Credentials are loaded from the system keyring.
func (m *Model) registerSources() tea.Cmd {
	cfg := m.cfg
	p := m.poller
	log := m.log

	return func() tea.Msg {
		registered := 0
		for _, src := range cfg.Sources {
			if !src.Enabled {
				continue
			}

			switch src.Type {
			case string(source.SourceTypeFeed):
				p.RegisterSource(createFeedAdapter(src), src)
				registered++

			case string(source.SourceTypeEmail):
				adapter := createEmailAdapter(src)
				if adapter == nil {
					log.Warn("skipping email source, credential not found",
						"source", src.Name, "id", src.ID)
					continue
				}
				p.RegisterSource(adapter, src)
				registered++

			default:
				log.Warn("skipping source with unknown type",
					"source", src.Name, "type", src.Type)
			}
		}
		return sourcesRegisteredMsg{count: registered}
	}
}

// createFeedAdapter builds a feed adapter from a source configuration.
// The bearer token is optional; feeds without one are polled
// unauthenticated.
func createFeedAdapter(src model.SourceConfig) *feed.Adapter {
	token, err := credential.Get("feed-" + src.ID)
	if err != nil {
		token = ""
	}

	path := ""
	if src.Config != nil {
		path = src.Config["path"]
	}
	return feed.NewAdapter(src.Name, src.BaseURL, path, token)
}

// createEmailAdapter builds an IMAP adapter from a source
// configuration, loading the mailbox password from the system keyring.
func createEmailAdapter(src model.SourceConfig) *email.Adapter {
	password, err := credential.Get("email-" + src.ID)
	if err != nil || password == "" {
		return nil
	}

	port := "993"
	username := ""
	mailbox := ""
	useTLS := true
	if src.Config != nil {
		if v := src.Config["port"]; v != "" {
			port = v
		}
		username = src.Config["username"]
		mailbox = src.Config["mailbox"]
		if v := src.Config["tls"]; v != "" {
			if parsed, err := strconv.ParseBool(v); err == nil {
				useTLS = parsed
			}
		}
	}

	return email.NewAdapter(src.Name, src.BaseURL, port, username, password, useTLS, mailbox)
}
