// Package sync polls notification sources in the background and
// surfaces their records to the UI as Bubble Tea messages.
package sync

import (
	"context"
	"fmt"
	gosync "sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dashy/dashy/internal/model"
	"github.com/dashy/dashy/internal/notify"
	"github.com/dashy/dashy/internal/source"
)

// PollState represents the current state of a source poll operation.
type PollState int

const (
	PollIdle PollState = iota
	PollRunning
	PollError
)

// PollStatus holds the poll state for a single source.
type PollStatus struct {
	SourceType source.SourceType
	Name       string
	State      PollState
	LastPoll   time.Time
	Error      error
}

// PollResultMsg is a tea.Msg sent when a poll operation completes.
type PollResultMsg struct {
	Source    source.SourceType
	Name      string
	Records   []notify.Incoming
	Error     error
	AuthError *AuthErrorMsg
}

// AuthErrorMsg is a tea.Msg sent when a source returns an
// authentication error.
type AuthErrorMsg struct {
	SourceType source.SourceType
	Message    string
}

// fetchTimeout is the maximum time allowed for a single fetch
// operation.
const fetchTimeout = 30 * time.Second

// sourceEntry holds a registered source and its configuration.
type sourceEntry struct {
	src source.Source
	cfg model.SourceConfig
}

// Poller orchestrates background polling of registered notification
// sources.
type Poller struct {
	sources   []sourceEntry
	statuses  map[string]*PollStatus
	resultCh  chan PollResultMsg
	triggerCh chan string
	stopCh    chan struct{}
	mu        gosync.Mutex
	running   bool
}

// New creates a new Poller.
func New() *Poller {
	return &Poller{
		statuses:  make(map[string]*PollStatus),
		resultCh:  make(chan PollResultMsg, 16),
		triggerCh: make(chan string, 16),
		stopCh:    make(chan struct{}),
	}
}

// RegisterSource adds a source adapter and its configuration to the
// poller.
func (p *Poller) RegisterSource(src source.Source, cfg model.SourceConfig) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.sources = append(p.sources, sourceEntry{src: src, cfg: cfg})
	p.statuses[src.Name()] = &PollStatus{
		SourceType: src.Type(),
		Name:       src.Name(),
		State:      PollIdle,
	}
}

// SourceCount returns the number of registered sources.
func (p *Poller) SourceCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.sources)
}

// Start launches all polling goroutines and returns a subscription
// command that waits on the result channel and delivers PollResultMsg
// messages to the Bubble Tea runtime.
func (p *Poller) Start() tea.Cmd {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return nil
	}
	p.running = true
	p.mu.Unlock()

	for _, entry := range p.sources {
		go p.pollSource(entry)
	}

	return p.waitForResult()
}

// Stop halts all polling goroutines.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running {
		return
	}

	close(p.stopCh)
	p.running = false
}

// RefreshAll triggers an immediate poll of all registered sources.
func (p *Poller) RefreshAll() {
	p.mu.Lock()
	sources := make([]sourceEntry, len(p.sources))
	copy(sources, p.sources)
	p.mu.Unlock()

	for _, entry := range sources {
		select {
		case p.triggerCh <- entry.src.Name():
		default:
			// Channel full; skip to avoid blocking
		}
	}
}

// GetStatuses returns the current poll status of all registered
// sources.
func (p *Poller) GetStatuses() []PollStatus {
	p.mu.Lock()
	defer p.mu.Unlock()

	statuses := make([]PollStatus, 0, len(p.statuses))
	for _, s := range p.statuses {
		statuses = append(statuses, *s)
	}
	return statuses
}

// pollSource runs the polling loop for a single source.
func (p *Poller) pollSource(entry sourceEntry) {
	interval := time.Duration(entry.cfg.PollIntervalSec) * time.Second
	if interval <= 0 {
		interval = 120 * time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Do an initial fetch immediately
	p.fetch(entry)

	for {
		select {
		case <-p.stopCh:
			return
		case <-ticker.C:
			p.fetch(entry)
		case name := <-p.triggerCh:
			if name == entry.src.Name() {
				p.fetch(entry)
			}
		}
	}
}

// fetch performs a single fetch operation and sends a PollResultMsg on
// the result channel.
func (p *Poller) fetch(entry sourceEntry) {
	name := entry.src.Name()
	p.setStatus(name, PollRunning, nil)

	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	records, err := entry.src.Fetch(ctx)
	if err != nil {
		p.setStatus(name, PollError, err)

		if source.IsAuthError(err) {
			p.sendResult(PollResultMsg{
				Source: entry.src.Type(),
				Name:   name,
				Error:  err,
				AuthError: &AuthErrorMsg{
					SourceType: entry.src.Type(),
					Message: fmt.Sprintf(
						"%s: authentication failed, check credentials",
						name,
					),
				},
			})
			return
		}

		p.sendResult(PollResultMsg{Source: entry.src.Type(), Name: name, Error: err})
		return
	}

	p.setStatus(name, PollIdle, nil)
	p.sendResult(PollResultMsg{
		Source:  entry.src.Type(),
		Name:    name,
		Records: records,
	})
}

// setStatus updates the poll status for a source.
func (p *Poller) setStatus(name string, state PollState, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	status, ok := p.statuses[name]
	if !ok {
		return
	}

	status.State = state
	status.Error = err
	if state == PollIdle && err == nil {
		status.LastPoll = time.Now()
	}
}

// sendResult sends a PollResultMsg on the result channel without
// blocking.
func (p *Poller) sendResult(msg PollResultMsg) {
	select {
	case p.resultCh <- msg:
	default:
		// Drop if channel is full to avoid blocking the poller
	}
}

// waitForResult returns a tea.Cmd that waits for the next result from
// the result channel.
func (p *Poller) waitForResult() tea.Cmd {
	return func() tea.Msg {
		result, ok := <-p.resultCh
		if !ok {
			return nil
		}
		return result
	}
}

// WaitForNextResult returns a tea.Cmd that waits for the next poll
// result. Call this after processing a PollResultMsg to keep
// listening.
func (p *Poller) WaitForNextResult() tea.Cmd {
	return p.waitForResult()
}
