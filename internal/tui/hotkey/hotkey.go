// Package hotkey routes global key combinations to handlers that were
// registered through explicit, closable subscriptions.
package hotkey

import (
	"sync"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Handler reacts to a matched key and may return a command for the program.
type Handler func(tea.KeyMsg) tea.Cmd

type entry struct {
	binding key.Binding
	handler Handler
}

// Dispatcher holds the live subscriptions.
type Dispatcher struct {
	mu      sync.RWMutex
	nextID  int
	entries map[int]entry
}

// NewDispatcher returns an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{entries: make(map[int]entry)}
}

// Subscribe registers handler for binding until the returned subscription
// is closed.
func (d *Dispatcher) Subscribe(binding key.Binding, handler Handler) *Subscription {
	d.mu.Lock()
	defer d.mu.Unlock()

	id := d.nextID
	d.nextID++
	d.entries[id] = entry{binding: binding, handler: handler}
	return &Subscription{dispatcher: d, id: id}
}

// Dispatch runs every live handler whose binding matches msg. It reports
// whether any handler ran, along with the batched commands.
func (d *Dispatcher) Dispatch(msg tea.KeyMsg) (bool, tea.Cmd) {
	d.mu.RLock()
	var matched []Handler
	for _, e := range d.entries {
		if key.Matches(msg, e.binding) {
			matched = append(matched, e.handler)
		}
	}
	d.mu.RUnlock()

	if len(matched) == 0 {
		return false, nil
	}

	cmds := make([]tea.Cmd, 0, len(matched))
	for _, h := range matched {
		cmds = append(cmds, h(msg))
	}
	return true, tea.Batch(cmds...)
}

// Len returns the number of live subscriptions.
func (d *Dispatcher) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.entries)
}

func (d *Dispatcher) remove(id int) {
	d.mu.Lock()
	delete(d.entries, id)
	d.mu.Unlock()
}

// Subscription is the handle returned by Subscribe.
type Subscription struct {
	once       sync.Once
	dispatcher *Dispatcher
	id         int
}

// Close deregisters the handler. It is safe to call more than once.
func (s *Subscription) Close() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		s.dispatcher.remove(s.id)
	})
}
