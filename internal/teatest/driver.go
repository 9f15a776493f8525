// Package teatest drives bubbletea models synchronously in tests.
//
// Instead of running a tea.Program, the Driver calls Update directly and
// executes returned Cmds inline, feeding their messages back until nothing is
// left. Cmds that block longer than the driver timeout (tea.Tick and friends)
// are dropped.
package teatest

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxDrainDepth bounds how many chained Cmds one Send may execute.
const MaxDrainDepth = 100

// DefaultCmdTimeout is how long a Cmd may run before it is dropped.
const DefaultCmdTimeout = 50 * time.Millisecond

type Driver struct {
	t       *testing.T
	model   tea.Model
	timeout time.Duration

	quitting bool
}

type Option func(*Driver)

// WithSize sends a WindowSizeMsg before anything else.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.model, _ = d.model.Update(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

// WithCmdTimeout changes how long a Cmd may block before it is dropped.
func WithCmdTimeout(timeout time.Duration) Option {
	return func(d *Driver) { d.timeout = timeout }
}

// New wraps model. Call Init to run the model's Init command.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{t: t, model: model, timeout: DefaultCmdTimeout}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Init runs the model's Init command and drains everything it produces.
func (d *Driver) Init() {
	d.t.Helper()
	d.drain(d.model.Init(), 0)
}

// Send dispatches msg through Update and drains the resulting Cmds. Messages
// sent after the model quit are ignored.
func (d *Driver) Send(msg tea.Msg) {
	d.t.Helper()
	if d.quitting {
		return
	}
	var cmd tea.Cmd
	d.model, cmd = d.model.Update(msg)
	d.drain(cmd, 0)
}

// Press sends one key. Names such as "enter", "esc", "left" or "ctrl+c" map
// to their key types; anything else is sent as runes.
func (d *Driver) Press(k string) {
	d.t.Helper()
	if kt, ok := namedKeys[k]; ok {
		d.Send(tea.KeyMsg{Type: kt})
		return
	}
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
}

// Type sends s one rune at a time.
func (d *Driver) Type(s string) {
	d.t.Helper()
	for _, r := range s {
		d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func (d *Driver) Model() tea.Model { return d.model }

func (d *Driver) View() string { return d.model.View() }

// Quitting reports whether a tea.QuitMsg was produced.
func (d *Driver) Quitting() bool { return d.quitting }

var namedKeys = map[string]tea.KeyType{
	"enter":  tea.KeyEnter,
	"esc":    tea.KeyEsc,
	"up":     tea.KeyUp,
	"down":   tea.KeyDown,
	"left":   tea.KeyLeft,
	"right":  tea.KeyRight,
	"tab":    tea.KeyTab,
	"ctrl+c": tea.KeyCtrlC,
}

func (d *Driver) drain(cmd tea.Cmd, depth int) {
	d.t.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDrainDepth {
		d.t.Logf("teatest: drain depth limit (%d) reached", MaxDrainDepth)
		return
	}

	msg, ok := d.run(cmd)
	if !ok || msg == nil {
		return
	}

	switch msg := msg.(type) {
	case tea.BatchMsg:
		for _, sub := range msg {
			d.drain(sub, depth+1)
		}
	case tea.QuitMsg:
		d.quitting = true
		d.model, _ = d.model.Update(msg)
	default:
		var next tea.Cmd
		d.model, next = d.model.Update(msg)
		d.drain(next, depth+1)
	}
}

// run executes cmd, giving up after the driver timeout.
func (d *Driver) run(cmd tea.Cmd) (tea.Msg, bool) {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg, true
	case <-time.After(d.timeout):
		return nil, false
	}
}
