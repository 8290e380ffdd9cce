// Package teatest drives bubbletea models synchronously in tests.
//
// Instead of running a tea.Program, the Driver calls Update directly and
// executes every returned Cmd inline, feeding the resulting messages back
// into the model until nothing is left to do. Cmds that block (cursor blink
// timers) are abandoned after a short timeout.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxDepth bounds how many Cmd generations a single message may trigger.
const maxDepth = 100

// cmdTimeout separates message factories, which return at once, from blink
// timers, which sleep for roughly half a second.
const cmdTimeout = 10 * time.Millisecond

// Driver feeds key presses to a model and keeps the latest model value.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once a tea.QuitMsg has been produced.
	Quitting bool
}

type Option func(*Driver)

// WithSize delivers a WindowSizeMsg before anything else.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.Model, _ = d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DrainInit runs the model's Init command.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.run(d.Model.Init(), 0)
}

// Send delivers msg and runs every Cmd it causes. Messages sent after the
// model quit are dropped.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	var cmd tea.Cmd
	d.Model, cmd = d.Model.Update(msg)
	d.run(cmd, 0)
}

func (d *Driver) SendKey(msg tea.KeyMsg) {
	d.T.Helper()
	d.Send(msg)
}

// PressKey sends a single printable rune.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// Press sends a special key such as tea.KeyEnter.
func (d *Driver) Press(k tea.KeyType) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: k})
}

func (d *Driver) PressEnter() { d.T.Helper(); d.Press(tea.KeyEnter) }
func (d *Driver) PressEsc()   { d.T.Helper(); d.Press(tea.KeyEsc) }
func (d *Driver) PressUp()    { d.T.Helper(); d.Press(tea.KeyUp) }
func (d *Driver) PressDown()  { d.T.Helper(); d.Press(tea.KeyDown) }

// Type sends s one rune at a time.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.PressKey(r)
	}
}

func (d *Driver) View() string {
	return d.Model.View()
}

func (d *Driver) run(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= maxDepth {
		d.T.Logf("teatest: gave up after %d nested commands", maxDepth)
		return
	}

	msg := callWithTimeout(cmd)
	switch msg := msg.(type) {
	case nil:
		return
	case tea.BatchMsg:
		for _, sub := range msg {
			d.run(sub, depth+1)
		}
		return
	case tea.QuitMsg:
		d.Quitting = true
		d.Model, _ = d.Model.Update(msg)
		return
	}
	if isBlink(msg) {
		return
	}

	var next tea.Cmd
	d.Model, next = d.Model.Update(msg)
	d.run(next, depth+1)
}

func callWithTimeout(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}

// isBlink matches the unexported blink message types of bubbles/cursor.
func isBlink(msg tea.Msg) bool {
	return strings.Contains(strings.ToLower(fmt.Sprintf("%T", msg)), "blink")
}
