package teatest

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type bumpMsg struct{}

type counter struct {
	n     int
	width int
	last  string
}

func (c *counter) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return bumpMsg{} },
		tea.Tick(time.Hour, func(time.Time) tea.Msg { return bumpMsg{} }),
	)
}

func (c *counter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width = msg.Width
	case bumpMsg:
		c.n++
	case tea.KeyMsg:
		c.last = msg.String()
		switch msg.String() {
		case "q":
			return c, tea.Quit
		case "+":
			return c, func() tea.Msg { return bumpMsg{} }
		}
	}
	return c, nil
}

func (c *counter) View() string { return c.last }

func TestDriver_InitDrainsAndDropsBlockingCmds(t *testing.T) {
	d := New(t, &counter{}, WithSize(80, 24), WithCmdTimeout(10*time.Millisecond))
	d.Init()

	c := d.Model().(*counter)
	assert.Equal(t, 1, c.n)
	assert.Equal(t, 80, c.width)
}

func TestDriver_PressFollowsCmds(t *testing.T) {
	d := New(t, &counter{})

	d.Press("+")
	d.Press("+")
	d.Press("left")

	assert.Equal(t, 2, d.Model().(*counter).n)
	assert.Equal(t, "left", d.View())
}

func TestDriver_QuitStopsFurtherInput(t *testing.T) {
	d := New(t, &counter{})

	d.Type("q+")

	assert.True(t, d.Quitting())
	assert.Equal(t, 0, d.Model().(*counter).n)
}
