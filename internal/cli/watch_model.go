package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/slotlog/internal/app"
	"github.com/alexanderramin/slotlog/internal/cli/formatter"
	"github.com/alexanderramin/slotlog/internal/domain"
	"github.com/alexanderramin/slotlog/internal/reminder"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const watchRefresh = 15 * time.Second

// ── keys ─────────────────────────────────────────────────────────────────────

type watchKeyMap struct {
	Prev    key.Binding
	Next    key.Binding
	Today   key.Binding
	Slots   key.Binding
	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultWatchKeys() watchKeyMap {
	return watchKeyMap{
		Prev:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
		Next:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		Today:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Slots:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "all slots")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k watchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Today, k.Help, k.Quit}
}

func (k watchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Today},
		{k.Slots, k.Refresh, k.Help, k.Quit},
	}
}

// ── messages ─────────────────────────────────────────────────────────────────

type dayLoadedMsg struct {
	date string
	day  *app.DayResponse
	err  error
}

type watchTickMsg time.Time

type reminderCheckedMsg struct {
	reminder *reminder.Reminder
	err      error
}

// ── model ────────────────────────────────────────────────────────────────────

// watchModel shows one day and rebuilds it on every tick. While it follows
// today it moves to the new date at midnight.
type watchModel struct {
	ctx     context.Context
	app     *App
	watcher *reminder.Watcher

	date        string
	followToday bool
	everySlot   bool
	refresh     time.Duration

	day      *app.DayResponse
	err      error
	reminder *reminder.Reminder

	keys   watchKeyMap
	help   help.Model
	width  int
	height int
}

func newWatchModel(ctx context.Context, a *App, date string, watcher *reminder.Watcher) *watchModel {
	follow := date == ""
	if follow {
		date = a.today()
	}
	return &watchModel{
		ctx:         ctx,
		app:         a,
		watcher:     watcher,
		date:        date,
		followToday: follow,
		refresh:     watchRefresh,
		keys:        defaultWatchKeys(),
		help:        help.New(),
	}
}

func (m *watchModel) Init() tea.Cmd {
	return tea.Batch(m.load(), m.check(), m.tick())
}

func (m *watchModel) load() tea.Cmd {
	a, ctx, date := m.app, m.ctx, m.date
	return func() tea.Msg {
		now := a.now()
		day, err := a.Days.Day(ctx, app.DayRequest{Date: date, Now: &now})
		return dayLoadedMsg{date: date, day: day, err: err}
	}
}

func (m *watchModel) check() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	w, ctx := m.watcher, m.ctx
	return func() tea.Msg {
		r, err := w.Check(ctx)
		return reminderCheckedMsg{reminder: r, err: err}
	}
}

// tick returns nil when refresh is zero, which disables polling.
func (m *watchModel) tick() tea.Cmd {
	if m.refresh <= 0 {
		return nil
	}
	return tea.Tick(m.refresh, func(t time.Time) tea.Msg { return watchTickMsg(t) })
}

func (m *watchModel) setDate(date string) tea.Cmd {
	m.date = date
	m.day = nil
	return m.load()
}

func (m *watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Prev):
			m.followToday = false
			return m, m.setDate(domain.AddDays(m.date, -1))
		case key.Matches(msg, m.keys.Next):
			m.followToday = false
			return m, m.setDate(domain.AddDays(m.date, 1))
		case key.Matches(msg, m.keys.Today):
			m.followToday = true
			return m, m.setDate(m.app.today())
		case key.Matches(msg, m.keys.Slots):
			m.everySlot = !m.everySlot
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			return m, m.load()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		return m, nil

	case dayLoadedMsg:
		if msg.date != m.date {
			return m, nil
		}
		m.day, m.err = msg.day, msg.err
		return m, nil

	case watchTickMsg:
		cmds := []tea.Cmd{m.check(), m.tick()}
		if today := m.app.today(); m.followToday && m.date != today {
			cmds = append(cmds, m.setDate(today))
		} else {
			cmds = append(cmds, m.load())
		}
		return m, tea.Batch(cmds...)

	case reminderCheckedMsg:
		if msg.err != nil {
			m.app.logger().Error("reminder_check_failed", "error", msg.err.Error())
			return m, nil
		}
		if msg.reminder != nil {
			m.reminder = msg.reminder
		}
		return m, nil
	}

	return m, nil
}

func (m *watchModel) View() string {
	var b strings.Builder

	b.WriteString(formatter.StyleHeader.Render("SLOTLOG"))
	if m.day != nil {
		b.WriteString("  " + formatter.ModeBadge(m.day.Settings.NotificationMode))
	}
	b.WriteString("\n\n")

	if m.reminder != nil {
		clock := domain.Clock24
		if m.day != nil {
			clock = m.day.Settings.ClockFormat
		}
		at := formatter.FormatMinuteTime(m.reminder.At.Hour()*60+m.reminder.At.Minute(), clock)
		b.WriteString(formatter.StyleYellow.Render(fmt.Sprintf("⏰ %s  %s", at, reminder.Body)))
		b.WriteString("\n\n")
	}

	switch {
	case m.err != nil:
		b.WriteString(formatter.StyleRed.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	case m.day == nil:
		b.WriteString(formatter.Dim("Loading " + m.date + "…"))
		b.WriteString("\n")
	default:
		b.WriteString(formatter.FormatDay(m.day, m.app.now(), m.everySlot))
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
