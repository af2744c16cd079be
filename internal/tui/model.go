// Package tui es la vista de línea de tiempo en la terminal. El Model de bubbletea
// guarda el estado (cache de registros, modal, reloj) y los mensajes son los únicos
// canales de actualización.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pet-activity-log/internal/domain/acts"
	"pet-activity-log/internal/domain/timeline"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	ClockInterval  = 5 * time.Second
	PollInterval   = 10 * time.Second
	ReloadInterval = time.Minute

	requestTimeout = 5 * time.Second
	headerLines    = 5
)

// Store es lo que la vista necesita del servidor.
type Store interface {
	List(ctx context.Context) ([]acts.Act, error)
	Create(ctx context.Context, a acts.Act) (acts.Act, error)
}

type Options struct {
	Timeline timeline.Options
	Poll     time.Duration // 0 = PollInterval
	Now      func() time.Time
	Styles   *Styles
}

type (
	actsLoadedMsg  struct{ items []acts.Act }
	fetchFailedMsg struct{ err error }
	actSavedMsg    struct {
		act acts.Act
		err error
	}
	clockTickMsg  time.Time
	pollTickMsg   time.Time
	reloadTickMsg time.Time
)

type Model struct {
	store  Store
	opts   Options
	now    func() time.Time
	styles Styles

	items  []acts.Act
	slots  []timeline.Slot
	since  []timeline.SinceEntry
	clock  string
	err    error
	status string

	modalOpen bool
	cursor    int

	viewport viewport.Model
	width    int
	height   int
}

func New(store Store, opts Options) Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	if opts.Poll <= 0 {
		opts.Poll = PollInterval
	}
	styles := DefaultStyles()
	if opts.Styles != nil {
		styles = *opts.Styles
	}

	m := Model{
		store:    store,
		opts:     opts,
		now:      now,
		styles:   styles,
		viewport: viewport.New(80, 20),
	}
	m.rebuild()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.fetchCmd(),
		tea.Tick(ClockInterval, func(t time.Time) tea.Msg { return clockTickMsg(t) }),
		tea.Tick(m.opts.Poll, func(t time.Time) tea.Msg { return pollTickMsg(t) }),
		tea.Tick(ReloadInterval, func(t time.Time) tea.Msg { return reloadTickMsg(t) }),
	)
}

func (m Model) fetchCmd() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		items, err := store.List(ctx)
		if err != nil {
			return fetchFailedMsg{err: err}
		}
		return actsLoadedMsg{items: items}
	}
}

func (m Model) saveCmd(a acts.Act) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		saved, err := store.Create(ctx, a)
		return actSavedMsg{act: saved, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-headerLines-len(m.since), 3)
		m.render()
		return m, nil

	case tea.KeyMsg:
		if m.modalOpen {
			return m.updateModal(msg)
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "+", "a":
			m.modalOpen = true
			m.cursor = 0
			return m, nil
		case "r":
			return m, m.fetchCmd()
		}

	case actsLoadedMsg:
		m.items = msg.items
		m.err = nil
		m.rebuild()
		return m, nil

	case fetchFailedMsg:
		// Se mantiene la cache; solo se muestra el error.
		m.err = msg.err
		return m, nil

	case actSavedMsg:
		if msg.err != nil {
			m.err = fmt.Errorf("save failed: %w", msg.err)
			return m, nil
		}
		m.err = nil
		m.status = fmt.Sprintf("saved %s", msg.act.Text)
		return m, m.fetchCmd()

	case clockTickMsg:
		m.clock = timeline.ClockLabel(m.now(), m.opts.Timeline.Location)
		m.since = timeline.Since(m.now(), m.items)
		return m, tea.Tick(ClockInterval, func(t time.Time) tea.Msg { return clockTickMsg(t) })

	case pollTickMsg:
		return m, tea.Batch(
			m.fetchCmd(),
			tea.Tick(m.opts.Poll, func(t time.Time) tea.Msg { return pollTickMsg(t) }),
		)

	case reloadTickMsg:
		next := tea.Tick(ReloadInterval, func(t time.Time) tea.Msg { return reloadTickMsg(t) })
		if timeline.ReloadDue(m.now(), m.slotWidth(), m.opts.Timeline.Location) {
			m.rebuild()
			return m, tea.Batch(m.fetchCmd(), next)
		}
		return m, next
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cats := acts.Categories()
	switch msg.String() {
	case "esc":
		m.modalOpen = false
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(cats)-1 {
			m.cursor++
		}
	case "enter":
		m.modalOpen = false
		return m, m.saveCmd(acts.New(cats[m.cursor].Type, m.now()))
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) slotWidth() time.Duration {
	if m.opts.Timeline.SlotWidth < time.Minute {
		return timeline.DefaultSlotWidth
	}
	return m.opts.Timeline.SlotWidth
}

// rebuild re-ancla los slots contra la hora actual y redistribuye la cache.
func (m *Model) rebuild() {
	now := m.now()
	m.slots = timeline.Build(now, m.items, m.opts.Timeline)
	m.since = timeline.Since(now, m.items)
	m.clock = timeline.ClockLabel(now, m.opts.Timeline.Location)
	m.render()
}

func (m *Model) render() {
	var sb strings.Builder
	for _, s := range m.slots {
		label := m.styles.Label.Render(s.Label)
		if s.HourMark {
			label = m.styles.HourMark.Render(s.Label)
		}
		sb.WriteString(label)
		for _, a := range s.Acts {
			sb.WriteString(" ")
			sb.WriteString(chip(a))
		}
		sb.WriteString("\n")
	}
	m.viewport.SetContent(sb.String())
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Title.Render("Pet activity log"))
	sb.WriteString("  ")
	sb.WriteString(m.styles.Clock.Render(m.clock))
	sb.WriteString("\n")

	for _, e := range m.since {
		sb.WriteString(m.styles.Since.Render(fmt.Sprintf("%-18s %s", e.Category.Label, e.Hours())))
		sb.WriteString("\n")
	}

	switch {
	case m.err != nil:
		sb.WriteString(m.styles.Error.Render(m.err.Error()))
	case m.status != "":
		sb.WriteString(m.styles.Help.Render(m.status))
	}
	sb.WriteString("\n")

	if m.modalOpen {
		sb.WriteString(m.modalView())
	} else {
		sb.WriteString(m.viewport.View())
	}
	sb.WriteString("\n")
	sb.WriteString(m.styles.Help.Render("+/a add  r refresh  ↑/↓ scroll  q quit"))
	return sb.String()
}

func (m Model) modalView() string {
	var sb strings.Builder
	sb.WriteString("Add activity\n\n")
	for i, c := range acts.Categories() {
		line := "  " + chip(acts.Act{Type: c.Type, Text: c.Label})
		if i == m.cursor {
			line = m.styles.Cursor.Render("> ") + chip(acts.Act{Type: c.Type, Text: c.Label})
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString("\nenter save  esc cancel")
	return m.styles.Modal.Render(sb.String())
}
