package ui

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rb-plan/TermClock/internal/config"
	"github.com/rb-plan/TermClock/internal/source"
	"github.com/rb-plan/TermClock/internal/state"
)

// fetchTimeout is the hard stop for one source read. The HTTP clients carry
// their own shorter timeouts; this bound covers everything else, including
// a todos file on a hung mount.
const fetchTimeout = 10 * time.Second

// Options configures the UI.
type Options struct {
	Context     context.Context
	Settings    *config.Settings
	Temperature source.Temperature
	Todos       source.Todos // nil leaves the todo panel in its empty state
	Log         *slog.Logger
	Now         func() time.Time // nil uses time.Now
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx     context.Context
	cfg     *config.Settings
	tempSrc source.Temperature
	todoSrc source.Todos
	log     *slog.Logger
	now     func() time.Time

	// UI state
	styles Styles
	keys   keyMap
	spin   spinner.Model
	width  int
	height int
	ready  bool

	// Data state
	data state.Model

	// Fetch state. At most one fetch of each kind is in flight; the last
	// attempt times gate the poll intervals.
	tempInFlight  bool
	todosInFlight bool
	lastTempFetch time.Time
	lastTodoFetch time.Time

	// Chime state
	lastChimeHour int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	log := opts.Log
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	styles := newStyles(opts.Settings)
	spin := spinner.New()
	spin.Spinner = spinner.Line
	spin.Style = styles.Bar

	start := now()
	m := Model{
		ctx:     ctx,
		cfg:     opts.Settings,
		tempSrc: opts.Temperature,
		todoSrc: opts.Todos,
		log:     log,
		now:     now,
		styles:  styles,
		keys:    defaultKeyMap(),
		spin:    spin,
		// Seed with the start hour so a mid-hour launch never chimes.
		lastChimeHour: start.Hour(),
	}
	m.data.SetNow(start)

	// Init launches the first fetches; mark them in flight here so the
	// first ticks do not start duplicates.
	if m.tempSrc != nil {
		m.tempInFlight = true
		m.lastTempFetch = start
	}
	if m.todoSrc != nil {
		m.todosInFlight = true
		m.lastTodoFetch = start
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tickCmd(),
		m.spin.Tick,
	}
	if m.tempSrc != nil {
		cmds = append(cmds, m.fetchTemperatureCmd())
	}
	if m.todoSrc != nil {
		cmds = append(cmds, m.fetchTodosCmd())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		return m.handleTick(time.Time(msg))

	case tempResultMsg:
		m.tempInFlight = false
		if msg.err != nil {
			m.data.TemperatureFailed()
			m.log.Warn("temperature fetch failed", "error", msg.err)
			return m, nil
		}
		m.data.SetTemperature(msg.reading, m.now())
		m.log.Debug("temperature updated", "celsius", msg.reading.Celsius)
		return m, nil

	case todosResultMsg:
		m.todosInFlight = false
		if msg.err != nil {
			m.data.TodosFailed()
			m.log.Warn("todo fetch failed", "error", msg.err)
			return m, nil
		}
		m.data.SetTodos(msg.todos)
		m.log.Debug("todos updated", "count", len(msg.todos))
		return m, nil

	case TodosChangedMsg:
		if cmd := m.startTodoFetch(m.now()); cmd != nil {
			return m, cmd
		}
		return m, nil

	case spinner.TickMsg:
		if m.data.TempSettled {
			// First result is in; let the spinner tick chain die.
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	spin := ""
	if !m.data.TempSettled {
		spin = m.spin.View()
	}
	return renderFrame(frameInput{
		data:    m.data,
		cfg:     m.cfg,
		styles:  m.styles,
		width:   m.width,
		height:  m.height,
		spinner: spin,
	})
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Refresh):
		now := m.now()
		var cmds []tea.Cmd
		if cmd := m.startTempFetch(now); cmd != nil {
			cmds = append(cmds, cmd)
		}
		if cmd := m.startTodoFetch(now); cmd != nil {
			cmds = append(cmds, cmd)
		}
		if len(cmds) == 0 {
			return m, nil
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

// handleTick advances the clock, fires the chime on an hour boundary, and
// starts whichever fetches are due.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.data.SetNow(now)

	cmds := []tea.Cmd{tickCmd()}
	if cmd := m.chimeOnHour(now); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if now.Sub(m.lastTempFetch) >= m.cfg.TempInterval() {
		if cmd := m.startTempFetch(now); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if now.Sub(m.lastTodoFetch) >= m.cfg.TodoInterval() {
		if cmd := m.startTodoFetch(now); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

// chimeOnHour emits the chime when the hour has changed since the last one
// seen. Comparing hours rather than watching for :00:00 means a missed
// boundary tick still chimes exactly once.
func (m *Model) chimeOnHour(now time.Time) tea.Cmd {
	hour := now.Hour()
	if hour == m.lastChimeHour {
		return nil
	}
	m.lastChimeHour = hour
	if !m.cfg.ChimeEnabled {
		return nil
	}
	m.log.Debug("chime", "hour", hour, "strikes", chimeStrikes(hour))
	return chimeCmd(hour)
}

// startTempFetch begins a temperature fetch unless one is already running.
func (m *Model) startTempFetch(now time.Time) tea.Cmd {
	if m.tempSrc == nil || m.tempInFlight {
		return nil
	}
	m.tempInFlight = true
	m.lastTempFetch = now
	return m.fetchTemperatureCmd()
}

// startTodoFetch begins a todo fetch unless one is already running.
func (m *Model) startTodoFetch(now time.Time) tea.Cmd {
	if m.todoSrc == nil || m.todosInFlight {
		return nil
	}
	m.todosInFlight = true
	m.lastTodoFetch = now
	return m.fetchTodosCmd()
}

// Messages

type tickMsg time.Time

type tempResultMsg struct {
	reading source.Reading
	err     error
}

type todosResultMsg struct {
	todos []source.Todo
	err   error
}

// TodosChangedMsg reports that the watched todos file changed on disk. The
// file watcher delivers it through Program.Send; the model answers with an
// immediate reload, still subject to the one-in-flight rule.
type TodosChangedMsg struct{}

// Commands

// tickCmd schedules the next clock tick aligned to the wall-clock second, so
// the displayed seconds flip when real ones do.
func tickCmd() tea.Cmd {
	return tea.Every(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) fetchTemperatureCmd() tea.Cmd {
	src, parent := m.tempSrc, m.ctx
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, fetchTimeout)
		defer cancel()
		reading, err := src.ReadTemperature(ctx)
		return tempResultMsg{reading: reading, err: err}
	}
}

func (m Model) fetchTodosCmd() tea.Cmd {
	src, parent, limit := m.todoSrc, m.ctx, m.cfg.TodoLimit
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, fetchTimeout)
		defer cancel()
		todos, err := src.ReadTodos(ctx, limit)
		return todosResultMsg{todos: todos, err: err}
	}
}
