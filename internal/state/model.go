package state

import (
	"time"

	"github.com/rb-plan/TermClock/internal/source"
)

// graceFactor scales the poll interval into the freshness window. A reading
// older than interval*graceFactor renders as the placeholder even before a
// fetch reports failure; a wedged network must not leave hours-old data
// looking current.
const graceFactor = 3

// TemperatureReading is the last successful sample plus when it arrived.
type TemperatureReading struct {
	Celsius   float64
	Humidity  float64
	FetchedAt time.Time
}

// Model holds everything the renderer draws: the newest data of each kind,
// its staleness, and the wall-clock time. The event loop is the only writer;
// fetch results arrive as messages on its turn, so no locking is needed.
type Model struct {
	Temp        *TemperatureReading
	TempStale   bool
	TempSettled bool

	Todos      []source.Todo
	TodosStale bool

	Now time.Time
}

// SetNow advances the displayed clock. Called once per tick.
func (m *Model) SetNow(now time.Time) {
	m.Now = now
}

// SetTemperature records a successful sample and clears staleness.
func (m *Model) SetTemperature(r source.Reading, fetchedAt time.Time) {
	m.Temp = &TemperatureReading{
		Celsius:   r.Celsius,
		Humidity:  r.Humidity,
		FetchedAt: fetchedAt,
	}
	m.TempStale = false
	m.TempSettled = true
}

// TemperatureFailed keeps the previous reading, if any, and flags it stale.
func (m *Model) TemperatureFailed() {
	m.TempStale = true
	m.TempSettled = true
}

// SetTodos replaces the task list and clears staleness. The slice is copied;
// callers keep ownership of theirs.
func (m *Model) SetTodos(todos []source.Todo) {
	m.Todos = cloneTodos(todos)
	m.TodosStale = false
}

// TodosFailed keeps the previous list and flags it stale. Stale todos keep
// rendering; unlike temperature there is no placeholder for them.
func (m *Model) TodosFailed() {
	m.TodosStale = true
}

// TemperatureFresh reports whether the current reading should render as a
// value rather than the placeholder: present, not flagged stale, and younger
// than the freshness window for the given poll interval.
func (m *Model) TemperatureFresh(interval time.Duration) bool {
	if m.Temp == nil || m.TempStale {
		return false
	}
	return m.Now.Sub(m.Temp.FetchedAt) < interval*graceFactor
}

func cloneTodos(todos []source.Todo) []source.Todo {
	if len(todos) == 0 {
		return nil
	}
	dup := make([]source.Todo, len(todos))
	copy(dup, todos)
	return dup
}
