package state

import (
	"testing"
	"time"

	"github.com/rb-plan/TermClock/internal/source"
)

func TestTemperatureFailedKeepsPreviousReading(t *testing.T) {
	var m Model
	at := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	m.SetTemperature(source.Reading{Celsius: 21.5, Humidity: 40}, at)

	m.TemperatureFailed()

	if m.Temp == nil {
		t.Fatalf("Temp = nil after failure, want previous reading kept")
	}
	if m.Temp.Celsius != 21.5 {
		t.Fatalf("Celsius = %v, want 21.5 unchanged", m.Temp.Celsius)
	}
	if !m.TempStale {
		t.Fatalf("TempStale = false after failure, want true")
	}
}

func TestTemperatureFreshness(t *testing.T) {
	at := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	interval := 5 * time.Second

	tests := []struct {
		name string
		prep func(*Model)
		now  time.Time
		want bool
	}{
		{
			name: "no reading yet",
			prep: func(m *Model) {},
			now:  at,
			want: false,
		},
		{
			name: "just fetched",
			prep: func(m *Model) { m.SetTemperature(source.Reading{Celsius: 1}, at) },
			now:  at.Add(time.Second),
			want: true,
		},
		{
			name: "within grace window",
			prep: func(m *Model) { m.SetTemperature(source.Reading{Celsius: 1}, at) },
			now:  at.Add(14 * time.Second),
			want: true,
		},
		{
			name: "past grace window",
			prep: func(m *Model) { m.SetTemperature(source.Reading{Celsius: 1}, at) },
			now:  at.Add(15 * time.Second),
			want: false,
		},
		{
			name: "flagged stale by failure",
			prep: func(m *Model) {
				m.SetTemperature(source.Reading{Celsius: 1}, at)
				m.TemperatureFailed()
			},
			now:  at.Add(time.Second),
			want: false,
		},
		{
			name: "success clears stale flag",
			prep: func(m *Model) {
				m.SetTemperature(source.Reading{Celsius: 1}, at)
				m.TemperatureFailed()
				m.SetTemperature(source.Reading{Celsius: 2}, at.Add(2*time.Second))
			},
			now:  at.Add(3 * time.Second),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Model
			tt.prep(&m)
			m.SetNow(tt.now)
			if got := m.TemperatureFresh(interval); got != tt.want {
				t.Fatalf("TemperatureFresh = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSetTodosCopiesInput(t *testing.T) {
	var m Model
	todos := []source.Todo{{Task: "a"}, {Task: "b"}}
	m.SetTodos(todos)

	todos[0].Task = "mutated"
	if m.Todos[0].Task != "a" {
		t.Fatalf("Todos[0].Task = %q, want copy unaffected by caller mutation", m.Todos[0].Task)
	}
}

func TestTodosFailedKeepsPreviousList(t *testing.T) {
	var m Model
	m.SetTodos([]source.Todo{{Task: "a"}})

	m.TodosFailed()

	if len(m.Todos) != 1 || m.Todos[0].Task != "a" {
		t.Fatalf("Todos = %+v after failure, want previous list kept", m.Todos)
	}
	if !m.TodosStale {
		t.Fatalf("TodosStale = false after failure, want true")
	}

	m.SetTodos(nil)
	if m.TodosStale {
		t.Fatalf("TodosStale = true after success, want false")
	}
	if len(m.Todos) != 0 {
		t.Fatalf("Todos = %+v, want empty after empty success", m.Todos)
	}
}

func TestTempSettledTracksFirstResult(t *testing.T) {
	var m Model
	if m.TempSettled {
		t.Fatalf("TempSettled = true on zero Model, want false")
	}
	m.TemperatureFailed()
	if !m.TempSettled {
		t.Fatalf("TempSettled = false after first failure, want true")
	}
}
