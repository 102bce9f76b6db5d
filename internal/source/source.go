package source

import "context"

// Reading is one temperature sample, however it was obtained.
type Reading struct {
	Celsius  float64
	Humidity float64
}

// Todo is one task to display. Deadline is empty for sources without a
// deadline concept. Done records the server's state; fetches filter on
// pending, so it stays false in practice.
type Todo struct {
	Task     string
	Deadline string
	Done     bool
}

// Temperature supplies the current temperature.
type Temperature interface {
	ReadTemperature(ctx context.Context) (Reading, error)
}

// Todos supplies the current task list, at most limit entries.
type Todos interface {
	ReadTodos(ctx context.Context, limit int) ([]Todo, error)
}
