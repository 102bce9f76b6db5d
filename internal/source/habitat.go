package source

import (
	"context"

	"github.com/rb-plan/TermClock/internal/habitat"
)

// HabitatTemperature reads the device's newest sample from the habitat API.
type HabitatTemperature struct {
	Client     *habitat.Client
	DeviceCode string
}

func (h HabitatTemperature) ReadTemperature(ctx context.Context) (Reading, error) {
	reading, err := h.Client.FetchTemperature(ctx, h.DeviceCode)
	if err != nil {
		return Reading{}, err
	}
	return Reading{Celsius: reading.Celsius, Humidity: reading.Humidity}, nil
}

// HabitatTodos reads open tasks from the habitat API.
type HabitatTodos struct {
	Client *habitat.Client
}

func (h HabitatTodos) ReadTodos(ctx context.Context, limit int) ([]Todo, error) {
	rows, err := h.Client.FetchTodos(ctx, limit)
	if err != nil {
		return nil, err
	}
	todos := make([]Todo, 0, len(rows))
	for _, row := range rows {
		todos = append(todos, Todo{Task: row.Task, Deadline: row.Deadline, Done: row.Completed})
	}
	return todos, nil
}
