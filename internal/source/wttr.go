package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rb-plan/TermClock/internal/habitat"
)

// wttrURL asks wttr.in for the current temperature at the caller's
// location as plain text, e.g. "+21°C".
const wttrURL = "https://wttr.in/?format=%t"

const wttrTimeout = 5 * time.Second

// Wttr reads the ambient temperature from the public wttr.in weather
// service. It is the temperature fallback when no habitat API is
// configured; it carries no humidity channel.
type Wttr struct {
	http *http.Client
	url  string
}

// NewWttr builds the wttr.in-backed temperature source.
func NewWttr() *Wttr {
	return &Wttr{
		http: &http.Client{Timeout: wttrTimeout},
		url:  wttrURL,
	}
}

func (w *Wttr) ReadTemperature(ctx context.Context) (Reading, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.url, nil)
	if err != nil {
		return Reading{}, &habitat.Error{Op: "temperature", Kind: habitat.KindNetwork, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("User-Agent", "termclock/0.1")

	resp, err := w.http.Do(req)
	if err != nil {
		return Reading{}, &habitat.Error{Op: "temperature", Kind: habitat.KindNetwork, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Reading{}, &habitat.Error{
			Op:     "temperature",
			Kind:   habitat.KindProtocol,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64))
	if err != nil {
		return Reading{}, &habitat.Error{Op: "temperature", Kind: habitat.KindNetwork, Err: fmt.Errorf("read response: %w", err)}
	}

	celsius, err := parseWttr(string(raw))
	if err != nil {
		return Reading{}, &habitat.Error{Op: "temperature", Kind: habitat.KindDecode, Err: err}
	}
	return Reading{Celsius: celsius}, nil
}

// parseWttr turns wttr.in's "%t" answer into degrees. The service writes
// an explicit sign and a unit suffix: "+21°C", "-3°C", sometimes already
// "℃".
func parseWttr(body string) (float64, error) {
	s := strings.TrimSpace(body)
	s = strings.TrimSuffix(s, "℃")
	s = strings.TrimSuffix(s, "°C")
	s = strings.TrimPrefix(s, "+")
	if s == "" {
		return 0, fmt.Errorf("empty temperature in %q", body)
	}
	celsius, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse temperature %q: %w", body, err)
	}
	return celsius, nil
}
