package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Settings captures everything TermClock reads at startup. It is built once
// by Load and never mutated afterwards; the UI only reads it.
type Settings struct {
	APIBaseURL          string `yaml:"api_base_url" env:"TERMCLOCK_API_BASE_URL"`
	DeviceCode          string `yaml:"device_code" env:"TERMCLOCK_DEVICE_CODE"`
	TempRefreshInterval int    `yaml:"temp_refresh_interval" env:"TERMCLOCK_TEMP_REFRESH_INTERVAL"`
	TodoRefreshInterval int    `yaml:"todo_refresh_interval" env:"TERMCLOCK_TODO_REFRESH_INTERVAL"`
	TimeScaleX          int    `yaml:"time_scale_x" env:"TERMCLOCK_TIME_SCALE_X"`
	TimeScaleY          int    `yaml:"time_scale_y" env:"TERMCLOCK_TIME_SCALE_Y"`
	DateScaleX          int    `yaml:"date_scale_x" env:"TERMCLOCK_DATE_SCALE_X"`
	TimeColor           string `yaml:"time_color" env:"TERMCLOCK_TIME_COLOR"`
	DateColor           string `yaml:"date_color" env:"TERMCLOCK_DATE_COLOR"`
	TempColor           string `yaml:"temp_color" env:"TERMCLOCK_TEMP_COLOR"`
	TodosColor          string `yaml:"todos_color" env:"TERMCLOCK_TODOS_COLOR"`
	ChimeEnabled        bool   `yaml:"chime_enabled" env:"TERMCLOCK_CHIME_ENABLED"`
	TodoLimit           int    `yaml:"todo_limit" env:"TERMCLOCK_TODO_LIMIT"`
	TodoTaskMaxChars    int    `yaml:"todo_task_max_chars" env:"TERMCLOCK_TODO_TASK_MAX_CHARS"`
	MainWindowPercent   int    `yaml:"main_window_percent" env:"TERMCLOCK_MAIN_WINDOW_PERCENT"`
	TodosFile           string `yaml:"todos_file" env:"TERMCLOCK_TODOS_FILE"`
	LogFile             string `yaml:"log_file" env:"TERMCLOCK_LOG_FILE"`
}

const defaultConfigPath = "~/.config/termclock/config.yaml"

// ValidationError reports a Settings field outside its allowed range. It is
// fatal at startup, before the terminal is taken over.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s %s", e.Field, e.Reason)
}

// Default returns the Settings used when no file, environment, or flag says
// otherwise.
func Default() Settings {
	return Settings{
		DeviceCode:          "SENS-FARM01",
		TempRefreshInterval: 5,
		TimeScaleX:          2,
		TimeScaleY:          2,
		DateScaleX:          1,
		TimeColor:           "white",
		DateColor:           "yellow",
		TempColor:           "yellow",
		TodosColor:          "white",
		ChimeEnabled:        true,
		TodoLimit:           10,
		TodoTaskMaxChars:    20,
		MainWindowPercent:   80,
	}
}

// Load resolves and parses the configuration. A missing file at the default
// path falls back to defaults; a missing file at an explicitly given path is
// an error. Environment variables override file values.
func Load(path string) (Settings, error) {
	explicit := strings.TrimSpace(path) != ""

	resolved, err := resolvePath(path)
	if err != nil {
		return Settings{}, err
	}

	s := Default()

	raw, err := os.ReadFile(resolved)
	switch {
	case err == nil:
		if err := decodeStrict(raw, &s); err != nil {
			return Settings{}, fmt.Errorf("parse config %s: %w", resolved, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// No file at the default location: run on defaults.
	default:
		return Settings{}, fmt.Errorf("open config: %w", err)
	}

	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse environment: %w", err)
	}

	s.APIBaseURL = strings.TrimSpace(s.APIBaseURL)
	s.DeviceCode = strings.TrimSpace(s.DeviceCode)
	if s.TodosFile = strings.TrimSpace(s.TodosFile); s.TodosFile != "" {
		s.TodosFile = mustExpand(s.TodosFile)
	}
	if s.LogFile = strings.TrimSpace(s.LogFile); s.LogFile != "" {
		s.LogFile = mustExpand(s.LogFile)
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// decodeStrict rejects unknown keys so config typos fail at startup instead
// of silently running on defaults.
func decodeStrict(raw []byte, s *Settings) error {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}

// Validate checks every range constraint. The zero Settings is invalid;
// callers should start from Default.
func (s Settings) Validate() error {
	if s.TempRefreshInterval < 1 {
		return &ValidationError{Field: "temp_refresh_interval", Reason: "must be at least 1 second"}
	}
	if s.TodoRefreshInterval < 0 {
		return &ValidationError{Field: "todo_refresh_interval", Reason: "must not be negative"}
	}
	if s.TimeScaleX < 1 {
		return &ValidationError{Field: "time_scale_x", Reason: "must be a positive integer"}
	}
	if s.TimeScaleY < 1 {
		return &ValidationError{Field: "time_scale_y", Reason: "must be a positive integer"}
	}
	if s.DateScaleX < 1 {
		return &ValidationError{Field: "date_scale_x", Reason: "must be a positive integer"}
	}
	if s.TodoLimit < 0 {
		return &ValidationError{Field: "todo_limit", Reason: "must not be negative"}
	}
	if s.TodoTaskMaxChars < 1 {
		return &ValidationError{Field: "todo_task_max_chars", Reason: "must be at least 1"}
	}
	if s.MainWindowPercent < 1 || s.MainWindowPercent > 99 {
		return &ValidationError{Field: "main_window_percent", Reason: "must be between 1 and 99"}
	}
	return nil
}

// TempInterval returns the temperature poll cadence.
func (s Settings) TempInterval() time.Duration {
	return time.Duration(s.TempRefreshInterval) * time.Second
}

// TodoInterval returns the todo poll cadence. Zero in the config means
// "same as temperature".
func (s Settings) TodoInterval() time.Duration {
	if s.TodoRefreshInterval < 1 {
		return s.TempInterval()
	}
	return time.Duration(s.TodoRefreshInterval) * time.Second
}

// UseRemote reports whether the remote API serves data; when false the
// fallback sources (weather service, todos file) apply.
func (s Settings) UseRemote() bool {
	return s.APIBaseURL != ""
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
