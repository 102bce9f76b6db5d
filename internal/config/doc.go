// Package config handles loading and validating TermClock settings.
//
// # Overview
//
// This package turns a YAML file, environment variables, and defaults into
// one immutable Settings record. Everything downstream (client, sources,
// renderer) reads Settings and never writes it, so all range checking
// happens here, before the terminal is taken over.
//
// # Resolution Order
//
// Later sources win:
//
//  1. Built-in defaults (Default)
//  2. The YAML config file
//  3. TERMCLOCK_* environment variables
//  4. Command-line flags (applied by the caller after Load)
//
// The config file is ~/.config/termclock/config.yaml unless an explicit path
// is given. A missing file at the default location is not an error; a missing
// file at an explicit path is, since the user asked for that file.
//
// # YAML Format
//
// Example config.yaml:
//
//	api_base_url: "http://192.168.1.20:8080"
//	device_code: "SENS-FARM01"
//	temp_refresh_interval: 5
//	time_scale_x: 2
//	time_scale_y: 2
//	date_scale_x: 1
//	time_color: white
//	date_color: yellow
//	todos_color: white
//	chime_enabled: true
//	todo_limit: 10
//	todo_task_max_chars: 20
//	main_window_percent: 80
//
// All keys are optional. Unknown keys are rejected so typos surface at
// startup instead of silently running on defaults. Color values are names
// from the fixed palette; unknown names degrade to the field's default color
// at render time rather than failing here.
//
// # Fallback Sources
//
// An empty api_base_url switches the program to its fallback data sources: a
// public weather service for temperature and, when todos_file is set, a
// watched local file for todos. device_code is only sent to the remote API.
//
// # Intervals
//
// temp_refresh_interval and todo_refresh_interval are seconds between
// fetches. todo_refresh_interval defaults to the temperature interval when
// omitted, which matches the single-interval behavior most users expect.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist at the default path)
//   - YAML parsing errors, including unknown keys
//   - Environment variables that fail to parse
//   - Range violations, reported as *ValidationError
//
// All of these are fatal: the process prints the error and exits before any
// terminal mode change, so the shell is never left in a broken state by a
// bad config.
package config
