// Package source selects where temperature and todo data come from.
//
// # Overview
//
// The event loop does not care whether a reading came from the habitat API,
// a public weather service, or a text file on disk. This package defines the
// two provider interfaces the loop fetches through, and every
// implementation:
//
//   - HabitatTemperature / HabitatTodos: the remote habitat API
//   - Wttr: current local temperature from wttr.in (fallback)
//   - FileTodos: one task per line from a local file (fallback)
//
// # Selection
//
// The app wires sources from Settings: a non-empty api_base_url selects the
// habitat pair; otherwise temperature falls back to wttr.in, and todos fall
// back to todos_file when set. With neither configured for todos, the loop
// simply has no todo source and the panel shows its empty state.
//
// # Failure Shape
//
// Every source fails with *habitat.Error so the loop logs one taxonomy
// (network/protocol/decode) regardless of provider. For FileTodos a missing
// or unreadable file counts as a network-kind failure: the backing store was
// unreachable.
//
// # File Watching
//
// WatchFile turns filesystem changes of the todos file into reload
// callbacks, debounced so a burst of editor writes produces one fetch. The
// parent directory is watched rather than the file itself so atomic
// rename-into-place saves keep working.
package source
