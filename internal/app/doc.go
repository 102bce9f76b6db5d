// Package app provides the orchestration layer for TermClock.
//
// # Overview
//
// This package wires configuration, data sources, and the UI into the
// running program. It is the composition root: nothing here implements
// behavior of its own beyond choosing and connecting the pieces.
//
// # Startup Sequence
//
//  1. Pick data sources from the settings: the habitat API when a base URL
//     is configured, otherwise the wttr.in weather service for temperature
//     and the optional local todos file.
//  2. Build the Bubble Tea program with the alternate screen and the
//     caller's context.
//  3. When running from a local todos file, start the fsnotify watcher and
//     pump its change events into the program as messages.
//  4. Run the program until the user quits or the context is cancelled.
//
// # Data Flow
//
//	Run()
//	 ├─> buildSources()   habitat client, or wttr.in + todos file
//	 ├─> ui.New()         the Bubble Tea model
//	 ├─> source.WatchFile()  file change -> p.Send(TodosChangedMsg)
//	 └─> p.Run()          blocks; owns the terminal
//
// All polling happens inside the UI's event loop; this package starts no
// poll goroutines of its own. The watcher goroutine is the one background
// task, and it only forwards events into the program's queue.
//
// # Error Handling
//
// Fatal errors (returned from Run): a malformed API base URL and terminal
// setup failures. Everything recoverable, including a todos file that
// cannot be watched, is logged and survived; a watch failure just means the
// list refreshes on its poll interval only. Context cancellation is a clean
// shutdown, not an error.
package app
