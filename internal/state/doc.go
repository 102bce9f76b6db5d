// Package state holds the data the renderer draws.
//
// # Overview
//
// This package implements the Model: the latest temperature reading, the
// latest todo list, the wall-clock time, and staleness bookkeeping for each.
// It has no behavior beyond storage and freshness math. Everything else
// (when to fetch, what to draw) lives in the event loop and the renderer.
//
// # Ownership
//
// The Model has exactly one writer: the event loop. Fetches run off the
// loop, but their results come back as messages handled on the loop's turn,
// so the Model never sees concurrent mutation and carries no lock:
//
//	fetch goroutine:               event loop:
//	┌───────────────────┐          ┌──────────────────────┐
//	│ ReadTemperature() │──msg────→│ m.SetTemperature(…)  │
//	└───────────────────┘          │ render(m)            │
//	                               └──────────────────────┘
//
// A background poller writing directly into shared state would need a
// RWMutex here; the message handoff makes that redundant.
//
// # Update Semantics
//
// Success replaces a field and clears its stale flag. Failure leaves the
// field untouched and sets the flag:
//
//	m.SetTemperature(r, now)  → value replaced, fresh
//	m.TemperatureFailed()     → value kept, stale, placeholder renders
//	m.SetTodos(list)          → list replaced (copied), fresh
//	m.TodosFailed()           → list kept, stale, keeps rendering
//
// The asymmetry is deliberate: a stale temperature shows the placeholder
// because a wrong number misleads, while a stale todo list is still the
// right list of things to do.
//
// # Freshness
//
// TemperatureFresh answers "value or placeholder" for the renderer. A
// reading is fresh while it is present, not flagged stale, and younger than
// three poll intervals. The factor of three tolerates a couple of missed
// polls before the display stops claiming a current value.
//
// # Copying
//
// SetTodos copies the incoming slice so a source reusing its buffer cannot
// mutate what the renderer is drawing.
package state
