// Package ui renders the TermClock terminal surface and owns its event loop.
//
// # Architecture Overview
//
// The package implements a Bubble Tea application: a single Model value, an
// Update function that folds every event into the next Model, and a View
// function that draws the whole screen from scratch. There is no partial
// redraw and no widget tree; one frame is one string.
//
// # Package Structure
//
//   - app.go: the tea.Model (Options, New, Init, Update, View), messages,
//     and the fetch commands
//   - frame.go: renderFrame, the pure (model, settings, viewport) to frame
//     function, and the panel renderers it composes
//   - clock.go: the big-digit glyph font, scaling, and the date line
//   - thermometer.go: the temperature gauge
//   - todos.go: the todo panel body
//   - theme.go: the color name palette and the per-run lipgloss styles
//   - layout.go: viewport split thresholds
//   - keys.go: key bindings
//   - chime.go: the hourly bell
//
// # Event Flow
//
//  1. Init starts the second-aligned tick chain, the spinner, and the first
//     fetch of each configured source.
//  2. Every tick advances the displayed time, chimes when the hour changed,
//     and starts any fetch whose interval has elapsed.
//  3. Fetches run as commands off the update thread; completions come back
//     as typed result messages and are folded into the model. A failure
//     only marks the affected value stale.
//  4. The "r" key forces both fetches; a TodosChangedMsg from the file
//     watcher forces the todo fetch. Both respect the one-in-flight rule.
//  5. Quit keys stop the program; Bubble Tea restores the terminal on every
//     exit path.
//
// # Fetch Discipline
//
// At most one fetch per data kind is ever in flight, tracked by a boolean on
// the Model. Fetch commands carry their own timeout and inherit the program
// context, so shutdown abandons them and late results are simply dropped
// with the program. The model is only ever mutated on the update thread;
// no locks exist in this package.
//
// # Rendering
//
// renderFrame is pure. It splits the viewport by main_window_percent, stacks
// the clock glyphs, date, and thermometer in the main block, and borders the
// todo list beside them. Every line is clipped to its panel before styling,
// so a frame never exceeds the viewport in either dimension; panels that
// cannot fit are dropped whole. Stale temperature readings render as the
// "--" placeholder, while stale todos keep showing the last list.
//
// # Key Bindings
//
//   - q, Esc, Ctrl+C: quit
//   - r: refresh both sources now
package ui
