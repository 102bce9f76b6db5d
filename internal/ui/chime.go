package ui

import (
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// chimeGap separates consecutive strikes so they register as distinct bells.
const chimeGap = 200 * time.Millisecond

// bell is the terminal alert control character.
const bell = "\a"

// chimeStrikes returns how many bell signals the given hour gets: two at
// midnight and noon, one otherwise.
func chimeStrikes(hour int) int {
	if hour%12 == 0 {
		return 2
	}
	return 1
}

// chimeCmd emits the hourly chime. The writes (and the gap between strikes)
// happen inside the command so the update loop never blocks on them.
func chimeCmd(hour int) tea.Cmd {
	strikes := chimeStrikes(hour)
	return func() tea.Msg {
		for i := 0; i < strikes; i++ {
			if i > 0 {
				time.Sleep(chimeGap)
			}
			_, _ = io.WriteString(os.Stdout, bell)
		}
		return nil
	}
}
