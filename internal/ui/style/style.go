// Package style holds the colours and icons used in terminal output.
package style

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	Muted   = lipgloss.Color("#667085")
	Faint   = lipgloss.Color("#98A2B3")
	Failure = lipgloss.Color("#D93025")
	Caution = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Cross   = "✗"
	Warning = "!"
	Dot     = "·"
	Arrow   = "→"
)
