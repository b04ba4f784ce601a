// Package styles provides shared lipgloss styles for flo's terminal output.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette
var (
	// Accent highlights the main worktree (pink)
	Accent color.Color = lipgloss.Color("212")

	// Muted is used for hints and secondary text (gray)
	Muted color.Color = lipgloss.Color("240")
)

var (
	// Header styles table headers
	Header = lipgloss.NewStyle().Bold(true).PaddingRight(2)

	// Cell styles table cells
	Cell = lipgloss.NewStyle().PaddingRight(2)

	// MainStyle marks the main worktree of a project
	MainStyle = lipgloss.NewStyle().Foreground(Accent).Bold(true)

	// MutedStyle applies the muted color
	MutedStyle = lipgloss.NewStyle().Foreground(Muted)
)

// MainMarker is shown next to the main worktree of a project.
const MainMarker = "●"
