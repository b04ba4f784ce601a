// Package static provides non-interactive terminal output components.
package static

import (
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/flo-cli/flo/internal/project"
	"github.com/flo-cli/flo/internal/ui/styles"
)

// EntryHeaders are the column headers matching EntryTableRow.
var EntryHeaders = []string{"NAME", "BRANCH", "PATH", "MAIN"}

// EntryTableRow builds the cells for one entry. Directories are shown
// relative to baseDir.
func EntryTableRow(e project.Entry, baseDir string) []string {
	marker := ""
	if e.IsMainWorktree {
		marker = styles.MainStyle.Render(styles.MainMarker)
	}
	return []string{e.Title(), e.Branch, e.RelDir(baseDir), marker}
}

// RenderEntries renders entries as a table, or "" when there are none.
func RenderEntries(entries []project.Entry, baseDir string) string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, EntryTableRow(e, baseDir))
	}
	return RenderTable(EntryHeaders, rows)
}

// RenderTable creates a formatted table with proper column alignment.
// Column widths follow the content. No borders are rendered.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	var output strings.Builder

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.Header
			}
			return styles.Cell
		})

	output.WriteString(t.String())
	output.WriteString("\n")

	return output.String()
}
