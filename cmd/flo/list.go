package main

import (
	"encoding/json"
	"fmt"

	"github.com/flo-cli/flo/internal/config"
	"github.com/flo-cli/flo/internal/output"
	"github.com/flo-cli/flo/internal/project"
	"github.com/flo-cli/flo/internal/ui/static"
	"github.com/flo-cli/flo/internal/ui/styles"
)

// writeEntries prints entries as JSON or as a table. An empty table is
// replaced by a hint on where to add projects.
func writeEntries(out *output.Printer, cfg config.Config, entries []project.Entry, opts listOptions) error {
	if opts.json {
		if entries == nil {
			entries = []project.Entry{}
		}
		enc := json.NewEncoder(out.Writer())
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		if opts.filter != "" {
			out.Println(styles.MutedStyle.Render(fmt.Sprintf("No worktrees match %q", opts.filter)))
			return nil
		}
		out.Println(styles.MutedStyle.Render("No projects. Try adding some to " + cfg.Path))
		return nil
	}

	out.Print(static.RenderEntries(entries, cfg.BaseDir))
	return nil
}
