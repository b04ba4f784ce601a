package project

// Flatten turns project nodes into list entries: one per worktree, in
// project order then worktree order.
//
// IsMainWorktree is derived again from the parent's directory rather than
// taken from the parsed record, so it reflects the configured root even
// when git reports the path differently. Projects without worktrees
// produce no entries.
func Flatten(nodes []Node) []Entry {
	var entries []Entry
	for _, project := range nodes {
		for _, child := range project.Children {
			entries = append(entries, Entry{
				DisplayName:    project.Name,
				Directory:      child.Directory,
				Branch:         child.Branch,
				IsMainWorktree: child.Directory == project.Directory,
			})
		}
	}
	return entries
}
