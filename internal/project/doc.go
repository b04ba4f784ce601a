// Package project resolves configured projects into their git worktrees
// and flattens the result into a list.
//
// Resolution happens in two independent steps:
//
//   - [Resolver.Resolve] runs worktree discovery for every project in
//     parallel and builds a two-level tree of [Node] values (project, then
//     worktrees). Failures stay scoped to their project and come back as
//     [Warning] values.
//   - [Flatten] turns the tree into [Entry] rows, one per worktree.
//
// [Search] ranks entries against a fuzzy query over their keywords and
// [Memo] keeps the latest resolution in memory for callers that render
// repeatedly.
package project
