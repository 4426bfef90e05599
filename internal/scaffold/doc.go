// Package scaffold bootstraps new Python projects from embedded template
// sets. It powers the "pyboot new" command: a project name is turned into a
// slug, every file of the chosen set is rendered in memory by Plan, and
// Generate writes the tree under <base>/<slug>, overwriting earlier output.
package scaffold
