// Package visualize renders a multimap's current shape as colored
// ASCII, level by level. The teacher's cli.go called
// visualizer.Visualize() after every mutating command but the
// btree.Visualizer type it referenced was not present in the retrieved
// copy; this package restores it against the expanded spec's
// Multimap.Snapshot, level-ordering node boxes the way the source's own
// README ASCII diagram in original_source/bTree.c lays a tree out.
package visualize

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"cachetree/multimap"
)

// Visualizer renders a tree, coloring nodes by depth so siblings at the
// same level are visually grouped the way the teacher's CLI colored its
// own output with fatih/color.
type Visualizer struct {
	Tree *multimap.Multimap
}

var depthColors = []*color.Color{
	color.New(color.FgCyan),
	color.New(color.FgYellow),
	color.New(color.FgGreen),
	color.New(color.FgMagenta),
}

func colorFor(depth int) *color.Color {
	return depthColors[depth%len(depthColors)]
}

// Visualize returns a multi-line, level-ordered rendering of the tree.
// An empty tree renders as a single line saying so.
func (v *Visualizer) Visualize() string {
	snap := v.Tree.Snapshot()
	if snap == nil {
		return "(empty)"
	}

	var b strings.Builder
	levels := [][]*multimap.NodeView{{snap}}
	for depth := 0; depth < len(levels); depth++ {
		level := levels[depth]
		var boxes []string
		var next []*multimap.NodeView
		for _, nd := range level {
			boxes = append(boxes, renderBox(nd))
			next = append(next, nd.Children...)
		}
		colorFor(depth).Fprintln(&b, strings.Join(boxes, "  "))
		if len(next) > 0 {
			levels = append(levels, next)
		}
	}
	return b.String()
}

func renderBox(nd *multimap.NodeView) string {
	kind := "internal"
	if nd.IsLeaf {
		kind = "leaf"
	}
	var keys []string
	for i, k := range nd.Keys {
		keys = append(keys, fmt.Sprintf("%d(%dv)", k, nd.NumVals[i]))
	}
	return fmt.Sprintf("[%s: %s]", kind, strings.Join(keys, ","))
}
