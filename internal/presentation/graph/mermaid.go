package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/turtlebench/pkg/domain"
)

// GraphOverlay contains update data to visualize on the graph.
type GraphOverlay struct {
	// CopiedNodes lists node IDs that an update replaced with a fresh copy.
	CopiedNodes []int

	// TargetNode is the ID of the node whose foo the update changes. Negative means none.
	TargetNode int
}

// OverlayFromDiff marks every level the diff reports as copied, plus the target depth.
func OverlayFromDiff(d *domain.StateDiff, target int) *GraphOverlay {
	overlay := &GraphOverlay{TargetNode: target}
	if d == nil {
		return overlay
	}
	for depth := 0; depth < d.Copied; depth++ {
		overlay.CopiedNodes = append(overlay.CopiedNodes, depth)
	}
	return overlay
}

// GenerateMermaid produces a Mermaid flowchart of the turtle chain starting at root.
// It applies semantic styling:
// - Root: ((Circle))
// - Default: [Rectangle]
// A turtle pointing back at a node already drawn is rendered as a dotted "cycle" edge.
// It also applies overlay styles (Copied/Target) if provided.
func GenerateMermaid(root *domain.Node, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	domain.Walk(root, func(depth int, n *domain.Node) bool {
		safeID := nodeID(n.ID)

		opener, closer := "[", "]"
		if depth == 0 {
			opener, closer = "((", "))"
		}

		label := fmt.Sprintf("foo: %d", n.Foo)
		if n.HasBar {
			label += fmt.Sprintf(" <br/> bar: '%c'", n.Bar)
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, label, closer))

		if n.Turtle == nil {
			return true
		}
		arrow := "-->"
		if n.Turtle.ID <= n.ID {
			arrow = "-. cycle .->"
		}
		sb.WriteString(fmt.Sprintf("    %s %s %s\n", safeID, arrow, nodeID(n.Turtle.ID)))
		return true
	})

	// Apply Overlay Styles
	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef copied fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef target fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		copied := make(map[int]bool)
		for _, id := range overlay.CopiedNodes {
			if !copied[id] && id != overlay.TargetNode {
				copied[id] = true
				sb.WriteString(fmt.Sprintf("    class %s copied;\n", nodeID(id)))
			}
		}

		if overlay.TargetNode >= 0 {
			sb.WriteString(fmt.Sprintf("    class %s target;\n", nodeID(overlay.TargetNode)))
		}
	}

	return sb.String()
}

func nodeID(id int) string {
	return fmt.Sprintf("t%d", id)
}
