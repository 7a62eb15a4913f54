package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/ribbon/pkg/domain"
)

// GraphOverlay contains run data to visualize on the graph.
type GraphOverlay struct {
	VisitedStates []string
	CurrentState  string
}

// OverlayFromTrace marks every state a trace went through, and its last state as current.
func OverlayFromTrace(trace *domain.Trace) *GraphOverlay {
	overlay := &GraphOverlay{}
	for _, step := range trace.Steps {
		overlay.VisitedStates = append(overlay.VisitedStates, step.StateName)
	}
	if last := trace.Last(); last != nil {
		overlay.CurrentState = last.StateName
	}
	return overlay
}

// GenerateMermaid produces a Mermaid flowchart of the machine graph.
// It applies semantic styling:
// - Initial: ((Circle))
// - Accepting: (((Double circle)))
// - Rejecting: {{Hexagon}}
// - Default: [Rectangle]
// Every transition is an edge labelled with its rule; transitions between the same
// pair of states are kept as separate edges so their order stays visible.
// It also applies overlay styles (Visited/Current) if provided.
func GenerateMermaid(g *domain.Graph, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	states := g.States()
	for idx, s := range states {
		opener, closer := "[", "]"
		switch {
		case idx == domain.InitialIndex:
			opener, closer = "((", "))"
		case s.Kind() == domain.KindAccepting:
			opener, closer = "(((", ")))"
		case s.Kind() == domain.KindRejecting:
			opener, closer = "{{", "}}"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", nodeID(idx, s.Name()), opener, escapeLabel(s.Name()), closer)
	}

	for idx, s := range states {
		for _, t := range s.Transitions() {
			target, _ := t.Target()
			fmt.Fprintf(&sb, "    %s -- \"%s\" --> %s\n",
				nodeID(idx, s.Name()), escapeLabel(t.String()), nodeID(target, states[target].Name()))
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[string]bool)
		for _, name := range overlay.VisitedStates {
			idx, err := g.Index(name)
			if err != nil || seen[name] {
				continue
			}
			seen[name] = true
			fmt.Fprintf(&sb, "    class %s visited;\n", nodeID(idx, name))
		}

		if idx, err := g.Index(overlay.CurrentState); err == nil {
			fmt.Fprintf(&sb, "    class %s current;\n", nodeID(idx, overlay.CurrentState))
		}
	}

	return sb.String()
}

// nodeID keeps the index in the ID so any state name is a valid Mermaid identifier.
func nodeID(idx int, name string) string {
	return fmt.Sprintf("s%d_%s", idx, sanitizeMermaidID(name))
}

func sanitizeMermaidID(id string) string {
	var sb strings.Builder
	for _, r := range id {
		if r < 128 && (r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')) {
			sb.WriteRune(r)
			continue
		}
		sb.WriteRune('_')
	}
	return sb.String()
}

// escapeLabel replaces characters Mermaid treats specially inside quoted labels.
func escapeLabel(s string) string {
	return strings.NewReplacer("\"", "#quot;", "<", "#lt;", ">", "#gt;").Replace(s)
}
