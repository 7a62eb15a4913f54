package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/ribbon/pkg/domain"
)

// Report builds a Markdown summary of a run, suitable for NewRenderer.
func Report(trace *domain.Trace) string {
	var sb strings.Builder

	title := "Run"
	if trace.Machine != "" {
		title = "Run of " + trace.Machine
	}
	fmt.Fprintf(&sb, "# %s\n\n", title)
	fmt.Fprintf(&sb, "- **Word:** `%s`\n", trace.Word)
	fmt.Fprintf(&sb, "- **Status:** %s\n", trace.Status)
	fmt.Fprintf(&sb, "- **Steps:** %d (%d backtracks)\n", len(trace.Steps), trace.Backtracks())
	fmt.Fprintf(&sb, "- **ID:** `%s`\n\n", trace.ID)

	if len(trace.Steps) == 0 {
		return sb.String()
	}

	sb.WriteString("| # | Rule | State | Tapes |\n")
	sb.WriteString("|---|------|-------|-------|\n")
	for i, s := range trace.Steps {
		rule := "start"
		if s.Transition != nil {
			rule = fmt.Sprintf("`%s`", s.Transition.Transition)
			if s.BacktrackedTo != nil {
				rule = "↩ " + rule
			}
		}
		tapes := make([]string, 0, len(s.Outputs)+1)
		for _, t := range s.Tapes() {
			tapes = append(tapes, "`"+t.String()+"`")
		}
		fmt.Fprintf(&sb, "| %d | %s | %s | %s |\n", i, escapeCell(rule), s.StateName, escapeCell(strings.Join(tapes, " ")))
	}
	return sb.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
