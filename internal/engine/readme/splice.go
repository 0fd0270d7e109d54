package readme

import (
	"strings"

	"go.trai.ch/brewtap/internal/core/domain"
)

// Splice replaces the lines between the project table markers with table.
// Both marker lines are kept. When either marker is missing the README is
// returned unchanged and ok is false.
func Splice(readme, table string) (out string, ok bool) {
	lines := strings.SplitAfter(readme, "\n")

	start, end := -1, -1
	for i, line := range lines {
		if start < 0 {
			if isMarker(line, domain.ReadmeTableStart) {
				start = i
			}
			continue
		}
		if isMarker(line, domain.ReadmeTableEnd) {
			end = i
			break
		}
	}
	if start < 0 || end < 0 {
		return readme, false
	}

	var b strings.Builder
	for _, line := range lines[:start+1] {
		b.WriteString(line)
	}
	b.WriteString(table)
	if table != "" && !strings.HasSuffix(table, "\n") {
		b.WriteString("\n")
	}
	for _, line := range lines[end:] {
		b.WriteString(line)
	}
	return b.String(), true
}

func isMarker(line, marker string) bool {
	return strings.EqualFold(strings.TrimSpace(line), marker)
}
