package readme

import (
	"strings"
	"unicode/utf8"

	"go.trai.ch/brewtap/internal/core/domain"
	"go.trai.ch/brewtap/internal/engine/formula"
)

var headers = [...]string{"Project", "Description", "Install"}

// Table renders records as a padded GitHub markdown table, one row per
// formula in the given order. Owner and tap qualify the install command
// when both are known.
func Table(records []domain.FormulaRecord, owner, tap string) string {
	rows := make([][3]string, 0, len(records)+1)
	rows = append(rows, headers)
	for _, rec := range records {
		rows = append(rows, [3]string{
			projectCell(rec),
			cell(rec.Description),
			"`brew install " + installName(rec.Name, owner, tap) + "`",
		})
	}

	var widths [3]int
	for _, row := range rows {
		for i, c := range row {
			widths[i] = max(widths[i], utf8.RuneCountInString(c))
		}
	}

	var b strings.Builder
	for i, row := range rows {
		writeRow(&b, row, widths)
		if i == 0 {
			var sep [3]string
			for j, w := range widths {
				sep[j] = strings.Repeat("-", w)
			}
			writeRow(&b, sep, widths)
		}
	}
	return b.String()
}

func writeRow(b *strings.Builder, row [3]string, widths [3]int) {
	b.WriteString("|")
	for i, c := range row {
		b.WriteString(" ")
		b.WriteString(c)
		b.WriteString(strings.Repeat(" ", widths[i]-utf8.RuneCountInString(c)))
		b.WriteString(" |")
	}
	b.WriteString("\n")
}

func projectCell(rec domain.FormulaRecord) string {
	name := cell(rec.Name)
	if rec.Homepage == "" {
		return name
	}
	return "[" + name + "](" + rec.Homepage + ")"
}

func installName(name, owner, tap string) string {
	tap = strings.TrimPrefix(tap, domain.TapRepoPrefix)
	if owner == "" || tap == "" {
		return name
	}
	return owner + "/" + tap + "/" + name
}

func cell(s string) string {
	s = strings.ReplaceAll(strings.TrimSpace(s), "|", `\|`)
	if s == "" {
		return formula.Placeholder
	}
	return s
}
