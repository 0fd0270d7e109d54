// Package readme maintains the project table in a tap README.
package readme

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"go.trai.ch/brewtap/internal/core/domain"
	"go.trai.ch/brewtap/internal/engine/formula"
	"go.trai.ch/zerr"
)

var (
	classLine    = regexp.MustCompile(`^class\s+([A-Z][A-Za-z0-9]*)\s*<\s*Formula\b`)
	descLine     = regexp.MustCompile(`^desc\s+"((?:[^"\\]|\\.)*)"`)
	homepageLine = regexp.MustCompile(`^homepage\s+"((?:[^"\\]|\\.)*)"`)
)

// Parse reads the project name, description and homepage out of formula source.
// Only the first class declaration and the first desc and homepage lines count.
func Parse(r io.Reader) (domain.FormulaRecord, error) {
	var (
		rec                domain.FormulaRecord
		haveDesc, haveHome bool
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case rec.Name == "":
			if m := classLine.FindStringSubmatch(line); m != nil {
				rec.Name = formula.ProjectHandle(m[1])
			}
		case !haveDesc && descLine.MatchString(line):
			rec.Description = unquote(descLine.FindStringSubmatch(line)[1])
			haveDesc = true
		case !haveHome && homepageLine.MatchString(line):
			rec.Homepage = unquote(homepageLine.FindStringSubmatch(line)[1])
			haveHome = true
		}
	}
	if err := scanner.Err(); err != nil {
		return domain.FormulaRecord{}, zerr.Wrap(err, domain.ErrFormulaParseFailed.Error())
	}
	if rec.Name == "" {
		return domain.FormulaRecord{}, zerr.With(zerr.Wrap(domain.ErrFormulaParseFailed, ""), "reason", "no formula class declaration")
	}
	return rec, nil
}

func unquote(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	escaped := false
	for _, r := range s {
		if r == '\\' && !escaped {
			escaped = true
			continue
		}
		escaped = false
		b.WriteRune(r)
	}
	return b.String()
}
