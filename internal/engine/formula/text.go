// Package formula renders Homebrew formulas from release artifacts and repository metadata.
package formula

import (
	"cmp"
	"regexp"
	"slices"
	"strings"
	"unicode"
)

// Placeholder is substituted for a description that is empty after cleaning.
const Placeholder = "NA"

const (
	trailingPunctuation = ".!?,;: \t"
	tabWidth            = 8
)

var (
	handlePiece    = regexp.MustCompile(`[A-Z][^A-Z]*`)
	classSeparator = regexp.MustCompile(`[-_.\s]([a-zA-Z0-9])`)
	classAt        = regexp.MustCompile(`(.)@(\d)`)
	leadingArticle = regexp.MustCompile(`(?i)^(an?|the)\s+`)
	leadingIs      = regexp.MustCompile(`(?i)^is\b\s*`)
)

// ProjectHandle turns a class identifier such as "TestGenerateFormula" into
// the dashed project name "test-generate-formula".
func ProjectHandle(identifier string) string {
	pieces := handlePiece.FindAllString(identifier, -1)
	return strings.ToLower(strings.Join(pieces, "-"))
}

// ClassName derives the Ruby class name Homebrew expects for a formula name.
func ClassName(name string) string {
	if name == "" {
		return ""
	}
	lower := []rune(strings.ToLower(name))
	lower[0] = unicode.ToUpper(lower[0])
	class := string(lower)

	class = classSeparator.ReplaceAllStringFunc(class, func(m string) string {
		return strings.ToUpper(m[1:])
	})
	class = strings.ReplaceAll(class, "+", "x")

	if loc := classAt.FindStringSubmatchIndex(class); loc != nil {
		class = class[:loc[0]] + class[loc[2]:loc[3]] + "AT" + class[loc[4]:loc[5]] + class[loc[1]:]
	}
	return class
}

// CleanDescription turns a repository description into a desc line value that
// passes brew audit. The result is already escaped for a double-quoted Ruby string.
func CleanDescription(raw, projectName string) string {
	desc := strings.TrimSpace(raw)
	desc = stripProjectName(desc, projectName)
	desc = leadingArticle.ReplaceAllString(desc, "")

	desc = strings.ReplaceAll(desc, "...", "")
	desc = strings.ReplaceAll(desc, "…", "")
	desc = strings.Join(strings.Fields(desc), " ")
	desc = strings.TrimRight(desc, trailingPunctuation)

	if desc == "" {
		return Placeholder
	}

	runes := []rune(strings.ToLower(desc))
	runes[0] = unicode.ToUpper(runes[0])

	return escapeRuby(string(runes))
}

func stripProjectName(desc, projectName string) string {
	if projectName == "" {
		return desc
	}
	lower := strings.ToLower(desc)
	for _, candidate := range []string{projectName, ClassName(projectName)} {
		c := strings.ToLower(candidate)
		if !strings.HasPrefix(lower, c) {
			continue
		}
		rest := desc[len(c):]
		if rest != "" {
			r := []rune(rest)[0]
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				continue
			}
		}
		rest = strings.TrimLeft(rest, " \t:-,")
		return leadingIs.ReplaceAllString(rest, "")
	}
	return desc
}

func escapeRuby(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

// Dependency is one depends_on declaration.
type Dependency struct {
	Name     string
	Modifier string
}

// String renders the dependency as a formula line without indentation.
func (d Dependency) String() string {
	line := `depends_on "` + d.Name + `"`
	if d.Modifier != "" {
		line += " => " + d.Modifier
	}
	return line
}

// SortDependencies parses line-oriented dependency declarations and sorts them
// by name. Each line is a quoted or bare name, optionally prefixed with
// depends_on and followed by "=> modifier". Blank input yields nil.
func SortDependencies(raw string) []Dependency {
	var deps []Dependency
	for line := range strings.Lines(raw) {
		line = strings.TrimSpace(line)
		line = strings.TrimSpace(strings.TrimPrefix(line, "depends_on"))
		if line == "" {
			continue
		}

		name, modifier, _ := strings.Cut(line, "=>")
		dep := Dependency{
			Name:     strings.Trim(strings.TrimSpace(name), `"'`),
			Modifier: strings.TrimSpace(modifier),
		}
		if dep.Name == "" || slices.Contains(deps, dep) {
			continue
		}
		deps = append(deps, dep)
	}

	slices.SortStableFunc(deps, func(a, b Dependency) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.Modifier, b.Modifier))
	})
	return deps
}

// IndentBlock removes the common leading whitespace of text and indents every
// non-blank line with indent. Leading tabs expand to 8-column stops first.
// Leading and trailing blank lines are dropped and blank lines inside the
// block stay empty.
func IndentBlock(text, indent string) string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for i, line := range lines {
		lines[i] = expandLeadingTabs(line)
	}

	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	common := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		width := len(line) - len(strings.TrimLeft(line, " "))
		if common < 0 || width < common {
			common = width
		}
	}

	var b strings.Builder
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if line != "" {
			b.WriteString(indent)
			b.WriteString(line[common:])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func expandLeadingTabs(line string) string {
	body := strings.TrimLeft(line, " \t")
	lead := line[:len(line)-len(body)]
	if !strings.Contains(lead, "\t") {
		return line
	}

	col := 0
	for _, r := range lead {
		if r == '\t' {
			col += tabWidth - col%tabWidth
		} else {
			col++
		}
	}
	return strings.Repeat(" ", col) + body
}
