// Package detector picks the log format from the environment.
package detector

import (
	"os"

	"golang.org/x/term"
)

// LogFormat is the rendering of log records.
type LogFormat int

const (
	// FormatAuto lets the environment decide.
	FormatAuto LogFormat = iota
	// FormatPretty prints coloured human readable lines.
	FormatPretty
	// FormatJSON prints one JSON object per record.
	FormatJSON
)

// DetectEnvironment returns FormatJSON when stderr is not a terminal on CI
// and FormatPretty otherwise.
func DetectEnvironment() LogFormat {
	isTTY := term.IsTerminal(int(os.Stderr.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY && isCI {
		return FormatJSON
	}
	return FormatPretty
}

// ResolveFormat applies the --log-format flag to the detected format.
// userFlag is one of "auto", "pretty", "json" or empty; anything else
// keeps the detected format.
func ResolveFormat(detected LogFormat, userFlag string) LogFormat {
	switch userFlag {
	case "pretty":
		return FormatPretty
	case "json":
		return FormatJSON
	default:
		return detected
	}
}
