package git

import "go.trai.ch/brewtap/internal/core/ports"

// NewWithBinary creates a Git that runs binary instead of git.
func NewWithBinary(logger ports.Logger, binary string) *Git {
	return &Git{logger: logger, binary: binary}
}
