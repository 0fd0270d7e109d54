package ports

import "go.trai.ch/brewtap/internal/core/domain"

// TapStore reads and writes files of a tap checkout.
//
//go:generate mockgen -source=tap_store.go -destination=mocks/mock_tap_store.go -package=mocks
type TapStore interface {
	// WriteFormula writes content to path and reports whether the file changed.
	WriteFormula(path, content string) (bool, error)

	// ListFormulas returns the formula files in dir sorted by name.
	ListFormulas(dir string) ([]domain.FormulaFile, error)

	// FindReadme returns the path of the README in root.
	FindReadme(root string) (string, error)

	// ReadFile returns the content of path.
	ReadFile(path string) (string, error)

	// WriteFile writes content to path and reports whether the file changed.
	WriteFile(path, content string) (bool, error)
}
