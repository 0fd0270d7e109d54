package domain

// FormulaRecord is what the README project table needs from a generated formula.
type FormulaRecord struct {
	Name        string
	Description string
	Homepage    string
}

// FormulaFile is a formula file found in a tap checkout.
type FormulaFile struct {
	Name string
	Path string
}

// Manifest describes a formula to render without talking to GitHub.
type Manifest struct {
	Owner            string
	Repo             string
	Description      string
	License          string
	TarURL           string
	Version          string
	Install          string
	Test             string
	DependsOn        string
	Caveats          string
	DownloadStrategy string
	CustomRequire    string
	Targets          Targets
	Checksums        []ChecksumEntry
}

// Metadata returns the repository metadata described by the manifest.
func (m *Manifest) Metadata() RepositoryMetadata {
	meta := RepositoryMetadata{Description: m.Description}
	if m.License != "" {
		meta.License = &License{SPDXID: m.License}
	}
	return meta
}
