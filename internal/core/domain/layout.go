package domain

import "path/filepath"

const (
	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "brewtap.yaml"

	// DefaultFormulaFolder is the folder inside the tap that holds formula files.
	DefaultFormulaFolder = "Formula"

	// FormulaExt is the file extension of formula files.
	FormulaExt = ".rb"

	// ChecksumFileName is the name of the checksum manifest uploaded to the release.
	ChecksumFileName = "checksum.txt"

	// SignatureExt is the extension of minisign signature assets.
	SignatureExt = ".minisig"

	// ArchiveExt is the extension of release archives.
	ArchiveExt = ".tar.gz"

	// ReadmeTableStart marks the beginning of the generated project table.
	ReadmeTableStart = "<!-- project_table_start -->"

	// ReadmeTableEnd marks the end of the generated project table.
	ReadmeTableEnd = "<!-- project_table_end -->"

	// TapRepoPrefix is the conventional prefix of tap repository names.
	TapRepoPrefix = "homebrew-"

	// DefaultCommitOwner is the git author name used for tap commits.
	DefaultCommitOwner = "brewtap"

	// DefaultCommitEmail is the git author email used for tap commits.
	DefaultCommitEmail = "brewtap@users.noreply.github.com"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// ReadmeCandidates lists the README file names looked up in a tap root, in order.
func ReadmeCandidates() []string {
	return []string{"README.md", "readme.md"}
}

// FormulaPath returns the path of the formula for repo inside a tap checkout.
func FormulaPath(tapDir, formulaFolder, repo string) string {
	if formulaFolder == "" {
		formulaFolder = DefaultFormulaFolder
	}
	return filepath.Join(tapDir, formulaFolder, repo+FormulaExt)
}
