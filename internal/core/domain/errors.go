package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingFormulaField is returned when a required formula input (owner, repo, tar URL, install) is empty.
	ErrMissingFormulaField = zerr.New("missing required formula field")

	// ErrInvalidChecksum is returned when a checksum is not a hexadecimal string.
	ErrInvalidChecksum = zerr.New("checksum is not a hex string")

	// ErrMissingDefaultArtifact is returned when no artifact is left over to serve as the default url.
	ErrMissingDefaultArtifact = zerr.New("no default artifact found")

	// ErrAmbiguousDefaultArtifact is returned when more than one artifact could serve as the default url.
	ErrAmbiguousDefaultArtifact = zerr.New("more than one artifact could be the default")

	// ErrAmbiguousPlatformArtifact is returned when several artifacts match the same platform.
	ErrAmbiguousPlatformArtifact = zerr.New("more than one artifact matches platform")

	// ErrMissingConfigValue is returned when required configuration values are not set.
	ErrMissingConfigValue = zerr.New("missing required configuration")

	// ErrInvalidConfigValue is returned when a configuration value cannot be parsed.
	ErrInvalidConfigValue = zerr.New("invalid configuration value")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrManifestReadFailed is returned when a render manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read render manifest")

	// ErrManifestParseFailed is returned when a render manifest cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse render manifest")

	// ErrGitHubRequestFailed is returned when a GitHub API request fails.
	ErrGitHubRequestFailed = zerr.New("GitHub API request failed")

	// ErrDownloadFailed is returned when an artifact cannot be downloaded.
	ErrDownloadFailed = zerr.New("failed to download artifact")

	// ErrArtifactNotFound is returned when a release artifact does not exist.
	ErrArtifactNotFound = zerr.New("artifact not found")

	// ErrUploadFailed is returned when a release asset cannot be uploaded.
	ErrUploadFailed = zerr.New("failed to upload release asset")

	// ErrArtifactWriteFailed is returned when a downloaded artifact cannot be stored.
	ErrArtifactWriteFailed = zerr.New("failed to store artifact")

	// ErrManifestWriteFailed is returned when the checksum manifest cannot be written.
	ErrManifestWriteFailed = zerr.New("failed to write checksum manifest")

	// ErrWorkDirCreateFailed is returned when a working directory cannot be created.
	ErrWorkDirCreateFailed = zerr.New("failed to create working directory")

	// ErrGitFailed is returned when a git command fails.
	ErrGitFailed = zerr.New("git command failed")

	// ErrFormulaWriteFailed is returned when the formula file cannot be written.
	ErrFormulaWriteFailed = zerr.New("failed to write formula")

	// ErrFileReadFailed is returned when a file cannot be read.
	ErrFileReadFailed = zerr.New("failed to read file")

	// ErrFileWriteFailed is returned when a file cannot be written.
	ErrFileWriteFailed = zerr.New("failed to write file")

	// ErrNoFormulas is returned when the formula folder contains no formula files.
	ErrNoFormulas = zerr.New("no formula files found")

	// ErrFormulaParseFailed is returned when a formula file cannot be scanned.
	ErrFormulaParseFailed = zerr.New("failed to parse formula")

	// ErrReadmeNotFound is returned when the tap has no README.md or readme.md.
	ErrReadmeNotFound = zerr.New("could not find a README to update")

	// ErrReadmeMarkersNotFound is reported when the README lacks the project table markers.
	ErrReadmeMarkersNotFound = zerr.New("could not find both start and end tags for project table in README")

	// ErrSignatureMissing is returned when an artifact has no companion signature.
	ErrSignatureMissing = zerr.New("signature not found for artifact")

	// ErrSignatureInvalid is returned when an artifact signature does not verify.
	ErrSignatureInvalid = zerr.New("signature verification failed")

	// ErrReleaseFailed is returned when the release workflow fails.
	ErrReleaseFailed = zerr.New("release failed")
)
