package domain

import "strings"

// License identifies the license of a repository.
type License struct {
	SPDXID string
}

// RepositoryMetadata is the descriptive information of the released repository.
// A nil License means the repository declares none.
type RepositoryMetadata struct {
	Description string
	License     *License
}

// SPDXID returns the SPDX identifier of the license, or an empty string.
func (m RepositoryMetadata) SPDXID() string {
	if m.License == nil {
		return ""
	}
	return strings.TrimSpace(m.License.SPDXID)
}

// Release is a published release of the repository.
type Release struct {
	ID         int64
	TagName    string
	TarballURL string
}

// Version returns the tag name without a leading "v".
func (r Release) Version() string {
	return strings.TrimPrefix(r.TagName, "v")
}

// Artifact is a downloaded file and its SHA-256 digest.
type Artifact struct {
	Path     string
	Checksum string
}

// ArchiveURL returns the source tarball URL of the release. Private
// repositories are only reachable through the authenticated API tarball URL.
func (r Release) ArchiveURL(owner, repo string, private bool) string {
	if private && r.TarballURL != "" {
		return r.TarballURL
	}
	return "https://github.com/" + owner + "/" + repo + "/archive/refs/tags/" + r.TagName + ArchiveExt
}

// AssetURL returns the browser download URL of a release asset.
func (r Release) AssetURL(owner, repo, name string) string {
	return "https://github.com/" + owner + "/" + repo + "/releases/download/" + r.TagName + "/" + name
}
