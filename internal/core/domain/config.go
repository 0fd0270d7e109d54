package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Config is the resolved configuration of a release run.
type Config struct {
	Token string
	Owner string
	Repo  string

	HomebrewOwner string
	HomebrewTap   string
	FormulaFolder string

	CommitOwner string
	CommitEmail string

	Install   string
	Test      string
	DependsOn string
	Caveats   string
	Version   string

	DownloadStrategy string
	CustomRequire    string

	Targets Targets

	SkipCommit        bool
	UpdateReadmeTable bool
	Debug             bool

	MinisignPublicKey string
}

// Validate checks that every value a release needs is present.
func (c *Config) Validate() error {
	required := []struct {
		key   string
		value string
	}{
		{"github_token", c.Token},
		{"owner", c.Owner},
		{"repo", c.Repo},
		{"homebrew_owner", c.HomebrewOwner},
		{"homebrew_tap", c.HomebrewTap},
		{"install", c.Install},
	}

	var missing []string
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.key)
		}
	}
	if len(missing) > 0 {
		return zerr.With(ErrMissingConfigValue, "keys", strings.Join(missing, ", "))
	}

	if (c.DownloadStrategy == "") != (c.CustomRequire == "") {
		err := zerr.With(ErrInvalidConfigValue, "download_strategy", c.DownloadStrategy)
		return zerr.With(err, "custom_require", c.CustomRequire)
	}

	return nil
}

// TapName returns the tap name used in "brew install", without the "homebrew-" prefix.
func (c *Config) TapName() string {
	return strings.TrimPrefix(c.HomebrewTap, TapRepoPrefix)
}

// TapCloneURL returns the authenticated HTTPS clone URL of the tap repository.
func (c *Config) TapCloneURL() string {
	return "https://x-access-token:" + c.Token + "@github.com/" + c.HomebrewOwner + "/" + c.HomebrewTap + ".git"
}
