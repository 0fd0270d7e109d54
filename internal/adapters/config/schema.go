package config

import (
	"strconv"
	"strings"

	"go.trai.ch/brewtap/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Configfile represents the structure of the brewtap.yaml configuration file.
type Configfile struct {
	Owner             string `yaml:"owner"`
	Repo              string `yaml:"repo"`
	HomebrewOwner     string `yaml:"homebrew_owner"`
	HomebrewTap       string `yaml:"homebrew_tap"`
	FormulaFolder     string `yaml:"formula_folder"`
	CommitOwner       string `yaml:"commit_owner"`
	CommitEmail       string `yaml:"commit_email"`
	Install           string `yaml:"install"`
	Test              string `yaml:"test"`
	DependsOn         string `yaml:"depends_on"`
	Caveats           string `yaml:"caveats"`
	Version           string `yaml:"version"`
	DownloadStrategy  string `yaml:"download_strategy"`
	CustomRequire     string `yaml:"custom_require"`
	MinisignPublicKey string `yaml:"minisign_public_key"`

	TargetDarwinAMD64 Flag `yaml:"target_darwin_amd64"`
	TargetDarwinARM64 Flag `yaml:"target_darwin_arm64"`
	TargetLinuxAMD64  Flag `yaml:"target_linux_amd64"`
	TargetLinuxARM64  Flag `yaml:"target_linux_arm64"`

	SkipCommit        Flag `yaml:"skip_commit"`
	UpdateReadmeTable Flag `yaml:"update_readme_table"`
	Debug             Flag `yaml:"debug"`
}

// Manifestfile represents a render manifest.
type Manifestfile struct {
	Owner            string        `yaml:"owner"`
	Repo             string        `yaml:"repo"`
	Description      string        `yaml:"description"`
	License          string        `yaml:"license"`
	TarURL           string        `yaml:"tar_url"`
	Version          string        `yaml:"version"`
	Install          string        `yaml:"install"`
	Test             string        `yaml:"test"`
	DependsOn        string        `yaml:"depends_on"`
	Caveats          string        `yaml:"caveats"`
	DownloadStrategy string        `yaml:"download_strategy"`
	CustomRequire    string        `yaml:"custom_require"`
	Targets          TargetsDTO    `yaml:"targets"`
	Checksums        []ChecksumDTO `yaml:"checksums"`
}

// TargetsDTO holds the platform switches of a manifest.
type TargetsDTO struct {
	DarwinAMD64 Flag `yaml:"darwin_amd64"`
	DarwinARM64 Flag `yaml:"darwin_arm64"`
	LinuxAMD64  Flag `yaml:"linux_amd64"`
	LinuxARM64  Flag `yaml:"linux_arm64"`
}

// ChecksumDTO is one published artifact of a manifest.
type ChecksumDTO struct {
	Filename    string `yaml:"filename"`
	Checksum    string `yaml:"checksum"`
	DownloadURL string `yaml:"download_url"`
}

// Flag is a boolean that also accepts the string spellings understood by
// strconv.ParseBool, so a quoted "false" disables the switch.
type Flag struct {
	value bool
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *Flag) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return zerr.With(zerr.Wrap(domain.ErrInvalidConfigValue, ""), "line", node.Line)
	}
	v, err := parseFlag(node.Value)
	if err != nil {
		return zerr.With(err, "line", node.Line)
	}
	f.value = v
	return nil
}

func parseFlag(raw string) (bool, error) {
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrInvalidConfigValue.Error()), "value", raw)
	}
	return v, nil
}

func (t TargetsDTO) toDomain() domain.Targets {
	return domain.Targets{
		DarwinAMD64: t.DarwinAMD64.value,
		DarwinARM64: t.DarwinARM64.value,
		LinuxAMD64:  t.LinuxAMD64.value,
		LinuxARM64:  t.LinuxARM64.value,
	}
}
