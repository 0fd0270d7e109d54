package domain

import "regexp"

// OS is an operating system super-group of the build matrix.
type OS string

const (
	// OSMacOS groups the darwin platforms.
	OSMacOS OS = "macos"
	// OSLinux groups the linux platforms.
	OSLinux OS = "linux"
)

// Arch is a CPU architecture super-group of the build matrix.
type Arch string

const (
	// ArchIntel groups the amd64 platforms.
	ArchIntel Arch = "intel"
	// ArchARM groups the arm64 platforms.
	ArchARM Arch = "arm"
)

// Platform is one branch of the OS/architecture build matrix.
type Platform uint8

const (
	// DarwinAMD64 is macOS on Intel.
	DarwinAMD64 Platform = iota
	// DarwinARM64 is macOS on Apple silicon.
	DarwinARM64
	// LinuxAMD64 is Linux on x86-64.
	LinuxAMD64
	// LinuxARM64 is Linux on arm64.
	LinuxARM64
)

type platformInfo struct {
	goos    string
	goarch  string
	os      OS
	arch    Arch
	pattern *regexp.Regexp
}

var platforms = [...]platformInfo{
	DarwinAMD64: newPlatformInfo("darwin", "amd64", OSMacOS, ArchIntel),
	DarwinARM64: newPlatformInfo("darwin", "arm64", OSMacOS, ArchARM),
	LinuxAMD64:  newPlatformInfo("linux", "amd64", OSLinux, ArchIntel),
	LinuxARM64:  newPlatformInfo("linux", "arm64", OSLinux, ArchARM),
}

func newPlatformInfo(goos, goarch string, os OS, arch Arch) platformInfo {
	return platformInfo{
		goos:    goos,
		goarch:  goarch,
		os:      os,
		arch:    arch,
		pattern: regexp.MustCompile(`(?i)(^|[-_.])` + goos + `[-_]` + goarch + `([-_.]|$)`),
	}
}

// AllPlatforms returns every platform in canonical matrix order.
func AllPlatforms() []Platform {
	return []Platform{DarwinAMD64, DarwinARM64, LinuxAMD64, LinuxARM64}
}

// OS returns the operating system group of the platform.
func (p Platform) OS() OS { return platforms[p].os }

// Arch returns the architecture group of the platform.
func (p Platform) Arch() Arch { return platforms[p].arch }

// Suffix is the artifact naming token for the platform, e.g. "darwin-amd64".
func (p Platform) Suffix() string {
	return platforms[p].goos + "-" + platforms[p].goarch
}

// String implements fmt.Stringer.
func (p Platform) String() string {
	return platforms[p].goos + "_" + platforms[p].goarch
}

// Matches reports whether filename carries the platform suffix as a token.
func (p Platform) Matches(filename string) bool {
	return platforms[p].pattern.MatchString(filename)
}

// ArtifactName returns the conventional release asset name for the platform.
func (p Platform) ArtifactName(repo, version string) string {
	return repo + "-" + version + "-" + p.Suffix() + ArchiveExt
}

// Targets holds the enable flag of each matrix branch.
type Targets struct {
	DarwinAMD64 bool
	DarwinARM64 bool
	LinuxAMD64  bool
	LinuxARM64  bool
}

// Enabled returns the enabled platforms in canonical order.
func (t Targets) Enabled() []Platform {
	flags := [...]bool{
		DarwinAMD64: t.DarwinAMD64,
		DarwinARM64: t.DarwinARM64,
		LinuxAMD64:  t.LinuxAMD64,
		LinuxARM64:  t.LinuxARM64,
	}
	var enabled []Platform
	for _, p := range AllPlatforms() {
		if flags[p] {
			enabled = append(enabled, p)
		}
	}
	return enabled
}

// Condition is the install-time guard of a formula url block.
// The zero value is the unconditioned default.
type Condition struct {
	OS   OS
	Arch Arch
}

// IsDefault reports whether the condition is the unconditioned fallback.
func (c Condition) IsDefault() bool {
	return c.OS == "" && c.Arch == ""
}

// String implements fmt.Stringer.
func (c Condition) String() string {
	if c.IsDefault() {
		return "default"
	}
	return "on_" + string(c.OS) + "+on_" + string(c.Arch)
}
