package formula

import (
	"strings"

	"go.trai.ch/brewtap/internal/core/domain"
	"go.trai.ch/zerr"
)

// Branch is one populated platform of the build matrix.
type Branch struct {
	Platform domain.Platform
	Entry    domain.ChecksumEntry
}

// OSGroup holds the populated branches of one operating system, intel first.
type OSGroup struct {
	OS       domain.OS
	Branches []Branch
}

// Plan is the partition of release artifacts into matrix branches and the
// unconditioned default artifact.
type Plan struct {
	Matrix  bool
	Default domain.ChecksumEntry
	Groups  []OSGroup
}

// NewPlan classifies entries against the enabled targets.
//
// With no target enabled exactly one entry must be given and it becomes the
// default. Otherwise every enabled platform takes the single entry whose
// filename carries its suffix (platforms without an artifact are omitted) and
// exactly one entry must remain to serve as the default.
func NewPlan(entries []domain.ChecksumEntry, targets domain.Targets) (*Plan, error) {
	enabled := targets.Enabled()
	if len(enabled) == 0 {
		def, err := pickDefault(entries)
		if err != nil {
			return nil, err
		}
		return &Plan{Default: def}, nil
	}

	consumed := make([]bool, len(entries))
	branches := make(map[domain.Platform]Branch, len(enabled))

	for _, p := range enabled {
		match := -1
		for i, e := range entries {
			if consumed[i] || !p.Matches(e.Filename) {
				continue
			}
			if match >= 0 {
				err := zerr.With(zerr.Wrap(domain.ErrAmbiguousPlatformArtifact, ""), "platform", p.Suffix())
				return nil, zerr.With(err, "artifacts", entries[match].Filename+", "+e.Filename)
			}
			match = i
		}
		if match < 0 {
			continue
		}
		consumed[match] = true
		branches[p] = Branch{Platform: p, Entry: entries[match]}
	}

	var leftover []domain.ChecksumEntry
	for i, e := range entries {
		if !consumed[i] {
			leftover = append(leftover, e)
		}
	}
	def, err := pickDefault(leftover)
	if err != nil {
		return nil, err
	}

	plan := &Plan{Matrix: true, Default: def}
	for _, system := range []domain.OS{domain.OSMacOS, domain.OSLinux} {
		group := OSGroup{OS: system}
		for _, p := range domain.AllPlatforms() {
			if b, ok := branches[p]; ok && p.OS() == system {
				group.Branches = append(group.Branches, b)
			}
		}
		if len(group.Branches) > 0 {
			plan.Groups = append(plan.Groups, group)
		}
	}

	return plan, nil
}

func pickDefault(entries []domain.ChecksumEntry) (domain.ChecksumEntry, error) {
	switch len(entries) {
	case 0:
		return domain.ChecksumEntry{}, domain.ErrMissingDefaultArtifact
	case 1:
		return entries[0], nil
	default:
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Filename)
		}
		return domain.ChecksumEntry{}, zerr.With(zerr.Wrap(domain.ErrAmbiguousDefaultArtifact, ""), "artifacts", strings.Join(names, ", "))
	}
}

// Entries returns the conditioned entries in render order followed by the default.
func (p *Plan) Entries() []domain.ConditionalEntry {
	var out []domain.ConditionalEntry
	for _, g := range p.Groups {
		for _, b := range g.Branches {
			out = append(out, domain.ConditionalEntry{
				Condition: domain.Condition{OS: b.Platform.OS(), Arch: b.Platform.Arch()},
				Entry:     b.Entry,
			})
		}
	}
	return append(out, domain.ConditionalEntry{Entry: p.Default})
}
