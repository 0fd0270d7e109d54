package domain

// ChecksumEntry binds one published artifact to its digest and download URL.
type ChecksumEntry struct {
	Filename    string
	Checksum    string
	DownloadURL string
}

// ConditionalEntry is an artifact paired with the condition it is installed under.
type ConditionalEntry struct {
	Condition Condition
	Entry     ChecksumEntry
}

// IsHex reports whether s is a non-empty hexadecimal string.
func IsHex(s string) bool {
	if s == "" {
		return false
	}
	for _, ch := range s {
		if (ch < '0' || ch > '9') && (ch < 'a' || ch > 'f') && (ch < 'A' || ch > 'F') {
			return false
		}
	}
	return true
}
