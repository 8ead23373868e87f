package gedcom

// Version represents a GEDCOM specification version.
type Version string

const (
	// Version55 represents GEDCOM 5.5 specification
	Version55 Version = "5.5"

	// Version551 represents GEDCOM 5.5.1 specification
	Version551 Version = "5.5.1"
)

// String returns the string representation of the version.
func (v Version) String() string {
	return string(v)
}

// IsValid returns true if the version is a known GEDCOM version.
func (v Version) IsValid() bool {
	switch v {
	case Version55, Version551:
		return true
	default:
		return false
	}
}

var versionRank = map[Version]int{
	Version55:  0,
	Version551: 1,
}

// Before returns true if v precedes other in the GEDCOM version ordering
// (5.5, then 5.5.1). Unknown versions are never before or after anything.
func (v Version) Before(other Version) bool {
	vr, ok := versionRank[v]
	if !ok {
		return false
	}
	or, ok := versionRank[other]
	if !ok {
		return false
	}
	return vr < or
}
