package nri

// Scheme identifies the namespace a resource lives in.
//
// The set of schemes is closed and the tokens are wire-stable: identifiers
// are exchanged as text, so the exact token strings must never change.
type Scheme string

const (
	// SchemeApp identifies assets bundled with the application itself.
	SchemeApp Scheme = "nars"

	// SchemePackage identifies assets bundled with an installable package.
	// The first path segment is the package name.
	SchemePackage Scheme = "npkrs"

	// SchemeUser identifies files on the user's filesystem, addressed by
	// absolute path.
	SchemeUser Scheme = "nurs"

	// SchemeNetwork identifies remote locations fetched over the network.
	SchemeNetwork Scheme = "uri"

	// SchemeProject identifies files relative to the current project root.
	SchemeProject Scheme = "nprs"
)

// schemeDelimiter separates the scheme token from the rest of an identifier.
const schemeDelimiter = "::"

// ValidSchemes returns all registered schemes.
func ValidSchemes() []Scheme {
	return []Scheme{
		SchemeApp,
		SchemePackage,
		SchemeUser,
		SchemeNetwork,
		SchemeProject,
	}
}

// IsValid returns true if this is a registered scheme token.
func (s Scheme) IsValid() bool {
	switch s {
	case SchemeApp, SchemePackage, SchemeUser, SchemeNetwork, SchemeProject:
		return true
	default:
		return false
	}
}

// String returns the wire token for the scheme.
func (s Scheme) String() string {
	return string(s)
}
