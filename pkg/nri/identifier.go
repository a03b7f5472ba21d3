package nri

import (
	"fmt"
	"strings"
)

// Identifier is a parsed Nri: a scheme, ordered path segments and ordered
// query entries.
//
// Identifiers are immutable once constructed and safe to share across
// goroutines without synchronization. Path segments are kept exactly as
// parsed; doubled slashes produce empty segments and are not collapsed.
type Identifier struct {
	scheme   Scheme
	segments []string
	queries  []QueryEntry
}

// Parse parses a raw identifier string.
//
// Failures, classified with errors.Is:
//   - ErrEmptyInput: the input is empty.
//   - ErrMissingSchemeDelimiter: the input contains no "::".
//   - ErrAmbiguousSchemeDelimiter: the input contains "::" more than once.
//   - ErrUnknownScheme: the token before "::" is not a registered scheme.
func Parse(raw string) (Identifier, error) {
	if raw == "" {
		return Identifier{}, ErrEmptyInput
	}

	parts := strings.Split(raw, schemeDelimiter)
	if len(parts) < 2 {
		return Identifier{}, fmt.Errorf("%w: %q", ErrMissingSchemeDelimiter, raw)
	}
	if len(parts) > 2 {
		return Identifier{}, fmt.Errorf("%w: %q", ErrAmbiguousSchemeDelimiter, raw)
	}

	scheme := Scheme(parts[0])
	if !scheme.IsValid() {
		return Identifier{}, fmt.Errorf("%w: %q (valid: %v)",
			ErrUnknownScheme, parts[0], ValidSchemes())
	}

	pathPart, queryPart, hasQuery := strings.Cut(parts[1], "?")

	// Splitting any string on "/" yields at least one element, so segments
	// is never empty.
	segments := strings.Split(pathPart, "/")

	var queries []QueryEntry
	if hasQuery {
		queries = ParseQuery(queryPart)
	}

	return Identifier{scheme: scheme, segments: segments, queries: queries}, nil
}

// TryParse parses a raw identifier string, reporting failure instead of
// returning an error. An empty input or any Parse failure yields
// (Identifier{}, false).
//
// This is the single non-failing entry into the parser, for callers that
// cannot guarantee well-formed input (interactive fields, untrusted
// metadata). Everything else goes through Parse and handles the error.
func TryParse(raw string) (Identifier, bool) {
	if raw == "" {
		return Identifier{}, false
	}
	id, err := Parse(raw)
	if err != nil {
		return Identifier{}, false
	}
	return id, true
}

// AppResource builds an application-bundle identifier from a path fragment.
// The fragment is concatenated onto the scheme token and reparsed, so grammar
// errors in the fragment (an embedded "::", for instance) surface here.
func AppResource(path string) (Identifier, error) {
	return Parse(string(SchemeApp) + schemeDelimiter + path)
}

// PackageResource builds a package-bundle identifier from a path fragment
// whose first segment is the package name.
func PackageResource(path string) (Identifier, error) {
	return Parse(string(SchemePackage) + schemeDelimiter + path)
}

// UserResource builds a user-filesystem identifier from a path fragment.
func UserResource(path string) (Identifier, error) {
	return Parse(string(SchemeUser) + schemeDelimiter + path)
}

// NetworkResource builds a network identifier from a location fragment.
func NetworkResource(path string) (Identifier, error) {
	return Parse(string(SchemeNetwork) + schemeDelimiter + path)
}

// ProjectResource builds a project-relative identifier from a path fragment.
func ProjectResource(path string) (Identifier, error) {
	return Parse(string(SchemeProject) + schemeDelimiter + path)
}

// Scheme returns the identifier's scheme.
func (id Identifier) Scheme() Scheme {
	return id.scheme
}

// Segments returns a copy of the path segments.
func (id Identifier) Segments() []string {
	out := make([]string, len(id.segments))
	copy(out, id.segments)
	return out
}

// Queries returns a copy of the query entries in parse order.
func (id Identifier) Queries() []QueryEntry {
	out := make([]QueryEntry, len(id.queries))
	copy(out, id.queries)
	return out
}

// Path returns the segments rejoined with "/", without the query tail.
func (id Identifier) Path() string {
	return strings.Join(id.segments, "/")
}

// String returns the canonical wire form:
// scheme "::" path ["?" query-tail].
func (id Identifier) String() string {
	return string(id.scheme) + schemeDelimiter + id.StringWithoutScheme()
}

// StringWithoutScheme returns the canonical form without the leading
// scheme and delimiter.
func (id Identifier) StringWithoutScheme() string {
	tail := EncodeQuery(id.queries)
	if tail == "" {
		return id.Path()
	}
	return id.Path() + "?" + tail
}

// Equal reports whether two identifiers have the same canonical string.
//
// Equality is defined on the rendered form, not on fields: identifiers with
// the same entries in a different query order are unequal, and any two
// values rendering to the same string are equal however they were built.
func (id Identifier) Equal(other Identifier) bool {
	return id.String() == other.String()
}

// IsZero returns true for the zero Identifier, which no successful Parse
// ever produces.
func (id Identifier) IsZero() bool {
	return id.scheme == "" && id.segments == nil && id.queries == nil
}

// IsAppResource returns true for application-bundle identifiers.
func (id Identifier) IsAppResource() bool {
	return id.scheme == SchemeApp
}

// IsPackageResource returns true for package-bundle identifiers.
func (id Identifier) IsPackageResource() bool {
	return id.scheme == SchemePackage
}

// IsUserResource returns true for user-filesystem identifiers.
func (id Identifier) IsUserResource() bool {
	return id.scheme == SchemeUser
}

// IsNetworkResource returns true for network identifiers.
func (id Identifier) IsNetworkResource() bool {
	return id.scheme == SchemeNetwork
}

// IsProjectResource returns true for project-relative identifiers.
func (id Identifier) IsProjectResource() bool {
	return id.scheme == SchemeProject
}

// Query looks up key in the identifier's query entries and converts the
// associated value with convert. The converter receives the raw value and
// whether one was present (flag-only entries carry none), so callers own the
// string-to-T interpretation. A missing key fails with ErrQueryKeyNotFound.
func Query[T any](id Identifier, key string, convert func(value string, hasValue bool) (T, error)) (T, error) {
	for _, entry := range id.queries {
		if entry.key == key {
			return convert(entry.value, entry.hasValue)
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: %q", ErrQueryKeyNotFound, key)
}

// HasQuery reports whether the identifier carries an entry for key.
func (id Identifier) HasQuery(key string) bool {
	for _, entry := range id.queries {
		if entry.key == key {
			return true
		}
	}
	return false
}
