package nri

import (
	"fmt"
	"strings"
)

// PackageIdentifier is a validated view of a package-bundle Identifier that
// separates which package a resource belongs to from the path inside that
// package.
type PackageIdentifier struct {
	id Identifier
}

// NewPackageIdentifier narrows id into a PackageIdentifier. Returns
// ErrInvalidScheme unless id carries the package scheme.
func NewPackageIdentifier(id Identifier) (PackageIdentifier, error) {
	if !id.IsPackageResource() {
		return PackageIdentifier{}, fmt.Errorf(
			"%w: want %q, got %q", ErrInvalidScheme, SchemePackage, id.Scheme())
	}
	return PackageIdentifier{id: id}, nil
}

// Identifier returns the wrapped identifier.
func (p PackageIdentifier) Identifier() Identifier {
	return p.id
}

// Package returns the package name: the first path segment, or "" when the
// identifier has no segments.
func (p PackageIdentifier) Package() string {
	if len(p.id.segments) == 0 {
		return ""
	}
	return p.id.segments[0]
}

// Path returns the path inside the package: every segment after the first,
// rejoined with "/".
func (p PackageIdentifier) Path() string {
	if len(p.id.segments) < 2 {
		return ""
	}
	return strings.Join(p.id.segments[1:], "/")
}
