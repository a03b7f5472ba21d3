// Package nri implements the Nri resource-identifier grammar.
//
// An Nri names a resource in one of five namespaces with a uniform textual
// form:
//
//	scheme "::" path [ "?" query-tail ]
//
// where the scheme selects the namespace (application bundle, package bundle,
// user filesystem, network, project-relative), the path is a sequence of
// slash-delimited segments, and the query tail is an ordered list of
// key[=value] entries.
//
// # Core Concepts
//
//  1. Scheme: the namespace tag. The set of schemes is closed; the five wire
//     tokens ("nars", "npkrs", "nurs", "uri", "nprs") are fixed for
//     compatibility and no runtime registration exists.
//
//  2. Identifier: an immutable value holding scheme, path segments and query
//     entries. Identifiers are created by Parse or by one of the per-scheme
//     constructors and are never mutated afterwards; derive a changed
//     identifier by building a new string and reparsing.
//
//  3. PackageIdentifier: a narrowed view of a package-scheme Identifier that
//     splits the package name from the path inside the package.
//
// # Usage Examples
//
//	id, err := nri.Parse("nars::assets/icon.png?scale=2.0")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	id.String()              // "nars::assets/icon.png?scale=2.0"
//	id.StringWithoutScheme() // "assets/icon.png?scale=2.0"
//	id.IsAppResource()       // true
//
//	scale, err := nri.Query(id, "scale", func(v string, ok bool) (float64, error) {
//	    return strconv.ParseFloat(v, 64)
//	})
//
// # Equality
//
// Two Identifiers are equal exactly when their canonical strings are equal.
// Query order is significant, so identifiers carrying the same entries in a
// different order are not equal. Conversely, field-level inequality does not
// imply value inequality: any two values that render to the same string
// compare equal.
//
// The grammar defines no escaping mechanism. Segments, keys and values must
// not contain a character that would be read as a delimiter ("::", "?", "&",
// "=", "/") in that position.
package nri
