package resolver

// Kind classifies a resolved reference for the byte-loading pipeline.
type Kind string

const (
	// KindBundledAsset is an asset inside the application or a package
	// bundle, addressed by bundle-relative path.
	KindBundledAsset Kind = "bundled-asset"

	// KindFile is a file on the user's filesystem, addressed by absolute
	// path.
	KindFile Kind = "file"

	// KindRemote is a network location fetched by an external loader.
	KindRemote Kind = "remote"
)

// Reference is the result of resolving an identifier: the namespace-specific
// path or location plus the metadata an external loader needs to fetch bytes.
// The resolver itself never performs I/O on it.
type Reference struct {
	// Kind selects how Path is interpreted.
	Kind Kind

	// Path is the bundle-relative asset path (KindBundledAsset), the
	// absolute file path (KindFile), or the remote location (KindRemote).
	Path string

	// Package scopes a bundled asset to a named package. Empty for assets
	// in the application bundle and for non-bundle kinds.
	Package string

	// Scale is the display scale the resource was resolved for. For
	// bundled assets a zero Scale requests a scale-free lookup instead of
	// an exact-scale variant; file and remote references always carry a
	// concrete scale (1.0 when nothing requested one).
	Scale float64
}
