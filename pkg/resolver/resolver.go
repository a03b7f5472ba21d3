// Package resolver maps parsed Nri identifiers to loadable resource
// references.
//
// The resolver owns branch selection only: given an identifier and optional
// hints it decides which namespace the resource lives in and produces a
// Reference for an external byte loader. It performs no I/O itself; the
// filesystem existence check, project-context lookup and thumbnail path
// computation are collaborators supplied at construction.
package resolver

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"

	"github.com/hashicorp-forge/nri/pkg/nri"
)

// Resolution failures. Both are fatal to the single resolution attempt and
// surface to the caller; silently returning no resource would mask a
// configuration problem.
var (
	// ErrMissingProjectContext is returned for a project-relative
	// identifier when the caller supplied no project path and no project
	// context collaborator reports an open project.
	ErrMissingProjectContext = errors.New("no project context available")

	// ErrPackageMalformed is returned for a package identifier whose
	// package segment is empty.
	ErrPackageMalformed = errors.New("package resource identifier has no package segment")
)

// ScaleQueryKey is the query key carrying a display scale on an identifier,
// e.g. "nurs::img.png?scale=2.0".
const ScaleQueryKey = "scale"

// DefaultScale is the scale file and remote references resolve to when
// neither the identifier nor the caller requests one.
const DefaultScale = 1.0

// Config configures a Resolver. Every field is optional.
type Config struct {
	// Fs answers thumbnail existence checks. Defaults to the OS
	// filesystem.
	Fs afero.Fs

	// Projects supplies the current project root for project-relative
	// identifiers resolved without an explicit project path.
	Projects ProjectContext

	// Thumbnails computes thumbnail variant paths. When nil, thumbnail
	// hints and query parameters are ignored.
	Thumbnails ThumbnailTransformer

	// Logger defaults to a null logger.
	Logger hclog.Logger
}

// Resolver resolves identifiers into references. Safe for concurrent use:
// it holds no mutable state and the same identifier and hints always resolve
// the same way.
type Resolver struct {
	fs       afero.Fs
	projects ProjectContext
	thumbs   ThumbnailTransformer
	log      hclog.Logger
}

// New creates a Resolver from cfg, applying defaults for unset fields.
func New(cfg Config) *Resolver {
	if cfg.Fs == nil {
		cfg.Fs = afero.NewOsFs()
	}
	if cfg.Logger == nil {
		cfg.Logger = hclog.NewNullLogger()
	}
	return &Resolver{
		fs:       cfg.Fs,
		projects: cfg.Projects,
		thumbs:   cfg.Thumbnails,
		log:      cfg.Logger,
	}
}

// Hints are caller-supplied resolution defaults. The identifier's own query
// parameters win over hints: a hint is consulted only when the identifier
// carries no corresponding query entry.
type Hints struct {
	// Scale is the requested display scale; zero means unset.
	Scale float64

	// ProjectPath overrides the project-context collaborator as the root
	// for project-relative identifiers.
	ProjectPath string

	// Thumbnail requests a thumbnail variant; nil means none.
	Thumbnail *ThumbnailSpec
}

// Resolve maps id to a Reference, selecting the branch by scheme.
func (r *Resolver) Resolve(id nri.Identifier, hints Hints) (Reference, error) {
	scale := r.resolveScale(id, hints)
	thumb := r.resolveThumbnail(id, hints)

	switch {
	case id.IsAppResource():
		return Reference{Kind: KindBundledAsset, Path: id.Path(), Scale: scale}, nil

	case id.IsPackageResource():
		return r.resolvePackage(id, scale)

	case id.IsUserResource():
		if path, ok := r.existingThumbnail(id, thumb); ok {
			return Reference{Kind: KindFile, Path: path, Scale: concrete(scale)}, nil
		}
		return Reference{Kind: KindFile, Path: id.Path(), Scale: concrete(scale)}, nil

	case id.IsNetworkResource():
		return Reference{Kind: KindRemote, Path: id.StringWithoutScheme(), Scale: concrete(scale)}, nil

	case id.IsProjectResource():
		return r.resolveProject(id, hints, scale, thumb)
	}

	// The scheme set is closed and Parse rejects anything outside it.
	panic(fmt.Sprintf("resolver: unreachable scheme %q", id.Scheme()))
}

func (r *Resolver) resolvePackage(id nri.Identifier, scale float64) (Reference, error) {
	pkg, err := nri.NewPackageIdentifier(id)
	if err != nil {
		return Reference{}, fmt.Errorf("%w: %s", ErrPackageMalformed, id)
	}
	if pkg.Package() == "" {
		return Reference{}, fmt.Errorf("%w: %s", ErrPackageMalformed, id)
	}

	return Reference{
		Kind:    KindBundledAsset,
		Path:    pkg.Path(),
		Package: pkg.Package(),
		Scale:   scale,
	}, nil
}

func (r *Resolver) resolveProject(id nri.Identifier, hints Hints, scale float64, thumb *ThumbnailSpec) (Reference, error) {
	root := hints.ProjectPath
	if root == "" && r.projects != nil {
		root, _ = r.projects.CurrentProjectRoot()
	}
	if root == "" {
		return Reference{}, fmt.Errorf("%w: %s", ErrMissingProjectContext, id)
	}

	fullPath := root + "/" + id.Path()

	if thumb != nil && r.thumbs != nil {
		alt := r.thumbs.ThumbnailPathForFile(fullPath, *thumb)
		if r.exists(alt) {
			r.log.Debug("resolved to thumbnail", "identifier", id.String(), "path", alt)
			return Reference{Kind: KindFile, Path: alt, Scale: concrete(scale)}, nil
		}
	}

	return Reference{Kind: KindFile, Path: fullPath, Scale: concrete(scale)}, nil
}

// existingThumbnail returns the thumbnail path for a user-filesystem
// identifier when one is requested and present on disk.
func (r *Resolver) existingThumbnail(id nri.Identifier, thumb *ThumbnailSpec) (string, bool) {
	if thumb == nil || r.thumbs == nil {
		return "", false
	}

	alt := r.thumbs.ThumbnailPathForIdentifier(id, *thumb)
	if !r.exists(alt) {
		return "", false
	}

	r.log.Debug("resolved to thumbnail", "identifier", id.String(), "path", alt)
	return alt, true
}

func (r *Resolver) exists(path string) bool {
	ok, err := afero.Exists(r.fs, path)
	if err != nil {
		r.log.Error("existence check failed", "path", path, "error", err)
		return false
	}
	return ok
}

// resolveScale returns the identifier's scale query when present and
// parseable, otherwise the caller's hint (zero when neither).
func (r *Resolver) resolveScale(id nri.Identifier, hints Hints) float64 {
	if !id.HasQuery(ScaleQueryKey) {
		return hints.Scale
	}

	scale, err := nri.Query(id, ScaleQueryKey, func(value string, hasValue bool) (float64, error) {
		if !hasValue {
			return 0, fmt.Errorf("query key %q carries no value", ScaleQueryKey)
		}
		return strconv.ParseFloat(value, 64)
	})
	if err != nil {
		r.log.Debug("ignoring unparseable scale query", "identifier", id.String(), "error", err)
		return hints.Scale
	}

	return scale
}

// resolveThumbnail returns the thumbnail requested by the identifier's query
// when present, otherwise the caller's hint.
func (r *Resolver) resolveThumbnail(id nri.Identifier, hints Hints) *ThumbnailSpec {
	if r.thumbs == nil {
		return hints.Thumbnail
	}

	key := r.thumbs.QueryKey()
	if key == "" || !id.HasQuery(key) {
		return hints.Thumbnail
	}

	// A flag-only entry requests the default variant.
	spec, err := nri.Query(id, key, func(value string, hasValue bool) (ThumbnailSpec, error) {
		return ThumbnailSpec{Variant: value}, nil
	})
	if err != nil {
		return hints.Thumbnail
	}
	return &spec
}

// concrete replaces an unset scale with DefaultScale.
func concrete(scale float64) float64 {
	if scale == 0 {
		return DefaultScale
	}
	return scale
}
