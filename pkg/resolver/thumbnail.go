package resolver

import (
	"strings"

	"github.com/hashicorp-forge/nri/pkg/nri"
)

// ThumbnailSpec requests an alternate, precomputed smaller variant of a
// resource. An empty Variant asks for the transformer's default variant.
type ThumbnailSpec struct {
	Variant string
}

// ThumbnailTransformer rewrites a resolved path into the path of its
// thumbnail variant. Implementations compute paths only; whether the
// thumbnail actually exists is checked separately against the filesystem
// collaborator.
type ThumbnailTransformer interface {
	// QueryKey returns the query-parameter key that lets an identifier
	// request a thumbnail variant directly (e.g. "nurs::a.png?thumbnail=small").
	QueryKey() string

	// ThumbnailPathForIdentifier returns the thumbnail file path for a
	// user-filesystem identifier.
	ThumbnailPathForIdentifier(id nri.Identifier, spec ThumbnailSpec) string

	// ThumbnailPathForFile returns the thumbnail file path for an absolute
	// file path.
	ThumbnailPathForFile(path string, spec ThumbnailSpec) string
}

// DefaultThumbnailQueryKey is the query key recognized by DirTransformer.
const DefaultThumbnailQueryKey = "thumbnail"

// DefaultThumbnailDir is the directory name DirTransformer stores thumbnails
// under, next to the original file.
const DefaultThumbnailDir = ".thumbnails"

// DirTransformer is a ThumbnailTransformer that keeps thumbnails in a hidden
// directory beside the original file:
//
//	images/photo.png            →  images/.thumbnails/photo.png
//	images/photo.png (variant)  →  images/.thumbnails/<variant>/photo.png
//
// Zero-value fields fall back to DefaultThumbnailDir and
// DefaultThumbnailQueryKey.
type DirTransformer struct {
	// Dir is the thumbnail directory name.
	Dir string

	// Key is the identifier query key requesting a thumbnail.
	Key string
}

// QueryKey implements ThumbnailTransformer.
func (t DirTransformer) QueryKey() string {
	if t.Key == "" {
		return DefaultThumbnailQueryKey
	}
	return t.Key
}

// ThumbnailPathForIdentifier implements ThumbnailTransformer.
func (t DirTransformer) ThumbnailPathForIdentifier(id nri.Identifier, spec ThumbnailSpec) string {
	return t.ThumbnailPathForFile(id.Path(), spec)
}

// ThumbnailPathForFile implements ThumbnailTransformer.
func (t DirTransformer) ThumbnailPathForFile(path string, spec ThumbnailSpec) string {
	dir := t.Dir
	if dir == "" {
		dir = DefaultThumbnailDir
	}

	parent := ""
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		parent = path[:idx+1]
	}

	variant := ""
	if spec.Variant != "" {
		variant = spec.Variant + "/"
	}

	return parent + dir + "/" + variant + nri.Filename(path)
}
