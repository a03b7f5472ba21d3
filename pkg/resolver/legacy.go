package resolver

import (
	"strings"

	"github.com/hashicorp-forge/nri/pkg/nri"
)

// Identifier rewrites kept for callers that predate project-relative
// resolution and still address project files through absolute user paths.
// New code resolves project identifiers through Resolver.Resolve instead of
// rewriting them.

// ToAbsolute rewrites a project-relative identifier into a user-filesystem
// identifier rooted at projectPath. Identifiers of any other scheme are
// returned unchanged.
//
// Deprecated: resolve project identifiers with Resolver.Resolve and a
// project path hint.
func ToAbsolute(id nri.Identifier, projectPath string) (nri.Identifier, error) {
	if !id.IsProjectResource() {
		return id, nil
	}
	return nri.UserResource(projectPath + "/" + id.StringWithoutScheme())
}

// ToProjectRelative rewrites a user-filesystem identifier whose path passes
// through projectPath into a project-relative identifier, stripping
// everything up to and including "projectPath/". Identifiers of any other
// scheme, or user identifiers outside the project, are returned unchanged.
//
// Deprecated: resolve project identifiers with Resolver.Resolve and a
// project path hint.
func ToProjectRelative(id nri.Identifier, projectPath string) (nri.Identifier, error) {
	if !id.IsUserResource() {
		return id, nil
	}

	raw := id.StringWithoutScheme()
	marker := projectPath + "/"
	idx := strings.Index(raw, marker)
	if idx < 0 {
		return id, nil
	}

	return nri.ProjectResource(raw[idx+len(marker):])
}

// BuildUserResource constructs a user-filesystem identifier for a file at
// relativePath under projectPath.
//
// Deprecated: construct a project-relative identifier with
// nri.ProjectResource and resolve it instead.
func BuildUserResource(projectPath, relativePath string) (nri.Identifier, error) {
	return nri.UserResource(projectPath + "/" + relativePath)
}
