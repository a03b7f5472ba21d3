package resolver

// ProjectContext supplies the root directory of the currently open project,
// for resolving project-relative identifiers when the caller passes no
// explicit project path.
type ProjectContext interface {
	// CurrentProjectRoot returns the absolute project root and true, or
	// ("", false) when no project is open.
	CurrentProjectRoot() (string, bool)
}

// ProjectContextFunc adapts a plain function into a ProjectContext. Hosts
// with a blocking or cancellable project lookup can close over their own
// context here.
type ProjectContextFunc func() (string, bool)

// CurrentProjectRoot implements ProjectContext.
func (f ProjectContextFunc) CurrentProjectRoot() (string, bool) {
	return f()
}

// StaticProjectContext is a ProjectContext with a fixed root. The zero value
// reports no project.
type StaticProjectContext struct {
	Root string
}

// CurrentProjectRoot implements ProjectContext.
func (s StaticProjectContext) CurrentProjectRoot() (string, bool) {
	return s.Root, s.Root != ""
}
