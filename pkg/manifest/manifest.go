/*
Package manifest reads the "Cargo.toml" package manifest.

A manifest can describe a single package (the `[package]` table), a workspace
(the `[workspace]` table) or both. Packages inside a workspace may defer most of
their metadata to the workspace template in `[workspace.package]` by setting
the field to `{ workspace = true }`.

Learn More

For more details visit https://doc.rust-lang.org/cargo/reference/manifest.html
*/
package manifest

// Filename is the name of the manifest file searched for by the Locator
const Filename = "Cargo.toml"

// Manifest is the parsed content of a Cargo.toml file.
// Both sections are optional, a manifest with neither is valid but useless
type Manifest struct {
	Package   *Package
	Workspace *Workspace
}

// Package is the `[package]` table
type Package struct {
	// Name is the name of the package. It can never be inherited from the workspace
	Name string
	// Version is a semver version string like `1.2.3-beta+001`
	Version Inheritable[string]
	// Authors in the form of "Full Name <email@example.com>"
	Authors     Inheritable[[]string]
	Homepage    Inheritable[string]
	License     Inheritable[string]
	Description Inheritable[string]
	Keywords    Inheritable[[]string]
	Categories  Inheritable[[]string]
	Edition     Inheritable[Edition]
	// Links is the name of the native library this package links to
	Links Inheritable[string]
}

// Workspace is the `[workspace]` table
type Workspace struct {
	// Members are the paths of all packages in this workspace
	Members Optional[[]string]
	// Package is the template other packages can inherit from
	Package *WorkspacePackage
}

// WorkspacePackage is the `[workspace.package]` template.
// Values in here are always concrete
type WorkspacePackage struct {
	Version     Optional[string]
	Authors     Optional[[]string]
	Homepage    Optional[string]
	License     Optional[string]
	Description Optional[string]
	Keywords    Optional[[]string]
	Categories  Optional[[]string]
	Edition     Optional[Edition]
	Links       Optional[string]
}

// New returns an empty manifest
func New() *Manifest {
	return &Manifest{}
}

// HasPackage returns true if the manifest contains a `[package]` table
func (m *Manifest) HasPackage() bool {
	return m.Package != nil
}

// HasWorkspace returns true if the manifest contains a `[workspace]` table
func (m *Manifest) HasWorkspace() bool {
	return m.Workspace != nil
}
