// Package query answers a single field request against a manifest
package query

import (
	"fmt"

	"github.com/minepkg/cargo-get/internals/versions"
	"github.com/minepkg/cargo-get/pkg/manifest"
)

// Section is the manifest table a query reads from
type Section uint8

const (
	// SectionPackage reads `[package]`, following workspace inheritance
	SectionPackage Section = iota
	// SectionWorkspace reads `[workspace]` itself (only members)
	SectionWorkspace
	// SectionWorkspacePackage reads the `[workspace.package]` template
	SectionWorkspacePackage
)

// Query is one field request
type Query struct {
	Section Section
	// Field is the requested field. Ignored for Name and Members queries
	Field manifest.Field
	// Name requests `package.name`
	Name bool
	// Members requests `workspace.members`
	Members bool
	// Part selects the version component, only used for version queries
	Part versions.Part
}

// PackageName returns the query for `package.name`
func PackageName() Query {
	return Query{Section: SectionPackage, Name: true}
}

// Package returns the query for `package.<f>`
func Package(f manifest.Field) Query {
	return Query{Section: SectionPackage, Field: f}
}

// WorkspaceMembers returns the query for `workspace.members`
func WorkspaceMembers() Query {
	return Query{Section: SectionWorkspace, Members: true}
}

// WorkspacePackage returns the query for `workspace.package.<f>`
func WorkspacePackage(f manifest.Field) Query {
	return Query{Section: SectionWorkspacePackage, Field: f}
}

// WithPart returns a copy of q that prints the version component p
func (q Query) WithPart(p versions.Part) Query {
	q.Part = p
	return q
}

// Path returns the dotted manifest path this query reads, like `workspace.package.version`
func (q Query) Path() string {
	switch {
	case q.Name:
		return "package.name"
	case q.Members:
		return "workspace.members"
	case q.Section == SectionWorkspacePackage:
		return "workspace.package." + q.Field.String()
	default:
		return "package." + q.Field.String()
	}
}

func (q Query) isVersion() bool {
	return q.Field == manifest.FieldVersion && !q.Name && !q.Members
}

func (q Query) String() string {
	if q.isVersion() && q.Part != versions.PartDefault {
		return q.Path() + " --" + q.Part.String()
	}
	return q.Path()
}

// Run resolves q against m and returns the text to print.
// List values are joined with delimiter
func Run(m *manifest.Manifest, q Query, delimiter string) (string, error) {
	var (
		value manifest.Value
		err   error
	)

	switch {
	case q.Name:
		name, err := m.PackageName()
		return name, err
	case q.Members:
		members, err := m.WorkspaceMembers()
		if err != nil {
			return "", err
		}
		value = manifest.ListValue(members)
	case q.Section == SectionPackage:
		value, err = m.PackageValue(q.Field)
	case q.Section == SectionWorkspacePackage:
		value, err = m.WorkspacePackageValue(q.Field)
	default:
		return "", fmt.Errorf("unsupported query %s", q)
	}
	if err != nil {
		return "", err
	}

	if q.isVersion() {
		return versions.Render(value.Join(""), q.Part)
	}
	return value.Join(delimiter), nil
}
