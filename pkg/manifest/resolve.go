package manifest

import (
	"fmt"
	"strings"
)

// Field is a package field that can be inherited from the workspace template
type Field uint8

const (
	FieldVersion Field = iota
	FieldAuthors
	FieldHomepage
	FieldLicense
	FieldDescription
	FieldKeywords
	FieldCategories
	FieldEdition
	FieldLinks
)

// Fields lists all inheritable fields in manifest order
var Fields = []Field{
	FieldVersion,
	FieldAuthors,
	FieldHomepage,
	FieldLicense,
	FieldDescription,
	FieldKeywords,
	FieldCategories,
	FieldEdition,
	FieldLinks,
}

var fieldKeys = map[Field]string{
	FieldVersion:     "version",
	FieldAuthors:     "authors",
	FieldHomepage:    "homepage",
	FieldLicense:     "license",
	FieldDescription: "description",
	FieldKeywords:    "keywords",
	FieldCategories:  "categories",
	FieldEdition:     "edition",
	FieldLinks:       "links",
}

// String returns the manifest key of the field
func (f Field) String() string {
	if key, ok := fieldKeys[f]; ok {
		return key
	}
	return fmt.Sprintf("Field(%d)", uint8(f))
}

// IsList returns true for fields holding a list of strings
func (f Field) IsList() bool {
	return f == FieldAuthors || f == FieldKeywords || f == FieldCategories
}

// ParseField returns the field for a manifest key like "license"
func ParseField(key string) (Field, error) {
	for f, k := range fieldKeys {
		if k == key {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown package field %q", key)
}

// Value is a resolved field value. Either a single string or a list
type Value struct {
	scalar string
	list   []string
	isList bool
}

// ScalarValue returns a single string value
func ScalarValue(s string) Value {
	return Value{scalar: s}
}

// ListValue returns a list value
func ListValue(l []string) Value {
	return Value{list: l, isList: true}
}

// IsList returns true for list values
func (v Value) IsList() bool {
	return v.isList
}

// List returns the items of a list value, or the scalar as only item
func (v Value) List() []string {
	if v.isList {
		return v.list
	}
	return []string{v.scalar}
}

// Join renders the value, list items are separated by delimiter
func (v Value) Join(delimiter string) string {
	if v.isList {
		return strings.Join(v.list, delimiter)
	}
	return v.scalar
}

func (v Value) String() string {
	return v.Join("\n")
}

// PackageName returns `package.name`
func (m *Manifest) PackageName() (string, error) {
	if m.Package == nil {
		return "", &NotFoundError{Section: "package"}
	}
	return m.Package.Name, nil
}

// PackageValue resolves the package field f. Fields marked with `workspace = true`
// are looked up in `[workspace.package]`
func (m *Manifest) PackageValue(f Field) (Value, error) {
	if m.Package == nil {
		return Value{}, &NotFoundError{Section: "package"}
	}
	p := m.Package
	tmpl := m.template()

	switch f {
	case FieldVersion:
		v, err := resolve(f, p.Version, tmpl.Version, nil)
		return ScalarValue(v), err
	case FieldAuthors:
		v, err := resolve(f, p.Authors, tmpl.Authors, &[]string{})
		return ListValue(v), err
	case FieldHomepage:
		v, err := resolve(f, p.Homepage, tmpl.Homepage, new(string))
		return ScalarValue(v), err
	case FieldLicense:
		v, err := resolve(f, p.License, tmpl.License, new(string))
		return ScalarValue(v), err
	case FieldDescription:
		v, err := resolve(f, p.Description, tmpl.Description, new(string))
		return ScalarValue(v), err
	case FieldKeywords:
		v, err := resolve(f, p.Keywords, tmpl.Keywords, &[]string{})
		return ListValue(v), err
	case FieldCategories:
		v, err := resolve(f, p.Categories, tmpl.Categories, &[]string{})
		return ListValue(v), err
	case FieldEdition:
		def := Edition2015
		v, err := resolve(f, p.Edition, tmpl.Edition, &def)
		if err != nil {
			return Value{}, err
		}
		return ScalarValue(v.String()), nil
	case FieldLinks:
		v, err := resolve(f, p.Links, tmpl.Links, new(string))
		return ScalarValue(v), err
	}
	return Value{}, fmt.Errorf("unknown package field %s", f)
}

// PackageVersion resolves `package.version`
func (m *Manifest) PackageVersion() (string, error) {
	v, err := m.PackageValue(FieldVersion)
	if err != nil {
		return "", err
	}
	return v.Join(""), nil
}

// WorkspacePackageValue returns the field f of the `[workspace.package]` template
func (m *Manifest) WorkspacePackageValue(f Field) (Value, error) {
	if m.Workspace == nil {
		return Value{}, &NotFoundError{Section: "workspace"}
	}
	tmpl := m.Workspace.Package
	if tmpl == nil {
		return Value{}, &NotFoundError{Section: "workspace.package"}
	}
	missing := &NotFoundError{Section: "workspace.package." + f.String()}

	switch f {
	case FieldVersion:
		return scalar(tmpl.Version, missing)
	case FieldAuthors:
		return list(tmpl.Authors, missing)
	case FieldHomepage:
		return scalar(tmpl.Homepage, missing)
	case FieldLicense:
		return scalar(tmpl.License, missing)
	case FieldDescription:
		return scalar(tmpl.Description, missing)
	case FieldKeywords:
		return list(tmpl.Keywords, missing)
	case FieldCategories:
		return list(tmpl.Categories, missing)
	case FieldEdition:
		e, ok := tmpl.Edition.Get()
		if !ok {
			return Value{}, missing
		}
		return ScalarValue(e.String()), nil
	case FieldLinks:
		return scalar(tmpl.Links, missing)
	}
	return Value{}, fmt.Errorf("unknown package field %s", f)
}

// WorkspaceVersion returns `workspace.package.version`
func (m *Manifest) WorkspaceVersion() (string, error) {
	v, err := m.WorkspacePackageValue(FieldVersion)
	if err != nil {
		return "", err
	}
	return v.Join(""), nil
}

// WorkspaceMembers returns `workspace.members`. A workspace without members yields an empty list
func (m *Manifest) WorkspaceMembers() ([]string, error) {
	if m.Workspace == nil {
		return nil, &NotFoundError{Section: "workspace"}
	}
	members, _ := m.Workspace.Members.Get()
	if members == nil {
		members = []string{}
	}
	return members, nil
}

// template returns the workspace template or an empty one
func (m *Manifest) template() *WorkspacePackage {
	if m.Workspace == nil || m.Workspace.Package == nil {
		return &WorkspacePackage{}
	}
	return m.Workspace.Package
}

// resolve follows the inheritance chain of a single field.
// def is used for absent fields, nil means the field has no default
func resolve[T any](f Field, local Inheritable[T], tmpl Optional[T], def *T) (T, error) {
	var zero T
	switch local.State() {
	case StateDirect:
		v, _ := local.Value()
		return v, nil
	case StateInherited:
		v, ok := tmpl.Get()
		if !ok {
			return zero, &InheritanceError{Field: "package." + f.String()}
		}
		return v, nil
	case StateAbsent:
		if def == nil {
			return zero, &NotFoundError{Section: "package." + f.String()}
		}
		return *def, nil
	}
	return zero, fmt.Errorf("field package.%s has invalid state %s", f, local.State())
}

func scalar(o Optional[string], missing error) (Value, error) {
	v, ok := o.Get()
	if !ok {
		return Value{}, missing
	}
	return ScalarValue(v), nil
}

func list(o Optional[[]string], missing error) (Value, error) {
	v, ok := o.Get()
	if !ok {
		return Value{}, missing
	}
	return ListValue(v), nil
}
