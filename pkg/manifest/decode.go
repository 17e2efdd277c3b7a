package manifest

import (
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// NewFromFile reads and parses the manifest at filename
func NewFromFile(filename string) (*Manifest, error) {
	return NewFromFs(afero.NewOsFs(), filename)
}

// NewFromFs reads and parses the manifest at filename from fs
func NewFromFs(fs afero.Fs, filename string) (*Manifest, error) {
	raw, err := afero.ReadFile(fs, filename)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", filename)
	}
	m, err := Parse(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid manifest %s", filename)
	}
	return m, nil
}

// Parse parses raw toml into a manifest
func Parse(raw []byte) (*Manifest, error) {
	tree, err := toml.LoadBytes(raw)
	if err != nil {
		return nil, err
	}
	return decode(tree)
}

func decode(tree *toml.Tree) (*Manifest, error) {
	m := New()

	pkgTree, err := table(tree, "", "package")
	if err != nil {
		return nil, err
	}
	if pkgTree != nil {
		if m.Package, err = decodePackage(pkgTree); err != nil {
			return nil, err
		}
	}

	wsTree, err := table(tree, "", "workspace")
	if err != nil {
		return nil, err
	}
	if wsTree != nil {
		if m.Workspace, err = decodeWorkspace(wsTree); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func decodePackage(t *toml.Tree) (*Package, error) {
	const prefix = "package"
	p := &Package{}

	switch raw := t.GetPath([]string{"name"}).(type) {
	case nil:
		return nil, decodeErrorf("package.name", "missing")
	case *toml.Tree:
		return nil, decodeErrorf("package.name", "cannot be inherited from the workspace")
	default:
		name, err := decodeString("package.name", raw)
		if err != nil {
			return nil, err
		}
		p.Name = name
	}

	var err error
	if p.Version, err = inheritable(t, prefix, "version", decodeString); err != nil {
		return nil, err
	}
	if p.Authors, err = inheritable(t, prefix, "authors", decodeStrings); err != nil {
		return nil, err
	}
	if p.Homepage, err = inheritable(t, prefix, "homepage", decodeString); err != nil {
		return nil, err
	}
	if p.License, err = inheritable(t, prefix, "license", decodeString); err != nil {
		return nil, err
	}
	if p.Description, err = inheritable(t, prefix, "description", decodeString); err != nil {
		return nil, err
	}
	if p.Keywords, err = inheritable(t, prefix, "keywords", decodeStrings); err != nil {
		return nil, err
	}
	if p.Categories, err = inheritable(t, prefix, "categories", decodeStrings); err != nil {
		return nil, err
	}
	if p.Edition, err = inheritable(t, prefix, "edition", decodeEdition); err != nil {
		return nil, err
	}
	if p.Links, err = inheritable(t, prefix, "links", decodeString); err != nil {
		return nil, err
	}
	return p, nil
}

func decodeWorkspace(t *toml.Tree) (*Workspace, error) {
	ws := &Workspace{}

	var err error
	if ws.Members, err = optional(t, "workspace", "members", decodeStrings); err != nil {
		return nil, err
	}

	tmpl, err := table(t, "workspace", "package")
	if err != nil || tmpl == nil {
		return ws, err
	}

	const prefix = "workspace.package"
	wp := &WorkspacePackage{}
	if wp.Version, err = optional(tmpl, prefix, "version", decodeString); err != nil {
		return nil, err
	}
	if wp.Authors, err = optional(tmpl, prefix, "authors", decodeStrings); err != nil {
		return nil, err
	}
	if wp.Homepage, err = optional(tmpl, prefix, "homepage", decodeString); err != nil {
		return nil, err
	}
	if wp.License, err = optional(tmpl, prefix, "license", decodeString); err != nil {
		return nil, err
	}
	if wp.Description, err = optional(tmpl, prefix, "description", decodeString); err != nil {
		return nil, err
	}
	if wp.Keywords, err = optional(tmpl, prefix, "keywords", decodeStrings); err != nil {
		return nil, err
	}
	if wp.Categories, err = optional(tmpl, prefix, "categories", decodeStrings); err != nil {
		return nil, err
	}
	if wp.Edition, err = optional(tmpl, prefix, "edition", decodeEdition); err != nil {
		return nil, err
	}
	if wp.Links, err = optional(tmpl, prefix, "links", decodeString); err != nil {
		return nil, err
	}
	ws.Package = wp

	return ws, nil
}

// table returns the sub table at key, nil if there is none
func table(t *toml.Tree, prefix string, key string) (*toml.Tree, error) {
	switch raw := t.GetPath([]string{key}).(type) {
	case nil:
		return nil, nil
	case *toml.Tree:
		return raw, nil
	default:
		return nil, decodeErrorf(join(prefix, key), "expected a table")
	}
}

func inheritable[T any](t *toml.Tree, prefix string, key string, dec func(path string, raw interface{}) (T, error)) (Inheritable[T], error) {
	path := join(prefix, key)
	raw := t.GetPath([]string{key})
	if raw == nil {
		return Inheritable[T]{}, nil
	}

	if sub, ok := raw.(*toml.Tree); ok {
		if err := decodeMarker(path, sub); err != nil {
			return Inheritable[T]{}, err
		}
		return Inherit[T](), nil
	}

	v, err := dec(path, raw)
	if err != nil {
		return Inheritable[T]{}, err
	}
	return Direct(v), nil
}

// decodeMarker checks that t is exactly `{ workspace = true }`
func decodeMarker(path string, t *toml.Tree) error {
	raw := t.GetPath([]string{"workspace"})
	if raw == nil {
		return decodeErrorf(path, "expected a value or { workspace = true }")
	}
	flag, ok := raw.(bool)
	if !ok {
		return decodeErrorf(path+".workspace", "expected a boolean")
	}
	if !flag {
		return decodeErrorf(path+".workspace", "cannot be false")
	}
	return nil
}

func optional[T any](t *toml.Tree, prefix string, key string, dec func(path string, raw interface{}) (T, error)) (Optional[T], error) {
	path := join(prefix, key)
	switch raw := t.GetPath([]string{key}).(type) {
	case nil:
		return Optional[T]{}, nil
	case *toml.Tree:
		return Optional[T]{}, decodeErrorf(path, "workspace values cannot be inherited")
	default:
		v, err := dec(path, raw)
		if err != nil {
			return Optional[T]{}, err
		}
		return Some(v), nil
	}
}

func decodeString(path string, raw interface{}) (string, error) {
	s, ok := raw.(string)
	if !ok {
		return "", decodeErrorf(path, "expected a string, got %T", raw)
	}
	return s, nil
}

func decodeStrings(path string, raw interface{}) ([]string, error) {
	switch list := raw.(type) {
	case []string:
		return list, nil
	case []interface{}:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, decodeErrorf(path, "expected a list of strings, found %T", item)
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, decodeErrorf(path, "expected a list of strings, got %T", raw)
}

func decodeEdition(path string, raw interface{}) (Edition, error) {
	s, err := decodeString(path, raw)
	if err != nil {
		return 0, err
	}
	e, err := ParseEdition(s)
	if err != nil {
		return 0, decodeErrorf(path, "%s", err)
	}
	return e, nil
}

func join(prefix string, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
