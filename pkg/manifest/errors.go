package manifest

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrManifestNotFound is returned when no Cargo.toml exists in the start directory or any parent
	ErrManifestNotFound = errors.New("No manifest found")
	// ErrNoSuchFile is returned when the entry point does not exist
	ErrNoSuchFile = errors.New("No such file or directory")
)

// NotFoundError is returned when a required section of the manifest is missing.
// Section is a dotted path like `package` or `workspace.package.license`
type NotFoundError struct {
	Section string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found in manifest", e.Section)
}

// InheritanceError is returned when a package field is set to `{ workspace = true }`
// but the workspace template does not provide a value
type InheritanceError struct {
	Field string
}

func (e *InheritanceError) Error() string {
	return fmt.Sprintf("%s is inherited from the workspace but workspace.package does not set it", e.Field)
}

// DecodeError is returned when a manifest value has an unexpected shape
type DecodeError struct {
	message string
	// Path is the dotted TOML path of the offending value
	Path string
}

func (e *DecodeError) Error() string {
	return e.Path + ": " + e.message
}

func decodeErrorf(path string, format string, a ...interface{}) *DecodeError {
	return &DecodeError{Path: path, message: fmt.Sprintf(format, a...)}
}

// IsNotFound returns true if err is (or wraps) a NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsInheritance returns true if err is (or wraps) an InheritanceError
func IsInheritance(err error) bool {
	var ie *InheritanceError
	return errors.As(err, &ie)
}
