package fixture

import (
	"errors"
	"fmt"
)

// Error kinds. Match them with errors.Is.
var (
	ErrNotFound          = errors.New("fixture not found")
	ErrUnsupportedFormat = errors.New("unsupported fixture format")
	ErrParse             = errors.New("failed to parse fixture")
)

const (
	opLoad = "load"
	opWalk = "walk"
)

// LoadError describes a failed fixture load.
type LoadError struct {
	Op   string // "load" or "walk"
	Path string
	Ext  string // lower-cased extension, set for format errors
	Kind error  // ErrNotFound, ErrUnsupportedFormat, ErrParse or nil for read failures
	Err  error  // underlying cause, may be nil
}

func (e *LoadError) Error() string {
	switch e.Kind {
	case ErrNotFound:
		if e.Op == opWalk {
			return "fixture directory not found: " + e.Path
		}
		return "mock file not found: " + e.Path
	case ErrUnsupportedFormat:
		return fmt.Sprintf("file type '%s' is not supported", e.Ext)
	case ErrParse:
		return fmt.Sprintf("failed to parse fixture %s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("failed to read fixture %s: %v", e.Path, e.Err)
	}
}

func (e *LoadError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}
