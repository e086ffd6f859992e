package menu

import (
	"errors"
	"fmt"
)

// Sentinel errors for configuration loading and validation. SchemaError
// wraps one of these, so callers can classify failures with errors.Is
// while still getting the offending path and source position.
var (
	// ErrNotMapping marks a node that should have been a mapping: the
	// document root, a group body, an entry body, or a dropdown body.
	ErrNotMapping = errors.New("menu: mapping expected")

	// ErrBadField marks an unknown field or a field with the wrong shape
	// inside an entry or sub-entry body.
	ErrBadField = errors.New("menu: invalid field")

	// ErrNestedDropdown marks a dropdown declared inside a dropdown
	// child. The schema allows exactly one level of nesting.
	ErrNestedDropdown = errors.New("menu: dropdown nesting exceeds one level")

	// ErrDuplicateKey marks a group, entry, sub-entry, or field name that
	// appears twice within one scope.
	ErrDuplicateKey = errors.New("menu: duplicate key")

	// ErrReservedKey marks a use of the reserved metadata key where a
	// regular name is required.
	ErrReservedKey = errors.New("menu: reserved key")
)

// SchemaError describes a structural problem in a menu configuration. All
// schema problems surface when the configuration is loaded or validated;
// rendering never raises them.
type SchemaError struct {
	// Path locates the problem as a dot-joined key path, for example
	// "Analytics.Reports.Sales". Empty for document-level problems.
	Path string

	// Line and Column point into the source document when the error came
	// from loading; both are zero for errors found by Validate.
	Line   int
	Column int

	// Reason is a human-readable description of the problem.
	Reason string

	err error
}

func (e *SchemaError) Error() string {
	var pos string
	if e.Line > 0 {
		pos = fmt.Sprintf(" (line %d, column %d)", e.Line, e.Column)
	}

	if e.Path == "" {
		return fmt.Sprintf("menu: %s%s", e.Reason, pos)
	}

	return fmt.Sprintf("menu: %s: %s%s", e.Path, e.Reason, pos)
}

// Unwrap exposes the sentinel the error was built from.
func (e *SchemaError) Unwrap() error {
	return e.err
}

func newSchemaError(sentinel error, path, reason string) *SchemaError {
	return &SchemaError{
		Path:   path,
		Reason: reason,
		err:    sentinel,
	}
}
