package partial

import (
	"errors"
	"fmt"

	"github.com/on-the-ground/functools_go/shared/helper"
)

var ErrInvalidInput = helper.ErrInvalidInput

var (
	ErrMissingTarget      = fmt.Errorf("%w: partial requires a target", ErrInvalidInput)
	ErrNotCallable        = fmt.Errorf("%w: the target must be callable", ErrInvalidInput)
	ErrArgument           = fmt.Errorf("%w: bad argument", ErrInvalidInput)
	ErrUnexpectedKeyword  = fmt.Errorf("%w: unexpected keyword argument", ErrInvalidInput)
	ErrProtectedAttribute = fmt.Errorf("%w: a partial object's attribute store may not be deleted", ErrInvalidInput)
)

// ErrAttribute is the root of attribute access failures.
var ErrAttribute = errors.New("attribute error")

var (
	ErrReadOnlyAttribute = fmt.Errorf("%w: read-only attribute", ErrAttribute)
	ErrNoAttribute       = fmt.Errorf("%w: no such attribute", ErrAttribute)
)

var (
	ErrDuplicateName      = fmt.Errorf("%w: name already registered", ErrInvalidInput)
	ErrUnregisteredTarget = fmt.Errorf("%w: target is not registered", ErrInvalidInput)
	ErrUnsupportedValue   = fmt.Errorf("%w: value cannot be encoded", ErrInvalidInput)
	ErrCorruptSnapshot    = fmt.Errorf("%w: snapshot checksum mismatch", ErrInvalidInput)
	ErrSnapshotVersion    = fmt.Errorf("%w: unsupported snapshot version", ErrInvalidInput)
)
