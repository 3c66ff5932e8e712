// Package errs defines the sentinel errors returned by the element, schema,
// and record packages. Call sites wrap these with fmt.Errorf("...: %w", ...)
// for context; callers test membership with errors.Is / errors.As.
package errs

import "errors"

var (
	ErrUnsupportedTag          = errors.New("tlv: unsupported tag control")
	ErrTruncatedBuffer         = errors.New("tlv: truncated buffer")
	ErrTruncatedContainer      = errors.New("tlv: unterminated container")
	ErrInvalidUTF8             = errors.New("tlv: invalid utf-8 string")
	ErrLengthExceedsMax        = errors.New("tlv: string length exceeds field maximum")
	ErrIntOutOfRange           = errors.New("tlv: integer out of declared range")
	ErrRangeConstraintViolated = errors.New("tlv: value violates field range constraint")
	ErrNotNullable             = errors.New("tlv: field is not nullable")
	ErrMissingRequired         = errors.New("tlv: required field not set")
	ErrEnumMembershipViolated  = errors.New("tlv: value is not a member of the declared enumeration")
	ErrInternalInvariant       = errors.New("tlv: internal invariant violated")
)
