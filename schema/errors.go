package schema

import (
	"fmt"

	"github.com/go-chip/tlv/errs"
)

// errRangeInverted and errNegativeMaxLength are construction-time misuse
// errors (a field built with an impossible constraint), distinct from the
// value-level validation errors a Field's Validate method returns.
var (
	errRangeInverted     = fmt.Errorf("schema: range minimum exceeds maximum: %w", errs.ErrInternalInvariant)
	errNegativeMaxLength = fmt.Errorf("schema: negative max length: %w", errs.ErrInternalInvariant)
)
