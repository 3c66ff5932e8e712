package record

import (
	"fmt"

	"github.com/go-chip/tlv/errs"
)

var errNegativeMaxLength = fmt.Errorf("record: max length must be non-negative: %w", errs.ErrInternalInvariant)
