package record

import (
	"fmt"
	"strings"

	"github.com/go-chip/tlv/element"
	"github.com/go-chip/tlv/errs"
)

// asRecordSlice type-asserts v as the []*Record value shared by ArrayField
// and ListField, checking every entry against elementSchema.
func asRecordSlice(v any, tag element.Tag, elementSchema *Schema) ([]*Record, error) {
	records, ok := v.([]*Record)
	if !ok {
		return nil, fmt.Errorf("tlv: %T is not a []*record.Record value for field %s: %w", v, tag, errs.ErrInternalInvariant)
	}
	for _, rec := range records {
		if rec.schema != elementSchema {
			return nil, fmt.Errorf("tlv: field %s entry does not match its declared element schema: %w", tag, errs.ErrInternalInvariant)
		}
	}

	return records, nil
}

// encodeRecordEntries writes each record in records as an entryKind-wrapped
// element (anonymous tag, inner payload, trailing end-of-container), then
// writes the outer container's own end-of-container byte.
func encodeRecordEntries(records []*Record, entryKind element.Kind, buf []byte, offset int) (int, error) {
	for _, rec := range records {
		offset = element.EncodeHeader(buf, offset, element.Anonymous(), entryKind)

		var err error
		offset, err = rec.EncodeInto(buf, offset)
		if err != nil {
			return 0, err
		}

		offset = element.EncodeEndOfContainer(buf, offset)
	}

	return element.EncodeEndOfContainer(buf, offset), nil
}

// validateRecordEntryLength rejects a set of entries whose worst-case
// encoded length exceeds maxLength.
func validateRecordEntryLength(records []*Record, elementSchema *Schema, tag element.Tag, maxLength int) error {
	const entryOverhead = 2 // anonymous control octet + trailing end-of-container
	estimate := len(records) * (elementSchema.MaxLength() + entryOverhead)
	if estimate > maxLength {
		return fmt.Errorf("tlv: field %s estimated length %d exceeds max %d: %w", tag, estimate, maxLength, errs.ErrLengthExceedsMax)
	}

	return nil
}

// renderRecordEntries formats records the way the original source's array
// printer does: "[[" + comma-joined braced entries + "]]".
func renderRecordEntries(records []*Record) string {
	parts := make([]string, len(records))
	for i, rec := range records {
		parts[i] = rec.Render()
	}

	return "[[" + strings.Join(parts, ", ") + "]]"
}
