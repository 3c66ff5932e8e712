package record

import (
	"fmt"

	"github.com/go-chip/tlv/element"
	"github.com/go-chip/tlv/errs"
	"github.com/go-chip/tlv/schema"
)

// Schema is an ordered, validated set of field descriptors shared by every
// Record built from it. It is built once and is safe for concurrent
// read-only use by many Records.
type Schema struct {
	fields    []schema.Field
	index     map[element.Tag]int
	maxLength int
}

// NewSchema validates that no tag is declared more than once and
// precomputes the schema's worst-case encoded length.
func NewSchema(fields ...schema.Field) (*Schema, error) {
	index := make(map[element.Tag]int, len(fields))
	total := 0
	for i, f := range fields {
		if _, dup := index[f.Tag()]; dup {
			return nil, fmt.Errorf("record: tag %s declared more than once in schema: %w", f.Tag(), errs.ErrInternalInvariant)
		}
		index[f.Tag()] = i
		total += f.MaxLength()
	}

	return &Schema{fields: fields, index: index, maxLength: total}, nil
}

// MaxLength returns the maximum number of octets a record built from this
// schema can occupy, assuming every field is present.
func (s *Schema) MaxLength() int {
	return s.maxLength
}
