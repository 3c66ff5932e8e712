package record

import "github.com/go-chip/tlv/element"

// ListField is a heterogeneous-order repetition of one sub-schema, wire
// kind LIST: entries may repeat and appear in any order. Each entry is
// wrapped as a STRUCTURE element, same as ArrayField's default.
type ListField struct {
	tag           element.Tag
	elementSchema *Schema
	cfg           config
}

// NewListField creates a list field whose entries are described by
// elementSchema.
func NewListField(tag element.Tag, elementSchema *Schema, opts ...Option) (*ListField, error) {
	c := config{maxLength: defaultArrayMaxLength}
	if err := applyOptions(&c, opts...); err != nil {
		return nil, err
	}

	return &ListField{tag: tag, elementSchema: elementSchema, cfg: c}, nil
}

func (f *ListField) Tag() element.Tag { return f.tag }
func (f *ListField) Optional() bool   { return f.cfg.optional }
func (f *ListField) Nullable() bool   { return f.cfg.nullable }

func (f *ListField) MaxLength() int {
	return element.HeaderWidth(f.tag) + f.cfg.maxLength + 1
}

func (f *ListField) ElementKind(_ any) (element.Kind, error) {
	return element.KindList, nil
}

func (f *ListField) DecodeValue(buf []byte, length, offset int) (any, error) {
	inner := newEntryIterator(f.elementSchema, element.KindStruct, buf[offset:offset+length])
	return &ListIterator{inner: inner}, nil
}

func (f *ListField) EncodeValue(v any, buf []byte, offset int) (int, error) {
	records, err := asRecordSlice(v, f.tag, f.elementSchema)
	if err != nil {
		return 0, err
	}

	return encodeRecordEntries(records, element.KindStruct, buf, offset)
}

func (f *ListField) Validate(v any) error {
	records, err := asRecordSlice(v, f.tag, f.elementSchema)
	if err != nil {
		return err
	}

	return validateRecordEntryLength(records, f.elementSchema, f.tag, f.cfg.maxLength)
}

func (f *ListField) Render(v any) string {
	records, err := asRecordSlice(v, f.tag, f.elementSchema)
	if err != nil {
		return "<invalid list>"
	}

	return renderRecordEntries(records)
}
