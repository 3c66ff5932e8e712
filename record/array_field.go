package record

import "github.com/go-chip/tlv/element"

// defaultArrayMaxLength is the Matter MRP array ceiling: an array field's
// payload may not exceed this many octets.
const defaultArrayMaxLength = 1280

// ArrayField is a homogeneous repetition of one sub-schema, wire kind
// ARRAY. Each entry is wrapped as a STRUCTURE element by default, or as a
// LIST element when constructed with ArrayOfLists.
type ArrayField struct {
	tag           element.Tag
	elementSchema *Schema
	cfg           config
}

// NewArrayField creates an array field whose entries are described by
// elementSchema.
func NewArrayField(tag element.Tag, elementSchema *Schema, opts ...Option) (*ArrayField, error) {
	c := config{maxLength: defaultArrayMaxLength}
	if err := applyOptions(&c, opts...); err != nil {
		return nil, err
	}
	if c.maxLength > defaultArrayMaxLength {
		c.maxLength = defaultArrayMaxLength
	}

	return &ArrayField{tag: tag, elementSchema: elementSchema, cfg: c}, nil
}

func (f *ArrayField) entryKind() element.Kind {
	if f.cfg.elementIsList {
		return element.KindList
	}

	return element.KindStruct
}

func (f *ArrayField) Tag() element.Tag { return f.tag }
func (f *ArrayField) Optional() bool   { return f.cfg.optional }
func (f *ArrayField) Nullable() bool   { return f.cfg.nullable }

func (f *ArrayField) MaxLength() int {
	return element.HeaderWidth(f.tag) + f.cfg.maxLength + 1
}

func (f *ArrayField) ElementKind(_ any) (element.Kind, error) {
	return element.KindArray, nil
}

func (f *ArrayField) DecodeValue(buf []byte, length, offset int) (any, error) {
	inner := newEntryIterator(f.elementSchema, f.entryKind(), buf[offset:offset+length])
	return &RecordIterator{inner: inner}, nil
}

func (f *ArrayField) EncodeValue(v any, buf []byte, offset int) (int, error) {
	records, err := asRecordSlice(v, f.tag, f.elementSchema)
	if err != nil {
		return 0, err
	}

	return encodeRecordEntries(records, f.entryKind(), buf, offset)
}

func (f *ArrayField) Validate(v any) error {
	records, err := asRecordSlice(v, f.tag, f.elementSchema)
	if err != nil {
		return err
	}

	return validateRecordEntryLength(records, f.elementSchema, f.tag, f.cfg.maxLength)
}

func (f *ArrayField) Render(v any) string {
	records, err := asRecordSlice(v, f.tag, f.elementSchema)
	if err != nil {
		return "<invalid array>"
	}

	return renderRecordEntries(records)
}
