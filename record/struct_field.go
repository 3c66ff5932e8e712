package record

import (
	"fmt"

	"github.com/go-chip/tlv/element"
	"github.com/go-chip/tlv/errs"
)

// StructField is a single nested structure whose members follow a fixed
// sub-schema. It lives in package record, not schema, because it must
// construct *Record values and would otherwise cycle with schema.
type StructField struct {
	tag    element.Tag
	schema *Schema
	cfg    config
}

// NewStructField creates a structure field of the given tag, described by
// sub.
func NewStructField(tag element.Tag, sub *Schema, opts ...Option) (*StructField, error) {
	var c config
	if err := applyOptions(&c, opts...); err != nil {
		return nil, err
	}

	return &StructField{tag: tag, schema: sub, cfg: c}, nil
}

func (f *StructField) Tag() element.Tag { return f.tag }
func (f *StructField) Optional() bool   { return f.cfg.optional }
func (f *StructField) Nullable() bool   { return f.cfg.nullable }

func (f *StructField) MaxLength() int {
	return element.HeaderWidth(f.tag) + f.schema.MaxLength() + 1
}

func (f *StructField) ElementKind(_ any) (element.Kind, error) {
	return element.KindStruct, nil
}

func (f *StructField) DecodeValue(buf []byte, length, offset int) (any, error) {
	return FromBuffer(f.schema, buf[offset:offset+length]), nil
}

func (f *StructField) EncodeValue(v any, buf []byte, offset int) (int, error) {
	rec, err := f.asRecord(v)
	if err != nil {
		return 0, err
	}

	offset, err = rec.EncodeInto(buf, offset)
	if err != nil {
		return 0, err
	}

	return element.EncodeEndOfContainer(buf, offset), nil
}

func (f *StructField) Validate(v any) error {
	_, err := f.asRecord(v)
	return err
}

func (f *StructField) Render(v any) string {
	rec, err := f.asRecord(v)
	if err != nil {
		return "<invalid struct>"
	}

	return rec.Render()
}

func (f *StructField) asRecord(v any) (*Record, error) {
	rec, ok := v.(*Record)
	if !ok {
		return nil, fmt.Errorf("tlv: %T is not a *record.Record value for struct field %s: %w", v, f.tag, errs.ErrInternalInvariant)
	}
	if rec.schema != f.schema {
		return nil, fmt.Errorf("tlv: record passed to struct field %s does not match its declared schema: %w", f.tag, errs.ErrInternalInvariant)
	}

	return rec, nil
}
