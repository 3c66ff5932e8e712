package schema

import (
	"fmt"

	"github.com/go-chip/tlv/element"
	"github.com/go-chip/tlv/errs"
)

// BoolField has a zero-octet payload: its value lives entirely in bit 0 of
// the element kind.
type BoolField struct {
	tag element.Tag
	cfg config
}

// NewBoolField creates a boolean field with the given tag.
func NewBoolField(tag element.Tag, opts ...Option) (*BoolField, error) {
	var c config
	if err := applyOptions(&c, opts...); err != nil {
		return nil, err
	}

	return &BoolField{tag: tag, cfg: c}, nil
}

func (f *BoolField) Tag() element.Tag { return f.tag }
func (f *BoolField) Optional() bool   { return f.cfg.optional }
func (f *BoolField) Nullable() bool   { return f.cfg.nullable }

func (f *BoolField) MaxLength() int {
	return element.HeaderWidth(f.tag)
}

func (f *BoolField) ElementKind(v any) (element.Kind, error) {
	bv, err := toBool(v)
	if err != nil {
		return 0, err
	}
	if bv {
		return element.KindBoolTrue, nil
	}

	return element.KindBoolFalse, nil
}

// DecodeValue ignores buf: the boolean value is recovered from the control
// octet by the caller before DecodeValue is invoked, via the decoded Kind.
// Record passes that recovered value in through length as 0 or 1.
func (f *BoolField) DecodeValue(_ []byte, length, _ int) (any, error) {
	return length != 0, nil
}

func (f *BoolField) EncodeValue(_ any, _ []byte, offset int) (int, error) {
	return offset, nil
}

func (f *BoolField) Validate(v any) error {
	_, err := toBool(v)
	return err
}

func (f *BoolField) Render(v any) string {
	bv, err := toBool(v)
	if err != nil {
		return "<invalid bool>"
	}

	return fmt.Sprintf("%t", bv)
}

func toBool(v any) (bool, error) {
	bv, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("tlv: %T is not a bool value: %w", v, errs.ErrInternalInvariant)
	}

	return bv, nil
}
