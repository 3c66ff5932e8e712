package schema

import (
	"fmt"
	"unicode/utf8"

	"github.com/go-chip/tlv/element"
	"github.com/go-chip/tlv/errs"
)

// Utf8Field is a length-prefixed UTF-8 string field. It validates round-trip
// UTF-8 validity on both encode and decode.
type Utf8Field struct {
	tag         element.Tag
	lengthWidth int
	cfg         config
}

// NewUtf8Field creates a UTF-8 string field whose maximum payload length is
// set via WithMaxLength (default 255).
func NewUtf8Field(tag element.Tag, opts ...Option) (*Utf8Field, error) {
	c := config{maxLength: 255}
	if err := applyOptions(&c, opts...); err != nil {
		return nil, err
	}

	return &Utf8Field{tag: tag, lengthWidth: lengthWidthFor(c.maxLength), cfg: c}, nil
}

func (f *Utf8Field) Tag() element.Tag { return f.tag }
func (f *Utf8Field) Optional() bool   { return f.cfg.optional }
func (f *Utf8Field) Nullable() bool   { return f.cfg.nullable }

func (f *Utf8Field) MaxLength() int {
	return element.HeaderWidth(f.tag) + f.lengthWidth + f.cfg.maxLength
}

func (f *Utf8Field) kind() element.Kind {
	switch f.lengthWidth {
	case 1:
		return element.KindUTF8String1
	case 2:
		return element.KindUTF8String2
	case 4:
		return element.KindUTF8String4
	default:
		return element.KindUTF8String8
	}
}

func (f *Utf8Field) ElementKind(_ any) (element.Kind, error) {
	return f.kind(), nil
}

func (f *Utf8Field) DecodeValue(buf []byte, length, offset int) (any, error) {
	s := buf[offset : offset+length]
	if !utf8.Valid(s) {
		return nil, fmt.Errorf("tlv: field %s contains invalid utf-8: %w", f.tag, errs.ErrInvalidUTF8)
	}

	return string(s), nil
}

func (f *Utf8Field) EncodeValue(v any, buf []byte, offset int) (int, error) {
	sv, ok := v.(string)
	if !ok {
		return 0, fmt.Errorf("tlv: %T is not a string value: %w", v, errs.ErrInternalInvariant)
	}

	offset = element.EncodeLength(buf, offset, f.kind(), len(sv))
	n := copy(buf[offset:], sv)

	return offset + n, nil
}

func (f *Utf8Field) Validate(v any) error {
	sv, ok := v.(string)
	if !ok {
		return fmt.Errorf("tlv: %T is not a string value: %w", v, errs.ErrInternalInvariant)
	}

	if !utf8.ValidString(sv) {
		return fmt.Errorf("tlv: field %s value is not valid utf-8: %w", f.tag, errs.ErrInvalidUTF8)
	}

	if len(sv) > f.cfg.maxLength {
		return fmt.Errorf("tlv: field %s value length %d exceeds max %d: %w", f.tag, len(sv), f.cfg.maxLength, errs.ErrLengthExceedsMax)
	}

	return nil
}

func (f *Utf8Field) Render(v any) string {
	sv, ok := v.(string)
	if !ok {
		return "<invalid string>"
	}

	return fmt.Sprintf("%q", sv)
}
