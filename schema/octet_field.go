package schema

import (
	"encoding/hex"
	"fmt"

	"github.com/go-chip/tlv/element"
	"github.com/go-chip/tlv/errs"
)

// OctetField is a length-prefixed raw byte-string field.
type OctetField struct {
	tag         element.Tag
	lengthWidth int
	cfg         config
}

// NewOctetField creates an octet-string field whose maximum payload length
// is set via WithMaxLength (default 255).
func NewOctetField(tag element.Tag, opts ...Option) (*OctetField, error) {
	c := config{maxLength: 255}
	if err := applyOptions(&c, opts...); err != nil {
		return nil, err
	}

	return &OctetField{tag: tag, lengthWidth: lengthWidthFor(c.maxLength), cfg: c}, nil
}

func (f *OctetField) Tag() element.Tag { return f.tag }
func (f *OctetField) Optional() bool   { return f.cfg.optional }
func (f *OctetField) Nullable() bool   { return f.cfg.nullable }

func (f *OctetField) MaxLength() int {
	return element.HeaderWidth(f.tag) + f.lengthWidth + f.cfg.maxLength
}

func (f *OctetField) kind() element.Kind {
	switch f.lengthWidth {
	case 1:
		return element.KindOctetString1
	case 2:
		return element.KindOctetString2
	case 4:
		return element.KindOctetString4
	default:
		return element.KindOctetString8
	}
}

func (f *OctetField) ElementKind(_ any) (element.Kind, error) {
	return f.kind(), nil
}

func (f *OctetField) DecodeValue(buf []byte, length, offset int) (any, error) {
	out := make([]byte, length)
	copy(out, buf[offset:offset+length])

	return out, nil
}

func (f *OctetField) EncodeValue(v any, buf []byte, offset int) (int, error) {
	bv, ok := v.([]byte)
	if !ok {
		return 0, fmt.Errorf("tlv: %T is not a byte slice value: %w", v, errs.ErrInternalInvariant)
	}

	offset = element.EncodeLength(buf, offset, f.kind(), len(bv))
	n := copy(buf[offset:], bv)

	return offset + n, nil
}

func (f *OctetField) Validate(v any) error {
	bv, ok := v.([]byte)
	if !ok {
		return fmt.Errorf("tlv: %T is not a byte slice value: %w", v, errs.ErrInternalInvariant)
	}

	if len(bv) > f.cfg.maxLength {
		return fmt.Errorf("tlv: field %s value length %d exceeds max %d: %w", f.tag, len(bv), f.cfg.maxLength, errs.ErrLengthExceedsMax)
	}

	return nil
}

func (f *OctetField) Render(v any) string {
	bv, ok := v.([]byte)
	if !ok {
		return "<invalid bytes>"
	}

	return hex.EncodeToString(bv)
}
