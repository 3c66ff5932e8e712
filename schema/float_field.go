package schema

import (
	"fmt"
	"math"

	"github.com/go-chip/tlv/element"
	"github.com/go-chip/tlv/errs"
)

// FloatField is a single- or double-precision IEEE 754 float field. It has
// no min/max check.
type FloatField struct {
	tag    element.Tag
	octets int
	cfg    config
}

// NewFloatField creates a float field of the given tag and declared width
// in octets (4 or 8).
func NewFloatField(tag element.Tag, octets int, opts ...Option) (*FloatField, error) {
	if octets != 4 && octets != 8 {
		return nil, fmt.Errorf("schema: invalid float field width %d: %w", octets, errs.ErrInternalInvariant)
	}

	var c config
	if err := applyOptions(&c, opts...); err != nil {
		return nil, err
	}

	return &FloatField{tag: tag, octets: octets, cfg: c}, nil
}

func (f *FloatField) Tag() element.Tag { return f.tag }
func (f *FloatField) Optional() bool   { return f.cfg.optional }
func (f *FloatField) Nullable() bool   { return f.cfg.nullable }

func (f *FloatField) MaxLength() int {
	return element.HeaderWidth(f.tag) + f.octets
}

func (f *FloatField) ElementKind(_ any) (element.Kind, error) {
	if f.octets == 4 {
		return element.KindFloat4, nil
	}

	return element.KindFloat8, nil
}

func (f *FloatField) DecodeValue(buf []byte, length, offset int) (any, error) {
	raw := element.ReadUintLE(buf[offset : offset+length])
	if length == 4 {
		return float64(math.Float32frombits(uint32(raw))), nil
	}

	return math.Float64frombits(raw), nil
}

func (f *FloatField) EncodeValue(v any, buf []byte, offset int) (int, error) {
	fv, err := toFloat(v)
	if err != nil {
		return 0, err
	}

	if f.octets == 4 {
		element.WriteUintLE(buf[offset:offset+4], uint64(math.Float32bits(float32(fv))))
	} else {
		element.WriteUintLE(buf[offset:offset+8], math.Float64bits(fv))
	}

	return offset + f.octets, nil
}

func (f *FloatField) Validate(v any) error {
	_, err := toFloat(v)
	return err
}

func (f *FloatField) Render(v any) string {
	fv, err := toFloat(v)
	if err != nil {
		return "<invalid float>"
	}

	return fmt.Sprintf("%g", fv)
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float32:
		return float64(n), nil
	case float64:
		return n, nil
	default:
		return 0, fmt.Errorf("tlv: %T is not a float value: %w", v, errs.ErrInternalInvariant)
	}
}
