package schema

import (
	"fmt"
	"math"

	"github.com/go-chip/tlv/element"
	"github.com/go-chip/tlv/errs"
)

// IntField is a fixed-width signed or unsigned integer field. Encoding
// always uses the declared width; decoding tolerates any on-wire width that
// fits the kind's integer family, since the wire length is self-describing.
type IntField struct {
	tag    element.Tag
	octets int
	signed bool
	cfg    config
}

// NewIntField creates an integer field of the given tag, declared width in
// octets (1, 2, 4, or 8), and signedness.
func NewIntField(tag element.Tag, octets int, signed bool, opts ...Option) (*IntField, error) {
	if octets != 1 && octets != 2 && octets != 4 && octets != 8 {
		return nil, fmt.Errorf("schema: invalid int field width %d: %w", octets, errs.ErrInternalInvariant)
	}

	var c config
	if err := applyOptions(&c, opts...); err != nil {
		return nil, err
	}

	return &IntField{tag: tag, octets: octets, signed: signed, cfg: c}, nil
}

func (f *IntField) Tag() element.Tag { return f.tag }
func (f *IntField) Optional() bool   { return f.cfg.optional }
func (f *IntField) Nullable() bool   { return f.cfg.nullable }

func (f *IntField) MaxLength() int {
	return element.HeaderWidth(f.tag) + f.octets
}

func (f *IntField) kind() element.Kind {
	switch {
	case f.signed && f.octets == 1:
		return element.KindSignedInt1
	case f.signed && f.octets == 2:
		return element.KindSignedInt2
	case f.signed && f.octets == 4:
		return element.KindSignedInt4
	case f.signed && f.octets == 8:
		return element.KindSignedInt8
	case !f.signed && f.octets == 1:
		return element.KindUnsignedInt1
	case !f.signed && f.octets == 2:
		return element.KindUnsignedInt2
	case !f.signed && f.octets == 4:
		return element.KindUnsignedInt4
	default:
		return element.KindUnsignedInt8
	}
}

func (f *IntField) ElementKind(_ any) (element.Kind, error) {
	return f.kind(), nil
}

// DecodeValue interprets length on-wire bytes at offset. Signed fields
// return int64; unsigned fields return uint64, preserving the full range of
// an 8-octet unsigned value.
func (f *IntField) DecodeValue(buf []byte, length, offset int) (any, error) {
	if length != 1 && length != 2 && length != 4 && length != 8 {
		return nil, fmt.Errorf("schema: int field %s has invalid on-wire width %d: %w", f.tag, length, errs.ErrInternalInvariant)
	}

	raw := element.ReadUintLE(buf[offset : offset+length])
	if !f.signed {
		return raw, nil
	}

	switch length {
	case 1:
		return int64(int8(raw)), nil
	case 2:
		return int64(int16(raw)), nil
	case 4:
		return int64(int32(raw)), nil
	default:
		return int64(raw), nil
	}
}

func (f *IntField) EncodeValue(v any, buf []byte, offset int) (int, error) {
	bits, _, err := normalizeInt(v)
	if err != nil {
		return 0, err
	}

	element.WriteUintLE(buf[offset:offset+f.octets], bits)

	return offset + f.octets, nil
}

func (f *IntField) Validate(v any) error {
	iv, uv, isUint, err := toInt(v)
	if err != nil {
		return err
	}

	if f.signed {
		val := iv
		if isUint {
			if uv > math.MaxInt64 {
				return fmt.Errorf("tlv: value %d exceeds signed range: %w", uv, errs.ErrIntOutOfRange)
			}
			val = int64(uv)
		}

		lo, hi := signedRange(f.octets)
		if val < lo || val > hi {
			return fmt.Errorf("tlv: value %d outside declared %d-octet signed range [%d,%d]: %w", val, f.octets, lo, hi, errs.ErrIntOutOfRange)
		}

		if f.cfg.hasRange && (val < f.cfg.minVal || val > f.cfg.maxVal) {
			return fmt.Errorf("tlv: value %d outside configured range [%d,%d]: %w", val, f.cfg.minVal, f.cfg.maxVal, errs.ErrRangeConstraintViolated)
		}

		return nil
	}

	val := uv
	if !isUint {
		if iv < 0 {
			return fmt.Errorf("tlv: negative value %d for unsigned field: %w", iv, errs.ErrIntOutOfRange)
		}
		val = uint64(iv)
	}

	hi := unsignedMax(f.octets)
	if val > hi {
		return fmt.Errorf("tlv: value %d outside declared %d-octet unsigned range [0,%d]: %w", val, f.octets, hi, errs.ErrIntOutOfRange)
	}

	if f.cfg.hasRange && val <= math.MaxInt64 {
		signedVal := int64(val)
		if signedVal < f.cfg.minVal || signedVal > f.cfg.maxVal {
			return fmt.Errorf("tlv: value %d outside configured range [%d,%d]: %w", val, f.cfg.minVal, f.cfg.maxVal, errs.ErrRangeConstraintViolated)
		}
	}

	return nil
}

func (f *IntField) Render(v any) string {
	iv, uv, isUint, err := toInt(v)
	if err != nil {
		return "<invalid int>"
	}

	if f.signed {
		val := iv
		if isUint {
			val = int64(uv)
		}

		return fmt.Sprintf("%d", val)
	}

	val := uv
	if !isUint {
		val = uint64(iv)
	}

	return fmt.Sprintf("%du", val)
}

// signedRange returns the representable [min, max] for a signed integer of
// the given octet width.
func signedRange(octets int) (int64, int64) {
	if octets == 8 {
		return math.MinInt64, math.MaxInt64
	}
	bits := uint(octets * 8)
	hi := int64(1)<<(bits-1) - 1
	lo := -(int64(1) << (bits - 1))

	return lo, hi
}

// unsignedMax returns the maximum representable value for an unsigned
// integer of the given octet width.
func unsignedMax(octets int) uint64 {
	if octets == 8 {
		return math.MaxUint64
	}

	return uint64(1)<<(uint(octets)*8) - 1
}

// toInt normalizes a candidate value to either a signed int64 or unsigned
// uint64, reporting which representation applies.
func toInt(v any) (i int64, u uint64, isUint bool, err error) {
	switch n := v.(type) {
	case int:
		return int64(n), 0, false, nil
	case int8:
		return int64(n), 0, false, nil
	case int16:
		return int64(n), 0, false, nil
	case int32:
		return int64(n), 0, false, nil
	case int64:
		return n, 0, false, nil
	case uint:
		return 0, uint64(n), true, nil
	case uint8:
		return 0, uint64(n), true, nil
	case uint16:
		return 0, uint64(n), true, nil
	case uint32:
		return 0, uint64(n), true, nil
	case uint64:
		return 0, n, true, nil
	default:
		return 0, 0, false, fmt.Errorf("tlv: %T is not an integer value: %w", v, errs.ErrInternalInvariant)
	}
}

// normalizeInt returns the raw two's-complement bit pattern to write on the
// wire for v, plus whether v arrived as an unsigned type.
func normalizeInt(v any) (bits uint64, isUint bool, err error) {
	i, u, isUint, err := toInt(v)
	if err != nil {
		return 0, false, err
	}
	if isUint {
		return u, true, nil
	}

	return uint64(i), false, nil
}
