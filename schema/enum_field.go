package schema

import (
	"fmt"

	"github.com/go-chip/tlv/element"
	"github.com/go-chip/tlv/errs"
)

// EnumField is an integer field specialized to a 2-octet unsigned
// enumeration. E is typically a named uint16 type whose values are declared
// as constants by the caller; names maps each valid member to its display
// name.
type EnumField[E ~uint16] struct {
	tag   element.Tag
	names map[E]string
	cfg   config
}

// NewEnumField creates an enum field over the closed set of members in
// names.
func NewEnumField[E ~uint16](tag element.Tag, names map[E]string, opts ...Option) (*EnumField[E], error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("schema: enum field %s declares no members: %w", tag, errs.ErrInternalInvariant)
	}

	var c config
	if err := applyOptions(&c, opts...); err != nil {
		return nil, err
	}

	return &EnumField[E]{tag: tag, names: names, cfg: c}, nil
}

func (f *EnumField[E]) Tag() element.Tag { return f.tag }
func (f *EnumField[E]) Optional() bool   { return f.cfg.optional }
func (f *EnumField[E]) Nullable() bool   { return f.cfg.nullable }

func (f *EnumField[E]) MaxLength() int {
	return element.HeaderWidth(f.tag) + 2
}

func (f *EnumField[E]) ElementKind(_ any) (element.Kind, error) {
	return element.KindUnsignedInt2, nil
}

// DecodeValue returns the enumeration member for the on-wire value,
// regardless of whether it belongs to the declared member set — membership
// is enforced on write, not on read, per the schema layer's enum semantics.
func (f *EnumField[E]) DecodeValue(buf []byte, length, offset int) (any, error) {
	if length != 2 {
		return nil, fmt.Errorf("schema: enum field %s has invalid on-wire width %d: %w", f.tag, length, errs.ErrInternalInvariant)
	}

	return E(element.ReadUintLE(buf[offset : offset+2])), nil
}

func (f *EnumField[E]) EncodeValue(v any, buf []byte, offset int) (int, error) {
	ev, ok := v.(E)
	if !ok {
		return 0, fmt.Errorf("tlv: %T is not a member of enum field %s: %w", v, f.tag, errs.ErrEnumMembershipViolated)
	}

	element.WriteUintLE(buf[offset:offset+2], uint64(ev))

	return offset + 2, nil
}

func (f *EnumField[E]) Validate(v any) error {
	ev, ok := v.(E)
	if !ok {
		return fmt.Errorf("tlv: %T is not a member of enum field %s: %w", v, f.tag, errs.ErrEnumMembershipViolated)
	}

	if _, known := f.names[ev]; !known {
		return fmt.Errorf("tlv: value %d is not a declared member of enum field %s: %w", uint16(ev), f.tag, errs.ErrEnumMembershipViolated)
	}

	return nil
}

func (f *EnumField[E]) Render(v any) string {
	ev, ok := v.(E)
	if !ok {
		return "<invalid enum>"
	}

	if name, known := f.names[ev]; known {
		return name
	}

	return fmt.Sprintf("enum(%d)", uint16(ev))
}
