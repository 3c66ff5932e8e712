// Package schema declares the scalar field descriptors of a TLV record
// type: integers, enums, floats, booleans, strings, and the "any" placeholder
// field. Container field descriptors (struct, array, list) live in package
// record, which needs to construct sub-records and would otherwise form an
// import cycle with schema.
package schema

import "github.com/go-chip/tlv/element"

// Field is implemented by every field descriptor, scalar or container. A
// field knows how to decode and encode its value, validate a candidate
// value before it is written, and render a value for diagnostics.
type Field interface {
	// Tag returns the field's wire tag.
	Tag() element.Tag

	// Optional reports whether the field may be absent from an encoded
	// record without error.
	Optional() bool

	// Nullable reports whether the field accepts an explicit NULL element.
	Nullable() bool

	// MaxLength returns the maximum number of octets this field can occupy
	// on the wire: one control octet, the tag header, and the field's
	// largest possible value payload.
	MaxLength() int

	// DecodeValue interprets the length bytes of buf starting at offset as
	// this field's value.
	DecodeValue(buf []byte, length, offset int) (any, error)

	// ElementKind returns the wire kind this field will encode v as.
	ElementKind(v any) (element.Kind, error)

	// EncodeValue writes v's value payload (excluding the control octet and
	// tag header, which the caller writes uniformly) into buf starting at
	// offset, and returns the offset past the written payload.
	EncodeValue(v any, buf []byte, offset int) (int, error)

	// Validate reports whether v is an acceptable non-null value for this
	// field. It is never called with a nil v; nullability is enforced by
	// the caller.
	Validate(v any) error

	// Render formats v as a human-readable diagnostic string.
	Render(v any) string
}
