// Package tlv implements the Matter TLV (Tag-Length-Value) binary codec: a
// compact, self-describing binary format for encoding structured data as a
// sequence of tagged, typed elements.
//
// The codec is layered, leaves-first:
//
//   - element — control octets, tags, element kinds, and container-boundary
//     scanning.
//   - schema — scalar field descriptors (integers, floats, booleans,
//     strings, octet strings, enums, the catch-all "any" field).
//   - record — Record and Schema, plus the container field descriptors
//     (struct, array, list) that need to construct Records.
//
// This root package re-exports the handful of types and constructors most
// callers need so a simple program never has to import record, schema, and
// element by hand.
//
// # Basic usage
//
//	idField, _ := schema.NewIntField(tlv.Context(1), 2, false)
//	nameField, _ := schema.NewUtf8Field(tlv.Context(2))
//	sch, _ := tlv.NewSchema(idField, nameField)
//
//	rec := tlv.NewRecord(sch)
//	record.SetInt(rec, idField, 42)
//	record.SetString(rec, nameField, "thermostat")
//
//	buf, _ := rec.Encode()
//	decoded := tlv.Decode(sch, buf)
//
// Building schemas and setting typed values still goes through the schema
// and record packages directly — this package only collapses the
// constructors that have no ambiguity about which package they belong to.
package tlv

import (
	"github.com/go-chip/tlv/element"
	"github.com/go-chip/tlv/record"
	"github.com/go-chip/tlv/schema"
)

// Tag identifies a field within a container.
type Tag = element.Tag

// Kind identifies a TLV element's wire type.
type Kind = element.Kind

// Field is the descriptor interface shared by every scalar and container
// field type.
type Field = schema.Field

// Schema is an ordered, validated set of field descriptors.
type Schema = record.Schema

// Record holds the decoded or to-be-encoded state of one structure.
type Record = record.Record

// Anonymous returns the anonymous tag.
func Anonymous() Tag { return element.Anonymous() }

// Context returns a context-specific tag with the given 8-bit tag number.
func Context(n uint8) Tag { return element.Context(n) }

// FullyQualified16 returns a fully-qualified tag with a 2-byte tag number.
func FullyQualified16(vendor, profile, number uint16) Tag {
	return element.FullyQualified16(vendor, profile, number)
}

// FullyQualified32 returns a fully-qualified tag with a 4-byte tag number.
func FullyQualified32(vendor, profile uint16, number uint32) Tag {
	return element.FullyQualified32(vendor, profile, number)
}

// NewSchema validates fields and builds the Schema shared by every Record
// built from it.
func NewSchema(fields ...Field) (*Schema, error) {
	return record.NewSchema(fields...)
}

// NewRecord creates an empty record ready to be populated with its Set
// method (or the typed record.SetInt/SetString/... sugar).
func NewRecord(sch *Schema) *Record {
	return record.New(sch)
}

// Decode creates a record backed by buf, which must hold exactly one
// structure's member sequence (no leading control octet for the structure
// itself, no trailing end-of-container byte). Nothing is parsed until a
// field is first requested.
func Decode(sch *Schema, buf []byte) *Record {
	return record.FromBuffer(sch, buf)
}
