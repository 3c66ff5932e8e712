package record

import (
	"fmt"
	"strings"

	"github.com/go-chip/tlv/element"
	"github.com/go-chip/tlv/errs"
	"github.com/go-chip/tlv/internal/hash"
	"github.com/go-chip/tlv/internal/pool"
	"github.com/go-chip/tlv/schema"
)

// Record holds the decoded or to-be-encoded state of one structure's member
// sequence. A Record built with FromBuffer indexes its backing buffer
// lazily: scanUntil only walks as far into buf as is needed to resolve the
// tag currently being requested.
type Record struct {
	schema *Schema
	buf    []byte

	tagValueOffset map[element.Tag]int
	tagValueLength map[element.Tag]int
	tagKind        map[element.Tag]element.Kind
	nullTags       map[element.Tag]struct{}
	cachedValues   map[element.Tag]any
	scanCursor     int
}

// New creates an empty record ready to be populated with Set.
func New(sch *Schema) *Record {
	return &Record{schema: sch, cachedValues: make(map[element.Tag]any)}
}

// FromBuffer creates a record backed by buf, which must hold exactly the
// member sequence of a structure (no leading control octet for the
// structure itself, and no trailing end-of-container byte). Nothing is
// parsed until a field is first requested.
func FromBuffer(sch *Schema, buf []byte) *Record {
	return &Record{
		schema:         sch,
		buf:            buf,
		tagValueOffset: make(map[element.Tag]int),
		tagValueLength: make(map[element.Tag]int),
		tagKind:        make(map[element.Tag]element.Kind),
		nullTags:       make(map[element.Tag]struct{}),
		cachedValues:   make(map[element.Tag]any),
	}
}

// Schema returns the schema this record was built from.
func (r *Record) Schema() *Schema {
	return r.schema
}

// scanUntil advances the lazy index past target's element, or to the end of
// buf if target never appears. It is a no-op once target is already
// indexed or buf is exhausted.
func (r *Record) scanUntil(target element.Tag) error {
	if r.buf == nil {
		return nil
	}
	if _, ok := r.tagKind[target]; ok {
		return nil
	}

	for r.scanCursor < len(r.buf) {
		h, err := element.DecodeHeader(r.buf, r.scanCursor)
		if err != nil {
			return err
		}

		valueOffset, valueLength, next, err := element.ValueSpan(r.buf, r.scanCursor, h)
		if err != nil {
			return err
		}

		r.tagKind[h.Tag] = h.Kind
		if h.Kind == element.KindNull {
			r.nullTags[h.Tag] = struct{}{}
		} else {
			r.tagValueOffset[h.Tag] = valueOffset
			r.tagValueLength[h.Tag] = valueLength
		}

		r.scanCursor = next
		if h.Tag == target {
			return nil
		}
	}

	return nil
}

// Get returns f's current value: ok is false only when f is absent and
// either optional or (if neither optional nor nullable) simply unset — in
// the latter case the caller is expected to be an encode path that turns
// the absence into ErrMissingRequired itself, not Get. A present NULL value
// reports ok=true with a nil value; so does a nullable, non-optional field
// that was never set at all, since such a field is encoded as NULL rather
// than omitted.
func (r *Record) Get(f schema.Field) (any, bool, error) {
	tag := f.Tag()

	if v, ok := r.cachedValues[tag]; ok {
		return v, true, nil
	}

	if err := r.scanUntil(tag); err != nil {
		return nil, false, err
	}

	if _, ok := r.nullTags[tag]; ok {
		if !f.Nullable() {
			return nil, true, fmt.Errorf("record: field %s decoded as null but is not nullable: %w", tag, errs.ErrNotNullable)
		}
		return nil, true, nil
	}

	kind, found := r.tagKind[tag]
	if !found {
		if f.Nullable() && !f.Optional() {
			return nil, true, nil
		}
		return nil, false, nil
	}

	var (
		v   any
		err error
	)
	if kind.IsBool() {
		bit := 0
		if kind == element.KindBoolTrue {
			bit = 1
		}
		v, err = f.DecodeValue(nil, bit, 0)
	} else {
		v, err = f.DecodeValue(r.buf, r.tagValueLength[tag], r.tagValueOffset[tag])
	}
	if err != nil {
		return nil, true, err
	}

	r.cachedValues[tag] = v

	return v, true, nil
}

// Set stores v as f's value, validating it first. Passing a nil v sets the
// field to NULL, which requires f.Nullable().
func (r *Record) Set(f schema.Field, v any) error {
	tag := f.Tag()

	if v == nil {
		if !f.Nullable() {
			return fmt.Errorf("record: field %s is not nullable: %w", tag, errs.ErrNotNullable)
		}
		if r.nullTags == nil {
			r.nullTags = make(map[element.Tag]struct{})
		}
		r.nullTags[tag] = struct{}{}
		delete(r.cachedValues, tag)

		return nil
	}

	if err := f.Validate(v); err != nil {
		return err
	}

	delete(r.nullTags, tag)
	r.cachedValues[tag] = v

	return nil
}

// IsNull reports whether f is currently set to an explicit NULL.
func (r *Record) IsNull(f schema.Field) (bool, error) {
	v, ok, err := r.Get(f)
	if err != nil {
		return false, err
	}

	return ok && v == nil, nil
}

// SetNull sets f to an explicit NULL.
func (r *Record) SetNull(f schema.Field) error {
	return r.Set(f, nil)
}

// EncodeInto writes the record's member sequence into buf starting at
// offset, in schema field order, and returns the offset past the last byte
// written. Fields absent and optional are skipped; a present NULL field
// writes a NULL element; a field that is absent, not optional, and not
// nullable fails with ErrMissingRequired (Get itself never raises this —
// it is an encode-time concern, not a read-time one).
func (r *Record) EncodeInto(buf []byte, offset int) (int, error) {
	for _, f := range r.schema.fields {
		v, ok, err := r.Get(f)
		if err != nil {
			return 0, err
		}
		if !ok {
			if f.Optional() {
				continue
			}
			return 0, fmt.Errorf("record: required field %s is missing: %w", f.Tag(), errs.ErrMissingRequired)
		}

		if v == nil {
			offset = element.EncodeHeader(buf, offset, f.Tag(), element.KindNull)
			continue
		}

		kind, err := f.ElementKind(v)
		if err != nil {
			return 0, err
		}

		offset = element.EncodeHeader(buf, offset, f.Tag(), kind)
		if kind.IsBool() {
			continue
		}

		offset, err = f.EncodeValue(v, buf, offset)
		if err != nil {
			return 0, err
		}
	}

	return offset, nil
}

// Encode renders the record's current values to a freshly allocated byte
// slice.
func (r *Record) Encode() ([]byte, error) {
	bb := pool.GetRecordBuffer()
	defer pool.PutRecordBuffer(bb)

	size := r.schema.MaxLength()
	bb.Grow(size)
	bb.SetLength(size)

	n, err := r.EncodeInto(bb.Bytes(), 0)
	if err != nil {
		return nil, err
	}

	out := make([]byte, n)
	copy(out, bb.Bytes()[:n])

	return out, nil
}

// Digest returns the xxHash64 of the record's current encoded form, or 0 if
// the record cannot currently be encoded (for example, a required field is
// missing). Two records with identical field values produce the same
// digest regardless of whether one was decoded and the other built.
func (r *Record) Digest() uint64 {
	enc, err := r.Encode()
	if err != nil {
		return 0
	}

	return hash.Bytes(enc)
}

// Render formats the record's fields as "tag = value" pairs, braced and
// indented two spaces per nesting level, matching the original source's
// struct printer. Absent optional fields are skipped; a present NULL field
// renders as "null".
func (r *Record) Render() string {
	parts := make([]string, 0, len(r.schema.fields))

	for _, f := range r.schema.fields {
		v, ok, err := r.Get(f)

		var rendered string
		switch {
		case err != nil:
			if f.Optional() {
				continue
			}
			rendered = fmt.Sprintf("<error: %v>", err)
		case !ok:
			continue
		case v == nil:
			rendered = "null"
		default:
			rendered = f.Render(v)
			if _, isStruct := f.(*StructField); isStruct {
				rendered = strings.ReplaceAll(rendered, "\n", "\n  ")
			}
		}

		parts = append(parts, fmt.Sprintf("%s = %s", f.Tag(), rendered))
	}

	return "{\n  " + strings.Join(parts, ",\n  ") + "\n}"
}
