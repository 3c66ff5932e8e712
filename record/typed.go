package record

import (
	"fmt"

	"github.com/go-chip/tlv/errs"
	"github.com/go-chip/tlv/schema"
)

// GetInt returns an IntField's current value as int64. Values declared
// unsigned with the top bit set lose no information here since int64 and
// uint64 share the same bit pattern; callers needing the full unsigned
// range beyond math.MaxInt64 should reinterpret the returned bits.
func GetInt(r *Record, f *schema.IntField) (int64, bool, error) {
	v, ok, err := r.Get(f)
	if err != nil || !ok || v == nil {
		return 0, ok, err
	}

	switch n := v.(type) {
	case int64:
		return n, true, nil
	case uint64:
		return int64(n), true, nil
	default:
		return 0, true, fmt.Errorf("record: unexpected decoded type %T for int field %s: %w", v, f.Tag(), errs.ErrInternalInvariant)
	}
}

// SetInt sets an IntField's value.
func SetInt(r *Record, f *schema.IntField, v int64) error {
	return r.Set(f, v)
}

// GetFloat returns a FloatField's current value.
func GetFloat(r *Record, f *schema.FloatField) (float64, bool, error) {
	v, ok, err := r.Get(f)
	if err != nil || !ok || v == nil {
		return 0, ok, err
	}

	fv, isFloat := v.(float64)
	if !isFloat {
		return 0, true, fmt.Errorf("record: unexpected decoded type %T for float field %s: %w", v, f.Tag(), errs.ErrInternalInvariant)
	}

	return fv, true, nil
}

// SetFloat sets a FloatField's value.
func SetFloat(r *Record, f *schema.FloatField, v float64) error {
	return r.Set(f, v)
}

// GetBool returns a BoolField's current value.
func GetBool(r *Record, f *schema.BoolField) (bool, bool, error) {
	v, ok, err := r.Get(f)
	if err != nil || !ok || v == nil {
		return false, ok, err
	}

	bv, isBool := v.(bool)
	if !isBool {
		return false, true, fmt.Errorf("record: unexpected decoded type %T for bool field %s: %w", v, f.Tag(), errs.ErrInternalInvariant)
	}

	return bv, true, nil
}

// SetBool sets a BoolField's value.
func SetBool(r *Record, f *schema.BoolField, v bool) error {
	return r.Set(f, v)
}

// GetString returns a Utf8Field's current value.
func GetString(r *Record, f *schema.Utf8Field) (string, bool, error) {
	v, ok, err := r.Get(f)
	if err != nil || !ok || v == nil {
		return "", ok, err
	}

	sv, isString := v.(string)
	if !isString {
		return "", true, fmt.Errorf("record: unexpected decoded type %T for string field %s: %w", v, f.Tag(), errs.ErrInternalInvariant)
	}

	return sv, true, nil
}

// SetString sets a Utf8Field's value.
func SetString(r *Record, f *schema.Utf8Field, v string) error {
	return r.Set(f, v)
}

// GetBytes returns an OctetField's current value.
func GetBytes(r *Record, f *schema.OctetField) ([]byte, bool, error) {
	v, ok, err := r.Get(f)
	if err != nil || !ok || v == nil {
		return nil, ok, err
	}

	bv, isBytes := v.([]byte)
	if !isBytes {
		return nil, true, fmt.Errorf("record: unexpected decoded type %T for octet field %s: %w", v, f.Tag(), errs.ErrInternalInvariant)
	}

	return bv, true, nil
}

// SetBytes sets an OctetField's value.
func SetBytes(r *Record, f *schema.OctetField, v []byte) error {
	return r.Set(f, v)
}

// GetEnum returns an EnumField's current value.
func GetEnum[E ~uint16](r *Record, f *schema.EnumField[E]) (E, bool, error) {
	v, ok, err := r.Get(f)
	if err != nil || !ok || v == nil {
		var zero E
		return zero, ok, err
	}

	ev, isEnum := v.(E)
	if !isEnum {
		var zero E
		return zero, true, fmt.Errorf("record: unexpected decoded type %T for enum field %s: %w", v, f.Tag(), errs.ErrInternalInvariant)
	}

	return ev, true, nil
}

// SetEnum sets an EnumField's value.
func SetEnum[E ~uint16](r *Record, f *schema.EnumField[E], v E) error {
	return r.Set(f, v)
}

// GetStruct returns a StructField's current sub-record.
func GetStruct(r *Record, f *StructField) (*Record, bool, error) {
	v, ok, err := r.Get(f)
	if err != nil || !ok || v == nil {
		return nil, ok, err
	}

	sub, isRecord := v.(*Record)
	if !isRecord {
		return nil, true, fmt.Errorf("record: unexpected decoded type %T for struct field %s: %w", v, f.Tag(), errs.ErrInternalInvariant)
	}

	return sub, true, nil
}

// SetStruct sets a StructField's value.
func SetStruct(r *Record, f *StructField, v *Record) error {
	return r.Set(f, v)
}

// GetArray returns an ArrayField's current value as a lazily-consumed
// iterator.
func GetArray(r *Record, f *ArrayField) (*RecordIterator, bool, error) {
	v, ok, err := r.Get(f)
	if err != nil || !ok || v == nil {
		return nil, ok, err
	}

	it, isIterator := v.(*RecordIterator)
	if !isIterator {
		return nil, true, fmt.Errorf("record: unexpected decoded type %T for array field %s: %w", v, f.Tag(), errs.ErrInternalInvariant)
	}

	return it, true, nil
}

// SetArray sets an ArrayField's value. Construct the []*Record slice with
// entries built against f's declared element schema.
func SetArray(r *Record, f *ArrayField, v []*Record) error {
	return r.Set(f, v)
}

// GetList returns a ListField's current value as a lazily-consumed
// iterator. Lists are read-only sugar: build one by calling the untyped
// Set directly with a []*Record, the same as ArrayField.
func GetList(r *Record, f *ListField) (*ListIterator, bool, error) {
	v, ok, err := r.Get(f)
	if err != nil || !ok || v == nil {
		return nil, ok, err
	}

	it, isIterator := v.(*ListIterator)
	if !isIterator {
		return nil, true, fmt.Errorf("record: unexpected decoded type %T for list field %s: %w", v, f.Tag(), errs.ErrInternalInvariant)
	}

	return it, true, nil
}

// IsNull reports whether f is currently set to an explicit NULL.
func IsNull(r *Record, f schema.Field) (bool, error) {
	return r.IsNull(f)
}

// SetNull sets f to an explicit NULL.
func SetNull(r *Record, f schema.Field) error {
	return r.SetNull(f)
}
