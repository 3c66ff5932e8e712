package record

import (
	"errors"
	"testing"

	"github.com/go-chip/tlv/element"
	"github.com/go-chip/tlv/errs"
	"github.com/go-chip/tlv/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildNestedSchemas(t *testing.T) (*Schema, *schema.IntField, *Schema, *StructField) {
	t.Helper()

	innerField, err := schema.NewIntField(element.Context(1), 1, false)
	require.NoError(t, err)
	innerSchema, err := NewSchema(innerField)
	require.NoError(t, err)

	structField, err := NewStructField(element.Context(4), innerSchema)
	require.NoError(t, err)
	outerSchema, err := NewSchema(structField)
	require.NoError(t, err)

	return innerSchema, innerField, outerSchema, structField
}

func TestStructField_RoundTrip(t *testing.T) {
	innerSchema, innerField, outerSchema, structField := buildNestedSchemas(t)

	inner := New(innerSchema)
	require.NoError(t, SetInt(inner, innerField, 200))

	outer := New(outerSchema)
	require.NoError(t, SetStruct(outer, structField, inner))

	buf, err := outer.Encode()
	require.NoError(t, err)

	decoded := FromBuffer(outerSchema, buf)
	sub, ok, err := GetStruct(decoded, structField)
	require.NoError(t, err)
	require.True(t, ok)

	v, ok, err := GetInt(sub, innerField)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(200), v)
}

func TestStructField_Validate_RejectsMismatchedSchema(t *testing.T) {
	_, _, outerSchema, structField := buildNestedSchemas(t)

	otherField, err := schema.NewIntField(element.Context(9), 1, false)
	require.NoError(t, err)
	otherSchema, err := NewSchema(otherField)
	require.NoError(t, err)

	foreign := New(otherSchema)
	require.NoError(t, SetInt(foreign, otherField, 1))

	outer := New(outerSchema)
	err = SetStruct(outer, structField, foreign)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInternalInvariant))
}

func TestStructField_Render_IndentsNestedBraces(t *testing.T) {
	innerSchema, innerField, outerSchema, structField := buildNestedSchemas(t)

	inner := New(innerSchema)
	require.NoError(t, SetInt(inner, innerField, 5))

	outer := New(outerSchema)
	require.NoError(t, SetStruct(outer, structField, inner))

	rendered := outer.Render()
	assert.Contains(t, rendered, "ctx(4) = {\n    ctx(1) = 5u\n  }")
}
