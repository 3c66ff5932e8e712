package tlv_test

import (
	"testing"

	"github.com/go-chip/tlv"
	"github.com/go-chip/tlv/record"
	"github.com/go-chip/tlv/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTLV_BuildEncodeDecode(t *testing.T) {
	idField, err := schema.NewIntField(tlv.Context(1), 2, false)
	require.NoError(t, err)
	nameField, err := schema.NewUtf8Field(tlv.Context(2))
	require.NoError(t, err)

	sch, err := tlv.NewSchema(idField, nameField)
	require.NoError(t, err)

	rec := tlv.NewRecord(sch)
	require.NoError(t, record.SetInt(rec, idField, 42))
	require.NoError(t, record.SetString(rec, nameField, "thermostat"))

	buf, err := rec.Encode()
	require.NoError(t, err)

	decoded := tlv.Decode(sch, buf)

	id, ok, err := record.GetInt(decoded, idField)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(42), id)

	name, ok, err := record.GetString(decoded, nameField)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "thermostat", name)
}

func TestTLV_TagConstructors(t *testing.T) {
	assert.Equal(t, tlv.Anonymous(), tlv.Anonymous())
	assert.NotEqual(t, tlv.Context(1), tlv.Context(2))
	assert.Equal(t, tlv.Context(1), tlv.Context(1))
	assert.NotEqual(t, tlv.FullyQualified16(1, 2, 3), tlv.FullyQualified32(1, 2, 3))
}
