package schema

import (
	"errors"
	"testing"

	"github.com/go-chip/tlv/element"
	"github.com/go-chip/tlv/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOctetField_EncodeDecode_RoundTrip(t *testing.T) {
	f, err := NewOctetField(element.Context(1))
	require.NoError(t, err)

	payload := []byte{0x01, 0x02, 0x18, 0x03}
	buf := make([]byte, 1+len(payload))
	n, err := f.EncodeValue(payload, buf, 0)
	require.NoError(t, err)
	assert.Equal(t, 1+len(payload), n)

	decoded, err := f.DecodeValue(buf, len(payload), 1)
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)
}

func TestOctetField_DecodeValue_CopiesBackingArray(t *testing.T) {
	f, err := NewOctetField(element.Context(1))
	require.NoError(t, err)

	buf := []byte{0xaa, 0xbb}
	decoded, err := f.DecodeValue(buf, 2, 0)
	require.NoError(t, err)

	buf[0] = 0x00
	assert.Equal(t, byte(0xaa), decoded.([]byte)[0])
}

func TestOctetField_Validate_RejectsOverLength(t *testing.T) {
	f, err := NewOctetField(element.Context(1), WithMaxLength(2))
	require.NoError(t, err)

	err = f.Validate([]byte{1, 2, 3})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrLengthExceedsMax))
}

func TestOctetField_Render(t *testing.T) {
	f, err := NewOctetField(element.Context(1))
	require.NoError(t, err)
	assert.Equal(t, "01ff", f.Render([]byte{0x01, 0xff}))
}
