package schema

import (
	"errors"
	"testing"

	"github.com/go-chip/tlv/element"
	"github.com/go-chip/tlv/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFloatField_RejectsInvalidWidth(t *testing.T) {
	_, err := NewFloatField(element.Context(1), 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInternalInvariant))
}

func TestFloatField_EncodeDecode_RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		octets int
		value  float64
	}{
		{"float32", 4, 3.5},
		{"float64", 8, -12345.6789},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFloatField(element.Context(1), tt.octets)
			require.NoError(t, err)

			buf := make([]byte, tt.octets)
			n, err := f.EncodeValue(tt.value, buf, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.octets, n)

			decoded, err := f.DecodeValue(buf, tt.octets, 0)
			require.NoError(t, err)

			if tt.octets == 4 {
				assert.InDelta(t, tt.value, decoded.(float64), 1e-6)
			} else {
				assert.Equal(t, tt.value, decoded)
			}
		})
	}
}

func TestFloatField_ElementKind(t *testing.T) {
	f32, err := NewFloatField(element.Context(1), 4)
	require.NoError(t, err)
	kind, err := f32.ElementKind(float32(0))
	require.NoError(t, err)
	assert.Equal(t, element.KindFloat4, kind)

	f64, err := NewFloatField(element.Context(1), 8)
	require.NoError(t, err)
	kind, err = f64.ElementKind(float64(0))
	require.NoError(t, err)
	assert.Equal(t, element.KindFloat8, kind)
}

func TestFloatField_Validate_RejectsNonFloat(t *testing.T) {
	f, err := NewFloatField(element.Context(1), 4)
	require.NoError(t, err)

	err = f.Validate(int64(1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInternalInvariant))
}

func TestFloatField_Render(t *testing.T) {
	f, err := NewFloatField(element.Context(1), 8)
	require.NoError(t, err)
	assert.Equal(t, "3.5", f.Render(float64(3.5)))
}
