package schema

import "github.com/go-chip/tlv/internal/options"

// config holds the optional settings shared by every scalar field
// constructor. Not every field type reads every setting (a BoolField, for
// example, never consults minVal/maxVal).
type config struct {
	optional  bool
	nullable  bool
	hasRange  bool
	minVal    int64
	maxVal    int64
	maxLength int
}

// Option configures a field constructor. It is a type alias for the
// generic internal/options.Option interface, specialized for field
// configuration.
type Option = options.Option[*config]

func applyOptions(c *config, opts ...Option) error {
	return options.Apply(c, opts...)
}

// Optional marks a field as elidable: it may be absent from the encoded
// record without being an error.
func Optional() Option {
	return options.NoError(func(c *config) {
		c.optional = true
	})
}

// Nullable marks a field as allowed to hold an explicit NULL element.
func Nullable() Option {
	return options.NoError(func(c *config) {
		c.nullable = true
	})
}

// WithRange restricts an integer field's accepted values to [min, max], in
// addition to the range implied by its declared (signed, octets) pair.
func WithRange(min, max int64) Option {
	return options.New(func(c *config) error {
		if min > max {
			return errRangeInverted
		}
		c.hasRange = true
		c.minVal = min
		c.maxVal = max

		return nil
	})
}

// WithMaxLength sets the maximum payload length, in octets, accepted by a
// string field. The on-wire length-prefix width is derived from this value:
// up to 255 octets uses a 1-byte length, up to 65535 a 2-byte length, and so
// on.
func WithMaxLength(n int) Option {
	return options.New(func(c *config) error {
		if n < 0 {
			return errNegativeMaxLength
		}
		c.maxLength = n

		return nil
	})
}
