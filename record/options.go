package record

import "github.com/go-chip/tlv/internal/options"

// config holds the optional settings shared by the struct, array, and list
// field constructors. Not every field type reads every setting (StructField
// never consults maxLength or elementIsList).
type config struct {
	optional      bool
	nullable      bool
	maxLength     int
	elementIsList bool
}

// Option configures a container field constructor.
type Option = options.Option[*config]

func applyOptions(c *config, opts ...Option) error {
	return options.Apply(c, opts...)
}

// Optional marks a container field as elidable from the encoded record.
func Optional() Option {
	return options.NoError(func(c *config) {
		c.optional = true
	})
}

// Nullable marks a container field as allowed to hold an explicit NULL
// element instead of a container.
func Nullable() Option {
	return options.NoError(func(c *config) {
		c.nullable = true
	})
}

// WithMaxLength sets the maximum payload length, in octets, accepted by an
// array or list field. Defaults to 1280, the Matter MRP array ceiling; an
// array field caps any larger value at 1280.
func WithMaxLength(n int) Option {
	return options.New(func(c *config) error {
		if n < 0 {
			return errNegativeMaxLength
		}
		c.maxLength = n

		return nil
	})
}

// ArrayOfLists declares that an array field's entries are each wrapped as a
// LIST element rather than the default STRUCTURE wrapping.
func ArrayOfLists() Option {
	return options.NoError(func(c *config) {
		c.elementIsList = true
	})
}
