package schema

import "github.com/go-chip/tlv/element"

// unknownValue is the sentinel returned by AnyField's DecodeValue.
type unknownValue struct{}

// Unknown is the sentinel value an AnyField decodes to, regardless of the
// wire kind it finds. It renders as "???".
var Unknown = unknownValue{}

// AnyField is a placeholder field used during schema development: it always
// writes NULL and always decodes to Unknown. It is always nullable and
// never optional, since its entire purpose is to reserve a tag without
// committing to a kind.
type AnyField struct {
	tag element.Tag
}

// NewAnyField creates a placeholder field for the given tag.
func NewAnyField(tag element.Tag) *AnyField {
	return &AnyField{tag: tag}
}

func (f *AnyField) Tag() element.Tag { return f.tag }
func (f *AnyField) Optional() bool   { return false }
func (f *AnyField) Nullable() bool   { return true }

func (f *AnyField) MaxLength() int {
	return element.HeaderWidth(f.tag)
}

func (f *AnyField) ElementKind(_ any) (element.Kind, error) {
	return element.KindNull, nil
}

func (f *AnyField) DecodeValue(_ []byte, _, _ int) (any, error) {
	return Unknown, nil
}

func (f *AnyField) EncodeValue(_ any, _ []byte, offset int) (int, error) {
	return offset, nil
}

func (f *AnyField) Validate(_ any) error {
	return nil
}

func (f *AnyField) Render(_ any) string {
	return "???"
}
