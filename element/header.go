package element

import (
	"encoding/binary"
	"fmt"

	"github.com/go-chip/tlv/errs"
)

// Header is the decoded control octet and tag of a single TLV element.
// HeaderEnd is the offset of the first byte after the tag, where a
// length prefix (for strings) or the value payload begins.
type Header struct {
	Control   TagControl
	Kind      Kind
	Tag       Tag
	HeaderEnd int
}

// DecodeError reports a failure while decoding or validating an element at a
// known offset. It wraps one of the sentinel errors in package errs.
type DecodeError struct {
	Kind   Kind
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("tlv: %v at offset %d (kind %s)", e.Err, e.Offset, e.Kind)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func newDecodeError(kind Kind, offset int, err error) *DecodeError {
	return &DecodeError{Kind: kind, Offset: offset, Err: err}
}

// DecodeHeader decodes the control octet and tag of the element starting at
// offset in buf. The returned header's HeaderEnd is the offset of the first
// byte past the tag.
func DecodeHeader(buf []byte, offset int) (Header, error) {
	if offset < 0 || offset >= len(buf) {
		return Header{}, newDecodeError(0, offset, errs.ErrTruncatedBuffer)
	}

	control := buf[offset]
	tagControl := TagControl((control >> 5) & 0b111)
	kind := Kind(control & 0b11111)
	headerWidth := tagControl.HeaderWidth()

	if !tagControl.Supported() {
		return Header{}, newDecodeError(kind, offset, errs.ErrUnsupportedTag)
	}

	if offset+1+headerWidth > len(buf) {
		return Header{}, newDecodeError(kind, offset, errs.ErrTruncatedBuffer)
	}

	tagBytes := buf[offset+1 : offset+1+headerWidth]

	var tag Tag
	switch tagControl {
	case TagControlAnonymous:
		tag = Anonymous()
	case TagControlContextSpecific:
		tag = Context(tagBytes[0])
	case TagControlFullyQualified16:
		vendor := binary.LittleEndian.Uint16(tagBytes[0:2])
		profile := binary.LittleEndian.Uint16(tagBytes[2:4])
		number := binary.LittleEndian.Uint16(tagBytes[4:6])
		tag = FullyQualified16(vendor, profile, number)
	case TagControlFullyQualified32:
		vendor := binary.LittleEndian.Uint16(tagBytes[0:2])
		profile := binary.LittleEndian.Uint16(tagBytes[2:4])
		number := binary.LittleEndian.Uint32(tagBytes[4:8])
		tag = FullyQualified32(vendor, profile, number)
	}

	return Header{
		Control:   tagControl,
		Kind:      kind,
		Tag:       tag,
		HeaderEnd: offset + 1 + headerWidth,
	}, nil
}

// ValueSpan determines the location and extent of the value payload for the
// element whose header h was decoded starting at the control octet at
// offset. It returns the offset of the first value byte, the value's
// byte-length, and the offset of the element immediately following this one.
//
// For Bool and Null, the value is carried in the control octet itself and
// valueLength is 0. For container kinds (struct/array/list), valueLength
// excludes the trailing end-of-container byte, which is instead reflected in
// nextOffset.
func ValueSpan(buf []byte, offset int, h Header) (valueOffset, valueLength, nextOffset int, err error) {
	switch {
	case h.Kind.IsSignedInt() || h.Kind.IsUnsignedInt():
		width := h.Kind.IntWidth()
		if h.HeaderEnd+width > len(buf) {
			return 0, 0, 0, newDecodeError(h.Kind, offset, errs.ErrTruncatedBuffer)
		}
		return h.HeaderEnd, width, h.HeaderEnd + width, nil

	case h.Kind.IsBool():
		return offset, 0, h.HeaderEnd, nil

	case h.Kind.IsFloat():
		width := h.Kind.FloatWidth()
		if h.HeaderEnd+width > len(buf) {
			return 0, 0, 0, newDecodeError(h.Kind, offset, errs.ErrTruncatedBuffer)
		}
		return h.HeaderEnd, width, h.HeaderEnd + width, nil

	case h.Kind.IsUTF8String() || h.Kind.IsOctetString():
		lengthWidth := h.Kind.LengthWidth()
		if h.HeaderEnd+lengthWidth > len(buf) {
			return 0, 0, 0, newDecodeError(h.Kind, offset, errs.ErrTruncatedBuffer)
		}
		length := int(readUintLE(buf[h.HeaderEnd:h.HeaderEnd+lengthWidth], lengthWidth))
		valueOffset := h.HeaderEnd + lengthWidth
		if valueOffset+length > len(buf) {
			return 0, 0, 0, newDecodeError(h.Kind, offset, errs.ErrTruncatedBuffer)
		}
		return valueOffset, length, valueOffset + length, nil

	case h.Kind == KindNull:
		return offset, 0, h.HeaderEnd, nil

	case h.Kind.IsContainerOpener():
		eocIndex, err := FindContainerEnd(buf, h.HeaderEnd)
		if err != nil {
			return 0, 0, 0, err
		}
		return h.HeaderEnd, eocIndex - h.HeaderEnd, eocIndex + 1, nil

	case h.Kind == KindEndOfContainer:
		return offset, 0, h.HeaderEnd, nil

	default:
		return 0, 0, 0, newDecodeError(h.Kind, offset, errs.ErrUnsupportedTag)
	}
}

// FindContainerEnd locates the offset of the end-of-container byte matching
// the container whose payload begins at payloadStart. Unlike a naive
// byte-by-byte search for 0x18, it parses each element header during the
// scan, so a 0x18 byte inside a string payload can never be mistaken for an
// end-of-container marker.
func FindContainerEnd(buf []byte, payloadStart int) (eocIndex int, err error) {
	cursor := payloadStart
	depth := 0

	for cursor < len(buf) {
		h, err := DecodeHeader(buf, cursor)
		if err != nil {
			return 0, err
		}

		if h.Kind == KindEndOfContainer {
			if depth == 0 {
				return cursor, nil
			}
			depth--
			cursor = h.HeaderEnd
			continue
		}

		if h.Kind.IsContainerOpener() {
			depth++
			cursor = h.HeaderEnd
			continue
		}

		_, _, next, err := ValueSpan(buf, cursor, h)
		if err != nil {
			return 0, err
		}
		cursor = next
	}

	return 0, newDecodeError(KindEndOfContainer, payloadStart, errs.ErrTruncatedContainer)
}

// ReadUintLE decodes a little-endian unsigned integer from b, whose length
// must be 1, 2, 4, or 8.
func ReadUintLE(b []byte) uint64 {
	return readUintLE(b, len(b))
}

// readUintLE decodes a little-endian unsigned integer of the given byte
// width (1, 2, 4, or 8).
func readUintLE(b []byte, width int) uint64 {
	switch width {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(binary.LittleEndian.Uint16(b))
	case 4:
		return uint64(binary.LittleEndian.Uint32(b))
	case 8:
		return binary.LittleEndian.Uint64(b)
	default:
		return 0
	}
}
