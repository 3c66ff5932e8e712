package element

import "encoding/binary"

// EncodeHeader writes the control octet and tag header for (tag, kind) at
// offset in buf and returns the offset of the first byte past the tag
// (matching Header.HeaderEnd from DecodeHeader).
func EncodeHeader(buf []byte, offset int, tag Tag, kind Kind) int {
	control := tag.controlBits()
	buf[offset] = byte(control)<<5 | byte(kind)&0b11111
	offset++

	switch tag.kind {
	case TagAnonymous:
		// no tag bytes
	case TagContextSpecific:
		buf[offset] = tag.ctx
		offset++
	case TagFullyQualified:
		binary.LittleEndian.PutUint16(buf[offset:], tag.vendor)
		binary.LittleEndian.PutUint16(buf[offset+2:], tag.profile)
		if tag.wide {
			binary.LittleEndian.PutUint32(buf[offset+4:], tag.number)
			offset += 8
		} else {
			binary.LittleEndian.PutUint16(buf[offset+4:], uint16(tag.number))
			offset += 6
		}
	}

	return offset
}

// EncodeLength writes a length prefix of the width implied by kind at
// offset in buf and returns the offset past the length prefix.
func EncodeLength(buf []byte, offset int, kind Kind, length int) int {
	width := kind.LengthWidth()
	writeUintLE(buf[offset:offset+width], width, uint64(length))

	return offset + width
}

// WriteUintLE encodes v as a little-endian unsigned integer into b, whose
// length must be 1, 2, 4, or 8.
func WriteUintLE(b []byte, v uint64) {
	writeUintLE(b, len(b), v)
}

// writeUintLE encodes v as a little-endian unsigned integer of the given
// byte width (1, 2, 4, or 8) into b.
func writeUintLE(b []byte, width int, v uint64) {
	switch width {
	case 1:
		b[0] = byte(v)
	case 2:
		binary.LittleEndian.PutUint16(b, uint16(v))
	case 4:
		binary.LittleEndian.PutUint32(b, uint32(v))
	case 8:
		binary.LittleEndian.PutUint64(b, v)
	}
}

// HeaderWidth returns the number of bytes EncodeHeader will write for tag
// (the control octet plus the tag's header bytes).
func HeaderWidth(tag Tag) int {
	return 1 + tag.controlBits().HeaderWidth()
}

// EncodeEndOfContainer writes the end-of-container byte at offset and
// returns offset+1.
func EncodeEndOfContainer(buf []byte, offset int) int {
	buf[offset] = EndOfContainerByte
	return offset + 1
}
