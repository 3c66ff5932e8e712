package schema

// lengthWidthFor returns the on-wire length-prefix width for a string field
// whose maximum payload length is maxLength: up to 255 octets uses a 1-byte
// length, up to 65535 a 2-byte length, up to 4294967295 a 4-byte length,
// otherwise 8 bytes.
func lengthWidthFor(maxLength int) int {
	switch {
	case maxLength <= 0xFF:
		return 1
	case maxLength <= 0xFFFF:
		return 2
	case maxLength <= 0xFFFFFFFF:
		return 4
	default:
		return 8
	}
}
