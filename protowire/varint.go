package protowire

import "fmt"

// Wire types that appear in the GeoIP data file format.
const (
	WireTypeVarint          = 0
	WireTypeLengthDelimited = 2
)

// EntryTag is the tag byte for field number 1 with wire type 2, i.e. (1<<3)|2.
// Every entry in a GeoIPList is wrapped with this tag.
const EntryTag = 0x0a

// DecodeVarint reads a base-128 little-endian varint from buf starting at pos.
// It returns the decoded value and the position immediately after the last
// consumed byte. A varint that runs off the end of the buffer is an error.
func DecodeVarint(buf []byte, pos int) (value uint64, newPos int, err error) {
	if pos < 0 || pos >= len(buf) {
		err = fmt.Errorf("varint start position %v out of range for buffer of %v bytes", pos, len(buf))
		return
	}

	var shift uint
	for newPos = pos; newPos < len(buf); newPos++ {
		b := buf[newPos]
		value |= uint64(b&0x7f) << shift

		if b&0x80 == 0 {
			newPos++
			return
		}

		shift += 7
	}

	err = fmt.Errorf("truncated varint at offset %v", pos)
	return
}

// EncodeVarint returns the minimal-length base-128 encoding of value.
func EncodeVarint(value uint64) []byte {
	buf := make([]byte, 0, 10)
	for value >= 0x80 {
		buf = append(buf, byte(value)|0x80)
		value >>= 7
	}

	return append(buf, byte(value))
}

// SplitTag splits a tag varint into its field number and wire type.
func SplitTag(tag uint64) (fieldNumber uint64, wireType uint64) {
	return tag >> 3, tag & 0x7
}
