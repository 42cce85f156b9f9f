package geoip

import (
	"fmt"
	"geostrip/protowire"
)

// Entry is one GeoIP record from a GeoIPList: the country code parsed from
// the record's own first field, and the record's raw payload bytes. The
// payload is opaque and must be preserved byte-for-byte; CountryCode is only
// a decoded view into it.
type Entry struct {
	CountryCode string
	Payload     []byte
}

// ParseList scans a serialized GeoIPList (repeated GeoIP sub-messages under
// field 1, wire type 2) and returns its entries in input order.
//
// Anything other than a length-delimited field at the top level silently ends
// the scan. This mirrors the behavior of the data set producer rather than
// full protobuf support. A truncated varint, or a length prefix declaring
// more bytes than remain, is an error.
func ParseList(data []byte) (entries []Entry, err error) {
	pos := 0
	for pos < len(data) {
		var tag uint64
		tag, pos, err = protowire.DecodeVarint(data, pos)
		if err != nil {
			err = fmt.Errorf("error while reading tag: %v", err)
			return
		}

		fieldNumber, wireType := protowire.SplitTag(tag)
		if wireType != protowire.WireTypeLengthDelimited {
			break
		}

		var length uint64
		length, pos, err = protowire.DecodeVarint(data, pos)
		if err != nil {
			err = fmt.Errorf("error while reading length prefix: %v", err)
			return
		}

		end := pos + int(length)
		if end < pos || end > len(data) {
			err = fmt.Errorf("entry at offset %v declares %v bytes but only %v remain", pos, length, len(data)-pos)
			return
		}

		payload := data[pos:end]
		pos = end

		if fieldNumber == 1 {
			entries = append(entries, Entry{CountryCode: parseCountryCode(payload), Payload: payload})
		}
	}

	return
}

// parseCountryCode extracts the country code (field 1, a UTF-8 string) from a
// single GeoIP record payload. Other length-delimited fields are skipped by
// their declared length, varint fields are decoded and discarded, and any
// other wire type ends the scan. A record with no field-1 string yields the
// empty string; such a record never matches an allow-list and gets dropped.
func parseCountryCode(payload []byte) string {
	pos := 0
	for pos < len(payload) {
		tag, newPos, err := protowire.DecodeVarint(payload, pos)
		if err != nil {
			return ""
		}
		pos = newPos

		fieldNumber, wireType := protowire.SplitTag(tag)
		switch wireType {
		case protowire.WireTypeLengthDelimited:
			length, newPos, err := protowire.DecodeVarint(payload, pos)
			if err != nil {
				return ""
			}
			pos = newPos

			end := pos + int(length)
			if end < pos || end > len(payload) {
				return ""
			}

			if fieldNumber == 1 {
				return string(payload[pos:end])
			}

			pos = end
		case protowire.WireTypeVarint:
			_, newPos, err := protowire.DecodeVarint(payload, pos)
			if err != nil {
				return ""
			}
			pos = newPos
		default:
			return ""
		}
	}

	return ""
}
