package geoip

import (
	"bytes"
	"geostrip/protowire"
)

// EncodeList serializes entries back into GeoIPList wire format: for each
// entry the field-1/wire-type-2 tag, the varint-encoded payload length, then
// the payload verbatim. The result re-parses to exactly the given entries.
func EncodeList(entries []Entry) []byte {
	var buf bytes.Buffer
	for _, entry := range entries {
		buf.WriteByte(protowire.EntryTag)
		buf.Write(protowire.EncodeVarint(uint64(len(entry.Payload))))
		buf.Write(entry.Payload)
	}

	return buf.Bytes()
}
