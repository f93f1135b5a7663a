package rex2

import "encoding/binary"

// decodeSlceChunk reads one SLCE chunk: a slice's sample offset and
// length. Layout (big-endian, offsets relative to the chunk payload):
//
//	[0:4] sample offset (u32)
//	[4:8] sample length (u32)
//
// Entries whose length is <= 1 are transient markers (sub-slice positions
// within a real slice, not independently playable) and are discarded
// rather than appended. The slice list is capped at opts.MaxSlices;
// entries past the cap are ignored.
func decodeSlceChunk(rex *RexFile, payload []byte, opts ParseOptions) {
	if len(payload) < 8 {
		return
	}

	if len(rex.Slices) >= opts.MaxSlices {
		return
	}

	offset := binary.BigEndian.Uint32(payload[0:4])
	length := binary.BigEndian.Uint32(payload[4:8])

	if length <= 1 {
		return
	}

	rex.Slices = append(rex.Slices, Slice{
		Offset: int(offset),
		Length: int(length),
	})
}
