package rex2

import "encoding/binary"

// decodeGlobChunk reads the GLOB chunk: tempo, bars/beats, time signature.
// Layout (big-endian, offsets relative to the chunk payload):
//
//	[0:4]   unknown (not consumed; see open questions in DESIGN.md)
//	[4:6]   bars (u16)
//	[6]     beats (u8)
//	[7]     time signature numerator (u8)
//	[8]     time signature denominator (u8)
//	[16:20] tempo in milli-BPM (u32; divide by 1000 for BPM)
//
// Undersized payloads are left at their prior (default) values rather than
// erroring: GLOB is metadata, not required for a successful decode.
func decodeGlobChunk(rex *RexFile, payload []byte) {
	if len(payload) < 20 {
		return
	}

	rex.Bars = int(binary.BigEndian.Uint16(payload[4:6]))
	rex.Beats = int(payload[6])
	rex.TimeSigNum = int(payload[7])
	rex.TimeSigDen = int(payload[8])
	rex.TempoBPM = float64(binary.BigEndian.Uint32(payload[16:20])) / 1000.0
}
