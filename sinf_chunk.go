package rex2

import "encoding/binary"

// decodeSinfChunk reads the SINF chunk: channel count, sample rate, and
// total decoded frame length. Layout (big-endian, offsets relative to the
// chunk payload):
//
//	[0]    channel count (u8 in {1, 2}); any other value is ignored, the
//	       prior default is kept
//	[1:4]  unknown (not consumed; see open questions in DESIGN.md)
//	[4:6]  sample rate (u16); used only if non-zero
//	[6:10] total frame length (u32)
func decodeSinfChunk(rex *RexFile, payload []byte) {
	if len(payload) < 10 {
		return
	}

	if ch := payload[0]; ch == 1 || ch == 2 {
		rex.Channels = int(ch)
	}

	if sr := binary.BigEndian.Uint16(payload[4:6]); sr > 0 {
		rex.SampleRate = int(sr)
	}

	rex.TotalFrameLength = int(binary.BigEndian.Uint32(payload[6:10]))
}
