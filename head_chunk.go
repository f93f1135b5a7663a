package rex2

// decodeHeadChunk reads the HEAD chunk: payload offset 5 is the
// bytes-per-sample indicator (u8; typically 2 for 16-bit audio).
func decodeHeadChunk(rex *RexFile, payload []byte) {
	if len(payload) < 6 {
		return
	}

	rex.BytesPerSample = int(payload[5])
}
