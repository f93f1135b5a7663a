package rex2

import (
	"encoding/binary"
	"fmt"
)

// buildChunk wraps payload in an IFF chunk header (tag + big-endian length)
// plus the trailing pad byte required for odd-length payloads. tag must be
// exactly 4 bytes.
func buildChunk(tag string, payload []byte) []byte {
	if len(tag) != 4 {
		panic("buildChunk: tag must be 4 bytes")
	}

	buf := make([]byte, 0, 8+len(payload)+1)
	buf = append(buf, tag...)

	var lenField [4]byte
	binary.BigEndian.PutUint32(lenField[:], uint32(len(payload)))
	buf = append(buf, lenField[:]...)
	buf = append(buf, payload...)

	if len(payload)%2 == 1 {
		buf = append(buf, 0)
	}

	return buf
}

// buildCAT assembles a top-level REX2 file: a single "CAT " chunk whose
// payload is a 4-byte form type followed by the concatenated children.
func buildCAT(formType string, children ...[]byte) []byte {
	inner := make([]byte, 0, len(formType)+64)
	inner = append(inner, formType...)

	for _, c := range children {
		inner = append(inner, c...)
	}

	return buildChunk("CAT ", inner)
}

// globPayload builds a 20-byte GLOB payload: bars/beats/time signature and
// tempo in milli-BPM. Bytes 0:4 are left zero (undocumented in the source
// this was built from).
func globPayload(bars uint16, beats, sigNum, sigDen byte, tempoMilliBPM uint32) []byte {
	p := make([]byte, 20)
	binary.BigEndian.PutUint16(p[4:6], bars)
	p[6] = beats
	p[7] = sigNum
	p[8] = sigDen
	binary.BigEndian.PutUint32(p[16:20], tempoMilliBPM)

	return p
}

// headPayload builds a 6-byte HEAD payload carrying bytesPerSample at
// offset 5.
func headPayload(bytesPerSample byte) []byte {
	p := make([]byte, 6)
	p[5] = bytesPerSample

	return p
}

// sinfPayload builds a 10-byte SINF payload: channel count, sample rate,
// total frame length.
func sinfPayload(channels byte, sampleRate uint16, totalFrameLength uint32) []byte {
	p := make([]byte, 10)
	p[0] = channels
	binary.BigEndian.PutUint16(p[4:6], sampleRate)
	binary.BigEndian.PutUint32(p[6:10], totalFrameLength)

	return p
}

// slcePayload builds an 8-byte SLCE payload: frame offset and frame length.
func slcePayload(offset, length uint32) []byte {
	p := make([]byte, 8)
	binary.BigEndian.PutUint32(p[0:4], offset)
	binary.BigEndian.PutUint32(p[4:8], length)

	return p
}

// fillBytes returns n bytes all set to v, used to build DWOP payloads that
// are cheap to reason about (see dwop_test.go for the all-ones trace).
func fillBytes(n int, v byte) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = v
	}

	return buf
}

// testLogger records every Logf call for assertions.
type testLogger struct {
	lines []string
}

func (l *testLogger) Logf(format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}
