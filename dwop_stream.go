package rex2

// DecodeMono decodes up to len(out) samples from a mono DWOP bitstream,
// using one channel state and one bit reader. It returns the number of
// samples actually produced; a short count (below what the caller
// expected) signals that the unary safety cap tripped or the range
// register degenerated to zero partway through.
func DecodeMono(bitstream []byte, out []int16) int {
	br := newBitReader(bitstream)
	st := newDWOPState()

	for n := range out {
		sample, ok := st.decodeSample(br)
		if !ok {
			return n
		}

		out[n] = sample
	}

	return len(out)
}

// DecodeStereo decodes up to len(out)/2 interleaved stereo frames from a
// DWOP bitstream. Two independent channel states share one bit reader: the
// left channel's state decodes the frame's left sample, the right
// channel's state decodes a delta, and the reconstructed right sample is
// left+delta. out is filled L0,R0,L1,R1,... It returns the number of
// complete frames produced.
func DecodeStereo(bitstream []byte, out []int16) int {
	br := newBitReader(bitstream)
	left := newDWOPState()
	right := newDWOPState()

	frames := len(out) / 2

	for n := 0; n < frames; n++ {
		l, ok := left.decodeSample(br)
		if !ok {
			return n
		}

		delta, ok := right.decodeSample(br)
		if !ok {
			return n
		}

		out[n*2] = l
		out[n*2+1] = l + delta
	}

	return frames
}
