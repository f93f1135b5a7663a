package rex2

import "errors"

// Error kinds surfaced by Parse. All are fatal for the current call: none
// are retried and partial results are never returned alongside an error.
var (
	// ErrTooSmall is returned when the input is shorter than the minimum
	// viable header.
	ErrTooSmall = errors.New("rex2: input too small")
	// ErrNotIFF is returned when the top-level tag is not "CAT ".
	ErrNotIFF = errors.New("rex2: not an IFF/CAT file")
	// ErrTruncatedChunk marks a container whose declared chunk length ran
	// past its enclosing boundary. Traversal halts at that point but any
	// chunks parsed before it remain valid; this is only surfaced to the
	// caller as a hard failure when it prevented any audio from decoding.
	ErrTruncatedChunk = errors.New("rex2: truncated chunk")
	// ErrNoAudio is returned when no SDAT chunk was decoded, or it produced
	// zero samples.
	ErrNoAudio = errors.New("rex2: no audio data found")
	// ErrCorrupt is returned when the decoder falls short of a SINF-declared
	// frame count, which happens when the DWOP safety cap trips or the range
	// coder register degenerates to zero partway through. Without a declared
	// frame count a short decode is not an error.
	ErrCorrupt = errors.New("rex2: corrupt DWOP bitstream")
	// ErrOversize is returned when the declared or derived frame count
	// exceeds the hard ceiling.
	ErrOversize = errors.New("rex2: frame count exceeds ceiling")
	// ErrOutOfMemory names a failed PCM allocation. Parse does not currently
	// return it: Go allocation failure panics rather than erroring, and
	// oversized frame counts are rejected earlier with ErrOversize.
	ErrOutOfMemory = errors.New("rex2: PCM allocation failed")

	errNilRexFile = errors.New("rex2: nil RexFile")
)
