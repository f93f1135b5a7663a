package rex2

import (
	"fmt"
)

const minViableHeaderSize = 12

// RexFile holds everything extracted from a parsed REX2 container: tempo
// and time-signature metadata, the slice table, and the owned decoded PCM
// buffer. A RexFile returned by Parse is independent of the input byte
// slice that produced it — Parse never retains the caller's buffer.
type RexFile struct {
	SampleRate       int
	Channels         int
	BytesPerSample   int
	TempoBPM         float64
	Bars             int
	Beats            int
	TimeSigNum       int
	TimeSigDen       int
	TotalFrameLength int

	// Slices is the parsed slice table. After Parse returns, every entry
	// satisfies Offset+Length <= PCMFrames.
	Slices []Slice

	// PCM is the decoded audio, interleaved L,R,L,R,... for stereo or one
	// sample per frame for mono. It is owned by this RexFile.
	PCM []int16
	// PCMFrames is the per-channel frame count (len(PCM) / PCMChannels).
	PCMFrames int
	// PCMChannels is 1 or 2, mirroring Channels at decode time.
	PCMChannels int

	// SkippedChunks records every unrecognized chunk tag encountered while
	// walking the container, in file order.
	SkippedChunks []SkippedChunk

	// Err holds a human-readable description of the last fatal error. Parse
	// sets it on its working value when it fails, but returns a nil
	// *RexFile alongside the error, so a RexFile obtained from Parse always
	// has a nil Err; the returned error carries the same message.
	Err error
}

// Parse parses a REX2 container from data and decodes its audio. data is
// only borrowed for the duration of the call; everything the returned
// RexFile needs is copied or freshly allocated.
func Parse(data []byte) (*RexFile, error) {
	return ParseWithOptions(data, ParseOptions{})
}

// ParseWithOptions is Parse with explicit safety-limit and diagnostic
// overrides. See ParseOptions for defaults.
func ParseWithOptions(data []byte, opts ParseOptions) (*RexFile, error) {
	opts = opts.withDefaults()

	rex := &RexFile{
		SampleRate: 44100,
		Channels:   1,
	}

	if len(data) < minViableHeaderSize {
		err := fmt.Errorf("file too small (%d bytes): %w", len(data), ErrTooSmall)
		rex.Err = err

		return nil, err
	}

	if [4]byte(data[0:4]) != tagCAT {
		err := fmt.Errorf("no CAT header: %w", ErrNotIFF)
		rex.Err = err

		return nil, err
	}

	st := &walkState{rex: rex, opts: opts}
	walkChunks(data, len(data), 0, st)

	if !st.sdatDecoded {
		err := st.sdatErr

		switch {
		case err != nil:
		case st.truncated:
			err = fmt.Errorf("chunk tree truncated before audio was found: %w", ErrTruncatedChunk)
		default:
			err = fmt.Errorf("no SDAT chunk found: %w", ErrNoAudio)
		}

		rex.Err = err

		return nil, err
	}

	if len(rex.Slices) == 0 {
		rex.Slices = []Slice{{Offset: 0, Length: rex.PCMFrames}}
	}

	clampSliceLengths(rex)

	return rex, nil
}

// clampSliceLengths enforces offset+length <= PCMFrames for every slice,
// without reordering the slice table.
func clampSliceLengths(rex *RexFile) {
	for i := range rex.Slices {
		s := &rex.Slices[i]

		if s.Offset+s.Length <= rex.PCMFrames {
			continue
		}

		if s.Offset >= rex.PCMFrames {
			s.Length = 0
		} else {
			s.Length = rex.PCMFrames - s.Offset
		}
	}
}

// Release drops the owned PCM buffer and slice table eagerly, for callers
// that reparse many files and want deterministic memory release instead of
// waiting on the garbage collector. It clears PCM, PCMFrames, PCMChannels,
// Slices and SkippedChunks; the header metadata fields (tempo, sample
// rate, time signature, ...) and Err are untouched.
func (r *RexFile) Release() {
	if r == nil {
		return
	}

	r.PCM = nil
	r.PCMFrames = 0
	r.PCMChannels = 0
	r.Slices = nil
	r.SkippedChunks = nil
}

// Duration returns the decoded audio's length as frames divided by sample
// rate, in seconds. It returns 0 if the sample rate is unknown.
func (r *RexFile) Duration() float64 {
	if r == nil || r.SampleRate <= 0 {
		return 0
	}

	return float64(r.PCMFrames) / float64(r.SampleRate)
}
