package rex2

import "fmt"

// decodeSDATChunk decodes the SDAT chunk payload as a DWOP bitstream. It is
// decoded at most once per parse; the caller (the walker) is responsible
// for the "first SDAT wins" latch.
//
// The channel count used is whatever SINF has accumulated by the time SDAT
// is encountered (§4.6 of the spec this was built from): a SINF chunk
// appearing after SDAT in file order has no effect on this decode.
func decodeSDATChunk(rex *RexFile, payload []byte, opts ParseOptions) error {
	if len(payload) < 1 {
		return fmt.Errorf("SDAT chunk is empty: %w", ErrNoAudio)
	}

	declared := rex.TotalFrameLength > 0

	maxFrames := rex.TotalFrameLength
	if !declared {
		maxFrames = len(payload)*2 + 1024
	}

	if maxFrames > opts.MaxFrames {
		return fmt.Errorf("frame count %d exceeds ceiling %d: %w", maxFrames, opts.MaxFrames, ErrOversize)
	}

	isStereo := rex.Channels == 2

	channels := 1
	if isStereo {
		channels = 2
	}

	pcm := make([]int16, maxFrames*channels)

	var frames int
	if isStereo {
		frames = DecodeStereo(payload, pcm)
	} else {
		frames = DecodeMono(payload, pcm)
	}

	if frames <= 0 {
		return fmt.Errorf("DWOP decode produced no samples: %w", ErrNoAudio)
	}

	// Only a shortfall against a SINF-declared frame count is corrupt data;
	// the derived estimate is an allocation upper bound, and the decoder is
	// expected to run out of real bitstream before reaching it.
	if declared && frames < maxFrames {
		return fmt.Errorf("decoded %d of %d declared frames: %w", frames, maxFrames, ErrCorrupt)
	}

	rex.PCM = pcm[:frames*channels]
	rex.PCMFrames = frames
	rex.PCMChannels = channels

	return nil
}
