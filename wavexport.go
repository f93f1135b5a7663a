package rex2

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

const (
	wavFmtChunkSize   = 16
	wavFormatTagPCM   = 1
	wavBitsPerSample  = 16
	wavBytesPerSample = wavBitsPerSample / 8
)

// WriteWAV writes the full decoded PCM buffer as a canonical 16-bit PCM
// WAV file. It fails if no audio has been decoded.
func (r *RexFile) WriteWAV(w io.Writer) error {
	if r == nil {
		return fmt.Errorf("WriteWAV: %w", errNilRexFile)
	}

	if len(r.PCM) == 0 {
		return fmt.Errorf("no decoded PCM to export: %w", ErrNoAudio)
	}

	return writeWAV(w, r.PCM, r.SampleRate, r.PCMChannels)
}

// WriteSliceWAV writes slice i's PCM as a standalone WAV file, sharing the
// parent RexFile's sample rate and channel count.
func (r *RexFile) WriteSliceWAV(w io.Writer, i int) error {
	if r == nil {
		return fmt.Errorf("WriteSliceWAV: %w", errNilRexFile)
	}

	pcm := r.SlicePCM(i)
	if pcm == nil {
		return fmt.Errorf("slice %d out of range or empty: %w", i, ErrNoAudio)
	}

	return writeWAV(w, pcm, r.SampleRate, r.PCMChannels)
}

// writeWAV emits a minimal RIFF/WAVE container: fmt chunk followed by one
// data chunk holding pcm verbatim, little-endian, 16 bits per sample.
// Modeled on the teacher's Encoder.writeHeader/writeFmtChunk sequence, but
// written in a single pass since the whole buffer is already in memory.
func writeWAV(w io.Writer, pcm []int16, sampleRate, numChannels int) error {
	if numChannels <= 0 {
		numChannels = 1
	}

	dataSize := len(pcm) * wavBytesPerSample
	blockAlign := numChannels * wavBytesPerSample
	byteRate := sampleRate * blockAlign

	fmtChunkTotal := 8 + wavFmtChunkSize
	dataChunkTotal := 8 + dataSize
	riffSize := 4 + fmtChunkTotal + dataChunkTotal

	writers := []func() error{
		func() error { return binary.Write(w, binary.LittleEndian, riff.RiffID) },
		func() error { return binary.Write(w, binary.LittleEndian, uint32(riffSize)) },
		func() error { return binary.Write(w, binary.LittleEndian, riff.WavFormatID) },
		func() error { return binary.Write(w, binary.LittleEndian, riff.FmtID) },
		func() error { return binary.Write(w, binary.LittleEndian, uint32(wavFmtChunkSize)) },
		func() error { return binary.Write(w, binary.LittleEndian, uint16(wavFormatTagPCM)) },
		func() error { return binary.Write(w, binary.LittleEndian, uint16(numChannels)) },
		func() error { return binary.Write(w, binary.LittleEndian, uint32(sampleRate)) },
		func() error { return binary.Write(w, binary.LittleEndian, uint32(byteRate)) },
		func() error { return binary.Write(w, binary.LittleEndian, uint16(blockAlign)) },
		func() error { return binary.Write(w, binary.LittleEndian, uint16(wavBitsPerSample)) },
		func() error { return binary.Write(w, binary.LittleEndian, riff.DataFormatID) },
		func() error { return binary.Write(w, binary.LittleEndian, uint32(dataSize)) },
		func() error { return binary.Write(w, binary.LittleEndian, pcm) },
	}

	for _, step := range writers {
		if err := step(); err != nil {
			return fmt.Errorf("failed writing wav: %w", err)
		}
	}

	return nil
}
