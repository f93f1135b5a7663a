package rex2

import (
	"time"

	"github.com/go-audio/audio"
)

// SliceDuration returns slice i's length as a time.Duration, or 0 if the
// index is out of range or the sample rate is unknown.
func (r *RexFile) SliceDuration(i int) time.Duration {
	if r == nil || i < 0 || i >= len(r.Slices) {
		return 0
	}

	return framesToDuration(r.Slices[i].Length, r.SampleRate)
}

// SliceCount returns the number of slices in the slice table.
func (r *RexFile) SliceCount() int {
	if r == nil {
		return 0
	}

	return len(r.Slices)
}

// SlicePCM returns the interleaved PCM samples belonging to slice i, a
// sub-slice view over the RexFile's owned PCM buffer. The returned slice
// aliases r.PCM; callers that need to retain it past a call to Release
// should copy it.
func (r *RexFile) SlicePCM(i int) []int16 {
	if r == nil || i < 0 || i >= len(r.Slices) {
		return nil
	}

	s := r.Slices[i]
	start := s.Offset * r.PCMChannels
	end := (s.Offset + s.Length) * r.PCMChannels

	if start < 0 || end > len(r.PCM) || start > end {
		return nil
	}

	return r.PCM[start:end]
}

// audioFormat builds the go-audio format descriptor shared by both buffer
// export methods.
func (r *RexFile) audioFormat() *audio.Format {
	return &audio.Format{
		NumChannels: r.PCMChannels,
		SampleRate:  r.SampleRate,
	}
}

// ToIntBuffer exports the full decoded PCM buffer as a go-audio IntBuffer,
// 16 bits per sample, interleaved. Returns nil if no audio has been
// decoded.
func (r *RexFile) ToIntBuffer() *audio.IntBuffer {
	if r == nil || len(r.PCM) == 0 {
		return nil
	}

	data := make([]int, len(r.PCM))
	for i, s := range r.PCM {
		data[i] = int(s)
	}

	return &audio.IntBuffer{
		Format:         r.audioFormat(),
		Data:           data,
		SourceBitDepth: 16,
	}
}

// ToFloat32Buffer exports the full decoded PCM buffer as a go-audio
// Float32Buffer, samples normalized to [-1, 1]. Returns nil if no audio
// has been decoded.
func (r *RexFile) ToFloat32Buffer() *audio.Float32Buffer {
	if r == nil || len(r.PCM) == 0 {
		return nil
	}

	data := make([]float32, len(r.PCM))
	for i, s := range r.PCM {
		data[i] = normalizePCMInt(int(s))
	}

	return &audio.Float32Buffer{
		Format: r.audioFormat(),
		Data:   data,
	}
}
