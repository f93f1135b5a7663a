package rex2

import "time"

// framesToDuration converts a frame count at sampleRate into a
// time.Duration, for human-readable display (see cmd/rexinfo).
func framesToDuration(frames, sampleRate int) time.Duration {
	if sampleRate <= 0 {
		return 0
	}

	return time.Duration(frames) * time.Second / time.Duration(sampleRate)
}
