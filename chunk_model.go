package rex2

// Slice is a contiguous segment of decoded audio, addressed by frame
// offset and frame length. Lengths may be clamped during post-processing
// so that offset+length never exceeds the decoded PCM frame count.
type Slice struct {
	Offset int
	Length int
}

// SkippedChunk records an unrecognized chunk tag encountered during a
// walk, for callers that want diagnostic visibility into what a file
// contained beyond the recognized GLOB/HEAD/SINF/SLCE/SDAT set. Unknown
// tags are never an error; they are simply not interpreted.
type SkippedChunk struct {
	Tag    [4]byte
	Size   uint32
	Offset int
}

// Logger receives optional diagnostic notifications during a parse. It is
// never required: a nil Logger (the default) means Parse stays silent,
// matching the library's pure-function decode path. This takes the place
// of the original C implementation's file-scope host log pointer — here
// it is an explicit value threaded through ParseOptions instead of global
// state.
type Logger interface {
	Logf(format string, args ...any)
}

// ParseOptions tunes the safety limits and diagnostics of Parse. The zero
// value is usable and applies the documented defaults.
type ParseOptions struct {
	// MaxSlices caps the number of SLCE entries kept; entries beyond the
	// cap are ignored. Defaults to 256.
	MaxSlices int
	// MaxFrames is the hard ceiling on decoded/allocated PCM frames,
	// regardless of what SINF or the SDAT payload size suggest. Defaults
	// to 10,000,000.
	MaxFrames int
	// Logger, if non-nil, receives diagnostics about skipped/truncated
	// chunks encountered while walking the container.
	Logger Logger
}

const (
	defaultMaxSlices = 256
	defaultMaxFrames = 10_000_000
)

func (o ParseOptions) withDefaults() ParseOptions {
	if o.MaxSlices <= 0 {
		o.MaxSlices = defaultMaxSlices
	}

	if o.MaxFrames <= 0 {
		o.MaxFrames = defaultMaxFrames
	}

	return o
}

func (o ParseOptions) logf(format string, args ...any) {
	if o.Logger == nil {
		return
	}

	o.Logger.Logf(format, args...)
}
