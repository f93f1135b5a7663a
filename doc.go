// Package rex2 decodes Propellerhead REX2 sliced-loop files.
//
// It parses the IFF-style chunk tree ("CAT " containers holding GLOB, HEAD,
// SINF, SLCE and SDAT chunks) and decodes the DWOP (Delta Width Optimized
// Predictor) entropy-coded audio payload into 16-bit PCM, mono or
// interleaved stereo. The result is a set of slice descriptors plus the
// fully decoded sample buffer.
//
// The package does no file I/O and keeps no package-level mutable state:
// Parse takes a byte slice and returns an independent *RexFile. Multiple
// files may be parsed concurrently as long as each call uses its own
// buffer.
//
// DecodeMono and DecodeStereo expose the DWOP codec directly for callers
// that already have a raw bitstream (e.g. tests, or a container other than
// REX2's).
package rex2
