package rex2

import "encoding/binary"

var tagCAT = [4]byte{'C', 'A', 'T', ' '}

// chunkHandler dispatches a recognized, non-container chunk tag to its
// field extractor. Modeled on the teacher's chunk-registry dispatch table
// (one handler per tag, matched in sequence) but adapted to the walker's
// in-memory byte-slice traversal rather than a streaming io.Reader.
type chunkHandler struct {
	tag    [4]byte
	decode func(st *walkState, payload []byte)
}

var chunkHandlers = []chunkHandler{
	{tag: [4]byte{'G', 'L', 'O', 'B'}, decode: func(st *walkState, p []byte) { decodeGlobChunk(st.rex, p) }},
	{tag: [4]byte{'H', 'E', 'A', 'D'}, decode: func(st *walkState, p []byte) { decodeHeadChunk(st.rex, p) }},
	{tag: [4]byte{'S', 'I', 'N', 'F'}, decode: func(st *walkState, p []byte) { decodeSinfChunk(st.rex, p) }},
	{tag: [4]byte{'S', 'L', 'C', 'E'}, decode: func(st *walkState, p []byte) { decodeSlceChunk(st.rex, p, st.opts) }},
}

// walkState is the mutable context threaded through the recursive walk.
type walkState struct {
	rex         *RexFile
	opts        ParseOptions
	sdatDecoded bool
	sdatErr     error
	truncated   bool
}

// walkChunks recursively traverses the chunk tree within [offset, boundary)
// in data, dispatching recognized tags and skipping unknown ones. boundary
// is the whole file for the top level, or the enclosing CAT container's end
// for nested chunks.
func walkChunks(data []byte, boundary, offset int, st *walkState) {
	for offset+8 <= boundary {
		tag := [4]byte(data[offset : offset+4])
		length := binary.BigEndian.Uint32(data[offset+4 : offset+8])

		padded := length
		if padded%2 == 1 {
			padded++
		}

		if offset+8+int(padded) > boundary {
			st.truncated = true
			st.opts.logf("chunk %q at offset %d declares %d bytes, past boundary %d; stopping", tag, offset, length, boundary)
			return
		}

		payload := data[offset+8 : offset+8+int(length)]

		switch {
		case tag == tagCAT:
			if length >= 4 {
				catBoundary := offset + 8 + int(length)
				walkChunks(data, catBoundary, offset+12, st)
			}
		case tag == sdatTag:
			if !st.sdatDecoded && st.sdatErr == nil {
				if err := decodeSDATChunk(st.rex, payload, st.opts); err != nil {
					st.sdatErr = err
				} else {
					st.sdatDecoded = true
				}
			}
		default:
			dispatched := false

			for _, h := range chunkHandlers {
				if h.tag == tag {
					h.decode(st, payload)
					dispatched = true

					break
				}
			}

			if !dispatched {
				st.rex.SkippedChunks = append(st.rex.SkippedChunks, SkippedChunk{
					Tag:    tag,
					Size:   length,
					Offset: offset,
				})
				st.opts.logf("skipping unrecognized chunk %q at offset %d (%d bytes)", tag, offset, length)
			}
		}

		offset += 8 + int(padded)
	}
}

var sdatTag = [4]byte{'S', 'D', 'A', 'T'}
