package jsonflow

// inputBuffer accumulates unprocessed bytes across Consume calls. resume
// marks the first byte the lexer has not yet scanned past; it only ever
// moves forward. The buffer is never truncated mid-document, so a
// lexer token in progress can always be re-sliced from its start
// offset instead of being copied into a second location.
type inputBuffer struct {
	data   []byte
	resume int
}

// append adds p to the end of the buffer.
func (b *inputBuffer) append(p []byte) {
	b.data = append(b.data, p...)
}

// len returns the number of bytes held in the buffer: everything
// appended since the buffer was created or last compacted.
func (b *inputBuffer) len() int {
	return len(b.data)
}

// at returns the byte at absolute offset i.
func (b *inputBuffer) at(i int) byte {
	return b.data[i]
}

// slice returns the bytes in [start, end) as a string. The copy happens
// here, at commit time, rather than incrementally while scanning.
func (b *inputBuffer) slice(start, end int) string {
	return string(b.data[start:end])
}

// compact drops bytes before resume. It must only be called when no
// lexer token is in progress (i.e. with a closed root and nothing but
// trailing whitespace remaining), since compaction invalidates any
// offset a partialToken might be holding into the old backing array.
func (b *inputBuffer) compact() {
	if b.resume == 0 {
		return
	}
	remaining := b.data[b.resume:]
	compacted := make([]byte, len(remaining))
	copy(compacted, remaining)
	b.data = compacted
	b.resume = 0
}
