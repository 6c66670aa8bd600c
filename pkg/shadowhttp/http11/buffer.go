package http11

// Buffer is an append-only accumulator of transport bytes with a logical
// size counter. It is not a reader: it does not tokenize, it only
// accumulates. A Buffer has a single writer (the task reading from the
// socket) and is consumed exactly once, by a decoder that takes ownership
// of the accumulated bytes.
//
// Invariant: size == len(bytes) after every Append.
type Buffer struct {
	bytes []byte
	size  int
}

// NewBuffer returns an empty Buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Append adds n bytes from buf to the accumulator. n may be less than
// len(buf) when the caller only wants to commit the bytes actually read
// from a socket read() call.
func (b *Buffer) Append(buf []byte, n int) {
	b.bytes = append(b.bytes, buf[:n]...)
	b.size += n
}

// Bytes returns a read-only view of the accumulated bytes.
func (b *Buffer) Bytes() []byte {
	return b.bytes
}

// Size returns the logical size of the accumulator.
func (b *Buffer) Size() int {
	return b.size
}
