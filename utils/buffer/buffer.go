// Package buffer implements the binary encoding helpers used by the
// serialization methods of package ring.
package buffer

import (
	"fmt"
	"io"
)

// Writer is a writer exposing its internal buffer, such as *bufio.Writer or *Buffer.
type Writer interface {
	io.Writer
	Flush() (err error)
	AvailableBuffer() []byte
	Available() int
}

// Reader is a reader exposing its internal buffer, such as *bufio.Reader or *Buffer.
type Reader interface {
	io.Reader
	Size() int
	Peek(n int) ([]byte, error)
	Discard(n int) (discarded int, err error)
}

// Buffer is a Writer and Reader over a fixed slice of bytes.
// It never grows: a write that does not fit returns an error.
// Reads and writes advance independent offsets.
type Buffer struct {
	data []byte
	wOff int
	rOff int
}

// NewBuffer returns a Buffer over data. Both offsets start at zero,
// hence data is read from its start and overwritten by writes.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: data}
}

// NewBufferSize returns a Buffer over a new slice of size bytes.
func NewBufferSize(size int) *Buffer {
	return NewBuffer(make([]byte, size))
}

// Bytes returns the underlying slice, including the bytes not written yet.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Reset moves both offsets back to the start of the buffer.
func (b *Buffer) Reset() {
	b.wOff, b.rOff = 0, 0
}

// Available returns the number of bytes that can still be written.
func (b *Buffer) Available() int {
	return len(b.data) - b.wOff
}

// AvailableBuffer returns a zero-length slice starting at the write offset,
// with Available() capacity.
func (b *Buffer) AvailableBuffer() []byte {
	return b.data[b.wOff:b.wOff]
}

// Write copies p at the write offset.
func (b *Buffer) Write(p []byte) (n int, err error) {
	if left := b.Available(); len(p) > left {
		return 0, fmt.Errorf("cannot Write: %d bytes requested but only %d available", len(p), left)
	}
	n = copy(b.data[b.wOff:], p)
	b.wOff += n
	return
}

// Flush is a no-op.
func (b *Buffer) Flush() (err error) {
	return
}

// Size returns the number of bytes left to read.
func (b *Buffer) Size() int {
	return len(b.data) - b.rOff
}

// Read copies the next bytes into p and returns io.EOF if fewer than len(p) were left.
func (b *Buffer) Read(p []byte) (n int, err error) {
	n = copy(p, b.data[b.rOff:])
	b.rOff += n
	if n < len(p) {
		err = io.EOF
	}
	return
}

// Peek returns the next n bytes without consuming them.
func (b *Buffer) Peek(n int) ([]byte, error) {
	if n > b.Size() {
		return b.data[b.rOff:], io.EOF
	}
	return b.data[b.rOff : b.rOff+n], nil
}

// Discard consumes the next n bytes.
func (b *Buffer) Discard(n int) (discarded int, err error) {
	if discarded = n; discarded > b.Size() {
		discarded, err = b.Size(), io.EOF
	}
	b.rOff += discarded
	return
}
