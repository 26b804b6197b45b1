package buffer

import (
	"encoding/binary"
	"fmt"
)

// WriteUint64 writes c to w in little-endian order.
func WriteUint64(w Writer, c uint64) (n int64, err error) {

	if w.Available() < 8 {
		if err = w.Flush(); err != nil {
			return
		}

		if w.Available() < 8 {
			return 0, fmt.Errorf("cannot WriteUint64: available buffer is smaller than 8 bytes even after flush")
		}
	}

	buf := w.AvailableBuffer()[:8]

	binary.LittleEndian.PutUint64(buf, c)

	nint, err := w.Write(buf)

	return int64(nint), err
}

// WriteInt writes c to w as an uint64.
func WriteInt(w Writer, c int) (n int64, err error) {
	if c < 0 {
		return 0, fmt.Errorf("cannot WriteInt: negative value %d", c)
	}
	return WriteUint64(w, uint64(c))
}

// Write writes the slice of bytes c to w.
func Write(w Writer, c []byte) (n int64, err error) {
	nint, err := w.Write(c)
	return int64(nint), err
}
