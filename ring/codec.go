package ring

import (
	"bufio"
	"fmt"
	"io"

	"github.com/tuneinsight/polyring/utils/buffer"
)

// maxPrealloc bounds the capacity allocated from a decoded header before
// the corresponding entries have actually been read.
const maxPrealloc = 1 << 12

func errNotCodec[T any](method string) error {
	var t T
	return fmt.Errorf("cannot %s: coefficient type %T does not comply to %T", method, t, new(Codec[T]))
}

// BinarySize returns the serialized size of the object in bytes.
// It panics if T does not implement Codec.
func (p Poly[T]) BinarySize() int {
	codec, ok := codecOf[T]()
	if !ok {
		panic(errNotCodec[T]("BinarySize"))
	}
	return 8 + p.degree*codec.BinarySize()
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
//
// Unless w implements the buffer.Writer interface (see polyring/utils/buffer/buffer.go),
// it will be wrapped into a bufio.Writer.
func (p Poly[T]) WriteTo(w io.Writer) (n int64, err error) {
	switch w := w.(type) {
	case buffer.Writer:

		codec, ok := codecOf[T]()
		if !ok {
			return 0, errNotCodec[T]("WriteTo")
		}

		var inc int64
		if inc, err = buffer.WriteInt(w, p.degree); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteInt: %w", err)
		}

		n += inc

		scratch := make([]byte, codec.BinarySize())

		for i := range p.coeffs {
			any(p.coeffs[i]).(Codec[T]).Encode(scratch)
			if inc, err = buffer.Write(w, scratch); err != nil {
				return n + inc, fmt.Errorf("buffer.Write: %w", err)
			}
			n += inc
		}

		return n, w.Flush()

	default:
		return p.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an io.Reader. It implements the
// io.ReaderFrom interface. The coefficients are always decoded into
// newly allocated memory, grown as they are read: a header announcing
// more coefficients than r holds returns an error.
//
// Unless r implements the buffer.Reader interface (see polyring/utils/buffer/buffer.go),
// it will be wrapped into a bufio.Reader.
func (p *Poly[T]) ReadFrom(r io.Reader) (n int64, err error) {
	switch r := r.(type) {
	case buffer.Reader:

		codec, ok := codecOf[T]()
		if !ok {
			return 0, errNotCodec[T]("ReadFrom")
		}

		var inc int64
		var N int
		if inc, err = buffer.ReadInt(r, &N); err != nil {
			return n + inc, fmt.Errorf("buffer.ReadInt: %w", err)
		}

		n += inc

		coeffs := make([]T, 0, min(N, maxPrealloc))
		scratch := make([]byte, codec.BinarySize())

		for i := 0; i < N; i++ {
			if inc, err = buffer.Read(r, scratch); err != nil {
				return n + inc, fmt.Errorf("buffer.Read: %w", err)
			}
			n += inc
			coeffs = append(coeffs, codec.Decode(scratch))
		}

		p.degree = N
		p.coeffs = coeffs

		return n, nil

	default:
		return p.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (p Poly[T]) MarshalBinary() (data []byte, err error) {
	if _, ok := codecOf[T](); !ok {
		return nil, errNotCodec[T]("MarshalBinary")
	}
	buf := buffer.NewBufferSize(p.BinarySize())
	_, err = p.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (p *Poly[T]) UnmarshalBinary(data []byte) (err error) {
	_, err = p.ReadFrom(buffer.NewBuffer(data))
	return
}

// BinarySize returns the serialized size of the object in bytes.
// It panics if T does not implement Codec.
func (v Vector[T]) BinarySize() (size int) {
	size = 16
	for i := range v.polys {
		size += v.polys[i].BinarySize()
	}
	return
}

// WriteTo writes the ring degree, the length and then every entry of the vector on w.
func (v Vector[T]) WriteTo(w io.Writer) (n int64, err error) {
	switch w := w.(type) {
	case buffer.Writer:

		var inc int64
		if inc, err = buffer.WriteInt(w, v.degree); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteInt: %w", err)
		}
		n += inc

		if inc, err = buffer.WriteInt(w, v.Len()); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteInt: %w", err)
		}
		n += inc

		for i := range v.polys {
			if inc, err = v.polys[i].WriteTo(w); err != nil {
				return n + inc, fmt.Errorf("entry %d: %w", i, err)
			}
			n += inc
		}

		return n, w.Flush()

	default:
		return v.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads a vector written by WriteTo. It returns an error if an entry
// is not of the declared ring degree.
func (v *Vector[T]) ReadFrom(r io.Reader) (n int64, err error) {
	switch r := r.(type) {
	case buffer.Reader:

		var inc int64
		var N, length int

		if inc, err = buffer.ReadInt(r, &N); err != nil {
			return n + inc, fmt.Errorf("buffer.ReadInt: %w", err)
		}
		n += inc

		if inc, err = buffer.ReadInt(r, &length); err != nil {
			return n + inc, fmt.Errorf("buffer.ReadInt: %w", err)
		}
		n += inc

		polys := make([]Poly[T], 0, min(length, maxPrealloc))
		for i := 0; i < length; i++ {
			var p Poly[T]
			if inc, err = p.ReadFrom(r); err != nil {
				return n + inc, fmt.Errorf("entry %d: %w", i, err)
			}
			n += inc

			if err = checkDimension(RingDegree, N, p.N()); err != nil {
				return n, fmt.Errorf("entry %d: %w", i, err)
			}

			polys = append(polys, p)
		}

		v.degree = N
		v.polys = polys

		return n, nil

	default:
		return v.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (v Vector[T]) MarshalBinary() (data []byte, err error) {
	if _, ok := codecOf[T](); !ok {
		return nil, errNotCodec[T]("MarshalBinary")
	}
	buf := buffer.NewBufferSize(v.BinarySize())
	_, err = v.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (v *Vector[T]) UnmarshalBinary(data []byte) (err error) {
	_, err = v.ReadFrom(buffer.NewBuffer(data))
	return
}

// BinarySize returns the serialized size of the object in bytes.
// It panics if T does not implement Codec.
func (m Matrix[T]) BinarySize() (size int) {
	size = 24
	for j := range m.cols {
		size += m.cols[j].BinarySize()
	}
	return
}

// WriteTo writes the ring degree, the number of rows and columns and then every column on w.
func (m Matrix[T]) WriteTo(w io.Writer) (n int64, err error) {
	switch w := w.(type) {
	case buffer.Writer:

		var inc int64
		for _, c := range []int{m.degree, m.rows, m.Cols()} {
			if inc, err = buffer.WriteInt(w, c); err != nil {
				return n + inc, fmt.Errorf("buffer.WriteInt: %w", err)
			}
			n += inc
		}

		for j := range m.cols {
			if inc, err = m.cols[j].WriteTo(w); err != nil {
				return n + inc, fmt.Errorf("column %d: %w", j, err)
			}
			n += inc
		}

		return n, w.Flush()

	default:
		return m.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads a matrix written by WriteTo. It returns an error if a column
// does not match the declared shape.
func (m *Matrix[T]) ReadFrom(r io.Reader) (n int64, err error) {
	switch r := r.(type) {
	case buffer.Reader:

		var inc int64
		var N, rows, cols int

		for _, c := range []*int{&N, &rows, &cols} {
			if inc, err = buffer.ReadInt(r, c); err != nil {
				return n + inc, fmt.Errorf("buffer.ReadInt: %w", err)
			}
			n += inc
		}

		columns := make([]Vector[T], 0, min(cols, maxPrealloc))
		for j := 0; j < cols; j++ {
			var col Vector[T]
			if inc, err = col.ReadFrom(r); err != nil {
				return n + inc, fmt.Errorf("column %d: %w", j, err)
			}
			n += inc
			columns = append(columns, col)
		}

		var mat Matrix[T]
		if mat, err = NewMatrixFromColumns(N, rows, columns); err != nil {
			return n, err
		}

		*m = mat

		return n, nil

	default:
		return m.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (m Matrix[T]) MarshalBinary() (data []byte, err error) {
	if _, ok := codecOf[T](); !ok {
		return nil, errNotCodec[T]("MarshalBinary")
	}
	buf := buffer.NewBufferSize(m.BinarySize())
	_, err = m.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (m *Matrix[T]) UnmarshalBinary(data []byte) (err error) {
	_, err = m.ReadFrom(buffer.NewBuffer(data))
	return
}
