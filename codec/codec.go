// Package codec supplies the pluggable (key, value) byte serialization the
// tree's persistence layer needs. It is a pure external collaborator: the
// tree never constructs one itself, only calls the Codec it is given.
//
// The encodings mirror the original source's Serializer<T> template
// family: fixed-layout scalars are copied byte-for-byte, and anything
// variable-length (strings, byte slices, composite containers) is framed
// with a big-endian uint32 length prefix.
package codec

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Codec encodes and decodes values of type T to and from a byte stream.
// Decode reports how many bytes it consumed so callers can track stream
// position without re-deriving it from the encoding.
type Codec[T any] interface {
	Encode(w io.Writer, v T) (int, error)
	Decode(r io.Reader) (T, int, error)
}

// fixedCodec is the default byte-copy codec for fixed-layout scalar
// types, implemented via encoding/binary in place of the original
// source's raw sizeof(T) memcpy.
type fixedCodec[T any] struct {
	order binary.ByteOrder
}

// Fixed returns a byte-copy Codec for any fixed-width scalar type
// encoding/binary can read and write directly (integer and float kinds).
func Fixed[T any]() Codec[T] {
	return fixedCodec[T]{order: binary.BigEndian}
}

func (c fixedCodec[T]) Encode(w io.Writer, v T) (int, error) {
	if err := binary.Write(w, c.order, v); err != nil {
		return 0, fmt.Errorf("codec: encode fixed value: %w", err)
	}
	return binarySize(v), nil
}

func (c fixedCodec[T]) Decode(r io.Reader) (T, int, error) {
	var v T
	if err := binary.Read(r, c.order, &v); err != nil {
		var zero T
		return zero, 0, err
	}
	return v, binarySize(v), nil
}

func binarySize(v any) int {
	n := binary.Size(v)
	if n < 0 {
		return 0
	}
	return n
}

// stringCodec is a length-prefixed codec for strings, mirroring
// Serializer<std::string>.
type stringCodec struct{}

// String returns a length-prefixed Codec for string values.
func String() Codec[string] { return stringCodec{} }

func (stringCodec) Encode(w io.Writer, v string) (int, error) {
	return encodeLengthPrefixed(w, []byte(v))
}

func (stringCodec) Decode(r io.Reader) (string, int, error) {
	b, n, err := decodeLengthPrefixed(r)
	return string(b), n, err
}

// bytesCodec is a length-prefixed codec for raw byte slices, framed
// identically to stringCodec.
type bytesCodec struct{}

// Bytes returns a length-prefixed Codec for []byte values.
func Bytes() Codec[[]byte] { return bytesCodec{} }

func (bytesCodec) Encode(w io.Writer, v []byte) (int, error) {
	return encodeLengthPrefixed(w, v)
}

func (bytesCodec) Decode(r io.Reader) ([]byte, int, error) {
	return decodeLengthPrefixed(r)
}

func encodeLengthPrefixed(w io.Writer, data []byte) (int, error) {
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(data)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return 0, fmt.Errorf("codec: write length prefix: %w", err)
	}
	if len(data) > 0 {
		if _, err := w.Write(data); err != nil {
			return 0, fmt.Errorf("codec: write data: %w", err)
		}
	}
	return 4 + len(data), nil
}

func decodeLengthPrefixed(r io.Reader) ([]byte, int, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, 0, err
	}
	length := binary.BigEndian.Uint32(lenBuf[:])
	data := make([]byte, length)
	if length > 0 {
		if _, err := io.ReadFull(r, data); err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return nil, 0, err
		}
	}
	return data, 4 + int(length), nil
}

// sliceCodec is a length-prefixed sequence of element encodings,
// mirroring Serializer<std::vector<T>>. It is what backs a
// MultiValuedTree's persisted per-key value lists.
type sliceCodec[T any] struct {
	elem Codec[T]
}

// Slice returns a Codec for []T built by repeating elem, length-prefixed.
func Slice[T any](elem Codec[T]) Codec[[]T] {
	return sliceCodec[T]{elem: elem}
}

func (c sliceCodec[T]) Encode(w io.Writer, v []T) (int, error) {
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(v)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return 0, fmt.Errorf("codec: write slice length: %w", err)
	}
	total := 4
	for _, e := range v {
		n, err := c.elem.Encode(w, e)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

func (c sliceCodec[T]) Decode(r io.Reader) ([]T, int, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, 0, err
	}
	length := binary.BigEndian.Uint32(lenBuf[:])
	total := 4
	out := make([]T, 0, length)
	for i := uint32(0); i < length; i++ {
		e, n, err := c.elem.Decode(r)
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return nil, total, err
		}
		out = append(out, e)
		total += n
	}
	return out, total, nil
}
