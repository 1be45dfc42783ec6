package xdr

import (
	"encoding/base64"
	"encoding/binary"
	"math"
)

// Writer accumulates an XDR byte stream per spec.md §4.1. It owns a growable
// buffer doubling on demand; range and length-cap violations are reported
// immediately rather than deferred to a final flush.
type Writer struct {
	buf []byte
	t   *tracker
}

// NewWriter creates a Writer with the default limits and a small initial
// capacity.
func NewWriter() *Writer {
	return NewWriterWithLimits(DefaultLimits())
}

// NewWriterWithLimits creates a Writer bounded by an explicit Limits.
func NewWriterWithLimits(l Limits) *Writer {
	return &Writer{buf: make([]byte, 0, 64), t: newTracker(l)}
}

func (w *Writer) enterDepth() (func(), error) {
	return w.t.enter()
}

func (w *Writer) grow(n int) error {
	if err := w.t.addBytes(n); err != nil {
		return err
	}
	return nil
}

func (w *Writer) append(b []byte) error {
	if err := w.grow(len(b)); err != nil {
		return err
	}
	w.buf = append(w.buf, b...)
	return nil
}

func (w *Writer) writePadding(n int) error {
	p := pad(n)
	if p == 0 {
		return nil
	}
	return w.append(make([]byte, p))
}

// Bytes returns a copy of the bytes written so far.
func (w *Writer) Bytes() []byte {
	out := make([]byte, len(w.buf))
	copy(out, w.buf)
	return out
}

// WriteI32 writes a big-endian 4-byte signed integer.
func (w *Writer) WriteI32(v int32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(v))
	return w.append(b[:])
}

// WriteU32 writes a big-endian 4-byte unsigned integer.
func (w *Writer) WriteU32(v uint32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return w.append(b[:])
}

// WriteI64 writes a big-endian 8-byte signed integer.
func (w *Writer) WriteI64(v int64) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v))
	return w.append(b[:])
}

// WriteU64 writes a big-endian 8-byte unsigned integer.
func (w *Writer) WriteU64(v uint64) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return w.append(b[:])
}

// WriteF32 writes an IEEE 754 big-endian single-precision float.
func (w *Writer) WriteF32(v float32) error {
	return w.WriteU32(math.Float32bits(v))
}

// WriteF64 writes an IEEE 754 big-endian double-precision float.
func (w *Writer) WriteF64(v float64) error {
	return w.WriteU64(math.Float64bits(v))
}

// WriteBool writes a bool as an i32 in {0,1}.
func (w *Writer) WriteBool(v bool) error {
	if v {
		return w.WriteI32(1)
	}
	return w.WriteI32(0)
}

// WriteFixedOpaque writes exactly n bytes (LengthMismatch if len(b) != n)
// followed by zero padding.
func (w *Writer) WriteFixedOpaque(b []byte, n int) error {
	if len(b) != n {
		return newErrf(LengthMismatch, "fixed opaque expected %d bytes, got %d", n, len(b))
	}
	if err := w.append(b); err != nil {
		return err
	}
	return w.writePadding(n)
}

// WriteVarOpaque writes a u32 length prefix, the bytes, and padding. max of
// 0 means unbounded.
func (w *Writer) WriteVarOpaque(b []byte, max uint32) error {
	if max != 0 && uint32(len(b)) > max {
		return newErrf(LengthExceedsMax, "variable opaque length %d exceeds max %d", len(b), max)
	}
	if uint64(len(b)) > math.MaxUint32 {
		return newErrf(InvalidValue, "opaque length %d exceeds u32 range", len(b))
	}
	if err := w.WriteU32(uint32(len(b))); err != nil {
		return err
	}
	if err := w.append(b); err != nil {
		return err
	}
	return w.writePadding(len(b))
}

// WriteString writes a string as variable opaque bytes.
func (w *Writer) WriteString(s string, max uint32) error {
	return w.WriteVarOpaque([]byte(s), max)
}

// WriteArrayLen writes and validates a variable-array length prefix.
func (w *Writer) WriteArrayLen(n int, max uint32) error {
	if n < 0 || uint64(n) > math.MaxUint32 {
		return newErrf(InvalidValue, "array length %d out of range", n)
	}
	if max != 0 && uint32(n) > max {
		return newErrf(LengthExceedsMax, "array length %d exceeds max %d", n, max)
	}
	return w.WriteU32(uint32(n))
}

// ToBase64 is the standard RFC 4648 padded base64 transport encoding
// (spec.md §6).
func ToBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// FromBase64 decodes standard RFC 4648 padded base64.
func FromBase64(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, newErrf(InvalidValue, "invalid base64: %v", err)
	}
	return b, nil
}
