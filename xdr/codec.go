package xdr

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Codec is the quadruple from spec.md §3: encode, decode, and (via the
// package-level ToBase64/FromBase64 helpers in writer.go) base64 transport, with
// the round-trip invariant Decode(Encode(x)) == x for every x in the domain.
//
// Domain-type codecs in this package are hand-written compositions of the
// primitives below rather than reflection-driven, matching spec.md's
// Non-goal on schema code generation: the schema table is an input, the
// codecs here are the (generated-by-hand) deliverable.
type Codec[T any] struct {
	EncodeFn func(*Writer, T) error
	DecodeFn func(*Reader) (T, error)
}

// Encode runs the codec against a fresh Writer and returns the output bytes.
func (c Codec[T]) Encode(v T) ([]byte, error) {
	w := NewWriter()
	if err := c.EncodeFn(w, v); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// Decode runs the codec against buf, requiring the entire buffer to be
// consumed (spec.md §3: "A successful decode must consume the entire input
// buffer when invoked at the top level").
func (c Codec[T]) Decode(buf []byte) (T, error) {
	r := NewReader(buf)
	v, err := c.DecodeFn(r)
	if err != nil {
		var zero T
		return zero, err
	}
	if err := r.EnsureEnd(); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// ToBase64 encodes v and returns the standard base64 transport form.
func (c Codec[T]) ToBase64(v T) (string, error) {
	b, err := c.Encode(v)
	if err != nil {
		return "", err
	}
	return ToBase64(b), nil
}

// FromBase64 decodes a base64 transport string back into T.
func (c Codec[T]) FromBase64(s string) (T, error) {
	b, err := FromBase64(s)
	if err != nil {
		var zero T
		return zero, err
	}
	return c.Decode(b)
}

// Void is the zero-byte XDR type.
var Void = Codec[struct{}]{
	EncodeFn: func(w *Writer, _ struct{}) error { return nil },
	DecodeFn: func(r *Reader) (struct{}, error) { return struct{}{}, nil },
}

// I32, U32, I64, U64, F32, F64, Bool are the primitive codecs of spec.md §3.
var (
	I32  = Codec[int32]{EncodeFn: func(w *Writer, v int32) error { return w.WriteI32(v) }, DecodeFn: func(r *Reader) (int32, error) { return r.ReadI32() }}
	U32  = Codec[uint32]{EncodeFn: func(w *Writer, v uint32) error { return w.WriteU32(v) }, DecodeFn: func(r *Reader) (uint32, error) { return r.ReadU32() }}
	I64  = Codec[int64]{EncodeFn: func(w *Writer, v int64) error { return w.WriteI64(v) }, DecodeFn: func(r *Reader) (int64, error) { return r.ReadI64() }}
	U64  = Codec[uint64]{EncodeFn: func(w *Writer, v uint64) error { return w.WriteU64(v) }, DecodeFn: func(r *Reader) (uint64, error) { return r.ReadU64() }}
	F32  = Codec[float32]{EncodeFn: func(w *Writer, v float32) error { return w.WriteF32(v) }, DecodeFn: func(r *Reader) (float32, error) { return r.ReadF32() }}
	F64  = Codec[float64]{EncodeFn: func(w *Writer, v float64) error { return w.WriteF64(v) }, DecodeFn: func(r *Reader) (float64, error) { return r.ReadF64() }}
	Bool = Codec[bool]{EncodeFn: func(w *Writer, v bool) error { return w.WriteBool(v) }, DecodeFn: func(r *Reader) (bool, error) { return r.ReadBool() }}
)

// FixedOpaque builds a codec for an N-byte fixed opaque field.
func FixedOpaque(n int) Codec[[]byte] {
	return Codec[[]byte]{
		EncodeFn: func(w *Writer, v []byte) error { return w.WriteFixedOpaque(v, n) },
		DecodeFn: func(r *Reader) ([]byte, error) { return r.ReadFixedOpaque(n) },
	}
}

// VarOpaque builds a codec for a variable opaque field capped at max bytes
// (0 means unbounded).
func VarOpaque(max uint32) Codec[[]byte] {
	return Codec[[]byte]{
		EncodeFn: func(w *Writer, v []byte) error { return w.WriteVarOpaque(v, max) },
		DecodeFn: func(r *Reader) ([]byte, error) { return r.ReadVarOpaque(max) },
	}
}

// String builds a codec for a UTF-8 string capped at max bytes (0 means
// unbounded).
func String(max uint32) Codec[string] {
	return Codec[string]{
		EncodeFn: func(w *Writer, v string) error { return w.WriteString(v, max) },
		DecodeFn: func(r *Reader) (string, error) { return r.ReadString(max) },
	}
}

// Option lifts an inner codec into an optional field: a bool flag followed
// by the value when true (spec.md §3/§4.2). Absence is represented as nil.
func Option[T any](inner Codec[T]) Codec[*T] {
	return Codec[*T]{
		EncodeFn: func(w *Writer, v *T) error {
			if v == nil {
				return w.WriteBool(false)
			}
			if err := w.WriteBool(true); err != nil {
				return err
			}
			return inner.EncodeFn(w, *v)
		},
		DecodeFn: func(r *Reader) (*T, error) {
			present, err := r.ReadBool()
			if err != nil {
				return nil, err
			}
			if !present {
				return nil, nil
			}
			v, err := inner.DecodeFn(r)
			if err != nil {
				return nil, err
			}
			return &v, nil
		},
	}
}

// FixedArray builds a codec for a fixed-length array of n elements of the
// inner type (no length prefix on the wire).
func FixedArray[T any](n int, inner Codec[T]) Codec[[]T] {
	return Codec[[]T]{
		EncodeFn: func(w *Writer, v []T) error {
			if len(v) != n {
				return newErrf(LengthMismatch, "fixed array expected %d elements, got %d", n, len(v))
			}
			done, err := w.enterDepth()
			if err != nil {
				return err
			}
			defer done()
			for _, e := range v {
				if err := inner.EncodeFn(w, e); err != nil {
					return err
				}
			}
			return nil
		},
		DecodeFn: func(r *Reader) ([]T, error) {
			done, err := r.enterDepth()
			if err != nil {
				return nil, err
			}
			defer done()
			out := make([]T, n)
			for i := 0; i < n; i++ {
				v, err := inner.DecodeFn(r)
				if err != nil {
					return nil, err
				}
				out[i] = v
			}
			return out, nil
		},
	}
}

// VarArray builds a codec for a variable-length array capped at max
// elements (0 means unbounded): a u32 length prefix followed by elements.
func VarArray[T any](max uint32, inner Codec[T]) Codec[[]T] {
	return Codec[[]T]{
		EncodeFn: func(w *Writer, v []T) error {
			if err := w.WriteArrayLen(len(v), max); err != nil {
				return err
			}
			done, err := w.enterDepth()
			if err != nil {
				return err
			}
			defer done()
			for _, e := range v {
				if err := inner.EncodeFn(w, e); err != nil {
					return err
				}
			}
			return nil
		},
		DecodeFn: func(r *Reader) ([]T, error) {
			n, err := r.ReadArrayLen(max)
			if err != nil {
				return nil, err
			}
			done, err := r.enterDepth()
			if err != nil {
				return nil, err
			}
			defer done()
			out := make([]T, 0, n)
			for i := uint32(0); i < n; i++ {
				v, err := inner.DecodeFn(r)
				if err != nil {
					return nil, err
				}
				out = append(out, v)
			}
			return out, nil
		},
	}
}

// Typedef wraps inner unchanged; it exists purely to document, at the call
// site, that a field is a named alias rather than an inline composite
// (spec.md §3 "Typedef").
func Typedef[T any](inner Codec[T]) Codec[T] { return inner }

// lazyRegistry memoizes the first realization of named recursive codecs
// (spec.md §9 "Cyclic codec references") behind a bounded cache so that a
// schema with many distinct self-referential types cannot grow it without
// limit. 256 entries comfortably covers the schema's recursive type family
// (SCVal, SCMap, SCVec and friends) with headroom for future additions.
var (
	lazyRegistry, _ = lru.New[string, any](256)
	lazyMu          sync.Mutex
)

// Lazy returns a codec that defers calling factory until first use and then
// reuses that realization for every subsequent call sharing name. This
// breaks eager construction cycles in mutually-recursive schema types
// (e.g. SCVal containing SCVal via Vec/Map).
func Lazy[T any](name string, factory func() Codec[T]) Codec[T] {
	resolve := func() Codec[T] {
		lazyMu.Lock()
		defer lazyMu.Unlock()
		if cached, ok := lazyRegistry.Get(name); ok {
			return cached.(Codec[T])
		}
		c := factory()
		lazyRegistry.Add(name, c)
		return c
	}
	return Codec[T]{
		EncodeFn: func(w *Writer, v T) error { return resolve().EncodeFn(w, v) },
		DecodeFn: func(r *Reader) (T, error) { return resolve().DecodeFn(r) },
	}
}

// Union is implemented by generated tagged-union types so that callers can
// use the generic Is predicate instead of type-switching on arm names
// (spec.md §4.2 value-representation contract).
type Union interface {
	ArmName() string
}

// Is reports whether u currently holds the named arm.
func Is(u Union, name string) bool { return u.ArmName() == name }
