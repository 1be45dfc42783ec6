package xdr

import (
	"bytes"
	"testing"
)

func TestPrimitiveRoundTrip(t *testing.T) {
	if b, err := I32.Encode(-12345); err != nil || len(b) != 4 {
		t.Fatalf("I32.Encode: %v (%d bytes)", err, len(b))
	} else if v, err := I32.Decode(b); err != nil || v != -12345 {
		t.Fatalf("I32.Decode: got %d, %v", v, err)
	}

	if b, _ := U32.Encode(0xffffffff); true {
		if v, err := U32.Decode(b); err != nil || v != 0xffffffff {
			t.Fatalf("U32 round trip failed: %d, %v", v, err)
		}
	}

	if b, _ := I64.Encode(-9223372036854775808); true {
		if v, err := I64.Decode(b); err != nil || v != -9223372036854775808 {
			t.Fatalf("I64 round trip failed: %d, %v", v, err)
		}
	}

	if b, _ := U64.Encode(0xffffffffffffffff); true {
		if v, err := U64.Decode(b); err != nil || v != 0xffffffffffffffff {
			t.Fatalf("U64 round trip failed: %d, %v", v, err)
		}
	}

	if b, _ := F32.Encode(3.5); true {
		if v, err := F32.Decode(b); err != nil || v != 3.5 {
			t.Fatalf("F32 round trip failed: %v, %v", v, err)
		}
	}

	if b, _ := F64.Encode(-2.25); true {
		if v, err := F64.Decode(b); err != nil || v != -2.25 {
			t.Fatalf("F64 round trip failed: %v, %v", v, err)
		}
	}

	for _, v := range []bool{true, false} {
		b, err := Bool.Encode(v)
		if err != nil {
			t.Fatalf("Bool.Encode(%v): %v", v, err)
		}
		got, err := Bool.Decode(b)
		if err != nil || got != v {
			t.Fatalf("Bool round trip: want %v, got %v, %v", v, got, err)
		}
	}
}

func TestBoolRejectsOutOfRange(t *testing.T) {
	b, _ := I32.Encode(2)
	if _, err := Bool.Decode(b); err == nil {
		t.Fatal("expected error decoding bool value 2")
	}
}

func TestFixedOpaquePadding(t *testing.T) {
	c := FixedOpaque(3)
	b, err := c.Encode([]byte{1, 2, 3})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(b) != 4 {
		t.Fatalf("expected 4 bytes (3 + 1 pad), got %d", len(b))
	}
	if b[3] != 0 {
		t.Fatalf("expected zero padding byte, got %d", b[3])
	}
	got, err := c.Decode(b)
	if err != nil || !bytes.Equal(got, []byte{1, 2, 3}) {
		t.Fatalf("decode: got %v, %v", got, err)
	}
}

func TestFixedOpaqueLengthMismatch(t *testing.T) {
	c := FixedOpaque(4)
	if _, err := c.Encode([]byte{1, 2, 3}); err == nil {
		t.Fatal("expected LengthMismatch error")
	} else if xerr, ok := err.(*Error); !ok || xerr.Kind != LengthMismatch {
		t.Fatalf("expected LengthMismatch, got %v", err)
	}
}

func TestFixedOpaqueRejectsNonZeroPadding(t *testing.T) {
	// 3 bytes of payload + 1 non-zero pad byte.
	buf := []byte{1, 2, 3, 0xff}
	r := NewReader(buf)
	if _, err := r.ReadFixedOpaque(3); err == nil {
		t.Fatal("expected non-zero padding to be rejected")
	} else if xerr, ok := err.(*Error); !ok || xerr.Kind != NonZeroPadding {
		t.Fatalf("expected NonZeroPadding, got %v", err)
	}
}

func TestVarOpaqueRoundTripAndMax(t *testing.T) {
	c := VarOpaque(4)
	b, err := c.Encode([]byte{9, 9, 9, 9})
	if err != nil {
		t.Fatalf("encode at max: %v", err)
	}
	got, err := c.Decode(b)
	if err != nil || !bytes.Equal(got, []byte{9, 9, 9, 9}) {
		t.Fatalf("decode: got %v, %v", got, err)
	}
	if _, err := c.Encode([]byte{1, 2, 3, 4, 5}); err == nil {
		t.Fatal("expected LengthExceedsMax error")
	}
}

func TestStringRejectsInvalidUTF8(t *testing.T) {
	w := NewWriter()
	if err := w.WriteVarOpaque([]byte{0xff, 0xfe, 0xfd}, 0); err != nil {
		t.Fatalf("write raw bytes: %v", err)
	}
	r := NewReader(w.Bytes())
	if _, err := r.ReadString(0); err == nil {
		t.Fatal("expected Utf8Error")
	} else if xerr, ok := err.(*Error); !ok || xerr.Kind != Utf8Error {
		t.Fatalf("expected Utf8Error, got %v", err)
	}
}

func TestArrayRoundTrip(t *testing.T) {
	fixed := FixedArray(3, I32)
	b, err := fixed.Encode([]int32{1, 2, 3})
	if err != nil {
		t.Fatalf("fixed array encode: %v", err)
	}
	got, err := fixed.Decode(b)
	if err != nil || len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("fixed array decode: %v, %v", got, err)
	}
	if _, err := fixed.Encode([]int32{1, 2}); err == nil {
		t.Fatal("expected LengthMismatch for short fixed array")
	}

	variable := VarArray(uint32(0), U32)
	vb, err := variable.Encode([]uint32{10, 20, 30, 40})
	if err != nil {
		t.Fatalf("var array encode: %v", err)
	}
	vgot, err := variable.Decode(vb)
	if err != nil || len(vgot) != 4 || vgot[3] != 40 {
		t.Fatalf("var array decode: %v, %v", vgot, err)
	}
}

func TestVarArrayExceedsMax(t *testing.T) {
	c := VarArray(uint32(2), I32)
	if _, err := c.Encode([]int32{1, 2, 3}); err == nil {
		t.Fatal("expected LengthExceedsMax")
	}
}

func TestOptionRoundTrip(t *testing.T) {
	c := Option(U32)
	b, err := c.Encode(nil)
	if err != nil {
		t.Fatalf("encode nil: %v", err)
	}
	got, err := c.Decode(b)
	if err != nil || got != nil {
		t.Fatalf("expected nil, got %v, %v", got, err)
	}

	v := uint32(42)
	b, err = c.Encode(&v)
	if err != nil {
		t.Fatalf("encode present: %v", err)
	}
	got, err = c.Decode(b)
	if err != nil || got == nil || *got != 42 {
		t.Fatalf("expected 42, got %v, %v", got, err)
	}
}

func TestDecodeRequiresFullConsumption(t *testing.T) {
	b, _ := I32.Encode(7)
	b = append(b, 0, 0, 0, 0)
	if _, err := I32.Decode(b); err == nil {
		t.Fatal("expected BufferNotFullyConsumed")
	} else if xerr, ok := err.(*Error); !ok || xerr.Kind != BufferNotFullyConsumed {
		t.Fatalf("expected BufferNotFullyConsumed, got %v", err)
	}
}

func TestDecodeUnderflow(t *testing.T) {
	if _, err := I64.Decode([]byte{0, 0, 0, 1}); err == nil {
		t.Fatal("expected BufferUnderflow")
	} else if xerr, ok := err.(*Error); !ok || xerr.Kind != BufferUnderflow {
		t.Fatalf("expected BufferUnderflow, got %v", err)
	}
}

func TestByteLimitExceeded(t *testing.T) {
	w := NewWriterWithLimits(Limits{MaxDepth: DefaultMaxDepth, MaxLength: 4})
	if err := w.WriteU32(1); err != nil {
		t.Fatalf("first write under limit: %v", err)
	}
	if err := w.WriteU32(2); err == nil {
		t.Fatal("expected ByteLimitExceeded on second write")
	} else if xerr, ok := err.(*Error); !ok || xerr.Kind != ByteLimitExceeded {
		t.Fatalf("expected ByteLimitExceeded, got %v", err)
	}
}

func TestDepthLimitExceeded(t *testing.T) {
	// A variable array of variable arrays: two levels deep, which fits
	// MaxDepth=2 and exceeds MaxDepth=1.
	inner := VarArray(uint32(0), I32)
	outer := VarArray(uint32(0), inner)
	w := NewWriterWithLimits(Limits{MaxDepth: 2, MaxLength: DefaultMaxLength})
	if err := outer.EncodeFn(w, [][]int32{{1}}); err != nil {
		t.Fatalf("expected depth 2 to succeed: %v", err)
	}

	w2 := NewWriterWithLimits(Limits{MaxDepth: 1, MaxLength: DefaultMaxLength})
	if err := outer.EncodeFn(w2, [][]int32{{1}}); err == nil {
		t.Fatal("expected DepthLimitExceeded at depth 1")
	} else if xerr, ok := err.(*Error); !ok || xerr.Kind != DepthLimitExceeded {
		t.Fatalf("expected DepthLimitExceeded, got %v", err)
	}
}

func TestBase64RoundTrip(t *testing.T) {
	s, err := I32.ToBase64(99)
	if err != nil {
		t.Fatalf("ToBase64: %v", err)
	}
	v, err := I32.FromBase64(s)
	if err != nil || v != 99 {
		t.Fatalf("FromBase64: got %d, %v", v, err)
	}
}

func TestLazyMemoizesRealization(t *testing.T) {
	calls := 0
	c := Lazy("test-lazy-codec", func() Codec[int32] {
		calls++
		return I32
	})
	if _, err := c.Encode(1); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := c.Encode(2); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected factory to run once, ran %d times", calls)
	}
}

func TestIsUnionPredicate(t *testing.T) {
	a := Asset{Type: AssetTypeNative}
	if !Is(a, "Native") {
		t.Fatal("expected native asset to report ArmName Native")
	}
	if Is(a, "CreditAlphanum4") {
		t.Fatal("native asset should not match CreditAlphanum4")
	}
}
