package xdr

import "testing"

func TestAccountIDRoundTrip(t *testing.T) {
	var key [32]byte
	for i := range key {
		key[i] = byte(i)
	}
	acc := AccountID{Ed25519: key}
	b, err := AccountIDCodec.Encode(acc)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := AccountIDCodec.Decode(b)
	if err != nil || got != acc {
		t.Fatalf("decode: got %v, %v", got, err)
	}
}

func TestAccountIDRejectsUnknownDiscriminant(t *testing.T) {
	w := NewWriter()
	_ = I32.EncodeFn(w, 7)
	_ = w.WriteFixedOpaque(make([]byte, 32), 32)
	if _, err := AccountIDCodec.Decode(w.Bytes()); err == nil {
		t.Fatal("expected InvalidUnionDiscriminant")
	} else if xerr, ok := err.(*Error); !ok || xerr.Kind != InvalidUnionDiscriminant {
		t.Fatalf("expected InvalidUnionDiscriminant, got %v", err)
	}
}

func TestMuxedAccountRoundTrip(t *testing.T) {
	var key [32]byte
	key[0] = 1
	plain := MuxedAccount{Type: KeyTypeEd25519, Ed25519: key}
	b, err := MuxedAccountCodec.Encode(plain)
	if err != nil {
		t.Fatalf("encode plain: %v", err)
	}
	got, err := MuxedAccountCodec.Decode(b)
	if err != nil || got != plain {
		t.Fatalf("decode plain: got %v, %v", got, err)
	}
	if got.AccountID().Ed25519 != key {
		t.Fatalf("AccountID() mismatch for plain key")
	}

	var muxed [32]byte
	muxed[1] = 2
	m := MuxedAccount{Type: KeyTypeMuxedEd25519, ID: 7, MuxedKey: muxed}
	mb, err := MuxedAccountCodec.Encode(m)
	if err != nil {
		t.Fatalf("encode muxed: %v", err)
	}
	gotM, err := MuxedAccountCodec.Decode(mb)
	if err != nil || gotM != m {
		t.Fatalf("decode muxed: got %v, %v", gotM, err)
	}
	if gotM.AccountID().Ed25519 != muxed {
		t.Fatalf("AccountID() mismatch for muxed key")
	}
}

func TestSignerKeyRoundTrip(t *testing.T) {
	var raw [32]byte
	raw[5] = 9
	cases := []SignerKey{
		{Type: SignerKeyTypeEd25519, Ed25519: raw},
		{Type: SignerKeyTypePreAuthTx, PreAuthTx: raw},
		{Type: SignerKeyTypeHashX, HashX: raw},
		{Type: SignerKeyTypeEd25519SignedP, PayloadSigner: raw, Payload: []byte{1, 2, 3}},
	}
	for _, sk := range cases {
		b, err := SignerKeyCodec.Encode(sk)
		if err != nil {
			t.Fatalf("encode %s: %v", sk.ArmName(), err)
		}
		got, err := SignerKeyCodec.Decode(b)
		if err != nil {
			t.Fatalf("decode %s: %v", sk.ArmName(), err)
		}
		if got.Type != sk.Type || got.ArmName() != sk.ArmName() {
			t.Fatalf("arm mismatch: want %s, got %s", sk.ArmName(), got.ArmName())
		}
	}
}

func TestHashCodecRoundTrip(t *testing.T) {
	var h Hash
	for i := range h {
		h[i] = byte(255 - i)
	}
	b, err := HashCodec.Encode(h)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := HashCodec.Decode(b)
	if err != nil || got != h {
		t.Fatalf("decode: got %v, %v", got, err)
	}
}
