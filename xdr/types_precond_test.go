package xdr

import "testing"

func TestPreconditionsRoundTripNoneAndTime(t *testing.T) {
	none := Preconditions{Type: PrecondNone}
	b, err := PreconditionsCodec.Encode(none)
	if err != nil {
		t.Fatalf("encode none: %v", err)
	}
	got, err := PreconditionsCodec.Decode(b)
	if err != nil || got.Type != PrecondNone {
		t.Fatalf("decode none: %v, %v", got, err)
	}

	tb := TimeBounds{MinTime: 100, MaxTime: 200}
	withTime := Preconditions{Type: PrecondTime, TimeBounds: &tb}
	tbytes, err := PreconditionsCodec.Encode(withTime)
	if err != nil {
		t.Fatalf("encode time: %v", err)
	}
	gotTime, err := PreconditionsCodec.Decode(tbytes)
	if err != nil {
		t.Fatalf("decode time: %v", err)
	}
	if gotTime.TimeBounds == nil || *gotTime.TimeBounds != tb {
		t.Fatalf("time bounds mismatch: %+v", gotTime.TimeBounds)
	}
}

func TestPreconditionsV2RoundTrip(t *testing.T) {
	lb := LedgerBounds{MinLedger: 5, MaxLedger: 50}
	minSeq := int64(42)
	v2 := PreconditionsV2{
		LedgerBounds:    &lb,
		MinSeqNum:       &minSeq,
		MinSeqAge:       10,
		MinSeqLedgerGap: 3,
		ExtraSigners: []SignerKey{
			{Type: SignerKeyTypeEd25519, Ed25519: [32]byte{1}},
		},
	}
	p := Preconditions{Type: PrecondV2, V2: v2}
	b, err := PreconditionsCodec.Encode(p)
	if err != nil {
		t.Fatalf("encode v2: %v", err)
	}
	got, err := PreconditionsCodec.Decode(b)
	if err != nil {
		t.Fatalf("decode v2: %v", err)
	}
	if got.V2.LedgerBounds == nil || *got.V2.LedgerBounds != lb {
		t.Fatalf("ledger bounds mismatch: %+v", got.V2.LedgerBounds)
	}
	if got.V2.MinSeqNum == nil || *got.V2.MinSeqNum != minSeq {
		t.Fatalf("min seq num mismatch: %+v", got.V2.MinSeqNum)
	}
	if len(got.V2.ExtraSigners) != 1 || got.V2.ExtraSigners[0].Type != SignerKeyTypeEd25519 {
		t.Fatalf("extra signers mismatch: %+v", got.V2.ExtraSigners)
	}
}

func TestPreconditionsV2ExtraSignersExceedsMax(t *testing.T) {
	v2 := PreconditionsV2{
		ExtraSigners: []SignerKey{
			{Type: SignerKeyTypeEd25519},
			{Type: SignerKeyTypeEd25519},
			{Type: SignerKeyTypeEd25519},
		},
	}
	p := Preconditions{Type: PrecondV2, V2: v2}
	if _, err := PreconditionsCodec.Encode(p); err == nil {
		t.Fatal("expected LengthExceedsMax for more than MaxExtraSigners")
	}
}
