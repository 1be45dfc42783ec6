package xdr

import "testing"

func sampleTransaction() Transaction {
	return Transaction{
		SourceAccount: MuxedAccount{Type: KeyTypeEd25519, Ed25519: [32]byte{1}},
		Fee:           100,
		SeqNum:        42,
		Cond:          Preconditions{Type: PrecondNone},
		Memo:          Memo{Type: MemoTypeNone},
		Operations: []Operation{
			{Body: OperationBody{Type: OpTypeCreateAccount, CreateAccount: CreateAccountOp{Destination: AccountID{Ed25519: [32]byte{2}}, StartingBalance: 1000}}},
		},
		Ext: TransactionExt{V: 0},
	}
}

func TestTransactionRoundTrip(t *testing.T) {
	tx := sampleTransaction()
	b, err := TransactionCodec.Encode(tx)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := TransactionCodec.Decode(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Fee != tx.Fee || got.SeqNum != tx.SeqNum || len(got.Operations) != 1 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestTransactionExtRejectsUnsupportedVersion(t *testing.T) {
	w := NewWriter()
	if err := I32.EncodeFn(w, 1); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := transactionExtCodec.Decode(w.Bytes()); err == nil {
		t.Fatal("expected error for unsupported transaction ext version")
	}
}

func TestDecoratedSignatureRoundTrip(t *testing.T) {
	ds := DecoratedSignature{Hint: [4]byte{1, 2, 3, 4}, Signature: make([]byte, 64)}
	b, err := DecoratedSignatureCodec.Encode(ds)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecoratedSignatureCodec.Decode(b)
	if err != nil || got.Hint != ds.Hint || len(got.Signature) != 64 {
		t.Fatalf("round trip mismatch: %+v, %v", got, err)
	}
}

func TestTransactionEnvelopeRoundTripTx(t *testing.T) {
	tx := sampleTransaction()
	env := TransactionEnvelope{
		Type: EnvelopeTypeTx,
		V1: TransactionV1Envelope{
			Tx:         tx,
			Signatures: []DecoratedSignature{{Hint: [4]byte{9, 9, 9, 9}, Signature: make([]byte, 64)}},
		},
	}
	s, err := TransactionEnvelopeCodec.ToBase64(env)
	if err != nil {
		t.Fatalf("ToBase64: %v", err)
	}
	got, err := TransactionEnvelopeCodec.FromBase64(s)
	if err != nil {
		t.Fatalf("FromBase64: %v", err)
	}
	if got.Type != EnvelopeTypeTx || len(got.V1.Signatures) != 1 {
		t.Fatalf("envelope round trip mismatch: %+v", got)
	}
}

func TestTransactionEnvelopeRoundTripFeeBump(t *testing.T) {
	tx := sampleTransaction()
	inner := TransactionV1Envelope{Tx: tx, Signatures: nil}
	fb := FeeBumpTransaction{
		FeeSource: MuxedAccount{Type: KeyTypeEd25519, Ed25519: [32]byte{5}},
		Fee:       1000,
		InnerTx:   inner,
		Ext:       TransactionExt{V: 0},
	}
	env := TransactionEnvelope{
		Type: EnvelopeTypeTxFeeBump,
		FeeBump: FeeBumpTransactionEnvelope{
			Tx:         fb,
			Signatures: []DecoratedSignature{{Hint: [4]byte{1, 1, 1, 1}, Signature: make([]byte, 64)}},
		},
	}
	b, err := TransactionEnvelopeCodec.Encode(env)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := TransactionEnvelopeCodec.Decode(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Type != EnvelopeTypeTxFeeBump || got.FeeBump.Tx.Fee != 1000 {
		t.Fatalf("fee bump round trip mismatch: %+v", got)
	}
}

func TestFeeBumpTransactionCodecEncodesWithoutEnvelope(t *testing.T) {
	tx := sampleTransaction()
	fb := FeeBumpTransaction{
		FeeSource: MuxedAccount{Type: KeyTypeEd25519, Ed25519: [32]byte{6}},
		Fee:       50,
		InnerTx:   TransactionV1Envelope{Tx: tx},
		Ext:       TransactionExt{V: 0},
	}
	b, err := FeeBumpTransactionCodec.Encode(fb)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := FeeBumpTransactionCodec.Decode(b)
	if err != nil || got.Fee != 50 {
		t.Fatalf("round trip mismatch: %+v, %v", got, err)
	}
}

func TestTransactionOperationsExceedsMax(t *testing.T) {
	tx := sampleTransaction()
	tx.Operations = make([]Operation, MaxOperations+1)
	for i := range tx.Operations {
		tx.Operations[i] = Operation{Body: OperationBody{Type: OpTypeCreateAccount}}
	}
	if _, err := TransactionCodec.Encode(tx); err == nil {
		t.Fatal("expected LengthExceedsMax for too many operations")
	}
}
