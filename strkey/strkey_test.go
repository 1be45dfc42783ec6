package strkey

import "testing"

func TestAccountIDRoundTrip(t *testing.T) {
	var pub [32]byte
	for i := range pub {
		pub[i] = byte(i * 3)
	}
	s := EncodeAccountID(pub)
	if len(s) == 0 || s[0] != 'G' {
		t.Fatalf("expected account id to start with G, got %q", s)
	}
	got, err := DecodeAccountID(s)
	if err != nil {
		t.Fatalf("DecodeAccountID: %v", err)
	}
	if got != pub {
		t.Fatalf("round trip mismatch: got %v want %v", got, pub)
	}
}

func TestSeedRoundTrip(t *testing.T) {
	var seed [32]byte
	for i := range seed {
		seed[i] = byte(255 - i)
	}
	s := EncodeSeed(seed)
	if s[0] != 'S' {
		t.Fatalf("expected seed to start with S, got %q", s)
	}
	got, err := DecodeSeed(s)
	if err != nil || got != seed {
		t.Fatalf("round trip mismatch: %v, %v", got, err)
	}
}

func TestContractRoundTrip(t *testing.T) {
	var id [32]byte
	id[0] = 1
	s := EncodeContract(id)
	if s[0] != 'C' {
		t.Fatalf("expected contract id to start with C, got %q", s)
	}
	got, err := DecodeContract(s)
	if err != nil || got != id {
		t.Fatalf("round trip mismatch: %v, %v", got, err)
	}
}

func TestDecodeRejectsChecksumMismatch(t *testing.T) {
	var pub [32]byte
	pub[0] = 42
	s := EncodeAccountID(pub)
	flipped := []byte(s)
	// Flip a character inside the trailing checksum to corrupt it.
	idx := len(flipped) - 3
	if flipped[idx] == 'A' {
		flipped[idx] = 'B'
	} else {
		flipped[idx] = 'A'
	}
	if _, err := DecodeAccountID(string(flipped)); err == nil {
		t.Fatal("expected checksum mismatch on corrupted string")
	} else if serr, ok := err.(*Error); !ok || serr.Kind != ErrChecksumMismatch {
		t.Fatalf("expected ErrChecksumMismatch, got %v", err)
	}
}

func TestDecodeRejectsWrongVersion(t *testing.T) {
	var id [32]byte
	s := EncodeContract(id)
	if _, err := DecodeAccountID(s); err == nil {
		t.Fatal("expected invalid version decoding a contract address as an account id")
	} else if serr, ok := err.(*Error); !ok || serr.Kind != ErrInvalidVersion {
		t.Fatalf("expected ErrInvalidVersion, got %v", err)
	}
}

func TestDecodeRejectsInvalidBase32(t *testing.T) {
	if _, err := DecodeAccountID("not-valid-base32!!!"); err == nil {
		t.Fatal("expected invalid base32 error")
	}
}

func TestIsValid(t *testing.T) {
	var pub [32]byte
	s := EncodeAccountID(pub)
	if !IsValid(VersionAccountID, s) {
		t.Fatal("expected valid account id to report IsValid true")
	}
	if IsValid(VersionContract, s) {
		t.Fatal("expected account id string to fail contract version check")
	}
}

func TestMuxedAccountRoundTrip(t *testing.T) {
	var key [32]byte
	for i := range key {
		key[i] = byte(i)
	}
	s := EncodeMuxedAccount(key, 12345)
	if s[0] != 'M' {
		t.Fatalf("expected muxed account address to start with M, got %q", s)
	}
	gotKey, gotID, err := DecodeMuxedAccount(s)
	if err != nil {
		t.Fatalf("DecodeMuxedAccount: %v", err)
	}
	if gotKey != key || gotID != 12345 {
		t.Fatalf("round trip mismatch: got key=%x id=%d", gotKey, gotID)
	}
}

func TestSignedPayloadRoundTrip(t *testing.T) {
	var key [32]byte
	for i := range key {
		key[i] = byte(i + 1)
	}
	payload := []byte{1, 2, 3, 4, 5}
	s, err := EncodeSignedPayload(key, payload)
	if err != nil {
		t.Fatalf("EncodeSignedPayload: %v", err)
	}
	if s[0] != 'P' {
		t.Fatalf("expected signed payload address to start with P, got %q", s)
	}
	gotKey, gotPayload, err := DecodeSignedPayload(s)
	if err != nil {
		t.Fatalf("DecodeSignedPayload: %v", err)
	}
	if gotKey != key || string(gotPayload) != string(payload) {
		t.Fatalf("round trip mismatch: key=%x payload=%v", gotKey, gotPayload)
	}
}

func TestSignedPayloadRejectsOversizedPayload(t *testing.T) {
	var key [32]byte
	huge := make([]byte, MaxSignedPayloadBytes+1)
	if _, err := EncodeSignedPayload(key, huge); err == nil {
		t.Fatal("expected oversized signed payload to be rejected")
	}
}

func TestPreAuthTxAndHashXRoundTrip(t *testing.T) {
	var hash [32]byte
	for i := range hash {
		hash[i] = byte(i + 2)
	}
	tStr := EncodePreAuthTx(hash)
	gotHash, err := DecodePreAuthTx(tStr)
	if err != nil {
		t.Fatalf("DecodePreAuthTx: %v", err)
	}
	if gotHash != hash {
		t.Fatalf("pre-auth tx round trip mismatch: got %x want %x", gotHash, hash)
	}

	xStr := EncodeHashX(hash)
	gotX, err := DecodeHashX(xStr)
	if err != nil {
		t.Fatalf("DecodeHashX: %v", err)
	}
	if gotX != hash {
		t.Fatalf("hash-x round trip mismatch: got %x want %x", gotX, hash)
	}
}

func TestIsValidSignerKeyAcceptsAllSignerVariants(t *testing.T) {
	var key [32]byte
	var hash [32]byte
	accountID := EncodeAccountID(key)
	preAuthTx := EncodePreAuthTx(hash)
	hashX := EncodeHashX(hash)
	signedPayload, err := EncodeSignedPayload(key, []byte{1, 2, 3})
	if err != nil {
		t.Fatalf("EncodeSignedPayload: %v", err)
	}
	for _, s := range []string{accountID, preAuthTx, hashX, signedPayload} {
		if !IsValidSignerKey(s) {
			t.Fatalf("expected %q to be a valid signer key", s)
		}
	}
}

func TestIsValidSignerKeyRejectsMuxedAndContractAddresses(t *testing.T) {
	var key [32]byte
	muxed := EncodeMuxedAccount(key, 1)
	contract := EncodeContract(key)
	for _, s := range []string{muxed, contract} {
		if IsValidSignerKey(s) {
			t.Fatalf("expected %q not to be a valid signer key", s)
		}
	}
}

func TestDecodeMuxedAccountRejectsWrongLength(t *testing.T) {
	var key [32]byte
	s := EncodeAccountID(key)
	if _, _, err := DecodeMuxedAccount(s); err == nil {
		t.Fatal("expected a plain account id to fail muxed account decoding")
	}
}
