package xdr

import (
	"math/big"
	"testing"
)

func TestU128BigRoundTrip(t *testing.T) {
	cases := []string{"0", "1", "18446744073709551615", "18446744073709551616", "340282366920938463463374607431768211455"}
	for _, s := range cases {
		v, _ := new(big.Int).SetString(s, 10)
		u, err := U128FromBig(v)
		if err != nil {
			t.Fatalf("U128FromBig(%s): %v", s, err)
		}
		if u.ToBig().Cmp(v) != 0 {
			t.Fatalf("round trip mismatch for %s: got %s", s, u.ToBig())
		}
		b, err := U128Codec.Encode(u)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		got, err := U128Codec.Decode(b)
		if err != nil || got != u {
			t.Fatalf("wire round trip mismatch for %s", s)
		}
	}
}

func TestU128FromBigRejectsOutOfRange(t *testing.T) {
	if _, err := U128FromBig(big.NewInt(-1)); err == nil {
		t.Fatal("expected error for negative value")
	}
	tooBig := new(big.Int).Lsh(big.NewInt(1), 128)
	if _, err := U128FromBig(tooBig); err == nil {
		t.Fatal("expected error for value >= 2^128")
	}
}

func TestI128BigRoundTrip(t *testing.T) {
	cases := []string{"0", "-1", "170141183460469231731687303715884105727", "-170141183460469231731687303715884105728", "-12345678901234567890"}
	for _, s := range cases {
		v, _ := new(big.Int).SetString(s, 10)
		i, err := I128FromBig(v)
		if err != nil {
			t.Fatalf("I128FromBig(%s): %v", s, err)
		}
		if i.ToBig().Cmp(v) != 0 {
			t.Fatalf("round trip mismatch for %s: got %s", s, i.ToBig())
		}
	}
}

func TestI128FromBigRejectsOutOfRange(t *testing.T) {
	tooBig := new(big.Int).Lsh(big.NewInt(1), 127)
	if _, err := I128FromBig(tooBig); err == nil {
		t.Fatal("expected error for value == 2^127")
	}
	tooSmall := new(big.Int).Neg(new(big.Int).Add(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1)))
	if _, err := I128FromBig(tooSmall); err == nil {
		t.Fatal("expected error for value < -2^127")
	}
}

func TestU256BigRoundTrip(t *testing.T) {
	maxU256 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	cases := []*big.Int{big.NewInt(0), big.NewInt(1), maxU256, new(big.Int).Lsh(big.NewInt(1), 200)}
	for _, v := range cases {
		u, err := U256FromBig(v)
		if err != nil {
			t.Fatalf("U256FromBig(%s): %v", v, err)
		}
		if u.ToBig().Cmp(v) != 0 {
			t.Fatalf("round trip mismatch for %s: got %s", v, u.ToBig())
		}
		b, err := U256Codec.Encode(u)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		got, err := U256Codec.Decode(b)
		if err != nil || got != u {
			t.Fatalf("wire round trip mismatch for %s", v)
		}
	}
}

func TestI256BigRoundTrip(t *testing.T) {
	maxI256 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(1))
	minI256 := new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 255))
	cases := []*big.Int{big.NewInt(0), big.NewInt(-1), maxI256, minI256}
	for _, v := range cases {
		i, err := I256FromBig(v)
		if err != nil {
			t.Fatalf("I256FromBig(%s): %v", v, err)
		}
		if i.ToBig().Cmp(v) != 0 {
			t.Fatalf("round trip mismatch for %s: got %s", v, i.ToBig())
		}
		b, err := I256Codec.Encode(i)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		got, err := I256Codec.Decode(b)
		if err != nil || got != i {
			t.Fatalf("wire round trip mismatch for %s", v)
		}
	}
}

func TestI256FromBigRejectsOutOfRange(t *testing.T) {
	tooBig := new(big.Int).Lsh(big.NewInt(1), 255)
	if _, err := I256FromBig(tooBig); err == nil {
		t.Fatal("expected error for value == 2^255")
	}
}
