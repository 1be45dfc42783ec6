package xdr

import "math/big"

// U128 is the wire split of an unsigned 128-bit integer: hi and lo are both
// unsigned 64-bit limbs (spec.md §3).
type U128 struct {
	Hi uint64
	Lo uint64
}

// I128 is the wire split of a signed 128-bit integer: Hi carries the sign,
// Lo is unsigned (spec.md §9 standardizes on a signed high limb).
type I128 struct {
	Hi int64
	Lo uint64
}

// U256 concatenates four unsigned 64-bit limbs, most-significant first.
type U256 struct {
	HiHi uint64
	HiLo uint64
	LoHi uint64
	LoLo uint64
}

// I256 is U256's signed counterpart: HiHi carries the sign.
type I256 struct {
	HiHi int64
	HiLo uint64
	LoHi uint64
	LoLo uint64
}

var (
	maxU128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	maxI128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	minI128 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	maxU256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	maxI256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(1))
	minI256 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 255))
)

// ToBig converts a U128 to its unsigned big.Int value: (hi<<64)|lo.
func (v U128) ToBig() *big.Int {
	out := new(big.Int).SetUint64(v.Hi)
	out.Lsh(out, 64)
	out.Or(out, new(big.Int).SetUint64(v.Lo))
	return out
}

// U128FromBig splits a non-negative big.Int in [0, 2^128) into limbs.
func U128FromBig(v *big.Int) (U128, error) {
	if v.Sign() < 0 || v.Cmp(maxU128) > 0 {
		return U128{}, newErrf(InvalidValue, "value %s out of range for u128", v.String())
	}
	mask64 := new(big.Int).SetUint64(^uint64(0))
	lo := new(big.Int).And(v, mask64)
	hi := new(big.Int).Rsh(v, 64)
	return U128{Hi: hi.Uint64(), Lo: lo.Uint64()}, nil
}

// ToBig converts an I128 to its signed big.Int value: (signed_hi<<64)|lo.
func (v I128) ToBig() *big.Int {
	out := big.NewInt(v.Hi)
	out.Lsh(out, 64)
	out.Or(out, new(big.Int).SetUint64(v.Lo))
	return out
}

// I128FromBig splits a big.Int in [-2^127, 2^127-1] into a signed high limb
// and unsigned low limb via two's-complement on the combined 128 bits.
func I128FromBig(v *big.Int) (I128, error) {
	if v.Cmp(minI128) < 0 || v.Cmp(maxI128) > 0 {
		return I128{}, newErrf(InvalidValue, "value %s out of range for i128", v.String())
	}
	u := twosComplement(v, 128)
	mask64 := new(big.Int).SetUint64(^uint64(0))
	lo := new(big.Int).And(u, mask64)
	hi := new(big.Int).Rsh(u, 64)
	// hi currently holds the unsigned top 64 bits; reinterpret as signed.
	return I128{Hi: int64(hi.Uint64()), Lo: lo.Uint64()}, nil
}

// ToBig converts a U256 to its unsigned big.Int value.
func (v U256) ToBig() *big.Int {
	out := new(big.Int).SetUint64(v.HiHi)
	out.Lsh(out, 64)
	out.Or(out, new(big.Int).SetUint64(v.HiLo))
	out.Lsh(out, 64)
	out.Or(out, new(big.Int).SetUint64(v.LoHi))
	out.Lsh(out, 64)
	out.Or(out, new(big.Int).SetUint64(v.LoLo))
	return out
}

// U256FromBig splits a non-negative big.Int in [0, 2^256) into limbs.
func U256FromBig(v *big.Int) (U256, error) {
	if v.Sign() < 0 || v.Cmp(maxU256) > 0 {
		return U256{}, newErrf(InvalidValue, "value %s out of range for u256", v.String())
	}
	limbs := splitLimbs(v, 4)
	return U256{HiHi: limbs[0], HiLo: limbs[1], LoHi: limbs[2], LoLo: limbs[3]}, nil
}

// ToBig converts an I256 to its signed big.Int value (HiHi carries the sign).
func (v I256) ToBig() *big.Int {
	out := big.NewInt(v.HiHi)
	out.Lsh(out, 64)
	out.Or(out, new(big.Int).SetUint64(v.HiLo))
	out.Lsh(out, 64)
	out.Or(out, new(big.Int).SetUint64(v.LoHi))
	out.Lsh(out, 64)
	out.Or(out, new(big.Int).SetUint64(v.LoLo))
	return out
}

// I256FromBig splits a big.Int in [-2^255, 2^255-1] into a signed top limb
// and three unsigned limbs via two's-complement on the combined 256 bits.
func I256FromBig(v *big.Int) (I256, error) {
	if v.Cmp(minI256) < 0 || v.Cmp(maxI256) > 0 {
		return I256{}, newErrf(InvalidValue, "value %s out of range for i256", v.String())
	}
	u := twosComplement(v, 256)
	limbs := splitLimbs(u, 4)
	return I256{HiHi: int64(limbs[0]), HiLo: limbs[1], LoHi: limbs[2], LoLo: limbs[3]}, nil
}

// twosComplement returns the non-negative bits-wide two's-complement
// representation of v (which may be negative) as an unsigned big.Int.
func twosComplement(v *big.Int, bits uint) *big.Int {
	if v.Sign() >= 0 {
		return new(big.Int).Set(v)
	}
	mod := new(big.Int).Lsh(big.NewInt(1), bits)
	return new(big.Int).Add(mod, v)
}

// splitLimbs splits the low `count*64` bits of v (most-significant first)
// into count unsigned 64-bit limbs.
func splitLimbs(v *big.Int, count int) []uint64 {
	mask64 := new(big.Int).SetUint64(^uint64(0))
	limbs := make([]uint64, count)
	rem := new(big.Int).Set(v)
	for i := count - 1; i >= 0; i-- {
		limbs[i] = new(big.Int).And(rem, mask64).Uint64()
		rem = new(big.Int).Rsh(rem, 64)
	}
	return limbs
}

// U128Codec, I128Codec, U256Codec, I256Codec are the XDR codecs for the
// two- and four-limb large-integer wire types (spec.md §3).
var (
	U128Codec = Codec[U128]{
		EncodeFn: func(w *Writer, v U128) error {
			if err := w.WriteU64(v.Hi); err != nil {
				return err
			}
			return w.WriteU64(v.Lo)
		},
		DecodeFn: func(r *Reader) (U128, error) {
			hi, err := r.ReadU64()
			if err != nil {
				return U128{}, err
			}
			lo, err := r.ReadU64()
			if err != nil {
				return U128{}, err
			}
			return U128{Hi: hi, Lo: lo}, nil
		},
	}
	I128Codec = Codec[I128]{
		EncodeFn: func(w *Writer, v I128) error {
			if err := w.WriteI64(v.Hi); err != nil {
				return err
			}
			return w.WriteU64(v.Lo)
		},
		DecodeFn: func(r *Reader) (I128, error) {
			hi, err := r.ReadI64()
			if err != nil {
				return I128{}, err
			}
			lo, err := r.ReadU64()
			if err != nil {
				return I128{}, err
			}
			return I128{Hi: hi, Lo: lo}, nil
		},
	}
	U256Codec = Codec[U256]{
		EncodeFn: func(w *Writer, v U256) error {
			for _, limb := range []uint64{v.HiHi, v.HiLo, v.LoHi, v.LoLo} {
				if err := w.WriteU64(limb); err != nil {
					return err
				}
			}
			return nil
		},
		DecodeFn: func(r *Reader) (U256, error) {
			limbs := make([]uint64, 4)
			for i := range limbs {
				v, err := r.ReadU64()
				if err != nil {
					return U256{}, err
				}
				limbs[i] = v
			}
			return U256{HiHi: limbs[0], HiLo: limbs[1], LoHi: limbs[2], LoLo: limbs[3]}, nil
		},
	}
	I256Codec = Codec[I256]{
		EncodeFn: func(w *Writer, v I256) error {
			if err := w.WriteI64(v.HiHi); err != nil {
				return err
			}
			for _, limb := range []uint64{v.HiLo, v.LoHi, v.LoLo} {
				if err := w.WriteU64(limb); err != nil {
					return err
				}
			}
			return nil
		},
		DecodeFn: func(r *Reader) (I256, error) {
			hiHi, err := r.ReadI64()
			if err != nil {
				return I256{}, err
			}
			limbs := make([]uint64, 3)
			for i := range limbs {
				v, err := r.ReadU64()
				if err != nil {
					return I256{}, err
				}
				limbs[i] = v
			}
			return I256{HiHi: hiHi, HiLo: limbs[0], LoHi: limbs[1], LoLo: limbs[2]}, nil
		},
	}
)
