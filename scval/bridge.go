// Package scval bridges native Go values and xdr.SCVal, the wire
// representation of Soroban contract arguments and results. There is no
// teacher or pack file that performs this kind of dynamic-typed bridge; the
// dispatch is a type switch, matching the teacher's general preference for
// explicit branching over reflection-heavy generics elsewhere in the
// codebase (spec.md §9 "native value bridge").
package scval

import (
	"fmt"
	"math/big"

	"corexdr/xdr"
)

// FromNative converts a native Go value into its xdr.SCVal wire form. The
// supported input types are: nil, bool, uint32, int32, uint64, int64,
// *big.Int (encoded as the smallest of U128/I128/U256/I256 that fits),
// []byte, string, []any (-> Vec), map[string]any (-> Map keyed by symbol),
// and xdr.SCAddress (-> Address).
func FromNative(v any) (xdr.SCVal, error) {
	switch val := v.(type) {
	case nil:
		return xdr.SCVal{Type: xdr.SCVVoid}, nil
	case bool:
		return xdr.SCVal{Type: xdr.SCVBool, B: val}, nil
	case uint32:
		return xdr.SCVal{Type: xdr.SCVU32, U32: val}, nil
	case int32:
		return xdr.SCVal{Type: xdr.SCVI32, I32: val}, nil
	case uint64:
		return xdr.SCVal{Type: xdr.SCVU64, U64: val}, nil
	case int64:
		return xdr.SCVal{Type: xdr.SCVI64, I64: val}, nil
	case *big.Int:
		return bigIntToSCVal(val)
	case []byte:
		return xdr.SCVal{Type: xdr.SCVBytes, Bytes: val}, nil
	case string:
		return xdr.SCVal{Type: xdr.SCVSymbol, Sym: val}, nil
	case xdr.SCAddress:
		return xdr.SCVal{Type: xdr.SCVAddress, Address: val}, nil
	case []any:
		vec := make([]xdr.SCVal, 0, len(val))
		for i, elem := range val {
			sv, err := FromNative(elem)
			if err != nil {
				return xdr.SCVal{}, fmt.Errorf("scval: vec element %d: %w", i, err)
			}
			vec = append(vec, sv)
		}
		return xdr.SCVal{Type: xdr.SCVVec, Vec: vec}, nil
	case map[string]any:
		entries := make([]xdr.SCMapEntry, 0, len(val))
		for k, mv := range val {
			sv, err := FromNative(mv)
			if err != nil {
				return xdr.SCVal{}, fmt.Errorf("scval: map key %q: %w", k, err)
			}
			entries = append(entries, xdr.SCMapEntry{
				Key: xdr.SCVal{Type: xdr.SCVSymbol, Sym: k},
				Val: sv,
			})
		}
		return xdr.SCVal{Type: xdr.SCVMap, Map: entries}, nil
	default:
		return xdr.SCVal{}, fmt.Errorf("scval: unsupported native type %T", v)
	}
}

// FromNativeTyped converts v into its xdr.SCVal wire form the same way
// FromNative does, except hint overrides the default type dispatch. hint is
// one of u32, i32, u64, i64, u128, i128, u256, i256, bool, void, bytes,
// string, symbol, or address; an empty hint falls back to FromNative's
// default mapping. A string hint forces SCVString where the default would
// pick Symbol; a symbol hint also requires a string input.
func FromNativeTyped(v any, hint string) (xdr.SCVal, error) {
	switch hint {
	case "":
		return FromNative(v)
	case "u32":
		n, err := toInt64(v)
		if err != nil {
			return xdr.SCVal{}, err
		}
		return xdr.SCVal{Type: xdr.SCVU32, U32: uint32(n)}, nil
	case "i32":
		n, err := toInt64(v)
		if err != nil {
			return xdr.SCVal{}, err
		}
		return xdr.SCVal{Type: xdr.SCVI32, I32: int32(n)}, nil
	case "u64":
		n, err := toInt64(v)
		if err != nil {
			return xdr.SCVal{}, err
		}
		return xdr.SCVal{Type: xdr.SCVU64, U64: uint64(n)}, nil
	case "i64":
		n, err := toInt64(v)
		if err != nil {
			return xdr.SCVal{}, err
		}
		return xdr.SCVal{Type: xdr.SCVI64, I64: n}, nil
	case "u128":
		b, err := toBigInt(v)
		if err != nil {
			return xdr.SCVal{}, err
		}
		u, err := xdr.U128FromBig(b)
		if err != nil {
			return xdr.SCVal{}, fmt.Errorf("scval: %w", err)
		}
		return xdr.SCVal{Type: xdr.SCVU128, U128: u}, nil
	case "i128":
		b, err := toBigInt(v)
		if err != nil {
			return xdr.SCVal{}, err
		}
		i, err := xdr.I128FromBig(b)
		if err != nil {
			return xdr.SCVal{}, fmt.Errorf("scval: %w", err)
		}
		return xdr.SCVal{Type: xdr.SCVI128, I128: i}, nil
	case "u256":
		b, err := toBigInt(v)
		if err != nil {
			return xdr.SCVal{}, err
		}
		u, err := xdr.U256FromBig(b)
		if err != nil {
			return xdr.SCVal{}, fmt.Errorf("scval: %w", err)
		}
		return xdr.SCVal{Type: xdr.SCVU256, U256: u}, nil
	case "i256":
		b, err := toBigInt(v)
		if err != nil {
			return xdr.SCVal{}, err
		}
		i, err := xdr.I256FromBig(b)
		if err != nil {
			return xdr.SCVal{}, fmt.Errorf("scval: %w", err)
		}
		return xdr.SCVal{Type: xdr.SCVI256, I256: i}, nil
	case "bool":
		b, ok := v.(bool)
		if !ok {
			return xdr.SCVal{}, fmt.Errorf("scval: hint bool requires a bool, got %T", v)
		}
		return xdr.SCVal{Type: xdr.SCVBool, B: b}, nil
	case "void":
		return xdr.SCVal{Type: xdr.SCVVoid}, nil
	case "bytes":
		b, ok := v.([]byte)
		if !ok {
			return xdr.SCVal{}, fmt.Errorf("scval: hint bytes requires []byte, got %T", v)
		}
		return xdr.SCVal{Type: xdr.SCVBytes, Bytes: b}, nil
	case "string":
		s, ok := v.(string)
		if !ok {
			return xdr.SCVal{}, fmt.Errorf("scval: hint string requires a string, got %T", v)
		}
		return xdr.SCVal{Type: xdr.SCVString, Str: s}, nil
	case "symbol":
		s, ok := v.(string)
		if !ok {
			return xdr.SCVal{}, fmt.Errorf("scval: hint symbol requires a string, got %T", v)
		}
		return xdr.SCVal{Type: xdr.SCVSymbol, Sym: s}, nil
	case "address":
		a, ok := v.(xdr.SCAddress)
		if !ok {
			return xdr.SCVal{}, fmt.Errorf("scval: hint address requires xdr.SCAddress, got %T", v)
		}
		return xdr.SCVal{Type: xdr.SCVAddress, Address: a}, nil
	default:
		return xdr.SCVal{}, fmt.Errorf("scval: unknown type hint %q", hint)
	}
}

func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint32:
		return int64(n), nil
	case uint64:
		return int64(n), nil
	case *big.Int:
		return n.Int64(), nil
	default:
		return 0, fmt.Errorf("scval: cannot convert %T to an integer", v)
	}
}

func toBigInt(v any) (*big.Int, error) {
	switch n := v.(type) {
	case *big.Int:
		return n, nil
	case int:
		return big.NewInt(int64(n)), nil
	case int32:
		return big.NewInt(int64(n)), nil
	case int64:
		return big.NewInt(n), nil
	case uint32:
		return new(big.Int).SetUint64(uint64(n)), nil
	case uint64:
		return new(big.Int).SetUint64(n), nil
	default:
		return nil, fmt.Errorf("scval: cannot convert %T to *big.Int", v)
	}
}

func bigIntToSCVal(v *big.Int) (xdr.SCVal, error) {
	if v.Sign() >= 0 {
		if u, err := xdr.U128FromBig(v); err == nil {
			return xdr.SCVal{Type: xdr.SCVU128, U128: u}, nil
		}
		if u, err := xdr.U256FromBig(v); err == nil {
			return xdr.SCVal{Type: xdr.SCVU256, U256: u}, nil
		}
		return xdr.SCVal{}, fmt.Errorf("scval: %s exceeds U256 range", v)
	}
	if i, err := xdr.I128FromBig(v); err == nil {
		return xdr.SCVal{Type: xdr.SCVI128, I128: i}, nil
	}
	if i, err := xdr.I256FromBig(v); err == nil {
		return xdr.SCVal{Type: xdr.SCVI256, I256: i}, nil
	}
	return xdr.SCVal{}, fmt.Errorf("scval: %s exceeds I256 range", v)
}

// ToNative converts an xdr.SCVal back into a native Go value using the
// inverse mapping of FromNative. Vec becomes []any, Map becomes
// map[string]any keyed by each entry's symbol/string key.
func ToNative(v xdr.SCVal) (any, error) {
	switch v.Type {
	case xdr.SCVVoid:
		return nil, nil
	case xdr.SCVBool:
		return v.B, nil
	case xdr.SCVU32:
		return v.U32, nil
	case xdr.SCVI32:
		return v.I32, nil
	case xdr.SCVU64:
		return v.U64, nil
	case xdr.SCVI64:
		return v.I64, nil
	case xdr.SCVTimepoint:
		return v.Timepoint, nil
	case xdr.SCVDuration:
		return v.Duration, nil
	case xdr.SCVU128:
		return v.U128.ToBig(), nil
	case xdr.SCVI128:
		return v.I128.ToBig(), nil
	case xdr.SCVU256:
		return v.U256.ToBig(), nil
	case xdr.SCVI256:
		return v.I256.ToBig(), nil
	case xdr.SCVBytes:
		return v.Bytes, nil
	case xdr.SCVString:
		return v.Str, nil
	case xdr.SCVSymbol:
		return v.Sym, nil
	case xdr.SCVAddress:
		return v.Address, nil
	case xdr.SCVVec:
		out := make([]any, 0, len(v.Vec))
		for i, e := range v.Vec {
			nv, err := ToNative(e)
			if err != nil {
				return nil, fmt.Errorf("scval: vec element %d: %w", i, err)
			}
			out = append(out, nv)
		}
		return out, nil
	case xdr.SCVMap:
		out := make(map[string]any, len(v.Map))
		for _, e := range v.Map {
			key, err := mapKeyString(e.Key)
			if err != nil {
				return nil, err
			}
			nv, err := ToNative(e.Val)
			if err != nil {
				return nil, fmt.Errorf("scval: map value for key %q: %w", key, err)
			}
			out[key] = nv
		}
		return out, nil
	default:
		return nil, fmt.Errorf("scval: unsupported SCVal type %d", v.Type)
	}
}

func mapKeyString(k xdr.SCVal) (string, error) {
	switch k.Type {
	case xdr.SCVSymbol:
		return k.Sym, nil
	case xdr.SCVString:
		return k.Str, nil
	default:
		return "", fmt.Errorf("scval: map key must be symbol or string, got type %d", k.Type)
	}
}
