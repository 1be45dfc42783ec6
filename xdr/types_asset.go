package xdr

// AssetType discriminates the Asset union.
type AssetType int32

const (
	AssetTypeNative          AssetType = 0
	AssetTypeCreditAlphanum4 AssetType = 1
	AssetTypeCreditAlphanum12 AssetType = 2
)

// Asset is either the chain's native asset or a credit asset identified by
// a 4- or 12-character code and issuing account (spec.md §10 deterministic
// IDs require these to be orderable).
type Asset struct {
	Type    AssetType
	Code4   [4]byte
	Code12  [12]byte
	Issuer  AccountID
}

func (a Asset) ArmName() string {
	switch a.Type {
	case AssetTypeNative:
		return "Native"
	case AssetTypeCreditAlphanum4:
		return "CreditAlphanum4"
	case AssetTypeCreditAlphanum12:
		return "CreditAlphanum12"
	default:
		return "Unknown"
	}
}

// NativeAsset returns the sentinel native-asset value.
func NativeAsset() Asset { return Asset{Type: AssetTypeNative} }

// Code returns the trimmed (NUL-padded) asset code, or "" for native.
func (a Asset) Code() string {
	switch a.Type {
	case AssetTypeCreditAlphanum4:
		return trimCode(a.Code4[:])
	case AssetTypeCreditAlphanum12:
		return trimCode(a.Code12[:])
	default:
		return ""
	}
}

func trimCode(b []byte) string {
	i := len(b)
	for i > 0 && b[i-1] == 0 {
		i--
	}
	return string(b[:i])
}

// NewCreditAsset builds a CreditAlphanum4 or CreditAlphanum12 asset
// depending on code length, rejecting anything else (spec.md InvalidAsset).
func NewCreditAsset(code string, issuer AccountID) (Asset, error) {
	n := len(code)
	switch {
	case n >= 1 && n <= 4:
		var a Asset
		a.Type = AssetTypeCreditAlphanum4
		copy(a.Code4[:], code)
		a.Issuer = issuer
		return a, nil
	case n >= 5 && n <= 12:
		var a Asset
		a.Type = AssetTypeCreditAlphanum12
		copy(a.Code12[:], code)
		a.Issuer = issuer
		return a, nil
	default:
		return Asset{}, newErrf(InvalidValue, "asset code length %d invalid (need 1-12)", n)
	}
}

var AssetCodec = Codec[Asset]{
	EncodeFn: func(w *Writer, v Asset) error {
		if err := I32.EncodeFn(w, int32(v.Type)); err != nil {
			return err
		}
		switch v.Type {
		case AssetTypeNative:
			return nil
		case AssetTypeCreditAlphanum4:
			if err := w.WriteFixedOpaque(v.Code4[:], 4); err != nil {
				return err
			}
			return AccountIDCodec.EncodeFn(w, v.Issuer)
		case AssetTypeCreditAlphanum12:
			if err := w.WriteFixedOpaque(v.Code12[:], 12); err != nil {
				return err
			}
			return AccountIDCodec.EncodeFn(w, v.Issuer)
		default:
			return newErrf(InvalidValue, "unknown asset type %d", v.Type)
		}
	},
	DecodeFn: func(r *Reader) (Asset, error) {
		disc, err := I32.DecodeFn(r)
		if err != nil {
			return Asset{}, err
		}
		var out Asset
		out.Type = AssetType(disc)
		switch out.Type {
		case AssetTypeNative:
			return out, nil
		case AssetTypeCreditAlphanum4:
			b, err := r.ReadFixedOpaque(4)
			if err != nil {
				return Asset{}, err
			}
			copy(out.Code4[:], b)
		case AssetTypeCreditAlphanum12:
			b, err := r.ReadFixedOpaque(12)
			if err != nil {
				return Asset{}, err
			}
			copy(out.Code12[:], b)
		default:
			return Asset{}, newErrf(InvalidUnionDiscriminant, "unknown asset type %d", disc)
		}
		issuer, err := AccountIDCodec.DecodeFn(r)
		if err != nil {
			return Asset{}, err
		}
		out.Issuer = issuer
		return out, nil
	},
}

// AssetLess reports whether a sorts strictly before b under the chain's
// canonical asset ordering: native < alphanum4 < alphanum12, then by
// (code, issuer) (spec.md §4.10).
func AssetLess(a, b Asset) bool {
	if a.Type != b.Type {
		return a.Type < b.Type
	}
	if a.Type == AssetTypeNative {
		return false
	}
	ac, bc := a.Code(), b.Code()
	if ac != bc {
		return ac < bc
	}
	return string(a.Issuer.Ed25519[:]) < string(b.Issuer.Ed25519[:])
}
