package xdr

// SCValType discriminates SCVal, the tagged-union carrier for contract
// arguments and results (spec.md Glossary "SCVal"). This is the subset of
// arms scval.Bridge (C9) and sorobanauth (C11) require; schema entries this
// repo does not exercise (SCV_ERROR, SCV_CONTRACT_INSTANCE, ledger-key
// nonce/instance arms) are left to a future schema-table expansion.
type SCValType int32

const (
	SCVBool      SCValType = 0
	SCVVoid      SCValType = 1
	SCVU32       SCValType = 3
	SCVI32       SCValType = 4
	SCVU64       SCValType = 5
	SCVI64       SCValType = 6
	SCVTimepoint SCValType = 7
	SCVDuration  SCValType = 8
	SCVU128      SCValType = 9
	SCVI128      SCValType = 10
	SCVU256      SCValType = 11
	SCVI256      SCValType = 12
	SCVBytes     SCValType = 13
	SCVString    SCValType = 14
	SCVSymbol    SCValType = 15
	SCVVec       SCValType = 16
	SCVMap       SCValType = 17
	SCVAddress   SCValType = 18
)

// SCAddressType discriminates SCAddress.
type SCAddressType int32

const (
	SCAddressTypeAccount  SCAddressType = 0
	SCAddressTypeContract SCAddressType = 1
)

// SCAddress identifies either a classic account or a contract as a contract
// invocation participant.
type SCAddress struct {
	Type       SCAddressType
	AccountID  AccountID
	ContractID [32]byte
}

func (a SCAddress) ArmName() string {
	if a.Type == SCAddressTypeContract {
		return "Contract"
	}
	return "Account"
}

var SCAddressCodec = Codec[SCAddress]{
	EncodeFn: func(w *Writer, v SCAddress) error {
		if err := I32.EncodeFn(w, int32(v.Type)); err != nil {
			return err
		}
		switch v.Type {
		case SCAddressTypeAccount:
			return AccountIDCodec.EncodeFn(w, v.AccountID)
		case SCAddressTypeContract:
			return w.WriteFixedOpaque(v.ContractID[:], 32)
		default:
			return newErrf(InvalidValue, "unknown SCAddress type %d", v.Type)
		}
	},
	DecodeFn: func(r *Reader) (SCAddress, error) {
		disc, err := I32.DecodeFn(r)
		if err != nil {
			return SCAddress{}, err
		}
		var out SCAddress
		out.Type = SCAddressType(disc)
		switch out.Type {
		case SCAddressTypeAccount:
			acc, err := AccountIDCodec.DecodeFn(r)
			if err != nil {
				return SCAddress{}, err
			}
			out.AccountID = acc
		case SCAddressTypeContract:
			b, err := r.ReadFixedOpaque(32)
			if err != nil {
				return SCAddress{}, err
			}
			copy(out.ContractID[:], b)
		default:
			return SCAddress{}, newErrf(InvalidUnionDiscriminant, "unknown SCAddress type %d", disc)
		}
		return out, nil
	},
}

// SCVal is the tagged-union value carrier for contract arguments and
// results. Vec and Map recurse into SCVal itself; the codec below is
// realized lazily (xdr.Lazy) to resolve that cycle without eager
// construction (spec.md §9).
type SCVal struct {
	Type      SCValType
	B         bool
	U32       uint32
	I32       int32
	U64       uint64
	I64       int64
	Timepoint uint64
	Duration  uint64
	U128      U128
	I128      I128
	U256      U256
	I256      I256
	Bytes     []byte
	Str       string
	Sym       string
	Vec       []SCVal
	Map       []SCMapEntry
	Address   SCAddress
}

// SCMapEntry is one key/value pair of an SCV_MAP value.
type SCMapEntry struct {
	Key SCVal
	Val SCVal
}

func (v SCVal) ArmName() string {
	switch v.Type {
	case SCVBool:
		return "Bool"
	case SCVVoid:
		return "Void"
	case SCVU32:
		return "U32"
	case SCVI32:
		return "I32"
	case SCVU64:
		return "U64"
	case SCVI64:
		return "I64"
	case SCVTimepoint:
		return "Timepoint"
	case SCVDuration:
		return "Duration"
	case SCVU128:
		return "U128"
	case SCVI128:
		return "I128"
	case SCVU256:
		return "U256"
	case SCVI256:
		return "I256"
	case SCVBytes:
		return "Bytes"
	case SCVString:
		return "String"
	case SCVSymbol:
		return "Symbol"
	case SCVVec:
		return "Vec"
	case SCVMap:
		return "Map"
	case SCVAddress:
		return "Address"
	default:
		return "Unknown"
	}
}

// MaxSymbolBytes bounds SCV_SYMBOL per the schema's SCSymbol typedef.
const MaxSymbolBytes = 32

var scValCodec = Lazy("SCVal", func() Codec[SCVal] {
	return Codec[SCVal]{
		EncodeFn: encodeSCVal,
		DecodeFn: decodeSCVal,
	}
})

// SCValCodec is the public codec for SCVal.
func SCValCodec() Codec[SCVal] { return scValCodec }

func encodeSCVal(w *Writer, v SCVal) error {
	if err := I32.EncodeFn(w, int32(v.Type)); err != nil {
		return err
	}
	switch v.Type {
	case SCVBool:
		return w.WriteBool(v.B)
	case SCVVoid:
		return nil
	case SCVU32:
		return w.WriteU32(v.U32)
	case SCVI32:
		return w.WriteI32(v.I32)
	case SCVU64:
		return w.WriteU64(v.U64)
	case SCVI64:
		return w.WriteI64(v.I64)
	case SCVTimepoint:
		return w.WriteU64(v.Timepoint)
	case SCVDuration:
		return w.WriteU64(v.Duration)
	case SCVU128:
		return U128Codec.EncodeFn(w, v.U128)
	case SCVI128:
		return I128Codec.EncodeFn(w, v.I128)
	case SCVU256:
		return U256Codec.EncodeFn(w, v.U256)
	case SCVI256:
		return I256Codec.EncodeFn(w, v.I256)
	case SCVBytes:
		return w.WriteVarOpaque(v.Bytes, 0)
	case SCVString:
		return w.WriteString(v.Str, 0)
	case SCVSymbol:
		return w.WriteString(v.Sym, MaxSymbolBytes)
	case SCVVec:
		done, err := w.enterDepth()
		if err != nil {
			return err
		}
		defer done()
		if err := w.WriteArrayLen(len(v.Vec), 0); err != nil {
			return err
		}
		for _, e := range v.Vec {
			if err := encodeSCVal(w, e); err != nil {
				return err
			}
		}
		return nil
	case SCVMap:
		done, err := w.enterDepth()
		if err != nil {
			return err
		}
		defer done()
		if err := w.WriteArrayLen(len(v.Map), 0); err != nil {
			return err
		}
		for _, e := range v.Map {
			if err := encodeSCVal(w, e.Key); err != nil {
				return err
			}
			if err := encodeSCVal(w, e.Val); err != nil {
				return err
			}
		}
		return nil
	case SCVAddress:
		return SCAddressCodec.EncodeFn(w, v.Address)
	default:
		return newErrf(InvalidValue, "unknown SCVal type %d", v.Type)
	}
}

func decodeSCVal(r *Reader) (SCVal, error) {
	disc, err := I32.DecodeFn(r)
	if err != nil {
		return SCVal{}, err
	}
	var out SCVal
	out.Type = SCValType(disc)
	switch out.Type {
	case SCVBool:
		b, err := r.ReadBool()
		if err != nil {
			return SCVal{}, err
		}
		out.B = b
	case SCVVoid:
	case SCVU32:
		out.U32, err = r.ReadU32()
	case SCVI32:
		out.I32, err = r.ReadI32()
	case SCVU64:
		out.U64, err = r.ReadU64()
	case SCVI64:
		out.I64, err = r.ReadI64()
	case SCVTimepoint:
		out.Timepoint, err = r.ReadU64()
	case SCVDuration:
		out.Duration, err = r.ReadU64()
	case SCVU128:
		out.U128, err = U128Codec.DecodeFn(r)
	case SCVI128:
		out.I128, err = I128Codec.DecodeFn(r)
	case SCVU256:
		out.U256, err = U256Codec.DecodeFn(r)
	case SCVI256:
		out.I256, err = I256Codec.DecodeFn(r)
	case SCVBytes:
		out.Bytes, err = r.ReadVarOpaque(0)
	case SCVString:
		out.Str, err = r.ReadString(0)
	case SCVSymbol:
		out.Sym, err = r.ReadString(MaxSymbolBytes)
	case SCVVec:
		done, derr := r.enterDepth()
		if derr != nil {
			return SCVal{}, derr
		}
		defer done()
		n, lerr := r.ReadArrayLen(0)
		if lerr != nil {
			return SCVal{}, lerr
		}
		out.Vec = make([]SCVal, 0, n)
		for i := uint32(0); i < n; i++ {
			e, eerr := decodeSCVal(r)
			if eerr != nil {
				return SCVal{}, eerr
			}
			out.Vec = append(out.Vec, e)
		}
	case SCVMap:
		done, derr := r.enterDepth()
		if derr != nil {
			return SCVal{}, derr
		}
		defer done()
		n, lerr := r.ReadArrayLen(0)
		if lerr != nil {
			return SCVal{}, lerr
		}
		out.Map = make([]SCMapEntry, 0, n)
		for i := uint32(0); i < n; i++ {
			k, kerr := decodeSCVal(r)
			if kerr != nil {
				return SCVal{}, kerr
			}
			v, verr := decodeSCVal(r)
			if verr != nil {
				return SCVal{}, verr
			}
			out.Map = append(out.Map, SCMapEntry{Key: k, Val: v})
		}
	case SCVAddress:
		out.Address, err = SCAddressCodec.DecodeFn(r)
	default:
		return SCVal{}, newErrf(InvalidUnionDiscriminant, "unknown SCVal type %d", disc)
	}
	if err != nil {
		return SCVal{}, err
	}
	return out, nil
}
