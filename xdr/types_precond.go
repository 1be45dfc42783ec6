package xdr

// TimeBounds restricts the ledger-close-time window in which a transaction
// is valid. MaxTime of 0 means no upper bound (spec.md §4.8 TimeoutInfinite).
type TimeBounds struct {
	MinTime uint64
	MaxTime uint64
}

var TimeBoundsCodec = Codec[TimeBounds]{
	EncodeFn: func(w *Writer, v TimeBounds) error {
		if err := w.WriteU64(v.MinTime); err != nil {
			return err
		}
		return w.WriteU64(v.MaxTime)
	},
	DecodeFn: func(r *Reader) (TimeBounds, error) {
		minT, err := r.ReadU64()
		if err != nil {
			return TimeBounds{}, err
		}
		maxT, err := r.ReadU64()
		if err != nil {
			return TimeBounds{}, err
		}
		return TimeBounds{MinTime: minT, MaxTime: maxT}, nil
	},
}

// LedgerBounds restricts the ledger-sequence window of validity.
type LedgerBounds struct {
	MinLedger uint32
	MaxLedger uint32
}

var LedgerBoundsCodec = Codec[LedgerBounds]{
	EncodeFn: func(w *Writer, v LedgerBounds) error {
		if err := w.WriteU32(v.MinLedger); err != nil {
			return err
		}
		return w.WriteU32(v.MaxLedger)
	},
	DecodeFn: func(r *Reader) (LedgerBounds, error) {
		minL, err := r.ReadU32()
		if err != nil {
			return LedgerBounds{}, err
		}
		maxL, err := r.ReadU32()
		if err != nil {
			return LedgerBounds{}, err
		}
		return LedgerBounds{MinLedger: minL, MaxLedger: maxL}, nil
	},
}

// PreconditionType discriminates Preconditions.
type PreconditionType int32

const (
	PrecondNone PreconditionType = 0
	PrecondTime PreconditionType = 1
	PrecondV2   PreconditionType = 2
)

// PreconditionsV2 is the general-form precondition set: time/ledger bounds,
// a minimum source-account sequence number and age/gap, and up to two extra
// signers whose signatures are additionally required.
type PreconditionsV2 struct {
	TimeBounds      *TimeBounds
	LedgerBounds    *LedgerBounds
	MinSeqNum       *int64
	MinSeqAge       uint64
	MinSeqLedgerGap uint32
	ExtraSigners    []SignerKey
}

const MaxExtraSigners = 2

var preconditionsV2Codec = Codec[PreconditionsV2]{
	EncodeFn: func(w *Writer, v PreconditionsV2) error {
		if err := Option(TimeBoundsCodec).EncodeFn(w, v.TimeBounds); err != nil {
			return err
		}
		if err := Option(LedgerBoundsCodec).EncodeFn(w, v.LedgerBounds); err != nil {
			return err
		}
		if err := Option(I64).EncodeFn(w, v.MinSeqNum); err != nil {
			return err
		}
		if err := w.WriteU64(v.MinSeqAge); err != nil {
			return err
		}
		if err := w.WriteU32(v.MinSeqLedgerGap); err != nil {
			return err
		}
		return VarArray(MaxExtraSigners, SignerKeyCodec).EncodeFn(w, v.ExtraSigners)
	},
	DecodeFn: func(r *Reader) (PreconditionsV2, error) {
		var out PreconditionsV2
		tb, err := Option(TimeBoundsCodec).DecodeFn(r)
		if err != nil {
			return out, err
		}
		out.TimeBounds = tb
		lb, err := Option(LedgerBoundsCodec).DecodeFn(r)
		if err != nil {
			return out, err
		}
		out.LedgerBounds = lb
		msn, err := Option(I64).DecodeFn(r)
		if err != nil {
			return out, err
		}
		out.MinSeqNum = msn
		age, err := r.ReadU64()
		if err != nil {
			return out, err
		}
		out.MinSeqAge = age
		gap, err := r.ReadU32()
		if err != nil {
			return out, err
		}
		out.MinSeqLedgerGap = gap
		signers, err := VarArray(MaxExtraSigners, SignerKeyCodec).DecodeFn(r)
		if err != nil {
			return out, err
		}
		out.ExtraSigners = signers
		return out, nil
	},
}

// Preconditions gates whether a transaction may apply: none, a legacy
// time-bounds-only form, or the general V2 form.
type Preconditions struct {
	Type       PreconditionType
	TimeBounds *TimeBounds
	V2         PreconditionsV2
}

func (p Preconditions) ArmName() string {
	switch p.Type {
	case PrecondNone:
		return "None"
	case PrecondTime:
		return "Time"
	case PrecondV2:
		return "V2"
	default:
		return "Unknown"
	}
}

var PreconditionsCodec = Codec[Preconditions]{
	EncodeFn: func(w *Writer, v Preconditions) error {
		if err := I32.EncodeFn(w, int32(v.Type)); err != nil {
			return err
		}
		switch v.Type {
		case PrecondNone:
			return nil
		case PrecondTime:
			if v.TimeBounds == nil {
				return newErr(InvalidValue, "PrecondTime requires TimeBounds")
			}
			return TimeBoundsCodec.EncodeFn(w, *v.TimeBounds)
		case PrecondV2:
			return preconditionsV2Codec.EncodeFn(w, v.V2)
		default:
			return newErrf(InvalidValue, "unknown precondition type %d", v.Type)
		}
	},
	DecodeFn: func(r *Reader) (Preconditions, error) {
		disc, err := I32.DecodeFn(r)
		if err != nil {
			return Preconditions{}, err
		}
		var out Preconditions
		out.Type = PreconditionType(disc)
		switch out.Type {
		case PrecondNone:
		case PrecondTime:
			tb, err := TimeBoundsCodec.DecodeFn(r)
			if err != nil {
				return Preconditions{}, err
			}
			out.TimeBounds = &tb
		case PrecondV2:
			v2, err := preconditionsV2Codec.DecodeFn(r)
			if err != nil {
				return Preconditions{}, err
			}
			out.V2 = v2
		default:
			return Preconditions{}, newErrf(InvalidUnionDiscriminant, "unknown precondition type %d", disc)
		}
		return out, nil
	},
}
