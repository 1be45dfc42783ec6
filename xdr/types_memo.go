package xdr

// MemoType discriminates the Memo union.
type MemoType int32

const (
	MemoTypeNone   MemoType = 0
	MemoTypeText   MemoType = 1
	MemoTypeID     MemoType = 2
	MemoTypeHash   MemoType = 3
	MemoTypeReturn MemoType = 4
)

// MaxMemoTextBytes is the documented UTF-8 byte cap for MEMO_TEXT
// (spec.md §8 scenario 4: 29 bytes fails).
const MaxMemoTextBytes = 28

// Memo carries optional auxiliary data on a transaction.
type Memo struct {
	Type MemoType
	Text string
	ID   uint64
	Hash [32]byte // set for MemoTypeHash
	Ret  [32]byte // set for MemoTypeReturn
}

func (m Memo) ArmName() string {
	switch m.Type {
	case MemoTypeNone:
		return "None"
	case MemoTypeText:
		return "Text"
	case MemoTypeID:
		return "Id"
	case MemoTypeHash:
		return "Hash"
	case MemoTypeReturn:
		return "Return"
	default:
		return "Unknown"
	}
}

// MemoText validates and builds a MEMO_TEXT memo.
func MemoText(s string) (Memo, error) {
	if len(s) > MaxMemoTextBytes {
		return Memo{}, newErrf(InvalidValue, "memo text %d bytes exceeds max %d", len(s), MaxMemoTextBytes)
	}
	return Memo{Type: MemoTypeText, Text: s}, nil
}

// MemoHashValue validates and builds a MEMO_HASH memo from a 32-byte digest.
func MemoHashValue(h []byte) (Memo, error) {
	if len(h) != 32 {
		return Memo{}, newErrf(LengthMismatch, "memo hash expected 32 bytes, got %d", len(h))
	}
	var m Memo
	m.Type = MemoTypeHash
	copy(m.Hash[:], h)
	return m, nil
}

var MemoCodec = Codec[Memo]{
	EncodeFn: func(w *Writer, v Memo) error {
		if err := I32.EncodeFn(w, int32(v.Type)); err != nil {
			return err
		}
		switch v.Type {
		case MemoTypeNone:
			return nil
		case MemoTypeText:
			return w.WriteString(v.Text, MaxMemoTextBytes)
		case MemoTypeID:
			return w.WriteU64(v.ID)
		case MemoTypeHash:
			return w.WriteFixedOpaque(v.Hash[:], 32)
		case MemoTypeReturn:
			return w.WriteFixedOpaque(v.Ret[:], 32)
		default:
			return newErrf(InvalidValue, "unknown memo type %d", v.Type)
		}
	},
	DecodeFn: func(r *Reader) (Memo, error) {
		disc, err := I32.DecodeFn(r)
		if err != nil {
			return Memo{}, err
		}
		var out Memo
		out.Type = MemoType(disc)
		switch out.Type {
		case MemoTypeNone:
		case MemoTypeText:
			s, err := r.ReadString(MaxMemoTextBytes)
			if err != nil {
				return Memo{}, err
			}
			out.Text = s
		case MemoTypeID:
			id, err := r.ReadU64()
			if err != nil {
				return Memo{}, err
			}
			out.ID = id
		case MemoTypeHash:
			b, err := r.ReadFixedOpaque(32)
			if err != nil {
				return Memo{}, err
			}
			copy(out.Hash[:], b)
		case MemoTypeReturn:
			b, err := r.ReadFixedOpaque(32)
			if err != nil {
				return Memo{}, err
			}
			copy(out.Ret[:], b)
		default:
			return Memo{}, newErrf(InvalidUnionDiscriminant, "unknown memo type %d", disc)
		}
		return out, nil
	},
}
