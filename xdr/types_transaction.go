package xdr

// MaxOperations bounds how many operations a single Transaction may carry
// (spec.md §4.9: "at most 100 operations").
const MaxOperations = 100

// TransactionExt is the transaction's extension point. Only the base form
// (ext = 0) is modeled; Soroban resource-fee extensions are out of scope
// for this repo's builder (spec.md §4.9 Non-goals).
type TransactionExt struct {
	V int32
}

var transactionExtCodec = Codec[TransactionExt]{
	EncodeFn: func(w *Writer, v TransactionExt) error { return I32.EncodeFn(w, v.V) },
	DecodeFn: func(r *Reader) (TransactionExt, error) {
		v, err := I32.DecodeFn(r)
		if err != nil {
			return TransactionExt{}, err
		}
		if v != 0 {
			return TransactionExt{}, newErrf(InvalidUnionDiscriminant, "unsupported transaction ext %d", v)
		}
		return TransactionExt{V: v}, nil
	},
}

// Transaction is the unsigned, network-independent payload that
// txbuilder.Builder assembles and txhash hashes for signing (spec.md §4.9).
type Transaction struct {
	SourceAccount MuxedAccount
	Fee           uint32
	SeqNum        int64
	Cond          Preconditions
	Memo          Memo
	Operations    []Operation
	Ext           TransactionExt
}

var TransactionCodec = Codec[Transaction]{
	EncodeFn: func(w *Writer, v Transaction) error {
		if err := MuxedAccountCodec.EncodeFn(w, v.SourceAccount); err != nil {
			return err
		}
		if err := w.WriteU32(v.Fee); err != nil {
			return err
		}
		if err := w.WriteI64(v.SeqNum); err != nil {
			return err
		}
		if err := PreconditionsCodec.EncodeFn(w, v.Cond); err != nil {
			return err
		}
		if err := MemoCodec.EncodeFn(w, v.Memo); err != nil {
			return err
		}
		if err := VarArray(MaxOperations, OperationCodec).EncodeFn(w, v.Operations); err != nil {
			return err
		}
		return transactionExtCodec.EncodeFn(w, v.Ext)
	},
	DecodeFn: func(r *Reader) (Transaction, error) {
		var out Transaction
		src, err := MuxedAccountCodec.DecodeFn(r)
		if err != nil {
			return out, err
		}
		out.SourceAccount = src
		fee, err := r.ReadU32()
		if err != nil {
			return out, err
		}
		out.Fee = fee
		seq, err := r.ReadI64()
		if err != nil {
			return out, err
		}
		out.SeqNum = seq
		cond, err := PreconditionsCodec.DecodeFn(r)
		if err != nil {
			return out, err
		}
		out.Cond = cond
		memo, err := MemoCodec.DecodeFn(r)
		if err != nil {
			return out, err
		}
		out.Memo = memo
		ops, err := VarArray(MaxOperations, OperationCodec).DecodeFn(r)
		if err != nil {
			return out, err
		}
		out.Operations = ops
		ext, err := transactionExtCodec.DecodeFn(r)
		if err != nil {
			return out, err
		}
		out.Ext = ext
		return out, nil
	},
}

// DecoratedSignature pairs a 4-byte signer hint (spec.md §6 "hint = last 4
// bytes of the signer's public key") with the raw signature bytes.
type DecoratedSignature struct {
	Hint      [4]byte
	Signature []byte
}

const MaxSignatureBytes = 64

var DecoratedSignatureCodec = Codec[DecoratedSignature]{
	EncodeFn: func(w *Writer, v DecoratedSignature) error {
		if err := w.WriteFixedOpaque(v.Hint[:], 4); err != nil {
			return err
		}
		return w.WriteVarOpaque(v.Signature, MaxSignatureBytes)
	},
	DecodeFn: func(r *Reader) (DecoratedSignature, error) {
		var out DecoratedSignature
		h, err := r.ReadFixedOpaque(4)
		if err != nil {
			return out, err
		}
		copy(out.Hint[:], h)
		sig, err := r.ReadVarOpaque(MaxSignatureBytes)
		if err != nil {
			return out, err
		}
		out.Signature = sig
		return out, nil
	},
}

// MaxSignatures bounds the decorated-signature list on an envelope
// (spec.md §4.9: "at most 20 signatures").
const MaxSignatures = 20

// TransactionV1Envelope wraps a Transaction with its signatures.
type TransactionV1Envelope struct {
	Tx         Transaction
	Signatures []DecoratedSignature
}

var transactionV1EnvelopeCodec = Codec[TransactionV1Envelope]{
	EncodeFn: func(w *Writer, v TransactionV1Envelope) error {
		if err := TransactionCodec.EncodeFn(w, v.Tx); err != nil {
			return err
		}
		return VarArray(MaxSignatures, DecoratedSignatureCodec).EncodeFn(w, v.Signatures)
	},
	DecodeFn: func(r *Reader) (TransactionV1Envelope, error) {
		var out TransactionV1Envelope
		tx, err := TransactionCodec.DecodeFn(r)
		if err != nil {
			return out, err
		}
		out.Tx = tx
		sigs, err := VarArray(MaxSignatures, DecoratedSignatureCodec).DecodeFn(r)
		if err != nil {
			return out, err
		}
		out.Signatures = sigs
		return out, nil
	},
}

// FeeBumpTransaction wraps an inner TransactionV1Envelope with a new fee
// paid by a (possibly different) fee source account (spec.md §4.9 fee-bump).
type FeeBumpTransaction struct {
	FeeSource MuxedAccount
	Fee       int64
	InnerTx   TransactionV1Envelope
	Ext       TransactionExt
}

// FeeBumpTransactionCodec encodes/decodes a FeeBumpTransaction on its own,
// without the enclosing envelope or signatures (txhash hashes exactly this
// form per spec.md §6).
var FeeBumpTransactionCodec = Codec[FeeBumpTransaction]{
	EncodeFn: func(w *Writer, v FeeBumpTransaction) error {
		if err := MuxedAccountCodec.EncodeFn(w, v.FeeSource); err != nil {
			return err
		}
		if err := w.WriteI64(v.Fee); err != nil {
			return err
		}
		if err := transactionV1EnvelopeCodec.EncodeFn(w, v.InnerTx); err != nil {
			return err
		}
		return transactionExtCodec.EncodeFn(w, v.Ext)
	},
	DecodeFn: func(r *Reader) (FeeBumpTransaction, error) {
		var out FeeBumpTransaction
		src, err := MuxedAccountCodec.DecodeFn(r)
		if err != nil {
			return out, err
		}
		out.FeeSource = src
		fee, err := r.ReadI64()
		if err != nil {
			return out, err
		}
		out.Fee = fee
		inner, err := transactionV1EnvelopeCodec.DecodeFn(r)
		if err != nil {
			return out, err
		}
		out.InnerTx = inner
		ext, err := transactionExtCodec.DecodeFn(r)
		if err != nil {
			return out, err
		}
		out.Ext = ext
		return out, nil
	},
}

// FeeBumpTransactionEnvelope wraps a FeeBumpTransaction with its own
// signatures, distinct from the inner transaction's.
type FeeBumpTransactionEnvelope struct {
	Tx         FeeBumpTransaction
	Signatures []DecoratedSignature
}

var feeBumpTransactionEnvelopeCodec = Codec[FeeBumpTransactionEnvelope]{
	EncodeFn: func(w *Writer, v FeeBumpTransactionEnvelope) error {
		if err := FeeBumpTransactionCodec.EncodeFn(w, v.Tx); err != nil {
			return err
		}
		return VarArray(MaxSignatures, DecoratedSignatureCodec).EncodeFn(w, v.Signatures)
	},
	DecodeFn: func(r *Reader) (FeeBumpTransactionEnvelope, error) {
		var out FeeBumpTransactionEnvelope
		tx, err := FeeBumpTransactionCodec.DecodeFn(r)
		if err != nil {
			return out, err
		}
		out.Tx = tx
		sigs, err := VarArray(MaxSignatures, DecoratedSignatureCodec).DecodeFn(r)
		if err != nil {
			return out, err
		}
		out.Signatures = sigs
		return out, nil
	},
}

// EnvelopeType discriminates TransactionEnvelope, and doubles as the
// network-tagged hashing discriminant txhash prefixes onto a transaction
// pre-image (spec.md §6 "network_id || envelope_type_tag || xdr(tx)").
type EnvelopeType int32

const (
	EnvelopeTypeTxV0          EnvelopeType = 0
	EnvelopeTypeScp           EnvelopeType = 1
	EnvelopeTypeTx            EnvelopeType = 2
	EnvelopeTypeAuth          EnvelopeType = 3
	EnvelopeTypeScpValue      EnvelopeType = 4
	EnvelopeTypeTxFeeBump     EnvelopeType = 5
	EnvelopeTypeOpID          EnvelopeType = 6
	EnvelopeTypePoolRevoke    EnvelopeType = 7
	EnvelopeTypeContractID    EnvelopeType = 8
	EnvelopeTypeSorobanAuth   EnvelopeType = 9
)

// TransactionEnvelope is the signed, on-wire transaction: either a plain
// (V1) transaction or a fee-bump wrapper.
type TransactionEnvelope struct {
	Type    EnvelopeType
	V1      TransactionV1Envelope
	FeeBump FeeBumpTransactionEnvelope
}

func (e TransactionEnvelope) ArmName() string {
	switch e.Type {
	case EnvelopeTypeTx:
		return "Tx"
	case EnvelopeTypeTxFeeBump:
		return "TxFeeBump"
	default:
		return "Unknown"
	}
}

var TransactionEnvelopeCodec = Codec[TransactionEnvelope]{
	EncodeFn: func(w *Writer, v TransactionEnvelope) error {
		if err := I32.EncodeFn(w, int32(v.Type)); err != nil {
			return err
		}
		switch v.Type {
		case EnvelopeTypeTx:
			return transactionV1EnvelopeCodec.EncodeFn(w, v.V1)
		case EnvelopeTypeTxFeeBump:
			return feeBumpTransactionEnvelopeCodec.EncodeFn(w, v.FeeBump)
		default:
			return newErrf(InvalidValue, "unsupported envelope type %d", v.Type)
		}
	},
	DecodeFn: func(r *Reader) (TransactionEnvelope, error) {
		disc, err := I32.DecodeFn(r)
		if err != nil {
			return TransactionEnvelope{}, err
		}
		var out TransactionEnvelope
		out.Type = EnvelopeType(disc)
		switch out.Type {
		case EnvelopeTypeTx:
			v1, err := transactionV1EnvelopeCodec.DecodeFn(r)
			if err != nil {
				return TransactionEnvelope{}, err
			}
			out.V1 = v1
		case EnvelopeTypeTxFeeBump:
			fb, err := feeBumpTransactionEnvelopeCodec.DecodeFn(r)
			if err != nil {
				return TransactionEnvelope{}, err
			}
			out.FeeBump = fb
		default:
			return TransactionEnvelope{}, newErrf(InvalidUnionDiscriminant, "unsupported envelope type %d", disc)
		}
		return out, nil
	},
}
