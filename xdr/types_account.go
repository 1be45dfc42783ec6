package xdr

// Hash is a 32-byte digest, used for ledger/transaction hashes, memo
// hashes, and network IDs alike.
type Hash [32]byte

var HashCodec = Codec[Hash]{
	EncodeFn: func(w *Writer, v Hash) error { return w.WriteFixedOpaque(v[:], 32) },
	DecodeFn: func(r *Reader) (Hash, error) {
		b, err := r.ReadFixedOpaque(32)
		if err != nil {
			return Hash{}, err
		}
		var h Hash
		copy(h[:], b)
		return h, nil
	},
}

// PublicKeyType discriminates the PublicKey union. Only Ed25519 exists on
// this chain; the enum still models a closed set per spec.md §3.
type PublicKeyType int32

const PublicKeyTypeEd25519 PublicKeyType = 0

// AccountID is a PublicKey union restricted to its single live arm.
type AccountID struct {
	Ed25519 [32]byte
}

func (AccountID) ArmName() string { return "PublicKeyTypeEd25519" }

var AccountIDCodec = Codec[AccountID]{
	EncodeFn: func(w *Writer, v AccountID) error {
		if err := I32.EncodeFn(w, int32(PublicKeyTypeEd25519)); err != nil {
			return err
		}
		return w.WriteFixedOpaque(v.Ed25519[:], 32)
	},
	DecodeFn: func(r *Reader) (AccountID, error) {
		disc, err := I32.DecodeFn(r)
		if err != nil {
			return AccountID{}, err
		}
		if PublicKeyType(disc) != PublicKeyTypeEd25519 {
			return AccountID{}, newErrf(InvalidUnionDiscriminant, "unknown PublicKeyType %d", disc)
		}
		b, err := r.ReadFixedOpaque(32)
		if err != nil {
			return AccountID{}, err
		}
		var out AccountID
		copy(out.Ed25519[:], b)
		return out, nil
	},
}

// CryptoKeyType discriminates MuxedAccount.
type CryptoKeyType int32

const (
	KeyTypeEd25519      CryptoKeyType = 0
	KeyTypeMuxedEd25519 CryptoKeyType = 0x100
)

// MuxedAccount addresses a (ed25519_key, optional u64 id) pair as a single
// virtual account (spec.md §3 Muxed account).
type MuxedAccount struct {
	Type     CryptoKeyType
	Ed25519  [32]byte // set when Type == KeyTypeEd25519
	ID       uint64   // set when Type == KeyTypeMuxedEd25519
	MuxedKey [32]byte // set when Type == KeyTypeMuxedEd25519
}

func (m MuxedAccount) ArmName() string {
	switch m.Type {
	case KeyTypeEd25519:
		return "Ed25519"
	case KeyTypeMuxedEd25519:
		return "MuxedEd25519"
	default:
		return "Unknown"
	}
}

// AccountID returns the underlying 32-byte ed25519 key regardless of muxing.
func (m MuxedAccount) AccountID() AccountID {
	if m.Type == KeyTypeMuxedEd25519 {
		return AccountID{Ed25519: m.MuxedKey}
	}
	return AccountID{Ed25519: m.Ed25519}
}

var MuxedAccountCodec = Codec[MuxedAccount]{
	EncodeFn: func(w *Writer, v MuxedAccount) error {
		if err := I32.EncodeFn(w, int32(v.Type)); err != nil {
			return err
		}
		switch v.Type {
		case KeyTypeEd25519:
			return w.WriteFixedOpaque(v.Ed25519[:], 32)
		case KeyTypeMuxedEd25519:
			if err := w.WriteU64(v.ID); err != nil {
				return err
			}
			return w.WriteFixedOpaque(v.MuxedKey[:], 32)
		default:
			return newErrf(InvalidValue, "unknown MuxedAccount type %d", v.Type)
		}
	},
	DecodeFn: func(r *Reader) (MuxedAccount, error) {
		disc, err := I32.DecodeFn(r)
		if err != nil {
			return MuxedAccount{}, err
		}
		switch CryptoKeyType(disc) {
		case KeyTypeEd25519:
			b, err := r.ReadFixedOpaque(32)
			if err != nil {
				return MuxedAccount{}, err
			}
			var out MuxedAccount
			out.Type = KeyTypeEd25519
			copy(out.Ed25519[:], b)
			return out, nil
		case KeyTypeMuxedEd25519:
			id, err := r.ReadU64()
			if err != nil {
				return MuxedAccount{}, err
			}
			b, err := r.ReadFixedOpaque(32)
			if err != nil {
				return MuxedAccount{}, err
			}
			var out MuxedAccount
			out.Type = KeyTypeMuxedEd25519
			out.ID = id
			copy(out.MuxedKey[:], b)
			return out, nil
		default:
			return MuxedAccount{}, newErrf(InvalidUnionDiscriminant, "unknown MuxedAccount type %d", disc)
		}
	},
}

// SignerKeyType discriminates SignerKey; it is a superset of PublicKeyType
// covering pre-authorized transactions, hash-x, and signed payloads.
type SignerKeyType int32

const (
	SignerKeyTypeEd25519        SignerKeyType = 0
	SignerKeyTypePreAuthTx      SignerKeyType = 1
	SignerKeyTypeHashX          SignerKeyType = 2
	SignerKeyTypeEd25519SignedP SignerKeyType = 3
)

// SignerKey identifies a multisig signer: a raw key, a pre-authorized
// transaction hash, a hash preimage (hash-x), or an ed25519-signed-payload
// key (spec.md §3 StrKey P values).
type SignerKey struct {
	Type          SignerKeyType
	Ed25519       [32]byte
	PreAuthTx     [32]byte
	HashX         [32]byte
	PayloadSigner [32]byte
	Payload       []byte
}

func (k SignerKey) ArmName() string {
	switch k.Type {
	case SignerKeyTypeEd25519:
		return "Ed25519"
	case SignerKeyTypePreAuthTx:
		return "PreAuthTx"
	case SignerKeyTypeHashX:
		return "HashX"
	case SignerKeyTypeEd25519SignedP:
		return "Ed25519SignedPayload"
	default:
		return "Unknown"
	}
}

var SignerKeyCodec = Codec[SignerKey]{
	EncodeFn: func(w *Writer, v SignerKey) error {
		if err := I32.EncodeFn(w, int32(v.Type)); err != nil {
			return err
		}
		switch v.Type {
		case SignerKeyTypeEd25519:
			return w.WriteFixedOpaque(v.Ed25519[:], 32)
		case SignerKeyTypePreAuthTx:
			return w.WriteFixedOpaque(v.PreAuthTx[:], 32)
		case SignerKeyTypeHashX:
			return w.WriteFixedOpaque(v.HashX[:], 32)
		case SignerKeyTypeEd25519SignedP:
			if err := w.WriteFixedOpaque(v.PayloadSigner[:], 32); err != nil {
				return err
			}
			return w.WriteVarOpaque(v.Payload, 64)
		default:
			return newErrf(InvalidValue, "unknown SignerKey type %d", v.Type)
		}
	},
	DecodeFn: func(r *Reader) (SignerKey, error) {
		disc, err := I32.DecodeFn(r)
		if err != nil {
			return SignerKey{}, err
		}
		var out SignerKey
		out.Type = SignerKeyType(disc)
		switch out.Type {
		case SignerKeyTypeEd25519:
			b, err := r.ReadFixedOpaque(32)
			if err != nil {
				return SignerKey{}, err
			}
			copy(out.Ed25519[:], b)
		case SignerKeyTypePreAuthTx:
			b, err := r.ReadFixedOpaque(32)
			if err != nil {
				return SignerKey{}, err
			}
			copy(out.PreAuthTx[:], b)
		case SignerKeyTypeHashX:
			b, err := r.ReadFixedOpaque(32)
			if err != nil {
				return SignerKey{}, err
			}
			copy(out.HashX[:], b)
		case SignerKeyTypeEd25519SignedP:
			b, err := r.ReadFixedOpaque(32)
			if err != nil {
				return SignerKey{}, err
			}
			copy(out.PayloadSigner[:], b)
			payload, err := r.ReadVarOpaque(64)
			if err != nil {
				return SignerKey{}, err
			}
			out.Payload = payload
		default:
			return SignerKey{}, newErrf(InvalidUnionDiscriminant, "unknown SignerKey type %d", disc)
		}
		return out, nil
	},
}
