package xdr

// LiquidityPoolType discriminates LiquidityPoolParameters. Only the
// constant-product pool exists on this chain.
type LiquidityPoolType int32

const LiquidityPoolConstantProduct LiquidityPoolType = 0

// LiquidityPoolConstantProductParameters names the ordered asset pair and
// fee of a constant-product pool. AssetA must sort strictly before AssetB
// under AssetLess (spec.md §10 deterministic IDs, "asset ordering").
type LiquidityPoolConstantProductParameters struct {
	AssetA Asset
	AssetB Asset
	Fee    int32
}

var liquidityPoolConstantProductParametersCodec = Codec[LiquidityPoolConstantProductParameters]{
	EncodeFn: func(w *Writer, v LiquidityPoolConstantProductParameters) error {
		if err := AssetCodec.EncodeFn(w, v.AssetA); err != nil {
			return err
		}
		if err := AssetCodec.EncodeFn(w, v.AssetB); err != nil {
			return err
		}
		return w.WriteI32(v.Fee)
	},
	DecodeFn: func(r *Reader) (LiquidityPoolConstantProductParameters, error) {
		var out LiquidityPoolConstantProductParameters
		a, err := AssetCodec.DecodeFn(r)
		if err != nil {
			return out, err
		}
		out.AssetA = a
		b, err := AssetCodec.DecodeFn(r)
		if err != nil {
			return out, err
		}
		out.AssetB = b
		fee, err := r.ReadI32()
		if err != nil {
			return out, err
		}
		out.Fee = fee
		return out, nil
	},
}

// LiquidityPoolParameters is the hash preimage of a pool ID: idhash.PoolID
// is sha256 of this value's XDR encoding (spec.md §10).
type LiquidityPoolParameters struct {
	Type            LiquidityPoolType
	ConstantProduct LiquidityPoolConstantProductParameters
}

func (p LiquidityPoolParameters) ArmName() string { return "ConstantProduct" }

var LiquidityPoolParametersCodec = Codec[LiquidityPoolParameters]{
	EncodeFn: func(w *Writer, v LiquidityPoolParameters) error {
		if err := I32.EncodeFn(w, int32(v.Type)); err != nil {
			return err
		}
		switch v.Type {
		case LiquidityPoolConstantProduct:
			return liquidityPoolConstantProductParametersCodec.EncodeFn(w, v.ConstantProduct)
		default:
			return newErrf(InvalidValue, "unknown liquidity pool type %d", v.Type)
		}
	},
	DecodeFn: func(r *Reader) (LiquidityPoolParameters, error) {
		disc, err := I32.DecodeFn(r)
		if err != nil {
			return LiquidityPoolParameters{}, err
		}
		var out LiquidityPoolParameters
		out.Type = LiquidityPoolType(disc)
		switch out.Type {
		case LiquidityPoolConstantProduct:
			cp, err := liquidityPoolConstantProductParametersCodec.DecodeFn(r)
			if err != nil {
				return LiquidityPoolParameters{}, err
			}
			out.ConstantProduct = cp
		default:
			return LiquidityPoolParameters{}, newErrf(InvalidUnionDiscriminant, "unknown liquidity pool type %d", disc)
		}
		return out, nil
	},
}

// ContractIDPreimageType discriminates ContractIDPreimage.
type ContractIDPreimageType int32

const (
	ContractIDPreimageFromAddress ContractIDPreimageType = 0
	ContractIDPreimageFromAsset   ContractIDPreimageType = 1
)

// ContractIDPreimageAddressPart carries the deployer address and a caller
// chosen salt for address-derived contract IDs.
type ContractIDPreimageAddressPart struct {
	Address SCAddress
	Salt    [32]byte
}

var contractIDPreimageAddressPartCodec = Codec[ContractIDPreimageAddressPart]{
	EncodeFn: func(w *Writer, v ContractIDPreimageAddressPart) error {
		if err := SCAddressCodec.EncodeFn(w, v.Address); err != nil {
			return err
		}
		return w.WriteFixedOpaque(v.Salt[:], 32)
	},
	DecodeFn: func(r *Reader) (ContractIDPreimageAddressPart, error) {
		var out ContractIDPreimageAddressPart
		addr, err := SCAddressCodec.DecodeFn(r)
		if err != nil {
			return out, err
		}
		out.Address = addr
		salt, err := r.ReadFixedOpaque(32)
		if err != nil {
			return out, err
		}
		copy(out.Salt[:], salt)
		return out, nil
	},
}

// ContractIDPreimage is either an (address, salt) pair, for contracts
// deployed by an account or another contract, or the classic Asset being
// wrapped into its canonical asset contract (spec.md §10 "asset-contract
// ID").
type ContractIDPreimage struct {
	Type        ContractIDPreimageType
	FromAddress ContractIDPreimageAddressPart
	FromAsset   Asset
}

func (p ContractIDPreimage) ArmName() string {
	if p.Type == ContractIDPreimageFromAsset {
		return "FromAsset"
	}
	return "FromAddress"
}

var ContractIDPreimageCodec = Codec[ContractIDPreimage]{
	EncodeFn: func(w *Writer, v ContractIDPreimage) error {
		if err := I32.EncodeFn(w, int32(v.Type)); err != nil {
			return err
		}
		switch v.Type {
		case ContractIDPreimageFromAddress:
			return contractIDPreimageAddressPartCodec.EncodeFn(w, v.FromAddress)
		case ContractIDPreimageFromAsset:
			return AssetCodec.EncodeFn(w, v.FromAsset)
		default:
			return newErrf(InvalidValue, "unknown ContractIDPreimage type %d", v.Type)
		}
	},
	DecodeFn: func(r *Reader) (ContractIDPreimage, error) {
		disc, err := I32.DecodeFn(r)
		if err != nil {
			return ContractIDPreimage{}, err
		}
		var out ContractIDPreimage
		out.Type = ContractIDPreimageType(disc)
		switch out.Type {
		case ContractIDPreimageFromAddress:
			p, err := contractIDPreimageAddressPartCodec.DecodeFn(r)
			if err != nil {
				return ContractIDPreimage{}, err
			}
			out.FromAddress = p
		case ContractIDPreimageFromAsset:
			a, err := AssetCodec.DecodeFn(r)
			if err != nil {
				return ContractIDPreimage{}, err
			}
			out.FromAsset = a
		default:
			return ContractIDPreimage{}, newErrf(InvalidUnionDiscriminant, "unknown ContractIDPreimage type %d", disc)
		}
		return out, nil
	},
}

// HashIDPreimageContractID is the full preimage hashed to derive a
// contract's 32-byte ID: the network ID domain-separates the result from
// every other network sharing the same ContractIDPreimage (spec.md §10).
type HashIDPreimageContractID struct {
	NetworkID           Hash
	ContractIDPreimage ContractIDPreimage
}

var hashIDPreimageContractIDCodec = Codec[HashIDPreimageContractID]{
	EncodeFn: func(w *Writer, v HashIDPreimageContractID) error {
		if err := HashCodec.EncodeFn(w, v.NetworkID); err != nil {
			return err
		}
		return ContractIDPreimageCodec.EncodeFn(w, v.ContractIDPreimage)
	},
	DecodeFn: func(r *Reader) (HashIDPreimageContractID, error) {
		var out HashIDPreimageContractID
		nid, err := HashCodec.DecodeFn(r)
		if err != nil {
			return out, err
		}
		out.NetworkID = nid
		pre, err := ContractIDPreimageCodec.DecodeFn(r)
		if err != nil {
			return out, err
		}
		out.ContractIDPreimage = pre
		return out, nil
	},
}

// HashIDPreimage is the tagged union of every "hash this XDR structure to
// derive an ID" preimage on this chain. Only the ContractID arm, the one
// idhash (C10) uses, is modeled; any other discriminant is rejected as
// unsupported on encode and decode.
type HashIDPreimage struct {
	Type       EnvelopeType
	ContractID HashIDPreimageContractID
}

func (p HashIDPreimage) ArmName() string {
	if p.Type == EnvelopeTypeContractID {
		return "ContractID"
	}
	return "Unknown"
}

var HashIDPreimageCodec = Codec[HashIDPreimage]{
	EncodeFn: func(w *Writer, v HashIDPreimage) error {
		if err := I32.EncodeFn(w, int32(v.Type)); err != nil {
			return err
		}
		switch v.Type {
		case EnvelopeTypeContractID:
			return hashIDPreimageContractIDCodec.EncodeFn(w, v.ContractID)
		default:
			return newErrf(InvalidValue, "unsupported HashIDPreimage type %d", v.Type)
		}
	},
	DecodeFn: func(r *Reader) (HashIDPreimage, error) {
		disc, err := I32.DecodeFn(r)
		if err != nil {
			return HashIDPreimage{}, err
		}
		var out HashIDPreimage
		out.Type = EnvelopeType(disc)
		switch out.Type {
		case EnvelopeTypeContractID:
			c, err := hashIDPreimageContractIDCodec.DecodeFn(r)
			if err != nil {
				return HashIDPreimage{}, err
			}
			out.ContractID = c
		default:
			return HashIDPreimage{}, newErrf(InvalidUnionDiscriminant, "unsupported HashIDPreimage type %d", disc)
		}
		return out, nil
	},
}
