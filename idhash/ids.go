// Package idhash derives the chain's deterministic, content-addressed IDs:
// liquidity pool IDs and asset-contract IDs. Both follow the same pattern
// as the teacher's core/transaction_hash.go HashTx — hash the canonical
// encoding of a structure — generalized from JSON+SHA-256 over a
// Transaction to XDR+SHA-256 over the schema's dedicated preimage types
// (spec.md §10 "deterministic IDs").
package idhash

import (
	"errors"
	"fmt"

	"corexdr/xcrypto"
	"corexdr/xdr"
)

// PoolID derives a constant-product liquidity pool's 32-byte ID from its
// two assets and fee. assetA must sort strictly before assetB under
// xdr.AssetLess: pool IDs are only well-defined for a canonically ordered
// pair, so that (a, b) and (b, a) always name the same pool.
func PoolID(assetA, assetB xdr.Asset, fee int32) ([32]byte, error) {
	if !xdr.AssetLess(assetA, assetB) {
		return [32]byte{}, errors.New("idhash: assetA must sort strictly before assetB")
	}
	params := xdr.LiquidityPoolParameters{
		Type: xdr.LiquidityPoolConstantProduct,
		ConstantProduct: xdr.LiquidityPoolConstantProductParameters{
			AssetA: assetA,
			AssetB: assetB,
			Fee:    fee,
		},
	}
	body, err := xdr.LiquidityPoolParametersCodec.Encode(params)
	if err != nil {
		return [32]byte{}, fmt.Errorf("idhash: encode liquidity pool parameters: %w", err)
	}
	return xcrypto.Sha256(body), nil
}

// AssetContractID derives the canonical contract ID that wraps a classic
// Asset as a Soroban token contract, domain-separated by networkID so the
// same asset on two networks maps to two different contract IDs
// (spec.md §10 "asset-contract ID").
func AssetContractID(networkID [32]byte, asset xdr.Asset) ([32]byte, error) {
	preimage := xdr.HashIDPreimage{
		Type: xdr.EnvelopeTypeContractID,
		ContractID: xdr.HashIDPreimageContractID{
			NetworkID: xdr.Hash(networkID),
			ContractIDPreimage: xdr.ContractIDPreimage{
				Type:      xdr.ContractIDPreimageFromAsset,
				FromAsset: asset,
			},
		},
	}
	body, err := xdr.HashIDPreimageCodec.Encode(preimage)
	if err != nil {
		return [32]byte{}, fmt.Errorf("idhash: encode contract id preimage: %w", err)
	}
	return xcrypto.Sha256(body), nil
}

// AddressContractID derives the contract ID for a contract deployed by
// deployer with the given salt, domain-separated by networkID
// (spec.md §10).
func AddressContractID(networkID [32]byte, deployer xdr.SCAddress, salt [32]byte) ([32]byte, error) {
	preimage := xdr.HashIDPreimage{
		Type: xdr.EnvelopeTypeContractID,
		ContractID: xdr.HashIDPreimageContractID{
			NetworkID: xdr.Hash(networkID),
			ContractIDPreimage: xdr.ContractIDPreimage{
				Type: xdr.ContractIDPreimageFromAddress,
				FromAddress: xdr.ContractIDPreimageAddressPart{
					Address: deployer,
					Salt:    salt,
				},
			},
		},
	}
	body, err := xdr.HashIDPreimageCodec.Encode(preimage)
	if err != nil {
		return [32]byte{}, fmt.Errorf("idhash: encode contract id preimage: %w", err)
	}
	return xcrypto.Sha256(body), nil
}
