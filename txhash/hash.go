// Package txhash computes the network-tagged transaction hash that
// signatures are made over, and produces/verifies the decorated signatures
// that transaction envelopes carry. Grounded on the teacher's core/transactions.go
// hash-then-sign-then-attach shape (HashTx / Sign / VerifySig), rewritten
// around Ed25519 and XDR pre-images instead of ECDSA and field
// concatenation.
package txhash

import (
	"crypto/ed25519"
	"errors"
	"fmt"

	"corexdr/xcrypto"
	"corexdr/xdr"
)

// NetworkID returns the network identifier used to domain-separate
// signatures between networks (mainnet, a testnet, a private chain): the
// SHA-256 digest of the network's passphrase (spec.md §6).
func NetworkID(passphrase string) [32]byte {
	return xcrypto.Sha256([]byte(passphrase))
}

// envelopeTypeTag returns the big-endian 4-byte XDR encoding of t.
func envelopeTypeTag(t xdr.EnvelopeType) ([]byte, error) {
	return xdr.I32.Encode(int32(t))
}

// HashTransaction computes the signature base for a plain (non-fee-bump)
// transaction: sha256(networkID || xdr(ENVELOPE_TYPE_TX) || xdr(tx))
// (spec.md §6 "network-tagged transaction hashing").
func HashTransaction(networkID [32]byte, tx xdr.Transaction) ([32]byte, error) {
	tag, err := envelopeTypeTag(xdr.EnvelopeTypeTx)
	if err != nil {
		return [32]byte{}, err
	}
	body, err := xdr.TransactionCodec.Encode(tx)
	if err != nil {
		return [32]byte{}, fmt.Errorf("txhash: encode transaction: %w", err)
	}
	preimage := make([]byte, 0, 32+len(tag)+len(body))
	preimage = append(preimage, networkID[:]...)
	preimage = append(preimage, tag...)
	preimage = append(preimage, body...)
	return xcrypto.Sha256(preimage), nil
}

// HashFeeBumpTransaction computes the signature base for a fee-bump
// transaction: sha256(networkID || xdr(ENVELOPE_TYPE_TX_FEE_BUMP) ||
// xdr(feeBumpTx)), encoded via FeeBumpTransaction's own codec. That
// encoding includes the whole inner TransactionV1Envelope, inner signatures
// included; only the fee-bump envelope's own signatures are left out.
func HashFeeBumpTransaction(networkID [32]byte, tx xdr.FeeBumpTransaction) ([32]byte, error) {
	tag, err := envelopeTypeTag(xdr.EnvelopeTypeTxFeeBump)
	if err != nil {
		return [32]byte{}, err
	}
	body, err := xdr.FeeBumpTransactionCodec.Encode(tx)
	if err != nil {
		return [32]byte{}, fmt.Errorf("txhash: encode fee bump transaction: %w", err)
	}
	preimage := make([]byte, 0, 32+len(tag)+len(body))
	preimage = append(preimage, networkID[:]...)
	preimage = append(preimage, tag...)
	preimage = append(preimage, body...)
	return xcrypto.Sha256(preimage), nil
}

// Sign signs hash with priv and returns a DecoratedSignature carrying the
// signer's hint (spec.md §6).
func Sign(priv ed25519.PrivateKey, pub [32]byte, hash [32]byte) xdr.DecoratedSignature {
	sig := xcrypto.Sign(priv, hash[:])
	return xdr.DecoratedSignature{
		Hint:      xcrypto.Hint(pub),
		Signature: sig,
	}
}

// Verify checks that ds is a valid signature over hash by the key whose
// public bytes are pub, also checking the attached hint matches.
func Verify(pub [32]byte, hash [32]byte, ds xdr.DecoratedSignature) error {
	if xcrypto.Hint(pub) != ds.Hint {
		return errors.New("txhash: signature hint does not match public key")
	}
	if !xcrypto.Verify(pub[:], hash[:], ds.Signature) {
		return errors.New("txhash: signature verification failed")
	}
	return nil
}

// VerifyAny reports whether any of candidates' public keys produced a
// verifiable signature among sigs for hash, returning the index into
// candidates of the first match, or -1 if none matched. This mirrors
// multisig verification against a transaction's accumulated signer set
// (spec.md §4.11 "signature weight thresholds" build on top of this).
func VerifyAny(candidates [][32]byte, hash [32]byte, sigs []xdr.DecoratedSignature) int {
	for i, pub := range candidates {
		for _, ds := range sigs {
			if Verify(pub, hash, ds) == nil {
				return i
			}
		}
	}
	return -1
}
