// Package sorobanauth builds and verifies Soroban authorization entries:
// the signed permission an address grants for a contract invocation tree to
// act on its behalf. Grounded on txhash's network-tagged pre-image approach
// (the authorization digest reuses the same hash-then-sign shape) and the
// teacher's recursive tree walks over nested structures in
// core/common_structs.go (spec.md §11 "Soroban authorization").
package sorobanauth

import (
	"fmt"

	"corexdr/xcrypto"
	"corexdr/xdr"
)

// envelopeTypeSorobanAuth tags the authorization preimage, keeping it
// domain-separated from transaction and contract-ID preimages that also
// hash networkID-prefixed XDR structures (spec.md §6/§11 share the same
// network-tagging discipline).
const envelopeTypeSorobanAuth = xdr.EnvelopeTypeSorobanAuth

// authPreimage is hashed and signed to produce a SorobanAddressCredentials
// signature: it binds the credential's nonce and expiration to the exact
// invocation tree being authorized, so a captured signature cannot be
// replayed against a different invocation.
type authPreimage struct {
	NetworkID                 xdr.Hash
	Nonce                     int64
	SignatureExpirationLedger uint32
	Invocation                xdr.SorobanAuthorizedInvocation
}

var authPreimageCodec = xdr.Codec[authPreimage]{
	EncodeFn: func(w *xdr.Writer, v authPreimage) error {
		if err := xdr.HashCodec.EncodeFn(w, v.NetworkID); err != nil {
			return err
		}
		if err := xdr.I32.EncodeFn(w, int32(envelopeTypeSorobanAuth)); err != nil {
			return err
		}
		if err := w.WriteI64(v.Nonce); err != nil {
			return err
		}
		if err := w.WriteU32(v.SignatureExpirationLedger); err != nil {
			return err
		}
		return xdr.SorobanAuthorizedInvocationCodec().EncodeFn(w, v.Invocation)
	},
	DecodeFn: func(r *xdr.Reader) (authPreimage, error) {
		var out authPreimage
		nid, err := xdr.HashCodec.DecodeFn(r)
		if err != nil {
			return out, err
		}
		out.NetworkID = nid
		if _, err := xdr.I32.DecodeFn(r); err != nil {
			return out, err
		}
		nonce, err := r.ReadI64()
		if err != nil {
			return out, err
		}
		out.Nonce = nonce
		exp, err := r.ReadU32()
		if err != nil {
			return out, err
		}
		out.SignatureExpirationLedger = exp
		inv, err := xdr.SorobanAuthorizedInvocationCodec().DecodeFn(r)
		if err != nil {
			return out, err
		}
		out.Invocation = inv
		return out, nil
	},
}

// Digest computes the hash that a SorobanAddressCredentials signature is
// made over, for a given invocation tree, nonce, and expiration ledger.
func Digest(networkID [32]byte, nonce int64, expirationLedger uint32, invocation xdr.SorobanAuthorizedInvocation) ([32]byte, error) {
	body, err := authPreimageCodec.Encode(authPreimage{
		NetworkID:                 xdr.Hash(networkID),
		Nonce:                     nonce,
		SignatureExpirationLedger: expirationLedger,
		Invocation:                invocation,
	})
	if err != nil {
		return [32]byte{}, fmt.Errorf("sorobanauth: encode authorization preimage: %w", err)
	}
	return xcrypto.Sha256(body), nil
}

// Signer is the same capability txbuilder.Signer requires; sorobanauth does
// not import txbuilder to avoid a dependency cycle, so it restates the
// narrow interface it needs.
type Signer interface {
	PublicKey() [32]byte
	Sign(hash [32]byte) []byte
}

// AuthorizeEntry signs invocation on behalf of address (an SCAddress,
// typically an account or contract) and returns the completed
// SorobanAuthorizationEntry ready to attach to an InvokeHostFunctionOp.
func AuthorizeEntry(networkID [32]byte, signer Signer, address xdr.SCAddress, nonce int64, expirationLedger uint32, invocation xdr.SorobanAuthorizedInvocation) (xdr.SorobanAuthorizationEntry, error) {
	hash, err := Digest(networkID, nonce, expirationLedger, invocation)
	if err != nil {
		return xdr.SorobanAuthorizationEntry{}, err
	}
	sigBytes := signer.Sign(hash)
	sigVal := xdr.SCVal{
		Type:  xdr.SCVBytes,
		Bytes: sigBytes,
	}
	return xdr.SorobanAuthorizationEntry{
		Credentials: xdr.SorobanCredentials{
			Type: xdr.SorobanCredentialsAddress,
			Address: xdr.SorobanAddressCredentials{
				Address:                   address,
				Nonce:                     nonce,
				SignatureExpirationLedger: expirationLedger,
				Signature:                 sigVal,
			},
		},
		RootInvocation: invocation,
	}, nil
}

// AuthorizeSourceAccount builds an authorization entry that relies on the
// invoking transaction's own source-account signature rather than a
// separate signed credential (spec.md §11: "SOROBAN_CREDENTIALS_SOURCE_
// ACCOUNT needs no additional signature").
func AuthorizeSourceAccount(invocation xdr.SorobanAuthorizedInvocation) xdr.SorobanAuthorizationEntry {
	return xdr.SorobanAuthorizationEntry{
		Credentials: xdr.SorobanCredentials{Type: xdr.SorobanCredentialsSourceAccount},
		RootInvocation: invocation,
	}
}

// Walk visits every node of an invocation tree in pre-order, calling fn for
// the root and each sub-invocation in turn. It is the shared traversal
// verification and logging both build on (spec.md §11 "invocation tree").
func Walk(root xdr.SorobanAuthorizedInvocation, fn func(xdr.SorobanAuthorizedInvocation)) {
	fn(root)
	for _, sub := range root.SubInvocations {
		Walk(sub, fn)
	}
}

// CountNodes returns the total number of invocation nodes in the tree
// rooted at root, including the root itself.
func CountNodes(root xdr.SorobanAuthorizedInvocation) int {
	n := 0
	Walk(root, func(xdr.SorobanAuthorizedInvocation) { n++ })
	return n
}
