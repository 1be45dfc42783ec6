// Package xcrypto implements the envelope-signing primitives the chain's
// transaction and authorization layers build on: SHA-256 hashing, Ed25519
// signing and verification, and the 4-byte signer "hint" attached to every
// decorated signature.
package xcrypto

import (
	"crypto/ed25519"
	"crypto/sha256"
	"errors"
)

// Sha256 returns the SHA-256 digest of data.
func Sha256(data []byte) [32]byte { return sha256.Sum256(data) }

// KeyPair is a raw ed25519 key pair: Public is 32 bytes, Private is the
// 64-byte seed||public form ed25519.Sign expects.
type KeyPair struct {
	Public  ed25519.PublicKey
	Private ed25519.PrivateKey
}

// NewKeyPairFromSeed builds a KeyPair from a 32-byte seed.
func NewKeyPairFromSeed(seed []byte) (KeyPair, error) {
	if len(seed) != ed25519.SeedSize {
		return KeyPair{}, errors.New("xcrypto: seed must be 32 bytes")
	}
	priv := ed25519.NewKeyFromSeed(seed)
	return KeyPair{Public: priv.Public().(ed25519.PublicKey), Private: priv}, nil
}

// Sign signs message with priv, returning a 64-byte ed25519 signature.
func Sign(priv ed25519.PrivateKey, message []byte) []byte {
	return ed25519.Sign(priv, message)
}

// Verify reports whether sig is a valid ed25519 signature of message under pub.
func Verify(pub ed25519.PublicKey, message, sig []byte) bool {
	return ed25519.Verify(pub, message, sig)
}

// Hint returns the last 4 bytes of a 32-byte ed25519 public key, the signer
// hint attached to every DecoratedSignature (spec.md §6).
func Hint(pub [32]byte) [4]byte {
	var h [4]byte
	copy(h[:], pub[28:])
	return h
}

// BasicSigner is the simplest txbuilder.Signer: an in-memory Ed25519 key
// pair. It satisfies txbuilder.Signer structurally without either package
// importing the other.
type BasicSigner struct {
	Pub  [32]byte
	Priv ed25519.PrivateKey
}

// NewBasicSigner builds a BasicSigner from a KeyPair.
func NewBasicSigner(kp KeyPair) BasicSigner {
	var pub [32]byte
	copy(pub[:], kp.Public)
	return BasicSigner{Pub: pub, Priv: kp.Private}
}

func (s BasicSigner) PublicKey() [32]byte { return s.Pub }

func (s BasicSigner) Sign(hash [32]byte) []byte { return Sign(s.Priv, hash[:]) }
