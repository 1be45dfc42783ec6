package xcrypto

import (
	"crypto/ed25519"
	"crypto/hmac"
	crand "crypto/rand"
	"crypto/sha512"
	"encoding/binary"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	bip39 "github.com/tyler-smith/go-bip39"

	"corexdr/strkey"
)

// HDWallet derives Ed25519 key pairs along a SLIP-0010 hardened-only path
// m / account' / index'. Ed25519 has no defined unhardened child derivation,
// so unlike BIP-32 over secp256k1 there is no non-hardened branch to offer
// (spec.md §5 "HD key derivation").
//
// Key material lives in memory only; callers that need persistence must
// encrypt it themselves.
type HDWallet struct {
	seed        []byte
	masterKey   []byte
	masterChain []byte
	logger      *log.Logger
}

const (
	hardenedOffset uint32 = 0x80000000
	masterHMACKey         = "ed25519 seed"
)

func SetWalletLogger(l *log.Logger) { globalLogger = l }

var globalLogger = log.New()

// Seed returns a copy of the wallet's master seed. Callers should wipe the
// returned slice after use.
func (w *HDWallet) Seed() []byte {
	out := make([]byte, len(w.seed))
	copy(out, w.seed)
	return out
}

// NewRandomWallet generates entropyBits (128 or 256) of randomness and
// returns the resulting wallet along with its BIP-39 recovery mnemonic. The
// caller must record or securely wipe the mnemonic.
func NewRandomWallet(entropyBits int) (*HDWallet, string, error) {
	if entropyBits != 128 && entropyBits != 256 {
		return nil, "", fmt.Errorf("xcrypto: unsupported entropy size %d", entropyBits)
	}
	entropy, err := bip39.NewEntropy(entropyBits)
	if err != nil {
		return nil, "", fmt.Errorf("xcrypto: entropy: %w", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return nil, "", fmt.Errorf("xcrypto: mnemonic: %w", err)
	}
	seed := bip39.NewSeed(mnemonic, "")
	w, err := NewHDWalletFromSeed(seed, globalLogger)
	if err != nil {
		return nil, "", err
	}
	return w, mnemonic, nil
}

// WalletFromMnemonic imports an existing BIP-39 phrase.
func WalletFromMnemonic(mnemonic, passphrase string) (*HDWallet, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, errors.New("xcrypto: invalid mnemonic checksum")
	}
	seed := bip39.NewSeed(mnemonic, passphrase)
	return NewHDWalletFromSeed(seed, globalLogger)
}

// NewHDWalletFromSeed builds a wallet directly from raw seed bytes.
func NewHDWalletFromSeed(seed []byte, lg *log.Logger) (*HDWallet, error) {
	if len(seed) < 16 {
		return nil, errors.New("xcrypto: seed too short")
	}
	I := hmacSHA512([]byte(masterHMACKey), seed)
	w := &HDWallet{
		seed:        seed,
		masterKey:   I[:32],
		masterChain: I[32:],
		logger:      lg,
	}
	lg.Debugf("xcrypto: wallet master key initialised (%d bytes seed)", len(seed))
	return w, nil
}

// derivePrivate returns the key material and chain code for a hardened
// child index. index must already carry the hardened offset.
func derivePrivate(parentKey, parentChain []byte, index uint32) (key, ccode []byte, err error) {
	if index < hardenedOffset {
		return nil, nil, errors.New("xcrypto: non-hardened derivation not supported for ed25519")
	}
	data := make([]byte, 1+32+4)
	copy(data[1:], parentKey)
	binary.BigEndian.PutUint32(data[33:], index)
	I := hmacSHA512(parentChain, data)
	return I[:32], I[32:], nil
}

func hmacSHA512(key, data []byte) []byte {
	h := hmac.New(sha512.New, key)
	h.Write(data)
	return h.Sum(nil)
}

// PrivateKey derives the Ed25519 key pair at path m / account' / index'.
func (w *HDWallet) PrivateKey(account, index uint32) (ed25519.PrivateKey, ed25519.PublicKey, error) {
	account |= hardenedOffset
	index |= hardenedOffset

	k1, c1, err := derivePrivate(w.masterKey, w.masterChain, account)
	if err != nil {
		return nil, nil, err
	}
	k2, _, err := derivePrivate(k1, c1, index)
	if err != nil {
		return nil, nil, err
	}
	priv := ed25519.NewKeyFromSeed(k2)
	pub := priv.Public().(ed25519.PublicKey)
	return priv, pub, nil
}

// Address derives account+index and returns its StrKey "G..." address.
func (w *HDWallet) Address(account, index uint32) (string, error) {
	_, pub, err := w.PrivateKey(account, index)
	if err != nil {
		return "", err
	}
	var raw [32]byte
	copy(raw[:], pub)
	return strkey.EncodeAccountID(raw), nil
}

// RandomEntropy produces cryptographically secure random entropy of the
// given bit length (a multiple of 32).
func RandomEntropy(bits int) ([]byte, error) {
	if bits%32 != 0 {
		return nil, errors.New("xcrypto: entropy bits must be multiple of 32")
	}
	b := make([]byte, bits/8)
	if _, err := crand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}

// Wipe zeroes a byte slice in place (best effort; the GC may still hold
// copies elsewhere).
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
