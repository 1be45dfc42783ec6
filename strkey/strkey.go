// Package strkey implements the versioned base32 address encoding used
// throughout the chain's client surface: StrKey turns a raw payload (an
// ed25519 public/secret key, a pre-authorized transaction hash, a hash-x
// signer, a muxed account, or a contract ID) into a checksummed string
// beginning with a version-specific letter.
package strkey

import (
	"encoding/binary"
	"strings"

	base32 "github.com/multiformats/go-base32"
)

// VersionByte identifies the payload kind a StrKey string encodes.
type VersionByte byte

const (
	VersionAccountID        VersionByte = 6 << 3 // 'G'
	VersionMuxedAccount     VersionByte = 12 << 3 // 'M'
	VersionPrivateKey       VersionByte = 18 << 3 // 'S'
	VersionPreAuthTx        VersionByte = 19 << 3 // 'T'
	VersionHashX            VersionByte = 23 << 3 // 'X'
	VersionSignedPayload    VersionByte = 15 << 3 // 'P'
	VersionContract         VersionByte = 2 << 3  // 'C'
)

// muxedAccountPayloadLen is the fixed payload size for a muxed account: a
// 32-byte ed25519 key followed by a big-endian uint64 multiplexing id
// (spec.md §4.4).
const muxedAccountPayloadLen = 40

// MaxSignedPayloadBytes bounds the variable-length payload a signed-payload
// address can carry.
const MaxSignedPayloadBytes = 64

// ErrorKind classifies why a StrKey string failed to decode.
type ErrorKind int

const (
	ErrInvalidBase32 ErrorKind = iota
	ErrInvalidLength
	ErrInvalidVersion
	ErrChecksumMismatch
)

func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidBase32:
		return "invalid_base32"
	case ErrInvalidLength:
		return "invalid_length"
	case ErrInvalidVersion:
		return "invalid_version"
	case ErrChecksumMismatch:
		return "checksum_mismatch"
	default:
		return "unknown"
	}
}

// Error reports a StrKey decode failure.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return "strkey: " + e.Message }

func newErr(kind ErrorKind, msg string) error {
	return &Error{Kind: kind, Message: msg}
}

// Encode base32-encodes (RFC 4648, no padding) version||payload||crc16,
// where crc16 is the XModem CRC over version||payload (spec.md §7 StrKey).
func Encode(version VersionByte, payload []byte) string {
	body := make([]byte, 1+len(payload))
	body[0] = byte(version)
	copy(body[1:], payload)
	sum := crc16XModem(body)
	full := make([]byte, len(body)+2)
	copy(full, body)
	full[len(body)] = byte(sum)
	full[len(body)+1] = byte(sum >> 8)
	return base32.RawStdEncoding.EncodeToString(full)
}

// Decode validates and strips the version byte and checksum, returning the
// raw payload. It rejects strings whose declared version does not match
// wantVersion.
func Decode(wantVersion VersionByte, s string) ([]byte, error) {
	if s == "" || strings.ContainsAny(s, "\n\r \t") {
		return nil, newErr(ErrInvalidBase32, "empty or whitespace-containing string")
	}
	full, err := base32.RawStdEncoding.DecodeString(s)
	if err != nil {
		return nil, newErr(ErrInvalidBase32, "not valid base32: "+err.Error())
	}
	if len(full) < 3 {
		return nil, newErr(ErrInvalidLength, "decoded length too short")
	}
	body := full[:len(full)-2]
	wantSum := crc16XModem(body)
	gotSum := uint16(full[len(full)-2]) | uint16(full[len(full)-1])<<8
	if wantSum != gotSum {
		return nil, newErr(ErrChecksumMismatch, "crc16 mismatch")
	}
	gotVersion := VersionByte(body[0])
	if gotVersion != wantVersion {
		return nil, newErr(ErrInvalidVersion, "unexpected version byte")
	}
	payload := body[1:]
	if err := validatePayloadLength(gotVersion, payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// validatePayloadLength re-checks that payload has the shape wantVersion
// requires, independent of the generic base32/CRC framing already validated
// in Decode (spec.md §4.4 step 4).
func validatePayloadLength(version VersionByte, payload []byte) error {
	switch version {
	case VersionAccountID, VersionPrivateKey, VersionPreAuthTx, VersionHashX, VersionContract:
		if len(payload) != 32 {
			return newErr(ErrInvalidLength, "payload must be 32 bytes for this version")
		}
	case VersionMuxedAccount:
		if len(payload) != muxedAccountPayloadLen {
			return newErr(ErrInvalidLength, "muxed account payload must be 40 bytes")
		}
	case VersionSignedPayload:
		if len(payload) < 36 {
			return newErr(ErrInvalidLength, "signed payload must be at least 36 bytes")
		}
		innerLen := binary.BigEndian.Uint32(payload[32:36])
		if innerLen > MaxSignedPayloadBytes {
			return newErr(ErrInvalidLength, "signed payload length exceeds max")
		}
		padLen := (4 - int(innerLen)%4) % 4
		if len(payload) != 36+int(innerLen)+padLen {
			return newErr(ErrInvalidLength, "signed payload length does not match declared length plus padding")
		}
	default:
		return newErr(ErrInvalidVersion, "unknown version byte")
	}
	return nil
}

// IsValid reports whether s decodes cleanly under wantVersion.
func IsValid(wantVersion VersionByte, s string) bool {
	_, err := Decode(wantVersion, s)
	return err == nil
}

// crc16XModem computes the CRC-16/XMODEM checksum (polynomial 0x1021,
// initial value 0, no reflection) specified by the StrKey format. No
// third-party CRC library in the corpus implements this polynomial (the
// pack's CRC usage is all CRC32 via stdlib hash/crc32), so it is hand
// rolled directly from the definition.
func crc16XModem(data []byte) uint16 {
	var crc uint16
	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = (crc << 1) ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

// EncodeAccountID encodes a 32-byte ed25519 public key as a "G..." address.
func EncodeAccountID(pub [32]byte) string { return Encode(VersionAccountID, pub[:]) }

// DecodeAccountID decodes a "G..." address into its raw public key.
func DecodeAccountID(s string) ([32]byte, error) {
	var out [32]byte
	b, err := Decode(VersionAccountID, s)
	if err != nil {
		return out, err
	}
	if len(b) != 32 {
		return out, newErr(ErrInvalidLength, "account id payload must be 32 bytes")
	}
	copy(out[:], b)
	return out, nil
}

// EncodeSeed encodes a 32-byte ed25519 seed as an "S..." secret key.
func EncodeSeed(seed [32]byte) string { return Encode(VersionPrivateKey, seed[:]) }

// DecodeSeed decodes an "S..." secret key into its raw seed.
func DecodeSeed(s string) ([32]byte, error) {
	var out [32]byte
	b, err := Decode(VersionPrivateKey, s)
	if err != nil {
		return out, err
	}
	if len(b) != 32 {
		return out, newErr(ErrInvalidLength, "seed payload must be 32 bytes")
	}
	copy(out[:], b)
	return out, nil
}

// EncodeContract encodes a 32-byte contract ID as a "C..." address.
func EncodeContract(id [32]byte) string { return Encode(VersionContract, id[:]) }

// DecodeContract decodes a "C..." address into its raw contract ID.
func DecodeContract(s string) ([32]byte, error) {
	var out [32]byte
	b, err := Decode(VersionContract, s)
	if err != nil {
		return out, err
	}
	if len(b) != 32 {
		return out, newErr(ErrInvalidLength, "contract id payload must be 32 bytes")
	}
	copy(out[:], b)
	return out, nil
}

// EncodePreAuthTx encodes a 32-byte pre-authorized transaction hash as a
// "T..." address.
func EncodePreAuthTx(hash [32]byte) string { return Encode(VersionPreAuthTx, hash[:]) }

// DecodePreAuthTx decodes a "T..." address into its raw transaction hash.
func DecodePreAuthTx(s string) ([32]byte, error) {
	var out [32]byte
	b, err := Decode(VersionPreAuthTx, s)
	if err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}

// EncodeHashX encodes a 32-byte sha256 hash-x signer as an "X..." address.
func EncodeHashX(hash [32]byte) string { return Encode(VersionHashX, hash[:]) }

// DecodeHashX decodes an "X..." address into its raw hash.
func DecodeHashX(s string) ([32]byte, error) {
	var out [32]byte
	b, err := Decode(VersionHashX, s)
	if err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}

// EncodeMuxedAccount encodes a 32-byte ed25519 key and a uint64 multiplexing
// id as an "M..." address: key || id, id big-endian (spec.md §4.4).
func EncodeMuxedAccount(key [32]byte, id uint64) string {
	payload := make([]byte, muxedAccountPayloadLen)
	copy(payload, key[:])
	binary.BigEndian.PutUint64(payload[32:], id)
	return Encode(VersionMuxedAccount, payload)
}

// DecodeMuxedAccount decodes an "M..." address into its ed25519 key and
// multiplexing id.
func DecodeMuxedAccount(s string) (key [32]byte, id uint64, err error) {
	b, err := Decode(VersionMuxedAccount, s)
	if err != nil {
		return key, 0, err
	}
	copy(key[:], b[:32])
	id = binary.BigEndian.Uint64(b[32:40])
	return key, id, nil
}

// EncodeSignedPayload encodes an ed25519 key and an arbitrary payload (up to
// MaxSignedPayloadBytes) as a "P..." address: key || u32 length || payload ||
// zero padding to a multiple of 4 (spec.md §4.4).
func EncodeSignedPayload(key [32]byte, payload []byte) (string, error) {
	if len(payload) > MaxSignedPayloadBytes {
		return "", newErr(ErrInvalidLength, "signed payload exceeds max length")
	}
	padLen := (4 - len(payload)%4) % 4
	body := make([]byte, 32+4+len(payload)+padLen)
	copy(body, key[:])
	binary.BigEndian.PutUint32(body[32:36], uint32(len(payload)))
	copy(body[36:], payload)
	return Encode(VersionSignedPayload, body), nil
}

// DecodeSignedPayload decodes a "P..." address into its ed25519 key and
// payload, with the zero padding stripped.
func DecodeSignedPayload(s string) (key [32]byte, payload []byte, err error) {
	b, err := Decode(VersionSignedPayload, s)
	if err != nil {
		return key, nil, err
	}
	copy(key[:], b[:32])
	innerLen := binary.BigEndian.Uint32(b[32:36])
	payload = make([]byte, innerLen)
	copy(payload, b[36:36+int(innerLen)])
	return key, payload, nil
}

// IsValidSignerKey reports whether s is a valid StrKey address for any of
// the signer-key variants a transaction's extra signers or SignerKey XDR
// union can carry: ed25519 public key (G), pre-authorized transaction hash
// (T), hash-x (X), or signed payload (P).
func IsValidSignerKey(s string) bool {
	for _, v := range []VersionByte{VersionAccountID, VersionPreAuthTx, VersionHashX, VersionSignedPayload} {
		if IsValid(v, s) {
			return true
		}
	}
	return false
}
