package crypto

import (
	"encoding/hex"
	"errors"
	"fmt"
	"github.com/btcsuite/btcd/btcutil/base58"
)

// Size is the length in bytes of every Digest
const Size = 32

var ErrInvalidDigest = errors.New("invalid digest")

// Digest is a fixed length content checksum. The zero value is the sentinel
// used for files that were not hashed.
type Digest [Size]byte

func (d Digest) Hex() string {
	return hex.EncodeToString(d[:])
}

func (d Digest) String() string {
	return d.Hex()
}

// Base58 is the compact form stored in the catalog. 32 bytes give 43 to 44
// characters instead of 64 for hex.
func (d Digest) Base58() string {
	return base58.Encode(d[:])
}

func (d Digest) IsZero() bool {
	return d == Digest{}
}

func (d Digest) MarshalText() ([]byte, error) {
	return []byte(d.Hex()), nil
}

func (d *Digest) UnmarshalText(text []byte) error {
	parsed, err := ParseHex(string(text))

	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

func ParseHex(s string) (Digest, error) {
	raw, err := hex.DecodeString(s)

	if err != nil {
		return Digest{}, fmt.Errorf("%w: %v", ErrInvalidDigest, err)
	}

	return fromBytes(raw)
}

func ParseBase58(s string) (Digest, error) {
	return fromBytes(base58.Decode(s))
}

func fromBytes(raw []byte) (Digest, error) {
	var d Digest

	if len(raw) != Size {
		return d, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidDigest, Size, len(raw))
	}

	copy(d[:], raw)
	return d, nil
}
