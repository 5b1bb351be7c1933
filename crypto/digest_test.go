package crypto

import (
	"crypto/sha256"
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestDigestEncodings(t *testing.T) {
	d := Digest(sha256.Sum256([]byte("x")))

	parsed, err := ParseHex(d.Hex())
	assert.NoError(t, err)
	assert.Equal(t, d, parsed)

	parsed, err = ParseBase58(d.Base58())
	assert.NoError(t, err)
	assert.Equal(t, d, parsed)
	assert.Less(t, len(d.Base58()), len(d.Hex()))
}

func TestDigestJSONIsHex(t *testing.T) {
	d := Digest(sha256.Sum256([]byte("x")))

	data, err := json.Marshal(d)
	assert.NoError(t, err)
	assert.Equal(t, `"`+d.Hex()+`"`, string(data))

	var decoded Digest
	assert.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, d, decoded)
}

func TestParseHexRejectsWrongLength(t *testing.T) {
	_, err := ParseHex("abcd")
	assert.ErrorIs(t, err, ErrInvalidDigest)

	_, err = ParseHex("zz")
	assert.ErrorIs(t, err, ErrInvalidDigest)
}

func TestZeroDigest(t *testing.T) {
	assert.True(t, Digest{}.IsZero())
	assert.Equal(t, "0000000000000000000000000000000000000000000000000000000000000000", Digest{}.Hex())
}
