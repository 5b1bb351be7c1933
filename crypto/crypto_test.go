package crypto

import (
	"crypto/sha256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, content []byte) string {
	filePath := filepath.Join(t.TempDir(), "file.bin")
	require.NoError(t, os.WriteFile(filePath, content, 0600))
	return filePath
}

func TestHashFileSHA256(t *testing.T) {
	hasher, err := NewHasher(SHA256)
	require.NoError(t, err)

	content := []byte("Hello, World!")
	result, err := hasher.HashFile(writeFile(t, content))
	assert.NoError(t, err)

	assert.Equal(t, Digest(sha256.Sum256(content)), result)
	assert.Equal(t, "dffd6021bb2bd5b0af676290809ec3a53191dd81c7f70a4b28688a362182986f", result.Hex())
}

func TestHashFileBLAKE2b(t *testing.T) {
	hasher, err := NewHasher(BLAKE2b256)
	require.NoError(t, err)

	content := []byte("Hello, World!")
	result, err := hasher.HashFile(writeFile(t, content))
	assert.NoError(t, err)

	assert.Equal(t, Digest(blake2b.Sum256(content)), result)
}

func TestHashFileSpanningChunks(t *testing.T) {
	hasher, err := NewHasher(SHA256)
	require.NoError(t, err)

	content := make([]byte, chunkSize*3+17)
	for i := range content {
		content[i] = byte(i % 251)
	}

	result, err := hasher.HashFile(writeFile(t, content))
	assert.NoError(t, err)
	assert.Equal(t, Digest(sha256.Sum256(content)), result)
}

func TestHashFileIsDeterministicAndSensitiveToOneByte(t *testing.T) {
	hasher, err := NewHasher(SHA256)
	require.NoError(t, err)

	content := []byte(strings.Repeat("dedup-tools", 1000))

	first, err := hasher.HashFile(writeFile(t, content))
	require.NoError(t, err)
	second, err := hasher.HashFile(writeFile(t, content))
	require.NoError(t, err)
	assert.Equal(t, first, second)

	content[500] ^= 0x01
	changed, err := hasher.HashFile(writeFile(t, content))
	require.NoError(t, err)
	assert.NotEqual(t, first, changed)
}

func TestHashFileNotFound(t *testing.T) {
	hasher, err := NewHasher(SHA256)
	require.NoError(t, err)

	_, err = hasher.HashFile(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestHashDigestsIsOrderSensitive(t *testing.T) {
	hasher, err := NewHasher(SHA256)
	require.NoError(t, err)

	a := Digest(sha256.Sum256([]byte("a")))
	b := Digest(sha256.Sum256([]byte("b")))

	expected := sha256.Sum256(append(append([]byte{}, a[:]...), b[:]...))

	assert.Equal(t, Digest(expected), hasher.HashDigests([]Digest{a, b}))
	assert.NotEqual(t, hasher.HashDigests([]Digest{a, b}), hasher.HashDigests([]Digest{b, a}))
	assert.Equal(t, Digest(sha256.Sum256(nil)), hasher.HashDigests(nil))
}

func TestNewHasherUnknownAlgorithm(t *testing.T) {
	_, err := NewHasher("md4")
	assert.ErrorIs(t, err, ErrHashingUnavailable)
}

func TestNewHasherIsCaseInsensitive(t *testing.T) {
	hasher, err := NewHasher("SHA-256")
	assert.NoError(t, err)
	assert.Equal(t, SHA256, hasher.Algorithm())
}
