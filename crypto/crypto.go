package crypto

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"golang.org/x/crypto/blake2b"
	"hash"
	"io"
	"os"
	"path"
	"strings"
)

var ErrHashingUnavailable = errors.New("hashing algorithm unavailable")

type Algorithm string

const (
	SHA256     Algorithm = "sha-256"
	BLAKE2b256 Algorithm = "blake2b-256"
)

// Files are streamed through the digest in chunks of this size
const chunkSize = 8192

// Hasher computes content digests of files and combines child digests into a
// parent digest with the same algorithm.
type Hasher struct {
	algorithm Algorithm
	newHash   func() (hash.Hash, error)
}

func NewHasher(algorithm Algorithm) (*Hasher, error) {
	h := &Hasher{algorithm: Algorithm(strings.ToLower(string(algorithm)))}

	switch h.algorithm {
	case SHA256:
		h.newHash = func() (hash.Hash, error) {
			return sha256.New(), nil
		}
	case BLAKE2b256:
		// https://crypto.stackexchange.com/a/89559
		// BLAKE2b is faster than SHA-2 on 64-bit hardware and gives us the same 32 bytes
		h.newHash = func() (hash.Hash, error) {
			return blake2b.New256(nil)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrHashingUnavailable, algorithm)
	}

	// Make sure the primitive can actually be constructed before any walk starts
	probe, err := h.newHash()

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHashingUnavailable, err)
	}

	if probe.Size() != Size {
		return nil, fmt.Errorf("%w: %q produces %d bytes", ErrHashingUnavailable, algorithm, probe.Size())
	}

	return h, nil
}

func (h *Hasher) Algorithm() Algorithm {
	return h.algorithm
}

// HashFile streams the content of filePath through the digest.
func (h *Hasher) HashFile(filePath string) (Digest, error) {
	file, err := os.Open(path.Clean(filePath))

	if err != nil {
		return Digest{}, err
	}

	defer file.Close()

	digest, err := h.HashReader(file)

	if err != nil {
		return Digest{}, fmt.Errorf("failed to read \"%s\": %w", filePath, err)
	}

	return digest, nil
}

func (h *Hasher) HashReader(reader io.Reader) (Digest, error) {
	state, err := h.newHash()

	if err != nil {
		return Digest{}, err
	}

	buffer := make([]byte, chunkSize)

	for {
		size, err := reader.Read(buffer)

		if size > 0 {
			state.Write(buffer[0:size])
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return Digest{}, err
		}
	}

	return sum(state), nil
}

// HashDigests feeds the digests to the algorithm in the given order. The
// result is not permutation invariant.
func (h *Hasher) HashDigests(digests []Digest) Digest {
	// newHash was probed in NewHasher, so it cannot fail here
	state, _ := h.newHash()

	for _, digest := range digests {
		state.Write(digest[:])
	}

	return sum(state)
}

func sum(state hash.Hash) Digest {
	var digest Digest
	copy(digest[:], state.Sum(nil))
	return digest
}
