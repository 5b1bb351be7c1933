// Package record holds the in-memory tree of an indexed directory. Every
// FileRecord and DirectoryRecord carries a content digest and a size, which
// together form the GroupID used to decide duplication.
package record

import (
	"dedup-tools/crypto"
	"fmt"
	"github.com/google/uuid"
)

// SizeDigits is the fixed width the size is padded to inside a GroupID. It must
// be large enough for the largest directory size in any tree.
const SizeDigits = 15

type Record interface {
	// ID is unique per process and only used for bookkeeping while matching.
	ID() uuid.UUID
	Name() string
	// Path is the filesystem path at scan time. It is never part of the identity.
	Path() string
	Size() int64
	Hash() crypto.Digest
	// GroupID is equal for two records iff their hash and size are equal.
	GroupID() string
}

type base struct {
	id   uuid.UUID
	name string
	path string
	size int64
	hash crypto.Digest
}

func (b *base) ID() uuid.UUID {
	return b.id
}

func (b *base) Name() string {
	return b.name
}

func (b *base) Path() string {
	return b.path
}

func (b *base) Size() int64 {
	return b.size
}

func (b *base) Hash() crypto.Digest {
	return b.hash
}

func (b *base) GroupID() string {
	return GroupID(b.hash, b.size)
}

// GroupID formats "<hash in hex>-<size zero padded to SizeDigits>". The fixed
// width keeps lexical order equal to numeric order for equal hashes.
func GroupID(hash crypto.Digest, size int64) string {
	return fmt.Sprintf("%s-%0*d", hash.Hex(), SizeDigits, size)
}

// FileRecord is always a leaf of the tree.
type FileRecord struct {
	base
}

func NewFileRecord(name, path string, size int64, hash crypto.Digest) *FileRecord {
	return &FileRecord{base{
		id:   uuid.New(),
		name: name,
		path: path,
		size: size,
		hash: hash,
	}}
}

func (f *FileRecord) String() string {
	return fmt.Sprintf("FileRecord: id=%s, path=%s, size=%d", f.id, f.path, f.size)
}

// NonEmpty drops every record that is 0 bytes in size.
func NonEmpty[T Record](records []T) []T {
	result := make([]T, 0, len(records))

	for _, r := range records {
		if r.Size() > 0 {
			result = append(result, r)
		}
	}

	return result
}

// Filter keeps the records the predicate accepts. A nil predicate accepts all.
func Filter[T Record](records []T, keep func(T) bool) []T {
	if keep == nil {
		return records
	}

	result := make([]T, 0, len(records))

	for _, r := range records {
		if keep(r) {
			result = append(result, r)
		}
	}

	return result
}
