package record

import (
	"dedup-tools/crypto"
	"fmt"
	"github.com/google/uuid"
)

// DigestCombiner derives a directory digest from the digests of its children.
// It must be the algorithm used for file contents.
type DigestCombiner interface {
	HashDigests(digests []crypto.Digest) crypto.Digest
}

// DirectoryRecord owns its child directories and files. Size and hash are only
// meaningful after Update has run.
type DirectoryRecord struct {
	base
	directories []*DirectoryRecord
	files       []*FileRecord
}

func NewDirectoryRecord(name, path string) *DirectoryRecord {
	return &DirectoryRecord{base: base{
		id:   uuid.New(),
		name: name,
		path: path,
	}}
}

func (d *DirectoryRecord) String() string {
	return fmt.Sprintf("DirectoryRecord: id=%s, path=%s, size=%d", d.id, d.path, d.size)
}

func (d *DirectoryRecord) AddDirectory(record *DirectoryRecord) {
	d.directories = append(d.directories, record)
}

func (d *DirectoryRecord) AddFile(record *FileRecord) {
	d.files = append(d.files, record)
}

func (d *DirectoryRecord) Directories() []*DirectoryRecord {
	return d.directories
}

func (d *DirectoryRecord) Files() []*FileRecord {
	return d.files
}

// Update recalculates size and hash bottom-up, children before parents.
//
// The hash is fed the child file digests followed by the child directory
// digests in list order, so the same children in another order give another
// hash.
func (d *DirectoryRecord) Update(combiner DigestCombiner) {
	digests := make([]crypto.Digest, 0, len(d.files)+len(d.directories))
	size := int64(0)

	for _, directory := range d.directories {
		directory.Update(combiner)
	}

	for _, file := range d.files {
		size += file.size
		digests = append(digests, file.hash)
	}

	for _, directory := range d.directories {
		size += directory.size
		digests = append(digests, directory.hash)
	}

	d.size = size
	d.hash = combiner.HashDigests(digests)
}

// FlatDirectories lists this directory and every directory below it, depth
// first with each parent before its children.
func (d *DirectoryRecord) FlatDirectories() []*DirectoryRecord {
	result := []*DirectoryRecord{d}

	for _, directory := range d.directories {
		result = append(result, directory.FlatDirectories()...)
	}

	return result
}

// FlatFiles lists every file below this directory: its own files first, then
// those of each subdirectory in order.
func (d *DirectoryRecord) FlatFiles() []*FileRecord {
	result := append([]*FileRecord{}, d.files...)

	for _, directory := range d.directories {
		result = append(result, directory.FlatFiles()...)
	}

	return result
}

// Walk visits every directory depth first, parents before children. Returning
// false skips the children of that directory.
func (d *DirectoryRecord) Walk(visit func(*DirectoryRecord) bool) {
	if !visit(d) {
		return
	}

	for _, directory := range d.directories {
		directory.Walk(visit)
	}
}
