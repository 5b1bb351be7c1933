// Package indexer builds a record tree mirroring a directory on disk.
package indexer

import (
	"dedup-tools/crypto"
	"dedup-tools/record"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"slices"
)

var (
	ErrInvalidRoot = errors.New("index root must be an existing directory")
	ErrWalkFailed  = errors.New("directory walk failed")
	ErrNoHasher    = errors.New("a hasher is required")
)

// FileHasher produces file digests and combines child digests for directories.
type FileHasher interface {
	HashFile(path string) (crypto.Digest, error)
	HashDigests(digests []crypto.Digest) crypto.Digest
}

// Stats are the counters of one walk.
type Stats struct {
	NextCalls      int64
	DirectoryCount int64
	FileCount      int64
	TotalSize      int64
	Remaining      int
}

// Progress is reported after every listed directory.
type Progress struct {
	Stats
	Directory string
}

type Config struct {
	Hasher FileHasher
	// When false every file gets the all-zero digest and no file is read.
	ComputeHashes       bool
	FileNamesToIgnore   []string
	FolderNamesToIgnore []string
	// Debug logs every visited directory.
	Debug    bool
	Logger   *log.Logger
	Progress func(Progress)
}

type Indexer struct {
	hasher              FileHasher
	computeHashes       bool
	fileNamesToIgnore   []string
	folderNamesToIgnore []string
	debug               bool
	logger              *log.Logger
	progress            func(Progress)
	stats               Stats
}

func New(cfg Config) (*Indexer, error) {
	if cfg.Hasher == nil {
		return nil, ErrNoHasher
	}

	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}

	return &Indexer{
		hasher:              cfg.Hasher,
		computeHashes:       cfg.ComputeHashes,
		fileNamesToIgnore:   cfg.FileNamesToIgnore,
		folderNamesToIgnore: cfg.FolderNamesToIgnore,
		debug:               cfg.Debug,
		logger:              cfg.Logger,
		progress:            cfg.Progress,
	}, nil
}

// Stats returns the counters of the last Index call.
func (i *Indexer) Stats() Stats {
	return i.stats
}

// Index walks rootPath breadth first and returns the fully updated tree. Any
// listing or read failure aborts the whole walk and no tree is returned.
func (i *Indexer) Index(rootPath string) (*record.DirectoryRecord, error) {
	rootPath = filepath.Clean(rootPath)
	info, err := os.Stat(rootPath)

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRoot, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: \"%s\" is not a directory", ErrInvalidRoot, rootPath)
	}

	i.logger.Printf("Indexing \"%s\"", rootPath)

	root := record.NewDirectoryRecord(filepath.Base(rootPath), rootPath)

	var directoryRoad road
	directoryRoad.init(root, rootPath)

	for {
		current, found := directoryRoad.next()

		if !found {
			break
		}

		if err := i.visit(&directoryRoad, current); err != nil {
			i.stats = directoryRoad.snapshot()
			return nil, err
		}

		if i.debug {
			i.logger.Printf("Indexed directory \"%s\" (%d left)", current.path, len(directoryRoad.stops))
		}

		if i.progress != nil {
			i.progress(Progress{Stats: directoryRoad.snapshot(), Directory: current.path})
		}
	}

	// The walk is complete, so a single update populates every directory bottom-up
	root.Update(i.hasher)

	i.stats = directoryRoad.snapshot()
	i.logger.Printf("Indexed \"%s\": %d directories, %d files, %d bytes", rootPath, i.stats.DirectoryCount, i.stats.FileCount, i.stats.TotalSize)

	return root, nil
}

func (i *Indexer) visit(directoryRoad *road, current stop) error {
	entries, err := os.ReadDir(current.path)

	if err != nil {
		return fmt.Errorf("%w: listing \"%s\": %w", ErrWalkFailed, current.path, err)
	}

	for _, entry := range entries {
		entryPath := filepath.Join(current.path, entry.Name())

		switch {
		case entry.IsDir():
			if slices.Contains(i.folderNamesToIgnore, entry.Name()) {
				continue
			}

			directory := record.NewDirectoryRecord(entry.Name(), entryPath)
			current.record.AddDirectory(directory)
			directoryRoad.addStop(directory, entryPath)

		case entry.Type().IsRegular():
			if slices.Contains(i.fileNamesToIgnore, entry.Name()) {
				continue
			}

			file, err := i.fileRecord(entry, entryPath)

			if err != nil {
				return err
			}

			current.record.AddFile(file)
			directoryRoad.addFile(file.Size())

		default:
			// Symlinks, devices, sockets and pipes are not part of the index
		}
	}

	return nil
}

func (i *Indexer) fileRecord(entry fs.DirEntry, entryPath string) (*record.FileRecord, error) {
	info, err := entry.Info()

	if err != nil {
		return nil, fmt.Errorf("%w: stat \"%s\": %w", ErrWalkFailed, entryPath, err)
	}

	var digest crypto.Digest

	if i.computeHashes {
		digest, err = i.hasher.HashFile(entryPath)

		if err != nil {
			return nil, fmt.Errorf("%w: hashing \"%s\": %w", ErrWalkFailed, entryPath, err)
		}
	}

	return record.NewFileRecord(entry.Name(), entryPath, info.Size(), digest), nil
}
