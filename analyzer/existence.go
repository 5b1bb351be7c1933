package analyzer

import (
	"dedup-tools/record"
	"log"
)

// ExistenceChecker decides whether the file content of each source record is
// present anywhere in the target, regardless of how the target is laid out.
type ExistenceChecker struct {
	source *record.DirectoryRecord
	target *record.DirectoryRecord
	logger *log.Logger
}

func NewExistenceChecker(source, target *record.DirectoryRecord, logger *log.Logger) (*ExistenceChecker, error) {
	if source == nil || target == nil {
		return nil, ErrNilTree
	}

	return &ExistenceChecker{source: source, target: target, logger: loggerOrDefault(logger)}, nil
}

// Directories reports a source directory as existent when every non-empty file
// below it has a match among the target files. Its own aggregate hash plays no
// part. Empty files never need a match, so a directory holding an empty file
// can still exist in a target without it.
func (c *ExistenceChecker) Directories(filter func(*record.DirectoryRecord) bool) []Existence[*record.DirectoryRecord] {
	c.logger.Printf("Checking existence of directories of \"%s\" in \"%s\"", c.source.Path(), c.target.Path())

	targetFiles := c.targetFiles()
	outcomes := resolve(singletons(candidates(c.source.FlatDirectories(), filter)), strategy[*record.DirectoryRecord]{
		match: func(members []*record.DirectoryRecord) ([]string, bool) {
			return cover(members[0].FlatFiles(), targetFiles)
		},
		descendants: flatDirectories,
	})

	return existences(outcomes)
}

func (c *ExistenceChecker) Files(filter func(*record.FileRecord) bool) []Existence[*record.FileRecord] {
	c.logger.Printf("Checking existence of files of \"%s\" in \"%s\"", c.source.Path(), c.target.Path())

	targetFiles := c.targetFiles()
	outcomes := resolve(singletons(candidates(c.source.FlatFiles(), filter)), strategy[*record.FileRecord]{
		match: func(members []*record.FileRecord) ([]string, bool) {
			return cover(members, targetFiles)
		},
	})

	return existences(outcomes)
}

func (c *ExistenceChecker) targetFiles() map[string][]*record.FileRecord {
	return record.IndexByGroupID(record.NonEmpty(c.target.FlatFiles()))
}

// cover collects the target paths of every file. A single file without a match
// means no coverage at all. Coverage is not deduplicated across files.
func cover(files []*record.FileRecord, targetFiles map[string][]*record.FileRecord) ([]string, bool) {
	var coverage []string

	for _, file := range record.NonEmpty(files) {
		matches := targetFiles[file.GroupID()]

		if len(matches) == 0 {
			return []string{}, false
		}

		coverage = append(coverage, record.Paths(matches)...)
	}

	return coverage, true
}

func existences[T record.Record](outcomes []outcome[T]) []Existence[T] {
	result := make([]Existence[T], 0, len(outcomes))

	for _, o := range outcomes {
		result = append(result, Existence[T]{Record: o.record, Exists: o.matched, Coverage: o.related})
	}

	return result
}
