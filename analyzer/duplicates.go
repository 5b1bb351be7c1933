package analyzer

import (
	"dedup-tools/record"
	"log"
)

type DuplicateFinder struct {
	root   *record.DirectoryRecord
	logger *log.Logger
}

func NewDuplicateFinder(root *record.DirectoryRecord, logger *log.Logger) (*DuplicateFinder, error) {
	if root == nil {
		return nil, ErrNilTree
	}

	return &DuplicateFinder{root: root, logger: loggerOrDefault(logger)}, nil
}

// Directories returns the top-most duplicated directories. No reported
// directory lies inside another reported one.
func (f *DuplicateFinder) Directories(filter func(*record.DirectoryRecord) bool) []Duplicate[*record.DirectoryRecord] {
	f.logger.Printf("Searching for duplicated directories in \"%s\"", f.root.Path())

	groups := duplicatedGroups(candidates(f.root.FlatDirectories(), filter))
	outcomes := resolve(groups, strategy[*record.DirectoryRecord]{
		match:       allMembers[*record.DirectoryRecord],
		descendants: flatDirectories,
	})

	f.logger.Printf("Found %d duplicated directory groups, %d reported after nesting", len(groups), len(outcomes))
	return duplicates(outcomes)
}

// Files returns one entry per group of files sharing a GroupID.
func (f *DuplicateFinder) Files(filter func(*record.FileRecord) bool) []Duplicate[*record.FileRecord] {
	f.logger.Printf("Searching for duplicated files in \"%s\"", f.root.Path())

	groups := duplicatedGroups(candidates(f.root.FlatFiles(), filter))
	outcomes := resolve(groups, strategy[*record.FileRecord]{
		match: allMembers[*record.FileRecord],
	})

	f.logger.Printf("Found %d duplicated file groups", len(outcomes))
	return duplicates(outcomes)
}

// duplicatedGroups ignores single member groups, which hold no duplication.
func duplicatedGroups[T record.Record](records []T) [][]T {
	var units [][]T

	for _, group := range record.Groups(records) {
		if len(group.Members) > 1 {
			units = append(units, group.Members)
		}
	}

	return units
}

func allMembers[T record.Record](members []T) ([]string, bool) {
	return record.Paths(members), true
}

func duplicates[T record.Record](outcomes []outcome[T]) []Duplicate[T] {
	result := make([]Duplicate[T], 0, len(outcomes))

	for _, o := range outcomes {
		result = append(result, Duplicate[T]{Record: o.record, Duplicates: o.related})
	}

	return result
}
