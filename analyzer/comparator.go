package analyzer

import (
	"dedup-tools/record"
	"log"
)

// ComparatorMatcher reports, for every source record, the target records
// sharing its GroupID.
type ComparatorMatcher struct {
	source *record.DirectoryRecord
	target *record.DirectoryRecord
	logger *log.Logger
}

func NewComparatorMatcher(source, target *record.DirectoryRecord, logger *log.Logger) (*ComparatorMatcher, error) {
	if source == nil || target == nil {
		return nil, ErrNilTree
	}

	return &ComparatorMatcher{source: source, target: target, logger: loggerOrDefault(logger)}, nil
}

// Directories reports every source directory, except those lying inside a
// source directory already found in the target.
func (m *ComparatorMatcher) Directories(filter func(*record.DirectoryRecord) bool) []Comparison[*record.DirectoryRecord] {
	m.logger.Printf("Matching directories of \"%s\" against \"%s\"", m.source.Path(), m.target.Path())

	targets := record.IndexByGroupID(candidates(m.target.FlatDirectories(), filter))
	outcomes := resolve(singletons(candidates(m.source.FlatDirectories(), filter)), strategy[*record.DirectoryRecord]{
		match:       lookup(targets),
		descendants: flatDirectories,
	})

	return comparisons(outcomes)
}

// Files reports every source file on its own.
func (m *ComparatorMatcher) Files(filter func(*record.FileRecord) bool) []Comparison[*record.FileRecord] {
	m.logger.Printf("Matching files of \"%s\" against \"%s\"", m.source.Path(), m.target.Path())

	targets := record.IndexByGroupID(candidates(m.target.FlatFiles(), filter))
	outcomes := resolve(singletons(candidates(m.source.FlatFiles(), filter)), strategy[*record.FileRecord]{
		match: lookup(targets),
	})

	return comparisons(outcomes)
}

// lookup matches a unit against an index of target records by GroupID.
func lookup[T record.Record](targets map[string][]T) func([]T) ([]string, bool) {
	return func(members []T) ([]string, bool) {
		matches := targets[members[0].GroupID()]
		return record.Paths(matches), len(matches) > 0
	}
}

func comparisons[T record.Record](outcomes []outcome[T]) []Comparison[T] {
	result := make([]Comparison[T], 0, len(outcomes))

	for _, o := range outcomes {
		result = append(result, Comparison[T]{Record: o.record, Matches: o.related})
	}

	return result
}
