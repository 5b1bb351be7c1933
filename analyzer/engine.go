// Package analyzer finds duplicated records inside one tree and matches the
// records of a source tree against a target tree.
//
// All three algorithms share one rule: once a directory is matched none of its
// descendant directories are reported on their own, because the match of the
// parent already implies theirs.
package analyzer

import (
	"dedup-tools/record"
	"errors"
	"github.com/google/uuid"
	"log"
)

var ErrNilTree = errors.New("tree must not be nil")

// outcome is one reported unit before it is shaped into a result type.
type outcome[T record.Record] struct {
	record  T
	related []string
	matched bool
}

// strategy parametrizes resolve for one algorithm and one record kind.
type strategy[T record.Record] struct {
	// match decides a unit. A unit is a group of records considered equal,
	// the first member represents it.
	match func(members []T) (related []string, matched bool)
	// descendants lists the directories a matched member covers. Nil turns
	// nested suppression off.
	descendants func(member T) []*record.DirectoryRecord
}

// resolve walks the units in order and applies nested suppression. Units must
// be ordered parents before descendants for the suppression to hold. The
// covered set is local to each call.
func resolve[T record.Record](units [][]T, s strategy[T]) []outcome[T] {
	covered := make(map[uuid.UUID]struct{})
	outcomes := make([]outcome[T], 0, len(units))

	for _, members := range units {
		if s.descendants != nil && allCovered(members, covered) {
			// Wholly inside an already reported directory
			continue
		}

		related, matched := s.match(members)
		outcomes = append(outcomes, outcome[T]{
			record:  representative(members, covered),
			related: related,
			matched: matched,
		})

		if !matched || s.descendants == nil {
			continue
		}

		for _, member := range members {
			for _, descendant := range s.descendants(member) {
				covered[descendant.ID()] = struct{}{}
			}
		}
	}

	return outcomes
}

// representative is the first member outside every reported directory, so a
// reported record never lies inside another one.
func representative[T record.Record](members []T, covered map[uuid.UUID]struct{}) T {
	for _, member := range members {
		if _, found := covered[member.ID()]; !found {
			return member
		}
	}

	return members[0]
}

func allCovered[T record.Record](members []T, covered map[uuid.UUID]struct{}) bool {
	for _, member := range members {
		if _, found := covered[member.ID()]; !found {
			return false
		}
	}

	return true
}

// candidates drops 0 byte records, then applies the caller's filter.
func candidates[T record.Record](records []T, filter func(T) bool) []T {
	return record.Filter(record.NonEmpty(records), filter)
}

func singletons[T record.Record](records []T) [][]T {
	units := make([][]T, 0, len(records))

	for _, r := range records {
		units = append(units, []T{r})
	}

	return units
}

func flatDirectories(directory *record.DirectoryRecord) []*record.DirectoryRecord {
	return directory.FlatDirectories()
}

func loggerOrDefault(logger *log.Logger) *log.Logger {
	if logger == nil {
		return log.Default()
	}

	return logger
}
