package analyzer

import (
	"dedup-tools/record"
	"encoding/json"
)

// Duplicate is a record together with the paths of every record considered a
// duplicate of it, its own path included.
type Duplicate[T record.Record] struct {
	Record     T
	Duplicates []string
}

func (d Duplicate[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		record.Summary
		Duplicates []string `json:"duplicates"`
	}{record.Summarize(d.Record), nonNil(d.Duplicates)})
}

// Comparison is a source record with the target paths sharing its GroupID.
// No matches means the record is missing from the target.
type Comparison[T record.Record] struct {
	Record  T
	Matches []string
}

func (c Comparison[T]) Found() bool {
	return len(c.Matches) > 0
}

func (c Comparison[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		record.Summary
		Matches []string `json:"matches"`
	}{record.Summarize(c.Record), nonNil(c.Matches)})
}

// Partition splits comparisons into found and missing, keeping their order.
func Partition[T record.Record](comparisons []Comparison[T]) (found, missing []Comparison[T]) {
	found = make([]Comparison[T], 0, len(comparisons))
	missing = make([]Comparison[T], 0)

	for _, c := range comparisons {
		if c.Found() {
			found = append(found, c)
		} else {
			missing = append(missing, c)
		}
	}

	return found, missing
}

// Existence tells whether a source record's content is present in the target
// and which target files cover it.
type Existence[T record.Record] struct {
	Record   T
	Exists   bool
	Coverage []string
}

func (e Existence[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		record.Summary
		Exists   bool     `json:"exists"`
		Coverage []string `json:"coverage"`
	}{record.Summarize(e.Record), e.Exists, nonNil(e.Coverage)})
}

func nonNil(paths []string) []string {
	if paths == nil {
		return []string{}
	}

	return paths
}
