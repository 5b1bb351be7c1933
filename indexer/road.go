package indexer

import "dedup-tools/record"

// stop is one directory the walker still has to list.
type stop struct {
	record *record.DirectoryRecord
	path   string
}

// road is the breadth-first work queue of the walk together with the counters
// reported as progress.
type road struct {
	stops []stop
	stats Stats
}

// init seeds the road with the root, which counts as a directory.
func (r *road) init(root *record.DirectoryRecord, rootPath string) {
	r.stops = []stop{{record: root, path: rootPath}}
	r.stats = Stats{DirectoryCount: 1}
}

// next returns false once the road is empty.
func (r *road) next() (stop, bool) {
	r.stats.NextCalls++

	if len(r.stops) == 0 {
		return stop{}, false
	}

	current := r.stops[0]
	r.stops[0] = stop{}
	r.stops = r.stops[1:]

	return current, true
}

func (r *road) addStop(directory *record.DirectoryRecord, path string) {
	r.stops = append(r.stops, stop{record: directory, path: path})
	r.stats.DirectoryCount++
}

func (r *road) addFile(size int64) {
	r.stats.FileCount++
	r.stats.TotalSize += size
}

func (r *road) snapshot() Stats {
	stats := r.stats
	stats.Remaining = len(r.stops)
	return stats
}
