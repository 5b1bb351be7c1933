package utils

import (
	"fmt"
	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"log"
)

// Spinner shows indexing progress on the console. Its Report method plugs into
// the indexer as a progress observer.
type Spinner struct {
	bar *progressbar.ProgressBar
}

func NewSpinner(description string) *Spinner {
	return &Spinner{bar: progressbar.Default(-1, description)}
}

func (s *Spinner) Report(directories, files, totalSize int64) {
	s.bar.Describe(fmt.Sprintf("%s, %s, %s", Pluralize("directory", directories), Pluralize("file", files), humanize.Bytes(uint64(totalSize))))

	err := s.bar.Add(1)

	if err != nil {
		log.Printf("failed to update progress bar: %v", err)
	}
}

func (s *Spinner) Finish() {
	err := s.bar.Finish()

	if err != nil {
		log.Printf("failed to finish progress bar: %v", err)
	}

	fmt.Println()
}
