package main

import (
	"dedup-tools/analyzer"
	"dedup-tools/record"
	"dedup-tools/utils"
	"errors"
	"github.com/schollz/progressbar/v3"
	"log"
	"os"
)

// Mismatch is a pair of files sharing a GroupID but not their bytes.
type Mismatch struct {
	Representative string
	Other          string
}

// VerifyDuplicates byte-compares every member of each duplicated file group
// with the first member. Files that disappeared since the scan are skipped.
func VerifyDuplicates(duplicates []analyzer.Duplicate[*record.FileRecord]) ([]Mismatch, error) {
	comparisonCount := int64(0)

	for _, duplicate := range duplicates {
		comparisonCount += int64(len(duplicate.Duplicates) - 1)
	}

	if comparisonCount == 0 {
		utils.ConsoleAndLogPrintf("No duplicate files to verify")
		return nil, nil
	}

	utils.ConsoleAndLogPrintf("Verifying %s", utils.Pluralize("duplicate file", comparisonCount))

	bar := progressbar.Default(comparisonCount)
	var mismatches []Mismatch

	for _, duplicate := range duplicates {
		representative := duplicate.Record.Path()

		for _, other := range duplicate.Duplicates {
			if other == representative {
				continue
			}

			mismatch, err := verifyPair(representative, other)

			if err != nil {
				return mismatches, err
			}

			if mismatch != nil {
				mismatches = append(mismatches, *mismatch)
			}

			if err := bar.Add(1); err != nil {
				log.Printf("failed to update progress bar: %v", err)
			}
		}
	}

	return mismatches, nil
}

func verifyPair(representative, other string) (*Mismatch, error) {
	same, err := CompareFiles(representative, other)

	if err != nil {
		// If the file does not exist we can ignore it
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("Ignoring not-found file during verification: %v", err)
			return nil, nil
		}

		return nil, err
	}

	if same {
		return nil, nil
	}

	log.Printf("File \"%s\" has the same hash as \"%s\" but different content", other, representative)
	return &Mismatch{Representative: representative, Other: other}, nil
}
