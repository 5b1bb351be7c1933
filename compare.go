package main

import (
	"dedup-tools/analyzer"
	"dedup-tools/record"
	"dedup-tools/utils"
	"fmt"
	"github.com/dustin/go-humanize"
	"log"
	"path/filepath"
)

// Compare indexes both paths and reports which source directories and files
// are found in the target by content.
func (ctx *Context) Compare(jobName, sourcePath, targetPath string) error {
	jobPath, err := ctx.jobDirectory(jobName)

	if err != nil {
		return err
	}

	source, err := ctx.index(jobName, "index-source", sourcePath)

	if err != nil {
		return err
	}

	target, err := ctx.index(jobName, "index-target", targetPath)

	if err != nil {
		return err
	}

	documents := map[string]any{
		"index-source.json": source,
		"index-target.json": target,
	}

	matcher, err := analyzer.NewComparatorMatcher(source, target, log.Default())

	if err != nil {
		return err
	}

	foundDirectories, missingDirectories := analyzer.Partition(matcher.Directories(nil))
	foundFiles, missingFiles := analyzer.Partition(matcher.Files(nil))

	documents["compare-found-directories.json"] = foundDirectories
	documents["compare-missing-directories.json"] = missingDirectories
	documents["compare-found-files.json"] = foundFiles
	documents["compare-missing-files.json"] = missingFiles

	for name, document := range documents {
		err = saveDocument(filepath.Join(jobPath, name), document)

		if err != nil {
			return err
		}
	}

	utils.PrintFormattedTitle("Comparison")
	fmt.Print(utils.RenderTable([]string{"Kind", "Found", "Missing", "Missing size"}, [][]string{
		comparisonSummaryRow("directories", foundDirectories, missingDirectories),
		comparisonSummaryRow("files", foundFiles, missingFiles),
	}))

	return nil
}

func comparisonSummaryRow[T record.Record](kind string, found, missing []analyzer.Comparison[T]) []string {
	missingSize := uint64(0)

	for _, comparison := range missing {
		missingSize += uint64(comparison.Record.Size())
	}

	return []string{kind, humanize.Comma(int64(len(found))), humanize.Comma(int64(len(missing))), humanize.Bytes(missingSize)}
}
