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

// FindDuplicates indexes scanPath and reports duplicated directories and files
// within it.
func (ctx *Context) FindDuplicates(jobName, scanPath string) error {
	jobPath, err := ctx.jobDirectory(jobName)

	if err != nil {
		return err
	}

	root, err := ctx.index(jobName, "index", scanPath)

	if err != nil {
		return err
	}

	err = saveDocument(filepath.Join(jobPath, "index.json"), root)

	if err != nil {
		return err
	}

	finder, err := analyzer.NewDuplicateFinder(root, log.Default())

	if err != nil {
		return err
	}

	directories := finder.Directories(nil)
	files := finder.Files(nil)

	err = saveDocument(filepath.Join(jobPath, "duplicates-directories.json"), directories)

	if err != nil {
		return err
	}

	err = saveDocument(filepath.Join(jobPath, "duplicates-files.json"), files)

	if err != nil {
		return err
	}

	utils.PrintFormattedTitle("Duplicates")
	fmt.Print(utils.RenderTable([]string{"Kind", "Groups", "Copies", "Reclaimable"}, [][]string{
		duplicateSummaryRow("directories", directories),
		duplicateSummaryRow("files", files),
	}))

	if !ctx.Config.VerifyDuplicateFiles {
		return nil
	}

	if !ctx.Config.ComputeHashes {
		utils.ConsoleAndLogPrintf("Skipping duplicate verification as hashes were not computed")
		return nil
	}

	mismatches, err := VerifyDuplicates(files)

	if err != nil {
		return err
	}

	if len(mismatches) > 0 {
		utils.ConsoleAndLogPrintf("Warning: %s differ from their duplicate group despite an equal hash", utils.Pluralize("file", int64(len(mismatches))))
	}

	return nil
}

// duplicateSummaryRow counts copies beyond the first as reclaimable.
func duplicateSummaryRow[T record.Record](kind string, duplicates []analyzer.Duplicate[T]) []string {
	copies := int64(0)
	reclaimable := uint64(0)

	for _, duplicate := range duplicates {
		extra := int64(len(duplicate.Duplicates) - 1)
		copies += extra
		reclaimable += uint64(extra * duplicate.Record.Size())
	}

	return []string{kind, humanize.Comma(int64(len(duplicates))), humanize.Comma(copies), humanize.Bytes(reclaimable)}
}
