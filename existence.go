package main

import (
	"dedup-tools/analyzer"
	"dedup-tools/record"
	"dedup-tools/utils"
	"fmt"
	"github.com/dustin/go-humanize"
	"log"
)

// CheckExistence loads two saved indexes of a job and reports which source
// directories and files have all their content somewhere in the target.
func (ctx *Context) CheckExistence(jobName, outputName, sourceIndex, targetIndex string) error {
	for _, name := range []string{outputName, sourceIndex, targetIndex} {
		if !isPlainName(name) {
			return fmt.Errorf("%w: \"%s\"", ErrInvalidJobName, name)
		}
	}

	jobPath, err := ctx.jobDirectory(jobName)

	if err != nil {
		return err
	}

	source, err := loadIndex(jobFilePath(jobPath, sourceIndex))

	if err != nil {
		return err
	}

	target, err := loadIndex(jobFilePath(jobPath, targetIndex))

	if err != nil {
		return err
	}

	checker, err := analyzer.NewExistenceChecker(source, target, log.Default())

	if err != nil {
		return err
	}

	directories := checker.Directories(nil)
	files := checker.Files(nil)

	err = saveDocument(jobFilePath(jobPath, outputName+"-directory"), directories)

	if err != nil {
		return err
	}

	err = saveDocument(jobFilePath(jobPath, outputName+"-file"), files)

	if err != nil {
		return err
	}

	utils.PrintFormattedTitle("Existence")
	fmt.Print(utils.RenderTable([]string{"Kind", "Existing", "Not existing"}, [][]string{
		existenceSummaryRow("directories", directories),
		existenceSummaryRow("files", files),
	}))

	return nil
}

func existenceSummaryRow[T record.Record](kind string, existences []analyzer.Existence[T]) []string {
	existing := int64(0)

	for _, existence := range existences {
		if existence.Exists {
			existing++
		}
	}

	return []string{kind, humanize.Comma(existing), humanize.Comma(int64(len(existences)) - existing)}
}
