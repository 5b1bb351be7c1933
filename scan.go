package main

import (
	"dedup-tools/utils"
	"fmt"
)

// Scan indexes scanPath and saves the tree as <indexName>.json inside the job
// directory. An existing index of the same name is never overwritten.
func (ctx *Context) Scan(jobName, indexName, scanPath string) error {
	if !isPlainName(indexName) {
		return fmt.Errorf("%w: \"%s\"", ErrInvalidJobName, indexName)
	}

	jobPath, err := ctx.jobDirectory(jobName)

	if err != nil {
		return err
	}

	indexFilePath := jobFilePath(jobPath, indexName)

	if IsFile(indexFilePath) {
		return fmt.Errorf("%w: \"%s\"", ErrJobFileExists, indexFilePath)
	}

	root, err := ctx.index(jobName, indexName, scanPath)

	if err != nil {
		return err
	}

	err = saveDocument(indexFilePath, root)

	if err != nil {
		return err
	}

	utils.ConsoleAndLogPrintf("Saved index \"%s\"", indexFilePath)
	return nil
}
