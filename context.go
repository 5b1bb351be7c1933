package main

import (
	"dedup-tools/config"
	"dedup-tools/crypto"
	"dedup-tools/indexer"
	"dedup-tools/record"
	"dedup-tools/utils"
	"fmt"
	"gorm.io/gorm"
	"log"
	"path/filepath"
)

type Context struct {
	Config *config.Config
	DB     *gorm.DB
}

// index scans one directory and catalogs the result when enabled.
func (ctx *Context) index(jobName, indexName, scanPath string) (*record.DirectoryRecord, error) {
	absoluteScanPath, err := filepath.Abs(scanPath)

	if err != nil {
		return nil, ErrCouldNotResolvePath
	}

	if !IsDir(absoluteScanPath) {
		return nil, fmt.Errorf("%w: \"%s\"", ErrCouldNotResolvePath, scanPath)
	}

	hasher, err := crypto.NewHasher(crypto.Algorithm(ctx.Config.HashAlgorithm))

	if err != nil {
		return nil, err
	}

	spinner := utils.NewSpinner(fmt.Sprintf("Indexing %s", absoluteScanPath))

	treeIndexer, err := indexer.New(indexer.Config{
		Hasher:              hasher,
		ComputeHashes:       ctx.Config.ComputeHashes,
		FileNamesToIgnore:   ctx.Config.FileNamesToIgnore,
		FolderNamesToIgnore: ctx.Config.FolderNamesToIgnore,
		Debug:               ctx.Config.IsDebug,
		Logger:              log.Default(),
		Progress: func(progress indexer.Progress) {
			spinner.Report(progress.DirectoryCount, progress.FileCount, progress.TotalSize)
		},
	})

	if err != nil {
		return nil, err
	}

	root, err := treeIndexer.Index(absoluteScanPath)
	spinner.Finish()

	if err != nil {
		return nil, err
	}

	stats := treeIndexer.Stats()
	utils.ConsoleAndLogPrintf("Indexed %s and %s in \"%s\"", utils.Pluralize("directory", stats.DirectoryCount), utils.Pluralize("file", stats.FileCount), absoluteScanPath)

	if ctx.Config.CatalogScans && ctx.DB != nil {
		_, err = ctx.CatalogIndex(jobName, indexName, root, stats, hasher.Algorithm())

		if err != nil {
			return nil, err
		}
	}

	return root, nil
}
