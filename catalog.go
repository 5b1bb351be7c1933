package main

import (
	"dedup-tools/crypto"
	"dedup-tools/indexer"
	"dedup-tools/models"
	"dedup-tools/record"
	"dedup-tools/utils"
	"fmt"
	"github.com/dustin/go-humanize"
	"gorm.io/gorm"
)

// CatalogIndex records a finished index with one row per directory and file.
// Digests are stored once, base58 encoded.
func (ctx *Context) CatalogIndex(jobName, indexName string, root *record.DirectoryRecord, stats indexer.Stats, algorithm crypto.Algorithm) (*models.Scan, error) {
	scan := &models.Scan{
		JobName:        jobName,
		IndexName:      indexName,
		RootPath:       root.Path(),
		Algorithm:      string(algorithm),
		Size:           root.Size(),
		DirectoryCount: stats.DirectoryCount,
		FileCount:      stats.FileCount,
	}

	err := ctx.DB.Transaction(func(tx *gorm.DB) error {
		c := &cataloger{
			tx:          tx,
			batchSize:   batchSize(ctx.Config.BatchSize),
			pathHashIDs: map[string]uint{},
			fileHashIDs: map[string]uint{},
		}

		rootPathHashID, err := c.pathHashID(root.Hash())

		if err != nil {
			return err
		}

		scan.RootPathHashID = rootPathHashID
		result := tx.Create(scan)

		if result.Error != nil {
			return result.Error
		}

		return c.addDirectory(scan.ID, nil, 0, root)
	})

	if err != nil {
		return nil, err
	}

	return scan, nil
}

// batchSize guards CreateInBatches against a missing config value.
func batchSize(configured int64) int {
	if configured <= 0 {
		return 1000
	}

	return int(configured)
}

type cataloger struct {
	tx          *gorm.DB
	batchSize   int
	pathHashIDs map[string]uint
	fileHashIDs map[string]uint
}

func (c *cataloger) addDirectory(scanID uint, parentPathID *uint, level uint, directory *record.DirectoryRecord) error {
	pathHashID, err := c.pathHashID(directory.Hash())

	if err != nil {
		return err
	}

	pathModel := &models.Path{
		ScanID:       scanID,
		ParentPathID: parentPathID,
		Level:        level,
		Name:         directory.Name(),
		AbsolutePath: directory.Path(),
		PathHashID:   pathHashID,
		Size:         directory.Size(),
	}

	result := c.tx.Create(pathModel)

	if result.Error != nil {
		return result.Error
	}

	fileModels := make([]models.File, 0, len(directory.Files()))

	for _, file := range directory.Files() {
		fileHashID, err := c.fileHashID(file.Hash())

		if err != nil {
			return err
		}

		fileModels = append(fileModels, models.File{
			PathID:     pathModel.ID,
			Level:      level + 1,
			FileHashID: fileHashID,
			Name:       file.Name(),
			Size:       file.Size(),
		})
	}

	if len(fileModels) > 0 {
		result = c.tx.CreateInBatches(&fileModels, c.batchSize)

		if result.Error != nil {
			return result.Error
		}
	}

	for _, child := range directory.Directories() {
		err = c.addDirectory(scanID, &pathModel.ID, level+1, child)

		if err != nil {
			return err
		}
	}

	return nil
}

func (c *cataloger) pathHashID(digest crypto.Digest) (uint, error) {
	hash := digest.Base58()

	if id, found := c.pathHashIDs[hash]; found {
		return id, nil
	}

	pathHash := models.PathHash{Hash: hash}
	result := c.tx.Where(&pathHash).FirstOrCreate(&pathHash)

	if result.Error != nil {
		return 0, result.Error
	}

	c.pathHashIDs[hash] = pathHash.ID
	return pathHash.ID, nil
}

func (c *cataloger) fileHashID(digest crypto.Digest) (uint, error) {
	hash := digest.Base58()

	if id, found := c.fileHashIDs[hash]; found {
		return id, nil
	}

	fileHash := models.FileHash{Hash: hash}
	result := c.tx.Where(&fileHash).FirstOrCreate(&fileHash)

	if result.Error != nil {
		return 0, result.Error
	}

	c.fileHashIDs[hash] = fileHash.ID
	return fileHash.ID, nil
}

func (ctx *Context) ListScans() ([]models.Scan, error) {
	var scans []models.Scan
	result := ctx.DB.Preload("RootPathHash").Order("id").Find(&scans)

	if result.Error != nil {
		return nil, result.Error
	}

	return scans, nil
}

func (ctx *Context) PrintScans() error {
	scans, err := ctx.ListScans()

	if err != nil {
		return err
	}

	if len(scans) == 0 {
		utils.ConsoleAndLogPrintf("No scans have been catalogued yet")
		return nil
	}

	var rows [][]string

	for _, scan := range scans {
		rows = append(rows, []string{
			fmt.Sprintf("%d", scan.ID),
			scan.JobName,
			scan.IndexName,
			scan.RootPath,
			humanize.Bytes(uint64(scan.Size)),
			humanize.Comma(scan.DirectoryCount),
			humanize.Comma(scan.FileCount),
			fmt.Sprintf("%s:%s", scan.Algorithm, DecodeHash(scan.RootPathHash.Hash)),
			scan.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	utils.PrintFormattedTitle(fmt.Sprintf("Catalogued %s", utils.Pluralize("scan", int64(len(scans)))))
	fmt.Print(utils.RenderTable([]string{"ID", "Job", "Index", "Root", "Size", "Directories", "Files", "Hash", "Created"}, rows))

	return nil
}
