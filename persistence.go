package main

import (
	"dedup-tools/record"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// jobDirectory resolves and creates <data_path>/<jobName>.
func (ctx *Context) jobDirectory(jobName string) (string, error) {
	if !isPlainName(jobName) {
		return "", fmt.Errorf("%w: \"%s\"", ErrInvalidJobName, jobName)
	}

	jobPath := filepath.Join(ctx.Config.DataPath, jobName)
	err := os.MkdirAll(jobPath, 0700)

	if err != nil {
		return "", err
	}

	return jobPath, nil
}

func isPlainName(name string) bool {
	return name != "" && name != "." && name != ".." && filepath.Base(name) == name && !strings.ContainsAny(name, `/\`)
}

// jobFilePath names a JSON document inside a job directory. The extension is
// optional.
func jobFilePath(jobPath, name string) string {
	return filepath.Join(jobPath, strings.TrimSuffix(name, ".json")+".json")
}

func saveDocument(filePath string, document any) error {
	data, err := json.MarshalIndent(document, "", "  ")

	if err != nil {
		return err
	}

	err = os.WriteFile(filePath, data, 0600)

	if err != nil {
		return err
	}

	log.Printf("Saved \"%s\"", filePath)
	return nil
}

func loadIndex(filePath string) (*record.DirectoryRecord, error) {
	data, err := os.ReadFile(path.Clean(filePath))

	if err != nil {
		return nil, err
	}

	root := &record.DirectoryRecord{}
	err = json.Unmarshal(data, root)

	if err != nil {
		return nil, fmt.Errorf("could not parse index \"%s\": %w", filePath, err)
	}

	return root, nil
}
