package main

import (
	"dedup-tools/config"
	"encoding/json"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func newTestContext(t *testing.T) *Context {
	c := &config.Config{
		DataPath:      t.TempDir(),
		ComputeHashes: true,
		HashAlgorithm: "sha-256",
		CatalogScans:  true,
	}

	return &Context{
		Config: c,
		DB:     testDB(t.Name()),
	}
}

func createFiles(t *testing.T, files map[string]string) string {
	root := t.TempDir()

	for name, content := range files {
		filePath := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0700))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0600))
	}

	return root
}

func readDocument(t *testing.T, filePath string) []map[string]any {
	data, err := os.ReadFile(filePath)
	require.NoError(t, err)

	var document []map[string]any
	require.NoError(t, json.Unmarshal(data, &document))

	return document
}
