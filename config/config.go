package config

import (
	"gopkg.in/yaml.v3"
	"log"
	"os"
	"path"
)

type yamlConfig struct {
	IsDebug              bool     `yaml:"debug"`
	LogFilePath          string   `yaml:"log_file_path"`
	LogMaxSizeMB         int      `yaml:"log_max_size_mb"`
	LogMaxBackups        int      `yaml:"log_max_backups"`
	LogMaxAgeDays        int      `yaml:"log_max_age_days"`
	DBPath               string   `yaml:"db_path"`
	DataPath             string   `yaml:"data_path"`
	BatchSize            int64    `yaml:"batch_size"`
	ComputeHashes        *bool    `yaml:"compute_hashes"`
	HashAlgorithm        string   `yaml:"hash_algorithm"`
	FileNamesToIgnore    []string `yaml:"file_names_to_ignore"`
	FolderNamesToIgnore  []string `yaml:"folder_names_to_ignore"`
	VerifyDuplicateFiles bool     `yaml:"verify_duplicate_files"`
	CatalogScans         *bool    `yaml:"catalog_scans"`
}

type Config struct {
	IsDebug              bool
	LogFilePath          string
	LogMaxSizeMB         int
	LogMaxBackups        int
	LogMaxAgeDays        int
	DBPath               string
	DataPath             string
	BatchSize            int64
	ComputeHashes        bool
	HashAlgorithm        string
	FileNamesToIgnore    []string
	FolderNamesToIgnore  []string
	VerifyDuplicateFiles bool
	CatalogScans         bool
}

func Load(defaultConfigData []byte) (*Config, error) {
	configFile := "config.yaml"
	_, err := os.Stat(configFile)

	if err != nil {
		log.Print("No config file found. Creating a new config file...")
		err := os.WriteFile(configFile, defaultConfigData, 0600)

		if err != nil {
			return nil, err
		}
	}

	return parseConfigFile(configFile)
}

func parseConfigFile(configFilePath string) (*Config, error) {
	yamlFile, err := os.ReadFile(path.Clean(configFilePath))

	if err != nil {
		return nil, err
	}

	return Parse(yamlFile)
}

// Parse reads a config document. Keys left out fall back to their defaults.
func Parse(data []byte) (*Config, error) {
	config := &yamlConfig{}

	err := yaml.Unmarshal(data, config)

	if err != nil {
		return nil, err
	}

	return &Config{
		IsDebug:              config.IsDebug,
		LogFilePath:          config.LogFilePath,
		LogMaxSizeMB:         orDefault(config.LogMaxSizeMB, 10),
		LogMaxBackups:        orDefault(config.LogMaxBackups, 3),
		LogMaxAgeDays:        orDefault(config.LogMaxAgeDays, 28),
		DBPath:               orDefault(config.DBPath, "dedup-tools.db"),
		DataPath:             orDefault(config.DataPath, "data"),
		BatchSize:            orDefault(config.BatchSize, 1000),
		ComputeHashes:        config.ComputeHashes == nil || *config.ComputeHashes,
		HashAlgorithm:        orDefault(config.HashAlgorithm, "sha-256"),
		FileNamesToIgnore:    config.FileNamesToIgnore,
		FolderNamesToIgnore:  config.FolderNamesToIgnore,
		VerifyDuplicateFiles: config.VerifyDuplicateFiles,
		CatalogScans:         config.CatalogScans == nil || *config.CatalogScans,
	}, nil
}

func orDefault[T comparable](value, fallback T) T {
	var zero T

	if value == zero {
		return fallback
	}

	return value
}
