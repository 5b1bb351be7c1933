//go:build !alternative_driver

package main

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// GetDriver opens the scan catalog with the CGO sqlite driver. Build with the
// alternative_driver tag for a pure Go build.
func GetDriver(dsn string, gormConfig *gorm.Config) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(dsn), gormConfig)
}
