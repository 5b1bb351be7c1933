package main

import (
	"dedup-tools/config"
	"dedup-tools/models"
	"fmt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"log"
)

func initDb(config *config.Config) *gorm.DB {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(getLogLevel(config)),
	}

	return connect(config.DBPath, gormConfig)
}

func getLogLevel(config *config.Config) logger.LogLevel {
	if config.IsDebug {
		return logger.Info
	}

	return logger.Silent
}

// testDB opens a private in-memory database per name.
func testDB(name string) *gorm.DB {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	return connect(fmt.Sprintf("file:%s?mode=memory&cache=shared", name), gormConfig)
}

func connect(dsn string, gormConfig *gorm.Config) *gorm.DB {
	db, err := GetDriver(dsn, gormConfig)

	if err != nil {
		log.Fatalf("failed to connect to the database: %v", err)
	}

	err = db.AutoMigrate(
		&models.PathHash{},
		&models.FileHash{},
		&models.Scan{},
		&models.Path{},
		&models.File{},
	)

	if err != nil {
		log.Fatalf("failed to migrate the database: %v", err)
	}

	return db
}
