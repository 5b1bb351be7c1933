package models

import (
	"gorm.io/gorm"
	"time"
)

// Scan is one index produced by a job.
type Scan struct {
	ID             uint `gorm:"primarykey"`
	JobName        string
	IndexName      string
	RootPath       string
	RootPathHashID uint
	RootPathHash   PathHash
	Algorithm      string
	Size           int64
	DirectoryCount int64
	FileCount      int64
	CreatedAt      time.Time
	DeletedAt      gorm.DeletedAt
}

type PathHash struct {
	ID   uint   `gorm:"primarykey"`
	Hash string `gorm:"unique"`
}

type Path struct {
	ID           uint `gorm:"primarykey"`
	ScanID       uint
	Scan         Scan
	ParentPathID *uint
	ParentPath   *Path
	Level        uint
	Name         string
	AbsolutePath string
	PathHashID   uint
	PathHash     PathHash
	Size         int64
}

type FileHash struct {
	ID   uint   `gorm:"primarykey"`
	Hash string `gorm:"unique"`
}

type File struct {
	ID         uint `gorm:"primarykey"`
	PathID     uint
	Path       Path
	Level      uint
	FileHashID uint
	FileHash   FileHash
	Name       string
	Size       int64
}
