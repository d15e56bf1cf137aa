package database

import (
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// Open opens (or creates) the sqlite database at path and returns a GORM
// handle. The driver is pure Go, no cgo toolchain needed.
func Open(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(path), &gorm.Config{})
}
