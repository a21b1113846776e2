package db

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB represents our sqlite3 database file.
type DB struct{ *gorm.DB }

//go:embed schema.sql
var schema string

var ErrNoDatabase = errors.New("database file not found")

// Open returns a connection to a migrated sqlite3 database file on disk,
// creating the file and running migrations if necessary.
func Open(filename string) (*DB, error) {
	gdb, err := gorm.Open(sqlite.Open(filename+"?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("error opening db file at '%s': %w", filename, err)
	}

	db := &DB{gdb}

	if err := db.Exec(schema).Error; err != nil {
		db.Close()
		return nil, fmt.Errorf("error migrating db at '%s': %w", filename, err)
	}

	return db, nil
}

// OpenExisting opens a database that load already built, read-only and
// without migrating it. It fails with ErrNoDatabase if the file is missing
// or has no songs table.
func OpenExisting(filename string) (*DB, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: '%s'", ErrNoDatabase, filename)
	} else if err != nil {
		return nil, fmt.Errorf("error checking for db file at '%s': %w", filename, err)
	}

	gdb, err := gorm.Open(sqlite.Open("file:"+filename+"?mode=ro&_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("error opening db file at '%s': %w", filename, err)
	}
	db := &DB{gdb}

	if !db.Migrator().HasTable("songs") {
		db.Close()
		return nil, fmt.Errorf("%w: '%s' has no songs table", ErrNoDatabase, filename)
	}
	return db, nil
}

// Close closes the underlying connection pool.
func (db *DB) Close() error {
	pool, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("error getting connection pool: %w", err)
	}
	return pool.Close()
}
