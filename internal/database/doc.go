// Package database is the storage layer of the demo word service.
//
// It keeps words, lectures and users in SQLite through gorm. The demo server
// opens it in memory and seeds it on start:
//
//	db, err := database.NewDatabase(database.MemoryDSN())
//	err = db.Seed(seed, passwordHash)
//
// Lookups that find nothing return an error matching ErrNotFound.
package database
