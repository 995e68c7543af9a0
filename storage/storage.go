// Package storage locates mission input files and describes the
// run-index database for processed missions.
package storage

// Geotagged trigger logs are written next to the source .MRK with this
// prefix.
var OutputPrefix = "POS-"

// The geo-referenced image list is written to this file in the mission
// root.
var GeoFilename = "geo.txt"

// RunRecord describes one completed geotagging run for the archive
// index.
type RunRecord struct {
	Id       string // run uuid
	Machine  string // protected machine id
	Mission  string // mission directory
	MRKFile  string // source trigger log
	Triggers int    // geotagged trigger count
	Images   int    // referenced image count
	Created  string // YYYYmmddTHHMMSSZ
}

// Schema returns the DDL for the run-index database.
func Schema() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS machine (
    id TEXT PRIMARY KEY,
    description TEXT
);`,
		`CREATE TABLE IF NOT EXISTS run (
    id TEXT PRIMARY KEY,
    machine TEXT NOT NULL REFERENCES machine(id),
    mission TEXT NOT NULL,
    mrk_file TEXT NOT NULL,
    triggers INTEGER,
    images INTEGER,
    created TEXT
);`,
	}
}
