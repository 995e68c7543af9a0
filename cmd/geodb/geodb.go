// Package main generates a sqlite3 run-index database for the
// processed missions at an archive root.
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"time"

	machineid "github.com/denisbrodbeck/machineid"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	storage "openppk.com/openppk/storage"
)

func workdb(path string) *sql.DB {
	// Open and initialize the index database.
	// Caution: PRAGMA foreign_keys = ON is not sticky.
	DSN := fmt.Sprintf("file:%s?_foreign_keys=yes", path)
	log.Println("DSN: ", DSN)
	db, err := sql.Open("sqlite3", DSN)
	if err != nil {
		log.Fatal(err)
	}

	for _, v := range storage.Schema() {
		if _, err := db.Exec(v); err != nil {
			log.Fatal(err)
		}
	}
	return db
}

func insertRuns(db *sql.DB, machine string, missions []storage.Mission) {
	if _, err := db.Exec(
		"INSERT OR IGNORE INTO machine(id, description) VALUES(?, ?);",
		machine, ""); err != nil {
		log.Fatal(err)
	}

	created := time.Now().UTC().Format("20060102T150405Z")
	for _, m := range missions {
		record := storage.RunRecord{
			Id:       uuid.NewString(),
			Machine:  machine,
			Mission:  m.Path,
			MRKFile:  m.MRKFile,
			Triggers: m.Triggers,
			Images:   m.Images,
			Created:  created,
		}
		_, err := db.Exec(
			"INSERT INTO run(id, machine, mission, mrk_file, triggers, images, created) VALUES(?, ?, ?, ?, ?, ?, ?);",
			record.Id, record.Machine, record.Mission, record.MRKFile,
			record.Triggers, record.Images, record.Created)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("run %s: mission %s, triggers %d, images %d",
			record.Id, m.Id, m.Triggers, m.Images)
	}
}

func main() {
	dbPath := flag.String("db", "runs.db", "path to the index database")
	flag.Parse()
	if len(flag.Args()) != 1 {
		log.Fatalln("expected archive root, got", flag.Args())
	}
	archiveRoot := flag.Args()[0]

	protectedID, err := machineid.ProtectedID("geodb")
	if err != nil {
		log.Fatalln(err)
	}
	log.Println("machine id", protectedID)

	missions := storage.Walker(archiveRoot)
	log.Printf("found %d missions under %s", len(missions), archiveRoot)

	db := workdb(*dbPath)
	defer db.Close()
	insertRuns(db, protectedID, missions)
}
