package storage

import (
	"bufio"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Mission is one processed mission directory under an archive root.
type Mission struct {
	Id         string // directory name
	Path       string
	MRKFile    string // source .MRK
	OutputFile string // geotagged POS-*.MRK
	Triggers   int    // lines in the geotagged log
	Images     int    // images in the image subdirectory
	HasGeo     bool   // geo.txt present
}

var archiveWalkerId = "archive_walker"

func countLines(path string) int {
	file, err := os.Open(path)
	if err != nil {
		log.Fatal(archiveWalkerId, err)
	}
	defer file.Close()
	n := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if len(strings.TrimSpace(scanner.Text())) != 0 {
			n++
		}
	}
	return n
}

func mission(archiveRoot string, entry os.DirEntry) *Mission {
	root := filepath.Join(archiveRoot, entry.Name())
	mrk, err := FindTriggerLog(root)
	if err != nil {
		log.Println(archiveWalkerId, "no trigger log, skipping", entry.Name())
		return nil
	}

	m := Mission{Id: entry.Name(), Path: root, MRKFile: mrk}
	output := filepath.Join(filepath.Dir(mrk), OutputPrefix+filepath.Base(mrk))
	if _, err := os.Stat(output); err == nil {
		m.OutputFile = output
		m.Triggers = countLines(output)
	}
	if imageDir, err := FindImageDir(root, ".JPG"); err == nil {
		images, err := ListImages(imageDir, ".JPG")
		if err != nil {
			log.Fatal(archiveWalkerId, err)
		}
		m.Images = len(images)
	}
	if _, err := os.Stat(filepath.Join(root, GeoFilename)); err == nil {
		m.HasGeo = true
	}
	return &m
}

// Walker computes a slice of Mission objects for the processed data at
// archiveRoot.  Each mission is a directory; directories without a
// trigger log are skipped.
func Walker(archiveRoot string) []Mission {
	entries, err := os.ReadDir(archiveRoot)
	if err != nil {
		log.Fatal(archiveWalkerId, err)
	}

	var missions []Mission
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		m := mission(archiveRoot, entry)
		if m == nil {
			continue
		}
		missions = append(missions, *m)
	}
	return missions
}
