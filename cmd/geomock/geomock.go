// Package main generates mock mission directories (trigger log,
// trajectory log, empty images) for testing storage traversal and the
// geotagging pipeline end to end.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"openppk.com/openppk/gnss"
)

// GPS times around 2023-05-01 10:00 UTC.
const mockWeek = 2260
const mockBase = 122400.0

func mockMission(root string, photos int) {
	missionId := uuid.NewString()
	missionPath := filepath.Join(root, missionId)
	photoPath := filepath.Join(missionPath, "photos")
	if err := os.MkdirAll(photoPath, 0775); err != nil {
		log.Fatalln(err)
	}
	fmt.Println(missionPath)

	// Trigger log: one event every 2 s.
	mrk, err := os.Create(filepath.Join(missionPath, "DJI_0001.MRK"))
	if err != nil {
		log.Fatalln(err)
	}
	defer mrk.Close()
	for i := 0; i < photos; i++ {
		seconds := mockBase + float64(i)*2 + rand.Float64()*0.4
		fmt.Fprintf(mrk, "%d\t%.6f\t[%d]\t%.2f\t%.2f\t%.2f\n",
			i+1, seconds, mockWeek,
			rand.Float64()*360, -90+rand.Float64()*10, rand.Float64()*5)

		name := fmt.Sprintf("DJI_%04d.JPG", i+1)
		if _, err := os.Create(filepath.Join(photoPath, name)); err != nil {
			log.Fatalln(err)
		}
	}

	// Trajectory log at 5 Hz with a comment header, covering the
	// triggers with margin on both sides.
	pos, err := os.Create(filepath.Join(missionPath, "solution.pos"))
	if err != nil {
		log.Fatalln(err)
	}
	defer pos.Close()
	fmt.Fprintln(pos, "% program   : geomock")
	fmt.Fprintln(pos, "%  UTC                   latitude(deg) longitude(deg)  height(m)")
	samples := (photos*2 + 4) * 5
	for i := 0; i < samples; i++ {
		at := gnss.ToUTC(mockWeek, mockBase-2+float64(i)*0.2)
		fmt.Fprintf(pos, "%s %.9f %.9f %.4f 1 7\n",
			at.Format("2006/01/02 15:04:05.000"),
			10+float64(i)*1e-6, -100-float64(i)*1e-6, 100+float64(i)*0.01)
	}
}

func main() {
	missions := flag.Int("missions", 3, "number of mock missions")
	photos := flag.Int("photos", 8, "photos per mission")
	flag.Parse()
	if len(flag.Args()) != 1 {
		log.Fatalln("expected archive root, got", flag.Args())
	}
	root := flag.Args()[0]
	// mock does not create the archive root
	if _, err := os.Stat(root); os.IsNotExist(err) {
		log.Fatalln(err)
	}

	for i := 0; i < *missions; i++ {
		mockMission(root, *photos)
	}
}
