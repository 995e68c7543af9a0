/* ppkgeotag geotags drone photos: fuses a .MRK camera-trigger log with
a post-processed .pos trajectory, writes the geotagged trigger log
(POS-<name>.MRK) next to the source, and optionally geo.txt with
per-image gimbal orientation. */
package main

import (
	"bytes"
	"flag"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"openppk.com/openppk/exif"
	"openppk.com/openppk/georef"
	"openppk.com/openppk/geotag"
	"openppk.com/openppk/mission"
	"openppk.com/openppk/storage"
	"openppk.com/openppk/trajectory"
	"openppk.com/openppk/trigger"
)

func readTriggers(path string) []trigger.Record {
	file, err := os.Open(path)
	if err != nil {
		log.Fatalln(err)
	}
	defer file.Close()
	records, err := trigger.ReadLog(file)
	if err != nil {
		log.Fatalln(err)
	}
	return records
}

func readSamples(path string) []trajectory.Sample {
	file, err := os.Open(path)
	if err != nil {
		log.Fatalln(err)
	}
	defer file.Close()
	samples, err := trajectory.ReadLog(file)
	if err != nil {
		log.Fatalln(err)
	}
	return samples
}

func main() {
	configFlag := flag.String("config", "", "mission YAML config file")
	projFlag := flag.String("proj", "", "projection descriptor for geo.txt, overrides config")
	geoFlag := flag.Bool("geo", true, "write geo.txt with per-image orientation")
	flag.Parse()
	if len(flag.Args()) != 1 {
		log.Fatalln("expected mission directory, got", flag.Args())
	}
	missionRoot := flag.Args()[0]

	// .env overrides, if present.
	godotenv.Load()
	configPath := *configFlag
	if len(configPath) == 0 {
		configPath = os.Getenv("PPK_CONFIG")
	}
	config := mission.Default()
	if len(configPath) != 0 {
		var err error
		config, err = mission.Load(configPath)
		if err != nil {
			log.Fatalln(err)
		}
		log.Println("config file", configPath)
	}
	if v := os.Getenv("PPK_EXIFTOOL"); len(v) != 0 {
		config.Exiftool = v
	}
	if len(*projFlag) != 0 {
		config.Projection = *projFlag
	}

	mrkPath, err := storage.FindTriggerLog(missionRoot)
	if err != nil {
		log.Fatalln(err)
	}
	log.Println("trigger log", mrkPath)

	posPath, err := storage.FindTrajectoryLog(missionRoot)
	if err != nil {
		log.Fatalln(err)
	}
	log.Println("trajectory log", posPath)

	triggers := readTriggers(mrkPath)
	log.Printf("processing %d trigger records", len(triggers))
	samples := readSamples(posPath)

	records, err := geotag.Synchronize(triggers, samples,
		config.TriggerLayout, config.TrajectoryLayout)
	if err != nil {
		// Whole-run abort: nothing has been written.
		log.Fatalln(err)
	}
	log.Printf("generated %d geotagged records", len(records))

	lines := make([]string, 0, len(records))
	for _, r := range records {
		if r.Extrapolated {
			log.Printf("trigger %s: position extrapolated beyond trajectory coverage",
				r.Trigger.UTC.Format(config.TriggerLayout))
		}
		lines = append(lines, r.Line(config.TriggerLayout))
	}
	outPath := filepath.Join(filepath.Dir(mrkPath),
		storage.OutputPrefix+filepath.Base(mrkPath))
	if err := os.WriteFile(outPath, []byte(strings.Join(lines, "\n")+"\n"), 0664); err != nil {
		log.Fatalln(err)
	}
	log.Println("output file written:", outPath)

	if !*geoFlag {
		return
	}
	if len(config.Projection) == 0 {
		log.Fatalln("projection descriptor required for geo.txt; use -proj or the config file")
	}
	// An unavailable metadata tool aborts the assembler stage
	// before any output; per-image failures later are tolerated.
	if _, err := exec.LookPath(config.Exiftool); err != nil {
		log.Fatalln(err)
	}
	imageDir, err := storage.FindImageDir(missionRoot, config.ImageExt)
	if err != nil {
		log.Fatalln(err)
	}
	images, err := storage.ListImages(imageDir, config.ImageExt)
	if err != nil {
		log.Fatalln(err)
	}

	// Assemble in memory; geo.txt appears only on success.
	var buf bytes.Buffer
	err = georef.Write(&buf, config.Projection, imageDir, images, records,
		exif.Tool{Path: config.Exiftool}, config.Workers)
	if err != nil {
		log.Fatalln(err)
	}
	geoPath := filepath.Join(missionRoot, storage.GeoFilename)
	if err := os.WriteFile(geoPath, buf.Bytes(), 0664); err != nil {
		log.Fatalln(err)
	}
	log.Println("geo file written:", geoPath)
}
