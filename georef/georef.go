// Package georef assembles the final geo-referenced image list
// (geo.txt): one line per photo pairing its interpolated position with
// the gimbal orientation read from the image.
package georef

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"sync"

	"openppk.com/openppk/exif"
	"openppk.com/openppk/geotag"
)

// extract fans the orientation lookups out across workers and
// reassembles the results keyed by image index.  Extraction is
// process-bound; the order of results is what correctness depends on,
// not the order of execution.
func extract(imageDir string, images []string, src exif.Source, workers int) []*exif.Record {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([]*exif.Record, len(images))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for n := 0; n < workers; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				record, err := src.Extract(filepath.Join(imageDir, images[i]))
				if err != nil {
					// Non-fatal: the line falls back to
					// empty orientation fields.
					log.Printf("georef: %s: %v", images[i], err)
					continue
				}
				results[i] = record
			}
		}()
	}
	for i := range images {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return results
}

// Write emits the geo-referenced output: the projection descriptor
// first, then one line per image in sorted filename order, positionally
// paired with recs (index-for-index; there is no timestamp join here).
// The image and record counts must match or the run is rejected before
// anything is written.  A failed per-image extraction keeps the
// original filename and leaves the orientation fields empty.
func Write(w io.Writer, projection, imageDir string, images []string, recs []geotag.Record, src exif.Source, workers int) error {
	if len(images) != len(recs) {
		return fmt.Errorf("number of positions (%d) does not match the number of images (%d)",
			len(recs), len(images))
	}

	sorted := append([]string(nil), images...)
	sort.Strings(sorted)
	results := extract(imageDir, sorted, src, workers)

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, projection)
	for i, image := range sorted {
		name := image
		var yaw, pitch, roll string
		if record := results[i]; record != nil {
			name = record.Filename
			yaw = strconv.FormatFloat(record.Yaw, 'f', -1, 64)
			pitch = strconv.FormatFloat(record.Pitch, 'f', -1, 64)
			roll = strconv.FormatFloat(record.Roll, 'f', -1, 64)
		}
		rec := recs[i]
		fmt.Fprintf(bw, "%s %s %s %s %s %s %s\n",
			name,
			strconv.FormatFloat(rec.Lon, 'f', 8, 64),
			strconv.FormatFloat(rec.Lat, 'f', 8, 64),
			strconv.FormatFloat(rec.Height, 'f', 3, 64),
			yaw, pitch, roll)
	}
	return bw.Flush()
}
