// Package exif obtains per-image gimbal orientation metadata from an
// external extraction tool.
package exif

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Record is the orientation metadata reported for one image.  Angles
// are gimbal degrees; Filename is the name the tool reports for the
// file.
type Record struct {
	Roll     float64
	Pitch    float64
	Yaw      float64
	Filename string
}

// Source yields orientation metadata for an image file.  A nil Record
// with a nil error means the tool ran but the orientation fields were
// absent; both cases are non-fatal to callers.
type Source interface {
	Extract(path string) (*Record, error)
}

// Tool drives the exiftool binary, one invocation per image.
type Tool struct {
	// Path to the executable; empty resolves "exiftool" via PATH.
	Path string
}

var tags = []string{
	"-GimbalRollDegree",
	"-GimbalPitchDegree",
	"-GimbalYawDegree",
	"-FileName",
}

func (t Tool) Extract(path string) (*Record, error) {
	bin := t.Path
	if len(bin) == 0 {
		bin = "exiftool"
	}
	// -s -s prints bare "Tag: value" lines.
	args := append([]string{"-s", "-s"}, tags...)
	args = append(args, path)
	out, err := exec.Command(bin, args...).Output()
	if err != nil {
		return nil, fmt.Errorf("exiftool %s: %w", path, err)
	}
	return parseOutput(string(out)), nil
}

// parseOutput reads exiftool's "-s -s" key/value lines.  Returns nil
// when any of the gimbal tags or the filename is missing or
// non-numeric.
func parseOutput(out string) *Record {
	kv := make(map[string]string)
	for _, line := range strings.Split(out, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		kv[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	name, ok := kv["FileName"]
	if !ok {
		return nil
	}
	record := Record{Filename: name}
	for tag, dst := range map[string]*float64{
		"GimbalRollDegree":  &record.Roll,
		"GimbalPitchDegree": &record.Pitch,
		"GimbalYawDegree":   &record.Yaw,
	} {
		value, ok := kv[tag]
		if !ok {
			return nil
		}
		degrees, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil
		}
		*dst = degrees
	}
	return &record
}
