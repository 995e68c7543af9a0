// Package mission holds the per-deployment run configuration:
// timestamp layouts, paths and tuning that vary between capture
// platforms, kept out of the code.
package mission

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"openppk.com/openppk/gnss"
)

// Config is the top-level structure for the mission YAML file.
type Config struct {
	// Reference layouts for the UTC timestamps in the trigger and
	// trajectory logs.
	TriggerLayout    string `yaml:"trigger_layout"`
	TrajectoryLayout string `yaml:"trajectory_layout"`

	// Projection descriptor written as the first line of geo.txt,
	// e.g. a proj.4 string.
	Projection string `yaml:"projection"`

	// Path to the exiftool executable.
	Exiftool string `yaml:"exiftool"`

	// Image filename extension.
	ImageExt string `yaml:"image_ext"`

	// Orientation-extraction worker count; 0 means one per CPU.
	Workers int `yaml:"workers"`
}

// Default is the configuration for DJI .MRK and RTKLIB .pos logs with
// exiftool on PATH.
func Default() Config {
	return Config{
		TriggerLayout:    gnss.TriggerUTC,
		TrajectoryLayout: gnss.TrajectoryUTC,
		Exiftool:         "exiftool",
		ImageExt:         ".JPG",
	}
}

// Load reads a YAML config file; keys absent from the file keep their
// defaults.
func Load(path string) (Config, error) {
	config := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return config, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}
