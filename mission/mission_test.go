package mission

import (
	"os"
	"path/filepath"
	"testing"

	"openppk.com/openppk/gnss"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mission.yaml")
	content := "projection: \"+proj=utm +zone=31 +datum=WGS84\"\n" +
		"exiftool: /usr/local/bin/exiftool\n" +
		"workers: 4\n"
	if err := os.WriteFile(path, []byte(content), 0664); err != nil {
		t.Fatal(err)
	}

	config, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if config.Projection != "+proj=utm +zone=31 +datum=WGS84" {
		t.Fatalf("got %q", config.Projection)
	}
	if config.Exiftool != "/usr/local/bin/exiftool" || config.Workers != 4 {
		t.Fatalf("got %q, %d", config.Exiftool, config.Workers)
	}

	// Keys absent from the file keep their defaults.
	if config.TriggerLayout != gnss.TriggerUTC {
		t.Fatalf("got %q, want default trigger layout", config.TriggerLayout)
	}
	if config.TrajectoryLayout != gnss.TrajectoryUTC || config.ImageExt != ".JPG" {
		t.Fatalf("got %q, %q", config.TrajectoryLayout, config.ImageExt)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("got nil error for absent file")
	}
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mission.yaml")
	if err := os.WriteFile(path, []byte("workers: not-a-number\n"), 0664); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("got nil error for invalid yaml")
	}
}
