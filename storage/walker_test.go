package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	if err := os.MkdirAll(filepath.Dir(path), 0775); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	f.Close()
}

func TestFindTriggerLog(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "flight", "DJI_0001.MRK"))
	touch(t, filepath.Join(root, "flight", "notes.txt"))

	got, err := FindTriggerLog(root)
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(root, "flight", "DJI_0001.MRK")
	if got != want {
		t.Fatalf("got %s, want %s", got, want)
	}

	empty := t.TempDir()
	if _, err := FindTriggerLog(empty); err == nil {
		t.Fatal("got nil error for empty tree")
	}
}

func TestFindTrajectoryLog(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "b.pos"))
	touch(t, filepath.Join(root, "a.pos"))
	touch(t, filepath.Join(root, "c.obs"))

	got, err := FindTrajectoryLog(root)
	if err != nil {
		t.Fatal(err)
	}
	// Lexicographically first wins when several exist.
	if got != filepath.Join(root, "a.pos") {
		t.Fatalf("got %s, want a.pos", got)
	}

	empty := t.TempDir()
	if _, err := FindTrajectoryLog(empty); err == nil {
		t.Fatal("got nil error with no .pos file")
	}
}

func TestFindImageDir(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "skip.JPG")) // root itself does not count
	touch(t, filepath.Join(root, "photos", "DJI_0002.JPG"))
	touch(t, filepath.Join(root, "photos", "DJI_0001.JPG"))
	touch(t, filepath.Join(root, "photos", "thumbs.db"))

	dir, err := FindImageDir(root, ".JPG")
	if err != nil {
		t.Fatal(err)
	}
	if dir != filepath.Join(root, "photos") {
		t.Fatalf("got %s", dir)
	}

	images, err := ListImages(dir, ".JPG")
	if err != nil {
		t.Fatal(err)
	}
	if len(images) != 2 || images[0] != "DJI_0001.JPG" || images[1] != "DJI_0002.JPG" {
		t.Fatalf("got %v", images)
	}

	noImages := t.TempDir()
	touch(t, filepath.Join(noImages, "sub", "readme.md"))
	if _, err := FindImageDir(noImages, ".JPG"); err == nil {
		t.Fatal("got nil error with no image subdirectory")
	}
}
