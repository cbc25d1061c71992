package relic

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSourceWatcherSignalsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "relics.csv")
	if err := os.WriteFile(path, []byte("Name\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewSourceWatcher(path, 20*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if err := os.WriteFile(path, []byte("Name\nRelic: Flask\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-w.Changes:
	case <-time.After(5 * time.Second):
		t.Fatal("no change signal after writing the watched file")
	}
}

func TestSourceWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "relics.csv")
	if err := os.WriteFile(path, []byte("Name\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewSourceWatcher(path, 20*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	other := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(other, []byte("unrelated"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-w.Changes:
		t.Fatal("signal emitted for a different file in the watched directory")
	case <-time.After(300 * time.Millisecond):
	}
}
