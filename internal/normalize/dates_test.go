package normalize

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	want := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{"2024-03-05", "05/03/2024", "5/3/2024", "2024/03/05", "5 March 2024", " 2024-03-05 "} {
		got := ParseDate(in)
		if got == nil || !got.Equal(want) {
			t.Errorf("ParseDate(%q) = %v, want %v", in, got, want)
		}
	}
	for _, in := range []string{"", "yesterday", "2024-13-01"} {
		if got := ParseDate(in); got != nil {
			t.Errorf("ParseDate(%q) = %v, want nil", in, got)
		}
	}
}

func TestFormatDate(t *testing.T) {
	if FormatDate(nil) != nil {
		t.Error("expected nil")
	}
	d := time.Date(2024, 3, 5, 8, 30, 0, 0, time.UTC)
	got := FormatDate(&d)
	if got == nil || *got != "2024-03-05T08:30:00Z" {
		t.Errorf("FormatDate = %v", got)
	}
	if back := ParseDate(*got); back == nil || !back.Equal(d) {
		t.Errorf("FormatDate output does not parse back: %v", back)
	}
}

func TestFileHash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.txt")
	if err := os.WriteFile(path, []byte("abc"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := FileHash(path)
	if err != nil {
		t.Fatalf("FileHash: %v", err)
	}
	const want = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got != want {
		t.Errorf("FileHash = %s, want %s", got, want)
	}
	if _, err := FileHash(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing file")
	}
}
