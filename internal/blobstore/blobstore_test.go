package blobstore

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestItemPath_Format(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	got := ItemPath(now, "photo.png")
	want := fmt.Sprintf("items/%d-photo.png", now.UnixMilli())
	if got != want {
		t.Fatalf("ItemPath: want %q, got %q", want, got)
	}
}

func TestItemPath_StripsDirsAndSpaces(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	// каталоги из имени файла выбрасываются
	got := ItemPath(now, "../../etc/passwd")
	if !strings.HasSuffix(got, "-passwd") || strings.Contains(got, "..") {
		t.Fatalf("dirs must be stripped: %q", got)
	}

	// пробелы заменяются подчёркиванием
	got = ItemPath(now, "my photo.png")
	if !strings.HasSuffix(got, "-my_photo.png") {
		t.Fatalf("spaces must be replaced: %q", got)
	}
}

func TestItemPath_EmptyName(t *testing.T) {
	got := ItemPath(time.UnixMilli(1), "")
	if !strings.HasSuffix(got, "-upload") {
		t.Fatalf("empty name must fallback to 'upload': %q", got)
	}
}
