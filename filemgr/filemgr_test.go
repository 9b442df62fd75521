package filemgr

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureSafeFilename(t *testing.T) {
	cases := map[string]string{
		"My Plant Photo.PNG": "my_plant_photo.png",
		"weird/../name.jpg":  "weirdname.jpg",
		"café.jpg":      "caf.jpg",
	}
	for in, want := range cases {
		ext := filepath.Ext(want)
		if got := ensureSafeFilename(in, ext); got != want {
			t.Errorf("ensureSafeFilename(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestResolvePath(t *testing.T) {
	got := ResolvePath(EntityListing, PicPhoto)
	want := filepath.Join("static", "uploads", "listing", "photo")
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSaveFileRejectsOversizedAndCleansUp(t *testing.T) {
	data := make([]byte, maxUploadSize+1)
	copy(data, "\x89PNG\r\n\x1a\n") // sniffs as image/png

	header := &multipart.FileHeader{
		Filename: "big.png",
		Header:   textproto.MIMEHeader{"Content-Type": []string{"image/png"}},
	}
	dir := t.TempDir()

	_, err := SaveFile(bytes.NewReader(data), header, dir, PicPhoto)
	if !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("partial upload left on disk: %v", entries)
	}
}

func TestExtensionAndMIMEChecks(t *testing.T) {
	if !isExtensionAllowed(".png", PicPhoto) {
		t.Error(".png should be allowed for photos")
	}
	if isExtensionAllowed(".exe", PicPhoto) {
		t.Error(".exe should be rejected")
	}
	if !isMIMEAllowed("image/webp", PicPhoto) {
		t.Error("image/webp should be allowed for photos")
	}
	if isMIMEAllowed("application/pdf", PicPhoto) {
		t.Error("application/pdf should be rejected for photos")
	}
}
