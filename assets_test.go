package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAssetPaths(t *testing.T) {
	a := Assets{Dir: "/srv/site", Stylesheet: "styles/main.css", Portrait: "/abs/me.png", Resume: "assets/CV 2024.pdf"}
	if got := a.StylesheetPath(); got != filepath.Join("/srv/site", "styles/main.css") {
		t.Errorf("StylesheetPath = %q", got)
	}
	if got := a.PortraitPath(); got != "/abs/me.png" {
		t.Errorf("absolute path rewritten: %q", got)
	}
	if got := a.ResumeFilename(); got != "CV 2024.pdf" {
		t.Errorf("ResumeFilename = %q", got)
	}
}

func TestReadAssets(t *testing.T) {
	a := writeAssets(t)

	css, err := a.ReadStylesheet()
	if err != nil || css != "body { color: #123456; }" {
		t.Errorf("ReadStylesheet = %q, %v", css, err)
	}
	p, err := a.ReadPortrait()
	if err != nil {
		t.Fatalf("ReadPortrait: %v", err)
	}
	if p.ContentType != "image/png" {
		t.Errorf("portrait content type = %q", p.ContentType)
	}
	if err := a.Check(); err != nil {
		t.Errorf("Check: %v", err)
	}
}

func TestPortraitMustBeImage(t *testing.T) {
	a := writeAssets(t)
	if err := os.WriteFile(a.PortraitPath(), []byte("plain text, not a picture"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := a.ReadPortrait()
	var assetErr *AssetError
	if !errors.As(err, &assetErr) || assetErr.Kind != "portrait" {
		t.Fatalf("expected portrait AssetError, got %v", err)
	}
	if !strings.Contains(err.Error(), "unexpected content type") {
		t.Errorf("error = %q", err)
	}
}

func TestAssetErrors(t *testing.T) {
	a := writeAssets(t)
	a.Resume = "assets"

	err := a.StatResume()
	if err == nil || !strings.Contains(err.Error(), "is a directory") {
		t.Errorf("StatResume on directory = %v", err)
	}

	a.Resume = "missing.pdf"
	err = a.Check()
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Check = %v, want fs.ErrNotExist", err)
	}
	if want := "resume not found at " + a.ResumePath(); err == nil || err.Error() != want {
		t.Errorf("error = %v, want %q", err, want)
	}
	if _, err := a.OpenResume(); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("OpenResume = %v", err)
	}
}

func TestInspectResume(t *testing.T) {
	a := Assets{Dir: ".", Resume: "assets/Resume Shayan Darabi.pdf"}
	pages, err := a.InspectResume()
	if err != nil {
		t.Fatalf("InspectResume: %v", err)
	}
	if pages != 1 {
		t.Errorf("pages = %d, want 1", pages)
	}

	stub := writeAssets(t)
	if _, err := stub.InspectResume(); err == nil {
		t.Error("expected an error for a truncated PDF")
	}
}
