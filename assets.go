package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"
)

// ResumeContentType is sent with the résumé download.
const ResumeContentType = "application/octet-stream"

// Assets locates the static files a page needs. Relative paths are
// resolved against Dir.
type Assets struct {
	Dir        string
	Stylesheet string
	Portrait   string
	Resume     string
}

// AssetError reports a static file that could not be read.
type AssetError struct {
	Kind string
	Path string
	Err  error
}

func (e *AssetError) Error() string {
	if errors.Is(e.Err, fs.ErrNotExist) {
		return fmt.Sprintf("%s not found at %s", e.Kind, e.Path)
	}
	return fmt.Sprintf("%s at %s could not be read: %v", e.Kind, e.Path, e.Err)
}

func (e *AssetError) Unwrap() error { return e.Err }

// Brief describes the failure without the filesystem path.
func (e *AssetError) Brief() string {
	if errors.Is(e.Err, fs.ErrNotExist) {
		return e.Kind + " not found"
	}
	return e.Kind + " could not be read"
}

type Portrait struct {
	Data        []byte
	ContentType string
}

func (a Assets) path(p string) string {
	if filepath.IsAbs(p) || a.Dir == "" {
		return p
	}
	return filepath.Join(a.Dir, p)
}

func (a Assets) StylesheetPath() string { return a.path(a.Stylesheet) }
func (a Assets) PortraitPath() string   { return a.path(a.Portrait) }
func (a Assets) ResumePath() string     { return a.path(a.Resume) }

// ResumeFilename is the name offered to the browser for the download.
func (a Assets) ResumeFilename() string {
	return filepath.Base(a.Resume)
}

func (a Assets) ReadStylesheet() (string, error) {
	data, err := readAsset("stylesheet", a.StylesheetPath())
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (a Assets) ReadPortrait() (Portrait, error) {
	data, err := readAsset("portrait", a.PortraitPath())
	if err != nil {
		return Portrait{}, err
	}
	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return Portrait{}, &AssetError{
			Kind: "portrait",
			Path: a.PortraitPath(),
			Err:  fmt.Errorf("unexpected content type %s", mt.String()),
		}
	}
	return Portrait{Data: data, ContentType: mt.String()}, nil
}

// OpenResume opens the résumé for streaming. The caller closes it.
func (a Assets) OpenResume() (*os.File, error) {
	path := a.ResumePath()
	f, err := os.Open(path)
	if err != nil {
		return nil, &AssetError{Kind: "resume", Path: path, Err: err}
	}
	return f, nil
}

// StatResume checks that the résumé exists and is a regular file.
func (a Assets) StatResume() error {
	path := a.ResumePath()
	info, err := os.Stat(path)
	if err != nil {
		return &AssetError{Kind: "resume", Path: path, Err: err}
	}
	if info.IsDir() {
		return &AssetError{Kind: "resume", Path: path, Err: errors.New("is a directory")}
	}
	return nil
}

// InspectResume parses the résumé as a PDF and returns its page count.
// The pdf reader panics on some malformed trailers.
func (a Assets) InspectResume() (pages int, err error) {
	path := a.ResumePath()
	defer func() {
		if v := recover(); v != nil {
			err = &AssetError{Kind: "resume", Path: path, Err: fmt.Errorf("malformed pdf: %v", v)}
		}
	}()
	f, r, err := pdf.Open(path)
	if err != nil {
		return 0, &AssetError{Kind: "resume", Path: path, Err: err}
	}
	defer f.Close()
	return r.NumPage(), nil
}

// Check verifies every asset can be read.
func (a Assets) Check() error {
	if _, err := a.ReadStylesheet(); err != nil {
		return err
	}
	if _, err := a.ReadPortrait(); err != nil {
		return err
	}
	return a.StatResume()
}

func readAsset(kind, path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &AssetError{Kind: kind, Path: path, Err: err}
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, &AssetError{Kind: kind, Path: path, Err: err}
	}
	return data, nil
}
