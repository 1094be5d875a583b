package pth

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"martianoff/venv/internal/fsutil"
	"martianoff/venv/internal/venverr"
)

// Render formats entries as .pth content, one entry per line.
func Render(entries []string) string {
	if len(entries) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(e)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Build reads f.Source, transforms its entries with f.EntryPrefix and ws,
// and atomically writes the result into destDir. destDir must already
// exist. Returns the path of the written file.
func Build(f *File, ws *Workspace, destDir string) (string, error) {
	content, err := readSource(f.Source)
	if err != nil {
		return "", err
	}

	if err := checkDestination(destDir); err != nil {
		return "", err
	}

	entries := Transform(SplitEntries(content), f.EntryPrefix, ws)

	dest := filepath.Join(destDir, f.Name())
	if err := fsutil.WriteFileAtomic(dest, []byte(Render(entries)), 0o644); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return "", venverr.Wrap(venverr.KindDestinationNotWritable, destDir, "cannot write path-configuration file", err)
		}
		return "", err
	}
	return dest, nil
}

func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", venverr.Wrap(venverr.KindSourceFileUnreadable, path, "cannot read source file", err)
	}
	if !utf8.Valid(data) {
		return "", venverr.New(venverr.KindSourceFileUnreadable, path, "source file is not valid UTF-8")
	}
	return string(data), nil
}

func checkDestination(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return venverr.Wrap(venverr.KindDestinationNotWritable, dir, "destination directory is not accessible", err)
	}
	if !info.IsDir() {
		return venverr.New(venverr.KindDestinationNotWritable, dir, "destination is not a directory")
	}
	if err := fsutil.CheckWritable(dir); err != nil {
		return venverr.Wrap(venverr.KindDestinationNotWritable, dir, "destination directory is not writable", err)
	}
	return nil
}
