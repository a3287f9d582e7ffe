// Package static embeds static files into the binary and copies them to the
// filesystem
package static

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/ayoisaiah/simmer/internal/osutil"
)

const (
	filesDir = "files"
	appDir   = "simmer"

	// IconFile is the notification icon installed in the data directory
	IconFile = "icon.svg"
)

//go:embed files/*
var embeddedFiles embed.FS

// Install copies the embedded files to the simmer data directory. Files that
// already exist are left alone.
func Install() error {
	return fs.WalkDir(
		embeddedFiles,
		filesDir,
		func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				return nil
			}

			b, err := embeddedFiles.ReadFile(path)
			if err != nil {
				return err
			}

			// embed paths always use forward slashes
			stripped := strings.TrimPrefix(path, filesDir+"/")

			destPath, err := xdg.DataFile(filepath.Join(appDir, stripped))
			if err != nil {
				return err
			}

			if _, err := os.Stat(destPath); !os.IsNotExist(err) {
				return nil
			}

			return os.WriteFile(destPath, b, osutil.FilePermission)
		},
	)
}

// IconPath returns the installed notification icon, or an empty string if
// it has not been installed.
func IconPath() string {
	p, err := xdg.SearchDataFile(filepath.Join(appDir, IconFile))
	if err != nil {
		return ""
	}

	return p
}
