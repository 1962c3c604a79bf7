// Package datadir resolves where the garment database lives on disk.
package datadir

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName is the subdirectory used under the platform data directory.
const AppName = "wear"

// DefaultFileName is the database file name used when the user doesn't name one.
const DefaultFileName = "data.db"

// Resolve maps an optional user-supplied path to a (directory, file name) pair
// for the database. An empty userPath means "no path given".
//
// The policy: an existing directory keeps the default file name; an existing
// regular file is split into parent and name; a path that doesn't exist yet is
// treated as a file if it has an extension and as a directory otherwise. With
// no path at all, the platform application-data directory is used, falling
// back to the current working directory if none is available.
func Resolve(userPath string) (directory, fileName string, err error) {
	if userPath == "" {
		if xdg.DataHome != "" {
			return filepath.Join(xdg.DataHome, AppName), DefaultFileName, nil
		}

		slog.Warn("could not determine a platform-appropriate location for data storage, using the current directory")
		directory, err = os.Getwd()
		return directory, DefaultFileName, err
	}

	info, err := os.Stat(userPath)
	switch {
	case err == nil && info.IsDir():
		return userPath, DefaultFileName, nil

	case err == nil && info.Mode().IsRegular():
		return filepath.Dir(userPath), filepath.Base(userPath), nil

	case err == nil:
		// Something else (socket, device, ...): treat it as a directory.
		return userPath, DefaultFileName, nil

	case errors.Is(err, fs.ErrNotExist):
		// Doesn't exist yet. An extension means it looks like a future file.
		if filepath.Ext(userPath) != "" {
			return filepath.Dir(userPath), filepath.Base(userPath), nil
		}
		return userPath, DefaultFileName, nil

	default:
		return "", "", fmt.Errorf("inspecting data path: %w", err)
	}
}

// Ensure creates the resolved directory (including parents) if it is absent,
// so the database can be opened inside it.
func Ensure(directory string) error {
	if err := os.MkdirAll(directory, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	return nil
}
