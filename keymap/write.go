package keymap

import (
	"fmt"
	"log/slog"

	"github.com/google/renameio/v2"
)

// WriteFile replaces path with data atomically. On any error the previous file, if any, is left untouched.
func WriteFile(path string, data []byte) error {
	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("could not create pending file for %s: %w", path, err)
	}

	defer func() {
		// no-op once the file was committed
		if err := pendingFile.Cleanup(); err != nil {
			slog.Debug("Cleanup of pending keymap file failed", "path", path, "error", err)
		}
	}()

	if _, err := pendingFile.Write(data); err != nil {
		return fmt.Errorf("could not write keymap data: %w", err)
	}

	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("could not replace %s: %w", path, err)
	}

	return nil
}
