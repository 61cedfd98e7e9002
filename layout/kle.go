package layout

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

var ErrRowWidth = errors.New("could not determine row width")

// OpenPath opens a layout file. Relative paths are resolved against the working directory.
func OpenPath(path string) (*os.File, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("could not resolve path %s: %w", path, err)
	}

	slog.Debug("Opening layout file", "path", abs)

	file, err := os.Open(abs)
	if err != nil {
		return nil, fmt.Errorf("could not open file %s: %w", path, err)
	}

	return file, nil
}

// ReadDocument reads a whole KLE document into memory.
func ReadDocument(path string) ([]byte, error) {
	file, err := OpenPath(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}

	return data, nil
}

// InferRowWidth returns the number of keys in the first row of a raw KLE document.
//
// Only the first list-valued top-level element is looked at. Within it, plain string
// entries are keys and objects are property changes for the following key, so only
// the strings are counted. Layouts where rows differ in length will wrap incorrectly.
func InferRowWidth(document []byte) (int, error) {
	var rows []json.RawMessage

	if err := json.Unmarshal(document, &rows); err != nil {
		return 0, fmt.Errorf("could not decode KLE document: %w", err)
	}

	for _, raw := range rows {
		// metadata object or anything else that isn't a row
		if !startsWith(raw, '[') {
			continue
		}

		var row []json.RawMessage
		if err := json.Unmarshal(raw, &row); err != nil {
			return 0, fmt.Errorf("could not decode first row: %w", err)
		}

		width := 0

		for _, entry := range row {
			if startsWith(entry, '"') {
				width++
			}
		}

		if width == 0 {
			return 0, fmt.Errorf("%w: first row has no keys", ErrRowWidth)
		}

		return width, nil
	}

	return 0, fmt.Errorf("%w: no rows in document", ErrRowWidth)
}

func startsWith(raw json.RawMessage, c byte) bool {
	trimmed := bytes.TrimSpace(raw)

	return len(trimmed) > 0 && trimmed[0] == c
}
