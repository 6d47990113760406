package prompt

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadFiles concatenates the contents of the given paths in argument order.
// Paths that do not name an existing regular file are skipped silently; a
// read failure on an existing file is fatal.
func ReadFiles(paths []string) (string, error) {
	var result strings.Builder

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}
		result.Write(data)
	}

	return result.String(), nil
}

// ReadAll slurps the whole reader. Used when no file paths were given, with
// standard input as the reader.
func ReadAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return string(data), nil
}
